package guestbook

import (
	"sync"

	"github.com/qdm12/guestbook/internal/models"
)

const (
	operationFetch  = "fetch"
	operationSubmit = "submit"
)

// View holds the guestbook state displayed to the user: the cached
// entries list, the draft entry, the accent color and the host address.
type View struct {
	// Injected fields
	backend Backend
	key     string
	logger  Logger
	metrics Metrics

	// Set once at creation
	accentColor models.Color

	// Internal fields
	mutex        sync.RWMutex
	entries      []string
	draft        string
	hostAddress  string
	hostCaptured bool
	// lastIssued is the generation given to the last write started.
	lastIssued uint64
	// lastApplied is the generation of the last write applied to entries.
	lastApplied uint64
	// submitsPending is the number of submits waiting for a response.
	submitsPending int
	// barrier is the last generation issued when a submit response
	// was applied. Fetches issued up to it are stale.
	barrier uint64
	// lastSubmitApplied is the generation of the last submit response applied.
	lastSubmitApplied uint64
	changed           chan struct{}
}

// New creates a view with an empty entries list and an accent
// color picked from the palette using intn.
func New(backend Backend, key string, palette []models.Color,
	intn func(n int) int, logger Logger, metrics Metrics) *View {
	return &View{
		backend:     backend,
		key:         key,
		logger:      logger,
		metrics:     metrics,
		accentColor: pickColor(palette, intn),
		entries:     []string{},
		changed:     make(chan struct{}, 1),
	}
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	entries := make([]string, len(v.entries))
	copy(entries, v.entries)
	return State{
		Entries:     entries,
		Draft:       v.draft,
		AccentColor: v.accentColor,
		HostAddress: v.hostAddress,
	}
}

// SetDraft sets the in-progress entry typed by the user.
func (v *View) SetDraft(draft string) {
	v.mutex.Lock()
	changed := v.draft != draft
	v.draft = draft
	v.mutex.Unlock()
	if changed {
		v.notifyChange()
	}
}

// CaptureHostAddress sets the host address the first time it is called,
// and subsequent calls are no-ops.
func (v *View) CaptureHostAddress(address string) {
	v.mutex.Lock()
	if v.hostCaptured {
		v.mutex.Unlock()
		return
	}
	v.hostAddress = address
	v.hostCaptured = true
	v.mutex.Unlock()
	v.notifyChange()
}

// Changed returns a channel signaled after state changes.
// Signals are coalesced, a receiver should read the state with
// Snapshot after each signal.
func (v *View) Changed() <-chan struct{} {
	return v.changed
}

func (v *View) notifyChange() {
	select {
	case v.changed <- struct{}{}:
	default:
	}
}

// nextGeneration must be called with the mutex locked.
func (v *View) nextGeneration() (generation uint64) {
	v.lastIssued++
	return v.lastIssued
}

// applyFetched replaces the entries with the ones fetched, unless a
// submit is pending, a submit response was applied after the fetch was
// issued, or a newer fetch was applied already.
// It must be called with the mutex locked.
func (v *View) applyFetched(generation uint64, entries []string) (applied bool) {
	if v.submitsPending > 0 || generation <= v.barrier ||
		generation < v.lastApplied {
		return false
	}
	v.setEntries(generation, entries)
	return true
}

// applySubmitted replaces the entries with the list returned by a
// submit, unless the response of a newer submit was applied already.
// It must be called with the mutex locked.
func (v *View) applySubmitted(generation uint64, entries []string) (applied bool) {
	if generation < v.lastSubmitApplied {
		return false
	}
	v.lastSubmitApplied = generation
	v.barrier = v.lastIssued
	v.setEntries(generation, entries)
	return true
}

func (v *View) setEntries(generation uint64, entries []string) {
	if generation > v.lastApplied {
		v.lastApplied = generation
	}
	v.entries = entries
	v.metrics.SetEntries(len(entries))
}
