package guestbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/qdm12/guestbook/internal/constants"
)

// HandleSubmit appends draft to the backend list. A draft empty or made
// only of whitespace is ignored. While the request is in flight, the
// displayed entries end with an optimistic marker. On success, the entries
// are replaced with the list returned by the backend and the draft is
// cleared. Fetch responses received while the request is in flight, or
// for fetches issued before the response, are discarded. On failure, the
// error is logged and returned, and the marker stays displayed until the
// next fetch replaces the entries.
func (v *View) HandleSubmit(ctx context.Context, draft string) (err error) {
	if strings.TrimSpace(draft) == "" {
		return nil
	}

	v.mutex.Lock()
	generation := v.nextGeneration()
	optimistic := make([]string, len(v.entries), len(v.entries)+1)
	copy(optimistic, v.entries)
	optimistic = append(optimistic, constants.OptimisticMarker)
	v.setEntries(generation, optimistic)
	v.submitsPending++
	v.mutex.Unlock()
	v.notifyChange()

	entries, err := v.backend.RPush(ctx, v.key, draft)
	v.metrics.RequestDone(operationSubmit, err)
	if err != nil {
		v.mutex.Lock()
		v.submitsPending--
		v.mutex.Unlock()
		err = fmt.Errorf("adding entry: %w", err)
		v.logger.Warn(err.Error())
		return err
	}

	v.mutex.Lock()
	v.submitsPending--
	applied := v.applySubmitted(generation, entries)
	if v.draft == draft {
		v.draft = ""
	}
	v.mutex.Unlock()
	v.notifyChange()

	if !applied {
		v.metrics.StaleResponse(operationSubmit)
		v.logger.Debug("discarding stale response of submit #" +
			strconv.FormatUint(generation, 10))
	}

	return nil
}
