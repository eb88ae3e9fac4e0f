package guestbook

import "github.com/qdm12/guestbook/internal/models"

// State is a copy of the view state, safe to keep by renderers.
type State struct {
	Entries     []string
	Draft       string
	AccentColor models.Color
	HostAddress string
}

// Waiting returns true when there is no entry to display.
func (s State) Waiting() bool {
	return len(s.Entries) == 0
}
