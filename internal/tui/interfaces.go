package tui

import (
	"context"

	"github.com/qdm12/guestbook/internal/guestbook"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . View,Mounter

type View interface {
	Snapshot() guestbook.State
	SetDraft(draft string)
	HandleSubmit(ctx context.Context, draft string) (err error)
	CaptureHostAddress(address string)
	Changed() <-chan struct{}
}

// Mounter starts and stops the polling of the view entries.
type Mounter interface {
	Start(ctx context.Context) (runError <-chan error, startErr error)
	Stop() (err error)
}
