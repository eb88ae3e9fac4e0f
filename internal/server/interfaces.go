package server

import (
	"context"

	"github.com/qdm12/guestbook/internal/guestbook"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . View,Logger

type View interface {
	Snapshot() guestbook.State
	HandleSubmit(ctx context.Context, draft string) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
