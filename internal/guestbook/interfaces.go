package guestbook

import "context"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Backend,Logger,Metrics

type Backend interface {
	ListRange(ctx context.Context, key string) (values []string, err error)
	RPush(ctx context.Context, key, value string) (values []string, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

type Metrics interface {
	RequestDone(operation string, err error)
	StaleResponse(operation string)
	SetEntries(count int)
}
