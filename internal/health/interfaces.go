package health

import "time"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . StatusGetter

type StatusGetter interface {
	Status() (mountedAt, lastSuccess time.Time)
	Period() time.Duration
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
