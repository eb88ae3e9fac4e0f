package constants

const (
	// DefaultKey is the backend list key holding the guestbook entries.
	DefaultKey = "guestbook"
	// RequestIDHeader is set on each backend request for log correlation.
	RequestIDHeader = "X-Request-Id"
)
