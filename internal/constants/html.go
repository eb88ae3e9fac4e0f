package constants

const (
	Title = "mirrord Guestbook"
	// WaitingText is shown instead of the entries when the list is empty.
	WaitingText = "Waiting for database connection..."
	// OptimisticMarker is appended to the displayed entries while a
	// submission is in flight.
	OptimisticMarker = "..."
)

const (
	EnvPath  = "/env"
	InfoPath = "/info"
)
