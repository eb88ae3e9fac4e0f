package models

import "html/template"

// HTMLData contains the fields to render the guestbook page.
// It is exported so that the HTML template engine can render it.
type HTMLData struct {
	Title   string
	Entries []string
	// Waiting is displayed when there is no entry.
	Waiting     string
	Draft       string
	AccentStyle template.CSS
	HostAddress string
	Links       []HTMLLink
	SubmitPath  string
	EntriesPath string
	// RefreshMillis is the period at which the page refreshes
	// its entries, and 0 disables it.
	RefreshMillis int64
}

type HTMLLink struct {
	Href string
	Text string
}
