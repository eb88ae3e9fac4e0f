package models

// JSONState is the structure returned by the state API route.
// It only holds state shared by all clients.
type JSONState struct {
	Entries     []string `json:"entries"`
	AccentColor Color    `json:"accent_color"`
}
