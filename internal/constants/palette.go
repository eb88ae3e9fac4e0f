package constants

import "github.com/qdm12/guestbook/internal/models"

// Palette returns the accent colors a view picks from at creation.
func Palette() []models.Color {
	return []models.Color{"#549", "#18d", "#d31", "#2a4", "#db1"}
}
