package guestbook

import (
	"hash/maphash"
	"math/rand"

	"github.com/qdm12/guestbook/internal/models"
)

var _ rand.Source = new(mapHashSource)

type mapHashSource struct{}

func (s *mapHashSource) Int63() int64 {
	v := new(maphash.Hash).Sum64()
	return int64(v >> 1) //nolint:gosec
}

func (s *mapHashSource) Seed(_ int64) {}

// RandomIntn returns a function drawing a random integer in [0, n).
func RandomIntn() func(n int) int {
	return rand.New(new(mapHashSource)).Intn //nolint:gosec
}

func pickColor(palette []models.Color, intn func(n int) int) models.Color {
	if len(palette) == 0 {
		return ""
	}
	return palette[intn(len(palette))]
}
