package config

import (
	"github.com/qdm12/gosettings/reader"
)

type Warner interface {
	Warn(message string)
}

// readRetro returns the value of the retro-compatible environment
// variable oldKey, warning to use newKey instead if it is set.
func readRetro(r *reader.Reader, warner Warner,
	oldKey, newKey string) (value *string) {
	value = r.Get(oldKey, reader.ForceLowercase(false))
	if value != nil {
		warner.Warn("environment variable " + oldKey +
			" is deprecated, please use " + newKey + " instead")
	}
	return value
}
