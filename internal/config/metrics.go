package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Metrics struct {
	Enabled *bool
}

func (m *Metrics) setDefaults() {
	m.Enabled = gosettings.DefaultPointer(m.Enabled, true)
}

func (m Metrics) Validate() (err error) {
	return nil
}

func (m Metrics) String() string {
	return m.toLinesNode().String()
}

func (m Metrics) toLinesNode() *gotree.Node {
	return gotree.New("Metrics: " + gosettings.BoolToYesNo(m.Enabled))
}

func (m *Metrics) read(reader *reader.Reader) (err error) {
	m.Enabled, err = reader.BoolPtr("METRICS_ENABLED")
	return err
}
