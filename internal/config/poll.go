package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Poll struct {
	Period time.Duration
}

func (p *Poll) setDefaults() {
	const defaultPeriod = time.Second
	p.Period = gosettings.DefaultComparable(p.Period, defaultPeriod)
}

var ErrPollPeriodTooLow = errors.New("poll period is too low")

func (p Poll) Validate() (err error) {
	const minPeriod = 100 * time.Millisecond
	if p.Period < minPeriod {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrPollPeriodTooLow, p.Period, minPeriod)
	}
	return nil
}

func (p Poll) String() string {
	return p.toLinesNode().String()
}

func (p Poll) toLinesNode() *gotree.Node {
	node := gotree.New("Poll")
	node.Appendf("Period: %s", p.Period)
	return node
}

func (p *Poll) read(r *reader.Reader, warner Warner) (err error) {
	// Retro-compatibility: REFRESH_INTERVAL in milliseconds
	intervalPtr := readRetro(r, warner, "REFRESH_INTERVAL", "POLL_PERIOD")
	if intervalPtr != nil {
		p.Period, err = time.ParseDuration(*intervalPtr + "ms")
		if err != nil {
			return fmt.Errorf("environment variable REFRESH_INTERVAL: %w", err)
		}
		return nil
	}

	p.Period, err = r.Duration("POLL_PERIOD")
	return err
}
