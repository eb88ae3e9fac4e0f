package health

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNeverFetched  = errors.New("entries were never fetched")
	ErrFetchOutdated = errors.New("entries fetch is outdated")
)

// MakeIsHealthy returns a function checking the entries were
// fetched successfully within the last three poll periods.
func MakeIsHealthy(poller StatusGetter, logger Logger,
	timeNow func() time.Time) func() error {
	return func() (err error) {
		err = isHealthy(poller, timeNow())
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

const periodsTolerated = 3

func isHealthy(poller StatusGetter, now time.Time) (err error) {
	mountedAt, lastSuccess := poller.Status()
	maxAge := periodsTolerated * poller.Period()

	if lastSuccess.IsZero() {
		if now.Sub(mountedAt) < maxAge {
			return nil // still starting
		}
		return fmt.Errorf("%w since %s", ErrNeverFetched,
			now.Sub(mountedAt).Round(time.Millisecond))
	}

	age := now.Sub(lastSuccess)
	if age > maxAge {
		return fmt.Errorf("%w: last success was %s ago",
			ErrFetchOutdated, age.Round(time.Millisecond))
	}
	return nil
}
