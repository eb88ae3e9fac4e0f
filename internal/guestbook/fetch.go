package guestbook

import (
	"context"
	"fmt"
	"strconv"
)

// FetchEntries reads the entries list from the backend and replaces
// the cached entries with it. On failure, the cached entries are left
// unchanged and the error is logged and returned.
func (v *View) FetchEntries(ctx context.Context) (err error) {
	v.mutex.Lock()
	generation := v.nextGeneration()
	v.mutex.Unlock()

	entries, err := v.backend.ListRange(ctx, v.key)
	if ctxErr := ctx.Err(); ctxErr != nil {
		// unmounted while the request was in flight
		v.logger.Debug("fetch #" + strconv.FormatUint(generation, 10) +
			" aborted: " + ctxErr.Error())
		return fmt.Errorf("fetching entries: %w", ctxErr)
	}
	v.metrics.RequestDone(operationFetch, err)
	if err != nil {
		err = fmt.Errorf("fetching entries: %w", err)
		v.logger.Warn(err.Error())
		return err
	}

	v.mutex.Lock()
	applied := v.applyFetched(generation, entries)
	v.mutex.Unlock()

	if !applied {
		v.metrics.StaleResponse(operationFetch)
		v.logger.Debug("discarding stale response of fetch #" +
			strconv.FormatUint(generation, 10))
		return nil
	}

	v.notifyChange()
	return nil
}
