package health

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/guestbook/internal/health/mock_health"
	"github.com/stretchr/testify/assert"
)

func Test_isHealthy(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	const period = time.Second

	testCases := map[string]struct {
		mountedAt   time.Time
		lastSuccess time.Time
		errWrapped  error
		errMessage  string
	}{
		"starting": {
			mountedAt: now.Add(-2 * time.Second),
		},
		"never fetched": {
			mountedAt:  now.Add(-4 * time.Second),
			errWrapped: ErrNeverFetched,
			errMessage: "entries were never fetched since 4s",
		},
		"recent success": {
			mountedAt:   now.Add(-time.Hour),
			lastSuccess: now.Add(-time.Second),
		},
		"success at limit": {
			mountedAt:   now.Add(-time.Hour),
			lastSuccess: now.Add(-3 * time.Second),
		},
		"outdated success": {
			mountedAt:   now.Add(-time.Hour),
			lastSuccess: now.Add(-5 * time.Second),
			errWrapped:  ErrFetchOutdated,
			errMessage:  "entries fetch is outdated: last success was 5s ago",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			poller := mock_health.NewMockStatusGetter(ctrl)
			poller.EXPECT().Status().Return(testCase.mountedAt, testCase.lastSuccess)
			poller.EXPECT().Period().Return(period)

			err := isHealthy(poller, now)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

type warnRecorder struct {
	warnings []string
}

func (w *warnRecorder) Info(string)   {}
func (w *warnRecorder) Warn(s string) { w.warnings = append(w.warnings, s) }
func (w *warnRecorder) Error(string)  {}

func Test_MakeIsHealthy(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	now := time.Unix(1000, 0)
	poller := mock_health.NewMockStatusGetter(ctrl)
	poller.EXPECT().Status().Return(now.Add(-time.Minute), time.Time{})
	poller.EXPECT().Period().Return(time.Second)
	logger := &warnRecorder{}

	isHealthy := MakeIsHealthy(poller, logger, func() time.Time { return now })
	err := isHealthy()

	assert.True(t, errors.Is(err, ErrNeverFetched))
	assert.Equal(t, []string{"unhealthy: entries were never fetched since 1m0s"}, logger.warnings)
}
