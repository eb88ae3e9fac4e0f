package resolver

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		isDefault  bool
		errWrapped error
		errMessage string
	}{
		"default resolver": {
			isDefault: true,
		},
		"custom resolver": {
			settings: Settings{Address: ptrTo("1.1.1.1:53")},
		},
		"custom resolver without port": {
			settings: Settings{Address: ptrTo("1.1.1.1")},
		},
		"missing host": {
			settings:   Settings{Address: ptrTo(":53")},
			errWrapped: ErrAddressHostEmpty,
			errMessage: "validating settings: address host is empty: in :53",
		},
		"timeout too low": {
			settings: Settings{
				Address: ptrTo("1.1.1.1:53"),
				Timeout: time.Millisecond,
			},
			errWrapped: ErrTimeoutTooLow,
			errMessage: "validating settings: timeout is too low: 1ms is below the minimum 10ms",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			resolver, err := New(testCase.settings)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NotNil(t, resolver)
			assert.Equal(t, testCase.isDefault, resolver == net.DefaultResolver)
		})
	}
}

func Test_withDefaultPort(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"1.1.1.1":         "1.1.1.1:53",
		"1.1.1.1:5353":    "1.1.1.1:5353",
		"dns.example.com": "dns.example.com:53",
		"::1":             "[::1]:53",
		"[::1]:5353":      "[::1]:5353",
	}

	for address, expected := range testCases {
		assert.Equal(t, expected, withDefaultPort(address), address)
	}
}
