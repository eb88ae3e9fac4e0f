package config

import (
	"testing"
	"time"

	"github.com/qdm12/guestbook/internal/resolver"
	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
)

func Test_Config_String(t *testing.T) {
	t.Parallel()

	var defaultSettings Config
	defaultSettings.SetDefaults()

	s := defaultSettings.String()

	const expected = `Settings summary:
├── Backend
|   ├── URL: http://localhost:3000
|   └── List key: guestbook
├── Poll
|   └── Period: 1s
├── HTTP client
|   └── Timeout: 10s
├── Resolver: use Go default resolver
├── Server
|   ├── Listening address: :8000
|   └── Root URL: /
├── Metrics: yes
├── Health
|   └── Server listening address: 127.0.0.1:9999
└── Logger
    ├── Level: INFO
    └── Caller: hidden`
	assert.Equal(t, expected, s)
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		modify     func(c *Config)
		errWrapped error
		errMessage string
	}{
		"defaults": {
			modify: func(*Config) {},
		},
		"backend scheme": {
			modify: func(c *Config) {
				c.Backend.URL = "redis://localhost:6379"
			},
			errWrapped: ErrBackendURLSchemeNotValid,
			errMessage: `backend settings: backend URL scheme is not valid: "redis" must be http or https`,
		},
		"backend host": {
			modify: func(c *Config) {
				c.Backend.URL = "http:///path"
			},
			errWrapped: ErrBackendURLHostEmpty,
			errMessage: "backend settings: backend URL host is empty: in http:///path",
		},
		"poll period too low": {
			modify: func(c *Config) {
				c.Poll.Period = time.Millisecond
			},
			errWrapped: ErrPollPeriodTooLow,
			errMessage: "poll settings: poll period is too low: 1ms is below the minimum 100ms",
		},
		"resolver timeout": {
			modify: func(c *Config) {
				c.Resolver.Timeout = time.Millisecond
			},
			errWrapped: resolver.ErrTimeoutTooLow,
			errMessage: "resolver settings: creating resolver: validating settings: " +
				"timeout is too low: 1ms is below the minimum 10ms",
		},
		"root URL": {
			modify: func(c *Config) {
				c.Server.RootURL = "guestbook"
			},
			errWrapped: ErrRootURLNotValid,
			errMessage: `server settings: root URL is not valid: "guestbook" must start with /`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var config Config
			config.SetDefaults()
			testCase.modify(&config)

			err := config.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_parseLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      log.Level
		errWrapped error
		errMessage string
	}{
		"debug": {
			s:     "debug",
			level: log.LevelDebug,
		},
		"uppercase warning": {
			s:     "WARNING",
			level: log.LevelWarn,
		},
		"unknown": {
			s:          "verbose",
			errWrapped: ErrLogLevelUnknown,
			errMessage: `log level is unknown: "verbose" is not valid ` +
				`and can be one of debug, info, warning or error`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := parseLogLevel(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.level, level)
		})
	}
}
