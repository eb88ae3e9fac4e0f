package server

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address       string
	RootURL       string
	RefreshPeriod time.Duration
	// BackendURL is the base URL the /env, /info, /lrange and /rpush
	// routes are proxied to. It can be nil to disable proxying.
	BackendURL *url.URL
	// MetricsHandler is served on /metrics if not nil.
	MetricsHandler http.Handler
}

func New(settings Settings, view View, logger Logger) (
	server *httpserver.Server, err error) {
	handler := newHandler(settings.RootURL, settings.RefreshPeriod,
		view, settings.BackendURL, settings.MetricsHandler, logger)
	name := "http"
	server, err = httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating http server: %w", err)
	}
	return server, nil
}
