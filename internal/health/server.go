package health

import (
	"fmt"

	"github.com/qdm12/goservices/httpserver"
)

func NewServer(address string, logger Logger, healthcheck func() error) (
	server *httpserver.Server, err error) {
	name := "health"
	server, err = httpserver.New(httpserver.Settings{
		Handler: newHandler(healthcheck),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating health http server: %w", err)
	}
	return server, nil
}
