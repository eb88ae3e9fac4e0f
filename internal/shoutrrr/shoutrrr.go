package shoutrrr

import (
	"fmt"
	"net/url"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

// Client sends notifications to all the Shoutrrr services configured.
type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	defaultTitle  string
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		u, err := url.Parse(address)
		if err != nil {
			return nil, fmt.Errorf("parsing address: %w", err)
		}
		serviceNames[i] = u.Scheme
		addresses[i] = addDefaultTitle(u, settings.DefaultTitle)
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		defaultTitle:  settings.DefaultTitle,
		logger:        settings.Logger,
	}, nil
}

// Notify sends the message to all services, logging
// the services failing to send it.
func (c *Client) Notify(message string) {
	if len(c.serviceNames) == 0 {
		return
	}

	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error("notifying with " + c.serviceNames[i] + ": " + err.Error())
		}
	}
}

// addDefaultTitle returns the address with its title query
// parameter set to the default title, if it is not already set.
func addDefaultTitle(u *url.URL, defaultTitle string) (updatedAddress string) {
	urlValues := u.Query()
	if !urlValues.Has("title") {
		urlValues.Set("title", defaultTitle)
		u.RawQuery = urlValues.Encode()
	}
	return u.String()
}
