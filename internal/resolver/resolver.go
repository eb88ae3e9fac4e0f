package resolver

import (
	"context"
	"fmt"
	"net"
)

// New returns the Go default resolver if no address is set,
// or a resolver sending its queries to the address otherwise.
func New(settings Settings) (resolver *net.Resolver, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	if *settings.Address == "" {
		return net.DefaultResolver, nil
	}

	address := *settings.Address
	dialer := &net.Dialer{Timeout: settings.Timeout}
	return &net.Resolver{
		PreferGo: true,
		// network is udp, or tcp to retry a truncated answer.
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, address)
		},
	}, nil
}
