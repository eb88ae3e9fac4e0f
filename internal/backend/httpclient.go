package backend

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns an HTTP client resolving hostnames
// with the resolver given.
func NewHTTPClient(timeout time.Duration, resolver *net.Resolver) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second, //nolint:gomnd
		Resolver:  resolver,
	}
	transport.DialContext = dialer.DialContext
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
