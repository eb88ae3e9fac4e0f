package resolver

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	// Address is the DNS server address to send queries to.
	// It defaults to the empty string, which uses the Go default resolver.
	// Port 53 is used if the address has no port.
	Address *string
	Timeout time.Duration
}

const defaultPort = "53"

func (s *Settings) setDefaults() {
	s.Address = gosettings.DefaultPointer(s.Address, "")
	if *s.Address != "" {
		address := withDefaultPort(*s.Address)
		s.Address = &address
	}
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
}

func withDefaultPort(address string) string {
	_, _, err := net.SplitHostPort(address)
	if err == nil {
		return address
	}
	return net.JoinHostPort(address, defaultPort)
}

var (
	ErrAddressHostEmpty = errors.New("address host is empty")
	ErrTimeoutTooLow    = errors.New("timeout is too low")
)

func (s Settings) validate() (err error) {
	if *s.Address != "" {
		host, _, err := net.SplitHostPort(*s.Address)
		if err != nil {
			return fmt.Errorf("splitting host and port from address: %w", err)
		} else if host == "" {
			return fmt.Errorf("%w: in %s", ErrAddressHostEmpty, *s.Address)
		}
	}

	const minTimeout = 10 * time.Millisecond
	if s.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, s.Timeout, minTimeout)
	}

	return nil
}
