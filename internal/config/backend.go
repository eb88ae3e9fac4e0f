package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/guestbook/internal/constants"
)

type Backend struct {
	URL string
	Key string
}

func (b *Backend) setDefaults() {
	b.URL = gosettings.DefaultComparable(b.URL, "http://localhost:3000")
	b.Key = gosettings.DefaultComparable(b.Key, constants.DefaultKey)
}

var (
	ErrBackendURLSchemeNotValid = errors.New("backend URL scheme is not valid")
	ErrBackendURLHostEmpty      = errors.New("backend URL host is empty")
)

func (b Backend) Validate() (err error) {
	u, err := url.Parse(b.URL)
	if err != nil {
		return fmt.Errorf("parsing backend URL: %w", err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%w: %q must be http or https",
			ErrBackendURLSchemeNotValid, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%w: in %s", ErrBackendURLHostEmpty, b.URL)
	}

	return nil
}

func (b Backend) String() string {
	return b.toLinesNode().String()
}

func (b Backend) toLinesNode() *gotree.Node {
	node := gotree.New("Backend")
	node.Appendf("URL: %s", b.URL)
	node.Appendf("List key: %s", b.Key)
	return node
}

func (b *Backend) read(r *reader.Reader) {
	b.URL = r.String("BACKEND_URL", reader.ForceLowercase(false))
	b.Key = r.String("GUESTBOOK_KEY", reader.ForceLowercase(false))
}
