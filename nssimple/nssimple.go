package nssimple

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/c2fo/netstorage/backend/ftp"
)

// Scheme is the only URI scheme understood by this package.
const Scheme = "ns"

var (
	ErrBlankURI          = errors.New("uri is blank")
	ErrMissingScheme     = errors.New("unable to determine uri scheme")
	ErrUnsupportedScheme = errors.New("unsupported uri scheme")
	ErrMissingKey        = errors.New("unable to determine storage key from uri host")
)

// Resolver returns the storage configured under a key. *config.Registry is a Resolver.
type Resolver interface {
	Storage(key string) (*ftp.Storage, error)
}

// Parse splits uri into a storage key and a path on that storage. Keys are lowercased.
func Parse(uri string) (key, path string, err error) {
	if uri == "" {
		return "", "", ErrBlankURI
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("unknown url.Parse error: %w", err)
	}

	switch {
	case u.Scheme == "":
		return "", "", ErrMissingScheme
	case u.Scheme != Scheme:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	case u.Host == "":
		return "", "", ErrMissingKey
	}

	return strings.ToLower(u.Host), strings.TrimPrefix(u.Path, "/"), nil
}

// NewStorage resolves uri through r and returns the storage with the path it addresses.
func NewStorage(r Resolver, uri string) (*ftp.Storage, string, error) {
	key, path, err := Parse(uri)
	if err != nil {
		return nil, "", fmt.Errorf("unable to resolve storage for uri %q: %w", uri, err)
	}

	s, err := r.Storage(key)
	if err != nil {
		return nil, "", fmt.Errorf("unable to resolve storage for uri %q: %w", uri, err)
	}
	return s, path, nil
}
