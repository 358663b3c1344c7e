package netstorage

import (
	"fmt"
	"net"
	"strconv"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNotConnected - a primitive was issued without a live session
	ErrNotConnected = Error("no live session: EnsureConnected must succeed first")

	// ErrNoBaseURL - the storage has no public base URL configured
	ErrNoBaseURL = Error("no public base url configured")

	// ErrUnknownStorage - the storage key is not present in the registry
	ErrUnknownStorage = Error("unknown storage key")
)

// ConnectionError is returned when a session cannot be established, authenticated or moved into its root path.
// The password is never part of the error.
type ConnectionError struct {
	Host string
	Port int
	User string
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	addr := net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
	return fmt.Sprintf("connect %s@%s (path %q, password redacted): %v", e.User, addr, e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TransportError is returned when a protocol command fails on a live session.
type TransportError struct {
	Op   string
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NotFoundError is returned when the target path is absent from its parent listing.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%q not found: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%q not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ConfigurationError is returned for missing or invalid static configuration.
type ConfigurationError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("storage %q: %s", e.Key, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ConsistencyError is returned by a sync pass that meets an entry whose containing directory was never observed.
type ConsistencyError struct {
	StorageKey string
	Path       string
	Parent     string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("storage %q: parent directory %q of %q was not seen before its entries", e.StorageKey, e.Parent, e.Path)
}
