package ftp

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/netstorage/backend/ftp/types"
)

const (
	// DefaultPort is the FTP control port.
	DefaultPort = 21
	// DefaultMaxMemorySize is the largest download, in bytes, held in memory. Larger files spill to a temp file.
	DefaultMaxMemorySize int64 = 2621440
	// DefaultDialTimeout bounds every dial, control and data.
	DefaultDialTimeout = 30 * time.Second

	envPassword = "NETSTORAGE_FTP_PASSWORD" //nolint:gosec // env var name, not a credential
)

// Options configures one storage root.
type Options struct {
	Host     string
	Port     int
	User     string
	Password string // env var NETSTORAGE_FTP_PASSWORD when empty
	// Path is changed into after login. Empty means the login directory.
	Path string
	// MediaURL is the public base URL. Empty disables URL.
	MediaURL      string
	MaxMemorySize int64
	// TempDir holds spilled downloads. Empty means os.TempDir().
	TempDir     string
	DialTimeout time.Duration
	DisableEPSV bool
}

// withDefaults returns a copy of o with zero values replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	if o.MaxMemorySize <= 0 {
		o.MaxMemorySize = DefaultMaxMemorySize
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = DefaultDialTimeout
	}
	if o.Password == "" {
		o.Password = os.Getenv(envPassword)
	}
	return o
}

// Addr returns host:port.
func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// getClient dials the control connection. Login and CWD are left to the Session.
func getClient(ctx context.Context, opts Options) (types.Client, error) {
	rec := &recorder{}

	dialOptions := []_ftp.DialOption{
		_ftp.DialWithDialFunc(rec.dialFunc(ctx, opts.DialTimeout)),
		_ftp.DialWithDisabledEPSV(opts.DisableEPSV),
		// raw LIST text is parsed locally, never MLSD facts
		_ftp.DialWithDisabledMLSD(true),
	}

	c, err := _ftp.Dial(opts.Addr(), dialOptions...)
	if err != nil {
		return nil, err
	}

	return &serverConn{ServerConn: c, rec: rec}, nil
}
