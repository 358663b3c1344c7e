package ftp

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/apex/log"

	"github.com/c2fo/netstorage"
	"github.com/c2fo/netstorage/backend/ftp/types"
	"github.com/c2fo/netstorage/utils"
)

var defaultClientGetter func(ctx context.Context, opts Options) (types.Client, error)

// Session owns one FTP control connection and its working directory. Every method holds the session lock for its
// whole duration, so commands from concurrent callers never interleave.
type Session struct {
	mu      sync.Mutex
	options Options
	client  types.Client
}

// NewSession returns a disconnected session for opts.
func NewSession(opts Options) *Session {
	return &Session{options: opts.withDefaults()}
}

func (s *Session) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"host": s.options.Host,
		"port": s.options.Port,
		"user": s.options.User,
	})
}

// EnsureConnected probes an existing connection with NOOP and replaces it when the probe fails. A new connection
// is dialed, logged in and moved into Options.Path. Failures are returned as *netstorage.ConnectionError.
func (s *Session) EnsureConnected(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		err := s.client.NoOp()
		if err == nil {
			return nil
		}
		s.logger().WithError(err).Warn("liveness probe failed, reconnecting")
		_ = s.client.Quit()
		s.client = nil
	}

	if err := ctx.Err(); err != nil {
		return s.connectionError(err)
	}

	client, err := defaultClientGetter(ctx, s.options)
	if err != nil {
		return s.connectionError(err)
	}

	if err := client.Login(s.options.User, s.options.Password); err != nil {
		_ = client.Quit()
		return s.connectionError(err)
	}

	if s.options.Path != "" {
		if err := client.ChangeDir(s.options.Path); err != nil {
			_ = client.Quit()
			return s.connectionError(err)
		}
	}

	s.client = client
	s.logger().WithField("path", s.options.Path).Info("connected")
	return nil
}

func (s *Session) connectionError(err error) error {
	return &netstorage.ConnectionError{
		Host: s.options.Host,
		Port: s.options.Port,
		User: s.options.User,
		Path: s.options.Path,
		Err:  err,
	}
}

// Disconnect sends QUIT and forgets the connection. It is a no-op on a disconnected session.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Quit()
	s.client = nil
	s.logger().Info("disconnected")
	if err != nil {
		return &netstorage.TransportError{Op: "QUIT", Path: s.options.Path, Err: err}
	}
	return nil
}

// Connected reports whether the session holds a connection. The connection is not probed.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil
}

// CurrentDir returns the server side working directory.
func (s *Session) CurrentDir() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return "", &netstorage.TransportError{Op: "PWD", Err: netstorage.ErrNotConnected}
	}
	dir, err := s.client.CurrentDir()
	if err != nil {
		return "", &netstorage.TransportError{Op: "PWD", Err: err}
	}
	return dir, nil
}

// List returns the raw LIST text for name, or LIST -R when recursive is set.
func (s *Session) List(name string, recursive bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	args := name
	if recursive {
		args = strings.TrimSpace("-R " + name)
	}

	if s.client == nil {
		return nil, &netstorage.TransportError{Op: "LIST", Path: name, Err: netstorage.ErrNotConnected}
	}

	s.logger().WithField("args", args).Debug("LIST")
	lines, err := s.client.RawList(args)
	if err != nil {
		return nil, &netstorage.TransportError{Op: "LIST", Path: name, Err: err}
	}
	return lines, nil
}

// RetrieveInto downloads name into w after changing into its directory, and returns the bytes written.
func (s *Session) RetrieveInto(name string, w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.inDir(name, func(base string) error {
		s.logger().WithField("path", name).Debug("RETR")
		r, err := s.client.Retr(base)
		if err != nil {
			return &netstorage.TransportError{Op: "RETR", Path: name, Err: err}
		}

		n, err = utils.TouchCopyBuffered(w, r, 0)
		closeErr := r.Close()
		if err != nil {
			return &netstorage.TransportError{Op: "RETR", Path: name, Err: err}
		}
		if closeErr != nil {
			return &netstorage.TransportError{Op: "RETR", Path: name, Err: closeErr}
		}
		return nil
	})
	return n, err
}

// Store uploads r to name after changing into its directory. The directory must exist.
func (s *Session) Store(name string, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inDir(name, func(base string) error {
		s.logger().WithField("path", name).Debug("STOR")
		if err := s.client.Stor(base, r); err != nil {
			return &netstorage.TransportError{Op: "STOR", Path: name, Err: err}
		}
		return nil
	})
}

// Delete removes name.
func (s *Session) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return &netstorage.TransportError{Op: "DELE", Path: name, Err: netstorage.ErrNotConnected}
	}

	s.logger().WithField("path", name).Debug("DELE")
	if err := s.client.Delete(name); err != nil {
		return &netstorage.TransportError{Op: "DELE", Path: name, Err: err}
	}
	return nil
}

// MakeDirectoryChain changes into each segment of dir in turn, creating the ones that are missing, then returns to
// the original working directory. The error names the first segment that could not be created.
func (s *Session) MakeDirectoryChain(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return &netstorage.TransportError{Op: "MKD", Path: dir, Err: netstorage.ErrNotConnected}
	}

	return s.restoring(func() error {
		walked := ""
		if strings.HasPrefix(dir, "/") {
			walked = "/"
			if err := s.client.ChangeDir("/"); err != nil {
				return &netstorage.TransportError{Op: "CWD", Path: "/", Err: err}
			}
		}

		for _, seg := range utils.Segments(dir) {
			walked = utils.JoinPath(walked, seg)
			if err := s.client.ChangeDir(seg); err == nil {
				continue
			}

			s.logger().WithField("path", walked).Debug("MKD")
			if err := s.client.MakeDir(seg); err != nil {
				return &netstorage.TransportError{Op: "MKD", Path: walked, Err: err}
			}
			if err := s.client.ChangeDir(seg); err != nil {
				return &netstorage.TransportError{Op: "CWD", Path: walked, Err: err}
			}
		}
		return nil
	})
}

// inDir runs fn with the working directory set to the directory of name, passing the base name. The caller holds
// the lock.
func (s *Session) inDir(name string, fn func(base string) error) error {
	if s.client == nil {
		return &netstorage.TransportError{Op: "CWD", Path: name, Err: netstorage.ErrNotConnected}
	}

	dir, base := utils.SplitPath(name)
	if dir == "" {
		return fn(base)
	}

	return s.restoring(func() error {
		if err := s.client.ChangeDir(dir); err != nil {
			return &netstorage.TransportError{Op: "CWD", Path: dir, Err: err}
		}
		return fn(base)
	})
}

// restoring saves the working directory, runs fn and changes back, whether fn failed or not. The caller holds the
// lock.
func (s *Session) restoring(fn func() error) error {
	pwd, err := s.client.CurrentDir()
	if err != nil {
		return &netstorage.TransportError{Op: "PWD", Err: err}
	}

	fnErr := fn()

	if err := s.client.ChangeDir(pwd); err != nil {
		if fnErr != nil {
			s.logger().WithError(err).WithField("path", pwd).Warn("restoring working directory failed")
			return fnErr
		}
		return &netstorage.TransportError{Op: "CWD", Path: pwd, Err: err}
	}
	return fnErr
}

func init() {
	defaultClientGetter = getClient
}

var _ netstorage.Lister = (*Session)(nil)
