package ftp

import (
	"bytes"
	"context"
	"io"
	"os"
	"slices"

	"github.com/c2fo/netstorage"
	"github.com/c2fo/netstorage/listing"
	"github.com/c2fo/netstorage/options"
	"github.com/c2fo/netstorage/utils"
)

// Storage implements netstorage.Storage over a single FTP session.
type Storage struct {
	key     string
	options Options
	session *Session
}

// NewStorage initializer for the Storage struct.
func NewStorage(opts ...options.NewFileSystemOption[Storage]) *Storage {
	s := &Storage{session: &Session{}}

	// apply options
	options.ApplyOptions(s, opts...)

	s.options = s.options.withDefaults()
	s.session.options = s.options

	return s
}

// Key returns the registry key the storage was built for, if any.
func (s *Storage) Key() string {
	return s.key
}

// Options returns the effective options, defaults applied.
func (s *Storage) Options() Options {
	return s.options
}

// Session returns the underlying session.
func (s *Storage) Session() *Session {
	return s.session
}

// Disconnect closes the underlying session.
func (s *Storage) Disconnect() error {
	return s.session.Disconnect()
}

// Open downloads name and returns a handle on its content. Files larger than Options.MaxMemorySize are spilled to
// a temp file.
func (s *Storage) Open(ctx context.Context, name string) (netstorage.File, error) {
	if err := s.check(name); err != nil {
		return nil, err
	}
	if err := s.session.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	size, found, err := s.stat(name)
	switch {
	case err != nil && isNotFound(err):
		return nil, &netstorage.NotFoundError{Path: name, Err: err}
	case err != nil:
		return nil, err
	case !found:
		return nil, &netstorage.NotFoundError{Path: name}
	}

	if size > s.options.MaxMemorySize {
		return s.openOnDisk(name)
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := s.session.RetrieveInto(name, buf); err != nil {
		return nil, err
	}
	return newMemoryFile(name, buf.Bytes()), nil
}

func (s *Storage) openOnDisk(name string) (netstorage.File, error) {
	tmp, err := os.CreateTemp(s.options.TempDir, "*"+tempFileSuffix)
	if err != nil {
		return nil, err
	}

	n, err := s.session.RetrieveInto(name, tmp)
	if err == nil {
		_, err = tmp.Seek(0, io.SeekStart)
	}
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, err
	}
	return newDiskFile(name, tmp, n), nil
}

// Save uploads content to name, creating any missing parent directories, and returns name unchanged.
func (s *Storage) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := s.check(name); err != nil {
		return "", err
	}
	if err := s.session.EnsureConnected(ctx); err != nil {
		return "", err
	}

	if dir, _ := utils.SplitPath(name); dir != "" {
		if err := s.session.MakeDirectoryChain(dir); err != nil {
			return "", err
		}
	}

	if err := s.session.Store(name, content); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes name. A name that does not exist is left alone.
func (s *Storage) Delete(ctx context.Context, name string) error {
	found, err := s.Exists(ctx, name)
	if err != nil || !found {
		return err
	}
	return s.session.Delete(name)
}

// Exists reports whether the base name of name appears in its parent's listing. A "not found" reply for the
// parent is reported as false.
func (s *Storage) Exists(ctx context.Context, name string) (bool, error) {
	if err := s.check(name); err != nil {
		return false, err
	}
	if err := s.session.EnsureConnected(ctx); err != nil {
		return false, err
	}

	dir, base := utils.SplitPath(name)
	lines, err := s.session.List(dir, false)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return slices.Contains(listing.ListedNames(lines), base), nil
}

// Listdir returns the sorted names of the direct child directories and files of name.
func (s *Storage) Listdir(ctx context.Context, name string) ([]string, []string, error) {
	if err := s.session.EnsureConnected(ctx); err != nil {
		return nil, nil, err
	}

	lines, err := s.session.List(name, false)
	if err != nil {
		return nil, nil, err
	}

	dirs, files := listing.Parse(lines, name, false, true, true)
	return listing.Names(dirs), listing.Names(files), nil
}

// Walk returns every directory and file below name, keyed by full path. Files map to their size.
func (s *Storage) Walk(ctx context.Context, name string) (dirs, files map[string]int64, err error) {
	if err := s.session.EnsureConnected(ctx); err != nil {
		return nil, nil, err
	}

	lines, err := s.session.List(name, true)
	if err != nil {
		return nil, nil, err
	}

	dirs, files = listing.Parse(lines, name, true, true, true)
	return dirs, files, nil
}

// Size returns the size of name as reported by its parent's listing. A missing entry, or a missing parent, has
// size 0. Callers that need to tell absent from empty use Exists.
func (s *Storage) Size(ctx context.Context, name string) (int64, error) {
	if err := s.check(name); err != nil {
		return 0, err
	}
	if err := s.session.EnsureConnected(ctx); err != nil {
		return 0, err
	}

	size, _, err := s.stat(name)
	if err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return size, nil
}

// URL resolves name against Options.MediaURL.
func (s *Storage) URL(name string) (string, error) {
	if s.options.MediaURL == "" {
		return "", &netstorage.ConfigurationError{Key: s.key, Reason: "media_url is not configured", Err: netstorage.ErrNoBaseURL}
	}

	u, err := utils.ResolveURL(s.options.MediaURL, name)
	if err != nil {
		return "", &netstorage.ConfigurationError{Key: s.key, Reason: "media_url is invalid", Err: err}
	}
	return u, nil
}

// stat looks name up in its parent's listing.
func (s *Storage) stat(name string) (size int64, found bool, err error) {
	dir, base := utils.SplitPath(name)

	lines, err := s.session.List(dir, false)
	if err != nil {
		return 0, false, err
	}

	_, files := listing.Parse(lines, dir, false, false, true)
	size, found = files[base]
	return size, found, nil
}

func (s *Storage) check(name string) error {
	if s == nil {
		return errStorageRequired
	}
	if name == "" {
		return errNameRequired
	}
	return nil
}

var _ netstorage.Storage = (*Storage)(nil)
