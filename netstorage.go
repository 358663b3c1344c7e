package netstorage

import (
	"context"
	"io"
)

// Storage represents a remote content store rooted at a configured path. Names are slash separated and resolved
// against that root.
type Storage interface {
	// Open returns a readable handle on the named file. A *NotFoundError is returned when the parent listing does
	// not contain the name.
	Open(ctx context.Context, name string) (File, error)

	// Save uploads content to name, creating missing parent directories, and returns name unchanged. An existing
	// file is overwritten.
	Save(ctx context.Context, name string, content io.Reader) (string, error)

	// Delete removes the named file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether name appears in its parent's listing. "Not found" replies are reported as false.
	Exists(ctx context.Context, name string) (bool, error)

	// Listdir returns the sorted names of the direct child directories and files of name.
	Listdir(ctx context.Context, name string) (dirs []string, files []string, err error)

	// Size returns the byte count reported by the parent listing. A missing entry has size 0, use Exists to tell
	// absent from empty.
	Size(ctx context.Context, name string) (int64, error)

	// URL returns the public URL of name.
	URL(name string) (string, error)
}

// File is a handle on downloaded content, backed by memory or by a temporary file on disk.
type File interface {
	io.ReadSeekCloser

	// Name returns the remote name the handle was opened with.
	Name() string

	// Size returns the number of bytes downloaded.
	Size() int64

	// InMemory is true when the content is held in memory rather than in a temporary file.
	InMemory() bool
}

// Lister issues raw directory listings over a session.
type Lister interface {
	EnsureConnected(ctx context.Context) error
	List(name string, recursive bool) ([]string, error)
}
