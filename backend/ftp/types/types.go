package types

import (
	"io"
)

// Client is the subset of an FTP control connection used by a Session. It is an interface to make it easier to
// test.
type Client interface {
	ChangeDir(path string) error
	CurrentDir() (string, error)
	Delete(path string) error
	Login(user string, password string) error
	MakeDir(path string) error
	NoOp() error
	Quit() error
	// RawList issues LIST with args and returns the listing text line by line, unparsed.
	RawList(args string) ([]string, error)
	Retr(path string) (io.ReadCloser, error)
	Stor(path string, r io.Reader) error
}
