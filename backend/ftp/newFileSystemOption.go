package ftp

import (
	"github.com/c2fo/netstorage/backend/ftp/types"
	"github.com/c2fo/netstorage/options"
)

const (
	optionNameFTPClient = "ftpclient"
	optionNameOptions   = "options"
	optionNameKey       = "key"
)

// WithClient returns clientOpt implementation of NewFileSystemOption
//
// WithClient is used to explicitly specify an already connected Client for the storage's session.
// The session still probes it with NOOP before use.
func WithClient(c types.Client) options.NewFileSystemOption[Storage] {
	return &clientOpt{
		client: c,
	}
}

type clientOpt struct {
	client types.Client
}

func (ct *clientOpt) Apply(s *Storage) {
	s.session.client = ct.client
}

func (ct *clientOpt) NewFileSystemOptionName() string {
	return optionNameFTPClient
}

// WithOptions returns optionsOpt implementation of NewFileSystemOption
//
// WithOptions is used to specify connection and download options for the storage.
func WithOptions(opts Options) options.NewFileSystemOption[Storage] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(s *Storage) {
	s.options = o.options
}

func (o *optionsOpt) NewFileSystemOptionName() string {
	return optionNameOptions
}

// WithKey returns keyOpt implementation of NewFileSystemOption
//
// WithKey records the registry key of the storage so errors can name it.
func WithKey(key string) options.NewFileSystemOption[Storage] {
	return &keyOpt{
		key: key,
	}
}

type keyOpt struct {
	key string
}

func (k *keyOpt) Apply(s *Storage) {
	s.key = k.key
}

func (k *keyOpt) NewFileSystemOptionName() string {
	return optionNameKey
}
