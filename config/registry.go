package config

import (
	"sort"
	"sync"

	"github.com/apex/log"
	"github.com/hashicorp/go-multierror"

	"github.com/c2fo/netstorage"
	"github.com/c2fo/netstorage/backend/ftp"
	"github.com/c2fo/netstorage/options"
)

// Registry resolves storage keys to storages. Each key gets one Storage, and so one session, created on first use.
type Registry struct {
	mu       sync.RWMutex
	configs  map[string]StorageConfig
	storages map[string]*ftp.Storage
	extra    []options.NewFileSystemOption[ftp.Storage]
}

// NewRegistry builds a registry over the configured storages. extra options are applied to every storage it
// creates.
func NewRegistry(storages map[string]StorageConfig, extra ...options.NewFileSystemOption[ftp.Storage]) *Registry {
	configs := make(map[string]StorageConfig, len(storages))
	for k, v := range storages {
		configs[k] = v
	}
	return &Registry{
		configs:  configs,
		storages: make(map[string]*ftp.Storage),
		extra:    extra,
	}
}

// Keys returns the configured storage keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.configs))
	for k := range r.configs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Options returns the backend options of key.
func (r *Registry) Options(key string) (ftp.Options, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[key]
	if !ok {
		return ftp.Options{}, unknownStorage(key)
	}
	return cfg.FTPOptions(), nil
}

// Storage returns the storage of key, creating it on first use.
func (r *Registry) Storage(key string) (*ftp.Storage, error) {
	r.mu.RLock()
	s, ok := r.storages[key]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.storages[key]; ok {
		return s, nil
	}
	cfg, ok := r.configs[key]
	if !ok {
		return nil, unknownStorage(key)
	}

	opts := append([]options.NewFileSystemOption[ftp.Storage]{
		ftp.WithKey(key),
		ftp.WithOptions(cfg.FTPOptions()),
	}, r.extra...)
	s = ftp.NewStorage(opts...)
	r.storages[key] = s
	log.WithFields(log.Fields{
		"storage": key,
		"host":    cfg.Host,
		"options": options.OptionNames(opts...),
	}).Debug("storage created")
	return s, nil
}

// Close disconnects every storage created so far.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result *multierror.Error
	for _, s := range r.storages {
		if err := s.Disconnect(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	r.storages = make(map[string]*ftp.Storage)
	return result.ErrorOrNil()
}

func unknownStorage(key string) error {
	return &netstorage.ConfigurationError{Key: key, Reason: "not configured", Err: netstorage.ErrUnknownStorage}
}
