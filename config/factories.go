package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/c2fo/netstorage/cache"
)

const (
	defaultConnectRetries = 3
	defaultRetryDelay     = 3 * time.Second
)

// CreateCacheStore opens the cache store selected by cfg.Type, decoding its section into the store's options.
func CreateCacheStore(cfg *CacheConfig) (cache.Store, error) {
	switch cfg.Type {
	case "sqlite":
		return createSqliteStore(cfg.Sqlite)
	case "mysql":
		return createMysqlStore(cfg.Mysql)
	case "badger":
		return createBadgerStore(cfg.Badger)
	case "memory":
		return cache.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache type: %q", cfg.Type)
	}
}

// decodeCacheOptions decodes a per-type cache section into result. Durations may be given as strings like "3s".
func decodeCacheOptions(kind string, input map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     result,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("failed to decode %s cache config: %w", kind, err)
	}
	return nil
}

func createSqliteStore(options map[string]any) (cache.Store, error) {
	type sqliteConfig struct {
		Path      string `mapstructure:"path"`
		TxRetries int    `mapstructure:"tx_retries"`
	}

	var storeCfg sqliteConfig
	if err := decodeCacheOptions("sqlite", options, &storeCfg); err != nil {
		return nil, err
	}
	if storeCfg.Path == "" {
		return nil, fmt.Errorf("sqlite cache: path is required")
	}

	if storeCfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(storeCfg.Path), 0o750); err != nil {
			return nil, fmt.Errorf("sqlite cache: %w", err)
		}
	}

	return cache.OpenGorm(cache.GormOptions{
		Driver:       cache.DriverSqlite,
		DSN:          storeCfg.Path,
		TxRetries:    storeCfg.TxRetries,
		MaxOpenConns: 1,
	})
}

func createMysqlStore(options map[string]any) (cache.Store, error) {
	opts, err := mysqlOptions(options)
	if err != nil {
		return nil, err
	}
	return cache.OpenGorm(opts)
}

func mysqlOptions(options map[string]any) (cache.GormOptions, error) {
	type mysqlConfig struct {
		DSN            string        `mapstructure:"dsn"`
		ConnectRetries int           `mapstructure:"connect_retries"`
		RetryDelay     time.Duration `mapstructure:"retry_delay"`
		TxRetries      int           `mapstructure:"tx_retries"`
		MaxOpenConns   int           `mapstructure:"max_open_conns"`
	}

	var storeCfg mysqlConfig
	if err := decodeCacheOptions("mysql", options, &storeCfg); err != nil {
		return cache.GormOptions{}, err
	}
	if storeCfg.DSN == "" {
		return cache.GormOptions{}, fmt.Errorf("mysql cache: dsn is required")
	}

	if storeCfg.ConnectRetries == 0 {
		storeCfg.ConnectRetries = defaultConnectRetries
	}
	if storeCfg.RetryDelay == 0 {
		storeCfg.RetryDelay = defaultRetryDelay
	}

	return cache.GormOptions{
		Driver:         cache.DriverMysql,
		DSN:            storeCfg.DSN,
		ConnectRetries: storeCfg.ConnectRetries,
		RetryDelay:     storeCfg.RetryDelay,
		TxRetries:      storeCfg.TxRetries,
		MaxOpenConns:   storeCfg.MaxOpenConns,
	}, nil
}

func createBadgerStore(options map[string]any) (cache.Store, error) {
	type badgerConfig struct {
		Dir      string `mapstructure:"dir"`
		InMemory bool   `mapstructure:"in_memory"`
	}

	var storeCfg badgerConfig
	if err := decodeCacheOptions("badger", options, &storeCfg); err != nil {
		return nil, err
	}
	if storeCfg.Dir == "" && !storeCfg.InMemory {
		storeCfg.Dir = filepath.Join(GetConfigDir(), "cache.badger")
	}

	return cache.OpenBadger(cache.BadgerOptions{Dir: storeCfg.Dir, InMemory: storeCfg.InMemory})
}
