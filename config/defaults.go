package config

import (
	"path/filepath"
	"strings"

	"github.com/c2fo/netstorage/backend/ftp"
)

// ApplyDefaults fills zero values and normalizes the log level to upper case.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyCacheDefaults(&cfg.Cache)

	for key, s := range cfg.Storages {
		applyStorageDefaults(&s)
		cfg.Storages[key] = s
	}
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyCacheDefaults(cfg *CacheConfig) {
	if cfg.Type == "" {
		cfg.Type = "sqlite"
	}
	if cfg.Type == "sqlite" {
		if cfg.Sqlite == nil {
			cfg.Sqlite = map[string]any{}
		}
		if _, ok := cfg.Sqlite["path"]; !ok {
			cfg.Sqlite["path"] = filepath.Join(GetConfigDir(), "cache.db")
		}
	}
}

func applyStorageDefaults(cfg *StorageConfig) {
	if cfg.Port == 0 {
		cfg.Port = ftp.DefaultPort
	}
	if cfg.MaxMemorySize == 0 {
		cfg.MaxMemorySize = ftp.DefaultMaxMemorySize
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = ftp.DefaultDialTimeout
	}
}
