// Package config loads netstorage configuration from a YAML file and NETSTORAGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/c2fo/netstorage/backend/ftp"
)

const envPrefix = "NETSTORAGE"

// Config is the root of the configuration file.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`

	Cache CacheConfig `mapstructure:"cache"`

	// Storages maps a storage key to its FTP root. Keys are lowercased by the loader.
	Storages map[string]StorageConfig `mapstructure:"storages" validate:"dive"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR FATAL debug info warn error fatal"`

	Format string `mapstructure:"format" validate:"required,oneof=text json"`

	// Output is stdout, stderr or a file path.
	Output string `mapstructure:"output" validate:"required"`
}

// CacheConfig selects the cache store. Only the section named by Type is read.
type CacheConfig struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite mysql badger memory"`

	Sqlite map[string]any `mapstructure:"sqlite"`

	Mysql map[string]any `mapstructure:"mysql"`

	Badger map[string]any `mapstructure:"badger"`

	Memory map[string]any `mapstructure:"memory"`
}

// StorageConfig is one remote root.
type StorageConfig struct {
	Host string `mapstructure:"host" validate:"required,hostname_rfc1123|ip"`

	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`

	User string `mapstructure:"user" validate:"required"`

	Password string `mapstructure:"password"`

	Path string `mapstructure:"path"`

	MediaURL string `mapstructure:"media_url" validate:"omitempty,url"`

	MaxMemorySize int64 `mapstructure:"max_memory_size" validate:"gte=0"`

	TempDir string `mapstructure:"temp_dir"`

	DialTimeout time.Duration `mapstructure:"dial_timeout" validate:"gte=0"`

	DisableEPSV bool `mapstructure:"disable_epsv"`
}

// FTPOptions converts the section into backend options.
func (s StorageConfig) FTPOptions() ftp.Options {
	return ftp.Options{
		Host:          s.Host,
		Port:          s.Port,
		User:          s.User,
		Password:      s.Password,
		Path:          s.Path,
		MediaURL:      s.MediaURL,
		MaxMemorySize: s.MaxMemorySize,
		TempDir:       s.TempDir,
		DialTimeout:   s.DialTimeout,
		DisableEPSV:   s.DisableEPSV,
	}
}

// Load reads configPath, or config.yaml from the default directory when configPath is empty. A missing default
// file is not an error; defaults and environment variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about
	for _, key := range []string{"logging.level", "logging.format", "logging.output", "cache.type"} {
		_ = v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(GetConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// GetConfigDir returns $XDG_CONFIG_HOME/netstorage, falling back to ~/.config/netstorage.
func GetConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "netstorage")
	}

	home, err := homedir.Dir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "netstorage")
}

func GetDefaultConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}
