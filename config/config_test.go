package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/netstorage/backend/ftp"
)

const sampleConfig = `
logging:
  level: debug
  format: json
  output: stdout
cache:
  type: memory
storages:
  Media:
    host: ftp.example.com
    user: sshacs
    password: secret
    path: /12345/media
    media_url: https://cdn.example.com/media/
    dial_timeout: 10s
  backups:
    host: 10.0.0.5
    port: 2121
    user: backup
    max_memory_size: 1024
    disable_epsv: true
`

type configTestSuite struct {
	suite.Suite
	dir string
}

func (ts *configTestSuite) SetupTest() {
	ts.dir = ts.T().TempDir()
	ts.T().Setenv("XDG_CONFIG_HOME", ts.dir)
}

func (ts *configTestSuite) write(content string) string {
	path := filepath.Join(ts.dir, "config.yaml")
	ts.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (ts *configTestSuite) TestLoad() {
	cfg, err := Load(ts.write(sampleConfig))
	ts.Require().NoError(err)

	ts.Equal("DEBUG", cfg.Logging.Level)
	ts.Equal("json", cfg.Logging.Format)
	ts.Equal("stdout", cfg.Logging.Output)
	ts.Equal("memory", cfg.Cache.Type)

	ts.Require().Len(cfg.Storages, 2)
	media, ok := cfg.Storages["media"]
	ts.Require().True(ok, "keys are lowercased")
	ts.Equal("ftp.example.com", media.Host)
	ts.Equal(ftp.DefaultPort, media.Port)
	ts.Equal("/12345/media", media.Path)
	ts.Equal(10*time.Second, media.DialTimeout)
	ts.Equal(ftp.DefaultMaxMemorySize, media.MaxMemorySize)

	backups := cfg.Storages["backups"]
	ts.Equal(2121, backups.Port)
	ts.Equal(int64(1024), backups.MaxMemorySize)
	ts.True(backups.DisableEPSV)
	ts.Equal(ftp.DefaultDialTimeout, backups.DialTimeout)
}

func (ts *configTestSuite) TestLoad_DefaultLocationMissing() {
	cfg, err := Load("")
	ts.Require().NoError(err)
	ts.Equal("INFO", cfg.Logging.Level)
	ts.Equal("text", cfg.Logging.Format)
	ts.Equal("stderr", cfg.Logging.Output)
	ts.Equal("sqlite", cfg.Cache.Type)
	ts.Equal(filepath.Join(ts.dir, "netstorage", "cache.db"), cfg.Cache.Sqlite["path"])
	ts.Empty(cfg.Storages)
}

func (ts *configTestSuite) TestLoad_DefaultLocation() {
	dir := filepath.Join(ts.dir, "netstorage")
	ts.Require().NoError(os.MkdirAll(dir, 0o750))
	ts.Require().NoError(os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleConfig), 0o600))

	cfg, err := Load("")
	ts.Require().NoError(err)
	ts.Len(cfg.Storages, 2)
}

func (ts *configTestSuite) TestLoad_EnvOverride() {
	ts.T().Setenv("NETSTORAGE_LOGGING_LEVEL", "warn")
	ts.T().Setenv("NETSTORAGE_CACHE_TYPE", "badger")

	cfg, err := Load(ts.write(sampleConfig))
	ts.Require().NoError(err)
	ts.Equal("WARN", cfg.Logging.Level)
	ts.Equal("badger", cfg.Cache.Type)
}

func (ts *configTestSuite) TestLoad_MissingExplicitFile() {
	_, err := Load(filepath.Join(ts.dir, "nope.yaml"))
	ts.Error(err)
}

func (ts *configTestSuite) TestLoad_Invalid() {
	_, err := Load(ts.write("storages:\n  media:\n    host: ftp.example.com\n"))
	ts.Require().Error(err)
	ts.Contains(err.Error(), "User")
	ts.Contains(err.Error(), "'required'")

	_, err = Load(ts.write("cache:\n  type: redis\n"))
	ts.Require().Error(err)
	ts.Contains(err.Error(), "'oneof'")

	_, err = Load(ts.write("storages:\n  media:\n    host: ftp.example.com\n    user: u\n    media_url: not a url\n"))
	ts.Require().Error(err)
	ts.Contains(err.Error(), "MediaURL")
}

func (ts *configTestSuite) TestValidate_MysqlNeedsDSN() {
	cfg := &Config{Cache: CacheConfig{Type: "mysql"}}
	ApplyDefaults(cfg)
	err := Validate(cfg)
	ts.Require().Error(err)
	ts.Contains(err.Error(), "dsn is required")

	cfg.Cache.Mysql = map[string]any{"dsn": "user:pass@tcp(db:3306)/cache"}
	ts.NoError(Validate(cfg))
}

func (ts *configTestSuite) TestFTPOptions() {
	s := StorageConfig{
		Host: "h", Port: 2121, User: "u", Password: "p", Path: "/x", MediaURL: "https://m/",
		MaxMemorySize: 5, TempDir: "/tmp", DialTimeout: time.Second, DisableEPSV: true,
	}
	ts.Equal(ftp.Options{
		Host: "h", Port: 2121, User: "u", Password: "p", Path: "/x", MediaURL: "https://m/",
		MaxMemorySize: 5, TempDir: "/tmp", DialTimeout: time.Second, DisableEPSV: true,
	}, s.FTPOptions())
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(configTestSuite))
}
