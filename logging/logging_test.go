package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/suite"
)

type loggingTestSuite struct {
	suite.Suite
}

func (ts *loggingTestSuite) TearDownTest() {
	ts.NoError(Close())
	ts.Require().NoError(Setup(Options{Level: "info", Format: "text", Output: "stderr"}))
}

func (ts *loggingTestSuite) TestJSONFile() {
	path := filepath.Join(ts.T().TempDir(), "netstorage.log")
	ts.Require().NoError(Setup(Options{Level: "DEBUG", Format: "json", Output: path}))

	log.WithFields(log.Fields{"storage": "media"}).Debug("synced")
	log.Info("done")
	ts.Require().NoError(Close())

	data, err := os.ReadFile(path)
	ts.Require().NoError(err)

	var first struct {
		Fields  map[string]any `json:"fields"`
		Level   string         `json:"level"`
		Message string         `json:"message"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	ts.Require().NoError(dec.Decode(&first))
	ts.Equal("debug", first.Level)
	ts.Equal("synced", first.Message)
	ts.Equal("media", first.Fields["storage"])
}

func (ts *loggingTestSuite) TestLevelFilters() {
	path := filepath.Join(ts.T().TempDir(), "warn.log")
	ts.Require().NoError(Setup(Options{Level: "warn", Format: "text", Output: path}))

	log.Info("hidden")
	log.Warn("shown")
	ts.Require().NoError(Close())

	data, err := os.ReadFile(path)
	ts.Require().NoError(err)
	ts.NotContains(string(data), "hidden")
	ts.Contains(string(data), "shown")
}

func (ts *loggingTestSuite) TestSetLevel() {
	ts.Require().NoError(SetLevel("ERROR"))
	ts.Equal(log.ErrorLevel, log.Log.(*log.Logger).Level)
	ts.Error(SetLevel("loud"))
}

func (ts *loggingTestSuite) TestErrors() {
	ts.Error(Setup(Options{Level: "chatty"}))
	ts.Error(Setup(Options{Level: "info", Format: "xml"}))
	ts.Error(Setup(Options{Level: "info", Output: filepath.Join(ts.T().TempDir(), "missing", "x.log")}))
}

func TestLogging(t *testing.T) {
	suite.Run(t, new(loggingTestSuite))
}
