package ftp

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type fileTestSuite struct {
	suite.Suite
}

func (ts *fileTestSuite) TestMemoryFile() {
	f := newMemoryFile("a.txt", []byte("hello world"))

	ts.True(f.InMemory())
	ts.Equal("a.txt", f.Name())
	ts.Equal(int64(11), f.Size())
	ts.Empty(f.LocalPath())

	pos, err := f.Seek(6, io.SeekStart)
	ts.Require().NoError(err)
	ts.Equal(int64(6), pos)

	data, err := io.ReadAll(f)
	ts.Require().NoError(err)
	ts.Equal("world", string(data))

	_, err = f.Seek(-1, io.SeekStart)
	ts.Require().Error(err)
	ts.Contains(err.Error(), "seek error")

	ts.NoError(f.Close())
}

func (ts *fileTestSuite) TestDiskFile() {
	tmp, err := os.CreateTemp(ts.T().TempDir(), "*"+tempFileSuffix)
	ts.Require().NoError(err)
	_, err = tmp.WriteString("on disk")
	ts.Require().NoError(err)
	_, err = tmp.Seek(0, io.SeekStart)
	ts.Require().NoError(err)

	f := newDiskFile("big.bin", tmp, 7)
	ts.False(f.InMemory())
	ts.Equal(tmp.Name(), f.LocalPath())
	ts.Equal(int64(7), f.Size())

	data, err := io.ReadAll(f)
	ts.Require().NoError(err)
	ts.Equal("on disk", string(data))

	pos, err := f.Seek(-4, io.SeekEnd)
	ts.Require().NoError(err)
	ts.Equal(int64(3), pos)

	ts.Require().NoError(f.Close())
	_, err = os.Stat(tmp.Name())
	ts.True(os.IsNotExist(err))
}

func (ts *fileTestSuite) TestDiskFile_CloseTwice() {
	tmp, err := os.CreateTemp(ts.T().TempDir(), "*"+tempFileSuffix)
	ts.Require().NoError(err)

	f := newDiskFile("x", tmp, 0)
	ts.Require().NoError(f.Close())

	err = f.Close()
	ts.Require().Error(err, "second close reports the closed file")
	ts.Contains(err.Error(), "close error")
}

func (ts *fileTestSuite) TestDiskFile_ReadAfterClose() {
	tmp, err := os.CreateTemp(ts.T().TempDir(), "*"+tempFileSuffix)
	ts.Require().NoError(err)

	f := newDiskFile(filepath.Base(tmp.Name()), tmp, 0)
	ts.Require().NoError(f.Close())

	_, err = f.Read(make([]byte, 4))
	ts.Require().Error(err)
	ts.Contains(err.Error(), "read error")
}

func TestFile(t *testing.T) {
	suite.Run(t, new(fileTestSuite))
}
