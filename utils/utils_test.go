package utils_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/netstorage/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type utilsSuite struct {
	suite.Suite
}

type pathTest struct {
	path     string
	expected string
	message  string
}

func (s *utilsSuite) TestNormPath() {
	tests := []pathTest{
		{path: "", expected: "", message: "empty stays empty"},
		{path: "/root/", expected: "/root", message: "trailing slash removed"},
		{path: "/root//sub/./x/..", expected: "/root/sub", message: "redundant parts collapsed"},
		{path: "./sub", expected: "sub", message: "relative dot removed"},
		{path: "/", expected: "/", message: "root stays root"},
	}

	for _, tt := range tests {
		s.Run(tt.message, func() {
			s.Equal(tt.expected, utils.NormPath(tt.path), tt.message)
		})
	}
}

func (s *utilsSuite) TestJoinPath() {
	s.Equal("/root/a.txt", utils.JoinPath("/root", "a.txt"))
	s.Equal("/root/a.txt", utils.JoinPath("/root/", "a.txt"))
	s.Equal("a.txt", utils.JoinPath("", "a.txt"), "empty cursor keeps the bare name")
	s.Equal("/other/a.txt", utils.JoinPath("/root", "/other/a.txt"), "absolute name wins")
	s.Equal("/root/sub", utils.JoinPath("/root/x", "../sub"))
}

func (s *utilsSuite) TestSplitPath() {
	tests := []struct {
		path, dir, base string
	}{
		{"/root/a.txt", "/root", "a.txt"},
		{"a.txt", "", "a.txt"},
		{"/a.txt", "/", "a.txt"},
		{"sub/dir/", "sub/dir", ""},
		{"sub//a.txt", "sub", "a.txt"},
	}

	for _, tt := range tests {
		s.Run(tt.path, func() {
			dir, base := utils.SplitPath(tt.path)
			s.Equal(tt.dir, dir)
			s.Equal(tt.base, base)
		})
	}
}

func (s *utilsSuite) TestSplitExt() {
	tests := []struct {
		name, root, ext string
	}{
		{"a.txt", "a", ".txt"},
		{"archive.tar.GZ", "archive.tar", ".GZ"},
		{".profile", ".profile", ""},
		{"..hidden", "..hidden", ""},
		{"...a.b", "...a", ".b"},
		{"noext", "noext", ""},
		{"trailing.", "trailing", "."},
		{"dir.d/file", "dir.d/file", ""},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			root, ext := utils.SplitExt(tt.name)
			s.Equal(tt.root, root)
			s.Equal(tt.ext, ext)
		})
	}
}

func (s *utilsSuite) TestResolveURL() {
	u, err := utils.ResolveURL("http://cdn.example.com/media/", "a/b.txt")
	s.Require().NoError(err)
	s.Equal("http://cdn.example.com/media/a/b.txt", u)

	u, err = utils.ResolveURL("http://cdn.example.com/media/", "a\\b.txt")
	s.Require().NoError(err)
	s.Equal("http://cdn.example.com/media/a/b.txt", u, "backslashes become slashes")

	u, err = utils.ResolveURL("http://cdn.example.com/media", "b.txt")
	s.Require().NoError(err)
	s.Equal("http://cdn.example.com/b.txt", u, "base without trailing slash drops its last segment")

	_, err = utils.ResolveURL("http://[::1", "b.txt")
	s.Error(err, "unparseable base")
}

func (s *utilsSuite) TestRemoveTrailingSlash() {
	s.Equal("/some/path", utils.RemoveTrailingSlash("/some/path/"))
	s.Equal("", utils.RemoveTrailingSlash("/"))
}

func (s *utilsSuite) TestSegments() {
	s.Equal([]string{"a", "b", "c"}, utils.Segments("/a//b/c/"))
	s.Empty(utils.Segments("/"))
	s.Empty(utils.Segments(""))
}

type zeroWriteCounter struct {
	bytes.Buffer
	calls int
}

func (w *zeroWriteCounter) Write(p []byte) (int, error) {
	w.calls++
	return w.Buffer.Write(p)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func (s *utilsSuite) TestTouchCopyBuffered() {
	w := &zeroWriteCounter{}
	n, err := utils.TouchCopyBuffered(w, strings.NewReader("hello world"), 0)
	s.Require().NoError(err)
	s.Equal(int64(11), n)
	s.Equal("hello world", w.String())

	empty := &zeroWriteCounter{}
	n, err = utils.TouchCopyBuffered(empty, strings.NewReader(""), 16)
	s.Require().NoError(err)
	s.Equal(int64(0), n)
	s.Equal(1, empty.calls, "empty source still produces a write")

	_, err = utils.TouchCopyBuffered(&zeroWriteCounter{}, failingReader{}, 0)
	s.EqualError(err, "boom")
}

func (s *utilsSuite) TestPtr() {
	p := utils.Ptr(uint(7))
	s.Require().NotNil(p)
	s.Equal(uint(7), *p)
}

func TestUtils(t *testing.T) {
	suite.Run(t, new(utilsSuite))
}
