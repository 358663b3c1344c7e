package listing

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

var recursiveRoot = []string{
	"/root:",
	"drwxr-xr-x 2 u g 4096 Jan 01 10:00 sub",
	"-rw-r--r-- 1 u g 123 Jan 01 10:00 a.txt",
	"/root/sub:",
	"-rw-r--r-- 1 u g 456 Jan 01 10:00 b.txt",
}

type listingSuite struct {
	suite.Suite
}

func (s *listingSuite) TestParse_Recursive() {
	dirs, files := Parse(recursiveRoot, "/root", true, true, true)
	s.Equal(map[string]int64{"/root/sub": 0}, dirs)
	s.Equal(map[string]int64{"/root/a.txt": 123, "/root/sub/b.txt": 456}, files)
}

func (s *listingSuite) TestParse_NonRecursiveUsesBareNames() {
	lines := []string{
		"drwxr-xr-x 2 u g 4096 Jan 01 10:00 sub",
		"-rw-r--r-- 1 u g 123 Jan 01 10:00 a.txt",
	}
	dirs, files := Parse(lines, "/root", false, true, true)
	s.Equal(map[string]int64{"sub": 0}, dirs)
	s.Equal(map[string]int64{"a.txt": 123}, files)
}

func (s *listingSuite) TestParse_WantFlags() {
	dirs, files := Parse(recursiveRoot, "/root", true, false, true)
	s.Empty(dirs, "folders not wanted")
	s.Len(files, 2)

	dirs, files = Parse(recursiveRoot, "/root", true, true, false)
	s.Len(dirs, 1)
	s.Empty(files, "files not wanted")
}

func (s *listingSuite) TestParse_ClassifiesByFirstCharacter() {
	lines := []string{
		"drwxr-xr-x 2 müller équipe 4096 Jan 01 10:00 d1",
		"-rw-r--r-- 1 müller équipe 7 Jan 01 10:00 f1",
		"crw-rw-rw- 1 root root 1 Jan 01 10:00 null",
		"brw-rw---- 1 root disk 0 Jan 01 10:00 sda",
		"prw-r--r-- 1 u g 0 Jan 01 10:00 pipe",
		"lrwxrwxrwx 1 u g 10 Jan 01 10:00 dangling",
	}
	dirs, files := Parse(lines, "", false, true, true)
	s.Equal(map[string]int64{"d1": 0}, dirs)
	s.Equal(map[string]int64{"f1": 7}, files)
}

func (s *listingSuite) TestParse_SymlinkDropped() {
	lines := []string{
		"lrwxrwxrwx 1 u g 10 Jan 01 10:00 link -> target",
		"drwxr-xr-x 1 u g 10 Jan 01 10:00 dirlink -> target",
	}
	dirs, files := Parse(lines, "/root", true, true, true)
	s.Empty(dirs)
	s.Empty(files)
}

func (s *listingSuite) TestParse_BlankAndShortLinesKeepCursor() {
	lines := []string{
		"/root/sub:",
		"",
		"   ",
		"total 8 blocks",
		"-rw-r--r-- 1 u g 456 Jan 01 10:00 b.txt",
	}
	_, files := Parse(lines, "/root", true, true, true)
	s.Equal(map[string]int64{"/root/sub/b.txt": 456}, files)

	sc := NewScanner(lines[1:4], "/root/sub")
	s.False(sc.Scan(), "no entries in blank and short lines")
	s.Equal("/root/sub", sc.Cursor(), "cursor untouched")
}

func (s *listingSuite) TestParse_UnionOfBlocks() {
	blockA := []string{
		"/a:",
		"-rw-r--r-- 1 u g 1 Jan 01 10:00 one.txt",
		"drwxr-xr-x 2 u g 4096 Jan 01 10:00 inner",
	}
	blockB := []string{
		"/b:",
		"-rw-r--r-- 1 u g 2 Jan 01 10:00 two.txt",
	}

	dirsA, filesA := Parse(blockA, "", true, true, true)
	dirsB, filesB := Parse(blockB, "", true, true, true)
	dirs, files := Parse(append(append([]string{}, blockA...), blockB...), "", true, true, true)

	for k, v := range dirsB {
		dirsA[k] = v
	}
	for k, v := range filesB {
		filesA[k] = v
	}
	s.Equal(dirsA, dirs)
	s.Equal(filesA, files)
	s.Equal(map[string]int64{"/a/one.txt": 1, "/b/two.txt": 2}, files)
}

func (s *listingSuite) TestParse_HeaderNormalized() {
	lines := []string{
		"./media//img/:",
		"-rw-r--r-- 1 u g 9 Jan 01 2019 logo.png",
	}
	_, files := Parse(lines, "", true, true, true)
	s.Equal(map[string]int64{"media/img/logo.png": 9}, files)
}

func (s *listingSuite) TestParse_RootNormalized() {
	lines := []string{"-rw-r--r-- 1 u g 3 Jan 01 10:00 a.txt"}
	_, files := Parse(lines, "/root//x/../", true, true, true)
	s.Equal(map[string]int64{"/root/a.txt": 3}, files)

	_, files = Parse(lines, "", true, true, true)
	s.Equal(map[string]int64{"a.txt": 3}, files, "empty root keeps bare names")
}

func (s *listingSuite) TestParse_MalformedSizeDropped() {
	lines := []string{
		"-rw-r--r-- 1 u g big Jan 01 10:00 a.txt",
		"-rw-r--r-- 1 u g -4 Jan 01 10:00 b.txt",
		"-rw-r--r-- 1 u g 5 Jan 01 10:00 c.txt",
	}
	_, files := Parse(lines, "", false, true, true)
	s.Equal(map[string]int64{"c.txt": 5}, files)
}

func (s *listingSuite) TestParse_EntryEndingInColon() {
	lines := []string{
		"/root:",
		"-rw-r--r-- 1 u g 5 Jan 01 10:00 odd:",
		"-rw-r--r-- 1 u g 6 Jan 01 10:00 next.txt",
	}
	_, files := Parse(lines, "/root", true, true, true)
	s.Equal(map[string]int64{"/root/odd:": 5, "/root/next.txt": 6}, files, "well formed entry is not a header")
}

func (s *listingSuite) TestParse_Deterministic() {
	dirs1, files1 := Parse(recursiveRoot, "/root", true, true, true)
	dirs2, files2 := Parse(recursiveRoot, "/root", true, true, true)
	s.Equal(dirs1, dirs2)
	s.Equal(files1, files2)
}

func (s *listingSuite) TestParse_Empty() {
	dirs, files := Parse(nil, "/root", true, true, true)
	s.NotNil(dirs)
	s.NotNil(files)
	s.Empty(dirs)
	s.Empty(files)
}

func (s *listingSuite) TestEntries() {
	entries := Entries(recursiveRoot, "/root")
	s.Require().Len(entries, 3)

	sub := entries[0]
	s.Equal(Directory, sub.Kind)
	s.Equal("drwxr-xr-x", sub.Permissions)
	s.Equal("2", sub.Links)
	s.Equal("u", sub.Owner)
	s.Equal("g", sub.Group)
	s.Equal(int64(0), sub.Size, "directories report no size")
	s.Equal(Stamp{Month: "Jan", Day: "01", TimeOrYear: "10:00"}, sub.Modified)
	s.Equal("sub", sub.Name)
	s.Equal("/root", sub.Dir)
	s.Equal("/root/sub", sub.Path)

	b := entries[2]
	s.Equal(File, b.Kind)
	s.Equal(int64(456), b.Size)
	s.Equal("/root/sub", b.Dir)
	s.Equal("/root/sub/b.txt", b.Path)
}

func (s *listingSuite) TestEntries_MissingOwnerGroup() {
	entries := Entries([]string{"-rw-r--r-- 42 Jan 01 10:00 a.txt"}, "")
	s.Require().Len(entries, 1)
	s.Equal("", entries[0].Links)
	s.Equal("", entries[0].Owner)
	s.Equal("", entries[0].Group)
	s.Equal(int64(42), entries[0].Size)

	entries = Entries([]string{"-rw-r--r-- 1 ftp 42 Jan 01 10:00 a.txt"}, "")
	s.Require().Len(entries, 1)
	s.Equal("1", entries[0].Links)
	s.Equal("ftp", entries[0].Owner)
	s.Equal("", entries[0].Group)
}

func (s *listingSuite) TestNames() {
	s.Equal([]string{"a", "b", "c"}, Names(map[string]int64{"c": 0, "a": 1, "b": 2}))
	s.Empty(Names(nil))
}

func (s *listingSuite) TestListedNames() {
	lines := []string{
		"total 12",
		"drwxr-xr-x 2 u g 4096 Jan 01 10:00 img",
		"-rw-r--r-- 1 u g 11 Jan 01 10:00 a.txt",
		"lrwxrwxrwx 1 u g 5 Jan 01 10:00 latest -> a.txt",
		"prw-r--r-- 1 u g 0 Jan 01 10:00 queue",
		"",
		"-rw-r--r-- 1 u g big Jan 01 10:00 bad.txt",
	}
	s.Equal([]string{"img", "a.txt", "latest", "queue"}, ListedNames(lines))
	s.Empty(ListedNames(nil))

	dirs, files := Parse(lines, "", false, true, true)
	s.Equal(map[string]int64{"img": 0}, dirs, "symlinks and pipes stay out of the typed view")
	s.Equal(map[string]int64{"a.txt": 11}, files)
}

func (s *listingSuite) TestKindString() {
	s.Equal("directory", Directory.String())
	s.Equal("file", File.String())
	s.Equal("symlink", Symlink.String())
	s.Equal("other", Other.String())
	s.Equal("unknown", Kind(0).String())
}

func (s *listingSuite) TestStampString() {
	s.Equal("Jan 01 2019", Stamp{Month: "Jan", Day: "01", TimeOrYear: "2019"}.String())
}

func TestListing(t *testing.T) {
	suite.Run(t, new(listingSuite))
}
