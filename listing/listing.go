// Package listing parses Unix long format directory listings as returned by the FTP LIST and LIST -R commands.
package listing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/c2fo/netstorage/utils"
)

// symlinkArrow separates a symlink's name from its target in a long listing.
const symlinkArrow = "->"

// minFields is the smallest token count of a usable long listing line.
const minFields = 6

// Kind classifies a listing entry by the first character of its permission string.
type Kind int

const (
	_ Kind = iota
	// Directory entries start with 'd'
	Directory
	// File entries start with '-'
	File
	// Symlink entries carry a "->" target and are never reported as directories or files
	Symlink
	// Other covers devices, pipes and sockets
	Other
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	case Symlink:
		return "symlink"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Stamp is the raw modification triple of a listing line, e.g. "Jan", "01", "10:00" or "Jan", "01", "2019".
// It is passed through untouched.
type Stamp struct {
	Month      string
	Day        string
	TimeOrYear string
}

func (s Stamp) String() string {
	return s.Month + " " + s.Day + " " + s.TimeOrYear
}

// Entry is one classified line of a long listing.
type Entry struct {
	Kind        Kind
	Permissions string
	Links       string
	Owner       string
	Group       string
	// Size is zero for directories.
	Size     int64
	Modified Stamp
	// Name is the bare final token of the line.
	Name string
	// Dir is the cursor the entry was listed under.
	Dir string
	// Path is Dir joined with Name, normalized.
	Path string
}

type lineKind int

const (
	lineSkip lineKind = iota
	lineHeader
	lineEntry
)

// classify is the only place a raw line is interpreted. Headers are returned as the normalized cursor they set.
// A line ending in ":" is only a header when it does not also parse as an entry, so a file named "x:" is kept.
func classify(line string) (lineKind, Entry, string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineSkip, Entry{}, ""
	}

	fields := strings.Fields(trimmed)
	entry, ok := parseEntry(fields)

	if strings.HasSuffix(trimmed, ":") && !ok {
		return lineHeader, Entry{}, utils.NormPath(strings.TrimSuffix(trimmed, ":"))
	}
	if !ok {
		return lineSkip, Entry{}, ""
	}
	return lineEntry, entry, ""
}

func parseEntry(fields []string) (Entry, bool) {
	n := len(fields)
	if n < minFields {
		return Entry{}, false
	}

	e := Entry{
		Permissions: fields[0],
		Modified:    Stamp{Month: fields[n-4], Day: fields[n-3], TimeOrYear: fields[n-2]},
		Name:        fields[n-1],
	}

	if fields[n-2] == symlinkArrow {
		e.Kind = Symlink
		e.Name = fields[n-3]
		return e, true
	}

	switch fields[0][0] {
	case 'd':
		e.Kind = Directory
	case '-':
		e.Kind = File
		size, err := strconv.ParseInt(fields[n-5], 10, 64)
		if err != nil || size < 0 {
			return Entry{}, false
		}
		e.Size = size
	default:
		e.Kind = Other
		return e, true
	}

	// the columns between the permissions and the size, when present, are links, owner and group
	meta := fields[1 : n-5]
	if len(meta) > 0 {
		e.Links = meta[0]
	}
	if len(meta) > 1 {
		e.Owner = meta[1]
	}
	if len(meta) > 2 {
		e.Group = meta[2]
	}
	return e, true
}

// Scanner walks raw listing lines, tracking the current directory cursor, and yields directory and file entries.
type Scanner struct {
	lines  []string
	pos    int
	cursor string
	entry  Entry
}

// NewScanner returns a Scanner over lines with the cursor set to the normalized root.
func NewScanner(lines []string, root string) *Scanner {
	return &Scanner{lines: lines, cursor: utils.NormPath(root)}
}

// Scan advances to the next directory or file entry. It returns false once the lines are exhausted.
func (s *Scanner) Scan() bool {
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		s.pos++

		kind, entry, header := classify(line)
		switch kind {
		case lineHeader:
			s.cursor = header
		case lineEntry:
			if entry.Kind != Directory && entry.Kind != File {
				continue
			}
			entry.Dir = s.cursor
			entry.Path = utils.JoinPath(s.cursor, entry.Name)
			s.entry = entry
			return true
		}
	}
	return false
}

// Entry returns the entry produced by the last successful Scan.
func (s *Scanner) Entry() Entry {
	return s.entry
}

// Cursor returns the current directory cursor.
func (s *Scanner) Cursor() string {
	return s.cursor
}

// Parse collapses a raw listing of root into directory and file maps. Directories map to 0 and files to their
// size. Keys are bare names unless recursive is set, in which case they are cursor qualified paths.
func Parse(lines []string, root string, recursive, wantFolders, wantFiles bool) (dirs, files map[string]int64) {
	dirs = map[string]int64{}
	files = map[string]int64{}

	sc := NewScanner(lines, root)
	for sc.Scan() {
		e := sc.Entry()

		key := e.Name
		if recursive {
			key = e.Path
		}

		switch e.Kind {
		case Directory:
			if wantFolders {
				dirs[key] = 0
			}
		case File:
			if wantFiles {
				files[key] = e.Size
			}
		}
	}
	return dirs, files
}

// Entries returns every directory and file entry of a raw listing of root, in listing order.
func Entries(lines []string, root string) []Entry {
	var entries []Entry
	sc := NewScanner(lines, root)
	for sc.Scan() {
		entries = append(entries, sc.Entry())
	}
	return entries
}

// ListedNames returns the bare name of every entry line of a non-recursive listing, whatever its kind, in listing
// order. Symlinks are reported under their own name rather than their target.
func ListedNames(lines []string) []string {
	var names []string
	for _, line := range lines {
		if kind, entry, _ := classify(line); kind == lineEntry {
			names = append(names, entry.Name)
		}
	}
	return names
}

// Names returns the keys of m in sorted order.
func Names(m map[string]int64) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
