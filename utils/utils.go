package utils

import (
	"io"
	"net/url"
	"path"
	"strings"
)

const (
	// TouchCopyMinBufferSize min buffer size used in TouchCopyBuffered in bytes
	TouchCopyMinBufferSize = 262144
)

// NormPath collapses redundant separators and up-level references in a slash separated remote path.
// Unlike path.Clean, the empty path stays empty so that an unset root keeps meaning "the session root".
func NormPath(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(p)
}

// JoinPath joins a directory cursor and an entry name, then normalizes the result.
// An absolute name replaces the directory entirely.
func JoinPath(dir, name string) string {
	if dir == "" || strings.HasPrefix(name, "/") {
		return NormPath(name)
	}
	return path.Join(dir, name)
}

// SplitPath splits p immediately following its final slash into a directory and a base name.
// Trailing slashes are stripped from the directory unless it is the root.
//
// /root/a.txt : "/root", "a.txt"
// a.txt       : "", "a.txt"
// /a.txt      : "/", "a.txt"
func SplitPath(p string) (dir, base string) {
	i := strings.LastIndex(p, "/")
	dir, base = p[:i+1], p[i+1:]
	if trimmed := RemoveTrailingSlash(dir); trimmed != "" {
		dir = trimmed
	}
	return dir, base
}

// SplitExt splits name into a root and an extension. The extension is everything from the last dot in the final
// path segment, dot included. Leading dots never start an extension, so ".profile" has none.
func SplitExt(name string) (root, ext string) {
	base := name[strings.LastIndex(name, "/")+1:]
	offset := len(name) - len(base)

	dot := strings.LastIndex(base, ".")
	if dot <= 0 || strings.Trim(base[:dot], ".") == "" {
		return name, ""
	}
	return name[:offset+dot], name[offset+dot:]
}

// ResolveURL resolves ref against base the way a browser resolves a relative link, then turns backslashes into
// forward slashes so Windows style paths still produce a usable URL.
func ResolveURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(strings.ReplaceAll(ref, "\\", "/"))
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(b.ResolveReference(r).String(), "\\", "/"), nil
}

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(p string) string {
	return strings.TrimRight(p, "/")
}

// Segments returns the non-empty slash separated segments of p.
func Segments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// TouchCopyBuffered is a wrapper around io.CopyBuffer which ensures that even empty source files (reader) will get
// written as an empty file. It guarantees a Write() call on the target.
// bufferSize is in bytes and if is less than or equal to 0 will result in a buffer of size TouchCopyMinBufferSize.
func TouchCopyBuffered(writer io.Writer, reader io.Reader, bufferSize int) (int64, error) {
	if bufferSize <= 0 {
		bufferSize = TouchCopyMinBufferSize
	}

	size, err := io.CopyBuffer(writer, reader, make([]byte, bufferSize))
	if err != nil {
		return size, err
	}
	if size == 0 {
		if _, err = writer.Write([]byte{}); err != nil {
			return 0, err
		}
	}
	return size, nil
}

// Ptr returns a pointer to the given value.
func Ptr[T any](value T) *T {
	return &value
}
