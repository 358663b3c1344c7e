package ftp

import (
	"bytes"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/c2fo/netstorage/utils"
)

// tempFileSuffix marks spilled downloads in the temp directory.
const tempFileSuffix = ".netstorage"

// File is a downloaded remote file. Small files are held in memory, larger ones in a temp file that is removed on
// Close.
type File struct {
	name string
	size int64
	mem  *bytes.Reader
	disk *os.File
}

func newMemoryFile(name string, data []byte) *File {
	return &File{name: name, size: int64(len(data)), mem: bytes.NewReader(data)}
}

func newDiskFile(name string, f *os.File, size int64) *File {
	return &File{name: name, size: size, disk: f}
}

// Name returns the remote name the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Size returns the number of bytes downloaded.
func (f *File) Size() int64 {
	return f.size
}

// InMemory reports whether the content is held in memory.
func (f *File) InMemory() bool {
	return f.disk == nil
}

// LocalPath returns the temp file backing a spilled download, or "" for an in-memory file.
func (f *File) LocalPath() string {
	if f.disk == nil {
		return ""
	}
	return f.disk.Name()
}

func (f *File) Read(p []byte) (int, error) {
	if f.disk != nil {
		n, err := f.disk.Read(p)
		if err != nil && err != io.EOF {
			return n, utils.WrapReadError(err)
		}
		return n, err
	}
	return f.mem.Read(p)
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	var (
		pos int64
		err error
	)
	if f.disk != nil {
		pos, err = f.disk.Seek(offset, whence)
	} else {
		pos, err = f.mem.Seek(offset, whence)
	}
	return pos, utils.WrapSeekError(err)
}

// Close releases the file. A spilled download's temp file is closed and removed.
func (f *File) Close() error {
	if f.disk == nil {
		return nil
	}

	var errs *multierror.Error
	if err := f.disk.Close(); err != nil {
		errs = multierror.Append(errs, utils.WrapCloseError(err))
	}
	if err := os.Remove(f.disk.Name()); err != nil && !os.IsNotExist(err) {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}
