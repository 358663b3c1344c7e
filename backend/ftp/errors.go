package ftp

import (
	"errors"
	"net/textproto"
	"strconv"
	"strings"

	_ftp "github.com/jlaffaye/ftp"
)

type storageErr string

func (e storageErr) Error() string { return string(e) }

const (
	errStorageRequired = storageErr("non-nil ftp.Storage pointer is required")
	errNameRequired    = storageErr("non-empty name is required")
)

// notFoundCodes are the replies servers use for a missing file or directory.
var notFoundCodes = []int{_ftp.StatusFileUnavailable, _ftp.StatusFileActionIgnored}

// isNotFound reports whether err is a "file or directory not found" reply.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		for _, code := range notFoundCodes {
			if tpErr.Code == code {
				return true
			}
		}
		return false
	}

	// some errors only carry the reply text
	for _, code := range notFoundCodes {
		if strings.HasPrefix(err.Error(), strconv.Itoa(code)+" ") {
			return true
		}
	}
	return false
}
