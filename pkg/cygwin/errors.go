package cygwin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMode is returned when a conversion mode token cannot be
	// resolved to a supported mode.
	ErrInvalidMode = errors.New("mode must be one of 'u'/'unix', 'w'/'windows'")

	// ErrUnsupported is returned by every operation on platforms where no
	// compatibility layer exists.
	ErrUnsupported = errors.New("cygwin compatibility layer is only available on windows")
)

// Errno is a POSIX errno reported by the compatibility layer runtime.
// Errors returned by this package wrap the originating Errno, so callers
// can match with errors.Is(err, cygwin.ESRCH) and the like.
type Errno int32

// Errno values used by this package, as defined by the layer's C library.
const (
	ENOENT Errno = 2
	ESRCH  Errno = 3
	EACCES Errno = 13
	EINVAL Errno = 22
)

var errnoText = map[Errno]string{
	ENOENT: "no such file or directory",
	ESRCH:  "no such process",
	EACCES: "permission denied",
	EINVAL: "invalid argument",
}

func (e Errno) Error() string {
	if s, ok := errnoText[e]; ok {
		return s
	}
	return fmt.Sprintf("errno %d", int32(e))
}
