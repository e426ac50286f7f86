//go:build !plan9

// Package host converts the error numbers of the running operating system
// into errno.ErrorCode values.
//
// errno.ErrorCode uses the Linux numbering. Other systems number the same
// conditions differently, and some give the alias pairs (EOPNOTSUPP and
// ENOTSUP, EWOULDBLOCK and EAGAIN) distinct values; both members of a pair
// convert to the representative code.
package host

import (
	"errors"
	"syscall"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

// FromSyscall returns the ErrorCode for a host error number. It reports false
// for numbers with no named ErrorCode and on systems without a table.
func FromSyscall(e syscall.Errno) (errno.ErrorCode, bool) {
	code, ok := table[e]
	return code, ok
}

// FromError finds a syscall.Errno in err's chain and converts it.
func FromError(err error) (errno.ErrorCode, bool) {
	var e syscall.Errno
	if !errors.As(err, &e) {
		return 0, false
	}
	return FromSyscall(e)
}
