//go:build !linux && !darwin && !plan9

package host

import (
	"syscall"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

// No table yet for this system; every lookup reports false.
var table = map[syscall.Errno]errno.ErrorCode{}
