package host

import (
	"golang.org/x/sys/unix"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

func init() {
	// Darwin numbers the socket variant separately (102, ENOTSUP is 45).
	table[unix.EOPNOTSUPP] = errno.ENOTSUP
}
