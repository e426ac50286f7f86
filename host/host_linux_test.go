package host

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

func TestFromSyscall_LinuxNumberingIsIdentity(t *testing.T) {
	for _, code := range errno.Codes() {
		if code == errno.ENOTCAPABLE {
			continue
		}
		got, ok := FromSyscall(syscall.Errno(code))
		assert.True(t, ok, "%v", code)
		assert.Equal(t, code, got)
	}
}
