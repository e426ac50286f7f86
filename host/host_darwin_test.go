package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

func TestFromSyscall_DarwinOpnotsupp(t *testing.T) {
	assert.NotEqual(t, unix.EOPNOTSUPP, unix.ENOTSUP)

	a, ok := FromSyscall(unix.EOPNOTSUPP)
	assert.True(t, ok)
	b, ok := FromSyscall(unix.ENOTSUP)
	assert.True(t, ok)
	assert.Equal(t, errno.ENOTSUP, a)
	assert.Equal(t, a, b)
}
