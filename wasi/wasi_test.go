package wasi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

var wasiProfile = errno.Profile{WASI: true}

func TestErrno_Numbering(t *testing.T) {
	tests := []struct {
		name string
		in   Errno
		want uint16
	}{
		{"success", ESUCCESS, 0},
		{"e2big", E2BIG, 1},
		{"eagain", EAGAIN, 6},
		{"einval", EINVAL, 28},
		{"enoent", ENOENT, 44},
		{"enomem", ENOMEM, 48},
		{"enotsup", ENOTSUP, 58},
		{"exdev", EXDEV, 75},
		{"enotcapable", ENOTCAPABLE, 76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uint16(tt.in))
		})
	}
}

func TestFromWASI(t *testing.T) {
	tests := []struct {
		name string
		in   Errno
		want errno.ErrorCode
	}{
		{"e2big", E2BIG, errno.E2BIG},
		{"enomem", ENOMEM, errno.ENOMEM},
		{"enotsup", ENOTSUP, errno.ENOTSUP},
		{"eagain", EAGAIN, errno.EWOULDBLOCK},
		{"enotcapable", ENOTCAPABLE, errno.ENOTCAPABLE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromWASI(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromWASI_Unknown(t *testing.T) {
	for _, e := range []Errno{ESUCCESS, ENOTCAPABLE + 1, 1 << 15} {
		_, ok := FromWASI(e)
		assert.False(t, ok, "errno %d", e)
	}
}

func TestFromWASI_EveryNumberHasWASIMessage(t *testing.T) {
	seen := map[errno.ErrorCode]bool{}
	for e := E2BIG; e <= ENOTCAPABLE; e++ {
		code, ok := FromWASI(e)
		require.True(t, ok, "wasi errno %d", e)
		assert.False(t, seen[code], "%v converted twice", code)
		seen[code] = true

		msg, ok := errno.Message(code, wasiProfile)
		assert.True(t, ok, "%v has no message under WASI", code)
		assert.NotEmpty(t, msg)
	}
	assert.Len(t, seen, int(ENOTCAPABLE))
}

func TestToWASI(t *testing.T) {
	for _, code := range errno.Codes() {
		e, ok := ToWASI(code)
		_, hasMessage := errno.Message(code, wasiProfile)
		assert.Equal(t, hasMessage, ok, "%v", code)
		if !ok {
			continue
		}
		back, ok := FromWASI(e)
		require.True(t, ok)
		assert.Equal(t, code, back)
	}
}

func TestToWASI_StreamCodes(t *testing.T) {
	for _, code := range []errno.ErrorCode{errno.ENODATA, errno.ENOSR, errno.ENOSTR, errno.ETIME} {
		_, ok := ToWASI(code)
		assert.False(t, ok, "%v", code)
	}
}
