package platform

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

// unsetenv removes keys for the duration of the test. envconfig treats a
// variable set to "" as present.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		goos    string
		files   []string
		want    errno.Profile
		wantErr bool
	}{
		{
			name:  "no overrides keeps detection",
			goos:  "linux",
			files: []string{"/lib/x86_64-linux-gnu/libc.so.6"},
			want:  errno.Profile{Libc: errno.LibcGNU},
		},
		{
			name:  "libc override",
			env:   map[string]string{"ERRNO_LIBC": "musl"},
			goos:  "linux",
			files: []string{"/lib/x86_64-linux-gnu/libc.so.6"},
			want:  errno.Profile{Libc: errno.LibcMusl},
		},
		{
			name: "wasi forced on",
			env:  map[string]string{"ERRNO_WASI": "true"},
			goos: "darwin",
			want: errno.Profile{WASI: true},
		},
		{
			name: "wasi forced off",
			env:  map[string]string{"ERRNO_WASI": "false"},
			goos: "wasip1",
			want: errno.Profile{},
		},
		{
			name: "both overrides",
			env:  map[string]string{"ERRNO_LIBC": "gnu", "ERRNO_WASI": "1"},
			goos: "darwin",
			want: errno.Profile{Libc: errno.LibcGNU, WASI: true},
		},
		{
			name:    "invalid libc",
			env:     map[string]string{"ERRNO_LIBC": "bionic"},
			goos:    "darwin",
			wantErr: true,
		},
		{
			name:    "invalid wasi flag",
			env:     map[string]string{"ERRNO_WASI": "sometimes"},
			goos:    "darwin",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetenv(t, "ERRNO_LIBC", "ERRNO_WASI")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load(WithGOOS(tt.goos), WithFilesystem(newRootFS(t, tt.files...)))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errno.ErrInvalidProfile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_CustomPrefix(t *testing.T) {
	unsetenv(t, "ERRNO_WASI", "STRERROR_WASI")
	t.Setenv("ERRNO_LIBC", "gnu")
	t.Setenv("STRERROR_LIBC", "musl")

	got, err := Load(WithGOOS("darwin"), WithEnvPrefix("STRERROR"))
	require.NoError(t, err)
	assert.Equal(t, errno.Profile{Libc: errno.LibcMusl}, got)
}

func TestLoad_IgnoresUnprefixedVariables(t *testing.T) {
	unsetenv(t, "ERRNO_LIBC", "ERRNO_WASI")
	t.Setenv("LIBC", "musl")
	t.Setenv("WASI", "1")

	got, err := Load(WithGOOS("darwin"))
	require.NoError(t, err)
	assert.Equal(t, errno.Profile{}, got)

	ov, err := LoadOverrides(DefaultEnvPrefix)
	require.NoError(t, err)
	assert.Empty(t, ov.Libc)
	assert.Nil(t, ov.WASI)
}

func TestLoad_CustomPrefixIgnoresDefaultPrefix(t *testing.T) {
	unsetenv(t, "STRERROR_LIBC", "STRERROR_WASI")
	t.Setenv("ERRNO_LIBC", "musl")
	t.Setenv("ERRNO_WASI", "true")

	got, err := Load(WithGOOS("darwin"), WithEnvPrefix("STRERROR"))
	require.NoError(t, err)
	assert.Equal(t, errno.Profile{}, got)
}

func TestOverrides_Apply(t *testing.T) {
	yes := true
	base := errno.Profile{Libc: errno.LibcGNU}

	got, err := Overrides{}.Apply(base)
	require.NoError(t, err)
	assert.Equal(t, base, got)

	got, err = Overrides{Libc: "posix", WASI: &yes}.Apply(base)
	require.NoError(t, err)
	assert.Equal(t, errno.Profile{Libc: errno.LibcOther, WASI: true}, got)

	_, err = Overrides{Libc: "newlib"}.Apply(base)
	assert.ErrorIs(t, err, errno.ErrInvalidProfile)
}
