package platform

import (
	"context"
	"log/slog"
	"runtime"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := defaultOptions()
	assert.Nil(t, opts.logger)
	assert.Nil(t, opts.fs)
	assert.Equal(t, runtime.GOOS, opts.goos)
	assert.Equal(t, DefaultEnvPrefix, opts.envPrefix)
}

func TestApplyOptions(t *testing.T) {
	fs := memfs.New()
	logger := slog.New(slog.NewTextHandler(nil, nil))

	opts := defaultOptions()
	applyOptions(opts, []Option{
		WithLogger(logger),
		WithFilesystem(fs),
		WithGOOS("linux"),
		WithEnvPrefix("X"),
	})

	assert.Same(t, logger, opts.logger)
	assert.Equal(t, fs, opts.fs)
	assert.Equal(t, "linux", opts.goos)
	assert.Equal(t, "X", opts.envPrefix)
	assert.True(t, opts.logger.Enabled(context.TODO(), slog.LevelInfo))
}

func TestApplyOptions_DefaultFilesystemOnLinux(t *testing.T) {
	opts := defaultOptions()
	applyOptions(opts, []Option{WithGOOS("linux")})
	assert.NotNil(t, opts.fs)

	opts = defaultOptions()
	applyOptions(opts, []Option{WithGOOS("windows")})
	assert.Nil(t, opts.fs)
}
