package platform

import (
	"log/slog"
	"runtime"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// DefaultEnvPrefix is the prefix of the environment variables read by Load.
const DefaultEnvPrefix = "ERRNO"

// options holds configuration for Detect and Load.
type options struct {
	logger    *slog.Logger
	fs        billy.Filesystem
	goos      string
	envPrefix string
}

// Option is a functional option for configuring Detect and Load.
type Option func(*options)

// WithLogger configures a logger for detection progress.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithFilesystem configures the filesystem searched for C library loaders.
// It should be rooted at the system root.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(opts *options) {
		opts.fs = fs
	}
}

// WithGOOS overrides the operating system name, which defaults to runtime.GOOS.
func WithGOOS(goos string) Option {
	return func(opts *options) {
		opts.goos = goos
	}
}

// WithEnvPrefix overrides the prefix of the environment variables read by Load.
func WithEnvPrefix(prefix string) Option {
	return func(opts *options) {
		opts.envPrefix = prefix
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *options {
	return &options{
		logger:    nil, // No default logger
		fs:        nil, // Created lazily; only linux searches the filesystem
		goos:      runtime.GOOS,
		envPrefix: DefaultEnvPrefix,
	}
}

// applyOptions applies the given options and fills in the filesystem.
func applyOptions(o *options, opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.fs == nil && o.goos == "linux" {
		o.fs = osfs.New("/")
	}
}
