package platform

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

// goosWASI is the GOOS value of the WASI preview 1 port.
const goosWASI = "wasip1"

// Loader and libc locations that identify the C library of a Linux system.
// musl is checked first: a musl system with a glibc compatibility layer
// still reports musl wording.
var (
	muslPatterns = []string{
		"/lib/ld-musl-*.so.1",
		"/lib/libc.musl-*.so.1",
		"/usr/lib/ld-musl-*.so.1",
	}
	gnuPatterns = []string{
		"/lib/ld-linux*.so.*",
		"/lib64/ld-linux*.so.*",
		"/lib/libc.so.6",
		"/lib64/libc.so.6",
		"/lib/*/libc.so.6",
		"/usr/lib/libc.so.6",
		"/usr/lib64/libc.so.6",
		"/usr/lib/*/libc.so.6",
	}
)

// Detect returns the profile of the running process.
//
// The WASI flag is set when the operating system is wasip1. On linux the C
// library flavor is determined by looking for the musl and glibc dynamic
// loaders; every other system uses POSIX wording. Detection never fails:
// anything that cannot be read counts as absent.
func Detect(opts ...Option) errno.Profile {
	o := defaultOptions()
	applyOptions(o, opts)
	return detect(o)
}

func detect(o *options) errno.Profile {
	p := errno.Profile{WASI: o.goos == goosWASI}
	if o.goos == "linux" {
		p.Libc = detectLibc(o)
	}

	if o.logger != nil {
		o.logger.InfoContext(context.Background(), "detected platform profile",
			"goos", o.goos,
			"profile", p.String(),
		)
	}
	return p
}

func detectLibc(o *options) errno.Libc {
	if firstMatch(o, muslPatterns) != "" {
		return errno.LibcMusl
	}
	if firstMatch(o, gnuPatterns) != "" {
		return errno.LibcGNU
	}
	return errno.LibcOther
}

// firstMatch returns the first file matching any of patterns, or "".
func firstMatch(o *options, patterns []string) string {
	for _, pattern := range patterns {
		matches, err := glob(o.fs, pattern)
		if err != nil {
			if o.logger != nil {
				o.logger.DebugContext(context.Background(), "skipping loader pattern", "pattern", pattern, "error", err)
			}
			continue
		}
		if len(matches) > 0 {
			if o.logger != nil {
				o.logger.DebugContext(context.Background(), "found C library", "pattern", pattern, "path", matches[0])
			}
			return matches[0]
		}
	}
	return ""
}

func glob(fs billy.Filesystem, pattern string) ([]string, error) {
	if fs == nil {
		return nil, nil
	}
	return util.Glob(fs, pattern)
}
