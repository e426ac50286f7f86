// Package platform chooses the errno.Profile of the running process.
//
// Detect inspects the operating system and, on Linux, the installed C library
// loaders. Load does the same and then applies environment overrides:
//
//	ERRNO_LIBC=musl   # posix, gnu or musl
//	ERRNO_WASI=true
//
// The profile is meant to be chosen once at startup and passed to
// errno.Message or the libc package for the lifetime of the process.
//
// # Usage Example
//
//	profile, err := platform.Load(platform.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatalf("invalid profile override: %v", err)
//	}
//	fmt.Println(libc.Strerror(12, profile))
package platform
