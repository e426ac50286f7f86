// Package errno maps platform error codes to the canonical messages that
// strerror-class functions return.
//
// The table is keyed by ErrorCode and resolved under a Profile, which names the
// C library flavor (POSIX, GNU or musl) and whether the target is WASI. Most
// codes have one POSIX-documented message. A few depend on the profile:
//   - ENOMEM reads "Out of memory" on musl, "Cannot allocate memory" on GNU and
//     "Not enough space" elsewhere.
//   - The STREAMS codes (ENODATA, ENOSR, ENOSTR, ETIME) have no message on WASI.
//   - ENOTCAPABLE has a message only on WASI.
//
// EWOULDBLOCK and EOPNOTSUPP are constant aliases of EAGAIN and ENOTSUP. They
// share the value, and therefore the message, of their representative code.
//
// # Usage Example
//
//	p := errno.Profile{Libc: errno.LibcGNU}
//	if msg, ok := errno.Message(errno.ENOMEM, p); ok {
//	    fmt.Println(msg) // Cannot allocate memory
//	}
//
// Message never formats a fallback for unknown codes. See package libc for the
// strerror and strerror_r surfaces built on top of it, and package platform for
// choosing the profile of the running process.
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use.
package errno
