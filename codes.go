package errno

// ErrorCode identifies a platform error condition (an errno value).
//
// Named codes use the Linux asm-generic numbering. Codes that Linux does not
// define are numbered above MaxErrno so they never collide with a host value.
// Any other value is a valid ErrorCode that simply has no message.
type ErrorCode uint32

// MaxErrno is the largest errno value a Linux system call can return.
const MaxErrno = 4095

const (
	// Process and permission errors.

	EPERM   ErrorCode = 1  // Operation not permitted.
	ENOENT  ErrorCode = 2  // No such file or directory.
	ESRCH   ErrorCode = 3  // No such process.
	EINTR   ErrorCode = 4  // Interrupted function.
	EIO     ErrorCode = 5  // I/O error.
	ENXIO   ErrorCode = 6  // No such device or address.
	E2BIG   ErrorCode = 7  // Argument list too long.
	ENOEXEC ErrorCode = 8  // Executable file format error.
	EBADF   ErrorCode = 9  // Bad file descriptor.
	ECHILD  ErrorCode = 10 // No child processes.
	EAGAIN  ErrorCode = 11 // Resource unavailable, try again.
	ENOMEM  ErrorCode = 12 // Not enough space.
	EACCES  ErrorCode = 13 // Permission denied.
	EFAULT  ErrorCode = 14 // Bad address.

	// File system errors.

	EBUSY   ErrorCode = 16 // Device or resource busy.
	EEXIST  ErrorCode = 17 // File exists.
	EXDEV   ErrorCode = 18 // Cross-device link.
	ENODEV  ErrorCode = 19 // No such device.
	ENOTDIR ErrorCode = 20 // Not a directory.
	EISDIR  ErrorCode = 21 // Is a directory.
	EINVAL  ErrorCode = 22 // Invalid argument.
	ENFILE  ErrorCode = 23 // Too many files open in system.
	EMFILE  ErrorCode = 24 // File descriptor value too large.
	ENOTTY  ErrorCode = 25 // Inappropriate I/O control operation.
	ETXTBSY ErrorCode = 26 // Text file busy.
	EFBIG   ErrorCode = 27 // File too large.
	ENOSPC  ErrorCode = 28 // No space left on device.
	ESPIPE  ErrorCode = 29 // Invalid seek.
	EROFS   ErrorCode = 30 // Read-only file system.
	EMLINK  ErrorCode = 31 // Too many links.
	EPIPE   ErrorCode = 32 // Broken pipe.

	// Math errors.

	EDOM   ErrorCode = 33 // Mathematics argument out of domain of function.
	ERANGE ErrorCode = 34 // Result too large.

	EDEADLK      ErrorCode = 35 // Resource deadlock would occur.
	ENAMETOOLONG ErrorCode = 36 // Filename too long.
	ENOLCK       ErrorCode = 37 // No locks available.
	ENOSYS       ErrorCode = 38 // Functionality not supported.
	ENOTEMPTY    ErrorCode = 39 // Directory not empty.
	ELOOP        ErrorCode = 40 // Too many levels of symbolic links.
	ENOMSG       ErrorCode = 42 // No message of the desired type.
	EIDRM        ErrorCode = 43 // Identifier removed.

	// STREAMS errors. WASI does not define these.

	ENOSTR  ErrorCode = 60 // Not a STREAM.
	ENODATA ErrorCode = 61 // No message is available on the STREAM head read queue.
	ETIME   ErrorCode = 62 // Stream ioctl() timeout.
	ENOSR   ErrorCode = 63 // No STREAM resources.

	ENOLINK   ErrorCode = 67 // Reserved.
	EPROTO    ErrorCode = 71 // Protocol error.
	EMULTIHOP ErrorCode = 72 // Reserved.
	EBADMSG   ErrorCode = 74 // Bad message.
	EOVERFLOW ErrorCode = 75 // Value too large to be stored in data type.
	EILSEQ    ErrorCode = 84 // Invalid byte sequence.

	// Socket and network errors.

	ENOTSOCK        ErrorCode = 88  // Not a socket.
	EDESTADDRREQ    ErrorCode = 89  // Destination address required.
	EMSGSIZE        ErrorCode = 90  // Message too large.
	EPROTOTYPE      ErrorCode = 91  // Protocol wrong type for socket.
	ENOPROTOOPT     ErrorCode = 92  // Protocol not available.
	EPROTONOSUPPORT ErrorCode = 93  // Protocol not supported.
	ENOTSUP         ErrorCode = 95  // Not supported.
	EAFNOSUPPORT    ErrorCode = 97  // Address family not supported.
	EADDRINUSE      ErrorCode = 98  // Address in use.
	EADDRNOTAVAIL   ErrorCode = 99  // Address not available.
	ENETDOWN        ErrorCode = 100 // Network is down.
	ENETUNREACH     ErrorCode = 101 // Network unreachable.
	ENETRESET       ErrorCode = 102 // Connection aborted by network.
	ECONNABORTED    ErrorCode = 103 // Connection aborted.
	ECONNRESET      ErrorCode = 104 // Connection reset.
	ENOBUFS         ErrorCode = 105 // No buffer space available.
	EISCONN         ErrorCode = 106 // Socket is connected.
	ENOTCONN        ErrorCode = 107 // The socket is not connected.
	ETIMEDOUT       ErrorCode = 110 // Connection timed out.
	ECONNREFUSED    ErrorCode = 111 // Connection refused.
	EHOSTUNREACH    ErrorCode = 113 // Host is unreachable.
	EALREADY        ErrorCode = 114 // Connection already in progress.
	EINPROGRESS     ErrorCode = 115 // Operation in progress.

	ESTALE          ErrorCode = 116 // Reserved.
	EDQUOT          ErrorCode = 122 // Reserved.
	ECANCELED       ErrorCode = 125 // Operation canceled.
	EOWNERDEAD      ErrorCode = 130 // Previous owner died.
	ENOTRECOVERABLE ErrorCode = 131 // State not recoverable.

	// Extensions.

	// ENOTCAPABLE is the WASI "capabilities insufficient" error.
	ENOTCAPABLE ErrorCode = MaxErrno + 1
)

// Codes that POSIX documents separately but that share a value with
// another code. They have no message of their own.
const (
	EWOULDBLOCK = EAGAIN
	EOPNOTSUPP  = ENOTSUP
)
