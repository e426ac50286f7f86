package errno

// Message returns the canonical strerror text for code under profile p. The
// second result is false if the code has no documented message for p;
// callers decide what to print instead.
//
// Strings follow the POSIX <errno.h> descriptions, except where a libc
// flavor is known to differ and test suites compare against it.
// See https://pubs.opengroup.org/onlinepubs/9699919799/basedefs/errno.h.html
func Message(code ErrorCode, p Profile) (string, bool) {
	switch code {
	case E2BIG:
		return "Argument list too long", true
	case EACCES:
		return "Permission denied", true
	case EADDRINUSE:
		return "Address in use", true
	case EADDRNOTAVAIL:
		return "Address not available", true
	case EAFNOSUPPORT:
		return "Address family not supported", true
	case EAGAIN:
		return "Resource unavailable, try again", true
	case EALREADY:
		return "Connection already in progress", true
	case EBADF:
		return "Bad file descriptor", true
	case EBADMSG:
		return "Bad message", true
	case EBUSY:
		return "Device or resource busy", true
	case ECANCELED:
		return "Operation canceled", true
	case ECHILD:
		return "No child processes", true
	case ECONNABORTED:
		return "Connection aborted", true
	case ECONNREFUSED:
		return "Connection refused", true
	case ECONNRESET:
		return "Connection reset", true
	case EDEADLK:
		return "Resource deadlock would occur", true
	case EDESTADDRREQ:
		return "Destination address required", true
	case EDOM:
		return "Mathematics argument out of domain of function", true
	case EDQUOT:
		return "Reserved", true
	case EEXIST:
		return "File exists", true
	case EFAULT:
		return "Bad address", true
	case EFBIG:
		return "File too large", true
	case EHOSTUNREACH:
		return "Host is unreachable", true
	case EIDRM:
		return "Identifier removed", true
	case EILSEQ:
		return "Invalid byte sequence", true
	case EINPROGRESS:
		return "Operation in progress", true
	case EINTR:
		return "Interrupted function", true
	case EINVAL:
		return "Invalid argument", true
	case EIO:
		return "I/O error", true
	case EISCONN:
		return "Socket is connected", true
	case EISDIR:
		return "Is a directory", true
	case ELOOP:
		return "Too many levels of symbolic links", true
	case EMFILE:
		return "File descriptor value too large", true
	case EMLINK:
		return "Too many links", true
	case EMSGSIZE:
		return "Message too large", true
	case EMULTIHOP:
		return "Reserved", true
	case ENAMETOOLONG:
		return "Filename too long", true
	case ENETDOWN:
		return "Network is down", true
	case ENETRESET:
		return "Connection aborted by network", true
	case ENETUNREACH:
		return "Network unreachable", true
	case ENFILE:
		return "Too many files open in system", true
	case ENOBUFS:
		return "No buffer space available", true
	case ENODATA:
		if p.WASI {
			return "", false
		}
		return "No message is available on the STREAM head read queue", true
	case ENODEV:
		return "No such device", true
	case ENOENT:
		return "No such file or directory", true
	case ENOEXEC:
		return "Executable file format error", true
	case ENOLCK:
		return "No locks available", true
	case ENOLINK:
		return "Reserved", true
	case ENOMEM:
		// Test suites compare against the platform libc, so follow its
		// wording where we know it.
		switch p.Libc {
		case LibcMusl:
			return "Out of memory", true
		case LibcGNU:
			return "Cannot allocate memory", true
		default:
			return "Not enough space", true
		}
	case ENOMSG:
		return "No message of the desired type", true
	case ENOPROTOOPT:
		return "Protocol not available", true
	case ENOSPC:
		return "No space left on device", true
	case ENOSR:
		if p.WASI {
			return "", false
		}
		return "No STREAM resources", true
	case ENOSTR:
		if p.WASI {
			return "", false
		}
		return "Not a STREAM", true
	case ENOSYS:
		return "Functionality not supported", true
	case ENOTCONN:
		return "The socket is not connected", true
	case ENOTDIR:
		return "Not a directory", true
	case ENOTEMPTY:
		return "Directory not empty", true
	case ENOTRECOVERABLE:
		return "State not recoverable", true
	case ENOTSOCK:
		return "Not a socket", true
	case ENOTSUP: // also EOPNOTSUPP
		return "Not supported", true
	case ENOTTY:
		return "Inappropriate I/O control operation", true
	case ENXIO:
		return "No such device or address", true
	case EOVERFLOW:
		return "Value too large to be stored in data type", true
	case EOWNERDEAD:
		return "Previous owner died", true
	case EPERM:
		return "Operation not permitted", true
	case EPIPE:
		return "Broken pipe", true
	case EPROTO:
		return "Protocol error", true
	case EPROTONOSUPPORT:
		return "Protocol not supported", true
	case EPROTOTYPE:
		return "Protocol wrong type for socket", true
	case ERANGE:
		return "Result too large", true
	case EROFS:
		return "Read-only file system", true
	case ESPIPE:
		return "Invalid seek", true
	case ESRCH:
		return "No such process", true
	case ESTALE:
		return "Reserved", true
	case ETIME:
		if p.WASI {
			return "", false
		}
		return "Stream ioctl() timeout", true
	case ETIMEDOUT:
		return "Connection timed out", true
	case ETXTBSY:
		return "Text file busy", true
	case EXDEV:
		return "Cross-device link", true
	case ENOTCAPABLE:
		if !p.WASI {
			return "", false
		}
		return "Capabilities insufficient", true
	default:
		return "", false
	}
}
