// Package wasi converts WASI snapshot_preview1 error numbers to and from
// errno.ErrorCode.
//
// WASI numbers its errors alphabetically, starting with E2BIG at 1, and
// defines neither the STREAMS codes nor the alias pairs. ENOTCAPABLE exists
// only here.
package wasi

import "github.com/input-output-hk/catalyst-forge-libs/errno"

var fromWASI = map[Errno]errno.ErrorCode{
	E2BIG:           errno.E2BIG,
	EACCES:          errno.EACCES,
	EADDRINUSE:      errno.EADDRINUSE,
	EADDRNOTAVAIL:   errno.EADDRNOTAVAIL,
	EAFNOSUPPORT:    errno.EAFNOSUPPORT,
	EAGAIN:          errno.EAGAIN,
	EALREADY:        errno.EALREADY,
	EBADF:           errno.EBADF,
	EBADMSG:         errno.EBADMSG,
	EBUSY:           errno.EBUSY,
	ECANCELED:       errno.ECANCELED,
	ECHILD:          errno.ECHILD,
	ECONNABORTED:    errno.ECONNABORTED,
	ECONNREFUSED:    errno.ECONNREFUSED,
	ECONNRESET:      errno.ECONNRESET,
	EDEADLK:         errno.EDEADLK,
	EDESTADDRREQ:    errno.EDESTADDRREQ,
	EDOM:            errno.EDOM,
	EDQUOT:          errno.EDQUOT,
	EEXIST:          errno.EEXIST,
	EFAULT:          errno.EFAULT,
	EFBIG:           errno.EFBIG,
	EHOSTUNREACH:    errno.EHOSTUNREACH,
	EIDRM:           errno.EIDRM,
	EILSEQ:          errno.EILSEQ,
	EINPROGRESS:     errno.EINPROGRESS,
	EINTR:           errno.EINTR,
	EINVAL:          errno.EINVAL,
	EIO:             errno.EIO,
	EISCONN:         errno.EISCONN,
	EISDIR:          errno.EISDIR,
	ELOOP:           errno.ELOOP,
	EMFILE:          errno.EMFILE,
	EMLINK:          errno.EMLINK,
	EMSGSIZE:        errno.EMSGSIZE,
	EMULTIHOP:       errno.EMULTIHOP,
	ENAMETOOLONG:    errno.ENAMETOOLONG,
	ENETDOWN:        errno.ENETDOWN,
	ENETRESET:       errno.ENETRESET,
	ENETUNREACH:     errno.ENETUNREACH,
	ENFILE:          errno.ENFILE,
	ENOBUFS:         errno.ENOBUFS,
	ENODEV:          errno.ENODEV,
	ENOENT:          errno.ENOENT,
	ENOEXEC:         errno.ENOEXEC,
	ENOLCK:          errno.ENOLCK,
	ENOLINK:         errno.ENOLINK,
	ENOMEM:          errno.ENOMEM,
	ENOMSG:          errno.ENOMSG,
	ENOPROTOOPT:     errno.ENOPROTOOPT,
	ENOSPC:          errno.ENOSPC,
	ENOSYS:          errno.ENOSYS,
	ENOTCONN:        errno.ENOTCONN,
	ENOTDIR:         errno.ENOTDIR,
	ENOTEMPTY:       errno.ENOTEMPTY,
	ENOTRECOVERABLE: errno.ENOTRECOVERABLE,
	ENOTSOCK:        errno.ENOTSOCK,
	ENOTSUP:         errno.ENOTSUP,
	ENOTTY:          errno.ENOTTY,
	ENXIO:           errno.ENXIO,
	EOVERFLOW:       errno.EOVERFLOW,
	EOWNERDEAD:      errno.EOWNERDEAD,
	EPERM:           errno.EPERM,
	EPIPE:           errno.EPIPE,
	EPROTO:          errno.EPROTO,
	EPROTONOSUPPORT: errno.EPROTONOSUPPORT,
	EPROTOTYPE:      errno.EPROTOTYPE,
	ERANGE:          errno.ERANGE,
	EROFS:           errno.EROFS,
	ESPIPE:          errno.ESPIPE,
	ESRCH:           errno.ESRCH,
	ESTALE:          errno.ESTALE,
	ETIMEDOUT:       errno.ETIMEDOUT,
	ETXTBSY:         errno.ETXTBSY,
	EXDEV:           errno.EXDEV,
	ENOTCAPABLE:     errno.ENOTCAPABLE,
}

var toWASI = func() map[errno.ErrorCode]Errno {
	m := make(map[errno.ErrorCode]Errno, len(fromWASI))
	for w, c := range fromWASI {
		m[c] = w
	}
	return m
}()

// FromWASI returns the ErrorCode for a WASI error number. ESUCCESS and
// numbers outside snapshot_preview1 report false.
func FromWASI(e Errno) (errno.ErrorCode, bool) {
	code, ok := fromWASI[e]
	return code, ok
}

// ToWASI returns the WASI error number for code. It reports false for codes
// WASI does not define, such as the STREAMS errors.
func ToWASI(code errno.ErrorCode) (Errno, bool) {
	e, ok := toWASI[code]
	return e, ok
}
