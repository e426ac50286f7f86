//go:build linux || darwin

package host

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

// table maps host error numbers to codes. Pairs that share a value on the
// host (EWOULDBLOCK, and EOPNOTSUPP on linux) are listed once.
var table = map[syscall.Errno]errno.ErrorCode{
	unix.E2BIG:           errno.E2BIG,
	unix.EACCES:          errno.EACCES,
	unix.EADDRINUSE:      errno.EADDRINUSE,
	unix.EADDRNOTAVAIL:   errno.EADDRNOTAVAIL,
	unix.EAFNOSUPPORT:    errno.EAFNOSUPPORT,
	unix.EAGAIN:          errno.EAGAIN,
	unix.EALREADY:        errno.EALREADY,
	unix.EBADF:           errno.EBADF,
	unix.EBADMSG:         errno.EBADMSG,
	unix.EBUSY:           errno.EBUSY,
	unix.ECANCELED:       errno.ECANCELED,
	unix.ECHILD:          errno.ECHILD,
	unix.ECONNABORTED:    errno.ECONNABORTED,
	unix.ECONNREFUSED:    errno.ECONNREFUSED,
	unix.ECONNRESET:      errno.ECONNRESET,
	unix.EDEADLK:         errno.EDEADLK,
	unix.EDESTADDRREQ:    errno.EDESTADDRREQ,
	unix.EDOM:            errno.EDOM,
	unix.EDQUOT:          errno.EDQUOT,
	unix.EEXIST:          errno.EEXIST,
	unix.EFAULT:          errno.EFAULT,
	unix.EFBIG:           errno.EFBIG,
	unix.EHOSTUNREACH:    errno.EHOSTUNREACH,
	unix.EIDRM:           errno.EIDRM,
	unix.EILSEQ:          errno.EILSEQ,
	unix.EINPROGRESS:     errno.EINPROGRESS,
	unix.EINTR:           errno.EINTR,
	unix.EINVAL:          errno.EINVAL,
	unix.EIO:             errno.EIO,
	unix.EISCONN:         errno.EISCONN,
	unix.EISDIR:          errno.EISDIR,
	unix.ELOOP:           errno.ELOOP,
	unix.EMFILE:          errno.EMFILE,
	unix.EMLINK:          errno.EMLINK,
	unix.EMSGSIZE:        errno.EMSGSIZE,
	unix.EMULTIHOP:       errno.EMULTIHOP,
	unix.ENAMETOOLONG:    errno.ENAMETOOLONG,
	unix.ENETDOWN:        errno.ENETDOWN,
	unix.ENETRESET:       errno.ENETRESET,
	unix.ENETUNREACH:     errno.ENETUNREACH,
	unix.ENFILE:          errno.ENFILE,
	unix.ENOBUFS:         errno.ENOBUFS,
	unix.ENODATA:         errno.ENODATA,
	unix.ENODEV:          errno.ENODEV,
	unix.ENOENT:          errno.ENOENT,
	unix.ENOEXEC:         errno.ENOEXEC,
	unix.ENOLCK:          errno.ENOLCK,
	unix.ENOLINK:         errno.ENOLINK,
	unix.ENOMEM:          errno.ENOMEM,
	unix.ENOMSG:          errno.ENOMSG,
	unix.ENOPROTOOPT:     errno.ENOPROTOOPT,
	unix.ENOSPC:          errno.ENOSPC,
	unix.ENOSR:           errno.ENOSR,
	unix.ENOSTR:          errno.ENOSTR,
	unix.ENOSYS:          errno.ENOSYS,
	unix.ENOTCONN:        errno.ENOTCONN,
	unix.ENOTDIR:         errno.ENOTDIR,
	unix.ENOTEMPTY:       errno.ENOTEMPTY,
	unix.ENOTRECOVERABLE: errno.ENOTRECOVERABLE,
	unix.ENOTSOCK:        errno.ENOTSOCK,
	unix.ENOTSUP:         errno.ENOTSUP,
	unix.ENOTTY:          errno.ENOTTY,
	unix.ENXIO:           errno.ENXIO,
	unix.EOVERFLOW:       errno.EOVERFLOW,
	unix.EOWNERDEAD:      errno.EOWNERDEAD,
	unix.EPERM:           errno.EPERM,
	unix.EPIPE:           errno.EPIPE,
	unix.EPROTO:          errno.EPROTO,
	unix.EPROTONOSUPPORT: errno.EPROTONOSUPPORT,
	unix.EPROTOTYPE:      errno.EPROTOTYPE,
	unix.ERANGE:          errno.ERANGE,
	unix.EROFS:           errno.EROFS,
	unix.ESPIPE:          errno.ESPIPE,
	unix.ESRCH:           errno.ESRCH,
	unix.ESTALE:          errno.ESTALE,
	unix.ETIME:           errno.ETIME,
	unix.ETIMEDOUT:       errno.ETIMEDOUT,
	unix.ETXTBSY:         errno.ETXTBSY,
	unix.EXDEV:           errno.EXDEV,
}
