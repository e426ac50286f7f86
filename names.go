package errno

import (
	"cmp"
	"slices"
	"strconv"
)

type codeName struct {
	code ErrorCode
	name string
}

// names lists every canonical code in ascending order.
var names = []codeName{
	{EPERM, "EPERM"},
	{ENOENT, "ENOENT"},
	{ESRCH, "ESRCH"},
	{EINTR, "EINTR"},
	{EIO, "EIO"},
	{ENXIO, "ENXIO"},
	{E2BIG, "E2BIG"},
	{ENOEXEC, "ENOEXEC"},
	{EBADF, "EBADF"},
	{ECHILD, "ECHILD"},
	{EAGAIN, "EAGAIN"},
	{ENOMEM, "ENOMEM"},
	{EACCES, "EACCES"},
	{EFAULT, "EFAULT"},
	{EBUSY, "EBUSY"},
	{EEXIST, "EEXIST"},
	{EXDEV, "EXDEV"},
	{ENODEV, "ENODEV"},
	{ENOTDIR, "ENOTDIR"},
	{EISDIR, "EISDIR"},
	{EINVAL, "EINVAL"},
	{ENFILE, "ENFILE"},
	{EMFILE, "EMFILE"},
	{ENOTTY, "ENOTTY"},
	{ETXTBSY, "ETXTBSY"},
	{EFBIG, "EFBIG"},
	{ENOSPC, "ENOSPC"},
	{ESPIPE, "ESPIPE"},
	{EROFS, "EROFS"},
	{EMLINK, "EMLINK"},
	{EPIPE, "EPIPE"},
	{EDOM, "EDOM"},
	{ERANGE, "ERANGE"},
	{EDEADLK, "EDEADLK"},
	{ENAMETOOLONG, "ENAMETOOLONG"},
	{ENOLCK, "ENOLCK"},
	{ENOSYS, "ENOSYS"},
	{ENOTEMPTY, "ENOTEMPTY"},
	{ELOOP, "ELOOP"},
	{ENOMSG, "ENOMSG"},
	{EIDRM, "EIDRM"},
	{ENOSTR, "ENOSTR"},
	{ENODATA, "ENODATA"},
	{ETIME, "ETIME"},
	{ENOSR, "ENOSR"},
	{ENOLINK, "ENOLINK"},
	{EPROTO, "EPROTO"},
	{EMULTIHOP, "EMULTIHOP"},
	{EBADMSG, "EBADMSG"},
	{EOVERFLOW, "EOVERFLOW"},
	{EILSEQ, "EILSEQ"},
	{ENOTSOCK, "ENOTSOCK"},
	{EDESTADDRREQ, "EDESTADDRREQ"},
	{EMSGSIZE, "EMSGSIZE"},
	{EPROTOTYPE, "EPROTOTYPE"},
	{ENOPROTOOPT, "ENOPROTOOPT"},
	{EPROTONOSUPPORT, "EPROTONOSUPPORT"},
	{ENOTSUP, "ENOTSUP"},
	{EAFNOSUPPORT, "EAFNOSUPPORT"},
	{EADDRINUSE, "EADDRINUSE"},
	{EADDRNOTAVAIL, "EADDRNOTAVAIL"},
	{ENETDOWN, "ENETDOWN"},
	{ENETUNREACH, "ENETUNREACH"},
	{ENETRESET, "ENETRESET"},
	{ECONNABORTED, "ECONNABORTED"},
	{ECONNRESET, "ECONNRESET"},
	{ENOBUFS, "ENOBUFS"},
	{EISCONN, "EISCONN"},
	{ENOTCONN, "ENOTCONN"},
	{ETIMEDOUT, "ETIMEDOUT"},
	{ECONNREFUSED, "ECONNREFUSED"},
	{EHOSTUNREACH, "EHOSTUNREACH"},
	{EALREADY, "EALREADY"},
	{EINPROGRESS, "EINPROGRESS"},
	{ESTALE, "ESTALE"},
	{EDQUOT, "EDQUOT"},
	{ECANCELED, "ECANCELED"},
	{EOWNERDEAD, "EOWNERDEAD"},
	{ENOTRECOVERABLE, "ENOTRECOVERABLE"},
	{ENOTCAPABLE, "ENOTCAPABLE"},
}

var byName = func() map[string]ErrorCode {
	m := make(map[string]ErrorCode, len(names)+2)
	for _, n := range names {
		m[n.name] = n.code
	}
	m["EWOULDBLOCK"] = EWOULDBLOCK
	m["EOPNOTSUPP"] = EOPNOTSUPP
	return m
}()

// Name returns the symbolic name of the code, such as "ENOMEM".
// Alias codes report the name of their representative code.
// It returns the empty string for codes without a name.
func (c ErrorCode) Name() string {
	i, ok := slices.BinarySearchFunc(names, c, func(e codeName, c ErrorCode) int {
		return cmp.Compare(e.code, c)
	})
	if !ok {
		return ""
	}
	return names[i].name
}

// String returns the symbolic name, or "errno(N)" for unnamed codes.
func (c ErrorCode) String() string {
	if n := c.Name(); n != "" {
		return n
	}
	return "errno(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// Error returns the POSIX message for the code, so that codes can be
// returned and compared as errors.
func (c ErrorCode) Error() string {
	if msg, ok := Message(c, Profile{}); ok {
		return msg
	}
	return "errno " + strconv.FormatUint(uint64(c), 10)
}

// Lookup returns the code with the given symbolic name. Alias names such as
// "EWOULDBLOCK" resolve to their representative code.
func Lookup(name string) (ErrorCode, bool) {
	c, ok := byName[name]
	return c, ok
}

// Codes returns every named code in ascending order. Aliases are not
// repeated.
func Codes() []ErrorCode {
	out := make([]ErrorCode, len(names))
	for i, n := range names {
		out[i] = n.code
	}
	return out
}
