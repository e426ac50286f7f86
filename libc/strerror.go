// Package libc implements the strerror family on top of errno.Message.
//
// Error numbers are C ints in the errno.ErrorCode numbering. Numbers without
// a message for the profile, negative numbers included, are described as
// "Unknown error <n>".
package libc

import (
	"io"
	"math"
	"strconv"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

// message resolves errnum under p. Unknown numbers get the fallback text and
// false.
func message(errnum int, p errno.Profile) (string, bool) {
	if errnum >= 0 && uint64(errnum) <= math.MaxUint32 {
		if msg, ok := errno.Message(errno.ErrorCode(errnum), p); ok {
			return msg, true
		}
	}
	return "Unknown error " + strconv.Itoa(errnum), false
}

// Strerror returns the message for errnum.
func Strerror(errnum int, p errno.Profile) string {
	msg, _ := message(errnum, p)
	return msg
}

// StrerrorR copies the message for errnum into buf as a NUL-terminated
// string, following the XSI strerror_r.
//
// It returns errno.EINVAL when errnum is unknown (buf still receives the
// fallback text), and errno.ERANGE when buf cannot hold the text and its
// terminator. A short buf receives as much of the text as fits.
func StrerrorR(errnum int, buf []byte, p errno.Profile) error {
	msg, known := message(errnum, p)
	if !copyTerminated(buf, msg) {
		return errno.ERANGE
	}
	if !known {
		return errno.EINVAL
	}
	return nil
}

// GNUStrerrorR follows the GNU strerror_r. It returns the message for
// errnum; buf is only written, truncated and NUL-terminated, when errnum is
// unknown, and the returned string is then what buf holds.
func GNUStrerrorR(errnum int, buf []byte, p errno.Profile) string {
	msg, known := message(errnum, p)
	if known {
		return msg
	}
	copyTerminated(buf, msg)
	return cString(buf)
}

// Perror writes "s: message\n" to w, or "message\n" when s is empty.
func Perror(w io.Writer, s string, errnum int, p errno.Profile) error {
	msg := Strerror(errnum, p)
	if s != "" {
		msg = s + ": " + msg
	}
	_, err := io.WriteString(w, msg+"\n")
	return err
}

// copyTerminated copies s into buf followed by a NUL byte, truncating s if
// needed. It reports whether s fit entirely.
func copyTerminated(buf []byte, s string) bool {
	if len(buf) == 0 {
		return false
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
	return n == len(s)
}

// cString returns the bytes of buf before the first NUL.
func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
