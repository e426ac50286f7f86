package errno

import (
	"fmt"
	"strings"
)

// Libc identifies the C library flavor whose wording the messages follow.
type Libc uint8

const (
	// LibcOther selects the wording documented by POSIX.
	LibcOther Libc = iota
	// LibcGNU selects the GNU C library wording.
	LibcGNU
	// LibcMusl selects the musl wording.
	LibcMusl
)

var libcNames = [...]string{
	LibcOther: "posix",
	LibcGNU:   "gnu",
	LibcMusl:  "musl",
}

// String returns "posix", "gnu" or "musl".
func (l Libc) String() string {
	if int(l) < len(libcNames) {
		return libcNames[l]
	}
	return fmt.Sprintf("libc(%d)", uint8(l))
}

// ParseLibc parses the output of Libc.String. Matching is case-insensitive,
// and the empty string selects LibcOther.
func ParseLibc(s string) (Libc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "posix", "other":
		return LibcOther, nil
	case "gnu", "glibc":
		return LibcGNU, nil
	case "musl":
		return LibcMusl, nil
	}
	return 0, fmt.Errorf("%w: unknown libc flavor %q", ErrInvalidProfile, s)
}

// Profile describes the platform the messages are resolved for. The zero
// value is a non-WASI POSIX profile.
//
// A Profile is chosen once when the process starts and does not change
// afterwards.
type Profile struct {
	// Libc is the C library flavor.
	Libc Libc
	// WASI reports whether the target is WebAssembly System Interface.
	WASI bool
}

// String renders the profile as the libc name, with "+wasi" appended for
// WASI targets. For example "musl+wasi".
func (p Profile) String() string {
	if p.WASI {
		return p.Libc.String() + "+wasi"
	}
	return p.Libc.String()
}

// ParseProfile parses the output of Profile.String.
func ParseProfile(s string) (Profile, error) {
	libc, rest, wasi := strings.Cut(s, "+")
	if wasi && !strings.EqualFold(rest, "wasi") {
		return Profile{}, fmt.Errorf("%w: unknown profile suffix %q", ErrInvalidProfile, rest)
	}
	l, err := ParseLibc(libc)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Libc: l, WASI: wasi}, nil
}

// Profiles returns every supported profile.
func Profiles() []Profile {
	return []Profile{
		{Libc: LibcOther},
		{Libc: LibcGNU},
		{Libc: LibcMusl},
		{Libc: LibcOther, WASI: true},
		{Libc: LibcGNU, WASI: true},
		{Libc: LibcMusl, WASI: true},
	}
}
