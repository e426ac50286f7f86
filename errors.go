package errno

import "errors"

// ErrInvalidProfile indicates that a profile or libc flavor string could not
// be parsed.
var ErrInvalidProfile = errors.New("invalid platform profile")
