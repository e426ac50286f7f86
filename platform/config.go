package platform

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
)

// Overrides holds the environment variables that replace detected values.
// With the default prefix they are ERRNO_LIBC and ERRNO_WASI. Fields carry no
// envconfig tag: a tag makes envconfig fall back to the unprefixed name.
type Overrides struct {
	// Libc is "posix", "gnu" or "musl". Empty keeps the detected flavor.
	Libc string
	// WASI forces the WASI flag on or off when set.
	WASI *bool
}

// LoadOverrides reads Overrides from the environment.
func LoadOverrides(prefix string) (Overrides, error) {
	var ov Overrides
	if err := envconfig.Process(prefix, &ov); err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", errno.ErrInvalidProfile, err)
	}
	return ov, nil
}

// Apply returns p with the overrides applied.
func (ov Overrides) Apply(p errno.Profile) (errno.Profile, error) {
	if ov.Libc != "" {
		libc, err := errno.ParseLibc(ov.Libc)
		if err != nil {
			return errno.Profile{}, err
		}
		p.Libc = libc
	}
	if ov.WASI != nil {
		p.WASI = *ov.WASI
	}
	return p, nil
}

// Load detects the profile of the running process and applies any
// environment overrides. It is meant to be called once at startup.
func Load(opts ...Option) (errno.Profile, error) {
	o := defaultOptions()
	applyOptions(o, opts)

	detected := detect(o)

	ov, err := LoadOverrides(o.envPrefix)
	if err != nil {
		return errno.Profile{}, err
	}
	p, err := ov.Apply(detected)
	if err != nil {
		return errno.Profile{}, fmt.Errorf("applying %s overrides: %w", o.envPrefix, err)
	}

	if o.logger != nil && p != detected {
		o.logger.InfoContext(context.Background(), "platform profile overridden",
			"detected", detected.String(),
			"profile", p.String(),
		)
	}
	return p, nil
}
