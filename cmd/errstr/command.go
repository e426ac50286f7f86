package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/input-output-hk/catalyst-forge-libs/errno"
	"github.com/input-output-hk/catalyst-forge-libs/errno/libc"
	"github.com/input-output-hk/catalyst-forge-libs/errno/platform"
)

var errUnknownCode = errors.New("not an error number or name")

// libcFlag adapts errno.Libc to pflag.Value.
type libcFlag struct {
	libc *errno.Libc
}

var _ pflag.Value = libcFlag{}

func (f libcFlag) String() string {
	if f.libc == nil {
		return errno.LibcOther.String()
	}
	return f.libc.String()
}

func (f libcFlag) Set(s string) error {
	l, err := errno.ParseLibc(s)
	if err != nil {
		return err
	}
	*f.libc = l
	return nil
}

func (f libcFlag) Type() string {
	return "posix|gnu|musl"
}

type rootOptions struct {
	profile errno.Profile
	detect  bool
	all     bool
	verbose bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "errstr [OPTIONS] [CODE|NAME...]",
		Short:         "Print the strerror message of error numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !opts.all {
				return errors.New("requires at least one code, or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), opts, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.Var(libcFlag{&opts.profile.Libc}, "libc", "C library wording to follow")
	flags.BoolVar(&opts.profile.WASI, "wasi", false, "Resolve for a WASI target")
	flags.BoolVar(&opts.detect, "detect", false, "Detect the profile of this system; --libc and --wasi still override")
	flags.BoolVarP(&opts.all, "all", "a", false, "List every known error code")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log profile detection")

	return cmd
}

func run(flags *pflag.FlagSet, opts rootOptions, args []string, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	profile := opts.profile
	if opts.detect {
		detected, err := platform.Load(platform.WithLogger(logger))
		if err != nil {
			return err
		}
		if !flags.Changed("libc") {
			profile.Libc = detected.Libc
		}
		if !flags.Changed("wasi") {
			profile.WASI = detected.WASI
		}
	}
	logger.Debug("resolving messages", "profile", profile.String())

	var nums []int
	if opts.all {
		for _, code := range errno.Codes() {
			nums = append(nums, int(code))
		}
	}
	for _, arg := range args {
		n, err := parseCode(arg)
		if err != nil {
			return err
		}
		nums = append(nums, n)
	}

	for _, n := range nums {
		name := "-"
		if n >= 0 && uint64(n) <= math.MaxUint32 {
			if s := errno.ErrorCode(n).Name(); s != "" {
				name = s
			}
		}
		if _, err := fmt.Fprintf(stdout, "%s\t%d\t%s\n", name, n, libc.Strerror(n, profile)); err != nil {
			return err
		}
	}
	return nil
}

// parseCode accepts a decimal number or a symbolic name such as "ENOMEM" or
// "enomem".
func parseCode(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	if code, ok := errno.Lookup(strings.ToUpper(arg)); ok {
		return int(code), nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownCode, arg)
}
