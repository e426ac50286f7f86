// Command errstr prints the strerror message of error codes for a platform
// profile.
//
//	errstr --libc musl ENOMEM 2
//	errstr --detect --all
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "errstr:", err)
		os.Exit(1)
	}
}
