package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, overridden at link time:
//
//	go build -ldflags "-X github.com/agbru/sumbench/internal/app.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args ask for the version. It is checked
// before flag parsing so that --version works alongside any other flag.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the build information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "sumbench %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
