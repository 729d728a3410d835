// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/securedocs/internal/buildinfo.Version=v1.0.0"
package buildinfo

import (
	"cmp"
	"fmt"
	"io"
)

var (
	Version   string
	BuildDate string
	Commit    string
)

// PrintBuildData writes the build metadata, using "N/A" for unset values.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", cmp.Or(Version, "N/A"))
	fmt.Fprintf(w, "Build date: %s\n", cmp.Or(BuildDate, "N/A"))
	fmt.Fprintf(w, "Build commit: %s\n", cmp.Or(Commit, "N/A"))
}
