package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time; default to "dev" values for local builds.
//
//nolint:gochecknoglobals // populated by the release build, not user config
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Display the version, commit hash, and build date of mdbview.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(
				os.Stdout,
				`           _ _           _
 _ __ ___ | | |__/\   __| |_____ __ ___ __ __
| ' \/ _ \| | '_ \ \ / /| |___\ V / -_) V  V /
|_|_|\___/|_|_.__/\_\ \__/_|    \_/\___|\_/\_/

mdbview %s (commit: %s, built: %s)
`,
				buildVersion,
				buildCommit,
				buildDate,
			)
		},
	}
}
