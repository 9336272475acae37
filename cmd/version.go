package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is overridden at release time via -ldflags.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kotoba version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kotoba %s\n", currentVersion())
	},
}

func currentVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
