package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathstudio/internal/catalog"
	"github.com/abhisek/mathstudio/internal/problem"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the built-in bank size",
	// Needs neither config nor a logger.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "mathstudio", buildVersion())

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Fprintf(out, "go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "bank:    %d problems, %d bank genres\n", len(catalog.All()), len(catalog.Genres()))
			fmt.Fprintf(out, "genres:  %d\n", len(problem.AllGenres()))
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "Also print the Go version and bank size")
}

// buildVersion prefers the ldflags value, then the module version that
// "go install" records.
func buildVersion() string {
	if version != "(devel)" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}
