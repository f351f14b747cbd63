// Package cli provides the Cobra command structure for the alphamap tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/textbits/alphamap/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root alphamap command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "alphamap",
		Short: "Inspect and convert trie alphabet definitions",
		Long: `alphamap works with alphabet definitions for array-based tries.

A textual definition lists closed character ranges, one hexadecimal [begin,end]
pair per line; unrecognized lines are comments. The tool validates definitions,
compiles them into binary alphabet-map blocks, and dumps blocks back to text.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newCompileCommand())
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
