package main

import "github.com/spf13/cobra"

// newRootCommand builds the frlayout command tree: a bare root plus the
// run and bench subcommands. Each subcommand owns its own flag set and
// config struct; nothing is shared at the root beyond the program name.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "frlayout",
		Short:         "Fruchterman-Reingold force-directed graph layout",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newBenchCommand())
	return root
}
