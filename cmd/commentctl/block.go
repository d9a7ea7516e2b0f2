package main

import (
	"github.com/spf13/cobra"

	"github.com/commentkit/commentkit/toggle"
)

func init() {
	rootCmd.AddCommand(newBlockCmd())
}

func newBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block <file> <start> <end>",
		Short: "Wrap or unwrap a line range in block comment markers",
		Long: `The block command inserts the language's block comment markers around an
inclusive line range (/* before start, */ after end; """ for Python), or
removes them when both boundary lines already are the markers. A range
where only one boundary matches is rejected rather than guessed at.

Example:
  commentctl block main.rs 5 15
  commentctl block script.py 3 8`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseLineArg(args[1], "start")
			if err != nil {
				return err
			}
			end, err := parseLineArg(args[2], "end")
			if err != nil {
				return err
			}
			if err := toggle.ToggleBlock(args[0], start, end); err != nil {
				return err
			}
			printInfo("Toggled block comment on lines %d-%d of %s\n", start, end, args[0])
			return nil
		},
	}
}
