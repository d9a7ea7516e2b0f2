package main

import (
	"github.com/spf13/cobra"

	"github.com/commentkit/commentkit/toggle"
)

func init() {
	rootCmd.AddCommand(newToggleCmd())
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <file> <line>",
		Short: "Toggle the single-line comment on one line",
		Long: `The toggle command adds or removes the language's single-line comment
token (// or #) on one line, auto-detected from the file extension.

Example:
  commentctl toggle main.py 5
  commentctl toggle src/lib.rs 42`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLineArg(args[1], "line")
			if err != nil {
				return err
			}
			if err := toggle.ToggleLine(args[0], line); err != nil {
				return err
			}
			printInfo("Toggled comment on line %d of %s\n", line, args[0])
			return nil
		},
	}
}
