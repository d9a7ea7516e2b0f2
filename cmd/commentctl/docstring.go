package main

import (
	"github.com/spf13/cobra"

	"github.com/commentkit/commentkit/toggle"
)

func init() {
	rootCmd.AddCommand(newDocCmd())
}

func newDocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc <file> <line>",
		Short: "Toggle the doc-comment (///) on one line",
		Long: `The doc command adds or removes the language's doc-comment token on one
line. Only languages with a line-level doc comment (e.g. Rust's ///) are
supported; others fail with an unsupported-extension error.

Example:
  commentctl doc src/lib.rs 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLineArg(args[1], "line")
			if err != nil {
				return err
			}
			if err := toggle.ToggleDocLine(args[0], line); err != nil {
				return err
			}
			printInfo("Toggled doc comment on line %d of %s\n", line, args[0])
			return nil
		},
	}
}
