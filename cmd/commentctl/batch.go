package main

import (
	"github.com/spf13/cobra"

	"github.com/commentkit/commentkit/toggle"
)

var batchDoc bool

func init() {
	cmd := newBatchCmd()
	cmd.Flags().BoolVar(&batchDoc, "doc", false, "Toggle doc comments (///) instead of plain comments")
	rootCmd.AddCommand(cmd)
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file> <line> [line...]",
		Short: "Toggle comments on multiple lines in one operation",
		Long: `The batch command toggles the single-line comment on each listed line in
a single atomic rewrite. Duplicate line numbers collapse to one toggle.
At most 128 lines per batch.

Example:
  commentctl batch main.py 1 10 12
  commentctl batch --doc src/lib.rs 3 4 5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				n, err := parseLineArg(arg, "line")
				if err != nil {
					return err
				}
				lines = append(lines, n)
			}

			var err error
			if batchDoc {
				err = toggle.ToggleDocLines(args[0], lines)
			} else {
				err = toggle.ToggleLines(args[0], lines)
			}
			if err != nil {
				return err
			}
			printInfo("Toggled %d line(s) in %s\n", len(lines), args[0])
			return nil
		},
	}
}
