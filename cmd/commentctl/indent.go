package main

import (
	"github.com/spf13/cobra"

	"github.com/commentkit/commentkit/toggle"
)

func init() {
	rootCmd.AddCommand(
		newIndentCmd(),
		newUnindentCmd(),
		newIndentRangeCmd(),
		newUnindentRangeCmd(),
	)
}

func newIndentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indent <file> <line>",
		Short: "Add 4 spaces to the start of a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLineArg(args[1], "line")
			if err != nil {
				return err
			}
			if err := toggle.IndentLine(args[0], line); err != nil {
				return err
			}
			printInfo("Indented line %d of %s\n", line, args[0])
			return nil
		},
	}
}

func newUnindentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unindent <file> <line>",
		Short: "Remove up to 4 leading spaces from a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLineArg(args[1], "line")
			if err != nil {
				return err
			}
			if err := toggle.UnindentLine(args[0], line); err != nil {
				return err
			}
			printInfo("Unindented line %d of %s\n", line, args[0])
			return nil
		},
	}
}

func newIndentRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indent-range <file> <start> <end>",
		Short: "Add 4 spaces to every line in an inclusive range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRangeArgs(args)
			if err != nil {
				return err
			}
			if err := toggle.IndentRange(args[0], start, end); err != nil {
				return err
			}
			printInfo("Indented lines %d-%d of %s\n", start, end, args[0])
			return nil
		},
	}
}

func newUnindentRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unindent-range <file> <start> <end>",
		Short: "Remove up to 4 leading spaces from every line in an inclusive range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRangeArgs(args)
			if err != nil {
				return err
			}
			if err := toggle.UnindentRange(args[0], start, end); err != nil {
				return err
			}
			printInfo("Unindented lines %d-%d of %s\n", start, end, args[0])
			return nil
		},
	}
}

func parseRangeArgs(args []string) (start, end int, err error) {
	if start, err = parseLineArg(args[1], "start"); err != nil {
		return 0, 0, err
	}
	if end, err = parseLineArg(args[2], "end"); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
