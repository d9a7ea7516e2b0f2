package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var (
	// Global flags
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "commentctl",
	Short: "Toggle comments and indentation in source code files",
	Long: `commentctl toggles comment markers and indentation on specific lines of
source files. The comment syntax is resolved from the file extension;
every byte outside the selected lines is preserved exactly, and a backup
copy (backup_toggle_comment_<filename>) is written next to the file
before it is modified.

Line numbers are 1-indexed.

Supported extensions:
  //  : rs, c, cpp, cc, cxx, h, hpp, js, ts, java, go, swift
  #   : py, sh, bash, toml, yaml, yml, rb, pl, r

Exit codes:
  0 success              5 line not found       8 line too long
  1 invalid arguments    6 i/o error            9 inconsistent block markers
  2 file not found       7 path error          10 invalid line range
  3 no extension
  4 unsupported extension`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", env.Bool("COMMENTCTL_QUIET"), "Suppress all output except errors")
	rootCmd.PersistentFlags().
		BoolVar(&noColor, "no-color", env.Bool("NO_COLOR"), "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(exitCode(err))
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	prefix := "Error: "
	if !noColor {
		prefix = "\x1b[31mError:\x1b[0m "
	}
	fmt.Fprintf(os.Stderr, prefix+format, args...)
}

// parseLineArg parses a 1-indexed line number argument.
func parseLineArg(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer, got %q", name, arg)
	}
	return n, nil
}
