package nej

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// inPlaceBare is the sentinel pflag assigns when -i is given without a
// suffix; it cannot collide with a real suffix a user would type.
const inPlaceBare = "\x00"

var (
	flagDryRun          bool
	flagInPlace         string
	flagRecursive       bool
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagPad             bool
	flagTable           bool
	flagJSON            bool
	flagNoColor         bool
	flagNoCache         bool
	flagDefaultExcludes bool
	flagNoAudit         bool
	flagNoUpdateCheck   bool
	flagSelfUpdate      bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the nej CLI. The root command itself
// performs the strip operation; there is no separate "run" subcommand.
var rootCmd = &cobra.Command{
	Use:   "nej [flags] PATH...",
	Short: "Strip emoji from text files",
	Long: "nej removes emoji graphemes (including joined sequences and flag pairs)\n" +
		"from text files, either reporting counts (--dry-run) or rewriting the\n" +
		"files in place atomically (-i).",
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the nej CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report counts per file without writing")
	rootCmd.Flags().StringVarP(&flagInPlace, "in-place", "i", "", "edit files in place; -i=SUFFIX keeps a backup at <path><SUFFIX>")
	rootCmd.Flags().Lookup("in-place").NoOptDefVal = inPlaceBare
	rootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "descend into directory arguments")
	rootCmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs (walked files only)")
	rootCmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs (walked files only)")
	rootCmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip walked files larger than this")
	rootCmd.Flags().BoolVar(&flagPad, "pad", false, "replace removed emoji with blank runs of equal display width")
	rootCmd.Flags().BoolVar(&flagTable, "table", false, "print a bordered summary table")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON reports")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable the clean-file cache")
	rootCmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list for walked directories (node_modules, images, etc.)")
	rootCmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not append in-place runs to the audit log")
	rootCmd.Flags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.Flags().BoolVar(&flagSelfUpdate, "self-update", false, "update nej to the latest release")
}
