package nej

import (
	"os"
	"path/filepath"

	"github.com/nejtool/nej/internal/engine"
	"github.com/nejtool/nej/internal/tui"
	"github.com/nejtool/nej/internal/types"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tui [PATH...]",
		Short: "Interactive emoji cleanup browser",
		Long: "tui scans the given paths (default: current directory, recursively) and opens\n" +
			"an interactive view of per-file emoji counts. Files can be cleaned in place\n" +
			"one at a time or all at once.",
		Args: cobra.ArbitraryArgs,
		RunE: runTUI,
	}
	rootCmd.AddCommand(cmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	root, _ := os.Getwd()
	abs, _ := filepath.Abs(root)

	base := engine.Config{
		Root:            abs,
		Recursive:       true,
		IncludeGlobs:    flagInclude,
		ExcludeGlobs:    flagExclude,
		MaxBytes:        flagMaxBytes,
		Pad:             flagPad,
		DefaultExcludes: flagDefaultExcludes,
		NoCache:         flagNoCache,
	}

	scan := func() ([]types.FileReport, error) {
		cfg := base
		cfg.Paths = paths
		res, err := engine.Run(cfg)
		if err != nil {
			return nil, err
		}
		return res.Reports, nil
	}
	apply := func(targets []string) ([]types.FileReport, error) {
		cfg := base
		cfg.Paths = targets
		cfg.InPlace = true
		res, err := engine.Run(cfg)
		if err != nil {
			return nil, err
		}
		return res.Reports, nil
	}

	reports, err := scan()
	if err != nil {
		return err
	}
	return tui.Run(reports, scan, apply)
}
