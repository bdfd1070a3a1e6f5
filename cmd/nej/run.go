package nej

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nejtool/nej/internal/audit"
	"github.com/nejtool/nej/internal/config"
	"github.com/nejtool/nej/internal/engine"
	"github.com/nejtool/nej/internal/report"
	"github.com/nejtool/nej/internal/update"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, args []string) error {
	if flagSelfUpdate {
		if err := selfUpdate(); err != nil {
			return fmt.Errorf("self-update error: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("no paths given (see 'nej --help')")
	}

	root, _ := os.Getwd()
	abs, _ := filepath.Abs(root)
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	inPlace, backup := resolveInPlace(flagInPlace, lcfg.BackupSuffix, gcfg.BackupSuffix)
	if flagDryRun {
		inPlace = false
	}

	cfg := engine.Config{
		Paths:           args,
		Root:            abs,
		InPlace:         inPlace,
		BackupSuffix:    backup,
		Pad:             pickBool(flagPad, lcfg.Pad, gcfg.Pad),
		Recursive:       pickBool(flagRecursive, lcfg.Recursive, gcfg.Recursive),
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		DefaultExcludes: flagDefaultExcludes,
		NoCache:         pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !report.StdoutIsTTY() {
		noColor = true
	}

	if !flagJSON && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'nej --self-update' to upgrade\n", latest)
		}
	}

	res, err := engine.Run(cfg)
	if err != nil {
		return err
	}

	opts := report.PrintOptions{NoColor: noColor, Duration: res.Duration, FilesProcessed: res.FilesProcessed}
	switch {
	case flagJSON:
		if err := report.PrintJSON(os.Stdout, res.Reports); err != nil {
			return err
		}
	case flagTable:
		report.PrintTable(os.Stdout, res.Reports, opts)
	default:
		report.PrintReports(os.Stdout, res.Reports)
	}
	report.PrintDiagnostics(os.Stderr, res.Reports)

	if inPlace && !flagNoAudit && pickAudit(lcfg.Audit, gcfg.Audit) {
		log := audit.New(abs)
		_ = log.Append(audit.Record(abs, res.Reports, res.Duration))
	}

	if n := res.Failures(); n > 0 {
		return fmt.Errorf("%d path(s) failed", n)
	}
	return nil
}

// resolveInPlace turns the -i flag value into the (enabled, suffix) pair.
// The bare sentinel means -i was given with no suffix; an empty string means
// the flag was not given at all, in which case config may still supply a
// default backup suffix for when -i is later enabled.
func resolveInPlace(cli string, local, global *string) (bool, string) {
	switch cli {
	case "":
		return false, ""
	case inPlaceBare:
		return true, pickString("", local, global)
	default:
		return true, cli
	}
}

func pickAudit(local, global *bool) bool {
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return true
}
