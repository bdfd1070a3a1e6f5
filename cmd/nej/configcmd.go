package nej

import (
	"fmt"
	"os"

	"github.com/nejtool/nej/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput          string
	cfgInclude         string
	cfgExclude         string
	cfgMaxBytes        int64
	cfgRecursive       bool
	cfgPad             bool
	cfgBackupSuffix    string
	cfgNoColor         bool
	cfgDefaultExcludes bool
	cfgNoCache         bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .nej.yml with selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".nej.yml", "output file path")
	initCmd.Flags().StringVar(&cfgInclude, "include", "", "comma-separated include globs")
	initCmd.Flags().StringVar(&cfgExclude, "exclude", "", "comma-separated exclude globs")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", 1<<20, "skip walked files larger than this")
	initCmd.Flags().BoolVar(&cfgRecursive, "recursive", false, "descend into directory arguments by default")
	initCmd.Flags().BoolVar(&cfgPad, "pad", false, "pad removed emoji with spaces by default")
	initCmd.Flags().StringVar(&cfgBackupSuffix, "backup-suffix", "", "default backup suffix for in-place edits")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "enable default ignore patterns")
	initCmd.Flags().BoolVar(&cfgNoCache, "no-cache", false, "disable the clean-file cache by default")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	fc := config.FileConfig{
		Include:         optStrPtr(cfgInclude),
		Exclude:         optStrPtr(cfgExclude),
		MaxBytes:        int64Ptr(cfgMaxBytes),
		Recursive:       boolPtr(cfgRecursive),
		Pad:             boolPtr(cfgPad),
		BackupSuffix:    optStrPtr(cfgBackupSuffix),
		NoColor:         boolPtr(cfgNoColor),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
		NoCache:         boolPtr(cfgNoCache),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
