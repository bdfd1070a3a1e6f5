package nej

import (
	"fmt"
	"os"

	"github.com/nejtool/nej/internal/emoji"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "List the Unicode ranges treated as emoji",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, b := range emoji.Blocks() {
				if b.Lo == b.Hi {
					_, _ = fmt.Fprintf(os.Stdout, "U+%04X          %s\n", b.Lo, b.Name)
					continue
				}
				_, _ = fmt.Fprintf(os.Stdout, "U+%04X..U+%04X  %s\n", b.Lo, b.Hi, b.Name)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
