package nej

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the nej version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("nej", version)
		},
	}
	rootCmd.AddCommand(cmd)
}
