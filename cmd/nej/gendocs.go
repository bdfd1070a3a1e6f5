package nej

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nejtool/nej/internal/emoji"
	"github.com/spf13/cobra"
)

// gendocs regenerates the emoji blocks section in README.md between the
// markers <!-- BEGIN:EMOJI_BLOCKS --> and <!-- END:EMOJI_BLOCKS -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README emoji block tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:EMOJI_BLOCKS -->")
			end := []byte("<!-- END:EMOJI_BLOCKS -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			var sec bytes.Buffer
			sec.WriteString("\n| Range | Block |\n|---|---|\n")
			for _, blk := range emoji.Blocks() {
				if blk.Lo == blk.Hi {
					fmt.Fprintf(&sec, "| `U+%04X` | %s |\n", blk.Lo, blk.Name)
					continue
				}
				fmt.Fprintf(&sec, "| `U+%04X..U+%04X` | %s |\n", blk.Lo, blk.Hi, blk.Name)
			}
			sec.WriteString("\n")

			var out bytes.Buffer
			out.Write(b[:i+len(start)])
			out.Write(sec.Bytes())
			out.Write(b[j:])
			if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
				return err
			}
			fmt.Println("Updated", path)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
