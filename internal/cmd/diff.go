package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/booter/internal/descriptor"
	"github.com/opmodel/booter/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare two descriptors",
		Long: `Compare two descriptor files by content using a semantic YAML diff
(via dyff). The files may be in different formats; a .xml descriptor and
its .yaml translation compare equal.

Examples:
  booterctl diff etc/demo.xml etc/demo.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			from, err := descriptor.LoadFile(args[0])
			if err != nil {
				return err
			}
			to, err := descriptor.LoadFile(args[1])
			if err != nil {
				return err
			}

			w := c.OutOrStdout()
			report, err := descriptor.Diff(from, to, output.ColorEnabled(w))
			if err != nil {
				return err
			}

			if report == "" {
				output.Info("descriptors are equivalent")
				return nil
			}
			_, err = fmt.Fprintln(w, report)
			return err
		},
	}
}
