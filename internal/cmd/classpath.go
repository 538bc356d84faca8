package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/booter/internal/booter"
	"github.com/opmodel/booter/internal/classpath"
	"github.com/opmodel/booter/internal/output"
)

// NewClasspathCmd creates the classpath command.
func NewClasspathCmd(cfg *GlobalConfig) *cobra.Command {
	var separator string

	c := &cobra.Command{
		Use:   "classpath",
		Short: "Print the resolved classpath",
		Long: `Print the application's classpath as absolute locations joined by the
separator, in descriptor order. The default separator is the OS path-list
separator.

Examples:
  # One location per line
  booterctl classpath --separator $'\n'`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := cfg.Resolve()
			if err != nil {
				return err
			}

			b := booter.New(res.Environment, booter.WithLogger(output.Logger()))
			if _, err := b.LoadConfig(); err != nil {
				return err
			}
			cp, err := b.Classpath()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.OutOrStdout(), classpath.Join(cp, separator))
			return err
		},
	}

	c.Flags().StringVar(&separator, "separator", "", "Separator between locations (default: OS path-list separator)")

	return c
}
