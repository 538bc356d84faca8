package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/booter/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show booter version information.

Displays:
  - version, commit, build date and Go version
  - CUE SDK version (used for .cue descriptors)`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return err
		},
	}
}
