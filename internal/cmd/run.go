package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "run [flags] [-- args...]",
		Short: "Launch the application",
		Long: `Launch the application: load its descriptor, apply its settings, build
the loader over its classpath and invoke its entry point with the
descriptor's arguments followed by args.

Use "--" to pass arguments that look like flags to the application.

Examples:
  # Launch with inputs from the environment
  booterctl run -- --port 8080

  # Launch with explicit inputs and diagnostics
  booterctl run --app demo --basedir /opt/demo --debug -- serve`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return Launch(ctx, cfg.Loader, args)
		},
	}
}
