package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/booter/internal/config"
	"github.com/opmodel/booter/internal/output"
)

// GlobalConfig holds the state shared by every booterctl command. It is
// built once by NewRootCmd and passed to each sub-command constructor.
type GlobalConfig struct {
	// Loader resolves the environment inputs with flags bound.
	Loader *config.Loader
}

// Resolve resolves the environment and configures diagnostics for it.
func (g *GlobalConfig) Resolve() (*config.Resolved, error) {
	res, err := g.Loader.Resolve()
	if err != nil {
		return nil, err
	}
	output.SetupLogging(output.LogConfig{Verbose: res.Debug})
	return res, nil
}

// inputFlags maps environment keys to their booterctl flag names.
var inputFlags = []struct {
	key, name, usage string
}{
	{config.KeyAppName, "app", "Application name"},
	{config.KeyBaseDir, "basedir", "Application base directory"},
	{config.KeyRepoDir, "repo", "Repository directory for classpath elements (default: basedir)"},
	{config.KeySearchPath, "path", "Descriptor search path (default: <basedir>/etc, <basedir>)"},
}

// NewRootCmd creates the root command for booterctl.
func NewRootCmd() *cobra.Command {
	cfg := &GlobalConfig{Loader: config.NewLoader()}

	rootCmd := &cobra.Command{
		Use:   "booterctl",
		Short: "Inspect and launch booter applications",
		Long: `booterctl loads an application's launch descriptor, shows what the
booter would do with it, and runs it.

Inputs are read from flags, then environment variables:
  --app      APP_NAME
  --basedir  BASEDIR
  --repo     APP_REPO
  --path     APP_BOOTER_PATH
  --debug    APP_BOOTER_DEBUG`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	for _, f := range inputFlags {
		flags.String(f.name, "", f.usage+" (env: "+config.EnvName(f.key)+")")
	}
	flags.Bool("debug", false, "Enable diagnostics on stderr (env: "+config.EnvName(config.KeyDebug)+")")

	for _, f := range inputFlags {
		_ = cfg.Loader.BindFlag(f.key, flags.Lookup(f.name))
	}
	_ = cfg.Loader.BindFlag(config.KeyDebug, flags.Lookup("debug"))

	rootCmd.AddCommand(NewRunCmd(cfg))
	rootCmd.AddCommand(NewDescribeCmd(cfg))
	rootCmd.AddCommand(NewClasspathCmd(cfg))
	rootCmd.AddCommand(NewDiffCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}
