package cli

import (
	"fmt"

	cfgpkg "github.com/rzbill/fastuuid/internal/config"
	logpkg "github.com/rzbill/fastuuid/pkg/log"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration and logger to subcommands.
type app struct {
	cfg    cfgpkg.Config
	logger logpkg.Logger
}

// NewRoot constructs the root Cobra command. It registers the gen,
// validate, audit and bench commands.
func NewRoot() *cobra.Command {
	a := &app{cfg: cfgpkg.Default()}
	root := &cobra.Command{
		Use:           "fastuuid",
		Short:         "Fast sequential 192-bit and RFC-4122 shaped 128-bit ids",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "Config file (.json, .yaml or .yml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")
	root.PersistentFlags().String("log-format", "", "Log format: text|json")
	root.PersistentFlags().String("data-dir", "", "Audit store directory")

	root.AddCommand(newGenCommand(a))
	root.AddCommand(newValidateCommand())
	root.AddCommand(newAuditCommand(a))
	root.AddCommand(newBenchCommand(a))
	return root
}

// load resolves file, env and flag configuration, in that order.
func (a *app) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cfgpkg.Load(path)
	if err != nil {
		return err
	}
	cfgpkg.FromEnv(&cfg)

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.Audit.DataDir = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logpkg.ApplyConfig(&cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logpkg.RedirectStdLog(logger)

	a.cfg = cfg
	a.logger = logger.WithComponent("cli")
	a.logger.Debug("configuration loaded",
		logpkg.Str("config", path),
		logpkg.Str("byte_order", cfg.Generator.ByteOrder),
		logpkg.Str("counter_start", cfg.Generator.CounterStart),
	)
	return nil
}
