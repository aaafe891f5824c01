package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/grom/config"
)

type rootOptions struct {
	configPath string
	endpoint   string
	verbose    bool
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "grom",
		Short:         "Inflect class names and build REST resource URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "grom.yml", "Path to the YAML configuration file")
	cmd.PersistentFlags().StringVarP(&opts.endpoint, "endpoint", "e", "", "API endpoint (overrides config and "+config.EnvEndpoint+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newInflectCmd(), newURLCmd(opts))
	return cmd
}

// loadConfig reads the configuration file, letting --endpoint win.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var opts []config.Option
	if o.endpoint != "" {
		opts = append(opts, config.WithEndpoint(o.endpoint))
	}
	c, err := config.Load(o.configPath, opts...)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("loaded config", "path", o.configPath, "endpoint", c.Endpoint, "irregulars", len(c.Irregulars))
	return c, nil
}
