// Package cmd wires the command line onto the desktop application.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"yargizeka/internal/app"
	"yargizeka/internal/config"
	"yargizeka/internal/logger"
)

// Version is set at build time with -ldflags
var Version = "dev"

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yargizeka",
		Short:         "YargıZeka desktop shell",
		Long:          `yargizeka opens the YargıZeka window and serves its native commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			application, err := app.New(cfg, log)
			if err != nil {
				return err
			}

			if err := application.Run(); err != nil {
				return fmt.Errorf("%s: %w", app.StartupFailureMessage, err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")

	root.AddCommand(versionCmd)
	root.AddCommand(invokeCmd)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(logOut io.Writer) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logger.New(logOut, cfg.LogLevel, cfg.LogFormat), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "yargizeka version %s\n", Version)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main executes the root command and reports any error on stderr.
func Main() int {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
