// Command savekit classifies save-medium dumps from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/retrosave/savekit"
	"github.com/retrosave/savekit/cmd/savekit/commands"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	cfg, err := savekit.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "savekit",
		Short: "Classify save-medium dumps into known binary formats",
		Long: `savekit inspects opaque byte dumps (save containers, memory-card
images, entity records, box dumps, battle videos, event gifts) and reports
which format family each one belongs to.`,
		Version: "1.0.0",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			savekit.SetLogger(logger)
			commands.SetLogger(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json)")

	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewScanCommand(cfg.ScanPattern))
	rootCmd.AddCommand(commands.NewWatchCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildLogger(level, format string) (*logrus.Logger, error) {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return logger, nil
}
