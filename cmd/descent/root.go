package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "descent",
		Short:         "descent runs first-order optimizers on test problems.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	newLogger := func() (*slog.Logger, error) {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
	}

	cmd.AddCommand(
		runCmd(newLogger),
		problemsCmd(),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "descent %s\n", version)
		},
	}
}
