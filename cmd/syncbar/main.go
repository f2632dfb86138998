package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"syncbar/internal/aggregator"
	"syncbar/internal/stclient"
	"syncbar/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "syncbar",
	Short:   "Syncthing sync progress for your status bar",
	Version: version.Detailed(),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &stclient.Config{
			BaseURL: viper.GetString("base_url"),
			APIKey:  viper.GetString("api_key"),
		}

		client, err := stclient.New(cfg)
		if err != nil {
			return err
		}

		// all good now, don't show usage on loop errors
		cmd.SilenceUsage = true
		slog.Info("watching daemon", "url", cfg.BaseURL)
		defer slog.Info("Bye!")

		err = aggregator.New(client).Run(cmd.Context(), cmd.OutOrStdout())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringP("api-key", "k", "", "Syncthing API key, or path to a file holding it")
	rootCmd.Flags().StringP("base-url", "u", stclient.DefaultBaseURL, "Syncthing REST base URL")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
}

func main() {
	setupLogging(slog.LevelInfo)

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) error {
	// Bind flags to viper
	viper.BindPFlag("api_key", cmd.Flags().Lookup("api-key"))
	viper.BindPFlag("base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	// SYNCTHING_API_KEY / SYNCTHING_BASE_URL, matching the daemon's docs
	viper.SetEnvPrefix("SYNCTHING")
	viper.AutomaticEnv()

	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log_level"))); err != nil {
		return fmt.Errorf("config log level: %w", err)
	}
	setupLogging(level)

	return nil
}

// setupLogging writes to stderr only: stdout is the status line protocol
// read by the bar host.
func setupLogging(level slog.Level) {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	slog.SetDefault(slog.New(handler))
}
