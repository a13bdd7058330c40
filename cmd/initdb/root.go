package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trading-journal/internal/config"
	"trading-journal/internal/database"
	"trading-journal/internal/logger"
	"trading-journal/internal/report"
)

// newRootCmd creates the initdb command.
func newRootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Create the trading journal database and seed sample rows",
		Long: `initdb creates the trading_history and trading_reflection tables if they
do not exist yet and inserts three sample rows into each. Running it again
keeps the schema but appends another set of sample rows.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}

			cfg, err := config.LoadConfig(configDir)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}

			log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
			if err != nil {
				return fmt.Errorf("could not initialize logger: %w", err)
			}
			defer log.Sync()
			log.Debug("Configuration loaded", zap.String("config_dir", configDir))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := database.NewInitializer(&cfg, log).Run(ctx)
			if err != nil {
				report.Failure(cmd.OutOrStdout(), err)
				return err
			}
			report.Success(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config", "./configs", "Directory containing config.yml")
	return cmd
}
