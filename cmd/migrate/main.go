package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/infrastructure/config"
	"github.com/rafabene/casadf-backend/internal/infrastructure/logging"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Gerencia o schema do banco da CasaDF",
		SilenceUsage: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "tempo máximo da operação")

	root.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Cria ou atualiza as tabelas de todas as entidades",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnector(cmd.Context(), timeout, func(ctx context.Context, conn *postgres.Connector, logger ports.Logger) error {
				if err := postgres.Migrate(ctx, conn); err != nil {
					return err
				}
				logger.Info("database migrated")
				return nil
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Verifica se o banco responde",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnector(cmd.Context(), timeout, func(ctx context.Context, conn *postgres.Connector, _ ports.Logger) error {
				if err := postgres.Ping(ctx, conn); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "database reachable")
				return nil
			})
		},
	})

	return root
}

func withConnector(parent context.Context, timeout time.Duration, fn func(context.Context, *postgres.Connector, ports.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewSlogLogger(cfg.Logging.Level)

	conn := postgres.NewConnector(&cfg.Database, logger)
	defer conn.Close() //nolint:errcheck

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	return fn(ctx, conn, logger)
}
