package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/shenikar/safe_route_system/internal/repository/sqlite"
	"github.com/shenikar/safe_route_system/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultDBPath = "data/safe_route.db"

// NewRootCmd создает корневую команду CLI
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "safepathctl",
		Short:         "Offline tools for the SafestPath route system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("db", defaultDBPath, "Path to the SQLite database file")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewRouteCmd())

	return cmd
}

// Execute запускает корневую команду
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB открывает базу по флагу --db и создает логгер в stderr команды
func openDB(ctx context.Context, cmd *cobra.Command) (*sql.DB, *logrus.Logger, error) {
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, nil, err
	}
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	return db, logger.NewWithOutput(level, cmd.ErrOrStderr()), nil
}
