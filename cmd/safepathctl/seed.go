package main

import (
	"fmt"

	"github.com/shenikar/safe_route_system/internal/repository/sqlite"
	"github.com/shenikar/safe_route_system/internal/seed"
	"github.com/spf13/cobra"
)

// NewSeedCmd создает команду seed
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the SQLite store and load sample incidents and toll gates",
		Long: `Seed creates the database file if needed and inserts the built-in sample
data (Mumbai incidents and toll gates). Tables that already hold rows are left untouched.`,
		Args: cobra.NoArgs,
		RunE: runSeedCmd,
	}
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, log, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	data, err := seed.Sample()
	if err != nil {
		return err
	}

	res, err := seed.Apply(ctx, data, sqlite.NewIncidentRepository(db), sqlite.NewTollGateRepository(db), log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d incidents, %d toll gates\n", res.Incidents, res.TollGates)
	return nil
}
