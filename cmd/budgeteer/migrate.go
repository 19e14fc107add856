package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghuser/budgeteer/migrations/shoppinglist"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/database"
	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/migrator"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the shopping list schema to DATABASE_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := migrator.RunMigrations(cmd.Context(), c.cfg.DatabaseURL, shoppinglist.FS); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "shopping list schema is up to date")
			return nil
		},
	}
}

// openDatabase connects and migrates so the postgres list store works on a
// fresh database.
func openDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (*database.Database, error) {
	db, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := migrator.Up(ctx, db.DB(), shoppinglist.FS); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
