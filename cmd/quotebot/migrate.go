package main

import (
	"fmt"

	"autoquote-bot/internal/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate <up|down|status>",
	Short:     "Manage the quote history schema",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, zapLogger, err := bootstrap()
		if err != nil {
			return err
		}
		defer zapLogger.Sync()

		ctx := cmd.Context()
		pg, err := openPostgres(ctx, cfg, zapLogger)
		if err != nil {
			return err
		}
		defer pg.Close()

		switch args[0] {
		case "up":
			return storage.RunMigrations(ctx, pg.DB(), zapLogger)
		case "down":
			return storage.RollbackMigration(ctx, pg.DB(), zapLogger)
		case "status":
			return storage.Status(ctx, pg.DB(), zapLogger)
		default:
			return fmt.Errorf("unknown migrate action %q", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
