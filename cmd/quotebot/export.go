package main

import (
	"fmt"
	"os"
	"time"

	"autoquote-bot/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportDays int

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export quote history to an Excel workbook",
	Args:  cobra.ExactArgs(1),
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

		quotes, err := pg.ListQuotes(ctx, time.Now().AddDate(0, 0, -exportDays))
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()

		if err := storage.WriteQuotesWorkbook(f, quotes); err != nil {
			return err
		}

		zapLogger.Info("Quotes exported",
			zap.String("file", args[0]),
			zap.Int("quotes", len(quotes)))
		return f.Close()
	},
}

func init() {
	exportCmd.Flags().IntVar(&exportDays, "days", 30, "number of days of history to export")
	rootCmd.AddCommand(exportCmd)
}
