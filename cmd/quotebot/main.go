package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ENTRY POINT

var rootCmd = &cobra.Command{
	Use:           "quotebot",
	Short:         "Automotive cosmetic services quote bot",
	Long:          "quotebot prices paint protection film, window tint, ceramic coating and paint correction jobs over Telegram and HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
