package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"autoquote-bot/internal/pricing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <service> [key=value...]",
	Short: "Print a quote as JSON",
	Example: `  quotebot quote ppf serviceType=full-front ppfType=stealth
  quotebot quote paintCorrection vehicleType=truck paintCondition=severe customerType=dealer`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}

		engine := pricing.New(zap.NewNop())
		q, err := engine.Calculate(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func parseParams(args []string) (pricing.Params, error) {
	params := pricing.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		params[key] = value
	}
	return params, nil
}
