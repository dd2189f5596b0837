package bot

import (
	"fmt"
	"strings"

	"autoquote-bot/internal/pricing"
	"autoquote-bot/internal/storage"
)

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func FormatQuote(q *pricing.Quote, calculatorURL string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "💰 %s\n\n", q.ServiceName)
	fmt.Fprintf(&sb, "Your price: %s\n", formatMoney(q.FinalPrice))
	sb.WriteString("──────────────────\n")
	fmt.Fprintf(&sb, "Materials: %s\n", formatMoney(q.MaterialCost))
	fmt.Fprintf(&sb, "Labor: %s (%.1f h)\n", formatMoney(q.LaborCost), q.LaborHours)
	if q.CorrectionDetails != nil {
		fmt.Fprintf(&sb, "Correction stages: %d\n", q.Stages)
		fmt.Fprintf(&sb, "Correction: %.1f h, prep: %.1f h\n", q.CorrectionHours, q.PrepHours)
	}
	fmt.Fprintf(&sb, "Retail: %s\n", formatMoney(q.RetailPrice))
	fmt.Fprintf(&sb, "Dealer: %s\n", formatMoney(q.DealerPrice))

	if calculatorURL != "" {
		fmt.Fprintf(&sb, "\nFull calculator: %s", calculatorURL)
	}

	return sb.String()
}

func FormatHistory(quotes []storage.QuoteRecord) string {
	if len(quotes) == 0 {
		return "You have no quotes yet. Send /quote to get one."
	}

	var sb strings.Builder
	sb.WriteString("🧾 Your recent quotes:\n")
	for _, q := range quotes {
		label := serviceLabels[pricing.ServiceID(q.Service)]
		if label == "" {
			label = q.Service
		}
		fmt.Fprintf(&sb, "\n%s · %s · %s (%s)",
			q.CreatedAt.Format("02.01.2006"),
			label,
			formatMoney(q.FinalPrice),
			q.CustomerType)
	}
	return sb.String()
}
