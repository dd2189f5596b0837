package storage

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

const quotesSheet = "Quotes"

var quoteHeaders = []string{
	"ID", "Chat ID", "Service", "Customer Type", "Parameters",
	"Material Cost", "Labor Cost", "Total Cost", "Retail Price",
	"Dealer Price", "Final Price", "Labor Hours", "Stages",
	"Contact", "Status", "Created At",
}

// WriteQuotesWorkbook renders quotes as an xlsx workbook, one row per quote.
func WriteQuotesWorkbook(w io.Writer, quotes []QuoteRecord) error {
	const operation = "storage.WriteQuotesWorkbook"

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(quotesSheet); err != nil {
		return fmt.Errorf("%s: failed to create sheet: %w", operation, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("%s: failed to drop default sheet: %w", operation, err)
	}
	index, err := f.GetSheetIndex(quotesSheet)
	if err != nil {
		return fmt.Errorf("%s: failed to find sheet: %w", operation, err)
	}
	f.SetActiveSheet(index)

	header := make([]interface{}, len(quoteHeaders))
	for i, h := range quoteHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(quotesSheet, "A1", &header); err != nil {
		return fmt.Errorf("%s: failed to write header: %w", operation, err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("%s: failed to create style: %w", operation, err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(quoteHeaders), 1)
	if err := f.SetCellStyle(quotesSheet, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("%s: failed to style header: %w", operation, err)
	}

	for row, q := range quotes {
		var stages interface{} = ""
		if q.Stages.Valid {
			stages = q.Stages.Int32
		}

		data := []interface{}{
			q.ID.String(),
			q.ChatID,
			q.Service,
			q.CustomerType,
			formatParams(q.Params),
			q.MaterialCost,
			q.LaborCost,
			q.TotalCost,
			q.RetailPrice,
			q.DealerPrice,
			q.FinalPrice,
			q.LaborHours,
			stages,
			q.Contact,
			q.Status,
			q.CreatedAt.Format("2006-01-02 15:04"),
		}

		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		if err := f.SetSheetRow(quotesSheet, cell, &data); err != nil {
			return fmt.Errorf("%s: failed to write row %d: %w", operation, row+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: failed to write workbook: %w", operation, err)
	}
	return nil
}

func formatParams(p Params) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+p[k])
	}
	return strings.Join(parts, ", ")
}
