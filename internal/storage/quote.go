package storage

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"autoquote-bot/internal/pricing"

	"github.com/google/uuid"
)

const (
	StatusQuoted    = "quoted"
	StatusContacted = "contacted"
)

// QuoteRecord is one calculated quote as stored in the quotes table.
type QuoteRecord struct {
	ID           uuid.UUID     `db:"id"`
	ChatID       int64         `db:"chat_id"`
	Service      string        `db:"service"`
	CustomerType string        `db:"customer_type"`
	Params       Params        `db:"params"`
	MaterialCost float64       `db:"material_cost"`
	LaborCost    float64       `db:"labor_cost"`
	TotalCost    float64       `db:"total_cost"`
	RetailPrice  float64       `db:"retail_price"`
	DealerPrice  float64       `db:"dealer_price"`
	FinalPrice   float64       `db:"final_price"`
	LaborHours   float64       `db:"labor_hours"`
	Stages       sql.NullInt32 `db:"stages"`
	Contact      string        `db:"contact"`
	Status       string        `db:"status"`
	CreatedAt    time.Time     `db:"created_at"`
}

func NewQuoteRecord(chatID int64, params pricing.Params, q *pricing.Quote, now time.Time) QuoteRecord {
	rec := QuoteRecord{
		ID:           uuid.New(),
		ChatID:       chatID,
		Service:      string(q.Service),
		CustomerType: string(q.CustomerType),
		Params:       Params(params),
		MaterialCost: q.MaterialCost,
		LaborCost:    q.LaborCost,
		TotalCost:    q.TotalCost,
		RetailPrice:  q.RetailPrice,
		DealerPrice:  q.DealerPrice,
		FinalPrice:   q.FinalPrice,
		LaborHours:   q.LaborHours,
		Status:       StatusQuoted,
		CreatedAt:    now.UTC(),
	}
	if q.CorrectionDetails != nil {
		rec.Stages = sql.NullInt32{Int32: int32(q.Stages), Valid: true}
	}
	if rec.Params == nil {
		rec.Params = Params{}
	}
	return rec
}

// Params is stored as jsonb.
type Params map[string]string

func (p Params) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

func (p *Params) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*p = Params{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("storage.Params: unsupported type %T", src)
	}

	fresh := Params{}
	if err := json.Unmarshal(data, &fresh); err != nil {
		return fmt.Errorf("storage.Params: %w", err)
	}
	*p = fresh
	return nil
}
