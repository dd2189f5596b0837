package redis

// DialogState is the per-chat progress through the quote dialog.
type DialogState struct {
	Step        string            `json:"step"`
	Service     string            `json:"service,omitempty"`
	FieldIndex  int               `json:"field_index,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
	QuoteID     string            `json:"quote_id,omitempty"`
	PhoneNumber string            `json:"phone_number,omitempty"`
}
