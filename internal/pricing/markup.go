package pricing

// Markup chain shared by every service. Change margins here and nowhere else.
const (
	costShareOfBaseline = 0.7  // cost is 70% of baseline, a 30% margin floor
	retailMarkup        = 1.3  // 30% over baseline
	dealerDiscount      = 0.85 // 15% off retail
)

type CustomerType string

const (
	CustomerRetail CustomerType = "retail"
	CustomerDealer CustomerType = "dealer"
)

var CustomerTypes = []CustomerType{CustomerRetail, CustomerDealer}

// Prices holds the customer-facing stages derived from a total cost.
type Prices struct {
	Baseline float64
	Retail   float64
	Dealer   float64
}

// ApplyMarkup converts a total cost into baseline, retail and dealer prices.
func ApplyMarkup(totalCost float64) Prices {
	baseline := totalCost / costShareOfBaseline
	retail := baseline * retailMarkup
	return Prices{
		Baseline: baseline,
		Retail:   retail,
		Dealer:   retail * dealerDiscount,
	}
}

// Final returns the dealer price for dealers and the retail price for everyone else.
func (p Prices) Final(customer CustomerType) float64 {
	if customer == CustomerDealer {
		return p.Dealer
	}
	return p.Retail
}
