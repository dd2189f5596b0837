package pricing

import (
	"context"

	"go.uber.org/zap"
)

// Field describes one categorical input a calculator reads.
type Field struct {
	Key     string   `json:"key"`
	Options []string `json:"options"`
}

// Calculator is a registered service: its display data plus the decoder that
// turns caller params into the service's typed request.
type Calculator struct {
	ID     ServiceID `json:"id"`
	Name   string    `json:"name"`
	Path   string    `json:"path"`
	Fields []Field   `json:"fields"`

	decode func(Params) Request
}

// Quote is the full result of one calculation.
type Quote struct {
	Service      ServiceID    `json:"service"`
	ServiceName  string       `json:"service_name"`
	CustomerType CustomerType `json:"customer_type"`
	MaterialCost float64      `json:"material_cost"`
	LaborCost    float64      `json:"labor_cost"`
	TotalCost    float64      `json:"total_cost"`
	RetailPrice  float64      `json:"retail_price"`
	DealerPrice  float64      `json:"dealer_price"`
	FinalPrice   float64      `json:"final_price"`
	LaborHours   float64      `json:"labor_hours"`

	*CorrectionDetails
}

// Engine dispatches service identifiers to calculators. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	calculators map[ServiceID]Calculator
	order       []ServiceID
	logger      *zap.Logger
}

func registry() []Calculator {
	vehicles := Field{Key: ParamVehicleType, Options: stringsOf(VehicleTypes)}
	customers := Field{Key: ParamCustomerType, Options: stringsOf(CustomerTypes)}

	return []Calculator{
		{
			ID:   ServicePPF,
			Name: "PPF Calculator",
			Path: "/ppf",
			Fields: []Field{
				{Key: ParamServiceType, Options: stringsOf(PPFServiceTypes)},
				{Key: ParamPPFType, Options: stringsOf(PPFFilmTypes)},
				customers,
			},
			decode: decodePPF,
		},
		{
			ID:   ServiceTint,
			Name: "Tint Calculator",
			Path: "/tint",
			Fields: []Field{
				vehicles,
				{Key: ParamTintRemoval, Options: []string{"false", "true"}},
				customers,
			},
			decode: decodeTint,
		},
		{
			ID:   ServiceCeramic,
			Name: "Ceramic Coating Calculator",
			Path: "/ceramic",
			Fields: []Field{
				vehicles,
				{Key: ParamCoatingType, Options: stringsOf(CoatingTypes)},
				customers,
			},
			decode: decodeCeramic,
		},
		{
			ID:   ServicePaintCorrection,
			Name: "Paint Correction Calculator",
			Path: "/paint-correction",
			Fields: []Field{
				vehicles,
				{Key: ParamPaintCondition, Options: stringsOf(PaintConditions)},
				customers,
			},
			decode: decodePaintCorrection,
		},
	}
}

func New(logger *zap.Logger) *Engine {
	e := &Engine{
		calculators: make(map[ServiceID]Calculator),
		logger:      logger,
	}
	for _, c := range registry() {
		e.calculators[c.ID] = c
		e.order = append(e.order, c.ID)
	}
	return e
}

// Services returns the registered calculators in menu order.
func (e *Engine) Services() []Calculator {
	out := make([]Calculator, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.calculators[id])
	}
	return out
}

// Lookup resolves a service identifier. Unlike category selectors, service
// identifiers are strict.
func (e *Engine) Lookup(serviceID string) (Calculator, error) {
	c, ok := e.calculators[ServiceID(serviceID)]
	if !ok {
		return Calculator{}, &UnknownServiceError{Service: serviceID}
	}
	return c, nil
}

// Calculate prices serviceID with the given params.
func (e *Engine) Calculate(ctx context.Context, serviceID string, params Params) (*Quote, error) {
	c, err := e.Lookup(serviceID)
	if err != nil {
		e.logger.Warn("Quote requested for unknown service",
			zap.String("service", serviceID))
		return nil, err
	}
	return e.Quote(ctx, c.decode(params))
}

// Quote prices an already typed request.
func (e *Engine) Quote(ctx context.Context, req Request) (*Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := e.Lookup(string(req.Service()))
	if err != nil {
		return nil, err
	}

	cost := req.Cost()
	prices := ApplyMarkup(cost.TotalCost)
	customer := req.Customer()
	if customer != CustomerDealer {
		customer = CustomerRetail
	}

	quote := &Quote{
		Service:           c.ID,
		ServiceName:       c.Name,
		CustomerType:      customer,
		MaterialCost:      cost.MaterialCost,
		LaborCost:         cost.LaborCost,
		TotalCost:         cost.TotalCost,
		RetailPrice:       prices.Retail,
		DealerPrice:       prices.Dealer,
		FinalPrice:        prices.Final(customer),
		LaborHours:        cost.LaborHours,
		CorrectionDetails: cost.Correction,
	}

	e.logger.Debug("Quote calculated",
		zap.String("service", string(c.ID)),
		zap.String("customer_type", string(customer)),
		zap.Float64("total_cost", quote.TotalCost),
		zap.Float64("final_price", quote.FinalPrice))

	return quote, nil
}
