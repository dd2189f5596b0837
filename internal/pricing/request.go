package pricing

type ServiceID string

const (
	ServicePPF             ServiceID = "ppf"
	ServiceTint            ServiceID = "tint"
	ServiceCeramic         ServiceID = "ceramic"
	ServicePaintCorrection ServiceID = "paintCorrection"
)

// Request is implemented by the typed request of each service.
type Request interface {
	Service() ServiceID
	Customer() CustomerType
	Cost() CostBreakdown
}

// CostBreakdown is the raw cost of a job before markup.
// TotalCost is always MaterialCost + LaborCost.
type CostBreakdown struct {
	MaterialCost float64
	LaborCost    float64
	TotalCost    float64
	LaborHours   float64

	// Set by paint correction only.
	Correction *CorrectionDetails
}

type CorrectionDetails struct {
	Stages          int     `json:"stages"`
	CorrectionHours float64 `json:"correction_hours"`
	PrepHours       float64 `json:"prep_hours"`
}

func newBreakdown(material, labor, hours float64) CostBreakdown {
	return CostBreakdown{
		MaterialCost: material,
		LaborCost:    labor,
		TotalCost:    material + labor,
		LaborHours:   hours,
	}
}

type PPFRequest struct {
	VehicleType  VehicleType // recorded only, film usage does not depend on it
	ServiceType  PPFServiceType
	FilmType     PPFFilmType
	CustomerType CustomerType
}

func (r PPFRequest) Service() ServiceID     { return ServicePPF }
func (r PPFRequest) Customer() CustomerType { return r.CustomerType }
func (r PPFRequest) Cost() CostBreakdown    { return PPFCost(r) }

type TintRequest struct {
	VehicleType  VehicleType
	Removal      bool
	Windows      string // recorded only
	FilmType     string // recorded only
	CustomerType CustomerType
}

func (r TintRequest) Service() ServiceID     { return ServiceTint }
func (r TintRequest) Customer() CustomerType { return r.CustomerType }
func (r TintRequest) Cost() CostBreakdown    { return TintCost(r) }

type CeramicRequest struct {
	VehicleType  VehicleType
	CoatingType  CoatingType
	CustomerType CustomerType
}

func (r CeramicRequest) Service() ServiceID     { return ServiceCeramic }
func (r CeramicRequest) Customer() CustomerType { return r.CustomerType }
func (r CeramicRequest) Cost() CostBreakdown    { return CeramicCost(r) }

type PaintCorrectionRequest struct {
	VehicleType    VehicleType
	PaintCondition PaintCondition
	CustomerType   CustomerType
}

func (r PaintCorrectionRequest) Service() ServiceID     { return ServicePaintCorrection }
func (r PaintCorrectionRequest) Customer() CustomerType { return r.CustomerType }
func (r PaintCorrectionRequest) Cost() CostBreakdown    { return PaintCorrectionCost(r) }
