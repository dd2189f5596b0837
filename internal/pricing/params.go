package pricing

import (
	"strconv"
	"strings"
)

// Params is the loosely typed input collected by chat and HTTP callers.
type Params map[string]string

const (
	ParamVehicleType    = "vehicleType"
	ParamServiceType    = "serviceType"
	ParamPPFType        = "ppfType"
	ParamFilmType       = "filmType"
	ParamWindows        = "windows"
	ParamTintRemoval    = "tintRemoval"
	ParamCoatingType    = "coatingType"
	ParamPaintCondition = "paintCondition"
	ParamCustomerType   = "customerType"
)

func (p Params) get(key string) string {
	return strings.TrimSpace(p[key])
}

// flag is true for the usual yes-words; anything else is false.
func (p Params) flag(key string) bool {
	v := strings.ToLower(p.get(key))
	switch v {
	case "yes", "y", "on":
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (p Params) customer() CustomerType {
	return CustomerType(p.get(ParamCustomerType))
}

func decodePPF(p Params) Request {
	return PPFRequest{
		VehicleType:  VehicleType(p.get(ParamVehicleType)),
		ServiceType:  PPFServiceType(p.get(ParamServiceType)),
		FilmType:     PPFFilmType(p.get(ParamPPFType)),
		CustomerType: p.customer(),
	}
}

func decodeTint(p Params) Request {
	return TintRequest{
		VehicleType:  VehicleType(p.get(ParamVehicleType)),
		Removal:      p.flag(ParamTintRemoval),
		Windows:      p.get(ParamWindows),
		FilmType:     p.get(ParamFilmType),
		CustomerType: p.customer(),
	}
}

func decodeCeramic(p Params) Request {
	return CeramicRequest{
		VehicleType:  VehicleType(p.get(ParamVehicleType)),
		CoatingType:  CoatingType(p.get(ParamCoatingType)),
		CustomerType: p.customer(),
	}
}

func decodePaintCorrection(p Params) Request {
	return PaintCorrectionRequest{
		VehicleType:    VehicleType(p.get(ParamVehicleType)),
		PaintCondition: PaintCondition(p.get(ParamPaintCondition)),
		CustomerType:   p.customer(),
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
