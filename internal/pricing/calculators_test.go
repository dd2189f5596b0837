package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPPFCost(t *testing.T) {
	tests := []struct {
		name     string
		req      PPFRequest
		material float64
		labor    float64
		hours    float64
	}{
		{"full front standard", PPFRequest{ServiceType: PPFFullFront, FilmType: PPFStandard}, 800, 680, 8},
		{"full front stealth", PPFRequest{ServiceType: PPFFullFront, FilmType: PPFStealth}, 1100, 680, 8},
		{"track pack", PPFRequest{ServiceType: PPFTrackPack}, 640, 510, 6},
		{"full vehicle stealth", PPFRequest{ServiceType: PPFFullVehicle, FilmType: PPFStealth}, 3300, 1700, 20},
		{"replacement parts", PPFRequest{ServiceType: PPFReplacementParts}, 240, 170, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PPFCost(tt.req)
			assert.InDelta(t, tt.material, got.MaterialCost, 1e-9)
			assert.InDelta(t, tt.labor, got.LaborCost, 1e-9)
			assert.Equal(t, tt.hours, got.LaborHours)
			assert.Equal(t, got.MaterialCost+got.LaborCost, got.TotalCost)
		})
	}
}

func TestPPFCost_VehicleTypeIsIgnored(t *testing.T) {
	car := PPFCost(PPFRequest{VehicleType: VehicleCar, ServiceType: PPFTrackPack})
	van := PPFCost(PPFRequest{VehicleType: VehicleVan, ServiceType: PPFTrackPack})
	assert.Equal(t, car, van)
}

func TestTintCost(t *testing.T) {
	tests := []struct {
		name     string
		req      TintRequest
		material float64
		labor    float64
		hours    float64
	}{
		{"car", TintRequest{VehicleType: VehicleCar}, 280, 300, 4},
		{"coupe", TintRequest{VehicleType: VehicleCoupe}, 240, 262.5, 3.5},
		{"truck with removal", TintRequest{VehicleType: VehicleTruck, Removal: true}, 360, 562.5, 7.5},
		{"car with removal", TintRequest{VehicleType: VehicleCar, Removal: true}, 280, 450, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TintCost(tt.req)
			assert.Equal(t, tt.material, got.MaterialCost)
			assert.Equal(t, tt.labor, got.LaborCost)
			assert.Equal(t, tt.hours, got.LaborHours)
			assert.Equal(t, got.MaterialCost+got.LaborCost, got.TotalCost)
		})
	}
}

func TestCeramicCost_VehicleMultiplier(t *testing.T) {
	got := CeramicCost(CeramicRequest{VehicleType: VehicleVan, CoatingType: Coating7Year})

	assert.InDelta(t, 15.0, got.MaterialCost, 1e-9)
	assert.InDelta(t, 1275.0, got.LaborCost, 1e-9)
	assert.InDelta(t, 15.0, got.LaborHours, 1e-9)
	assert.Nil(t, got.Correction)
}

func TestPaintCorrectionCost_Excellent(t *testing.T) {
	got := PaintCorrectionCost(PaintCorrectionRequest{VehicleType: VehicleCoupe, PaintCondition: PaintExcellent})

	assert.Equal(t, 0.0, got.MaterialCost)
	assert.InDelta(t, 36.0, got.LaborCost, 1e-9)
	assert.InDelta(t, 0.8, got.LaborHours, 1e-9)
	if assert.NotNil(t, got.Correction) {
		assert.Equal(t, 0, got.Correction.Stages)
		assert.Equal(t, 0.0, got.Correction.CorrectionHours)
	}
}

func TestCalculators_Deterministic(t *testing.T) {
	req := PaintCorrectionRequest{VehicleType: VehicleSUV, PaintCondition: PaintFair}
	assert.Equal(t, PaintCorrectionCost(req), PaintCorrectionCost(req))
}
