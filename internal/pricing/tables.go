package pricing

// SERVICE TABLES

type VehicleType string

const (
	VehicleCar   VehicleType = "car"
	VehicleCoupe VehicleType = "coupe"
	VehicleTruck VehicleType = "truck"
	VehicleSUV   VehicleType = "suv"
	VehicleVan   VehicleType = "van"
)

// VehicleTypes lists vehicle selectors in menu order.
var VehicleTypes = []VehicleType{VehicleCar, VehicleCoupe, VehicleTruck, VehicleSUV, VehicleVan}

type PPFServiceType string

const (
	PPFFullFront        PPFServiceType = "full-front"
	PPFTrackPack        PPFServiceType = "track-pack"
	PPFFullVehicle      PPFServiceType = "full-vehicle"
	PPFReplacementParts PPFServiceType = "replacement-parts"
)

var PPFServiceTypes = []PPFServiceType{PPFFullFront, PPFTrackPack, PPFFullVehicle, PPFReplacementParts}

type PPFFilmType string

const (
	PPFStandard PPFFilmType = "standard"
	PPFStealth  PPFFilmType = "stealth"
)

var PPFFilmTypes = []PPFFilmType{PPFStandard, PPFStealth}

type CoatingType string

const (
	Coating3Year CoatingType = "3-year"
	Coating5Year CoatingType = "5-year"
	Coating7Year CoatingType = "7-year"
)

var CoatingTypes = []CoatingType{Coating3Year, Coating5Year, Coating7Year}

type PaintCondition string

const (
	PaintExcellent PaintCondition = "excellent"
	PaintGood      PaintCondition = "good"
	PaintFair      PaintCondition = "fair"
	PaintPoor      PaintCondition = "poor"
	PaintSevere    PaintCondition = "severe"
)

var PaintConditions = []PaintCondition{PaintExcellent, PaintGood, PaintFair, PaintPoor, PaintSevere}

const (
	ppfLaborRate = 85.0

	tintFilmCostPerSqft = 8.0
	tintLaborRate       = 75.0
	tintRemovalFactor   = 0.5

	ceramicLaborRate = 85.0

	correctionLaborRate = 85.0
	prepLaborRate       = 45.0
	prepHoursBase       = 1.0
	compoundUnitCost    = 2.5
	polishUnitCost      = 3.0

	ppfStandardFilmCost = 800.0
	ppfStealthFilmCost  = 1100.0

	defaultVehicleMultiplier = 1.0
)

type ppfRow struct {
	Rolls            float64
	LaborHours       float64
	BaseMaterialCost float64
}

type tintRow struct {
	Sqft       float64
	LaborHours float64
}

type coatingRow struct {
	BottleCost     float64
	UnitsPerBottle float64
	LaborHours     float64
}

type correctionRow struct {
	Stages        int
	Hours         float64
	CompoundUnits float64
	PolishUnits   float64
}

var ppfTable = map[PPFServiceType]ppfRow{
	PPFFullFront:        {Rolls: 1, LaborHours: 8, BaseMaterialCost: 800},
	PPFTrackPack:        {Rolls: 0.8, LaborHours: 6, BaseMaterialCost: 640},
	PPFFullVehicle:      {Rolls: 3, LaborHours: 20, BaseMaterialCost: 2400},
	PPFReplacementParts: {Rolls: 0.3, LaborHours: 2, BaseMaterialCost: 240},
}

var tintTable = map[VehicleType]tintRow{
	VehicleCar:   {Sqft: 35, LaborHours: 4},
	VehicleCoupe: {Sqft: 30, LaborHours: 3.5},
	VehicleTruck: {Sqft: 45, LaborHours: 5},
	VehicleSUV:   {Sqft: 40, LaborHours: 4.5},
	VehicleVan:   {Sqft: 50, LaborHours: 6},
}

var coatingTable = map[CoatingType]coatingRow{
	Coating3Year: {BottleCost: 150, UnitsPerBottle: 15, LaborHours: 6},
	Coating5Year: {BottleCost: 200, UnitsPerBottle: 20, LaborHours: 8},
	Coating7Year: {BottleCost: 250, UnitsPerBottle: 25, LaborHours: 10},
}

var correctionTable = map[PaintCondition]correctionRow{
	PaintExcellent: {Stages: 0, Hours: 0, CompoundUnits: 0, PolishUnits: 0},
	PaintGood:      {Stages: 1, Hours: 2, CompoundUnits: 2, PolishUnits: 1},
	PaintFair:      {Stages: 2, Hours: 4, CompoundUnits: 4, PolishUnits: 2},
	PaintPoor:      {Stages: 3, Hours: 6, CompoundUnits: 6, PolishUnits: 3},
	PaintSevere:    {Stages: 4, Hours: 8, CompoundUnits: 8, PolishUnits: 4},
}

var vehicleMultipliers = map[VehicleType]float64{
	VehicleCar:   1.0,
	VehicleCoupe: 0.8,
	VehicleTruck: 1.3,
	VehicleSUV:   1.2,
	VehicleVan:   1.5,
}

// Lookups never fail: an unknown selector resolves to the table's default row.

func lookupPPF(t PPFServiceType) ppfRow {
	if row, ok := ppfTable[t]; ok {
		return row
	}
	return ppfTable[PPFFullFront]
}

func ppfFilmCost(f PPFFilmType) float64 {
	if f == PPFStealth {
		return ppfStealthFilmCost
	}
	return ppfStandardFilmCost
}

func lookupTint(v VehicleType) tintRow {
	if row, ok := tintTable[v]; ok {
		return row
	}
	return tintTable[VehicleCar]
}

func lookupCoating(c CoatingType) coatingRow {
	if row, ok := coatingTable[c]; ok {
		return row
	}
	return coatingTable[Coating3Year]
}

func lookupCorrection(c PaintCondition) correctionRow {
	if row, ok := correctionTable[c]; ok {
		return row
	}
	return correctionTable[PaintGood]
}

func vehicleMultiplier(v VehicleType) float64 {
	if m, ok := vehicleMultipliers[v]; ok {
		return m
	}
	return defaultVehicleMultiplier
}
