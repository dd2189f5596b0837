package pricing

// COST CALCULATORS

// PPFCost prices film by the roll and installation at the shop labor rate.
func PPFCost(r PPFRequest) CostBreakdown {
	row := lookupPPF(r.ServiceType)

	material := row.Rolls * ppfFilmCost(r.FilmType)
	labor := row.LaborHours * ppfLaborRate

	return newBreakdown(material, labor, row.LaborHours)
}

// TintCost prices film by square foot. Removal of old film adds half the
// install time.
func TintCost(r TintRequest) CostBreakdown {
	row := lookupTint(r.VehicleType)

	material := row.Sqft * tintFilmCostPerSqft
	hours := row.LaborHours
	labor := row.LaborHours * tintLaborRate

	if r.Removal {
		removalHours := row.LaborHours * tintRemovalFactor
		labor += removalHours * tintLaborRate
		hours += removalHours
	}

	return newBreakdown(material, labor, hours)
}

func CeramicCost(r CeramicRequest) CostBreakdown {
	row := lookupCoating(r.CoatingType)
	multiplier := vehicleMultiplier(r.VehicleType)

	material := (row.BottleCost / row.UnitsPerBottle) * multiplier
	labor := row.LaborHours * ceramicLaborRate * multiplier

	return newBreakdown(material, labor, row.LaborHours*multiplier)
}

// PaintCorrectionCost bills correction and prep time separately. Both scale
// with vehicle size; consumables do not.
func PaintCorrectionCost(r PaintCorrectionRequest) CostBreakdown {
	row := lookupCorrection(r.PaintCondition)
	multiplier := vehicleMultiplier(r.VehicleType)

	correctionHours := row.Hours * multiplier
	prepHours := prepHoursBase * multiplier

	labor := correctionHours*correctionLaborRate + prepHours*prepLaborRate
	material := row.CompoundUnits*compoundUnitCost + row.PolishUnits*polishUnitCost

	cost := newBreakdown(material, labor, correctionHours+prepHours)
	cost.Correction = &CorrectionDetails{
		Stages:          row.Stages,
		CorrectionHours: correctionHours,
		PrepHours:       prepHours,
	}
	return cost
}
