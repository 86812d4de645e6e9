package compliance

import (
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func energyRules() []*Rule {
	return []*Rule{
		{
			ID: "IECC-window-wall-ratio", CodeSection: "IECC-R402.3", Category: CategoryEnergy,
			Description: "Total window area must not exceed 25% of a room's exterior wall area.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkWindowWallRatio,
		},
		{
			ID: "IECC-envelope-insulation", CodeSection: "IECC-R402.1", Category: CategoryEnergy,
			Description: "Exterior wall, ceiling, and foundation assemblies must meet the climate " +
				"zone's prescriptive R-value table.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapEnvelopeInsulation,
		},
		{
			ID: "IECC-air-sealing", CodeSection: "IECC-R402.4", Category: CategoryEnergy,
			Description: "Building thermal envelope must be sealed to the tested air-leakage limit.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapAirSealing,
		},
		{
			ID: "IECC-fenestration-u-factor", CodeSection: "IECC-R402.1.2", Category: CategoryEnergy,
			Description: "Window and door U-factor must meet the climate zone's prescriptive maximum.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapFenestrationUFactor,
		},
		{
			ID: "IECC-duct-insulation", CodeSection: "IECC-R403.3", Category: CategoryEnergy,
			Description: "Ducts in unconditioned spaces must be insulated to the prescriptive minimum.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapDuctInsulation,
		},
		{
			ID: "IECC-lighting-efficacy", CodeSection: "IECC-R404.1", Category: CategoryEnergy,
			Description: "At least 90% of permanently installed lighting fixtures must be high-efficacy.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapLightingEfficacy,
		},
		{
			ID: "IECC-garage-thermal-separation", CodeSection: "IECC-R402.2.13", Category: CategoryEnergy,
			Description: "Walls shared between a garage and a conditioned room require a thermal " +
				"separation, independent of the dwelling's envelope assembly.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkGarageThermalSeparation,
		},
	}
}

func checkWindowWallRatio(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "IECC-window-wall-ratio", "IECC-R402.3", CategoryEnergy
	var violations []Violation
	for _, r := range p.Rooms {
		wallArea := exteriorWallLengthFt(r) * 9 // assume a standard 9 ft wall height
		if wallArea <= 0 {
			continue
		}
		ratio := windowAreaFt(p, r.ID) / wallArea
		if ratio > 0.25 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " window area exceeds 25% of its exterior wall area",
				CurrentValue:  ratio * 100, RequiredValue: 25, Unit: "%",
				Remediation: remediate("reduce window area or add exterior wall in %s", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func gapEnvelopeInsulation(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("IECC-envelope-insulation", "IECC-R402.1", CategoryEnergy,
		"assembly R-values are not part of the wall-analysis model")
}

func gapAirSealing(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("IECC-air-sealing", "IECC-R402.4", CategoryEnergy,
		"tested air-leakage rate is not part of this pipeline's outputs")
}

func gapFenestrationUFactor(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("IECC-fenestration-u-factor", "IECC-R402.1.2", CategoryEnergy,
		"window U-factor is not part of the window placement model")
}

func gapDuctInsulation(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("IECC-duct-insulation", "IECC-R403.3", CategoryEnergy,
		"mechanical duct routing is outside this pipeline's scope")
}

func gapLightingEfficacy(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("IECC-lighting-efficacy", "IECC-R404.1", CategoryEnergy,
		"lighting fixture schedules are outside this pipeline's scope")
}

func checkGarageThermalSeparation(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "IECC-garage-thermal-separation", "IECC-R402.2.13", CategoryEnergy
	garages := roomsOfType(p, roomtypes.Garage)
	if len(garages) == 0 {
		return pass(id, section, cat)
	}
	garageIDs := make(map[string]bool, len(garages))
	for _, g := range garages {
		garageIDs[g.ID] = true
	}
	adjoining := 0
	for _, sw := range wa.SharedWalls {
		if garageIDs[sw.RoomAID] != garageIDs[sw.RoomBID] {
			adjoining++
		}
	}
	if adjoining == 0 {
		return pass(id, section, cat)
	}
	return infoResult(id, section, cat,
		"confirm a fire- and thermal-rated assembly on every garage-to-dwelling shared wall")
}
