package compliance

import (
	"strconv"

	"github.com/archspan/floorplan/pkg/plan"
)

// coloradoJurisdiction amends the base R304.3 ceiling-height no-op with a
// real check driven by the context parameter bag, and contributes four
// wholly new informational rules (spec.md §4.10 "Colorado override").
func coloradoJurisdiction() Jurisdiction {
	return Jurisdiction{
		ID: JurisdictionColorado,
		Amendments: []Amendment{
			{
				RuleID:  "R304.3-ceiling-height-base",
				Check:   checkColoradoCeilingHeight,
				Version: "2021.1-CO",
			},
		},
		AdditionalRules: []*Rule{
			{
				ID: "CO-WUI-ignition-resistant", CodeSection: "CO-WUI-1", Category: CategoryStructural,
				Description: "Structures in a designated Wildland-Urban Interface zone require " +
					"ignition-resistant exterior materials and vent detailing.",
				Enabled: true, Jurisdictions: []string{JurisdictionColorado}, Version: "1.0",
				Check: checkColoradoWUI,
			},
			{
				ID: "CO-high-altitude-snow", CodeSection: "CO-HA-1", Category: CategoryStructural,
				Description: "High-altitude Colorado jurisdictions (elevation above 7000 ft) carry " +
					"ground snow loads well above the national prescriptive table; informational " +
					"flag to confirm a site-specific snow study.",
				Enabled: true, Jurisdictions: []string{JurisdictionColorado}, Version: "1.0",
				Check: checkColoradoHighAltitude,
			},
			{
				ID: "CO-prop-123-density", CodeSection: "CO-P123", Category: CategoryEnergy,
				Description: "Proposition 123 participating jurisdictions track affordable-housing " +
					"unit density commitments; informational only, not a geometry check.",
				Enabled: true, Jurisdictions: []string{JurisdictionColorado}, Version: "1.0",
				Check: checkColoradoProp123,
			},
			{
				ID: "CO-SB25-002-occupancy", CodeSection: "CO-SB25-002", Category: CategoryAccessibility,
				Description: "Colorado SB 25-002 occupancy-limit preemption; informational note that " +
					"local bedroom-count-based occupancy caps do not apply.",
				Enabled: true, Jurisdictions: []string{JurisdictionColorado}, Version: "1.0",
				Check: checkColoradoSB25002,
			},
		},
	}
}

// checkColoradoCeilingHeight reads an optional "ceilingHeightFt" context
// parameter. Absent that parameter the rule remains a documented no-op,
// matching the base rule's gap behavior.
func checkColoradoCeilingHeight(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.3-ceiling-height-base", "R304.3", CategoryRoomMinimums
	raw, ok := ctx.Params["ceilingHeightFt"]
	if !ok {
		return gapResult(id, section, cat, "ceiling height is not part of the placed-plan geometry model")
	}
	height, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return gapResult(id, section, cat, "ceilingHeightFt context parameter is not a valid number")
	}
	switch {
	case height < 7.5:
		return fail(id, section, cat, Violation{
			RuleID: id, CodeSection: section, Severity: SeverityError,
			Message:       "ceiling height is below Colorado's 7 ft 6 in minimum",
			CurrentValue:  height, RequiredValue: 7.5, Unit: "ft",
			Remediation: remediate("raise ceiling height to at least 7 ft 6 in"),
		})
	case height < 8:
		return RuleResult{
			RuleID: id, CodeSection: section, Category: cat, Passed: true,
			Violations: []Violation{{
				RuleID: id, CodeSection: section, Severity: SeverityWarning,
				Message:       "ceiling height is below Colorado's recommended 8 ft",
				CurrentValue:  height, RequiredValue: 8, Unit: "ft",
				Remediation: remediate("raise ceiling height to 8 ft for habitable comfort"),
			}},
		}
	default:
		return pass(id, section, cat)
	}
}

func checkColoradoWUI(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "CO-WUI-ignition-resistant", "CO-WUI-1", CategoryStructural
	if !ctx.WUIZone {
		return pass(id, section, cat)
	}
	return infoResult(id, section, cat,
		"WUI zone: specify ignition-resistant siding, roofing, and vent screening")
}

func checkColoradoHighAltitude(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "CO-high-altitude-snow", "CO-HA-1", CategoryStructural
	raw, ok := ctx.Params["elevationFt"]
	if !ok {
		return gapResult(id, section, cat, "site elevation is not part of the compliance context")
	}
	elevation, err := strconv.ParseFloat(raw, 64)
	if err != nil || elevation < 7000 {
		return pass(id, section, cat)
	}
	return infoResult(id, section, cat,
		"elevation above 7000 ft: confirm a site-specific snow load study")
}

func checkColoradoProp123(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return infoResult("CO-prop-123-density", "CO-P123", CategoryEnergy,
		"confirm this unit's contribution to the jurisdiction's Proposition 123 density commitment")
}

func checkColoradoSB25002(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return infoResult("CO-SB25-002-occupancy", "CO-SB25-002", CategoryAccessibility,
		"SB 25-002 preempts local bedroom-count-based occupancy limits for this unit")
}
