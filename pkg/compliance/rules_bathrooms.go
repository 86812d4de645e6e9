package compliance

import (
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func bathroomRules() []*Rule {
	return []*Rule{
		{
			ID: "R307.1-toilet-side-clearance", CodeSection: "R307.1", Category: CategoryBathrooms,
			Description: "Proxy check against room width (no per-fixture layout is modeled): a " +
				"bathroom's narrow dimension must accommodate a 15 in toilet side clearance plus a " +
				"30 in fixture footprint.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkToiletSideClearance,
		},
		{
			ID: "R307.1-toilet-front-clearance", CodeSection: "R307.1", Category: CategoryBathrooms,
			Description: "Proxy check: a bathroom's long dimension must accommodate a 21 in toilet " +
				"front clearance plus a 30 in fixture footprint.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkToiletFrontClearance,
		},
		{
			ID: "R307.2-shower-min-dimension", CodeSection: "R307.2", Category: CategoryBathrooms,
			Description: "Full bathrooms must have a dimension of at least 30 in to accommodate a shower stall.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkShowerMinDimension,
		},
		{
			ID: "R307.3-powder-room-min-width", CodeSection: "R307.3", Category: CategoryBathrooms,
			Description: "A powder room must be at least 4 ft in its narrow dimension.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkPowderRoomMinWidth,
		},
		{
			ID: "R307.4-bathroom-door-swing", CodeSection: "R307.4", Category: CategoryBathrooms,
			Description: "Bathroom door swing must clear fixture zones.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapBathroomDoorSwing,
		},
		{
			ID: "R307.5-bathroom-ventilation", CodeSection: "R307.5", Category: CategoryBathrooms,
			Description: "Bathrooms without an operable window require mechanical ventilation.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkBathroomVentilation,
		},
	}
}

func bathroomTypes() []roomtypes.Type {
	return []roomtypes.Type{roomtypes.Bathroom, roomtypes.PrimaryBath}
}

func checkToiletSideClearance(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R307.1-toilet-side-clearance", "R307.1", CategoryBathrooms
	const requiredFt = (30.0 + 15.0) / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, append(bathroomTypes(), roomtypes.PowderRoom)...) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is too narrow for toilet side clearance",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("widen %s to at least %.0f in", r.Label, requiredFt*12),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkToiletFrontClearance(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R307.1-toilet-front-clearance", "R307.1", CategoryBathrooms
	const requiredFt = (30.0 + 21.0) / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, append(bathroomTypes(), roomtypes.PowderRoom)...) {
		if d := maxDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is too short for toilet front clearance",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("lengthen %s to at least %.0f in", r.Label, requiredFt*12),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkShowerMinDimension(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R307.2-shower-min-dimension", "R307.2", CategoryBathrooms
	const requiredFt = 30.0 / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, bathroomTypes()...) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " cannot fit a 30 in shower stall",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("widen %s to at least 30 in", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkPowderRoomMinWidth(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R307.3-powder-room-min-width", "R307.3", CategoryBathrooms
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.PowderRoom) {
		if d := minDim(r); d < 4 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is narrower than 4 ft",
				CurrentValue:  d, RequiredValue: 4, Unit: "ft",
				Remediation: remediate("widen %s to at least 4 ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func gapBathroomDoorSwing(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("R307.4-bathroom-door-swing", "R307.4", CategoryBathrooms,
		"door swing arcs and fixture zones are not part of the geometry model")
}

func checkBathroomVentilation(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R307.5-bathroom-ventilation", "R307.5", CategoryBathrooms
	var violations []Violation
	for _, r := range roomsOfType(p, append(bathroomTypes(), roomtypes.PowderRoom)...) {
		if windowCountFor(p, r.ID) == 0 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityWarning, RoomID: r.ID,
				Message:       r.Label + " has no operable window; mechanical ventilation assumed",
				Remediation: remediate("confirm a mechanical exhaust fan is specified for %s", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return RuleResult{RuleID: id, CodeSection: section, Category: cat, Passed: true, Violations: violations}
	}
	return pass(id, section, cat)
}
