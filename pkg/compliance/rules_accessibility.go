package compliance

import (
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func accessibilityRules() []*Rule {
	return []*Rule{
		{
			ID: "ADA-door-clear-width", CodeSection: "ADA-4.13.5", Category: CategoryAccessibility,
			Description: "Doors on an accessible route must have at least 32 in of clear width.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: checkDoorClearWidth,
		},
		{
			ID: "ADA-ramp-slope", CodeSection: "ADA-4.8.2", Category: CategoryAccessibility,
			Description: "Accessible ramps must not exceed a 1:12 rise-to-run slope.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: gapRampSlope,
		},
		{
			ID: "ADA-turning-radius", CodeSection: "ADA-4.2.3", Category: CategoryAccessibility,
			Description: "Proxy check: a bathroom should provide a 60 in wheelchair turning diameter.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: checkTurningRadius,
		},
		{
			ID: "ADA-accessible-route-width", CodeSection: "ADA-4.3.3", Category: CategoryAccessibility,
			Description: "The primary accessible route must be at least 36 in wide at all points.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: checkAccessibleRouteWidth,
		},
		{
			ID: "ADA-grab-bar-bathroom", CodeSection: "ADA-4.16", Category: CategoryAccessibility,
			Description: "Accessible bathrooms require grab bars at the water closet and shower.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: gapGrabBar,
		},
		{
			ID: "ADA-accessible-parking", CodeSection: "ADA-4.6", Category: CategoryAccessibility,
			Description: "Accessible parking requires a van-accessible stall with an access aisle.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: gapAccessibleParking,
		},
		{
			ID: "ADA-entry-threshold", CodeSection: "ADA-4.13.8", Category: CategoryAccessibility,
			Description: "Entry door thresholds must not exceed 0.5 in in height.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: gapEntryThreshold,
		},
		{
			ID: "ADA-countertop-height", CodeSection: "ADA-4.32", Category: CategoryAccessibility,
			Description: "Accessible counters must have a work surface no higher than 34 in.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: gapCountertopHeight,
		},
		{
			ID: "ADA-visual-alarm", CodeSection: "ADA-4.28", Category: CategoryAccessibility,
			Description: "Sleeping rooms in accessible units require a visual smoke-alarm appliance.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: gapVisualAlarm,
		},
		{
			ID: "ADA-clear-floor-space", CodeSection: "ADA-4.2.4", Category: CategoryAccessibility,
			Description: "Proxy check: a bedroom should provide a 60 in clear floor space for a " +
				"wheelchair maneuvering T-turn.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: checkClearFloorSpace,
		},
	}
}

func checkDoorClearWidth(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "ADA-door-clear-width", "ADA-4.13.5", CategoryAccessibility
	const requiredFt = 32.0 / 12.0
	var violations []Violation
	for _, d := range p.Doors {
		if d.ClearWidthFt < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError,
				Message:       "door " + d.ID + " is narrower than the accessible clear width",
				CurrentValue:  d.ClearWidthFt * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("widen door %s to at least 32 in clear", d.ID),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func gapRampSlope(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("ADA-ramp-slope", "ADA-4.8.2", CategoryAccessibility,
		"grade change and ramp geometry are not part of the envelope model")
}

func checkTurningRadius(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "ADA-turning-radius", "ADA-4.2.3", CategoryAccessibility
	const requiredFt = 60.0 / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Bathroom, roomtypes.PrimaryBath) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityWarning, RoomID: r.ID,
				Message:       r.Label + " does not provide a 60 in turning diameter",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("enlarge %s to provide a 60 in turning diameter if an accessible unit", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return RuleResult{RuleID: id, CodeSection: section, Category: cat, Passed: true, Violations: violations}
	}
	return pass(id, section, cat)
}

func checkAccessibleRouteWidth(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "ADA-accessible-route-width", "ADA-4.3.3", CategoryAccessibility
	const requiredFt = 36.0 / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Hallway, roomtypes.Foyer) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " breaks the 36 in accessible route width",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("widen %s to at least 36 in", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func gapGrabBar(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("ADA-grab-bar-bathroom", "ADA-4.16", CategoryAccessibility,
		"fixture-level blocking and grab bar placement is not part of the geometry model")
}

func gapAccessibleParking(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("ADA-accessible-parking", "ADA-4.6", CategoryAccessibility,
		"site/parking layout is outside the building envelope model")
}

func gapEntryThreshold(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("ADA-entry-threshold", "ADA-4.13.8", CategoryAccessibility,
		"threshold detailing is not part of the geometry model")
}

func gapCountertopHeight(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("ADA-countertop-height", "ADA-4.32", CategoryAccessibility,
		"cabinetry and counter height is not part of the geometry model")
}

func gapVisualAlarm(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("ADA-visual-alarm", "ADA-4.28", CategoryAccessibility,
		"life-safety appliance placement is outside this pipeline's scope")
}

func checkClearFloorSpace(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "ADA-clear-floor-space", "ADA-4.2.4", CategoryAccessibility
	const requiredFt = 60.0 / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Bedroom, roomtypes.PrimaryBed) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityWarning, RoomID: r.ID,
				Message:       r.Label + " does not provide a 60 in wheelchair T-turn clear floor space",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("enlarge %s if an accessible unit is required", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return RuleResult{RuleID: id, CodeSection: section, Category: cat, Passed: true, Violations: violations}
	}
	return pass(id, section, cat)
}
