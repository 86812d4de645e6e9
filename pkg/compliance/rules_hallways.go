package compliance

import (
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func hallwayRules() []*Rule {
	return []*Rule{
		{
			ID: "R311.6.1-hallway-width", CodeSection: "R311.6.1", Category: CategoryHallways,
			Description: "A hallway must be at least 36 in wide.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkHallwayWidth,
		},
		{
			ID: "ADA-hallway-width", CodeSection: "ADA-4.3.3", Category: CategoryHallways,
			Description: "An accessible-route hallway should be at least 42 in wide.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2010.1",
			Check: checkADAHallwayWidth,
		},
		{
			ID: "R311.6.2-hallway-headroom", CodeSection: "R311.6.2", Category: CategoryHallways,
			Description: "A hallway must maintain at least 80 in of headroom.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapHallwayHeadroom,
		},
		{
			ID: "R311.7.8-hallway-handrail", CodeSection: "R311.7.8", Category: CategoryHallways,
			Description: "A hallway that includes a change in elevation requires a graspable handrail.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapHallwayHandrail,
		},
	}
}

func checkHallwayWidth(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R311.6.1-hallway-width", "R311.6.1", CategoryHallways
	const requiredFt = 36.0 / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Hallway) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is narrower than the minimum hallway width",
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

func checkADAHallwayWidth(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "ADA-hallway-width", "ADA-4.3.3", CategoryHallways
	const requiredFt = 42.0 / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Hallway) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityWarning, RoomID: r.ID,
				Message:       r.Label + " is narrower than the accessible-route hallway width",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("widen %s to at least 42 in for an accessible route", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return RuleResult{RuleID: id, CodeSection: section, Category: cat, Passed: true, Violations: violations}
	}
	return pass(id, section, cat)
}

func gapHallwayHeadroom(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("R311.6.2-hallway-headroom", "R311.6.2", CategoryHallways,
		"ceiling/soffit height is not part of the geometry model")
}

func gapHallwayHandrail(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("R311.7.8-hallway-handrail", "R311.7.8", CategoryHallways,
		"elevation changes along a hallway are not part of the geometry model")
}
