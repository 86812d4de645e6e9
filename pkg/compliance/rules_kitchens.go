package compliance

import (
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func kitchenRules() []*Rule {
	return []*Rule{
		{
			ID: "IRC-kitchen-clear-aisle", CodeSection: "K-1", Category: CategoryKitchens,
			Description: "Proxy check: a kitchen's narrow dimension must be at least 40 in to " +
				"maintain a clear work-aisle width.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkKitchenClearAisle,
		},
		{
			ID: "IRC-kitchen-counter-length", CodeSection: "K-2", Category: CategoryKitchens,
			Description: "Countertop and base-cabinet linear footage must meet the work-triangle minimum.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapKitchenCounterLength,
		},
		{
			ID: "IRC-kitchen-ventilation", CodeSection: "K-3", Category: CategoryKitchens,
			Description: "Kitchens without an operable window require a mechanical exhaust system.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkKitchenVentilation,
		},
		{
			ID: "IRC-kitchen-electrical-outlets", CodeSection: "K-4", Category: CategoryKitchens,
			Description: "Countertop receptacle spacing (NEC 210.52(C)) requires no point along the " +
				"counter to be more than 24 in from an outlet.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapKitchenOutletSpacing,
		},
	}
}

func checkKitchenClearAisle(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "IRC-kitchen-clear-aisle", "K-1", CategoryKitchens
	const requiredFt = 40.0 / 12.0
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Kitchen) {
		if d := minDim(r); d < requiredFt {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is too narrow for a clear work aisle",
				CurrentValue:  d * 12, RequiredValue: requiredFt * 12, Unit: "in",
				Remediation: remediate("widen %s to at least 40 in", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func gapKitchenCounterLength(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("IRC-kitchen-counter-length", "K-2", CategoryKitchens,
		"cabinetry and countertop layout is not part of the geometry model")
}

func checkKitchenVentilation(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "IRC-kitchen-ventilation", "K-3", CategoryKitchens
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Kitchen) {
		if windowCountFor(p, r.ID) == 0 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityWarning, RoomID: r.ID,
				Message:       r.Label + " has no operable window; mechanical exhaust assumed",
				Remediation: remediate("confirm a range hood vented to the exterior is specified for %s", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return RuleResult{RuleID: id, CodeSection: section, Category: cat, Passed: true, Violations: violations}
	}
	return pass(id, section, cat)
}

func gapKitchenOutletSpacing(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("IRC-kitchen-electrical-outlets", "K-4", CategoryKitchens,
		"countertop and receptacle layout is not part of the geometry model")
}
