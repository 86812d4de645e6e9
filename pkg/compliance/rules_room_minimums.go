package compliance

import (
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func roomMinimumRules() []*Rule {
	return []*Rule{
		{
			ID: "R304.1-habitable-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
			Description:   "Every habitable room must have a floor area of at least 120 sq ft.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkHabitableArea,
		},
		{
			ID: "R304.1-bedroom-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
			Description:   "Every bedroom must have a floor area of at least 70 sq ft.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkBedroomArea,
		},
		{
			ID: "R304.1-kitchen-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
			Description:   "Every kitchen must have a floor area of at least 50 sq ft.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkKitchenMinArea,
		},
		{
			ID: "R304.2-horizontal-dimension", CodeSection: "R304.2", Category: CategoryRoomMinimums,
			Description:   "Every habitable room must have a horizontal dimension of at least 7 ft.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkHorizontalDimension,
		},
		{
			ID: "R304.3-ceiling-height-base", CodeSection: "R304.3", Category: CategoryRoomMinimums,
			Description: "Habitable room ceiling height. Ceiling height is not part of this " +
				"pipeline's geometry model; the base rule is a documented no-op. Colorado amends " +
				"this rule with a real check driven by context parameters.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkCeilingHeightGap,
		},
		{
			ID: "R304.4-closet-minimum", CodeSection: "R304.4", Category: CategoryRoomMinimums,
			Description:   "A walk-in closet must have a floor area of at least 12 sq ft.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkClosetMinimum,
		},
		{
			ID: "R304.5-bonus-room-minimum", CodeSection: "R304.5", Category: CategoryRoomMinimums,
			Description:   "A bonus room must have a floor area of at least 70 sq ft to be habitable.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkBonusRoomMinimum,
		},
		{
			ID: "R304.6-garage-minimum", CodeSection: "R304.6", Category: CategoryRoomMinimums,
			Description:   "A one-or-more-car garage must have a floor area of at least 200 sq ft.",
			Enabled:       true,
			Jurisdictions: []string{anyJurisdiction},
			Version:       "2021.1",
			Check:         checkGarageMinimum,
		},
	}
}

func checkHabitableArea(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.1-habitable-area", "R304.1", CategoryRoomMinimums
	var violations []Violation
	for _, r := range habitableRooms(p) {
		if r.SqFt < 120 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is below the minimum habitable room area",
				CurrentValue:  r.SqFt, RequiredValue: 120, Unit: "sq ft",
				Remediation: remediate("enlarge %s to at least 120 sq ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkBedroomArea(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.1-bedroom-area", "R304.1", CategoryRoomMinimums
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Bedroom, roomtypes.PrimaryBed) {
		if r.SqFt < 70 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is below the minimum bedroom area",
				CurrentValue:  r.SqFt, RequiredValue: 70, Unit: "sq ft",
				Remediation: remediate("enlarge %s to at least 70 sq ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkKitchenMinArea(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.1-kitchen-area", "R304.1", CategoryRoomMinimums
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Kitchen) {
		if r.SqFt < 50 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is below the minimum kitchen area",
				CurrentValue:  r.SqFt, RequiredValue: 50, Unit: "sq ft",
				Remediation: remediate("enlarge %s to at least 50 sq ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkHorizontalDimension(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.2-horizontal-dimension", "R304.2", CategoryRoomMinimums
	var violations []Violation
	for _, r := range habitableRooms(p) {
		if d := minDim(r); d < 7 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " has a horizontal dimension under 7 ft",
				CurrentValue:  d, RequiredValue: 7, Unit: "ft",
				Remediation: remediate("widen the narrow side of %s to at least 7 ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkCeilingHeightGap(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("R304.3-ceiling-height-base", "R304.3", CategoryRoomMinimums,
		"ceiling height is not part of the placed-plan geometry model")
}

func checkClosetMinimum(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.4-closet-minimum", "R304.4", CategoryRoomMinimums
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.WalkInCloset) {
		if r.SqFt < 12 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is below the minimum closet area",
				CurrentValue:  r.SqFt, RequiredValue: 12, Unit: "sq ft",
				Remediation: remediate("enlarge %s to at least 12 sq ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkBonusRoomMinimum(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.5-bonus-room-minimum", "R304.5", CategoryRoomMinimums
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Bonus) {
		if r.SqFt < 70 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is below the minimum habitable bonus-room area",
				CurrentValue:  r.SqFt, RequiredValue: 70, Unit: "sq ft",
				Remediation: remediate("enlarge %s to at least 70 sq ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkGarageMinimum(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R304.6-garage-minimum", "R304.6", CategoryRoomMinimums
	var violations []Violation
	for _, r := range roomsOfType(p, roomtypes.Garage) {
		if r.SqFt < 200 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " is below the minimum single-car garage area",
				CurrentValue:  r.SqFt, RequiredValue: 200, Unit: "sq ft",
				Remediation: remediate("enlarge %s to at least 200 sq ft", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}
