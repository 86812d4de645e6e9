package compliance

import (
	"math"

	"github.com/archspan/floorplan/pkg/plan"
)

func structuralRules() []*Rule {
	return []*Rule{
		{
			ID: "R502.3-max-span", CodeSection: "R502.3", Category: CategoryStructural,
			Description: "A room longer than 20 ft in its long dimension requires an engineered " +
				"beam; flag for modular construction as a span that cannot be framed with dimensional lumber.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkMaxSpan,
		},
		{
			ID: "MOD-marriage-wall", CodeSection: "MOD-T1", Category: CategoryStructural,
			Description: "Modular transport: a room whose narrow dimension exceeds 16 ft cannot " +
				"ship as a single module and requires a marriage-wall split.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "1.0",
			Check: checkModularMarriageWall,
		},
		{
			ID: "MOD-module-crossing", CodeSection: "MOD-T2", Category: CategoryStructural,
			Description: "Modular transport: a room that crosses a 16 ft module boundary along its " +
				"width requires a marriage wall at the crossing.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "1.0",
			Check: checkModuleBoundaryCrossing,
		},
		{
			ID: "R301.2-wind-design", CodeSection: "R301.2.1", Category: CategoryStructural,
			Description: "Structures in a design wind speed above 130 mph require wind-resistant " +
				"detailing beyond prescriptive framing.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkWindDesign,
		},
		{
			ID: "R301.2-seismic-design", CodeSection: "R301.2.2", Category: CategoryStructural,
			Description: "Structures in Seismic Design Category D0/D1/D2/E require an engineered " +
				"lateral-force-resisting system.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkSeismicDesign,
		},
		{
			ID: "R301.2-snow-load", CodeSection: "R301.2.3", Category: CategoryStructural,
			Description: "Ground snow load above 50 psf requires roof-framing verification beyond " +
				"prescriptive span tables.",
			Enabled: true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: checkSnowLoad,
		},
		{
			ID: "R602.10-shear-wall", CodeSection: "R602.10", Category: CategoryStructural,
			Description: "Braced wall line spacing and segment layout verification.",
			Enabled:     true, Jurisdictions: []string{anyJurisdiction}, Version: "2021.1",
			Check: gapShearWall,
		},
	}
}

func checkMaxSpan(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R502.3-max-span", "R502.3", CategoryStructural
	var violations []Violation
	for _, r := range p.Rooms {
		if d := maxDim(r); d > 20 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityError, RoomID: r.ID,
				Message:       r.Label + " exceeds the 20 ft dimensional-lumber span without an engineered beam",
				CurrentValue:  d, RequiredValue: 20, Unit: "ft",
				Remediation: remediate("add an engineered beam or shrink %s below a 20 ft span", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return fail(id, section, cat, violations...)
	}
	return pass(id, section, cat)
}

func checkModularMarriageWall(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "MOD-marriage-wall", "MOD-T1", CategoryStructural
	var violations []Violation
	for _, r := range p.Rooms {
		if d := minDim(r); d > 16 {
			violations = append(violations, Violation{
				RuleID: id, CodeSection: section, Severity: SeverityWarning, RoomID: r.ID,
				Message:       r.Label + " exceeds the 16 ft modular transport width",
				CurrentValue:  d, RequiredValue: 16, Unit: "ft",
				Remediation: remediate("split %s across a marriage wall for modular transport", r.Label),
			})
		}
	}
	if len(violations) > 0 {
		return RuleResult{RuleID: id, CodeSection: section, Category: cat, Passed: true, Violations: violations}
	}
	return pass(id, section, cat)
}

func checkModuleBoundaryCrossing(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "MOD-module-crossing", "MOD-T2", CategoryStructural
	const moduleFt = 16.0
	var violations []Violation
	for _, r := range p.Rooms {
		x0 := r.X
		x1 := r.X + r.ActualWidthFt
		for line := math.Floor(x0/moduleFt+1) * moduleFt; line < x1; line += moduleFt {
			if line > x0 {
				violations = append(violations, Violation{
					RuleID: id, CodeSection: section, Severity: SeverityWarning, RoomID: r.ID,
					Message:       r.Label + " crosses a 16 ft module boundary",
					CurrentValue:  line, RequiredValue: x0, Unit: "ft",
					Remediation: remediate("add a marriage wall in %s at the module boundary", r.Label),
				})
			}
		}
	}
	if len(violations) > 0 {
		return RuleResult{RuleID: id, CodeSection: section, Category: cat, Passed: true, Violations: violations}
	}
	return pass(id, section, cat)
}

func checkWindDesign(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R301.2-wind-design", "R301.2.1", CategoryStructural
	if ctx.WindSpeedMph > 130 {
		return fail(id, section, cat, Violation{
			RuleID: id, CodeSection: section, Severity: SeverityError,
			Message:       "design wind speed exceeds prescriptive framing limits",
			CurrentValue:  ctx.WindSpeedMph, RequiredValue: 130, Unit: "mph",
			Remediation: remediate("engage an engineer for wind-resistant detailing above 130 mph"),
		})
	}
	return pass(id, section, cat)
}

func checkSeismicDesign(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R301.2-seismic-design", "R301.2.2", CategoryStructural
	switch ctx.SeismicZone {
	case "D0", "D1", "D2", "E":
		return fail(id, section, cat, Violation{
			RuleID: id, CodeSection: section, Severity: SeverityError,
			Message:       "seismic design category " + ctx.SeismicZone + " requires an engineered lateral system",
			Remediation: remediate("engage an engineer for a lateral-force-resisting system"),
		})
	default:
		return pass(id, section, cat)
	}
}

func checkSnowLoad(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	const id, section, cat = "R301.2-snow-load", "R301.2.3", CategoryStructural
	if ctx.SnowLoadPsf > 50 {
		return fail(id, section, cat, Violation{
			RuleID: id, CodeSection: section, Severity: SeverityError,
			Message:       "ground snow load exceeds prescriptive roof-framing span tables",
			CurrentValue:  ctx.SnowLoadPsf, RequiredValue: 50, Unit: "psf",
			Remediation: remediate("verify roof framing by engineered analysis above 50 psf"),
		})
	}
	return pass(id, section, cat)
}

func gapShearWall(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
	return gapResult("R602.10-shear-wall", "R602.10", CategoryStructural,
		"braced wall line and segment geometry is not part of the wall-analysis model")
}
