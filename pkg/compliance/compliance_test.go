package compliance

import (
	"testing"

	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func minimalPlan() (plan.PlacedPlan, plan.WallAnalysis) {
	rooms := []plan.PlacedRoom{
		{
			NormalizedRoom: normalize.NormalizedRoom{ID: "bedroom-1", Type: roomtypes.Bedroom, Floor: 1, MinAreaSqFt: 70},
			X: 0, Y: 0, ActualWidthFt: 10, ActualDepthFt: 10, SqFt: 100,
			ExteriorWalls: []roomtypes.Direction{roomtypes.North},
		},
		{
			NormalizedRoom: normalize.NormalizedRoom{ID: "bathroom-1", Type: roomtypes.Bathroom, Floor: 1, NeedsPlumbing: true, MinAreaSqFt: 35},
			X: 10, Y: 0, ActualWidthFt: 6, ActualDepthFt: 8, SqFt: 48,
		},
	}
	p := plan.PlacedPlan{
		Rooms: rooms,
		Doors: []plan.Door{
			{ID: "door-1", RoomAID: "bedroom-1", RoomBID: "bathroom-1", ClearWidthFt: 2.5, Type: plan.DoorStandard},
		},
		RunID: "test-run-id",
	}
	wa := plan.WallAnalysis{}
	return p, wa
}

func TestCreateEngineSeedsBaseRuleLibrary(t *testing.T) {
	e := CreateEngine()
	if len(e.Registry().ListAll()) == 0 {
		t.Fatal("expected CreateEngine to seed a non-empty base rule library")
	}
}

func TestEngineCheckRejectsEmptyPlan(t *testing.T) {
	e := CreateEngine()
	_, err := e.Check(plan.PlacedPlan{}, plan.WallAnalysis{}, Context{}, Options{})
	if err == nil {
		t.Fatal("expected an error for a plan with no rooms")
	}
	if _, ok := err.(*InvalidPlan); !ok {
		t.Fatalf("expected *InvalidPlan, got %T", err)
	}
}

func TestEngineCheckRejectsPlanWithNoDoors(t *testing.T) {
	p, wa := minimalPlan()
	p.Doors = nil
	e := CreateEngine()
	_, err := e.Check(p, wa, Context{}, Options{})
	if _, ok := err.(*InvalidPlan); !ok {
		t.Fatalf("expected *InvalidPlan for a plan with no doors, got %v", err)
	}
}

func TestEngineCheckDefaultsToIRCBaseJurisdiction(t *testing.T) {
	p, wa := minimalPlan()
	e := CreateEngine()
	report, err := e.Check(p, wa, Context{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Jurisdiction != JurisdictionIRCBase {
		t.Fatalf("Jurisdiction = %q, want %q", report.Jurisdiction, JurisdictionIRCBase)
	}
	if report.PlanID != "test-run-id" {
		t.Fatalf("PlanID = %q, want the plan's RunID", report.PlanID)
	}
	if report.Summary.Total != len(report.Results) {
		t.Fatalf("Summary.Total = %d, want %d", report.Summary.Total, len(report.Results))
	}
}

func TestEngineCheckAppliesColoradoAdditionalRules(t *testing.T) {
	p, wa := minimalPlan()
	e := CreateEngine()

	base, err := e.Check(p, wa, Context{Jurisdiction: JurisdictionIRCBase}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	colorado, err := e.Check(p, wa, Context{Jurisdiction: JurisdictionColorado}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(colorado.Results) <= len(base.Results) {
		t.Fatalf("expected colorado jurisdiction to contribute additional rules: base=%d colorado=%d",
			len(base.Results), len(colorado.Results))
	}
}

// TestJurisdictionApplyNeverMutatesBase is the critical clone-before-mutate
// invariant: applying an amendment and evaluating under one jurisdiction
// must never change how the base registry behaves under another.
func TestJurisdictionApplyNeverMutatesBase(t *testing.T) {
	e := CreateEngine()
	before, ok := e.Registry().Get("R304.3-ceiling-height-base")
	if !ok {
		t.Fatal("expected the base registry to contain R304.3-ceiling-height-base")
	}
	beforeVersion := before.Version

	p, wa := minimalPlan()
	if _, err := e.Check(p, wa, Context{Jurisdiction: JurisdictionColorado}, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, ok := e.Registry().Get("R304.3-ceiling-height-base")
	if !ok {
		t.Fatal("R304.3-ceiling-height-base disappeared from the base registry")
	}
	if after.Version != beforeVersion {
		t.Fatalf("evaluating under colorado mutated the base registry's rule version: %q -> %q", beforeVersion, after.Version)
	}

	// A second, independent evaluation under irc-base must not see the
	// colorado-specific amendment either.
	ircReport, err := e.Check(p, wa, Context{Jurisdiction: JurisdictionIRCBase}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range ircReport.Results {
		if r.RuleID == "CO-WUI-ignition-resistant" {
			t.Fatal("irc-base evaluation picked up a colorado-only additional rule")
		}
	}
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Rule{ID: "r1", Version: "1.0", Enabled: true})

	clone := reg.clone()
	clone.SetEnabled("r1", false)

	original, _ := reg.Get("r1")
	if !original.Enabled {
		t.Fatal("mutating a cloned registry's rule affected the original")
	}
}

func TestRunRuleRecoversFromPanic(t *testing.T) {
	rule := &Rule{
		ID: "panics", CodeSection: "X", Category: CategoryStructural, Enabled: true,
		Jurisdictions: []string{"*"},
		Check: func(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult {
			panic("boom")
		},
	}
	result := runRule(rule, plan.PlacedPlan{}, plan.WallAnalysis{}, Context{}, Options{})
	if len(result.Violations) != 1 {
		t.Fatalf("expected exactly one synthetic violation, got %d", len(result.Violations))
	}
	if result.Violations[0].Severity != SeverityError {
		t.Fatalf("synthetic violation severity = %q, want error", result.Violations[0].Severity)
	}
	if result.Violations[0].RuleID != "panics-execution-error" {
		t.Fatalf("synthetic violation id = %q, want %q", result.Violations[0].RuleID, "panics-execution-error")
	}
}

func TestFilterRulesExcludesDisabledAndWrongJurisdiction(t *testing.T) {
	rules := []*Rule{
		{ID: "a", Enabled: true, Jurisdictions: []string{"*"}, Category: CategoryEgress},
		{ID: "b", Enabled: false, Jurisdictions: []string{"*"}, Category: CategoryEgress},
		{ID: "c", Enabled: true, Jurisdictions: []string{JurisdictionColorado}, Category: CategoryEgress},
	}
	out := filterRules(rules, JurisdictionIRCBase, Options{})
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("expected only rule 'a' to survive filtering under irc-base, got %v", ruleIDs(out))
	}
}

func TestFilterRulesRespectsIncludeExcludeCategory(t *testing.T) {
	rules := []*Rule{
		{ID: "a", Enabled: true, Jurisdictions: []string{"*"}, Category: CategoryEgress},
		{ID: "b", Enabled: true, Jurisdictions: []string{"*"}, Category: CategoryKitchens},
	}
	out := filterRules(rules, JurisdictionIRCBase, Options{IncludeCategories: []string{CategoryEgress}})
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("expected only the egress rule, got %v", ruleIDs(out))
	}
}

func ruleIDs(rules []*Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ID
	}
	return out
}

func TestRunComplianceCheckDefaultsJurisdiction(t *testing.T) {
	p, wa := minimalPlan()
	report, err := RunComplianceCheck(p, wa, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Jurisdiction != JurisdictionIRCBase {
		t.Fatalf("Jurisdiction = %q, want %q", report.Jurisdiction, JurisdictionIRCBase)
	}
}
