package floorplan

import (
	"testing"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/roomtypes"
	"github.com/archspan/floorplan/pkg/variations"
)

func sampleBrief() *brief.Brief {
	return &brief.Brief{
		TargetAreaSqFt: 2400,
		Stories:        1,
		Style:          brief.StyleRanch,
		Rooms: []brief.RoomRequirement{
			{Type: roomtypes.PrimaryBed, MustHave: true},
			{Type: roomtypes.Kitchen, MustHave: true},
			{Type: roomtypes.Living, MustHave: true},
			{Type: roomtypes.Bedroom},
			{Type: roomtypes.Bathroom},
			{Type: roomtypes.Garage, MustHave: true},
		},
	}
}

func TestRunProducesAPlacedAndScoredPlan(t *testing.T) {
	fp := Run(sampleBrief())

	if len(fp.Placed.Rooms) == 0 {
		t.Fatal("expected Run to place at least one room")
	}
	if fp.Placed.Strategy != variations.StrategyBaseGreedy {
		t.Fatalf("Strategy = %q, want %q", fp.Placed.Strategy, variations.StrategyBaseGreedy)
	}
	if fp.Placed.RunID == "" {
		t.Fatal("expected Run to stamp a non-empty RunID")
	}
	if fp.Score.Overall < 0 || fp.Score.Overall > 100 {
		t.Fatalf("Score.Overall = %.2f, outside [0, 100]", fp.Score.Overall)
	}
}

func TestRunIDIsDeterministicForIdenticalBriefs(t *testing.T) {
	first := Run(sampleBrief())
	second := Run(sampleBrief())
	if first.Placed.RunID != second.Placed.RunID {
		t.Fatalf("RunID differs across identical briefs: %q vs %q", first.Placed.RunID, second.Placed.RunID)
	}
}

func TestRunVariationsStampsDistinctRunIDsPerStrategy(t *testing.T) {
	_, _, results := RunVariations(sampleBrief())
	if len(results) == 0 {
		t.Fatal("expected at least one variation result")
	}
	seen := make(map[string]bool)
	for _, r := range results {
		if r.Plan.RunID == "" {
			t.Fatalf("variation %s has an empty RunID", r.Plan.Strategy)
		}
		if seen[r.Plan.RunID] {
			t.Fatalf("duplicate RunID %q across variations", r.Plan.RunID)
		}
		seen[r.Plan.RunID] = true
	}
}
