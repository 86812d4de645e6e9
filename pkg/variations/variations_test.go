package variations

import (
	"testing"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/envelope"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func setup(t *testing.T) (*normalize.NormalizedBrief, envelope.Envelope) {
	t.Helper()
	b := &brief.Brief{
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
	nb := normalize.Normalize(b)
	env := envelope.Compute(nb)
	return nb, env
}

func TestGenerateReturnsOneResultPerStrategy(t *testing.T) {
	nb, env := setup(t)
	results := Generate(nb, env)
	if len(results) != len(specs) {
		t.Fatalf("Generate returned %d results, want %d (one per strategy)", len(results), len(specs))
	}
	seen := make(map[string]bool)
	for _, r := range results {
		if seen[r.Plan.Strategy] {
			t.Fatalf("duplicate strategy name %q in results", r.Plan.Strategy)
		}
		seen[r.Plan.Strategy] = true
	}
}

func TestRankedSortsByOverallScoreDescending(t *testing.T) {
	nb, env := setup(t)
	ranked := Ranked(nb, env)
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score.Overall > ranked[i-1].Score.Overall {
			t.Fatalf("ranked results not sorted descending at index %d: %.2f > %.2f",
				i, ranked[i].Score.Overall, ranked[i-1].Score.Overall)
		}
	}
}

func TestRankedIsStableAcrossRepeatedCalls(t *testing.T) {
	nb, env := setup(t)
	first := Ranked(nb, env)
	second := Ranked(nb, env)

	if len(first) != len(second) {
		t.Fatalf("Ranked returned different lengths across calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Plan.Strategy != second[i].Plan.Strategy {
			t.Fatalf("Ranked order differs at index %d: %q vs %q", i, first[i].Plan.Strategy, second[i].Plan.Strategy)
		}
	}
}

func TestMirrorVariationsStayWithinFloorFootprint(t *testing.T) {
	nb, env := setup(t)
	results := Generate(nb, env)

	for _, r := range results {
		if r.Plan.Strategy != StrategyMirrorX && r.Plan.Strategy != StrategyReverseOrderMirrorY {
			continue
		}
		for _, room := range r.Plan.Rooms {
			footprint, ok := env.FloorRects[room.Floor]
			if !ok {
				continue
			}
			if !footprint.ContainsRect(room.Rect()) {
				t.Fatalf("strategy %s: room %s at %+v falls outside footprint %+v",
					r.Plan.Strategy, room.ID, room.Rect(), footprint)
			}
		}
	}
}
