package envelope

import (
	"testing"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func normalizedBrief(stories int) *normalize.NormalizedBrief {
	b := &brief.Brief{
		TargetAreaSqFt: 2200,
		Stories:        stories,
		Style:          brief.StyleRanch,
		Rooms: []brief.RoomRequirement{
			{Type: roomtypes.PrimaryBed, MustHave: true},
			{Type: roomtypes.Kitchen, MustHave: true},
			{Type: roomtypes.Living, MustHave: true},
			{Type: roomtypes.Bedroom},
			{Type: roomtypes.Bathroom},
		},
	}
	return normalize.Normalize(b)
}

func TestComputeSingleStoryHasOneFloorRect(t *testing.T) {
	nb := normalizedBrief(1)
	env := Compute(nb)
	if len(env.FloorRects) != 1 {
		t.Fatalf("FloorRects has %d entries, want 1 for a single-story brief", len(env.FloorRects))
	}
	if _, ok := env.FloorRects[1]; !ok {
		t.Fatal("expected a floor-1 rect")
	}
}

func TestComputeTwoStoryHasTwoFloorRects(t *testing.T) {
	nb := normalizedBrief(2)
	env := Compute(nb)
	if len(env.FloorRects) != 2 {
		t.Fatalf("FloorRects has %d entries, want 2 for a two-story brief", len(env.FloorRects))
	}
	if env.FloorRects[1] != env.FloorRects[2] {
		t.Fatal("expected both floors to share an identical footprint")
	}
}

func TestComputeFootprintWithinBuildable(t *testing.T) {
	nb := normalizedBrief(1)
	env := Compute(nb)
	footprint := env.FloorRects[1]
	if !env.Buildable.ContainsRect(footprint) {
		t.Fatalf("footprint %+v not contained within buildable rect %+v", footprint, env.Buildable)
	}
}

func TestComputeRespectsMinimumSides(t *testing.T) {
	nb := &normalize.NormalizedBrief{
		Stories:        1,
		TargetAreaSqFt: 800,
		Lot:            brief.LotConstraints{LotWidthFt: 20, LotDepthFt: 20},
		Rooms: []normalize.NormalizedRoom{
			{ID: "bedroom-1", Type: roomtypes.Bedroom, TargetAreaSqFt: 140, MinAreaSqFt: 100},
		},
	}
	env := Compute(nb)
	footprint := env.FloorRects[1]
	if footprint.Width < minFootprintSide || footprint.Depth < minFootprintSide {
		t.Fatalf("footprint %+v below the minimum side of %v", footprint, minFootprintSide)
	}
}

func TestComputeScalesWithTargetArea(t *testing.T) {
	// A brief without a lot gets the 20x20 default lot, which caps every
	// footprint at 400 sq ft; give both briefs a lot with room to grow.
	lot := brief.LotConstraints{LotWidthFt: 120, LotDepthFt: 120, EntryFacing: roomtypes.South}
	small := normalizedBrief(1)
	small.TargetAreaSqFt = 1000
	small.Lot = lot
	large := normalizedBrief(1)
	large.TargetAreaSqFt = 4000
	large.Lot = lot

	smallEnv := Compute(small)
	largeEnv := Compute(large)

	if largeEnv.TotalAreaSqFt <= smallEnv.TotalAreaSqFt {
		t.Fatalf("expected a larger target area to produce a larger footprint: %v vs %v",
			largeEnv.TotalAreaSqFt, smallEnv.TotalAreaSqFt)
	}
}
