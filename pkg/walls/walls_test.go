package walls

import (
	"testing"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/circulation"
	"github.com/archspan/floorplan/pkg/envelope"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/placement"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
	"github.com/archspan/floorplan/pkg/zoning"
)

func circulatedPlan(t *testing.T) plan.PlacedPlan {
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
	z := zoning.AssignZones(nb, env, zoning.Options{})
	p := placement.PlaceRooms(z, placement.Options{})
	return circulation.EnsureCirculation(p)
}

func TestAnalyzeWallsProducesFourWallsPerRoom(t *testing.T) {
	p := circulatedPlan(t)
	wa := AnalyzeWalls(p)

	counts := make(map[string]int)
	for _, w := range wa.Walls {
		counts[w.RoomID]++
	}
	for _, r := range p.Rooms {
		if counts[r.ID] != 4 {
			t.Fatalf("room %s has %d walls, want 4", r.ID, counts[r.ID])
		}
	}
}

func TestAnalyzeWallsExteriorThickerThanInterior(t *testing.T) {
	p := circulatedPlan(t)
	wa := AnalyzeWalls(p)

	for _, w := range wa.Walls {
		if w.Exterior && w.ThicknessIn != exteriorThicknessIn {
			t.Fatalf("exterior wall %s thickness = %v, want %v", w.ID, w.ThicknessIn, exteriorThicknessIn)
		}
		if !w.Exterior && w.ThicknessIn != interiorThicknessIn {
			t.Fatalf("interior wall %s thickness = %v, want %v", w.ID, w.ThicknessIn, interiorThicknessIn)
		}
	}
}

func TestAnalyzeWallsGroupsPlumbingRoomsByAdjacency(t *testing.T) {
	p := circulatedPlan(t)
	wa := AnalyzeWalls(p)

	seen := make(map[string]bool)
	for _, g := range wa.PlumbingGroups {
		for _, id := range g {
			if seen[id] {
				t.Fatalf("room %s appears in more than one plumbing group", id)
			}
			seen[id] = true
		}
	}
	for _, r := range p.Rooms {
		if r.NeedsPlumbing && !seen[r.ID] {
			t.Fatalf("plumbing room %s missing from every plumbing group", r.ID)
		}
	}
}

func TestSharedWallOverlapDetectsTouchingEdges(t *testing.T) {
	p := circulatedPlan(t)
	wa := AnalyzeWalls(p)

	for _, sw := range wa.SharedWalls {
		if sw.OverlapLengthFt <= 0 {
			t.Fatalf("shared wall between %s and %s has non-positive overlap %.1f", sw.RoomAID, sw.RoomBID, sw.OverlapLengthFt)
		}
		if sw.Orientation != "vertical" && sw.Orientation != "horizontal" {
			t.Fatalf("shared wall between %s and %s has unexpected orientation %q", sw.RoomAID, sw.RoomBID, sw.Orientation)
		}
	}
}
