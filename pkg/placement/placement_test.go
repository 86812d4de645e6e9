package placement

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/envelope"
	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
	"github.com/archspan/floorplan/pkg/zoning"
)

func TestExteriorWallsForRectTouchesAllFourSides(t *testing.T) {
	footprint := geometry.Rect{X: 0, Y: 0, Width: 40, Depth: 30}
	rect := footprint // exact footprint touches every side
	got := ExteriorWallsForRect(rect, footprint)
	if len(got) != 4 {
		t.Fatalf("expected 4 exterior walls for a room filling the footprint, got %d: %v", len(got), got)
	}
}

func TestExteriorWallsForRectInteriorRoomHasNone(t *testing.T) {
	footprint := geometry.Rect{X: 0, Y: 0, Width: 40, Depth: 30}
	rect := geometry.Rect{X: 10, Y: 10, Width: 5, Depth: 5}
	got := ExteriorWallsForRect(rect, footprint)
	if len(got) != 0 {
		t.Fatalf("expected no exterior walls for an interior rect, got %v", got)
	}
}

func TestPlaceRoomsProducesNoOverlapOnASimpleBrief(t *testing.T) {
	z := buildZonedPlan(&brief.Brief{
		TargetAreaSqFt: 2200,
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
	})

	placed := PlaceRooms(z, Options{})
	assertNoOverlap(t, placed.Rooms)
}

func buildZonedPlan(b *brief.Brief) zoning.ZonedPlan {
	nb := normalize.Normalize(b)
	env := envelope.Compute(nb)
	return zoning.AssignZones(nb, env, zoning.Options{})
}

func assertNoOverlap(t *testing.T, rooms []plan.PlacedRoom) {
	t.Helper()
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i], rooms[j]
			if a.Floor != b.Floor {
				continue
			}
			if a.Rect().Overlaps(b.Rect()) {
				t.Fatalf("rooms %s and %s overlap: %+v vs %+v", a.ID, b.ID, a.Rect(), b.Rect())
			}
		}
	}
}

// TestPlaceRoomsNeverOverlapsProperty exercises stages 1-4 end to end with
// randomly generated room programs and checks that no two rooms placed on
// the same floor overlap — the placement invariant spec §8 requires.
func TestPlaceRoomsNeverOverlapsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		stories := rapid.SampledFrom([]int{1, 2}).Draw(rt, "stories")
		area := rapid.Float64Range(900, 4500).Draw(rt, "area")

		candidateTypes := []roomtypes.Type{
			roomtypes.PrimaryBed, roomtypes.Bedroom, roomtypes.Bathroom, roomtypes.Kitchen,
			roomtypes.Dining, roomtypes.Living, roomtypes.Family, roomtypes.Office,
			roomtypes.Garage, roomtypes.Laundry, roomtypes.Pantry, roomtypes.Sunroom,
		}
		n := rapid.IntRange(2, 8).Draw(rt, "roomCount")
		var rooms []brief.RoomRequirement
		for i := 0; i < n; i++ {
			typ := rapid.SampledFrom(candidateTypes).Draw(rt, "type")
			rooms = append(rooms, brief.RoomRequirement{Type: typ, MustHave: i < 2})
		}

		b := &brief.Brief{
			TargetAreaSqFt: area,
			Stories:        stories,
			Style:          brief.StyleRanch,
			Rooms:          rooms,
		}

		nb := normalize.Normalize(b)
		env := envelope.Compute(nb)
		z := zoning.AssignZones(nb, env, zoning.Options{})
		placed := PlaceRooms(z, Options{})

		for i := 0; i < len(placed.Rooms); i++ {
			for j := i + 1; j < len(placed.Rooms); j++ {
				a, c := placed.Rooms[i], placed.Rooms[j]
				if a.Floor != c.Floor {
					continue
				}
				if a.Rect().Overlaps(c.Rect()) {
					rt.Fatalf("rooms %s and %s overlap: %+v vs %+v", a.ID, c.ID, a.Rect(), c.Rect())
				}
			}
		}
	})
}
