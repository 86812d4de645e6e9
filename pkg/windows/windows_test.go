package windows

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

func TestAssignWindowsSkipsGarageAndHallway(t *testing.T) {
	p := circulatedPlan(t)
	out := AssignWindows(p)

	byRoom := make(map[string][]plan.WindowPlacement)
	for _, w := range out.Windows {
		byRoom[w.RoomID] = append(byRoom[w.RoomID], w)
	}
	for _, r := range out.Rooms {
		if r.Type == roomtypes.Garage || r.Type == roomtypes.Hallway {
			if len(byRoom[r.ID]) != 0 {
				t.Fatalf("room %s (%s) got windows, want none", r.ID, r.Type)
			}
		}
	}
}

func TestAssignWindowsGivesBathroomsClerestory(t *testing.T) {
	p := circulatedPlan(t)
	out := AssignWindows(p)

	found := false
	for _, w := range out.Windows {
		room, ok := out.RoomByID(w.RoomID)
		if !ok {
			continue
		}
		if room.Type == roomtypes.Bathroom || room.Type == roomtypes.PrimaryBath {
			found = true
			if w.Type != plan.WindowClerestory {
				t.Fatalf("bathroom window type = %s, want clerestory", w.Type)
			}
		}
	}
	_ = found
}

func TestAssignWindowsIsIdempotent(t *testing.T) {
	p := circulatedPlan(t)
	once := AssignWindows(p)
	twice := AssignWindows(once)

	if len(once.Windows) != len(twice.Windows) {
		t.Fatalf("second AssignWindows call changed window count: %d -> %d", len(once.Windows), len(twice.Windows))
	}
}

func TestAssignWindowsPositionsStayWithinWallLength(t *testing.T) {
	p := circulatedPlan(t)
	out := AssignWindows(p)

	for _, w := range out.Windows {
		room, ok := out.RoomByID(w.RoomID)
		if !ok {
			t.Fatalf("window %s references unknown room %s", w.ID, w.RoomID)
		}
		length := wallLength(room, w.WallDirection)
		if w.PositionFt < 0 || w.PositionFt > length {
			t.Fatalf("window %s position %.1f outside wall length %.1f", w.ID, w.PositionFt, length)
		}
	}
}
