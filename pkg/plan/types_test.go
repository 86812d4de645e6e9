package plan

import (
	"testing"

	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func TestPlacedRoomRectMatchesFields(t *testing.T) {
	r := PlacedRoom{
		NormalizedRoom: normalize.NormalizedRoom{ID: "bedroom-1"},
		X:              5, Y: 10, ActualWidthFt: 12, ActualDepthFt: 14,
	}
	want := geometry.Rect{X: 5, Y: 10, Width: 12, Depth: 14}
	if r.Rect() != want {
		t.Fatalf("Rect() = %+v, want %+v", r.Rect(), want)
	}
}

func TestPlacedRoomHasExteriorWall(t *testing.T) {
	r := PlacedRoom{ExteriorWalls: []roomtypes.Direction{roomtypes.North, roomtypes.East}}
	if !r.HasExteriorWall(roomtypes.North) {
		t.Fatal("expected north to be an exterior wall")
	}
	if r.HasExteriorWall(roomtypes.South) {
		t.Fatal("south was not in ExteriorWalls but HasExteriorWall returned true")
	}
}

func TestPlacedPlanRoomByID(t *testing.T) {
	p := &PlacedPlan{
		Rooms: []PlacedRoom{
			{NormalizedRoom: normalize.NormalizedRoom{ID: "kitchen-1"}},
			{NormalizedRoom: normalize.NormalizedRoom{ID: "living-1"}},
		},
	}
	room, ok := p.RoomByID("living-1")
	if !ok || room.ID != "living-1" {
		t.Fatalf("RoomByID(living-1) = %+v, %v", room, ok)
	}
	if _, ok := p.RoomByID("nonexistent"); ok {
		t.Fatal("RoomByID returned ok=true for a missing id")
	}
}
