package render

import (
	"strings"
	"testing"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/floorplan"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func samplePlan(t *testing.T) floorplan.Plan {
	t.Helper()
	b := &brief.Brief{
		TargetAreaSqFt: 2200,
		Stories:        1,
		Style:          brief.StyleRanch,
		Rooms: []brief.RoomRequirement{
			{Type: roomtypes.PrimaryBed, MustHave: true},
			{Type: roomtypes.Kitchen, MustHave: true},
			{Type: roomtypes.Living, MustHave: true},
			{Type: roomtypes.Bathroom},
			{Type: roomtypes.Garage, MustHave: true},
		},
	}
	return floorplan.Run(b)
}

func TestExportProducesWellFormedSVG(t *testing.T) {
	fp := samplePlan(t)
	data, err := Export(fp.Placed, fp.Walls, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Fatal("expected exported bytes to contain an <svg>...</svg> document")
	}
}

func TestExportRejectsPlanWithNoRooms(t *testing.T) {
	_, err := Export(plan.PlacedPlan{}, plan.WallAnalysis{}, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for a plan with no rooms")
	}
}

func TestExportFillsInZeroOptions(t *testing.T) {
	fp := samplePlan(t)
	_, err := Export(fp.Placed, fp.Walls, Options{})
	if err != nil {
		t.Fatalf("unexpected error with zero-value options: %v", err)
	}
}

func TestRoomTypeColorCoversEveryType(t *testing.T) {
	for _, typ := range roomtypes.All() {
		if RoomTypeColor(typ) == "" {
			t.Fatalf("RoomTypeColor(%s) returned an empty string", typ)
		}
	}
}
