package persist

import (
	"path/filepath"
	"testing"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/floorplan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func samplePlan() floorplan.Plan {
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

func TestNewBundleEchoesOverallScore(t *testing.T) {
	fp := samplePlan()
	bundle := NewBundle(fp.Placed, fp.Walls, fp.Score)
	if bundle.OverallScore != fp.Score.Overall {
		t.Fatalf("OverallScore = %.2f, want %.2f", bundle.OverallScore, fp.Score.Overall)
	}
}

func TestBundleYAMLRoundTrip(t *testing.T) {
	fp := samplePlan()
	bundle := NewBundle(fp.Placed, fp.Walls, fp.Score)

	path := filepath.Join(t.TempDir(), "bundle.yaml")
	if err := bundle.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	if len(loaded.Plan.Rooms) != len(bundle.Plan.Rooms) {
		t.Fatalf("round-tripped plan has %d rooms, want %d", len(loaded.Plan.Rooms), len(bundle.Plan.Rooms))
	}
	if loaded.OverallScore != bundle.OverallScore {
		t.Fatalf("round-tripped OverallScore = %.2f, want %.2f", loaded.OverallScore, bundle.OverallScore)
	}
	if loaded.Plan.RunID != bundle.Plan.RunID {
		t.Fatalf("round-tripped RunID = %q, want %q", loaded.Plan.RunID, bundle.Plan.RunID)
	}
}

func TestLoadBundleMissingFileReturnsError(t *testing.T) {
	_, err := LoadBundle(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected an error loading a nonexistent bundle file")
	}
}
