package brief

import (
	"strings"
	"testing"

	"github.com/archspan/floorplan/pkg/roomtypes"
)

func validBrief() Brief {
	return Brief{
		TargetAreaSqFt: 1800,
		Stories:        1,
		Style:          StyleRanch,
		Rooms: []RoomRequirement{
			{Type: roomtypes.PrimaryBed, MustHave: true},
			{Type: roomtypes.Kitchen, MustHave: true},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	b := validBrief()
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsOutOfRangeArea(t *testing.T) {
	b := validBrief()
	b.TargetAreaSqFt = 500
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error for targetAreaSqFt below 800")
	}
	b.TargetAreaSqFt = 6000
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error for targetAreaSqFt above 5000")
	}
}

func TestValidateRejectsBadStories(t *testing.T) {
	b := validBrief()
	b.Stories = 3
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error for an unsupported story count")
	}
}

func TestValidateRejectsUnknownStyle(t *testing.T) {
	b := validBrief()
	b.Style = Style("brutalist")
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error for an unrecognized style")
	}
}

func TestValidateRejectsEmptyRooms(t *testing.T) {
	b := validBrief()
	b.Rooms = nil
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error when no rooms are requested")
	}
}

func TestValidateRejectsNegativeLotDimensions(t *testing.T) {
	b := validBrief()
	b.Lot = &LotConstraints{LotWidthFt: -10, LotDepthFt: 40}
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error for a negative lot width")
	}
}

func TestLoadBriefFromBytesRoundTrip(t *testing.T) {
	b := validBrief()
	data, err := b.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}
	got, err := LoadBriefFromBytes(data)
	if err != nil {
		t.Fatalf("LoadBriefFromBytes() error = %v", err)
	}
	if got.TargetAreaSqFt != b.TargetAreaSqFt || got.Stories != b.Stories || got.Style != b.Style {
		t.Fatalf("round-tripped brief = %+v, want %+v", got, b)
	}
	if len(got.Rooms) != len(b.Rooms) {
		t.Fatalf("round-tripped rooms = %d, want %d", len(got.Rooms), len(b.Rooms))
	}
}

func TestLoadBriefFromBytesRejectsInvalidYAML(t *testing.T) {
	if _, err := LoadBriefFromBytes([]byte("not: [valid")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestHashIsDeterministicAndSensitive(t *testing.T) {
	a := validBrief()
	b := validBrief()
	if string(a.Hash()) != string(b.Hash()) {
		t.Fatal("expected identical briefs to hash identically")
	}
	b.TargetAreaSqFt = 1900
	if string(a.Hash()) == string(b.Hash()) {
		t.Fatal("expected differing briefs to hash differently")
	}
}

func TestValidateErrorMentionsField(t *testing.T) {
	b := validBrief()
	b.Stories = 5
	err := b.Validate()
	if err == nil || !strings.Contains(err.Error(), "stories") {
		t.Fatalf("expected error to mention 'stories', got %v", err)
	}
}
