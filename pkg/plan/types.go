// Package plan holds the data types shared across every stage downstream
// of placement — PlacedRoom, PlacedPlan, Door, WindowPlacement,
// CirculationResult, WallAnalysis, and PlanScore (spec §3). Centralizing
// them here lets placement, circulation, windows, walls, scoring, and
// variations depend on a common vocabulary without importing each other,
// mirroring how the teacher's embedding/graph packages each own one part
// of a shared Artifact rather than a single monolithic type.
package plan

import (
	"github.com/archspan/floorplan/pkg/envelope"
	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

// PlacedRoom is a NormalizedRoom with a resolved position and footprint
// (spec.md §3 "Placed Room").
type PlacedRoom struct {
	normalize.NormalizedRoom
	X             float64
	Y             float64
	ActualWidthFt float64
	ActualDepthFt float64
	SqFt          float64
	Rotated       bool
	ExteriorWalls []roomtypes.Direction
	NeighborIDs   []string
}

// Rect returns the room's placed rectangle.
func (p PlacedRoom) Rect() geometry.Rect {
	return geometry.Rect{X: p.X, Y: p.Y, Width: p.ActualWidthFt, Depth: p.ActualDepthFt}
}

// HasExteriorWall reports whether the room touches the given direction.
func (p PlacedRoom) HasExteriorWall(d roomtypes.Direction) bool {
	for _, x := range p.ExteriorWalls {
		if x == d {
			return true
		}
	}
	return false
}

// Door connects two rooms with a door opening (spec.md §3 "Door").
type Door struct {
	ID           string
	WallID       string
	Position     float64 // normalized 0-1 fraction along the wall
	ClearWidthFt float64
	Type         string // standard, double, sliding, pocket, exterior
	RoomAID      string
	RoomBID      string
}

// Door type constants.
const (
	DoorStandard  = "standard"
	DoorDouble    = "double"
	DoorSliding   = "sliding"
	DoorPocket    = "pocket"
	DoorExterior  = "exterior"
)

// WindowPlacement is a single window opening (spec.md §3 "Window Placement").
type WindowPlacement struct {
	ID            string
	WallID        string
	RoomID        string
	PositionFt    float64 // absolute feet from the wall's origin corner
	WidthFt       float64
	HeightFt      float64
	SillHeightFt  float64
	Type          string // standard, picture, bay, clerestory
	Floor         int
	WallDirection roomtypes.Direction
}

// Window type constants.
const (
	WindowStandard   = "standard"
	WindowPicture    = "picture"
	WindowBay        = "bay"
	WindowClerestory = "clerestory"
)

// CirculationResult records reachability from the entry room (spec §4.5).
type CirculationResult struct {
	EntryRoomID      string
	IsFullyConnected bool
	Visited          []string
	MainPath         []string
	DeadEnds         []string
	HallwayPercent   float64
	Warnings         []string
}

// PlacedPlan is the output of placement and every later geometric stage
// (spec.md §3 "Placed Plan").
type PlacedPlan struct {
	Normalized      *normalize.NormalizedBrief
	Envelope        envelope.Envelope
	Rooms           []PlacedRoom
	Doors           []Door
	Windows         []WindowPlacement
	Circulation     CirculationResult
	UnplacedRoomIDs []string
	Strategy        string

	// RunID is a SHA-256 digest of the normalized brief plus strategy name,
	// mirroring the teacher's Config.Hash()/stage-seed derivation
	// (pkg/rng.NewRNG) even though this pipeline consumes no randomness —
	// the hash exists for reproducibility bookkeeping and cache-keying by
	// external collaborators (spec_full.md §4 "Run identifier & provenance
	// metadata"), not for seeding.
	RunID string

	// Debug is an optional slot external tooling may populate after running
	// the compliance engine, without pkg/compliance depending on pkg/plan's
	// producers (spec_full.md §4 "Debug artifact bundle").
	Debug *DebugArtifacts
}

// DebugArtifacts mirrors the teacher's dungeon.DebugArtifacts{Report: ...}.
type DebugArtifacts struct {
	ComplianceReport interface{}
}

// RoomByID returns the room with the given id, and whether it was found.
func (p *PlacedPlan) RoomByID(id string) (*PlacedRoom, bool) {
	for i := range p.Rooms {
		if p.Rooms[i].ID == id {
			return &p.Rooms[i], true
		}
	}
	return nil, false
}

// Wall is a single edge-wall segment of a placed room (spec §4.7).
type Wall struct {
	ID          string
	RoomID      string
	Direction   roomtypes.Direction
	ThicknessIn float64
	Exterior    bool
	LoadBearing bool
	X0, Y0      float64
	X1, Y1      float64
}

// SharedWall is a shared-edge segment between two rooms (spec §4.7).
type SharedWall struct {
	RoomAID         string
	RoomBID         string
	OverlapLengthFt float64
	Orientation     string // "horizontal" or "vertical"
}

// WallAnalysis is the output of wall derivation (spec.md §3 "Wall Analysis").
type WallAnalysis struct {
	Walls                  []Wall
	SharedWalls            []SharedWall
	WetWalls               []SharedWall
	TotalExteriorLengthFt  float64
	TotalInteriorLengthFt  float64
	PlumbingGroups         [][]string
}

// PlanScore is the output of scoring (spec.md §3 "Plan Score").
type PlanScore struct {
	AdjacencySatisfaction float64
	ZoneCohesion          float64
	NaturalLight          float64
	PlumbingEfficiency    float64
	CirculationQuality    float64
	SpaceUtilization      float64
	PrivacyGradient       float64
	OverallBuildability   float64
	Overall               float64
	SqftAccuracy          float64
}
