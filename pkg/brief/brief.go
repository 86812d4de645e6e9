// Package brief defines the Design Brief input to the pipeline: target
// area, story count, style, the ordered room program, and optional lot
// constraints. It supports YAML loading and validation in the same shape
// as the teacher's dungeon.Config.
package brief

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/archspan/floorplan/pkg/roomtypes"
)

// Style enumerates recognized architectural style tags.
type Style string

const (
	StyleRanch        Style = "ranch"
	StyleModern       Style = "modern"
	StyleTraditional  Style = "traditional"
	StyleCraftsman    Style = "craftsman"
	StyleFarmhouse    Style = "farmhouse"
	StyleContemporary Style = "contemporary"
)

var validStyles = map[Style]bool{
	StyleRanch:        true,
	StyleModern:       true,
	StyleTraditional:  true,
	StyleCraftsman:    true,
	StyleFarmhouse:    true,
	StyleContemporary: true,
}

// Direction mirrors roomtypes.Direction for brief-level fields that must
// serialize to YAML without importing placement geometry.
type Direction = roomtypes.Direction

// AdjacencyHint names a room-type relationship requested by the brief
// author, resolved into hard/soft tables during normalization.
type AdjacencyHint struct {
	AdjacentTo []roomtypes.Type `yaml:"adjacentTo,omitempty" json:"adjacentTo,omitempty"`
	AwayFrom   []roomtypes.Type `yaml:"awayFrom,omitempty" json:"awayFrom,omitempty"`
}

// RoomRequirement is a single entry in the brief's room program.
type RoomRequirement struct {
	Type          roomtypes.Type `yaml:"type" json:"type"`
	Label         string         `yaml:"label,omitempty" json:"label,omitempty"`
	MinAreaSqFt   float64        `yaml:"minAreaSqFt,omitempty" json:"minAreaSqFt,omitempty"`
	TargetAreaSqFt float64       `yaml:"targetAreaSqFt,omitempty" json:"targetAreaSqFt,omitempty"`
	MustHave      bool           `yaml:"mustHave" json:"mustHave"`
	Adjacency     AdjacencyHint  `yaml:"adjacency,omitempty" json:"adjacency,omitempty"`
	NeedsExterior bool           `yaml:"needsExterior,omitempty" json:"needsExterior,omitempty"`
	NeedsPlumbing bool           `yaml:"needsPlumbing,omitempty" json:"needsPlumbing,omitempty"`
	FloorPin      int            `yaml:"floorPin,omitempty" json:"floorPin,omitempty"`
}

// LotConstraints describes the buildable parcel, if the brief pins one.
type LotConstraints struct {
	LotWidthFt      float64                `yaml:"lotWidthFt" json:"lotWidthFt"`
	LotDepthFt      float64                `yaml:"lotDepthFt" json:"lotDepthFt"`
	SetbackFrontFt  float64                `yaml:"setbackFrontFt" json:"setbackFrontFt"`
	SetbackRearFt   float64                `yaml:"setbackRearFt" json:"setbackRearFt"`
	SetbackSideFt   float64                `yaml:"setbackSideFt" json:"setbackSideFt"`
	EntryFacing     roomtypes.Direction    `yaml:"entryFacing" json:"entryFacing"`
	GaragePosition  string                 `yaml:"garagePosition,omitempty" json:"garagePosition,omitempty"`
}

// Brief is the top-level pipeline input (spec.md §3 "Design Brief").
type Brief struct {
	TargetAreaSqFt float64           `yaml:"targetAreaSqFt" json:"targetAreaSqFt"`
	Stories        int               `yaml:"stories" json:"stories"`
	Style          Style             `yaml:"style" json:"style"`
	Rooms          []RoomRequirement `yaml:"rooms" json:"rooms"`
	Lot            *LotConstraints   `yaml:"lot,omitempty" json:"lot,omitempty"`
}

// LoadBrief reads and validates a YAML brief file.
func LoadBrief(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading brief file: %w", err)
	}
	return LoadBriefFromBytes(data)
}

// LoadBriefFromBytes parses a YAML brief from a byte slice.
func LoadBriefFromBytes(data []byte) (*Brief, error) {
	var b Brief
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &b, nil
}

// Validate checks the brief's top-level constraints (spec.md §3: target
// area 800-5000, story count 1 or 2, recognized style tag).
func (b *Brief) Validate() error {
	if b.TargetAreaSqFt < 800 || b.TargetAreaSqFt > 5000 {
		return fmt.Errorf("targetAreaSqFt must be in range [800, 5000], got %f", b.TargetAreaSqFt)
	}
	if b.Stories != 1 && b.Stories != 2 {
		return fmt.Errorf("stories must be 1 or 2, got %d", b.Stories)
	}
	if !validStyles[b.Style] {
		return fmt.Errorf("unrecognized style %q", b.Style)
	}
	if len(b.Rooms) == 0 {
		return errors.New("rooms must contain at least one entry")
	}
	if b.Lot != nil {
		if err := b.Lot.Validate(); err != nil {
			return fmt.Errorf("lot: %w", err)
		}
	}
	return nil
}

// Validate checks LotConstraints constraints; values below the minimums
// are clamped by the normalizer rather than rejected here, so this only
// rejects structurally invalid (negative) values.
func (l *LotConstraints) Validate() error {
	if l.LotWidthFt < 0 || l.LotDepthFt < 0 {
		return errors.New("lot dimensions must be non-negative")
	}
	if l.SetbackFrontFt < 0 || l.SetbackRearFt < 0 || l.SetbackSideFt < 0 {
		return errors.New("setbacks must be non-negative")
	}
	return nil
}

// ToYAML serializes the brief to canonical YAML bytes.
func (b *Brief) ToYAML() ([]byte, error) {
	return yaml.Marshal(b)
}

// Hash computes a deterministic SHA-256 digest of the brief's canonical
// YAML encoding. Used to derive a run identifier for provenance
// bookkeeping (no randomness is seeded from it; there is none to seed).
func (b *Brief) Hash() []byte {
	data, err := b.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("%v", b)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
