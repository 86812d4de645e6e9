// Package persist is an external collaborator (spec.md §4.11
// "Persistence"): it serializes a PlacedPlan, PlanScore, and WallAnalysis
// as opaque YAML blobs plus an overall-score summary. Grounded on the
// teacher's dungeon.Config YAML load/save pattern (gopkg.in/yaml.v3),
// generalized from config persistence to generated-artifact persistence.
// It never mutates, and the core pipeline packages never import it.
package persist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/archspan/floorplan/pkg/plan"
)

// Bundle is the serialized unit persist writes and reads: a placed plan,
// its derived wall analysis, its score, and a flattened overall-score
// summary for quick indexing without decoding the full blob.
type Bundle struct {
	Plan          plan.PlacedPlan `yaml:"plan"`
	Walls         plan.WallAnalysis `yaml:"walls"`
	Score         plan.PlanScore  `yaml:"score"`
	OverallScore  float64         `yaml:"overallScore"`
}

// NewBundle constructs a Bundle from the three output structs, echoing
// Score.Overall into the top-level OverallScore summary field.
func NewBundle(p plan.PlacedPlan, wa plan.WallAnalysis, score plan.PlanScore) Bundle {
	return Bundle{Plan: p, Walls: wa, Score: score, OverallScore: score.Overall}
}

// ToYAML serializes the bundle to canonical YAML bytes.
func (b Bundle) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshaling bundle: %w", err)
	}
	return data, nil
}

// SaveToFile writes the bundle's YAML encoding to path.
func (b Bundle) SaveToFile(path string) error {
	data, err := b.ToYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing bundle file: %w", err)
	}
	return nil
}

// LoadBundle reads and decodes a Bundle previously written by SaveToFile.
func LoadBundle(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("reading bundle file: %w", err)
	}
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("parsing bundle YAML: %w", err)
	}
	return b, nil
}
