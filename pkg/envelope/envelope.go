// Package envelope implements stage 2 of the pipeline: deriving a
// buildable rectangle and per-floor footprint from a normalized brief
// (spec §4.2).
package envelope

import (
	"math"

	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
)

// Envelope is the building envelope (spec.md §3 "Building Envelope").
type Envelope struct {
	Buildable      geometry.Rect
	FloorRects     map[int]geometry.Rect
	TotalAreaSqFt  float64
	GridResolution int
}

const minBuildableSide = 10.0
const minFootprintSide = 12.0

// Compute derives the building envelope from a normalized brief
// (spec §4.2).
func Compute(nb *normalize.NormalizedBrief) Envelope {
	lot := nb.Lot

	buildableWidth := lot.LotWidthFt - 2*lot.SetbackSideFt
	if buildableWidth < minBuildableSide {
		buildableWidth = minBuildableSide
	}
	buildableDepth := lot.LotDepthFt - lot.SetbackFrontFt - lot.SetbackRearFt
	if buildableDepth < minBuildableSide {
		buildableDepth = minBuildableSide
	}

	buildable := geometry.Rect{
		X:     lot.SetbackSideFt,
		Y:     lot.SetbackFrontFt,
		Width: buildableWidth,
		Depth: buildableDepth,
	}

	stories := nb.Stories
	if stories < 1 {
		stories = 1
	}

	var sumRoomTarget float64
	for _, r := range nb.Rooms {
		sumRoomTarget += r.TargetAreaSqFt
	}

	inflation := 1.08
	if len(nb.Rooms) >= 10 {
		inflation = 1.12
	}

	perFloorTarget := math.Max(nb.TargetAreaSqFt/float64(stories),
		math.Max(sumRoomTarget/float64(stories), 100))
	perFloorTarget *= inflation

	buildableRatio := buildableWidth / buildableDepth

	footprintWidth := math.Round(math.Sqrt(perFloorTarget * buildableRatio))
	if footprintWidth < minFootprintSide {
		footprintWidth = minFootprintSide
	}
	if footprintWidth > buildableWidth {
		footprintWidth = buildableWidth
	}

	footprintDepth := math.Ceil(perFloorTarget / footprintWidth)
	if footprintDepth < minFootprintSide {
		footprintDepth = minFootprintSide
	}
	if footprintDepth > buildableDepth {
		footprintDepth = buildableDepth
	}

	// If area still falls short of target, grow the dimension with more
	// remaining slack against the buildable rect first.
	for footprintWidth*footprintDepth < perFloorTarget {
		widthSlack := buildableWidth - footprintWidth
		depthSlack := buildableDepth - footprintDepth
		if widthSlack <= 0 && depthSlack <= 0 {
			break
		}
		if widthSlack >= depthSlack {
			footprintWidth = math.Min(buildableWidth, footprintWidth+1)
		} else {
			footprintDepth = math.Min(buildableDepth, footprintDepth+1)
		}
	}

	offsetX := buildable.X + math.Round((buildableWidth-footprintWidth)/2)
	offsetY := buildable.Y + math.Round((buildableDepth-footprintDepth)/2)

	footprint := geometry.Rect{
		X:     offsetX,
		Y:     offsetY,
		Width: footprintWidth,
		Depth: footprintDepth,
	}

	floorRects := map[int]geometry.Rect{1: footprint}
	if stories == 2 {
		floorRects[2] = footprint
	}

	return Envelope{
		Buildable:      buildable,
		FloorRects:     floorRects,
		TotalAreaSqFt:  footprintWidth * footprintDepth * float64(stories),
		GridResolution: 1,
	}
}
