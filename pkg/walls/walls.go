// Package walls implements stage 7 of the pipeline: deriving exterior
// walls, interior shared walls, and wet-wall plumbing groupings from a
// placed plan (spec §4.7). Grounded on the teacher's pkg/carving wall-
// generation pass (8-neighbor floor-to-wall expansion over a tile grid),
// adapted from tile-grid wall inference to direct rectangle-edge
// derivation since floor-plan rooms are already rectangles, not carved
// tiles.
package walls

import (
	"fmt"
	"math"

	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

const (
	exteriorThicknessIn = 6.0
	interiorThicknessIn = 4.0
)

// AnalyzeWalls implements stage 7 (spec §4.7).
func AnalyzeWalls(p plan.PlacedPlan) plan.WallAnalysis {
	var walls []plan.Wall
	var totalExterior, totalInterior float64

	for _, r := range p.Rooms {
		for _, w := range edgeWalls(r) {
			walls = append(walls, w)
			length := wallLength(r, w.Direction)
			if w.Exterior {
				totalExterior += length
			} else {
				totalInterior += length
			}
		}
	}

	var shared []plan.SharedWall
	var wet []plan.SharedWall
	for i := 0; i < len(p.Rooms); i++ {
		for j := i + 1; j < len(p.Rooms); j++ {
			a, b := p.Rooms[i], p.Rooms[j]
			if a.Floor != b.Floor {
				continue
			}
			length, orientation, ok := sharedWallOverlap(a.Rect(), b.Rect())
			if !ok {
				continue
			}
			sw := plan.SharedWall{RoomAID: a.ID, RoomBID: b.ID, OverlapLengthFt: length, Orientation: orientation}
			shared = append(shared, sw)
			if a.NeedsPlumbing && b.NeedsPlumbing {
				wet = append(wet, sw)
			}
		}
	}

	groups := plumbingGroups(p.Rooms, wet)

	return plan.WallAnalysis{
		Walls:                 walls,
		SharedWalls:           shared,
		WetWalls:              wet,
		TotalExteriorLengthFt: totalExterior,
		TotalInteriorLengthFt: totalInterior,
		PlumbingGroups:        groups,
	}
}

func edgeWalls(r plan.PlacedRoom) []plan.Wall {
	rect := r.Rect()
	dirs := []roomtypes.Direction{roomtypes.North, roomtypes.South, roomtypes.East, roomtypes.West}
	out := make([]plan.Wall, 0, 4)
	for _, d := range dirs {
		exterior := r.HasExteriorWall(d)
		thickness := interiorThicknessIn
		if exterior {
			thickness = exteriorThicknessIn
		}
		x0, y0, x1, y1 := wallSegment(rect, d)
		out = append(out, plan.Wall{
			ID:          fmt.Sprintf("%s-%s", r.ID, d.String()),
			RoomID:      r.ID,
			Direction:   d,
			ThicknessIn: thickness,
			Exterior:    exterior,
			LoadBearing: exterior,
			X0:          x0,
			Y0:          y0,
			X1:          x1,
			Y1:          y1,
		})
	}
	return out
}

func wallSegment(rect geometry.Rect, d roomtypes.Direction) (x0, y0, x1, y1 float64) {
	switch d {
	case roomtypes.North:
		return rect.MinX(), rect.MinY(), rect.MaxX(), rect.MinY()
	case roomtypes.South:
		return rect.MinX(), rect.MaxY(), rect.MaxX(), rect.MaxY()
	case roomtypes.West:
		return rect.MinX(), rect.MinY(), rect.MinX(), rect.MaxY()
	default: // East
		return rect.MaxX(), rect.MinY(), rect.MaxX(), rect.MaxY()
	}
}

func wallLength(r plan.PlacedRoom, d roomtypes.Direction) float64 {
	switch d {
	case roomtypes.North, roomtypes.South:
		return r.ActualWidthFt
	default:
		return r.ActualDepthFt
	}
}

// sharedWallOverlap reports the overlap length and orientation of a
// shared edge between two rectangles, or ok=false if they don't share one.
func sharedWallOverlap(a, b geometry.Rect) (length float64, orientation string, ok bool) {
	xTouch := a.MaxX() == b.MinX() || b.MaxX() == a.MinX()
	yTouch := a.MaxY() == b.MinY() || b.MaxY() == a.MinY()

	if xTouch {
		overlap := math.Min(a.MaxY(), b.MaxY()) - math.Max(a.MinY(), b.MinY())
		if overlap > 0 {
			return overlap, "vertical", true
		}
	}
	if yTouch {
		overlap := math.Min(a.MaxX(), b.MaxX()) - math.Max(a.MinX(), b.MinX())
		if overlap > 0 {
			return overlap, "horizontal", true
		}
	}
	return 0, "", false
}

func plumbingGroups(rooms []plan.PlacedRoom, wet []plan.SharedWall) [][]string {
	adjacency := make(map[string][]string)
	plumbingIDs := make(map[string]bool)
	for _, r := range rooms {
		if r.NeedsPlumbing {
			plumbingIDs[r.ID] = true
			adjacency[r.ID] = nil
		}
	}
	for _, w := range wet {
		adjacency[w.RoomAID] = append(adjacency[w.RoomAID], w.RoomBID)
		adjacency[w.RoomBID] = append(adjacency[w.RoomBID], w.RoomAID)
	}

	visited := make(map[string]bool)
	var groups [][]string
	for id := range plumbingIDs {
		if visited[id] {
			continue
		}
		var group []string
		queue := []string{id}
		visited[id] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			group = append(group, cur)
			for _, n := range adjacency[cur] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}
