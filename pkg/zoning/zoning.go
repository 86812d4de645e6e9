// Package zoning implements stage 3 of the pipeline: partitioning each
// floor's footprint into social / private / service / garage /
// circulation / exterior regions and assigning rooms to floors (spec
// §4.3).
package zoning

import (
	"github.com/archspan/floorplan/pkg/envelope"
	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

// Options controls the two zoning perturbations used by variation
// generation (spec §4.3, §4.9).
type Options struct {
	SwapSocialPrivate bool
	RotateEntry       bool
}

// ZonedPlan is the output of zone assignment: the (possibly floor-
// reassigned) room set plus per-floor zone rectangles and anchors.
type ZonedPlan struct {
	Brief        *normalize.NormalizedBrief
	Rooms        []normalize.NormalizedRoom
	Envelope     envelope.Envelope
	FloorZones   map[int]map[roomtypes.Zone]geometry.Rect
	FloorAnchors map[int]map[roomtypes.Zone]geometry.Point
	EntryFacing  roomtypes.Direction
}

const (
	frontFraction     = 0.46
	serviceFraction   = 0.24
	garageWidthFrac   = 0.35
	garageDepthFrac   = 0.42
	circulationFrac   = 0.16
	exteriorStripFrac = 0.12
)

// AssignZones implements stage 3 (spec §4.3).
func AssignZones(nb *normalize.NormalizedBrief, env envelope.Envelope, opts Options) ZonedPlan {
	entryFacing := nb.Lot.EntryFacing
	if opts.RotateEntry {
		entryFacing = entryFacing.Opposite()
	}

	floorZones := make(map[int]map[roomtypes.Zone]geometry.Rect)
	floorAnchors := make(map[int]map[roomtypes.Zone]geometry.Point)

	for floor, footprint := range env.FloorRects {
		zones := zonesForFootprint(footprint, entryFacing, opts.SwapSocialPrivate)
		anchors := make(map[roomtypes.Zone]geometry.Point, len(zones))
		for z, r := range zones {
			anchors[z] = r.Center()
		}
		floorZones[floor] = zones
		floorAnchors[floor] = anchors
	}

	rooms := append([]normalize.NormalizedRoom(nil), nb.Rooms...)
	assignFloors(rooms, nb.Stories)

	return ZonedPlan{
		Brief:        nb,
		Rooms:        rooms,
		Envelope:     env,
		FloorZones:   floorZones,
		FloorAnchors: floorAnchors,
		EntryFacing:  entryFacing,
	}
}

func horizontalSplit(facing roomtypes.Direction) bool {
	return facing == roomtypes.East || facing == roomtypes.West
}

func zonesForFootprint(footprint geometry.Rect, entryFacing roomtypes.Direction, swap bool) map[roomtypes.Zone]geometry.Rect {
	front, back := splitFrontBack(footprint, entryFacing)

	socialRect, privateRect := front, back
	if swap {
		socialRect, privateRect = back, front
	}

	serviceRect := geometry.Rect{
		X:     footprint.MaxX() - footprint.Width*serviceFraction,
		Y:     footprint.Y,
		Width: footprint.Width * serviceFraction,
		Depth: footprint.Depth,
	}

	garageRect := geometry.Rect{
		X:     footprint.X,
		Y:     footprint.Y,
		Width: footprint.Width * garageWidthFrac,
		Depth: footprint.Depth * garageDepthFrac,
	}

	circWidth := footprint.Width * circulationFrac
	circulationRect := geometry.Rect{
		X:     footprint.X + (footprint.Width-circWidth)/2,
		Y:     footprint.Y,
		Width: circWidth,
		Depth: footprint.Depth,
	}

	exteriorRect := exteriorStrip(footprint, entryFacing)

	return map[roomtypes.Zone]geometry.Rect{
		roomtypes.ZoneSocial:      socialRect,
		roomtypes.ZonePrivate:     privateRect,
		roomtypes.ZoneService:     serviceRect,
		roomtypes.ZoneGarage:      garageRect,
		roomtypes.ZoneCirculation: circulationRect,
		roomtypes.ZoneExterior:    exteriorRect,
	}
}

// splitFrontBack splits the footprint into a front strip (adjacent to the
// entry-facing edge, ≈46% of the split axis) and a back strip (≈54%).
func splitFrontBack(footprint geometry.Rect, entryFacing roomtypes.Direction) (front, back geometry.Rect) {
	if horizontalSplit(entryFacing) {
		frontWidth := footprint.Width * frontFraction
		backWidth := footprint.Width - frontWidth
		if entryFacing == roomtypes.West {
			front = geometry.Rect{X: footprint.X, Y: footprint.Y, Width: frontWidth, Depth: footprint.Depth}
			back = geometry.Rect{X: footprint.X + frontWidth, Y: footprint.Y, Width: backWidth, Depth: footprint.Depth}
		} else {
			back = geometry.Rect{X: footprint.X, Y: footprint.Y, Width: backWidth, Depth: footprint.Depth}
			front = geometry.Rect{X: footprint.X + backWidth, Y: footprint.Y, Width: frontWidth, Depth: footprint.Depth}
		}
		return front, back
	}

	frontDepth := footprint.Depth * frontFraction
	backDepth := footprint.Depth - frontDepth
	if entryFacing == roomtypes.North {
		front = geometry.Rect{X: footprint.X, Y: footprint.Y, Width: footprint.Width, Depth: frontDepth}
		back = geometry.Rect{X: footprint.X, Y: footprint.Y + frontDepth, Width: footprint.Width, Depth: backDepth}
	} else {
		back = geometry.Rect{X: footprint.X, Y: footprint.Y, Width: footprint.Width, Depth: backDepth}
		front = geometry.Rect{X: footprint.X, Y: footprint.Y + backDepth, Width: footprint.Width, Depth: frontDepth}
	}
	return front, back
}

// exteriorStrip returns a thin strip along the entry-facing edge, used as
// the anchor for exterior-zone rooms (porches, sunrooms pinned outdoors).
func exteriorStrip(footprint geometry.Rect, entryFacing roomtypes.Direction) geometry.Rect {
	switch entryFacing {
	case roomtypes.North:
		depth := footprint.Depth * exteriorStripFrac
		return geometry.Rect{X: footprint.X, Y: footprint.Y, Width: footprint.Width, Depth: depth}
	case roomtypes.South:
		depth := footprint.Depth * exteriorStripFrac
		return geometry.Rect{X: footprint.X, Y: footprint.MaxY() - depth, Width: footprint.Width, Depth: depth}
	case roomtypes.West:
		width := footprint.Width * exteriorStripFrac
		return geometry.Rect{X: footprint.X, Y: footprint.Y, Width: width, Depth: footprint.Depth}
	default: // East
		width := footprint.Width * exteriorStripFrac
		return geometry.Rect{X: footprint.MaxX() - width, Y: footprint.Y, Width: width, Depth: footprint.Depth}
	}
}

// assignFloors assigns unpinned rooms to a floor: when stories=2, private-
// zone rooms default to floor 2 and everything else to floor 1, with
// stairs always forced to floor 1 (spec §4.3 "Floor assignment").
func assignFloors(rooms []normalize.NormalizedRoom, stories int) {
	if stories != 2 {
		return
	}
	for i := range rooms {
		r := &rooms[i]
		if r.Type == roomtypes.Stairs {
			r.Floor = 1
			continue
		}
		if r.Floor != 0 {
			continue
		}
		if r.Zone == roomtypes.ZonePrivate {
			r.Floor = 2
		} else {
			r.Floor = 1
		}
	}
}
