// Package placement implements stage 4 of the pipeline, the hardest
// subsystem: greedy grid placement of axis-aligned room rectangles onto
// a per-floor 1-foot occupancy grid (spec §4.4). Grounded on the
// teacher's pkg/embedding (Pose/Layout geometry) and pkg/carving
// (Stamper-style rectangle-fitting) packages, generalized from dungeon
// tile stamping to feet-denominated room footprints with a richer
// placement-scoring function.
package placement

import (
	"math"
	"sort"

	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
	"github.com/archspan/floorplan/pkg/zoning"
)

// Order selects the room processing order for placement.
type Order int

const (
	OrderDefault Order = iota // largest target area first
	OrderPriority
	OrderZone
	OrderReverse
)

// Options controls placement behavior (spec §4.4).
type Options struct {
	Order     Order
	WidthBias int
}

var zonePriorityRank = map[roomtypes.Zone]int{
	roomtypes.ZoneGarage:      0,
	roomtypes.ZoneSocial:      1,
	roomtypes.ZonePrivate:     2,
	roomtypes.ZoneService:     3,
	roomtypes.ZoneCirculation: 4,
	roomtypes.ZoneExterior:    5,
}

var scaleFactors = []float64{1.0, 0.95, 0.90, 0.85, 0.80, 0.75}

type candidate struct {
	width, depth float64
	rotated      bool
}

type occupancyGrid struct {
	originX, originY int
	width, depth     int
	cells            []bool
}

func newOccupancyGrid(footprint geometry.Rect) *occupancyGrid {
	w := int(math.Round(footprint.Width))
	d := int(math.Round(footprint.Depth))
	if w < 0 {
		w = 0
	}
	if d < 0 {
		d = 0
	}
	return &occupancyGrid{
		originX: int(math.Round(footprint.X)),
		originY: int(math.Round(footprint.Y)),
		width:   w,
		depth:   d,
		cells:   make([]bool, w*d),
	}
}

func (g *occupancyGrid) free(gx, gy, w, d int) bool {
	if gx < 0 || gy < 0 || gx+w > g.width || gy+d > g.depth {
		return false
	}
	for row := gy; row < gy+d; row++ {
		base := row * g.width
		for col := gx; col < gx+w; col++ {
			if g.cells[base+col] {
				return false
			}
		}
	}
	return true
}

func (g *occupancyGrid) occupy(gx, gy, w, d int) {
	for row := gy; row < gy+d; row++ {
		base := row * g.width
		for col := gx; col < gx+w; col++ {
			g.cells[base+col] = true
		}
	}
}

// PlaceRooms implements stage 4 (spec §4.4).
func PlaceRooms(z zoning.ZonedPlan, opts Options) plan.PlacedPlan {
	grids := make(map[int]*occupancyGrid)
	footprints := make(map[int]geometry.Rect)
	for floor, rect := range z.Envelope.FloorRects {
		grids[floor] = newOccupancyGrid(rect)
		footprints[floor] = rect
	}

	order := orderedRooms(z.Rooms, opts.Order)

	placed := make([]plan.PlacedRoom, 0, len(z.Rooms))
	var unplaced []string

	for _, room := range order {
		footprint, ok := footprints[room.Floor]
		if !ok {
			unplaced = append(unplaced, room.ID)
			continue
		}
		grid := grids[room.Floor]
		anchor := z.FloorAnchors[room.Floor][room.Zone]

		samefloorPlaced := placedOnFloor(placed, room.Floor)

		best, bestScore, found := bestPlacement(room, footprint, grid, anchor, samefloorPlaced, opts)
		if !found {
			unplaced = append(unplaced, room.ID)
			continue
		}
		_ = bestScore

		gx := int(math.Round(best.X - footprint.X))
		gy := int(math.Round(best.Y - footprint.Y))
		grid.occupy(gx, gy, int(math.Round(best.Width)), int(math.Round(best.Depth)))

		pr := plan.PlacedRoom{
			NormalizedRoom: room,
			X:              best.X,
			Y:              best.Y,
			ActualWidthFt:  best.Width,
			ActualDepthFt:  best.Depth,
			SqFt:           best.Width * best.Depth,
			Rotated:        best.rotatedFlag,
			ExteriorWalls:  ExteriorWallsForRect(best.Rect(), footprint),
		}
		placed = append(placed, pr)
	}

	computeNeighbors(placed)

	return plan.PlacedPlan{
		Normalized:      z.Brief,
		Envelope:        z.Envelope,
		Rooms:           placed,
		UnplacedRoomIDs: unplaced,
	}
}

func orderedRooms(rooms []normalize.NormalizedRoom, order Order) []normalize.NormalizedRoom {
	out := append([]normalize.NormalizedRoom(nil), rooms...)
	switch order {
	case OrderPriority:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	case OrderZone:
		sort.SliceStable(out, func(i, j int) bool {
			return zonePriorityRank[out[i].Zone] < zonePriorityRank[out[j].Zone]
		})
	case OrderReverse:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TargetAreaSqFt < out[j].TargetAreaSqFt })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TargetAreaSqFt > out[j].TargetAreaSqFt })
	}
	return out
}

func placedOnFloor(placed []plan.PlacedRoom, floor int) []plan.PlacedRoom {
	out := make([]plan.PlacedRoom, 0, len(placed))
	for _, p := range placed {
		if p.Floor == floor {
			out = append(out, p)
		}
	}
	return out
}

type placementResult struct {
	geometry.Rect
	rotatedFlag bool
}

func bestPlacement(room normalize.NormalizedRoom, footprint geometry.Rect, grid *occupancyGrid, anchor geometry.Point, existing []plan.PlacedRoom, opts Options) (placementResult, float64, bool) {
	candidates := candidatesFor(room, opts.WidthBias)

	var best placementResult
	bestScore := math.Inf(-1)
	found := false

	for _, c := range candidates {
		w := int(math.Round(c.width))
		d := int(math.Round(c.depth))
		if w <= 0 || d <= 0 {
			continue
		}
		for gy := 0; gy+d <= grid.depth; gy++ {
			for gx := 0; gx+w <= grid.width; gx++ {
				if !grid.free(gx, gy, w, d) {
					continue
				}
				rect := geometry.Rect{
					X:     footprint.X + float64(gx),
					Y:     footprint.Y + float64(gy),
					Width: c.width,
					Depth: c.depth,
				}
				score := scoreCandidate(room, rect, footprint, anchor, existing)
				if score > bestScore {
					bestScore = score
					best = placementResult{Rect: rect, rotatedFlag: c.rotated}
					found = true
				}
			}
		}
	}

	return best, bestScore, found
}

func candidatesFor(room normalize.NormalizedRoom, widthBias int) []candidate {
	seen := make(map[[2]int]bool)
	var out []candidate

	targetArea := room.TargetAreaSqFt
	targetWidth := room.WidthFt
	minArea := room.MinAreaSqFt

	minWidth := roomtypes.Lookup(room.Type).MinWidthFt

	for _, scale := range scaleFactors {
		scaledArea := targetArea * scale
		width := math.Max(minWidth, math.Round(targetWidth+float64(widthBias)*scale))
		if width <= 0 {
			continue
		}
		depth := math.Ceil(scaledArea / width)

		if width*depth < minArea {
			continue
		}
		addCandidate(&out, seen, width, depth, false)
		addCandidate(&out, seen, depth, width, true)
	}

	return out
}

func addCandidate(out *[]candidate, seen map[[2]int]bool, w, d float64, rotated bool) {
	key := [2]int{int(math.Round(w)), int(math.Round(d))}
	if seen[key] {
		return
	}
	seen[key] = true
	*out = append(*out, candidate{width: w, depth: d, rotated: rotated})
}

func scoreCandidate(room normalize.NormalizedRoom, rect, footprint geometry.Rect, anchor geometry.Point, existing []plan.PlacedRoom) float64 {
	var score float64
	center := rect.Center()

	score += math.Max(0, 220-geometry.ManhattanDistance(center, anchor)*8)

	touches := touchedEdges(rect, footprint)
	if room.NeedsExterior {
		if len(touches) > 0 {
			score += 260
		} else {
			score -= 400
		}
	} else {
		score += float64(len(touches)) * 8
	}

	for _, other := range existing {
		shares := geometry.SharesEdge(rect, other.Rect())
		manhattan := geometry.ManhattanDistance(center, other.Rect().Center())
		required := containsType(room.AdjacentTo, other.Type)
		away := containsType(room.AwayFrom, other.Type)

		if required {
			if shares {
				score += 140
			} else {
				score += math.Max(0, 40-manhattan*3)
			}
		} else if shares {
			score += 12
		}

		if away {
			if shares {
				score -= 180
			} else {
				score -= math.Max(0, 50-manhattan*4)
			}
		}

		if other.Zone == room.Zone {
			score += math.Max(0, 30-manhattan*2)
		}
	}

	candidateArea := rect.Area()
	score -= 60 * math.Abs(candidateArea-room.TargetAreaSqFt) / room.TargetAreaSqFt

	return score
}

func touchedEdges(rect, footprint geometry.Rect) []roomtypes.Direction {
	var out []roomtypes.Direction
	if rect.MinX() == footprint.MinX() {
		out = append(out, roomtypes.West)
	}
	if rect.MaxX() == footprint.MaxX() {
		out = append(out, roomtypes.East)
	}
	if rect.MinY() == footprint.MinY() {
		out = append(out, roomtypes.North)
	}
	if rect.MaxY() == footprint.MaxY() {
		out = append(out, roomtypes.South)
	}
	return out
}

// ExteriorWallsForRect reports which floor edges a placed rectangle
// touches. Shared by both the initial placement pass and the variation
// mirroring step so mirrored exterior-wall sets are always re-derived
// from geometry rather than swapped by direction name.
func ExteriorWallsForRect(rect, footprint geometry.Rect) []roomtypes.Direction {
	return touchedEdges(rect, footprint)
}

func containsType(list []roomtypes.Type, t roomtypes.Type) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

func computeNeighbors(placed []plan.PlacedRoom) {
	for i := range placed {
		var neighbors []string
		for j := range placed {
			if i == j || placed[i].Floor != placed[j].Floor {
				continue
			}
			if geometry.SharesEdge(placed[i].Rect(), placed[j].Rect()) {
				neighbors = append(neighbors, placed[j].ID)
			}
		}
		placed[i].NeighborIDs = neighbors
	}
}
