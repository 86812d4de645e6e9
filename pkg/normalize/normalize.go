// Package normalize implements stage 1 of the pipeline: expanding a
// design brief into a canonical room program ready for geometry (spec
// §4.1). It never fails; impossible programs produce warnings and shrink
// to minimums, mirroring the teacher's "soft failure" convention carried
// throughout dungeon.go.
package normalize

import (
	"fmt"
	"math"
	"sort"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

// NormalizedRoom is a brief.RoomRequirement augmented with resolved
// dimensions, assigned zone, priority, and merged adjacency constraints
// (spec.md §3 "Normalized Room").
type NormalizedRoom struct {
	ID             string
	Type           roomtypes.Type
	Label          string
	MinAreaSqFt    float64
	TargetAreaSqFt float64
	WidthFt        float64
	DepthFt        float64
	Zone           roomtypes.Zone
	Priority       float64
	MustHave       bool
	NeedsExterior  bool
	NeedsPlumbing  bool
	Floor          int
	AdjacentTo     []roomtypes.Type
	AwayFrom       []roomtypes.Type
}

// NormalizedBrief is the output of normalization: a canonical room
// program plus any warnings accumulated along the way.
type NormalizedBrief struct {
	Style          brief.Style
	Stories        int
	TargetAreaSqFt float64
	Lot            brief.LotConstraints
	Rooms          []NormalizedRoom
	Warnings       []string
}

type idCounter struct {
	counts map[roomtypes.Type]int
}

func newIDCounter() *idCounter {
	return &idCounter{counts: make(map[roomtypes.Type]int)}
}

func (c *idCounter) next(t roomtypes.Type) string {
	c.counts[t]++
	return fmt.Sprintf("%s-%d", t.String(), c.counts[t])
}

// Normalize expands a brief into a canonical normalized brief (spec §4.1).
func Normalize(b *brief.Brief) *NormalizedBrief {
	nb := &NormalizedBrief{
		Style:          b.Style,
		Stories:        b.Stories,
		TargetAreaSqFt: b.TargetAreaSqFt,
	}

	// Step 1: clamp/default lot constraints.
	nb.Lot = clampLot(b.Lot)

	ids := newIDCounter()

	// Step 2: resolve each requested room against its defaults.
	nb.Rooms = make([]NormalizedRoom, 0, len(b.Rooms)+4)
	for _, req := range b.Rooms {
		nb.Rooms = append(nb.Rooms, resolveRoom(req, ids))
	}

	// Step 3: union adjacency hints with hard/anti tables, drop conflicts.
	for i := range nb.Rooms {
		mergeAdjacency(&nb.Rooms[i], nb.Rooms)
	}

	// Step 4: inject implicit rooms.
	nb.injectImplicitRooms(ids)

	// Step 5: symmetrize adjacency across the full set (including injected rooms).
	symmetrize(nb.Rooms)

	// Step 6: force single-story floors.
	if nb.Stories == 1 {
		for i := range nb.Rooms {
			nb.Rooms[i].Floor = 1
		}
	}

	// Step 7: scale target areas to match the brief total.
	nb.scaleAreas()

	return nb
}

func clampLot(l *brief.LotConstraints) brief.LotConstraints {
	if l == nil {
		return brief.LotConstraints{
			LotWidthFt:     20,
			LotDepthFt:     20,
			EntryFacing:    roomtypes.South,
			SetbackFrontFt: 0,
			SetbackRearFt:  0,
			SetbackSideFt:  0,
		}
	}
	out := *l
	if out.LotWidthFt < 20 {
		out.LotWidthFt = 20
	}
	if out.LotDepthFt < 20 {
		out.LotDepthFt = 20
	}
	if out.SetbackFrontFt < 0 {
		out.SetbackFrontFt = 0
	}
	if out.SetbackRearFt < 0 {
		out.SetbackRearFt = 0
	}
	if out.SetbackSideFt < 0 {
		out.SetbackSideFt = 0
	}
	return out
}

func resolveRoom(req brief.RoomRequirement, ids *idCounter) NormalizedRoom {
	def := roomtypes.Lookup(req.Type)

	target := req.TargetAreaSqFt
	if target <= 0 {
		target = def.TargetAreaSqFt
	}
	minArea := req.MinAreaSqFt
	if minArea <= 0 {
		minArea = def.MinAreaSqFt
	}
	if target < minArea {
		target = minArea
	}

	width, depth := dimensionsForArea(target, def.MinWidthFt, def.MinDepthFt)

	needsExterior := req.NeedsExterior || def.NeedsExterior
	needsPlumbing := req.NeedsPlumbing || def.NeedsPlumbing

	priority := 50.0
	if req.MustHave {
		priority = 100.0
	}

	label := req.Label
	if label == "" {
		label = req.Type.String()
	}

	return NormalizedRoom{
		ID:             ids.next(req.Type),
		Type:           req.Type,
		Label:          label,
		MinAreaSqFt:    minArea,
		TargetAreaSqFt: target,
		WidthFt:        width,
		DepthFt:        depth,
		Zone:           def.Zone,
		Priority:       priority,
		MustHave:       req.MustHave,
		NeedsExterior:  needsExterior,
		NeedsPlumbing:  needsPlumbing,
		Floor:          req.FloorPin,
		AdjacentTo:     append([]roomtypes.Type(nil), req.Adjacency.AdjacentTo...),
		AwayFrom:       append([]roomtypes.Type(nil), req.Adjacency.AwayFrom...),
	}
}

// dimensionsForArea computes (width, depth) from a target area such that
// width approximates sqrt(area), clamped to the type's minimum width, and
// depth is the ceiling of area/width, clamped to the type's minimum depth.
func dimensionsForArea(area, minWidth, minDepth float64) (float64, float64) {
	width := math.Round(math.Sqrt(area))
	if width < minWidth {
		width = minWidth
	}
	if width <= 0 {
		width = minWidth
	}
	depth := math.Ceil(area / width)
	if depth < minDepth {
		depth = minDepth
	}
	return width, depth
}

func mergeAdjacency(r *NormalizedRoom, all []NormalizedRoom) {
	adj := make(map[roomtypes.Type]bool)
	away := make(map[roomtypes.Type]bool)
	for _, t := range r.AdjacentTo {
		adj[t] = true
	}
	for _, t := range r.AwayFrom {
		away[t] = true
	}

	// Union with hard adjacency table.
	for _, other := range all {
		if other.Type == r.Type {
			continue
		}
		if roomtypes.IsHardAdjacent(r.Type, other.Type) {
			adj[other.Type] = true
		}
		if w := roomtypes.AntiAdjacencyWeight(r.Type, other.Type); w > 0 {
			away[other.Type] = true
		}
	}

	// Remove self-references and resolve adjacent/away-from intersections
	// in favor of adjacency (explicit hints win over the anti table).
	delete(adj, r.Type)
	delete(away, r.Type)
	for t := range adj {
		delete(away, t)
	}

	r.AdjacentTo = sortedTypes(adj)
	r.AwayFrom = sortedTypes(away)
}

func sortedTypes(set map[roomtypes.Type]bool) []roomtypes.Type {
	out := make([]roomtypes.Type, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func symmetrize(rooms []NormalizedRoom) {
	byType := make(map[roomtypes.Type][]int)
	for i, r := range rooms {
		byType[r.Type] = append(byType[r.Type], i)
	}

	// Collect directed wants first so both directions observe the same
	// pre-symmetrization state.
	type want struct {
		from, to roomtypes.Type
	}
	var wants []want
	for _, r := range rooms {
		for _, t := range r.AdjacentTo {
			wants = append(wants, want{r.Type, t})
		}
	}

	for _, w := range wants {
		for _, idx := range byType[w.to] {
			r := &rooms[idx]
			if !containsType(r.AdjacentTo, w.from) {
				r.AdjacentTo = append(r.AdjacentTo, w.from)
			}
			r.AwayFrom = removeType(r.AwayFrom, w.from)
		}
	}
}

func containsType(list []roomtypes.Type, t roomtypes.Type) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

func removeType(list []roomtypes.Type, t roomtypes.Type) []roomtypes.Type {
	out := list[:0]
	for _, x := range list {
		if x != t {
			out = append(out, x)
		}
	}
	return out
}

func (nb *NormalizedBrief) injectImplicitRooms(ids *idCounter) {
	hasType := func(t roomtypes.Type) bool {
		for _, r := range nb.Rooms {
			if r.Type == t {
				return true
			}
		}
		return false
	}

	socialAnchor := func() roomtypes.Type {
		for _, t := range []roomtypes.Type{roomtypes.Living, roomtypes.Family, roomtypes.GreatRoom} {
			if hasType(t) {
				return t
			}
		}
		return roomtypes.Living
	}

	if !hasType(roomtypes.Foyer) {
		def := roomtypes.Lookup(roomtypes.Foyer)
		width, depth := dimensionsForArea(def.TargetAreaSqFt, def.MinWidthFt, def.MinDepthFt)
		nb.Rooms = append(nb.Rooms, NormalizedRoom{
			ID:             ids.next(roomtypes.Foyer),
			Type:           roomtypes.Foyer,
			Label:          roomtypes.Foyer.String(),
			MinAreaSqFt:    def.MinAreaSqFt,
			TargetAreaSqFt: def.TargetAreaSqFt,
			WidthFt:        width,
			DepthFt:        depth,
			Zone:           def.Zone,
			Priority:       150,
			NeedsExterior:  def.NeedsExterior,
			NeedsPlumbing:  def.NeedsPlumbing,
			Floor:          1,
			AdjacentTo:     []roomtypes.Type{socialAnchor()},
		})
	}

	if !hasType(roomtypes.Hallway) {
		def := roomtypes.Lookup(roomtypes.Hallway)
		width, depth := dimensionsForArea(def.TargetAreaSqFt, def.MinWidthFt, def.MinDepthFt)
		nb.Rooms = append(nb.Rooms, NormalizedRoom{
			ID:             ids.next(roomtypes.Hallway),
			Type:           roomtypes.Hallway,
			Label:          roomtypes.Hallway.String(),
			MinAreaSqFt:    def.MinAreaSqFt,
			TargetAreaSqFt: def.TargetAreaSqFt,
			WidthFt:        width,
			DepthFt:        depth,
			Zone:           def.Zone,
			Priority:       70,
			NeedsExterior:  def.NeedsExterior,
			NeedsPlumbing:  def.NeedsPlumbing,
			Floor:          1,
			AdjacentTo:     []roomtypes.Type{roomtypes.Foyer},
		})
	}

	// One walk-in closet per primary bedroom on the same floor.
	existingClosets := 0
	for _, r := range nb.Rooms {
		if r.Type == roomtypes.WalkInCloset {
			existingClosets++
		}
	}
	primaryBedFloors := make([]int, 0)
	for _, r := range nb.Rooms {
		if r.Type == roomtypes.PrimaryBed {
			primaryBedFloors = append(primaryBedFloors, r.Floor)
		}
	}
	for i := existingClosets; i < len(primaryBedFloors); i++ {
		def := roomtypes.Lookup(roomtypes.WalkInCloset)
		width, depth := dimensionsForArea(def.TargetAreaSqFt, def.MinWidthFt, def.MinDepthFt)
		nb.Rooms = append(nb.Rooms, NormalizedRoom{
			ID:             ids.next(roomtypes.WalkInCloset),
			Type:           roomtypes.WalkInCloset,
			Label:          roomtypes.WalkInCloset.String(),
			MinAreaSqFt:    def.MinAreaSqFt,
			TargetAreaSqFt: def.TargetAreaSqFt,
			WidthFt:        width,
			DepthFt:        depth,
			Zone:           def.Zone,
			Priority:       60,
			NeedsExterior:  def.NeedsExterior,
			NeedsPlumbing:  def.NeedsPlumbing,
			Floor:          primaryBedFloors[i],
			AdjacentTo:     []roomtypes.Type{roomtypes.PrimaryBed},
		})
	}

	if nb.Stories == 2 && !hasType(roomtypes.Stairs) {
		def := roomtypes.Lookup(roomtypes.Stairs)
		width, depth := dimensionsForArea(def.TargetAreaSqFt, def.MinWidthFt, def.MinDepthFt)
		nb.Rooms = append(nb.Rooms, NormalizedRoom{
			ID:             ids.next(roomtypes.Stairs),
			Type:           roomtypes.Stairs,
			Label:          roomtypes.Stairs.String(),
			MinAreaSqFt:    def.MinAreaSqFt,
			TargetAreaSqFt: def.TargetAreaSqFt,
			WidthFt:        width,
			DepthFt:        depth,
			Zone:           def.Zone,
			Priority:       80,
			NeedsExterior:  def.NeedsExterior,
			NeedsPlumbing:  def.NeedsPlumbing,
			Floor:          1,
		})
	}
}

// scaleAreas scales all target areas so their sum equals the brief's
// target area (spec §4.1 step 7). If the sum of minimums already exceeds
// the target, rooms are left at minimum and a warning is recorded.
func (nb *NormalizedBrief) scaleAreas() {
	var sumTarget, sumMin float64
	for _, r := range nb.Rooms {
		sumTarget += r.TargetAreaSqFt
		sumMin += r.MinAreaSqFt
	}

	if sumMin >= nb.TargetAreaSqFt {
		nb.Warnings = append(nb.Warnings, fmt.Sprintf(
			"sum of minimum room areas (%.1f sq ft) already meets or exceeds the brief target (%.1f sq ft); rooms held at minimum size",
			sumMin, nb.TargetAreaSqFt))
		for i := range nb.Rooms {
			r := &nb.Rooms[i]
			r.TargetAreaSqFt = r.MinAreaSqFt
			def := roomtypes.Lookup(r.Type)
			r.WidthFt, r.DepthFt = dimensionsForArea(r.TargetAreaSqFt, def.MinWidthFt, def.MinDepthFt)
		}
		return
	}

	if sumTarget <= 0 {
		return
	}

	scale := nb.TargetAreaSqFt / sumTarget
	for i := range nb.Rooms {
		r := &nb.Rooms[i]
		scaled := r.TargetAreaSqFt * scale
		if scaled < r.MinAreaSqFt {
			scaled = r.MinAreaSqFt
		}
		r.TargetAreaSqFt = scaled
		def := roomtypes.Lookup(r.Type)
		r.WidthFt, r.DepthFt = dimensionsForArea(r.TargetAreaSqFt, def.MinWidthFt, def.MinDepthFt)
		if r.MustHave {
			r.Priority = 100
		}
	}
}
