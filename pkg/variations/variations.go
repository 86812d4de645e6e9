// Package variations implements stage 9 of the pipeline: running zoning,
// placement, circulation, and windows under fixed parameter perturbations
// to produce a ranked set of candidate plans (spec §4.9). Grounded on the
// teacher's dungeon.go orchestration, which re-runs the same stage
// sequence under different seeds/options to produce alternative layouts.
package variations

import (
	"sort"

	"github.com/archspan/floorplan/pkg/circulation"
	"github.com/archspan/floorplan/pkg/envelope"
	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/placement"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/scoring"
	"github.com/archspan/floorplan/pkg/walls"
	"github.com/archspan/floorplan/pkg/windows"
	"github.com/archspan/floorplan/pkg/zoning"
)

// Variation strategy names — part of the external contract (spec.md §6)
// and must be preserved bit-for-bit.
const (
	StrategyBaseGreedy          = "base-greedy"
	StrategyMirrorX             = "mirror-x"
	StrategySwapZones           = "swap-zones"
	StrategyRotateEntry         = "rotate-entry"
	StrategyProportionWide      = "proportion-wide"
	StrategyReverseOrderMirrorY = "reverse-order-mirror-y"
)

type spec struct {
	name              string
	mirrorX           bool
	mirrorY           bool
	swapSocialPrivate bool
	rotateEntry       bool
	widthBias         int
	order             placement.Order
}

var specs = []spec{
	{name: StrategyBaseGreedy, order: placement.OrderDefault},
	{name: StrategyMirrorX, mirrorX: true, order: placement.OrderDefault},
	{name: StrategySwapZones, swapSocialPrivate: true, order: placement.OrderZone},
	{name: StrategyRotateEntry, rotateEntry: true, order: placement.OrderPriority},
	{name: StrategyProportionWide, widthBias: 2, order: placement.OrderDefault},
	{name: StrategyReverseOrderMirrorY, mirrorY: true, order: placement.OrderReverse},
}

// Result pairs a placed plan with its score under its own strategy name.
type Result struct {
	Plan  plan.PlacedPlan
	Score plan.PlanScore
}

// Generate implements stage 9 (spec §4.9): it re-zones, re-places,
// mirrors, re-circulates, and re-windows the brief under six fixed
// parameter perturbations, returning one Result per strategy.
func Generate(nb *normalize.NormalizedBrief, env envelope.Envelope) []Result {
	out := make([]Result, 0, len(specs))
	for _, s := range specs {
		out = append(out, runVariation(nb, env, s))
	}
	return out
}

// Ranked returns Generate's results sorted by overall score descending,
// stable across repeated calls on the same inputs (spec §8 scenario 6).
func Ranked(nb *normalize.NormalizedBrief, env envelope.Envelope) []Result {
	results := Generate(nb, env)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Overall > results[j].Score.Overall
	})
	return results
}

func runVariation(nb *normalize.NormalizedBrief, env envelope.Envelope, s spec) Result {
	zoned := zoning.AssignZones(nb, env, zoning.Options{
		SwapSocialPrivate: s.swapSocialPrivate,
		RotateEntry:       s.rotateEntry,
	})

	placed := placement.PlaceRooms(zoned, placement.Options{
		Order:     s.order,
		WidthBias: s.widthBias,
	})

	if s.mirrorX || s.mirrorY {
		placed = mirror(placed, env, s.mirrorX, s.mirrorY)
	}

	placed = circulation.EnsureCirculation(placed)
	placed = windows.AssignWindows(placed)
	placed.Strategy = s.name

	wa := walls.AnalyzeWalls(placed)
	score := scoring.ScorePlan(placed, wa)

	return Result{Plan: placed, Score: score}
}

// mirror reflects every room's position about its floor's midline on the
// requested axis/axes and re-derives exterior walls from the mirrored
// rectangle against the (also mirrored) floor footprint — never by
// swapping direction strings (spec.md §9 Open Question 1), reusing the
// same ExteriorWallsForRect helper placement uses for the original pass.
func mirror(p plan.PlacedPlan, env envelope.Envelope, mirrorX, mirrorY bool) plan.PlacedPlan {
	rooms := append([]plan.PlacedRoom(nil), p.Rooms...)
	for i := range rooms {
		footprint, ok := env.FloorRects[rooms[i].Floor]
		if !ok {
			continue
		}
		x, y := rooms[i].X, rooms[i].Y
		if mirrorX {
			x = footprint.MinX() + footprint.MaxX() - rooms[i].X - rooms[i].ActualWidthFt
		}
		if mirrorY {
			y = footprint.MinY() + footprint.MaxY() - rooms[i].Y - rooms[i].ActualDepthFt
		}
		rooms[i].X = x
		rooms[i].Y = y
		rooms[i].ExteriorWalls = placement.ExteriorWallsForRect(rooms[i].Rect(), footprint)
	}
	recomputeNeighbors(rooms)

	out := p
	out.Rooms = rooms
	out.Doors = nil
	out.Windows = nil
	return out
}

func recomputeNeighbors(rooms []plan.PlacedRoom) {
	for i := range rooms {
		var neighbors []string
		for j := range rooms {
			if i == j || rooms[i].Floor != rooms[j].Floor {
				continue
			}
			if geometry.SharesEdge(rooms[i].Rect(), rooms[j].Rect()) {
				neighbors = append(neighbors, rooms[j].ID)
			}
		}
		rooms[i].NeighborIDs = neighbors
	}
}
