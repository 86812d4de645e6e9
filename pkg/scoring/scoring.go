// Package scoring implements stage 8 of the pipeline: eight normalized
// sub-scores plus an overall score and an auxiliary square-footage
// accuracy score (spec §4.8).
package scoring

import (
	"math"

	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

// ScorePlan implements stage 8 (spec §4.8). All sub-scores are clipped
// to [0, 100]; overall is their unweighted mean.
func ScorePlan(p plan.PlacedPlan, wa plan.WallAnalysis) plan.PlanScore {
	d := diagonal(p)

	s := plan.PlanScore{
		AdjacencySatisfaction: clip(adjacencySatisfaction(p)),
		ZoneCohesion:          clip(zoneCohesion(p, d)),
		NaturalLight:          clip(naturalLight(p)),
		PlumbingEfficiency:    clip(plumbingEfficiency(p, wa, d)),
		CirculationQuality:    clip(circulationQuality(p)),
		SpaceUtilization:      clip(spaceUtilization(p)),
		PrivacyGradient:       clip(privacyGradient(p, d)),
		OverallBuildability:   clip(overallBuildability(p, wa)),
		SqftAccuracy:          clip(sqftAccuracy(p)),
	}
	s.Overall = (s.AdjacencySatisfaction + s.ZoneCohesion + s.NaturalLight + s.PlumbingEfficiency +
		s.CirculationQuality + s.SpaceUtilization + s.PrivacyGradient + s.OverallBuildability) / 8
	return s
}

func clip(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func diagonal(p plan.PlacedPlan) float64 {
	if r, ok := p.Envelope.FloorRects[1]; ok {
		return r.Diagonal()
	}
	for _, r := range p.Envelope.FloorRects {
		return r.Diagonal()
	}
	return 1
}

func ratio(num, denom float64) float64 {
	if denom == 0 {
		return 1
	}
	return num / denom
}

func typesPresent(rooms []plan.PlacedRoom) map[roomtypes.Type]bool {
	present := make(map[roomtypes.Type]bool)
	for _, r := range rooms {
		present[r.Type] = true
	}
	return present
}

func edgeNeighborOfType(rooms []plan.PlacedRoom, a, b roomtypes.Type) bool {
	for _, r := range rooms {
		if r.Type != a {
			continue
		}
		for _, nid := range r.NeighborIDs {
			for _, other := range rooms {
				if other.ID == nid && other.Type == b {
					return true
				}
			}
		}
	}
	return false
}

func adjacencySatisfaction(p plan.PlacedPlan) float64 {
	present := typesPresent(p.Rooms)

	var hardApp, hardSat float64
	for _, pair := range roomtypes.HardAdjacencyPairs() {
		if !present[pair.A] || !present[pair.B] {
			continue
		}
		hardApp++
		if edgeNeighborOfType(p.Rooms, pair.A, pair.B) {
			hardSat++
		}
	}

	var softApp, softEarned float64
	for pair, w := range roomtypes.SoftAdjacencyPairs() {
		if !present[pair.A] || !present[pair.B] {
			continue
		}
		softApp += w
		if edgeNeighborOfType(p.Rooms, pair.A, pair.B) {
			softEarned += w
		}
	}

	var antiTotal, antiPenalty float64
	for pair, w := range roomtypes.AntiAdjacencyPairs() {
		if !present[pair.A] || !present[pair.B] {
			continue
		}
		antiTotal += w
		if edgeNeighborOfType(p.Rooms, pair.A, pair.B) {
			antiPenalty += w
		}
	}

	return 0.5*ratio(hardSat, hardApp)*100 +
		0.3*ratio(softEarned, softApp)*100 +
		0.2*(100-ratio(antiPenalty, antiTotal)*100)
}

func zoneCohesion(p plan.PlacedPlan, d float64) float64 {
	byZone := make(map[roomtypes.Zone][]plan.PlacedRoom)
	for _, r := range p.Rooms {
		byZone[r.Zone] = append(byZone[r.Zone], r)
	}

	var weightedSum, totalWeight float64
	for _, rooms := range byZone {
		if len(rooms) < 2 {
			continue
		}
		avgDist := avgPairwiseManhattan(rooms)
		score := 100 - avgDist/d*100
		var weight float64
		for _, r := range rooms {
			weight += r.SqFt
		}
		weightedSum += score * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 100
	}
	return weightedSum / totalWeight
}

func avgPairwiseManhattan(rooms []plan.PlacedRoom) float64 {
	var sum float64
	var n int
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			sum += geometry.ManhattanDistance(rooms[i].Rect().Center(), rooms[j].Rect().Center())
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func naturalLight(p plan.PlacedPlan) float64 {
	var sum float64
	var n int
	windowCounts := make(map[string]int)
	for _, w := range p.Windows {
		windowCounts[w.RoomID]++
	}

	for _, r := range p.Rooms {
		if r.Zone == roomtypes.ZoneExterior || r.Type == roomtypes.Garage || r.Type == roomtypes.Hallway {
			continue
		}
		score := 40.0
		hasExterior := len(r.ExteriorWalls) > 0
		if hasExterior {
			score += 25
		}
		wc := windowCounts[r.ID]
		bonus := math.Min(35, float64(wc)*12)
		score += bonus
		if r.NeedsExterior && !hasExterior {
			score -= 45
		}
		if r.NeedsExterior && wc == 0 {
			score -= 30
		}
		sum += score
		n++
	}
	if n == 0 {
		return 100
	}
	return sum / float64(n)
}

func plumbingEfficiency(p plan.PlacedPlan, wa plan.WallAnalysis, d float64) float64 {
	var plumbing []plan.PlacedRoom
	for _, r := range p.Rooms {
		if r.NeedsPlumbing {
			plumbing = append(plumbing, r)
		}
	}
	if len(plumbing) <= 1 {
		return 100
	}

	avgDist := avgPairwiseManhattan(plumbing)
	proximityScore := 100 - avgDist/d*100

	var wetLength float64
	for _, w := range wa.WetWalls {
		wetLength += w.OverlapLengthFt
	}
	efficiencyScore := math.Min(100, wetLength/(float64(len(plumbing))*6)*100)

	return 0.65*proximityScore + 0.35*efficiencyScore
}

func circulationQuality(p plan.PlacedPlan) float64 {
	score := 35.0
	if p.Circulation.IsFullyConnected {
		score = 82.0
	}
	score -= 4 * float64(len(p.Circulation.DeadEnds))
	score -= 1.8 * math.Abs(p.Circulation.HallwayPercent-12)
	if len(p.Circulation.MainPath) >= 4 {
		score += 8
	}
	return score
}

func spaceUtilization(p plan.PlacedPlan) float64 {
	var used float64
	for _, r := range p.Rooms {
		used += r.SqFt
	}
	stories := 1.0
	if p.Normalized != nil && p.Normalized.Stories == 2 {
		stories = 2
	}
	var footprintArea float64
	if r, ok := p.Envelope.FloorRects[1]; ok {
		footprintArea = r.Area()
	}
	available := footprintArea * stories
	if available == 0 {
		return 0
	}
	return 100 - 220*math.Abs(used/available-0.82)
}

var privacyAdjacentOffenders = map[roomtypes.Type]bool{
	roomtypes.Garage:  true,
	roomtypes.Kitchen: true,
	roomtypes.Family:  true,
	roomtypes.Living:  true,
}

func privacyGradient(p plan.PlacedPlan, d float64) float64 {
	entry, ok := p.RoomByID(p.Circulation.EntryRoomID)
	if !ok {
		return 70
	}
	entryCenter := entry.Rect().Center()

	var socialRooms, privateRooms []plan.PlacedRoom
	for _, r := range p.Rooms {
		switch r.Zone {
		case roomtypes.ZoneSocial:
			socialRooms = append(socialRooms, r)
		case roomtypes.ZonePrivate:
			privateRooms = append(privateRooms, r)
		}
	}
	if len(socialRooms) == 0 || len(privateRooms) == 0 {
		return 70
	}

	avgSocial := avgDistanceTo(socialRooms, entryCenter)
	avgPrivate := avgDistanceTo(privateRooms, entryCenter)

	score := 65 + 60*((avgPrivate-avgSocial)/d)

	byID := make(map[string]plan.PlacedRoom, len(p.Rooms))
	for _, r := range p.Rooms {
		byID[r.ID] = r
	}
	for _, pr := range privateRooms {
		for _, nid := range pr.NeighborIDs {
			n, ok := byID[nid]
			if !ok {
				continue
			}
			if privacyAdjacentOffenders[n.Type] && n.Zone != roomtypes.ZonePrivate {
				score -= 6
			}
		}
	}
	return score
}

func avgDistanceTo(rooms []plan.PlacedRoom, pt geometry.Point) float64 {
	var sum float64
	for _, r := range rooms {
		sum += geometry.ManhattanDistance(r.Rect().Center(), pt)
	}
	return sum / float64(len(rooms))
}

func overallBuildability(p plan.PlacedPlan, wa plan.WallAnalysis) float64 {
	var withinAspect int
	for _, r := range p.Rooms {
		longer := math.Max(r.ActualWidthFt, r.ActualDepthFt)
		shorter := math.Min(r.ActualWidthFt, r.ActualDepthFt)
		if shorter == 0 {
			continue
		}
		if longer/shorter <= 2.5 {
			withinAspect++
		}
	}
	var fraction float64
	if len(p.Rooms) > 0 {
		fraction = float64(withinAspect) / float64(len(p.Rooms))
	}

	score := fraction*80 + 20
	score -= math.Min(35, 0.7*(float64(len(wa.SharedWalls))+float64(len(wa.Walls))/4))
	score -= 12 * float64(len(p.UnplacedRoomIDs))
	if p.Circulation.IsFullyConnected {
		score += 12
	} else {
		score -= 12
	}
	return score
}

func sqftAccuracy(p plan.PlacedPlan) float64 {
	if p.Normalized == nil || p.Normalized.TargetAreaSqFt == 0 {
		return 100
	}
	var actual float64
	for _, r := range p.Rooms {
		actual += r.SqFt
	}
	target := p.Normalized.TargetAreaSqFt
	return 100 - 180*math.Abs(actual-target)/target
}
