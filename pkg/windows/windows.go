// Package windows implements stage 6 of the pipeline: deriving window
// placements from exterior walls and room type (spec §4.6).
package windows

import (
	"fmt"
	"math"
	"sort"

	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

type config struct {
	widthFt      float64
	heightFt     float64
	sillHeightFt float64
}

// AssignWindows implements stage 6 (spec §4.6). It is idempotent: calling
// it again replaces the window list rather than accumulating onto it
// (spec §8).
func AssignWindows(p plan.PlacedPlan) plan.PlacedPlan {
	var out []plan.WindowPlacement
	var warnings []string
	ordinal := 1

	for _, room := range p.Rooms {
		if skipRoom(room) {
			continue
		}

		count := windowCount(room)
		if count == 0 {
			continue
		}
		cfg := windowConfig(room)

		walls := sortedWalls(room)
		if len(walls) == 0 {
			if room.NeedsExterior {
				warnings = append(warnings, fmt.Sprintf("room %s requires exterior access but has no exterior walls", room.ID))
			}
			continue
		}

		assignments := make([]roomtypes.Direction, count)
		for i := 0; i < count; i++ {
			assignments[i] = walls[i%len(walls)]
		}

		perWallTotal := make(map[roomtypes.Direction]int)
		for _, d := range assignments {
			perWallTotal[d]++
		}
		perWallIndex := make(map[roomtypes.Direction]int)

		wType := windowType(room)

		for _, d := range assignments {
			perWallIndex[d]++
			idx := perWallIndex[d]
			n := perWallTotal[d]
			length := wallLength(room, d)

			position := length / (float64(n) + 1) * float64(idx)
			width := clamp(cfg.widthFt, 1.5, length-2)

			out = append(out, plan.WindowPlacement{
				ID:            fmt.Sprintf("window-%d", ordinal),
				RoomID:        room.ID,
				PositionFt:    position,
				WidthFt:       width,
				HeightFt:      cfg.heightFt,
				SillHeightFt:  cfg.sillHeightFt,
				Type:          wType,
				Floor:         room.Floor,
				WallDirection: d,
			})
			ordinal++
		}
	}

	outPlan := p
	outPlan.Windows = out
	if len(warnings) > 0 {
		outPlan.Circulation.Warnings = append(append([]string(nil), outPlan.Circulation.Warnings...), warnings...)
	}
	return outPlan
}

func skipRoom(r plan.PlacedRoom) bool {
	return r.Zone == roomtypes.ZoneExterior || r.Type == roomtypes.Garage || r.Type == roomtypes.Hallway
}

func windowCount(r plan.PlacedRoom) int {
	var count int
	switch {
	case r.SqFt < 140:
		count = 1
	case r.SqFt < 260:
		count = 2
	default:
		count = 3
	}
	if r.Zone == roomtypes.ZoneSocial {
		count++
	}
	return count
}

func windowConfig(r plan.PlacedRoom) config {
	if r.Zone == roomtypes.ZoneSocial {
		return config{widthFt: 4, heightFt: 5, sillHeightFt: 2.5}
	}
	return config{widthFt: 3, heightFt: 4, sillHeightFt: 3}
}

func windowType(r plan.PlacedRoom) string {
	switch r.Type {
	case roomtypes.Bathroom, roomtypes.PrimaryBath, roomtypes.PowderRoom:
		return plan.WindowClerestory
	}
	if r.Zone == roomtypes.ZoneSocial {
		if r.SqFt >= 220 {
			return plan.WindowPicture
		}
		if r.SqFt >= 160 {
			return plan.WindowBay
		}
	}
	return plan.WindowStandard
}

func sortedWalls(r plan.PlacedRoom) []roomtypes.Direction {
	walls := append([]roomtypes.Direction(nil), r.ExteriorWalls...)
	sort.SliceStable(walls, func(i, j int) bool {
		return wallLength(r, walls[i]) > wallLength(r, walls[j])
	})
	return walls
}

func wallLength(r plan.PlacedRoom, d roomtypes.Direction) float64 {
	switch d {
	case roomtypes.North, roomtypes.South:
		return r.ActualWidthFt
	default:
		return r.ActualDepthFt
	}
}

func clamp(v, min, max float64) float64 {
	if max < min {
		max = min
	}
	return math.Max(min, math.Min(max, v))
}
