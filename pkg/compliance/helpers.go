package compliance

import (
	"fmt"
	"math"

	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

func pass(id, section, category string) RuleResult {
	return RuleResult{RuleID: id, CodeSection: section, Category: category, Passed: true}
}

func fail(id, section, category string, violations ...Violation) RuleResult {
	return RuleResult{RuleID: id, CodeSection: section, Category: category, Passed: false, Violations: violations}
}

func infoResult(id, section, category, message string) RuleResult {
	return RuleResult{
		RuleID: id, CodeSection: section, Category: category, Passed: true,
		Violations: []Violation{{RuleID: id, CodeSection: section, Severity: SeverityInfo, Message: message}},
	}
}

func gapResult(id, section, category, gap string) RuleResult {
	return infoResult(id, section, category, "not evaluated: "+gap)
}

func habitableRooms(p plan.PlacedPlan) []plan.PlacedRoom {
	var out []plan.PlacedRoom
	for _, r := range p.Rooms {
		switch r.Type {
		case roomtypes.Garage, roomtypes.Hallway, roomtypes.WalkInCloset, roomtypes.Storage,
			roomtypes.Utility, roomtypes.Porch, roomtypes.Stairs:
			continue
		}
		out = append(out, r)
	}
	return out
}

func roomsOfType(p plan.PlacedPlan, types ...roomtypes.Type) []plan.PlacedRoom {
	want := make(map[roomtypes.Type]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []plan.PlacedRoom
	for _, r := range p.Rooms {
		if want[r.Type] {
			out = append(out, r)
		}
	}
	return out
}

func minDim(r plan.PlacedRoom) float64 {
	return math.Min(r.ActualWidthFt, r.ActualDepthFt)
}

func maxDim(r plan.PlacedRoom) float64 {
	return math.Max(r.ActualWidthFt, r.ActualDepthFt)
}

func windowCountFor(p plan.PlacedPlan, roomID string) int {
	count := 0
	for _, w := range p.Windows {
		if w.RoomID == roomID {
			count++
		}
	}
	return count
}

func exteriorWallLengthFt(r plan.PlacedRoom) float64 {
	var total float64
	for _, d := range r.ExteriorWalls {
		switch d {
		case roomtypes.North, roomtypes.South:
			total += r.ActualWidthFt
		default:
			total += r.ActualDepthFt
		}
	}
	return total
}

func windowAreaFt(p plan.PlacedPlan, roomID string) float64 {
	var area float64
	for _, w := range p.Windows {
		if w.RoomID == roomID {
			area += w.WidthFt * w.HeightFt
		}
	}
	return area
}

func remediate(format string, args ...interface{}) []string {
	return []string{fmt.Sprintf(format, args...)}
}
