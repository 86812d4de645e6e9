// Package circulation implements stage 5 of the pipeline: verifying
// reachability from the entry room and inserting hallway rooms and doors
// until the plan is connected (spec §4.5). Grounded on the teacher's
// pkg/graph (BFS-based IsConnected/GetReachable/GetPath) for the
// connectivity-repair loop, generalized from a static dungeon graph to a
// geometry-derived adjacency graph that is rebuilt after each repair.
package circulation

import (
	"fmt"
	"math"
	"sort"

	"github.com/archspan/floorplan/pkg/envelope"
	"github.com/archspan/floorplan/pkg/geometry"
	"github.com/archspan/floorplan/pkg/normalize"
	"github.com/archspan/floorplan/pkg/placement"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

const maxRepairIterations = 8

// EnsureCirculation implements stage 5 (spec §4.5). It is idempotent:
// calling it again on an already-connected plan inserts no new rooms or
// doors (spec §8).
func EnsureCirculation(p plan.PlacedPlan) plan.PlacedPlan {
	rooms := append([]plan.PlacedRoom(nil), p.Rooms...)
	doors := append([]plan.Door(nil), p.Doors...)
	warnings := append([]string(nil), p.Circulation.Warnings...)

	entryID := chooseEntry(rooms)

	hallwayOrdinal := countHallways(rooms) + 1
	doorOrdinal := len(doors) + 1

	exhausted := false
	for iter := 0; iter < maxRepairIterations; iter++ {
		g := buildGraph(rooms, doors)
		components := connectedComponents(g, roomIDs(rooms))
		entryComponent := componentContaining(components, entryID)

		if len(entryComponent) == len(rooms) {
			break
		}

		a, b, footprint, ok := nearestCrossComponentPair(rooms, entryComponent, p.Envelope)
		if !ok {
			warnings = append(warnings,
				"circulation repair could not bridge all rooms: remaining components span different floors with no stairs connecting them")
			break
		}

		hallway := buildHallwayRoom(a, b, footprint, hallwayOrdinal)
		hallwayOrdinal++
		rooms = append(rooms, hallway)

		doors = append(doors,
			plan.Door{ID: fmt.Sprintf("door-%d", doorOrdinal), Position: 0.5, ClearWidthFt: 3, Type: plan.DoorStandard, RoomAID: a.ID, RoomBID: hallway.ID},
			plan.Door{ID: fmt.Sprintf("door-%d", doorOrdinal+1), Position: 0.5, ClearWidthFt: 3, Type: plan.DoorStandard, RoomAID: hallway.ID, RoomBID: b.ID},
		)
		doorOrdinal += 2

		if iter == maxRepairIterations-1 {
			exhausted = true
		}
	}

	g := buildGraph(rooms, doors)
	visited := bfsVisit(g, entryID, roomIDs(rooms))
	isFullyConnected := len(visited) == len(rooms)
	if exhausted && !isFullyConnected {
		warnings = append(warnings, "circulation repair exhausted its iteration budget with rooms still disconnected")
	}

	mainPath := longestPath(g, entryID)
	deadEnds := deadEndRooms(rooms, g)
	hallwayPct := hallwayPercentage(rooms)

	out := p
	out.Rooms = rooms
	out.Doors = doors
	out.Circulation = plan.CirculationResult{
		EntryRoomID:      entryID,
		IsFullyConnected: isFullyConnected,
		Visited:          sortedStrings(visited),
		MainPath:         mainPath,
		DeadEnds:         deadEnds,
		HallwayPercent:   hallwayPct,
		Warnings:         warnings,
	}
	return out
}

func chooseEntry(rooms []plan.PlacedRoom) string {
	for _, r := range rooms {
		if r.Type == roomtypes.Foyer {
			return r.ID
		}
	}
	for _, r := range rooms {
		if r.Type == roomtypes.Living {
			return r.ID
		}
	}
	for _, r := range rooms {
		if r.Zone == roomtypes.ZoneSocial {
			return r.ID
		}
	}
	if len(rooms) > 0 {
		return rooms[0].ID
	}
	return ""
}

func countHallways(rooms []plan.PlacedRoom) int {
	n := 0
	for _, r := range rooms {
		if r.Type == roomtypes.Hallway {
			n++
		}
	}
	return n
}

func roomIDs(rooms []plan.PlacedRoom) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.ID
	}
	return out
}

// buildGraph combines geometric edge-sharing with explicit door edges so
// an inserted hallway is connected even if its clamped rectangle doesn't
// precisely touch both endpoints.
func buildGraph(rooms []plan.PlacedRoom, doors []plan.Door) map[string][]string {
	g := make(map[string][]string)
	for _, r := range rooms {
		g[r.ID] = nil
	}
	for i := range rooms {
		for j := range rooms {
			if i == j || rooms[i].Floor != rooms[j].Floor {
				continue
			}
			if geometry.SharesEdge(rooms[i].Rect(), rooms[j].Rect()) {
				g[rooms[i].ID] = appendUnique(g[rooms[i].ID], rooms[j].ID)
			}
		}
	}
	for _, d := range doors {
		g[d.RoomAID] = appendUnique(g[d.RoomAID], d.RoomBID)
		g[d.RoomBID] = appendUnique(g[d.RoomBID], d.RoomAID)
	}
	return g
}

func appendUnique(list []string, id string) []string {
	for _, x := range list {
		if x == id {
			return list
		}
	}
	return append(list, id)
}

func connectedComponents(g map[string][]string, ids []string) [][]string {
	visited := make(map[string]bool)
	var components [][]string
	for _, id := range ids {
		if visited[id] {
			continue
		}
		comp := bfsVisitOrdered(g, id)
		for _, c := range comp {
			visited[c] = true
		}
		components = append(components, comp)
	}
	return components
}

func componentContaining(components [][]string, id string) []string {
	for _, c := range components {
		for _, x := range c {
			if x == id {
				return c
			}
		}
	}
	return nil
}

func bfsVisit(g map[string][]string, start string, all []string) map[string]bool {
	visited := make(map[string]bool)
	if start == "" {
		return visited
	}
	queue := []string{start}
	visited[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g[cur] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited
}

func bfsVisitOrdered(g map[string][]string, start string) []string {
	visited := map[string]bool{start: true}
	queue := []string{start}
	var order []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, n := range g[cur] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return order
}

// nearestCrossComponentPair finds the room in entryComponent and the room
// outside it, on the same floor, with minimal centroid Manhattan
// distance (spec §4.5 step 3).
func nearestCrossComponentPair(rooms []plan.PlacedRoom, entryComponent []string, env envelope.Envelope) (plan.PlacedRoom, plan.PlacedRoom, geometry.Rect, bool) {
	inEntry := make(map[string]bool, len(entryComponent))
	for _, id := range entryComponent {
		inEntry[id] = true
	}

	byID := make(map[string]plan.PlacedRoom, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}

	var bestA, bestB plan.PlacedRoom
	bestDist := math.Inf(1)
	found := false

	for _, a := range rooms {
		if !inEntry[a.ID] {
			continue
		}
		for _, b := range rooms {
			if inEntry[b.ID] || b.Floor != a.Floor {
				continue
			}
			d := geometry.ManhattanDistance(a.Rect().Center(), b.Rect().Center())
			if d < bestDist {
				bestDist = d
				bestA = a
				bestB = b
				found = true
			}
		}
	}

	if !found {
		return plan.PlacedRoom{}, plan.PlacedRoom{}, geometry.Rect{}, false
	}
	rect, ok := env.FloorRects[bestA.Floor]
	if !ok {
		return plan.PlacedRoom{}, plan.PlacedRoom{}, geometry.Rect{}, false
	}
	return bestA, bestB, rect, true
}

func buildHallwayRoom(a, b plan.PlacedRoom, footprint geometry.Rect, ordinal int) plan.PlacedRoom {
	ca := a.Rect().Center()
	cb := b.Rect().Center()
	dx := cb.X - ca.X
	dy := cb.Y - ca.Y

	var rect geometry.Rect
	const minWidth = 3.0
	const minLength = 6.0

	if math.Abs(dx) >= math.Abs(dy) {
		length := math.Max(minLength, math.Abs(dx))
		x0 := math.Min(ca.X, cb.X)
		y0 := (ca.Y+cb.Y)/2 - minWidth/2
		rect = geometry.Rect{X: x0, Y: y0, Width: length, Depth: minWidth}
	} else {
		length := math.Max(minLength, math.Abs(dy))
		x0 := (ca.X+cb.X)/2 - minWidth/2
		y0 := math.Min(ca.Y, cb.Y)
		rect = geometry.Rect{X: x0, Y: y0, Width: minWidth, Depth: length}
	}
	rect = clampToFootprint(rect, footprint)

	id := fmt.Sprintf("hallway-%d", ordinal)
	nr := normalize.NormalizedRoom{
		ID:             id,
		Type:           roomtypes.Hallway,
		Label:          roomtypes.Hallway.String(),
		TargetAreaSqFt: rect.Area(),
		MinAreaSqFt:    minWidth * minLength,
		WidthFt:        rect.Width,
		DepthFt:        rect.Depth,
		Zone:           roomtypes.ZoneCirculation,
		Floor:          a.Floor,
	}

	return plan.PlacedRoom{
		NormalizedRoom: nr,
		X:              rect.X,
		Y:              rect.Y,
		ActualWidthFt:  rect.Width,
		ActualDepthFt:  rect.Depth,
		SqFt:           rect.Area(),
		ExteriorWalls:  placement.ExteriorWallsForRect(rect, footprint),
	}
}

func clampToFootprint(rect, footprint geometry.Rect) geometry.Rect {
	if rect.Width > footprint.Width {
		rect.Width = footprint.Width
	}
	if rect.Depth > footprint.Depth {
		rect.Depth = footprint.Depth
	}
	if rect.X < footprint.MinX() {
		rect.X = footprint.MinX()
	}
	if rect.Y < footprint.MinY() {
		rect.Y = footprint.MinY()
	}
	if rect.MaxX() > footprint.MaxX() {
		rect.X = footprint.MaxX() - rect.Width
	}
	if rect.MaxY() > footprint.MaxY() {
		rect.Y = footprint.MaxY() - rect.Depth
	}
	return rect
}

func longestPath(g map[string][]string, entry string) []string {
	if entry == "" {
		return nil
	}
	parent := map[string]string{entry: ""}
	depth := map[string]int{entry: 0}
	queue := []string{entry}
	deepest := entry

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g[cur] {
			if _, seen := parent[n]; !seen {
				parent[n] = cur
				depth[n] = depth[cur] + 1
				if depth[n] > depth[deepest] {
					deepest = n
				}
				queue = append(queue, n)
			}
		}
	}

	var path []string
	for cur := deepest; cur != ""; cur = parent[cur] {
		path = append([]string{cur}, path...)
		if parent[cur] == "" {
			break
		}
	}
	return path
}

func deadEndRooms(rooms []plan.PlacedRoom, g map[string][]string) []string {
	var out []string
	for _, r := range rooms {
		if r.Type == roomtypes.Porch {
			continue
		}
		if len(g[r.ID]) <= 1 {
			out = append(out, r.ID)
		}
	}
	return out
}

func hallwayPercentage(rooms []plan.PlacedRoom) float64 {
	var hallwayArea, totalArea float64
	for _, r := range rooms {
		totalArea += r.SqFt
		if r.Type == roomtypes.Hallway {
			hallwayArea += r.SqFt
		}
	}
	if totalArea == 0 {
		return 0
	}
	return hallwayArea / totalArea * 100
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
