// Package render is an external collaborator (spec.md §4.11 "Renderer"):
// it consumes a PlacedPlan and WallAnalysis read-only and draws a 2-D
// floor-plan visualization. It is explicitly out of the pipeline core
// (spec.md §1 scope), but is implemented here because it gives the
// teacher's github.com/ajstarks/svgo dependency a concrete home,
// adapted from the teacher's pkg/export/svg.go dungeon-graph renderer —
// same canvas-setup/draw-layers-in-order shape, generalized from node/
// edge graph drawing to room-rectangle/wall/door/window drawing.
package render

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/roomtypes"
)

// Options configures SVG floor-plan export, mirroring the teacher's
// export.SVGOptions field set and defaulting pattern.
type Options struct {
	PixelsPerFoot int
	Margin        int
	ShowLabels    bool
	ShowGrid      bool
	Title         string
}

// DefaultOptions returns sensible default export options, matching the
// teacher's DefaultSVGOptions constructor.
func DefaultOptions() Options {
	return Options{
		PixelsPerFoot: 12,
		Margin:        40,
		ShowLabels:    true,
		ShowGrid:      false,
		Title:         "Floor Plan",
	}
}

// RoomTypeColor returns a fill color for a room type, the render-package
// analog of the teacher's getNodeColor archetype palette.
func RoomTypeColor(t roomtypes.Type) string {
	switch t {
	case roomtypes.PrimaryBed, roomtypes.Bedroom:
		return "#7ba7d9"
	case roomtypes.PrimaryBath, roomtypes.Bathroom, roomtypes.PowderRoom:
		return "#8fd9c4"
	case roomtypes.Kitchen, roomtypes.Dining, roomtypes.BreakfastNook:
		return "#f2c879"
	case roomtypes.Living, roomtypes.Family, roomtypes.GreatRoom:
		return "#e8a6a6"
	case roomtypes.Garage:
		return "#b8b8b8"
	case roomtypes.Foyer, roomtypes.Hallway, roomtypes.Stairs:
		return "#d9cba3"
	case roomtypes.Porch, roomtypes.Sunroom:
		return "#c6e0b4"
	default:
		return "#d9d9d9"
	}
}

// Export draws a PlacedPlan and its WallAnalysis to an SVG byte buffer,
// one canvas section per floor stacked left to right.
func Export(p plan.PlacedPlan, wa plan.WallAnalysis, opts Options) ([]byte, error) {
	if len(p.Rooms) == 0 {
		return nil, fmt.Errorf("render: plan has no rooms")
	}
	if opts.PixelsPerFoot <= 0 {
		opts.PixelsPerFoot = 12
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	floors := floorsOf(p)
	width, height := canvasSize(p, floors, opts)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	if opts.Title != "" {
		canvas.Text(width/2, 20, opts.Title, "text-anchor:middle;font-size:16px;font-weight:bold;fill:#1a1a1a")
	}

	for floorIdx, floor := range floors {
		footprint, ok := p.Envelope.FloorRects[floor]
		if !ok {
			continue
		}
		ox := opts.Margin + floorIdx*(int(footprint.Width)*opts.PixelsPerFoot+opts.Margin)
		oy := opts.Margin + 30

		drawRooms(canvas, p, floor, ox, oy, opts)
		drawWalls(canvas, wa, floor, p, ox, oy, opts)
		drawDoors(canvas, p, floor, ox, oy, opts)
		drawWindows(canvas, p, floor, ox, oy, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders and writes the SVG to disk, matching the teacher's
// SaveSVGToFile convenience wrapper.
func SaveToFile(p plan.PlacedPlan, wa plan.WallAnalysis, path string, opts Options) error {
	data, err := Export(p, wa, opts)
	if err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing svg file: %w", err)
	}
	return nil
}

func floorsOf(p plan.PlacedPlan) []int {
	seen := map[int]bool{}
	var out []int
	for _, r := range p.Rooms {
		if !seen[r.Floor] {
			seen[r.Floor] = true
			out = append(out, r.Floor)
		}
	}
	return out
}

func canvasSize(p plan.PlacedPlan, floors []int, opts Options) (int, int) {
	width := opts.Margin
	height := 0
	for _, floor := range floors {
		fp, ok := p.Envelope.FloorRects[floor]
		if !ok {
			continue
		}
		width += int(fp.Width)*opts.PixelsPerFoot + opts.Margin
		if h := int(fp.Depth)*opts.PixelsPerFoot + 2*opts.Margin + 30; h > height {
			height = h
		}
	}
	if width < 200 {
		width = 200
	}
	if height < 200 {
		height = 200
	}
	return width, height
}

func drawRooms(canvas *svg.SVG, p plan.PlacedPlan, floor, ox, oy int, opts Options) {
	for _, r := range p.Rooms {
		if r.Floor != floor {
			continue
		}
		x := ox + int(r.X)*opts.PixelsPerFoot
		y := oy + int(r.Y)*opts.PixelsPerFoot
		w := int(r.ActualWidthFt) * opts.PixelsPerFoot
		h := int(r.ActualDepthFt) * opts.PixelsPerFoot
		style := fmt.Sprintf("fill:%s;stroke:#333333;stroke-width:1", RoomTypeColor(r.Type))
		canvas.Rect(x, y, w, h, style)
		if opts.ShowLabels {
			canvas.Text(x+w/2, y+h/2, r.Label, "text-anchor:middle;font-size:10px;fill:#1a1a1a")
		}
	}
}

func drawWalls(canvas *svg.SVG, wa plan.WallAnalysis, floor int, p plan.PlacedPlan, ox, oy int, opts Options) {
	for _, w := range wa.Walls {
		room, ok := p.RoomByID(w.RoomID)
		if !ok || room.Floor != floor {
			continue
		}
		style := "stroke:#555555;stroke-width:2"
		if w.Exterior {
			style = "stroke:#111111;stroke-width:3"
		}
		canvas.Line(
			ox+int(w.X0)*opts.PixelsPerFoot, oy+int(w.Y0)*opts.PixelsPerFoot,
			ox+int(w.X1)*opts.PixelsPerFoot, oy+int(w.Y1)*opts.PixelsPerFoot,
			style,
		)
	}
}

func drawDoors(canvas *svg.SVG, p plan.PlacedPlan, floor, ox, oy int, opts Options) {
	for _, d := range p.Doors {
		roomA, ok := p.RoomByID(d.RoomAID)
		if !ok || roomA.Floor != floor {
			continue
		}
		center := roomA.Rect().Center()
		cx := ox + int(center.X)*opts.PixelsPerFoot
		cy := oy + int(center.Y)*opts.PixelsPerFoot
		canvas.Circle(cx, cy, 3, "fill:#c0392b")
	}
}

func drawWindows(canvas *svg.SVG, p plan.PlacedPlan, floor, ox, oy int, opts Options) {
	for _, win := range p.Windows {
		if win.Floor != floor {
			continue
		}
		room, ok := p.RoomByID(win.RoomID)
		if !ok {
			continue
		}
		x, y := windowGlyphPosition(room.Rect(), win)
		cx := ox + int(x)*opts.PixelsPerFoot
		cy := oy + int(y)*opts.PixelsPerFoot
		canvas.Rect(cx-3, cy-3, 6, 6, "fill:#3498db;stroke:#1a1a1a;stroke-width:1")
	}
}

func windowGlyphPosition(rect interface {
	MinX() float64
	MinY() float64
	MaxX() float64
	MaxY() float64
}, w plan.WindowPlacement) (float64, float64) {
	switch w.WallDirection {
	case roomtypes.North:
		return rect.MinX() + w.PositionFt, rect.MinY()
	case roomtypes.South:
		return rect.MinX() + w.PositionFt, rect.MaxY()
	case roomtypes.East:
		return rect.MaxX(), rect.MinY() + w.PositionFt
	default:
		return rect.MinX(), rect.MinY() + w.PositionFt
	}
}
