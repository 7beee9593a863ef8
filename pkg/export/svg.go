package export

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/max-lv/goldsrc-map-generator/pkg/collision"
	"github.com/max-lv/goldsrc-map-generator/pkg/connector"
	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// Options configures the top-down schematic rendered by WriteSVG.
type Options struct {
	Width      int // canvas width in pixels
	Height     int // canvas height in pixels
	Margin     int // canvas margin in pixels
	ShowLabels bool
	Title      string
}

// DefaultOptions returns sensible defaults for WriteSVG.
func DefaultOptions() Options {
	return Options{
		Width:      1200,
		Height:     900,
		Margin:     40,
		ShowLabels: true,
		Title:      "Generated Map",
	}
}

// WriteSVG renders a top-down schematic of m to w: every non-connector
// brush as a filled rect in XY projection, every connector entity as a
// dot oriented by its yaw and labelled by its name. This is a debugging
// aid, not part of the generated .map output.
func WriteSVG(m *qmap.Map, w io.Writer, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#12131a")

	brushes := collision.AllBrushes(m)
	conns := connector.Find(m, "")

	scale, project := layout(brushes, conns, opts)

	drawBrushes(canvas, brushes, project)
	drawConnectors(canvas, conns, project, scale, opts)

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 20, opts.Title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	canvas.End()
	_, err := w.Write(buf.Bytes())
	return err
}

type projector func(x, y float64) (int, int)

// layout computes a uniform XY scale and projection that fits every
// brush's bounding box and connector centroid within the canvas margin.
func layout(brushes []*qmap.Brush, conns []connector.Ref, opts Options) (float64, projector) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	consider := func(x, y float64) {
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, b := range brushes {
		box := b.AABB()
		consider(box.Min.X, box.Min.Y)
		consider(box.Max.X, box.Max.Y)
	}
	for _, c := range conns {
		consider(c.Centroid.X, c.Centroid.Y)
	}

	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = -1, -1, 1, 1
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	drawW := float64(opts.Width - 2*opts.Margin)
	drawH := float64(opts.Height - 2*opts.Margin)

	scale := math.Min(drawW/spanX, drawH/spanY)

	project := func(x, y float64) (int, int) {
		px := float64(opts.Margin) + (x-minX)*scale
		py := float64(opts.Margin) + (y-minY)*scale
		return int(px), int(py)
	}

	return scale, project
}

func drawBrushes(canvas *svg.SVG, brushes []*qmap.Brush, project projector) {
	for _, b := range brushes {
		box := b.AABB()
		x1, y1 := project(box.Min.X, box.Min.Y)
		x2, y2 := project(box.Max.X, box.Max.Y)
		w, h := x2-x1, y2-y1
		if w <= 0 {
			w = 1
		}
		if h <= 0 {
			h = 1
		}
		canvas.Rect(x1, y1, w, h, "fill:#2d3748;stroke:#4a5568;stroke-width:1;opacity:0.9")
	}
}

func drawConnectors(canvas *svg.SVG, conns []connector.Ref, project projector, scale float64, opts Options) {
	sorted := append([]connector.Ref(nil), conns...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for _, c := range sorted {
		cx, cy := project(c.Centroid.X, c.Centroid.Y)
		color := connectorColor(c.Type)

		canvas.Circle(cx, cy, 6, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", color))

		rad := float64(c.Yaw) * math.Pi / 180
		tipX := cx + int(14*math.Cos(rad))
		tipY := cy + int(14*math.Sin(rad))
		canvas.Line(cx, cy, tipX, tipY, fmt.Sprintf("stroke:%s;stroke-width:2", color))

		if opts.ShowLabels && c.Type != "" {
			canvas.Text(cx, cy-10, c.Type, "text-anchor:middle;font-size:10px;font-family:monospace;fill:#e2e8f0")
		}
	}
}

func connectorColor(connType string) string {
	switch connType {
	case "door":
		return "#48bb78"
	case "window":
		return "#4299e1"
	case "crates":
		return "#ed8936"
	default:
		return "#9f7aea"
	}
}
