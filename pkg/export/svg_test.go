package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/max-lv/goldsrc-map-generator/pkg/connector"
	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

func cubeBrush(min, max qmap.Vec3) *qmap.Brush {
	corners := [8]qmap.Vec3{
		{min.X, min.Y, min.Z}, {max.X, min.Y, min.Z},
		{max.X, max.Y, min.Z}, {min.X, max.Y, min.Z},
		{min.X, min.Y, max.Z}, {max.X, min.Y, max.Z},
		{max.X, max.Y, max.Z}, {min.X, max.Y, max.Z},
	}
	faceIdx := [6][3]int{
		{0, 1, 2}, {4, 5, 6}, {0, 1, 5}, {2, 3, 7}, {0, 3, 7}, {1, 2, 6},
	}
	faces := make([]qmap.Face, 6)
	for i, idx := range faceIdx {
		p := func(c qmap.Vec3) qmap.Triple { return qmap.NewTriple(c.X, c.Y, c.Z) }
		faces[i] = qmap.Face{
			Points: [3]qmap.Triple{p(corners[idx[0]]), p(corners[idx[1]]), p(corners[idx[2]])},
		}
	}
	return &qmap.Brush{Faces: faces}
}

func TestWriteSVGProducesWellFormedDocument(t *testing.T) {
	worldspawn := qmap.NewEntity("worldspawn")
	worldspawn.Brushes = []*qmap.Brush{cubeBrush(qmap.Vec3{}, qmap.Vec3{X: 64, Y: 64, Z: 64})}

	door := qmap.NewEntity(connector.ClassName)
	door.SetParam("name", "door")
	door.SetParam("angles", "0 90 0")
	door.Brushes = []*qmap.Brush{cubeBrush(qmap.Vec3{X: 64}, qmap.Vec3{X: 72, Y: 8, Z: 8})}

	m := &qmap.Map{Worldspawn: worldspawn, Entities: []*qmap.Entity{door}}

	var buf bytes.Buffer
	if err := WriteSVG(m, &buf, DefaultOptions()); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not a well-formed SVG document:\n%s", out)
	}
	if !strings.Contains(out, "door") {
		t.Fatalf("expected connector label \"door\" in output")
	}
}

func TestWriteSVGHandlesEmptyMapWithoutPanicking(t *testing.T) {
	m := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn")}
	var buf bytes.Buffer
	if err := WriteSVG(m, &buf, DefaultOptions()); err != nil {
		t.Fatalf("WriteSVG on empty map: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("expected a valid SVG even for an empty map")
	}
}
