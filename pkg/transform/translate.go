package transform

import (
	"strconv"
	"strings"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// TranslateMap moves m in place by delta.
func TranslateMap(m *qmap.Map, delta qmap.Vec3) {
	translateEntity(m.Worldspawn, delta)
	for _, e := range m.Entities {
		translateEntity(e, delta)
	}
}

func translateEntity(e *qmap.Entity, delta qmap.Vec3) {
	for _, b := range e.Brushes {
		translateBrush(b, delta)
	}

	if origin, ok := e.Params["origin"]; ok {
		e.Params["origin"] = translateOriginString(origin, delta)
	}
}

func translateBrush(b *qmap.Brush, delta qmap.Vec3) {
	for i := range b.Faces {
		translateFace(&b.Faces[i], delta)
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func eq3(t qmap.Triple, x, y, z float64) bool {
	return t.X.Value == x && t.Y.Value == y && t.Z.Value == z
}

// translateFace moves a face's plane points and adjusts its texture
// offsets per the empirical table in the reference generator's
// Brush.move (original_source/map_parser.py). The table is opaque by
// design: each condition is ported exactly, including the two Z-move
// branches annotated there as "possibly not needed (added by mistake)"
// — carried through unchanged.
func translateFace(f *qmap.Face, delta qmap.Vec3) {
	for i, p := range f.Points {
		f.Points[i] = qmap.Triple{
			X: p.X.Add(delta.X),
			Y: p.Y.Add(delta.Y),
			Z: p.Z.Add(delta.Z),
		}
	}

	signU := sign(f.ScaleU.Value)
	signV := sign(f.ScaleV.Value)

	// X texture move
	if eq3(f.U, -1, 0, 0) && eq3(f.V, 0, -1, 0) {
		f.OffsetU = f.OffsetU.Add(delta.X * signU)
	}
	if eq3(f.U, 1, 0, 0) && eq3(f.V, 0, -1, 0) {
		f.OffsetU = f.OffsetU.Add(-delta.X * signU)
	}
	if eq3(f.U, -1, 0, 0) && eq3(f.V, 0, 0, -1) {
		f.OffsetU = f.OffsetU.Add(delta.X * signU)
	}
	if eq3(f.U, 1, 0, 0) && eq3(f.V, 0, 0, -1) {
		f.OffsetU = f.OffsetU.Add(-delta.X * signU)
	}

	// Y texture move
	if eq3(f.U, 0, 1, 0) {
		f.OffsetU = f.OffsetU.Add(-delta.Y * signU)
	}
	if eq3(f.U, 0, -1, 0) {
		f.OffsetU = f.OffsetU.Add(delta.Y * signU)
	}
	if eq3(f.U, 1, 0, 0) && eq3(f.V, 0, -1, 0) {
		f.OffsetV = f.OffsetV.Add(delta.Y * signV)
	}
	if eq3(f.U, -1, 0, 0) && eq3(f.V, 0, -1, 0) {
		f.OffsetV = f.OffsetV.Add(delta.Y * signV)
	}

	// Z texture move
	if eq3(f.U, 0, 0, -1) && eq3(f.V, 0, 1, 0) {
		f.OffsetU = f.OffsetU.Add(delta.Z * signU)
	}
	if eq3(f.U, 0, 0, 1) && eq3(f.V, 0, 1, 0) {
		f.OffsetU = f.OffsetU.Add(-delta.Z * signU)
	}
	if eq3(f.U, 1, 0, 0) && eq3(f.V, 0, 0, -1) {
		f.OffsetV = f.OffsetV.Add(delta.Z * signV)
	}
	if eq3(f.U, -1, 0, 0) && eq3(f.V, 0, 0, -1) {
		f.OffsetV = f.OffsetV.Add(delta.Z * signV)
	}
	if eq3(f.U, 0, 1, 0) && eq3(f.V, 0, 0, -1) {
		f.OffsetV = f.OffsetV.Add(delta.Z * signV)
	}
	if eq3(f.U, 0, -1, 0) && eq3(f.V, 0, 0, -1) {
		f.OffsetV = f.OffsetV.Add(delta.Z * signV)
	}
}

func translateOriginString(origin string, delta qmap.Vec3) string {
	fields := strings.Fields(origin)
	if len(fields) != 3 {
		return origin
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	z, errZ := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil || errZ != nil {
		return origin
	}
	return formatFloat(x+delta.X) + " " + formatFloat(y+delta.Y) + " " + formatFloat(z+delta.Z)
}
