package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// RotateMap rotates m in place by deg degrees about the Z axis. deg must
// be a multiple of 90; any other value returns *BadRotation and leaves m
// unmodified (rotation of worldspawn is applied before any entity, so a
// mid-rotation failure is only possible for degrees that fail validation
// up front — validation happens first).
func RotateMap(m *qmap.Map, deg int) error {
	deg = ((deg % 360) + 360) % 360
	if deg%90 != 0 {
		return &BadRotation{Degrees: deg}
	}
	if deg == 0 {
		return nil
	}

	rotateEntity(m.Worldspawn, deg)
	for _, e := range m.Entities {
		rotateEntity(e, deg)
	}
	return nil
}

func rotateEntity(e *qmap.Entity, deg int) {
	for _, b := range e.Brushes {
		rotateBrush(b, deg)
	}

	if origin, ok := e.Params["origin"]; ok {
		e.Params["origin"] = rotateOriginString(origin, deg)
	}

	if angles, ok := e.Params["angles"]; ok {
		e.Params["angles"] = rotateAnglesString(angles, deg)
	}
}

func rotateBrush(b *qmap.Brush, deg int) {
	for i := range b.Faces {
		rotateFace(&b.Faces[i], deg)
	}
}

// rotateFace rotates a face's plane points and adjusts its texture axis
// encoding, ported condition-for-condition from the reference generator's
// Brush.rotate (original_source/map_parser.py). Texture axis vectors are
// swapped, never rotated through the same point-rotation table as plane
// points — that asymmetry is the on-disk encoding, not an oversight.
func rotateFace(f *qmap.Face, deg int) {
	for i, p := range f.Points {
		f.Points[i] = rotateTriple(p, deg)
	}

	if deg%180 == 90 {
		f.U.X, f.U.Y = f.U.Y, f.U.X
		f.V.X, f.V.Y = f.V.Y, f.V.X
	}

	if deg == 180 || deg == 90 {
		if f.U.X.Value == 0 && f.V.X.Value == 0 {
			f.ScaleU = f.ScaleU.Neg()
		}
	}

	if deg == 180 || deg == 270 {
		if f.U.Y.Value == 0 && f.V.Y.Value == 0 {
			f.ScaleU = f.ScaleU.Neg()
		}
	}
}

// rotateTriple applies the right-angle rotation table to a single
// coordinate triple.
func rotateTriple(t qmap.Triple, deg int) qmap.Triple {
	switch deg {
	case 0:
		return t
	case 90:
		return qmap.Triple{X: t.Y, Y: t.X.Neg(), Z: t.Z}
	case 180:
		return qmap.Triple{X: t.X.Neg(), Y: t.Y.Neg(), Z: t.Z}
	case 270:
		return qmap.Triple{X: t.Y.Neg(), Y: t.X, Z: t.Z}
	default:
		panic(fmt.Sprintf("transform: unreachable rotation %d", deg))
	}
}

// RotatePoint applies the right-angle rotation table to a plain vector —
// used by the assembly driver to rotate a connector's centroid, and here
// to rotate entity origins.
func RotatePoint(v qmap.Vec3, deg int) qmap.Vec3 {
	switch deg {
	case 0:
		return v
	case 90:
		return qmap.Vec3{X: v.Y, Y: -v.X, Z: v.Z}
	case 180:
		return qmap.Vec3{X: -v.X, Y: -v.Y, Z: v.Z}
	case 270:
		return qmap.Vec3{X: -v.Y, Y: v.X, Z: v.Z}
	default:
		panic(fmt.Sprintf("transform: unreachable rotation %d", deg))
	}
}

func rotateOriginString(origin string, deg int) string {
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
	rotated := RotatePoint(qmap.Vec3{X: x, Y: y, Z: z}, deg)
	return formatFloat(rotated.X) + " " + formatFloat(rotated.Y) + " " + formatFloat(rotated.Z)
}

// rotateAnglesString updates only the yaw component of "pitch yaw roll",
// matching Entity.rotate in the reference generator: yaw becomes
// (yaw - deg) mod 360, formatted with no decimal places; pitch and roll
// pass through as their original tokens, untouched.
func rotateAnglesString(angles string, deg int) string {
	fields := strings.Fields(angles)
	if len(fields) != 3 {
		return angles
	}
	yaw, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return angles
	}
	newYaw := yaw - float64(deg)
	newYaw = newYaw - 360*floorDiv(newYaw, 360)
	return fields[0] + " " + strconv.FormatFloat(newYaw, 'f', 0, 64) + " " + fields[2]
}

// floorDiv returns floor(a/b), used to implement Python's modulo
// semantics (result always has the sign of b) for the yaw wrap-around.
func floorDiv(a, b float64) float64 {
	q := a / b
	if q < 0 {
		iq := float64(int64(q))
		if iq != q {
			return iq - 1
		}
		return iq
	}
	return float64(int64(q))
}

// formatFloat renders a float64 the way the reference generator's
// Python f-strings do: always with a decimal point. Negative zero (from
// negating a zero coordinate) is written as "0.0".
func formatFloat(v float64) string {
	if v == 0 {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
