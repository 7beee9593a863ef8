package qmap

// Triple is a group of three Num values: a face plane point, or a texture
// axis vector (U/V). Grouping them lets rotation and translation act on a
// whole coordinate at once instead of juggling three Num fields.
type Triple struct {
	X, Y, Z Num
}

// NewTriple builds a Triple from plain float64 components, each inferring
// its own IsInt.
func NewTriple(x, y, z float64) Triple {
	return Triple{X: NewNum(x), Y: NewNum(y), Z: NewNum(z)}
}

// Vec3 is a plain 3D vector used for derived geometry — centroids,
// bounding boxes, translation deltas — that is never itself serialized
// and so carries no integer/float fidelity bit.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Of converts a Triple to a plain Vec3, dropping the fidelity bits.
func (t Triple) Of() Vec3 {
	return Vec3{t.X.Value, t.Y.Value, t.Z.Value}
}
