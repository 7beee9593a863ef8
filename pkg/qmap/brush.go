package qmap

import "math"

// Brush is an ordered sequence of faces bounding a convex solid.
type Brush struct {
	Faces []Face
}

// Clone returns a deep copy of the brush.
func (b *Brush) Clone() *Brush {
	faces := make([]Face, len(b.Faces))
	copy(faces, b.Faces)
	return &Brush{Faces: faces}
}

// Bounds is an axis-aligned bounding box, half-open on no axis: Min and
// Max are both inclusive of the extremal face points that produced them.
type Bounds struct {
	Min, Max Vec3
}

// AABB computes the brush's bounding box from the union of all
// face-defining points, matching min_max() in the reference generator:
// it is always recomputed, never cached, so a brush mutated by rotation
// or translation reports a fresh box on the next call.
func (b *Brush) AABB() Bounds {
	bnd := Bounds{
		Min: Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for _, f := range b.Faces {
		for _, p := range f.Points {
			v := p.Of()
			if v.X < bnd.Min.X {
				bnd.Min.X = v.X
			}
			if v.Y < bnd.Min.Y {
				bnd.Min.Y = v.Y
			}
			if v.Z < bnd.Min.Z {
				bnd.Min.Z = v.Z
			}
			if v.X > bnd.Max.X {
				bnd.Max.X = v.X
			}
			if v.Y > bnd.Max.Y {
				bnd.Max.Y = v.Y
			}
			if v.Z > bnd.Max.Z {
				bnd.Max.Z = v.Z
			}
		}
	}
	return bnd
}

// Centroid returns the midpoint of the brush's bounding box.
func (b Bounds) Centroid() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}
