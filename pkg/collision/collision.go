package collision

import (
	"github.com/max-lv/goldsrc-map-generator/pkg/connector"
	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// AllBrushes returns every brush that counts toward collision: the
// worldspawn brushes plus the brushes of every non-connector entity.
// Connector entities exist only to mark snap points and are excluded —
// this is the single filter point every brush-gathering traversal must
// apply.
func AllBrushes(m *qmap.Map) []*qmap.Brush {
	brushes := append([]*qmap.Brush(nil), m.Worldspawn.Brushes...)
	for _, e := range m.Entities {
		if e.Classname() == connector.ClassName {
			continue
		}
		brushes = append(brushes, e.Brushes...)
	}
	return brushes
}

// Intersects reports whether any brush of a collides with any brush of b,
// using strict open-interval overlap on all three axes — brushes whose
// AABBs only touch do not collide.
func Intersects(a, b *qmap.Map) bool {
	aBrushes := AllBrushes(a)
	bBrushes := AllBrushes(b)

	for _, ba := range aBrushes {
		boxA := ba.AABB()
		for _, bb := range bBrushes {
			boxB := bb.AABB()
			if boxesOverlap(boxA, boxB) {
				return true
			}
		}
	}
	return false
}

func boxesOverlap(a, b qmap.Bounds) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// OutOfBounds reports whether any worldspawn brush point of m lies
// outside [-limit, +limit] on any axis.
func OutOfBounds(m *qmap.Map, limit float64) bool {
	for _, b := range m.Worldspawn.Brushes {
		box := b.AABB()
		if box.Min.X < -limit || box.Max.X > limit {
			return true
		}
		if box.Min.Y < -limit || box.Max.Y > limit {
			return true
		}
		if box.Min.Z < -limit || box.Max.Z > limit {
			return true
		}
	}
	return false
}
