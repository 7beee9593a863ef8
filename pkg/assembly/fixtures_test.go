package assembly

import (
	"fmt"

	"github.com/max-lv/goldsrc-map-generator/pkg/connector"
	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// cubeBrush builds an axis-aligned box brush spanning [min,max]. The U/V
// texture axes and offsets are left at their zero value (only the texture
// name and unit scales are set): these fixtures exercise geometry
// (rotation, translation, collision, boundary), and a zero U/V is
// harmless — none of the texture-offset table's conditions match a zero
// Triple.
func cubeBrush(min, max qmap.Vec3) *qmap.Brush {
	corners := [8]qmap.Vec3{
		{min.X, min.Y, min.Z}, {max.X, min.Y, min.Z},
		{max.X, max.Y, min.Z}, {min.X, max.Y, min.Z},
		{min.X, min.Y, max.Z}, {max.X, min.Y, max.Z},
		{max.X, max.Y, max.Z}, {min.X, max.Y, max.Z},
	}
	faceCorners := [6][3]int{
		{0, 1, 2}, {4, 5, 6}, {0, 1, 5},
		{2, 3, 7}, {0, 3, 7}, {1, 2, 6},
	}

	faces := make([]qmap.Face, len(faceCorners))
	for i, idx := range faceCorners {
		faces[i] = qmap.Face{
			Points: [3]qmap.Triple{
				qmap.NewTriple(corners[idx[0]].X, corners[idx[0]].Y, corners[idx[0]].Z),
				qmap.NewTriple(corners[idx[1]].X, corners[idx[1]].Y, corners[idx[1]].Z),
				qmap.NewTriple(corners[idx[2]].X, corners[idx[2]].Y, corners[idx[2]].Z),
			},
			Texture: "WALL1",
			ScaleU:  qmap.NewNum(1),
			ScaleV:  qmap.NewNum(1),
		}
	}
	return &qmap.Brush{Faces: faces}
}

// newConnectorEntity builds an info_connector entity at center, facing
// yaw degrees, of the given type name. Its anchor brush is a small cube
// around center so Centroid() resolves to exactly center.
func newConnectorEntity(connType string, center qmap.Vec3, yaw int) *qmap.Entity {
	e := qmap.NewEntity(connector.ClassName)
	e.SetParam("name", connType)
	e.SetParam("angles", fmt.Sprintf("0 %d 0", yaw))
	half := qmap.Vec3{X: 4, Y: 4, Z: 4}
	e.Brushes = []*qmap.Brush{cubeBrush(center.Sub(half), center.Add(half))}
	return e
}

// newWorldBrushTile builds a Map whose worldspawn is a single cube
// brush spanning [min,max], plus the given connector entities.
func newWorldBrushTile(min, max qmap.Vec3, conns ...*qmap.Entity) *qmap.Map {
	worldspawn := qmap.NewEntity("worldspawn")
	worldspawn.Brushes = []*qmap.Brush{cubeBrush(min, max)}
	m := &qmap.Map{Worldspawn: worldspawn}
	m.Entities = append(m.Entities, conns...)
	return m
}
