package connector

import (
	"strconv"
	"strings"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// ClassName is the classname that marks a connector entity.
const ClassName = "info_connector"

// Ref describes one connector found in a map: its position in the
// containing map's entity list, its anchor point, its facing yaw, and its
// type name.
type Ref struct {
	Index    int
	Entity   *qmap.Entity
	Centroid qmap.Vec3
	Yaw      int
	Type     string
}

// Find enumerates all info_connector entities in m, optionally filtered
// to those whose name param equals conType (an empty conType matches
// every connector, mirroring get_connectors(tile, con_type=None) in the
// reference generator).
func Find(m *qmap.Map, conType string) []Ref {
	var refs []Ref
	for i, e := range m.Entities {
		if e.Classname() != ClassName {
			continue
		}
		if conType != "" && e.Params["name"] != conType {
			continue
		}
		refs = append(refs, Ref{
			Index:    i,
			Entity:   e,
			Centroid: Centroid(e),
			Yaw:      Yaw(e),
			Type:     e.Params["name"],
		})
	}
	return refs
}

// Centroid returns the midpoint of a connector entity's one brush's
// bounding box — its anchor point.
func Centroid(e *qmap.Entity) qmap.Vec3 {
	if len(e.Brushes) == 0 {
		return qmap.Vec3{}
	}
	return e.Brushes[0].AABB().Centroid()
}

// Yaw extracts the facing angle from an entity's "angles" param
// ("pitch yaw roll"); the yaw component determines a connector's facing.
// Returns 0 if angles is missing or malformed.
func Yaw(e *qmap.Entity) int {
	fields := strings.Fields(e.Params["angles"])
	if len(fields) != 3 {
		return 0
	}
	yaw, err := strconv.Atoi(fields[1])
	if err != nil {
		f, ferr := strconv.ParseFloat(fields[1], 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return yaw
}
