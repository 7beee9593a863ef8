package scoping

import (
	"strconv"
	"strings"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// countPrefix marks a health value as a deferred count rather than a
// literal number: "$count$NAME" resolves to the number of entities in
// the root whose targetname equals NAME.
const countPrefix = "$count$"

// BackfillCounters resolves every "$count$NAME" health value in root
// into the literal count of entities whose targetname equals NAME, and
// is meant to run once against the fully assembled root map, after
// every tile has been placed and renamed — counts are taken across
// root.Entities only, never a single tile's subset.
func BackfillCounters(root *qmap.Map) {
	counts := make(map[string]int)
	for _, ent := range root.Entities {
		name := ent.Params["targetname"]
		if name != "" {
			counts[name]++
		}
	}

	for _, ent := range root.Entities {
		health, ok := ent.Params["health"]
		if !ok || !strings.HasPrefix(health, countPrefix) {
			continue
		}
		target := strings.TrimPrefix(health, countPrefix)
		ent.Params["health"] = strconv.Itoa(counts[target])
	}
}
