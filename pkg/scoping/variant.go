package scoping

import (
	"strconv"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
	"github.com/max-lv/goldsrc-map-generator/pkg/rng"
)

// mapgenChoiceKey marks an entity as one of several mutually exclusive
// variants; the tile carries exactly one of them forward.
const mapgenChoiceKey = "mapgen_choice"

// SelectVariant scans tile's entities for mapgen_choice, picks exactly
// one entity among them by weighted random selection, strips the key
// from the winner, and drops the rest. Entities with no mapgen_choice key
// are kept untouched and in their original relative order; the winner is
// appended after them, matching the reference generator's
// apply_entity_mapgen_choice (other_entities built first, winner
// appended last).
//
// Callers are expected to snapshot and restore r around this call (spec
// §4.6, §9): enabling or disabling the choice feature on a tile should
// not change which tiles are drawn afterward from the same seed.
func SelectVariant(tile *qmap.Map, r *rng.RNG) error {
	var others []*qmap.Entity
	var choices []*qmap.Entity
	var weights []float64

	for _, ent := range tile.Entities {
		raw, ok := ent.Params[mapgenChoiceKey]
		if !ok {
			others = append(others, ent)
			continue
		}
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &ParseError{Reason: "mapgen_choice value " + raw + " is not a number"}
		}
		choices = append(choices, ent)
		weights = append(weights, weight)
	}

	if len(choices) == 0 {
		return nil
	}

	winner := choices[r.WeightedChoice(weights)]
	winner.DeleteParam(mapgenChoiceKey)
	others = append(others, winner)
	tile.Entities = others
	return nil
}
