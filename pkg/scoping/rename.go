package scoping

import (
	"fmt"
	"strings"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// scopedParams are the entity keys rewritten to be tile-unique.
var scopedParams = []string{"target", "targetname", "killtarget"}

// Rename rewrites cross-reference params in every entity of tile so
// duplicated tiles placed elsewhere in the root don't cross-trigger:
// value V becomes "tileNNN_V" where NNN is tileIndex zero-padded to three
// digits. Three values are left unchanged: those starting with "g_"
// (global across all tiles), those starting with "$count$" (deferred to
// BackfillCounters), and a game_player_equip entity's reference to
// game_playerspawn.
func Rename(tile *qmap.Map, tileIndex int) {
	prefix := fmt.Sprintf("tile%03d_", tileIndex)

	for _, ent := range tile.Entities {
		for _, name := range scopedParams {
			value, ok := ent.Params[name]
			if !ok || value == "" {
				continue
			}
			if isExempt(ent, value) {
				continue
			}
			ent.Params[name] = prefix + value
		}
	}
}

func isExempt(ent *qmap.Entity, value string) bool {
	if strings.HasPrefix(value, "g_") {
		return true
	}
	if strings.HasPrefix(value, "$count$") {
		return true
	}
	if ent.Classname() == "game_player_equip" && value == "game_playerspawn" {
		return true
	}
	return false
}
