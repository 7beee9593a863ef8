package assembly

import "fmt"

// ConfigError reports a problem with the tileset or options handed to an
// Assembler that no amount of retrying can fix — as opposed to a
// PlacementFailure, which is a routine, retried outcome folded into
// Result rather than returned as an error.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("assembly: %s", e.Reason)
}

// ErrNoStartTile is returned by Run when the tileset has an empty start
// pool; there is no tile to seed the root map with.
var ErrNoStartTile = &ConfigError{Reason: "tileset has no start tile"}
