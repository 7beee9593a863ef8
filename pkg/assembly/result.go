package assembly

import "github.com/max-lv/goldsrc-map-generator/pkg/qmap"

// Result is what Run returns: whether the root closed (no open
// connectors remaining), the root itself (usable even on failure — the
// reference generator's callers commonly discard and retry with a new
// seed, but the partial map is valid enough to inspect or write), the
// basenames of every tile merged in placement order (start tile first),
// and, on failure, which termination condition fired.
type Result struct {
	Success       bool
	Root          *qmap.Map
	PlacedTiles   []string
	FailureReason string
}
