package assembly

// Options holds the tunables of the assembly loop. The zero
// value is not directly usable; call WithDefaults to fill unset fields
// with the values the reference generator hardcodes.
type Options struct {
	// TileLimit is the placement count after which the driver draws only
	// from the cap pool.
	TileLimit int `yaml:"tileLimit" json:"tileLimit"`
	// BoundaryLimit is the half-width of the allowed world cube: every
	// worldspawn brush point must lie in [-BoundaryLimit, +BoundaryLimit].
	BoundaryLimit float64 `yaml:"boundaryLimit" json:"boundaryLimit"`
	// AttemptsPerConnector is the number of candidate tiles tried before
	// a connector is declared unsatisfiable.
	AttemptsPerConnector int `yaml:"attemptsPerConnector" json:"attemptsPerConnector"`
}

// WithDefaults returns a copy of o with zero fields replaced by the
// reference generator's defaults (TILE_LIMIT=19, BOUNDARY_LIMIT=4000,
// 10 attempts per connector).
func (o Options) WithDefaults() Options {
	if o.TileLimit == 0 {
		o.TileLimit = 19
	}
	if o.BoundaryLimit == 0 {
		o.BoundaryLimit = 4000
	}
	if o.AttemptsPerConnector == 0 {
		o.AttemptsPerConnector = 10
	}
	return o
}
