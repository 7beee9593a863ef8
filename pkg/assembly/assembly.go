package assembly

import (
	"context"
	"fmt"

	"github.com/max-lv/goldsrc-map-generator/pkg/collision"
	"github.com/max-lv/goldsrc-map-generator/pkg/connector"
	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
	"github.com/max-lv/goldsrc-map-generator/pkg/rng"
	"github.com/max-lv/goldsrc-map-generator/pkg/scoping"
	"github.com/max-lv/goldsrc-map-generator/pkg/transform"
)

// Fallback lets a caller override candidate selection for a given
// connector type and attempt index, ahead of the normal ordinary/cap
// draw. Returning ok=false falls through to the normal draw. This is
// how the reference generator's crates-connector special case (a fixed
// tile substituted on attempt index > 7) is reproduced without baking a
// hardcoded tile name into this package.
type Fallback func(connType string, attempt int) (tile *qmap.Map, name string, ok bool)

// Assembler runs the placement loop against a fixed base map and
// tileset. It holds no goroutines and does no I/O; a caller supplies
// already-parsed templates and gets back an already-built root.
type Assembler struct {
	Base     *qmap.Map
	Tileset  Tileset
	Options  Options
	Fallback Fallback

	rng *rng.RNG
}

// NewAssembler creates an Assembler seeded from seed. base defines
// worldspawn and the world's starting geometry (empty but for whatever
// the base map itself contains); it is cloned, never mutated, by Run.
func NewAssembler(base *qmap.Map, tileset Tileset, opts Options, seed uint64) *Assembler {
	return &Assembler{
		Base:    base,
		Tileset: tileset,
		Options: opts,
		rng:     rng.NewRNG(seed, "assembly", nil),
	}
}

// Run executes the placement loop to completion: it terminates with
// Success=true when the root has no open connectors left, or
// Success=false with FailureReason set to which condition ended it. A
// non-nil error is returned for structural failures that no retry can
// fix (an empty start pool, a rotation the transform package rejects, a
// malformed mapgen_choice weight) and for ctx's error when ctx is done —
// never for a routine placement failure, which is reported through
// Result instead.
func (a *Assembler) Run(ctx context.Context) (*Result, error) {
	opts := a.Options.WithDefaults()

	if len(a.Tileset.Start) == 0 {
		return nil, ErrNoStartTile
	}

	root := a.Base.Clone()
	var placed []string

	start := a.Tileset.Start[a.rng.Intn(len(a.Tileset.Start))]
	startTile := start.Template.Clone()
	scoping.Rename(startTile, 0)
	root.Merge(startTile)
	placed = append(placed, start.Name)

	counter := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// counter advances once per connector satisfied, before the pool
		// check below — TileLimit and the rename prefix both read this
		// round's value, not a pre-increment one (ported from the
		// reference generator's while-loop, which increments counter as
		// its very first statement).
		counter++

		open := connector.Find(root, "")
		if len(open) == 0 {
			break
		}

		connA := open[a.rng.Intn(len(open))]

		var scratch *qmap.Map
		var scratchConn connector.Ref
		var candidateName string
		accepted := false

		for attempt := 0; attempt < opts.AttemptsPerConnector; attempt++ {
			candidate, name, err := a.pickCandidate(connA.Type, attempt, counter, opts)
			if err != nil {
				return nil, err
			}
			if candidate == nil {
				return &Result{
					Success:       false,
					Root:          root,
					PlacedTiles:   placed,
					FailureReason: fmt.Sprintf("no tile available for connector type %q", connA.Type),
				}, nil
			}

			trial := candidate.Clone()
			matches := connector.Find(trial, connA.Type)
			if len(matches) == 0 {
				continue
			}
			connB := matches[a.rng.Intn(len(matches))]

			deg := (((180 - (connA.Yaw - connB.Yaw)) % 360) + 360) % 360
			if err := transform.RotateMap(trial, deg); err != nil {
				return nil, err
			}
			rotatedCentroid := transform.RotatePoint(connB.Centroid, deg)
			delta := connA.Centroid.Sub(rotatedCentroid)
			transform.TranslateMap(trial, delta)

			if collision.Intersects(root, trial) {
				continue
			}
			if collision.OutOfBounds(trial, opts.BoundaryLimit) {
				continue
			}

			scratch = trial
			scratchConn = connB
			candidateName = name
			accepted = true
			break
		}

		if !accepted {
			return &Result{
				Success:       false,
				Root:          root,
				PlacedTiles:   placed,
				FailureReason: fmt.Sprintf("connector type %q unsatisfied after %d attempts", connA.Type, opts.AttemptsPerConnector),
			}, nil
		}

		root.RemoveEntity(connA.Index)
		scratch.RemoveEntity(scratchConn.Index)

		scoping.Rename(scratch, counter)

		snapshot := a.rng.Snapshot()
		if err := scoping.SelectVariant(scratch, a.rng); err != nil {
			return nil, err
		}
		a.rng.Restore(snapshot)

		root.Merge(scratch)
		placed = append(placed, candidateName)

		sweepDuplicateConnectors(root)
	}

	scoping.BackfillCounters(root)

	return &Result{
		Success:     true,
		Root:        root,
		PlacedTiles: placed,
	}, nil
}

// pickCandidate resolves the tile to try for the current attempt: the
// caller's Fallback first, then the ordinary pool (or the cap pool once
// counter reaches TileLimit). A nil, "", nil return means no tile could
// be drawn at all (an empty pool), which ends the run as a placement
// failure rather than a Go error.
func (a *Assembler) pickCandidate(connType string, attempt, counter int, opts Options) (*qmap.Map, string, error) {
	if a.Fallback != nil {
		if tile, name, ok := a.Fallback(connType, attempt); ok {
			return tile, name, nil
		}
	}

	pool := a.Tileset.Ordinary
	if counter >= opts.TileLimit {
		pool = a.Tileset.Cap
	}
	if len(pool) == 0 {
		return nil, "", nil
	}

	choice := pool[a.rng.Intn(len(pool))]
	return choice.Template, choice.Name, nil
}

// sweepDuplicateConnectors removes every unordered pair of connectors
// that share a centroid and face exactly opposite ways: back-to-back
// mates that ended up welded by coincidence rather than by the driver's
// own join this round.
func sweepDuplicateConnectors(root *qmap.Map) {
	for {
		conns := connector.Find(root, "")
		removedPair := false

		for i := 0; i < len(conns) && !removedPair; i++ {
			for j := i + 1; j < len(conns); j++ {
				if conns[i].Centroid != conns[j].Centroid {
					continue
				}
				yawDiff := (((conns[i].Yaw - conns[j].Yaw) % 360) + 360) % 360
				if yawDiff != 180 {
					continue
				}
				first, second := conns[i].Index, conns[j].Index
				if first < second {
					first, second = second, first
				}
				root.RemoveEntity(first)
				root.RemoveEntity(second)
				removedPair = true
				break
			}
		}

		if !removedPair {
			return
		}
	}
}
