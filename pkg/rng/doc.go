// Package rng provides the single deterministic random generator the
// assembly driver consumes. A dungeon-style per-stage derivation (master
// seed + stage name + config hash, hashed with SHA-256) seeds one
// generator for the whole run, since this module has exactly one stage
// (placement), not several. The one addition the driver needs beyond
// straightforward derivation is Snapshot/Restore, so variant selection
// (pkg/scoping) can consume randomness without perturbing the sequence
// the rest of the driver sees.
package rng
