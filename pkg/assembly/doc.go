// Package assembly implements the stateful driver loop that grows a root
// map by repeatedly picking an open connector, aligning a candidate tile
// against it, rejecting on collision or boundary violation, and merging on
// success. It is the only package that sequences the rest of the module:
// qmap for the data model, transform for rotation/translation, connector
// for discovery, collision for rejection tests, scoping for the per-tile
// fixups, and rng for the single deterministic generator the whole run
// shares.
package assembly
