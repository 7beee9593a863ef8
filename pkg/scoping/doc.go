// Package scoping implements the three global fix-up passes the assembly
// driver runs on a tile or the finished root map: per-tile name scoping
// (so duplicated tiles don't cross-trigger), weighted variant selection
// (mapgen_choice), and counter backfill ($count$NAME).
package scoping
