// Package qmap provides the in-memory map model — worldspawn, entities,
// brushes, and faces — together with a parser and serializer for the
// textual map format. Transform operations (rotation, translation) live in
// the sibling package transform; qmap itself only models and round-trips.
package qmap
