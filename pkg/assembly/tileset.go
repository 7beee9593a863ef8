package assembly

import "github.com/max-lv/goldsrc-map-generator/pkg/qmap"

// NamedMap pairs a parsed tile template with the basename it was loaded
// from, so a Result can report which files were used without this
// package needing to know anything about the filesystem.
type NamedMap struct {
	Name     string
	Template *qmap.Map
}

// Tileset is the three classified tile pools an Assembler draws from.
// LoadTileset builds one from a directory (start*/cap*/else, .auto.
// exclusion); the Assembler itself only reads the pools it is given.
type Tileset struct {
	Start    []NamedMap
	Cap      []NamedMap
	Ordinary []NamedMap
}
