package assembly

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

// LoadTileset classifies every *.map file in dir into start/cap/ordinary
// pools, mirroring load_tileset() in the reference generator: a file
// named "start.map" or prefixed "start_" is a start tile, "cap.map" or
// prefixed "cap_" is a cap tile, everything else is ordinary. Files
// containing ".auto." (editor autosaves) and anything not ending in
// ".map" are skipped.
func LoadTileset(dir string) (Tileset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Tileset{}, fmt.Errorf("reading tileset directory: %w", err)
	}

	var set Tileset

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.Contains(name, ".auto.") {
			continue
		}
		if !strings.HasSuffix(name, ".map") {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Tileset{}, fmt.Errorf("reading tile %q: %w", name, err)
		}
		m, err := qmap.Parse(string(data))
		if err != nil {
			return Tileset{}, fmt.Errorf("parsing tile %q: %w", name, err)
		}
		named := NamedMap{Name: name, Template: m}

		switch {
		case name == "start.map" || strings.HasPrefix(name, "start_"):
			set.Start = append(set.Start, named)
		case name == "cap.map" || strings.HasPrefix(name, "cap_"):
			set.Cap = append(set.Cap, named)
		default:
			set.Ordinary = append(set.Ordinary, named)
		}
	}

	return set, nil
}
