// Package export renders a top-down SVG schematic of a generated map:
// worldspawn and entity brushes as XY-projected rects, connector entities
// as yaw-oriented dots. It is a debugging aid, not part of the .map
// output itself, and has no dependency on the assembly driver — it only
// reads the final qmap.Map.
package export
