// Package connector discovers info_connector entities inside a qmap.Map
// and extracts the position, facing, and type that the assembly driver
// needs to snap tiles together.
package connector
