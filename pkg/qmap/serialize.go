package qmap

import "strings"

// Serialize renders m back to the textual map format: worldspawn first,
// then the remaining entities in their current order, with CRLF line
// endings. The body is built with plain "\n" and converted to
// CRLF as a final pass, mirroring how the reference generator's text
// writer opens its output file in CRLF-translating mode rather than
// hand-joining "\r\n" everywhere.
func Serialize(m *Map) string {
	var sb strings.Builder
	writeEntity(&sb, m.Worldspawn)
	for _, e := range m.Entities {
		writeEntity(&sb, e)
	}
	return strings.ReplaceAll(sb.String(), "\n", "\r\n")
}

func writeEntity(sb *strings.Builder, e *Entity) {
	sb.WriteString("{\n")
	for _, k := range e.ParamOrder() {
		sb.WriteString(`"` + k + `" "` + e.Params[k] + "\"\n")
	}
	for _, b := range e.Brushes {
		writeBrush(sb, b)
	}
	sb.WriteString("}\n")
}

func writeBrush(sb *strings.Builder, b *Brush) {
	sb.WriteString("{\n")
	for _, f := range b.Faces {
		writeFace(sb, &f)
	}
	sb.WriteString("}\n")
}

func writeFace(sb *strings.Builder, f *Face) {
	sb.WriteString("( " + f.Points[0].X.String() + " " + f.Points[0].Y.String() + " " + f.Points[0].Z.String() + " ) ")
	sb.WriteString("( " + f.Points[1].X.String() + " " + f.Points[1].Y.String() + " " + f.Points[1].Z.String() + " ) ")
	sb.WriteString("( " + f.Points[2].X.String() + " " + f.Points[2].Y.String() + " " + f.Points[2].Z.String() + " ) ")
	sb.WriteString(f.Texture + " ")
	sb.WriteString("[ " + f.U.X.String() + " " + f.U.Y.String() + " " + f.U.Z.String() + " " + f.OffsetU.String() + " ] ")
	sb.WriteString("[ " + f.V.X.String() + " " + f.V.Y.String() + " " + f.V.Z.String() + " " + f.OffsetV.String() + " ] ")
	sb.WriteString(f.Degree.String() + " " + f.ScaleU.String() + " " + f.ScaleV.String() + "\n")
}
