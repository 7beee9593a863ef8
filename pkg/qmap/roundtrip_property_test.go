package qmap

import (
	"testing"

	"pgregory.net/rapid"
)

var textures = []string{"WALL1", "FLOOR-A", "{TRANS", "METAL_01", "ROCK~2"}

func genNum(t *rapid.T, label string) Num {
	whole := rapid.Int64Range(-4096, 4096).Draw(t, label+"_whole")
	isInt := rapid.Bool().Draw(t, label+"_isInt")
	if isInt {
		return Num{Value: float64(whole), IsInt: true}
	}
	return Num{Value: float64(whole) + 0.5, IsInt: false}
}

func genTriple(t *rapid.T, label string) Triple {
	return Triple{
		X: genNum(t, label+"_x"),
		Y: genNum(t, label+"_y"),
		Z: genNum(t, label+"_z"),
	}
}

func genFace(t *rapid.T, label string) Face {
	return Face{
		Points: [3]Triple{
			genTriple(t, label+"_p0"),
			genTriple(t, label+"_p1"),
			genTriple(t, label+"_p2"),
		},
		Texture: rapid.SampledFrom(textures).Draw(t, label+"_tex"),
		U:       genTriple(t, label+"_u"),
		OffsetU: genNum(t, label+"_offu"),
		V:       genTriple(t, label+"_v"),
		OffsetV: genNum(t, label+"_offv"),
		Degree:  genNum(t, label+"_deg"),
		ScaleU:  genNum(t, label+"_su"),
		ScaleV:  genNum(t, label+"_sv"),
	}
}

func genBrush(t *rapid.T, label string) *Brush {
	faceCount := rapid.IntRange(4, 7).Draw(t, label+"_faceCount")
	faces := make([]Face, faceCount)
	for i := range faces {
		faces[i] = genFace(t, label+"_face")
	}
	return &Brush{Faces: faces}
}

// TestProperty_RoundTripIsStableAfterFirstParse checks invariant 1
// (round-trip): once a map has been through one parse/serialize cycle,
// further cycles reproduce the exact same bytes.
func TestProperty_RoundTripIsStableAfterFirstParse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		worldspawn := NewEntity("worldspawn")
		worldspawn.Brushes = []*Brush{genBrush(t, "world")}

		entityCount := rapid.IntRange(0, 3).Draw(t, "entityCount")
		entities := make([]*Entity, entityCount)
		for i := range entities {
			e := NewEntity("info_connector")
			e.SetParam("name", rapid.SampledFrom([]string{"door", "window", "crates"}).Draw(t, "connType"))
			entities[i] = e
		}

		m := &Map{Worldspawn: worldspawn, Entities: entities}
		out1 := Serialize(m)

		parsed, err := Parse(out1)
		if err != nil {
			t.Fatalf("Parse: %v\n%s", err, out1)
		}
		out2 := Serialize(parsed)

		if out1 != out2 {
			t.Fatalf("round-trip not stable:\n--- first ---\n%s\n--- second ---\n%s", out1, out2)
		}
	})
}
