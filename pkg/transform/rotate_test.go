package transform

import (
	"testing"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

func TestRotateMapRejectsNonRightAngle(t *testing.T) {
	m := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn")}
	err := RotateMap(m, 45)
	if err == nil {
		t.Fatalf("expected BadRotation for a 45 degree request")
	}
	if _, ok := err.(*BadRotation); !ok {
		t.Fatalf("expected *BadRotation, got %T", err)
	}
}

func TestRotateMapNormalizesNegativeAndOverlargeDegrees(t *testing.T) {
	m1 := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn")}
	m1.Worldspawn.SetParam("origin", "10 0 0")
	if err := RotateMap(m1, -90); err != nil {
		t.Fatalf("RotateMap(-90): %v", err)
	}

	m2 := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn")}
	m2.Worldspawn.SetParam("origin", "10 0 0")
	if err := RotateMap(m2, 270); err != nil {
		t.Fatalf("RotateMap(270): %v", err)
	}

	m3 := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn")}
	m3.Worldspawn.SetParam("origin", "10 0 0")
	if err := RotateMap(m3, 630); err != nil {
		t.Fatalf("RotateMap(630): %v", err)
	}

	if m1.Worldspawn.Params["origin"] != m2.Worldspawn.Params["origin"] {
		t.Fatalf("-90 and 270 should rotate identically: %q vs %q", m1.Worldspawn.Params["origin"], m2.Worldspawn.Params["origin"])
	}
	if m3.Worldspawn.Params["origin"] != m2.Worldspawn.Params["origin"] {
		t.Fatalf("630 and 270 should rotate identically: %q vs %q", m3.Worldspawn.Params["origin"], m2.Worldspawn.Params["origin"])
	}
}

func TestRotateOriginMatchesTable(t *testing.T) {
	cases := []struct {
		deg      int
		x, y, z  float64
		wx, wy   float64
	}{
		{90, 10, 0, 0, 0, -10},
		{180, 10, 0, 0, -10, 0},
		{270, 10, 0, 0, 0, 10},
	}
	for _, c := range cases {
		m := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn")}
		m.Worldspawn.SetParam("origin", formatFloat(c.x)+" "+formatFloat(c.y)+" "+formatFloat(c.z))
		if err := RotateMap(m, c.deg); err != nil {
			t.Fatalf("RotateMap(%d): %v", c.deg, err)
		}
		want := formatFloat(c.wx) + " " + formatFloat(c.wy) + " " + formatFloat(c.z)
		if got := m.Worldspawn.Params["origin"]; got != want {
			t.Fatalf("deg=%d origin = %q, want %q", c.deg, got, want)
		}
	}
}

func TestRotateAnglesChangesOnlyYaw(t *testing.T) {
	m := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn")}
	m.Worldspawn.SetParam("angles", "15 90 -5")
	if err := RotateMap(m, 90); err != nil {
		t.Fatalf("RotateMap: %v", err)
	}
	if got := m.Worldspawn.Params["angles"]; got != "15 0 -5" {
		t.Fatalf("angles = %q, want \"15 0 -5\"", got)
	}
}
