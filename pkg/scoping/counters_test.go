package scoping

import (
	"testing"

	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

func TestBackfillCountersResolvesAcrossRoot(t *testing.T) {
	doorA := qmap.NewEntity("func_door")
	doorA.SetParam("targetname", "door")
	doorB := qmap.NewEntity("func_door")
	doorB.SetParam("targetname", "door")
	counter := qmap.NewEntity("trigger_counter")
	counter.SetParam("health", "$count$door")

	m := &qmap.Map{
		Worldspawn: qmap.NewEntity("worldspawn"),
		Entities:   []*qmap.Entity{doorA, doorB, counter},
	}

	BackfillCounters(m)

	if got := counter.Params["health"]; got != "2" {
		t.Fatalf("health = %q, want 2", got)
	}
}

func TestBackfillCountersResolvesToZeroForUnmatchedName(t *testing.T) {
	counter := qmap.NewEntity("trigger_counter")
	counter.SetParam("health", "$count$nonexistent")
	m := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn"), Entities: []*qmap.Entity{counter}}

	BackfillCounters(m)

	if got := counter.Params["health"]; got != "0" {
		t.Fatalf("health = %q, want 0", got)
	}
}

func TestBackfillCountersLeavesOrdinaryHealthAlone(t *testing.T) {
	ent := qmap.NewEntity("monster_headcrab")
	ent.SetParam("health", "20")
	m := &qmap.Map{Worldspawn: qmap.NewEntity("worldspawn"), Entities: []*qmap.Entity{ent}}

	BackfillCounters(m)

	if got := ent.Params["health"]; got != "20" {
		t.Fatalf("health = %q, want unchanged 20", got)
	}
}
