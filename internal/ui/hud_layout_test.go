package ui

import (
	"testing"

	"mad-terrain/internal/core"
)

func TestLayoutRowsFollowsGroups(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{{Key: "seed", Label: "Seed"}, {Key: "width", Label: "Width"}}},
		{Name: "Caves", Params: []core.Parameter{{Key: "size", Label: "Size"}, {Key: "threshold", Label: "Threshold"}}},
	}}
	controls := []core.ParameterControl{
		{Key: "threshold", Label: "Cave threshold", Type: core.ParamTypeFloat},
		{Key: "orphan", Label: "Orphan", Type: core.ParamTypeInt},
	}
	rows := layoutRows(snap, controls, 10)

	want := []struct {
		kind rowKind
		key  string
	}{
		{rowHeader, ""},
		{rowInfo, "seed"},
		{rowInfo, "width"},
		{rowHeader, ""},
		{rowControl, "threshold"},
		{rowInfo, "size"},
		{rowHeader, ""},
		{rowControl, "orphan"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(rows), len(want), rows)
	}
	top := 10
	for i, w := range want {
		if rows[i].kind != w.kind || rows[i].key != w.key {
			t.Fatalf("row %d = %+v, want kind %d key %q", i, rows[i], w.kind, w.key)
		}
		if rows[i].top != top {
			t.Fatalf("row %d top = %d, want %d", i, rows[i].top, top)
		}
		top += rowHeight(rows[i].kind)
	}
	if rows[4].control != 0 || rows[7].control != 1 {
		t.Fatal("control rows must index the control slice")
	}
	if rows[6].label != otherGroup {
		t.Fatalf("unlisted controls go under %q, got %q", otherGroup, rows[6].label)
	}
}

func TestNudgeClampsAndRounds(t *testing.T) {
	f := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 1, HasMin: true, HasMax: true}
	if v, ok := nudge(f, 0.95, 1); !ok || v != 1 {
		t.Fatalf("nudge up near max = %g,%v want 1,true", v, ok)
	}
	if _, ok := nudge(f, 1, 1); ok {
		t.Fatal("a value at max cannot move up")
	}
	if v, ok := nudge(f, 0.5, -1); !ok || v < 0.399 || v > 0.401 {
		t.Fatalf("nudge down = %g,%v", v, ok)
	}

	i := core.ParameterControl{Type: core.ParamTypeInt, Step: 0.4, Min: -2, HasMin: true}
	if v, ok := nudge(i, 0, -1); !ok || v != -1 {
		t.Fatalf("int step rounds up to 1, got %g,%v", v, ok)
	}
	if _, ok := nudge(i, -2, -1); ok {
		t.Fatal("a value at min cannot move down")
	}
	if _, ok := nudge(i, 3, 0); ok {
		t.Fatal("zero direction never moves")
	}
}

func TestParseAndFormatValue(t *testing.T) {
	i := core.ParameterControl{Type: core.ParamTypeInt}
	if v, ok := parseValue(i, "42"); !ok || v != 42 || formatValue(i, v) != "42" {
		t.Fatalf("int parse/format = %g,%v", v, ok)
	}
	if _, ok := parseValue(i, "4.2"); ok {
		t.Fatal("a float is not a valid int value")
	}

	f := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.005}
	if v, ok := parseValue(f, "0.25"); !ok || formatValue(f, v) != "0.250" {
		t.Fatalf("float format = %q", formatValue(f, v))
	}
	if _, ok := parseValue(f, "NaN"); ok {
		t.Fatal("NaN is not adjustable")
	}
	if _, ok := parseValue(core.ParameterControl{Type: core.ParamTypeString}, "simplex"); ok {
		t.Fatal("string parameters are not adjustable")
	}
	if got := formatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.5}, 1.25); got != "1.2" && got != "1.3" {
		t.Fatalf("coarse step format = %q", got)
	}
}
