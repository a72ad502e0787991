package ui

import (
	"math"
	"strconv"

	"mad-terrain/internal/core"
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowControl
	rowInfo
)

// hudRow is one line of the parameter panel. key is set for control and info
// rows; control indexes the controls slice passed to layoutRows.
type hudRow struct {
	kind    rowKind
	label   string
	key     string
	control int
	top     int
}

const otherGroup = "Other"

// layoutRows orders the panel by parameter group: each header is followed by
// the group's adjustable controls and then its read-only values. Controls that
// no group lists are collected under a trailing "Other" header.
func layoutRows(snap core.ParameterSnapshot, controls []core.ParameterControl, top int) []hudRow {
	byKey := make(map[string]int, len(controls))
	for i, c := range controls {
		byKey[c.Key] = i
	}
	placed := make([]bool, len(controls))

	var rows []hudRow
	add := func(r hudRow) {
		r.top = top
		top += rowHeight(r.kind)
		rows = append(rows, r)
	}
	for _, g := range snap.Groups {
		add(hudRow{kind: rowHeader, label: g.Name})
		for _, p := range g.Params {
			if i, ok := byKey[p.Key]; ok && !placed[i] {
				placed[i] = true
				add(hudRow{kind: rowControl, label: controls[i].Label, key: p.Key, control: i})
			}
		}
		for _, p := range g.Params {
			if _, ok := byKey[p.Key]; !ok {
				add(hudRow{kind: rowInfo, label: p.Label, key: p.Key})
			}
		}
	}
	header := false
	for i, c := range controls {
		if placed[i] {
			continue
		}
		if !header {
			add(hudRow{kind: rowHeader, label: otherGroup})
			header = true
		}
		add(hudRow{kind: rowControl, label: c.Label, key: c.Key, control: i})
	}
	return rows
}

func rowHeight(k rowKind) int {
	switch k {
	case rowHeader:
		return headerRowHeight
	case rowControl:
		return controlRowHeight
	default:
		return infoRowHeight
	}
}

// stepSize is the magnitude of one +/- press.
func stepSize(ctrl core.ParameterControl) float64 {
	if ctrl.Type == core.ParamTypeInt {
		return math.Max(1, math.Round(ctrl.Step))
	}
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

// nudge moves current one step in direction dir and clamps it to the control
// bounds. ok is false when the value would not change.
func nudge(ctrl core.ParameterControl, current float64, dir int) (float64, bool) {
	if dir == 0 {
		return current, false
	}
	next := current + float64(dir)*stepSize(ctrl)
	if ctrl.HasMin {
		next = math.Max(next, ctrl.Min)
	}
	if ctrl.HasMax {
		next = math.Min(next, ctrl.Max)
	}
	if ctrl.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	return next, math.Abs(next-current) > 1e-9
}

// parseValue reads a snapshot value for ctrl. String parameters are never
// adjustable.
func parseValue(ctrl core.ParameterControl, raw string) (float64, bool) {
	switch ctrl.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(raw)
		return float64(v), err == nil
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		return v, err == nil && !math.IsNaN(v)
	}
	return 0, false
}

// formatValue renders v with a precision matching the control step.
func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	step := stepSize(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

const (
	headerRowHeight  = 20
	controlRowHeight = 30
	infoRowHeight    = 14
)
