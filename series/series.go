// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series provides the series types drawn by charts:
// [Bar] and [Scatter] on cartesian axes, [Pie] around a center,
// and [Treemap] for hierarchical data.
package series

import (
	"math"
	"slices"
	"strconv"

	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/scene"
)

// New returns a new series of the given type name,
// or nil if there is no such type.
func New(typ string) chart.Series {
	switch typ {
	case "bar", "column":
		return NewBar()
	case "scatter":
		return NewScatter()
	case "pie":
		return NewPie()
	case "treemap":
		return NewTreemap()
	}
	return nil
}

// Types returns the names of the series types known to [New].
func Types() []string {
	return []string{"bar", "scatter", "pie", "treemap"}
}

// colorAt returns the color at index i, cycling through the palette.
func colorAt(palette []string, i int) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[i%len(palette)]
}

// toFixed formats the number with two fraction digits.
func toFixed(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// finite returns the numeric form of the value and whether it is finite.
func finite(v data.Value) (float64, bool) {
	f, ok := v.Float()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// missingKeys warns once for each key that no row of the data has.
func missingKeys(s *chart.SeriesBase, rows []data.Row, keys ...string) {
	if len(rows) == 0 {
		return
	}
	for _, k := range keys {
		if k == "" {
			continue
		}
		if !slices.ContainsFunc(rows, func(r data.Row) bool { return r.Has(k) }) {
			s.WarnOnce("key."+k, "series: no data row has the key", "key", k)
		}
	}
}

// labelNode returns a new text node for a series label,
// which is never picked.
func labelNode() *scene.Text {
	t := scene.NewText()
	t.Tag = "label"
	t.PointerEvents = false
	return t
}
