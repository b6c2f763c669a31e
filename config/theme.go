// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/chart/chart"
)

// Theme is a set of colors applied to a chart and its series.
type Theme struct {
	Name string

	// Fills and Strokes are the series palettes.
	Fills, Strokes []string

	Background string

	// TextColor is the color of the captions and the legend.
	TextColor string

	// LabelColor is the color of the series and axis labels.
	LabelColor string

	AxisColor string
	GridColor string
}

var themes = map[string]*Theme{
	"light": {
		Name:       "light",
		Fills:      chart.DefaultFills,
		Strokes:    chart.DefaultStrokes,
		Background: "white",
		TextColor:  "black",
		LabelColor: "rgba(70, 70, 70, 1)",
		AxisColor:  "rgba(195, 195, 195, 1)",
		GridColor:  "rgba(219, 219, 219, 1)",
	},
	"dark": {
		Name:       "dark",
		Fills:      []string{"#e07a82", "#b5d99c", "#f5d98f", "#8fb5e0", "#c9a0c1", "#93d2e0"},
		Strokes:    []string{"#b35960", "#8ba876", "#c4a96a", "#6a8ab0", "#9a7893", "#6ea3b0"},
		Background: "#1e1f24",
		TextColor:  "#e8e8e8",
		LabelColor: "rgba(200, 200, 200, 1)",
		AxisColor:  "rgba(110, 110, 110, 1)",
		GridColor:  "rgba(60, 60, 60, 1)",
	},
	"pastel": {
		Name:       "pastel",
		Fills:      []string{"#f4a6a6", "#b8e0b0", "#f9e2ae", "#a9c8ec", "#d7b9e3", "#a8e0e0"},
		Strokes:    []string{"#c77f7f", "#8fb287", "#c9b386", "#839fc0", "#ab90b6", "#82b3b3"},
		Background: "#fdfcf7",
		TextColor:  "#4a4a4a",
		LabelColor: "rgba(90, 90, 90, 1)",
		AxisColor:  "rgba(200, 195, 185, 1)",
		GridColor:  "rgba(230, 226, 216, 1)",
	},
}

// Themes returns the names of the themes, sorted.
func Themes() []string {
	return slices.Sorted(maps.Keys(themes))
}

// ThemeByName returns a copy of the theme with the given name,
// which can be modified without affecting the theme.
func ThemeByName(name string) (*Theme, error) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("config: unknown theme %q (want one of %s)", name, strings.Join(Themes(), ", "))
	}
	return t.Clone(), nil
}

// Clone returns a deep copy of the theme.
func (t *Theme) Clone() *Theme {
	c := &Theme{}
	copier.CopyWithOption(c, t, copier.Option{DeepCopy: true})
	return c
}

// Apply sets the colors of the theme on the chart, its axes,
// and its series.
func (t *Theme) Apply(c *chart.Chart) {
	c.SetBackground(t.Background)
	c.Title.SetColor(t.TextColor)
	c.Subtitle.SetColor(t.TextColor)
	c.Legend.Item.Label.SetColor(t.TextColor)
	for _, a := range c.Axes() {
		a.SetLineColor(t.AxisColor)
		a.SetGridColor(t.GridColor)
		a.Label.SetColor(t.LabelColor)
		a.Title.SetColor(t.TextColor)
	}
	for _, s := range c.Series() {
		s.SetColors(t.Fills, t.Strokes)
		s.AsSeries().Label.SetColor(t.LabelColor)
	}
}
