// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the options of a chart, loaded from TOML,
// YAML, or JSON files, and applies them to charts, axes, and series.
package config

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/reflectx"
	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/series"
)

// Options are the options of one chart. Keys are matched without
// regard to case in TOML and JSON files; YAML files use the
// camel case names given in the yaml tags.
type Options struct {

	// Title is the title of the chart. It is not drawn if empty.
	Title string `yaml:"title"`

	// Subtitle is drawn under the title.
	Subtitle string `yaml:"subtitle"`

	// Width is the width of the chart in pixels.
	Width float64 `yaml:"width" default:"800"`

	// Height is the height of the chart in pixels.
	Height float64 `yaml:"height" default:"600"`

	// Padding is the space around the chart on every side.
	Padding float64 `yaml:"padding" default:"20"`

	// Theme is the name of the theme: light, dark, or pastel.
	Theme string `yaml:"theme" default:"light"`

	// Background overrides the background color of the theme.
	Background string `yaml:"background"`

	// Legend holds the legend options.
	Legend LegendOptions `yaml:"legend"`

	// Axes are the axes of a cartesian chart. If there are none,
	// axes suited to the first series are added.
	Axes []AxisOptions `yaml:"axes"`

	// Series are the series of the chart, drawn in order.
	Series []SeriesOptions `yaml:"series"`
}

// LegendOptions are the options of the legend.
type LegendOptions struct {

	// Hidden hides the legend.
	Hidden bool `yaml:"hidden"`

	// Position is the side of the chart: top, right, bottom, or left.
	Position string `yaml:"position" default:"right"`

	// Horizontal packs the items in rows rather than columns.
	Horizontal bool `yaml:"horizontal"`

	// Spacing is the space between the legend and the series.
	Spacing float64 `yaml:"spacing" default:"20"`
}

// AxisOptions are the options of one axis.
type AxisOptions struct {

	// Kind is number, category, log, or time.
	Kind string `yaml:"kind"`

	// Direction is x or y.
	Direction string `yaml:"direction"`

	// Position is top, right, bottom, or left. It defaults to
	// bottom for x and left for y.
	Position string `yaml:"position"`

	// Title is the title of the axis. It is not drawn if empty.
	Title string `yaml:"title"`

	// TickCount is the approximate number of ticks, if non-zero.
	TickCount int `yaml:"tickCount"`
}

// SeriesOptions are the options of one series. Keys that do not
// apply to the type of the series are ignored.
type SeriesOptions struct {

	// Type is the series type: bar, scatter, pie, or treemap.
	Type string `yaml:"type"`

	// File is a JSON, CSV, or XLSX file with the rows of the series,
	// relative to the directory of the options file.
	File string `yaml:"file"`

	// Sheet is the sheet of an XLSX file; the first if empty.
	Sheet string `yaml:"sheet"`

	// Data are rows given in place, used when there is no File.
	Data []map[string]any `yaml:"data"`

	// Title names the series in the legend and tooltips.
	Title string `yaml:"title"`

	// Hidden hides the series.
	Hidden bool `yaml:"hidden"`

	// HideInLegend leaves the series out of the legend.
	HideInLegend bool `yaml:"hideInLegend"`

	// Labels enables or disables the labels of the series,
	// if set.
	Labels *bool `yaml:"labels"`

	XKey  string `yaml:"xKey"`
	XName string `yaml:"xName"`

	// YKeys are the y keys of a bar series, stacked unless Grouped.
	YKeys []string `yaml:"yKeys"`

	// Stacks are explicit stacks of y keys, used instead of YKeys.
	Stacks [][]string `yaml:"stacks"`

	YNames       map[string]string `yaml:"yNames"`
	Grouped      bool              `yaml:"grouped"`
	NormalizedTo float64           `yaml:"normalizedTo"`
	FlipXY       bool              `yaml:"flipXY"`

	// LabelPlacement is inside or outside for bar labels.
	LabelPlacement string `yaml:"labelPlacement"`

	YKey      string `yaml:"yKey"`
	YName     string `yaml:"yName"`
	SizeKey   string `yaml:"sizeKey"`
	LabelKey  string `yaml:"labelKey"`
	LabelName string `yaml:"labelName"`

	// Marker is the marker shape of a scatter series.
	Marker string `yaml:"marker"`

	// MarkerSize and MarkerMaxSize bound the sizes of scatter markers.
	MarkerSize    float64 `yaml:"markerSize"`
	MarkerMaxSize float64 `yaml:"markerMaxSize"`

	AngleKey          string  `yaml:"angleKey"`
	AngleName         string  `yaml:"angleName"`
	RadiusKey         string  `yaml:"radiusKey"`
	Rotation          float64 `yaml:"rotation"`
	InnerRadiusOffset float64 `yaml:"innerRadiusOffset"`
	OuterRadiusOffset float64 `yaml:"outerRadiusOffset"`

	ColorKey     string    `yaml:"colorKey"`
	ColorName    string    `yaml:"colorName"`
	ColorDomain  []float64 `yaml:"colorDomain"`
	ColorRange   []string  `yaml:"colorRange"`
	ColorParents bool      `yaml:"colorParents"`
}

// New returns new options with their default values.
func New() *Options {
	o := &Options{}
	errors.Log(SetFromDefaults(o))
	return o
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values.
func SetFromDefaults(cfg any) error {
	return reflectx.SetFromDefaultTags(cfg)
}

// Validate returns an error for every option that names
// something that does not exist.
func (o *Options) Validate() error {
	var errs []error
	if _, err := ThemeByName(o.Theme); err != nil {
		errs = append(errs, err)
	}
	if len(o.Series) == 0 {
		errs = append(errs, fmt.Errorf("config: no series"))
	}
	for i, so := range o.Series {
		if series.New(so.Type) == nil {
			errs = append(errs, fmt.Errorf("config: series %d: unknown type %q (want one of %s)", i, so.Type, strings.Join(series.Types(), ", ")))
		}
		if so.Marker != "" && !slices.Contains(scene.MarkerShapes(), scene.MarkerShape(so.Marker)) {
			errs = append(errs, fmt.Errorf("config: series %d: unknown marker %q", i, so.Marker))
		}
	}
	switch chart.LegendPosition(o.Legend.Position) {
	case "", chart.LegendTop, chart.LegendRight, chart.LegendBottom, chart.LegendLeft:
	default:
		errs = append(errs, fmt.Errorf("config: unknown legend position %q", o.Legend.Position))
	}
	for i, ao := range o.Axes {
		if _, err := chart.AxisKindFromString(ao.Kind); err != nil {
			errs = append(errs, fmt.Errorf("config: axis %d: %w", i, err))
		}
		if _, err := directionFromString(ao.Direction); err != nil {
			errs = append(errs, fmt.Errorf("config: axis %d: %w", i, err))
		}
		switch chart.AxisPosition(ao.Position) {
		case "", chart.AxisTop, chart.AxisRight, chart.AxisBottom, chart.AxisLeft:
		default:
			errs = append(errs, fmt.Errorf("config: axis %d: unknown position %q", i, ao.Position))
		}
	}
	return errors.Join(errs...)
}

func directionFromString(s string) (chart.Direction, error) {
	switch strings.ToLower(s) {
	case "x":
		return chart.X, nil
	case "y":
		return chart.Y, nil
	}
	return 0, fmt.Errorf("config: %q is not a valid direction", s)
}
