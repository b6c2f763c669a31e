// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/series"
)

// ErrMismatch is returned by [Options.Apply] when the chart does not
// have the series and axes the options describe, in which case the
// chart must be built again with [Options.Build].
var ErrMismatch = errors.New("config: chart does not match options")

// layoutFor returns the chart layout of the series type.
func layoutFor(typ string) chart.Layout {
	switch typ {
	case "pie":
		return chart.Polar{}
	case "treemap":
		return chart.Hierarchy{}
	}
	return chart.Cartesian{}
}

// seriesType returns the type of the series made by [series.New] for typ.
func seriesType(typ string) string {
	if typ == "column" {
		return "bar"
	}
	return typ
}

// defaultAxes returns the axes of a cartesian chart whose first
// series has the given options.
func defaultAxes(so SeriesOptions) []AxisOptions {
	if seriesType(so.Type) == "scatter" {
		return []AxisOptions{{Kind: "number", Direction: "x"}, {Kind: "number", Direction: "y"}}
	}
	if so.FlipXY {
		return []AxisOptions{{Kind: "number", Direction: "x"}, {Kind: "category", Direction: "y"}}
	}
	return []AxisOptions{{Kind: "category", Direction: "x"}, {Kind: "number", Direction: "y"}}
}

// Build returns a new chart with the series and axes of the options,
// with the options applied. Data files are relative to dir.
func (o *Options) Build(dir string) (*chart.Chart, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	layout := layoutFor(o.Series[0].Type)
	c := chart.New(layout, o.Width, o.Height)
	for i, so := range o.Series {
		if l := layoutFor(so.Type); l.Type() != layout.Type() {
			c.Destroy()
			return nil, fmt.Errorf("config: series %d: a %s series cannot be drawn in a %s chart", i, so.Type, layout.Type())
		}
		c.AddSeries(series.New(so.Type))
	}
	if layout.Type() == "cartesian" {
		axes := o.Axes
		if len(axes) == 0 {
			axes = defaultAxes(o.Series[0])
		}
		for _, ao := range axes {
			kind, _ := chart.AxisKindFromString(ao.Kind)
			d, _ := directionFromString(ao.Direction)
			c.AddAxis(chart.NewAxis(kind, d))
		}
	}
	if err := o.Apply(c, dir); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

// Apply sets the options on the chart, which must have the series
// of the options, in order, and the axes of the options, if any.
// It only sets properties, so the chart updates as for any other
// change. Data files are relative to dir.
func (o *Options) Apply(c *chart.Chart, dir string) error {
	ss := c.Series()
	if len(ss) != len(o.Series) {
		return fmt.Errorf("%w: %d series, want %d", ErrMismatch, len(ss), len(o.Series))
	}
	for i, s := range ss {
		if s.AsSeries().Type() != seriesType(o.Series[i].Type) {
			return fmt.Errorf("%w: series %d is %s, want %s", ErrMismatch, i, s.AsSeries().Type(), o.Series[i].Type)
		}
	}
	if len(o.Axes) > 0 && len(o.Axes) != len(c.Axes()) {
		return fmt.Errorf("%w: %d axes, want %d", ErrMismatch, len(c.Axes()), len(o.Axes))
	}
	th, err := ThemeByName(o.Theme)
	if err != nil {
		return err
	}

	c.SetSize(o.Width, o.Height)
	c.SetPadding(chart.NewPadding(o.Padding))
	setCaption(c.Title, o.Title)
	setCaption(c.Subtitle, o.Subtitle)

	c.Legend.SetEnabled(!o.Legend.Hidden)
	if o.Legend.Position != "" {
		c.Legend.SetPosition(chart.LegendPosition(o.Legend.Position))
	}
	if o.Legend.Horizontal {
		c.Legend.SetOrientation(chart.Horizontal)
	} else {
		c.Legend.SetOrientation(chart.Vertical)
	}
	c.Legend.SetSpacing(o.Legend.Spacing)

	for i, a := range c.Axes() {
		if i < len(o.Axes) {
			applyAxis(a, o.Axes[i])
		}
	}

	th.Apply(c)
	if o.Background != "" {
		c.SetBackground(o.Background)
	}

	var errs []error
	for i, s := range ss {
		if err := o.Series[i].apply(s, dir); err != nil {
			errs = append(errs, fmt.Errorf("config: series %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func setCaption(c *chart.Caption, text string) {
	c.SetText(text)
	c.SetEnabled(text != "")
}

func applyAxis(a *chart.Axis, ao AxisOptions) {
	if ao.Position != "" {
		a.SetPosition(chart.AxisPosition(ao.Position))
	}
	setCaption(a.Title, ao.Title)
	if ao.TickCount > 0 {
		a.SetTickCount(ao.TickCount)
	}
}

// Rows returns the rows of the series, read from its file
// relative to dir, or else given in place.
func (so *SeriesOptions) Rows(dir string) ([]data.Row, error) {
	if so.File == "" {
		return data.RowsOf(so.Data...), nil
	}
	fn := so.File
	if !filepath.IsAbs(fn) {
		fn = filepath.Join(dir, fn)
	}
	return data.Open(fn, so.Sheet)
}

func (so *SeriesOptions) apply(s chart.Series, dir string) error {
	rows, err := so.Rows(dir)
	if err != nil {
		return err
	}
	sb := s.AsSeries()
	sb.SetData(rows)
	sb.SetVisible(!so.Hidden)
	sb.SetShowInLegend(!so.HideInLegend)
	if so.Labels != nil {
		sb.Label.SetEnabled(*so.Labels)
	}

	switch s := s.(type) {
	case *series.Bar:
		s.SetXKey(so.XKey)
		s.SetXName(so.XName)
		s.SetYNames(so.YNames)
		s.SetNormalizedTo(so.NormalizedTo)
		s.SetFlipXY(so.FlipXY)
		if len(so.Stacks) > 0 {
			s.SetYKeyStacks(so.Stacks)
		} else {
			s.SetYKeys(so.YKeys...)
			s.SetGrouped(so.Grouped)
		}
		switch so.LabelPlacement {
		case "", string(series.BarLabelInside):
			s.SetLabelPlacement(series.BarLabelInside)
		case string(series.BarLabelOutside):
			s.SetLabelPlacement(series.BarLabelOutside)
		default:
			return fmt.Errorf("unknown label placement %q", so.LabelPlacement)
		}
	case *series.Scatter:
		s.SetTitle(so.Title)
		s.SetXKey(so.XKey)
		s.SetXName(so.XName)
		s.SetYKey(so.YKey)
		s.SetYName(so.YName)
		s.SetSizeKey(so.SizeKey)
		s.SetLabelKey(so.LabelKey)
		s.SetLabelName(so.LabelName)
		if so.Marker != "" {
			s.Marker.SetShape(scene.MarkerShape(so.Marker))
		}
		if so.MarkerSize > 0 {
			s.Marker.SetSize(so.MarkerSize)
		}
		if so.MarkerMaxSize > 0 {
			s.Marker.SetMaxSize(so.MarkerMaxSize)
		}
	case *series.Pie:
		s.SetAngleKey(so.AngleKey)
		s.SetAngleName(so.AngleName)
		s.SetRadiusKey(so.RadiusKey)
		s.SetLabelKey(so.LabelKey)
		s.SetLabelName(so.LabelName)
		s.SetRotation(so.Rotation)
		s.SetInnerRadiusOffset(so.InnerRadiusOffset)
		s.SetOuterRadiusOffset(so.OuterRadiusOffset)
		setCaption(s.Title, so.Title)
		s.SetTitleInLegend(so.Title != "")
	case *series.Treemap:
		if so.LabelKey != "" {
			s.SetLabelKey(so.LabelKey)
		}
		if so.SizeKey != "" {
			s.SetSizeKey(so.SizeKey)
		}
		if so.ColorKey != "" {
			s.SetColorKey(so.ColorKey)
		}
		if so.ColorName != "" {
			s.SetColorName(so.ColorName)
		}
		if len(so.ColorDomain) > 0 {
			s.SetColorDomain(so.ColorDomain)
		}
		if len(so.ColorRange) > 0 {
			s.SetColorRange(so.ColorRange)
		}
		s.SetColorParents(so.ColorParents)
		if so.Title != "" {
			s.SetRootName(so.Title)
		}
	}
	return nil
}
