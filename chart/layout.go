// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"cogentcore.org/chart/scene"
)

// Layout positions the axes and series of a chart inside the rect
// left after the captions, legend, and padding are placed.
type Layout interface {
	// Type returns the name of the layout.
	Type() string

	// PerformLayout positions the axes and series root in rect,
	// returning the rect of the series in series root coordinates.
	PerformLayout(c *Chart, rect scene.BBox) scene.BBox
}

// Cartesian lays out x and y axes around the series area.
type Cartesian struct{}

func (Cartesian) Type() string { return "cartesian" }

func (Cartesian) PerformLayout(c *Chart, rect scene.BBox) scene.BBox {
	var top, right, bottom, left float64
	for _, a := range c.axes {
		t := a.Thickness()
		switch a.Position() {
		case AxisTop:
			top += t
		case AxisRight:
			right += t
		case AxisBottom:
			bottom += t
		default:
			left += t
		}
	}
	rect = rect.Shrink(top, right, bottom, left)
	w, h := math.Max(rect.Width, 0), math.Max(rect.Height, 0)

	// axes on the same side are stacked outward
	var offTop, offRight, offBottom, offLeft float64
	for _, a := range c.axes {
		t := a.Thickness()
		var grid float64
		switch a.Position() {
		case AxisTop:
			a.Scale.SetRange(0, w)
			a.group.SetTranslation(rect.X, rect.Y-offTop)
			offTop += t
			grid = h
		case AxisRight:
			a.Scale.SetRange(h, 0)
			a.group.SetTranslation(rect.X+w+offRight, rect.Y)
			offRight += t
			grid = w
		case AxisBottom:
			a.Scale.SetRange(0, w)
			a.group.SetTranslation(rect.X, rect.Y+h+offBottom)
			offBottom += t
			grid = h
		default:
			a.Scale.SetRange(h, 0)
			a.group.SetTranslation(rect.X-offLeft, rect.Y)
			offLeft += t
			grid = w
		}
		a.Update(grid)
	}
	c.seriesRoot.SetTranslation(rect.X, rect.Y)
	return scene.BBox{Width: w, Height: h}
}

// Polar gives every polar series the center and radius of the
// largest circle fitting the series area.
type Polar struct{}

func (Polar) Type() string { return "polar" }

func (Polar) PerformLayout(c *Chart, rect scene.BBox) scene.BBox {
	cx, cy := rect.X+rect.Width/2, rect.Y+rect.Height/2
	r := math.Max(math.Min(rect.Width, rect.Height)/2, 0)
	for _, s := range c.series {
		if p, ok := s.(PolarSeries); ok {
			p.AsPolar().setPolar(cx, cy, r)
		}
	}
	return rect
}

// Hierarchy gives the series the whole series area.
type Hierarchy struct{}

func (Hierarchy) Type() string { return "hierarchy" }

func (Hierarchy) PerformLayout(c *Chart, rect scene.BBox) scene.BBox {
	c.seriesRoot.SetTranslation(rect.X, rect.Y)
	return scene.BBox{Width: math.Max(rect.Width, 0), Height: math.Max(rect.Height, 0)}
}
