// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

// origin returns the offset of the coordinates of the node's
// children from scene coordinates.
func origin(n scene.Node) (x, y float64) {
	for n != nil {
		nb := n.AsNode()
		x += nb.TranslationX
		y += nb.TranslationY
		n = nb.Parent()
	}
	return
}

// PickSeriesNode returns the node datum of the topmost visible series
// node under the given point in scene coordinates, or nil. Series
// drawn later are on top, so they are tried first.
func (c *Chart) PickSeriesNode(x, y float64) NodeDatum {
	for i := len(c.series) - 1; i >= 0; i-- {
		sb := c.series[i].AsSeries()
		if !sb.Visible() {
			continue
		}
		pg := sb.pickGroup
		ox, oy := origin(pg.Parent())
		hit := scene.PickNode(pg, x-ox, y-oy)
		if hit == nil {
			continue
		}
		if nd, ok := scene.DatumOf(hit).(NodeDatum); ok {
			return nd
		}
	}
	return nil
}

// SetHighlightedDatum sets the highlighted datum, which may be nil,
// and tells every series if it changed.
func (c *Chart) SetHighlightedDatum(nd NodeDatum) {
	if c.highlightedDatum == nd {
		return
	}
	c.highlightedDatum = nd
	for _, s := range c.series {
		s.OnHighlightChange()
	}
}

// PointerMove highlights the series node under the given point,
// returning its node datum.
func (c *Chart) PointerMove(x, y float64) NodeDatum {
	nd := c.PickSeriesNode(x, y)
	c.SetHighlightedDatum(nd)
	return nd
}

// PointerLeave clears the highlight.
func (c *Chart) PointerLeave() { c.SetHighlightedDatum(nil) }

// Click handles a click at the given point. A click on a legend item
// toggles the item and fires a [LegendClickEvent] on the legend. A
// click on a series node fires a [NodeClickEvent] on the series,
// which the chart fires on as a [SeriesNodeClickEvent]. It returns
// whether anything was hit.
func (c *Chart) Click(x, y float64) bool {
	if d, ok := c.Legend.DatumForPoint(x, y); ok {
		for _, s := range c.series {
			if s.AsSeries().ID == d.SeriesID {
				s.ToggleSeriesItem(d.ItemID, !d.Enabled)
				break
			}
		}
		c.Legend.FireEvent(&LegendClickEvent{
			Base:     observe.Base{Kind: observe.LegendClick},
			SeriesID: d.SeriesID,
			ItemID:   d.ItemID,
			Enabled:  !d.Enabled,
		})
		return true
	}
	nd := c.PickSeriesNode(x, y)
	if nd == nil {
		return false
	}
	nd.Series().FireNodeClickEvent(nd)
	return true
}

// TooltipAt returns the tooltip HTML of the series node under the
// given point, or "" if there is none or its tooltip is disabled.
func (c *Chart) TooltipAt(x, y float64) string {
	nd := c.PickSeriesNode(x, y)
	if nd == nil {
		return ""
	}
	s := nd.Series()
	if !s.AsSeries().Tooltip.Enabled() {
		return ""
	}
	return s.TooltipHTML(nd)
}
