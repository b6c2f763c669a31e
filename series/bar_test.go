// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/scene"
)

func barRows() []data.Row {
	return data.RowsOf(
		map[string]any{"x": "a", "y1": 1, "y2": 2},
		map[string]any{"x": "b", "y1": 2, "y2": -1},
		map[string]any{"x": "c", "y1": 3, "y2": 1},
	)
}

// newBarChart returns a settled chart with one bar series
// stacking y1 and y2.
func newBarChart(t *testing.T) (*chart.Chart, *Bar) {
	c := chart.New(chart.Cartesian{}, 400, 300)
	c.AddAxis(chart.NewAxis(chart.CategoryAxis, chart.X))
	c.AddAxis(chart.NewAxis(chart.NumberAxis, chart.Y))
	b := NewBar()
	b.SetXKey("x")
	b.SetYKeys("y1", "y2")
	b.SetYNames(map[string]string{"y1": "First", "y2": "Second"})
	b.SetData(barRows())
	c.AddSeries(b)
	require.True(t, c.Flush())
	return c, b
}

func barData(t *testing.T, b *Bar) []*BarNodeDatum {
	var nds []*BarNodeDatum
	for _, nd := range b.NodeData() {
		bd, ok := nd.(*BarNodeDatum)
		require.True(t, ok)
		nds = append(nds, bd)
	}
	return nds
}

func TestBarStacked(t *testing.T) {
	c, b := newBarChart(t)
	assert.Equal(t, data.Values("a", "b", "c"), c.Axis(chart.X).Domain())
	assert.Equal(t, data.Numbers(-1, 4), c.Axis(chart.Y).Domain())

	nds := barData(t, b)
	require.Len(t, nds, 6)
	assert.Len(t, b.PickGroup().Children, 6)
	assert.Equal(t, "y1", nds[0].ItemID())
	assert.Equal(t, "y2", nds[1].ItemID())

	// y2 sits on top of y1
	assert.Equal(t, nds[0].X, nds[1].X)
	assert.InDelta(t, nds[0].Y, nds[1].Y+nds[1].Height, 1e-9)

	// negative values hang below the axis
	assert.InDelta(t, nds[2].Y+nds[2].Height, nds[3].Y, 1e-9)
	assert.Greater(t, nds[3].Height, 0.0)

	// categories left to right
	assert.Less(t, nds[0].X, nds[2].X)
	assert.Less(t, nds[2].X, nds[4].X)
}

func TestBarGrouped(t *testing.T) {
	c, b := newBarChart(t)
	b.SetGrouped(true)
	require.True(t, c.Flush())
	assert.Equal(t, [][]string{{"y1"}, {"y2"}}, b.YKeys())
	assert.Equal(t, data.Numbers(-1, 3), c.Axis(chart.Y).Domain())

	nds := barData(t, b)
	require.Len(t, nds, 6)
	assert.Less(t, nds[0].X, nds[1].X)
	assert.Equal(t, nds[0].Width, nds[1].Width)
	assert.LessOrEqual(t, nds[0].X+nds[0].Width, nds[1].X)
}

func TestBarToggleItem(t *testing.T) {
	c, b := newBarChart(t)
	items := c.Legend.Data()
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Label)
	assert.Equal(t, "Second", items[1].Label)
	assert.Equal(t, chart.DefaultFills[1], items[1].Marker.Fill)

	b.ToggleSeriesItem("y2", false)
	require.True(t, c.Flush())
	assert.False(t, b.ItemEnabled("y2"))
	assert.False(t, c.Legend.Data()[1].Enabled)
	assert.Equal(t, data.Numbers(0, 3), c.Axis(chart.Y).Domain())

	nds := barData(t, b)
	require.Len(t, nds, 6)
	assert.Zero(t, nds[1].Height)
	r := b.PickGroup().Children[1].(*scene.Rect)
	assert.False(t, r.Visible)

	b.ToggleSeriesItem("nope", false)
	assert.False(t, b.NodeDataPending())
}

func TestBarHideInLegend(t *testing.T) {
	c, b := newBarChart(t)
	b.SetHideInLegend([]string{"y1"})
	require.True(t, c.Flush())
	items := c.Legend.Data()
	require.Len(t, items, 1)
	assert.Equal(t, "y2", items[0].ItemID)
}

func TestBarLabels(t *testing.T) {
	c, b := newBarChart(t)
	for _, nd := range barData(t, b) {
		assert.Nil(t, nd.Label)
	}

	b.Label.SetEnabled(true)
	require.True(t, c.Flush())
	nds := barData(t, b)
	l := nds[0].Label
	require.NotNil(t, l)
	assert.Equal(t, "1.00", l.Text)
	assert.InDelta(t, nds[0].Y+nds[0].Height/2, l.Y, 1e-9)

	b.SetLabelPlacement(BarLabelOutside)
	b.LabelFormatter = func(v data.Value) string { return v.Str() + "!" }
	b.ScheduleNodeData()
	require.True(t, c.Flush())
	nds = barData(t, b)
	l = nds[1].Label
	require.NotNil(t, l)
	assert.Equal(t, "2!", l.Text)
	assert.Equal(t, scene.BaselineBottom, l.Baseline)
	assert.Less(t, l.Y, nds[1].Y)
}

func TestBarHighlight(t *testing.T) {
	c, b := newBarChart(t)
	nds := b.NodeData()
	c.SetHighlightedDatum(nds[0])
	require.True(t, c.Flush())

	kids := b.PickGroup().Children
	r0 := kids[0].(*scene.Rect)
	assert.Equal(t, "yellow", r0.Paint.Fill)
	assert.Equal(t, chart.HighlightedZIndex, r0.ZIndex)
	// bars of the same y key come forward with it
	assert.Equal(t, chart.HighlightedZIndex, kids[2].(*scene.Rect).ZIndex)
	assert.NotEqual(t, chart.HighlightedZIndex, kids[1].(*scene.Rect).ZIndex)
	assert.Equal(t, chart.DefaultFills[1], kids[1].(*scene.Rect).Paint.Fill)

	c.SetHighlightedDatum(nil)
	require.True(t, c.Flush())
	assert.Equal(t, chart.DefaultFills[0], r0.Paint.Fill)
}

func TestBarFormatter(t *testing.T) {
	c, b := newBarChart(t)
	b.Formatter = func(p BarFormatterParams) BarFormat {
		if p.YKey == "y2" {
			return BarFormat{Fill: "blue"}
		}
		return BarFormat{}
	}
	b.ScheduleUpdate()
	require.True(t, c.Flush())
	kids := b.PickGroup().Children
	assert.Equal(t, chart.DefaultFills[0], kids[0].(*scene.Rect).Paint.Fill)
	assert.Equal(t, "blue", kids[1].(*scene.Rect).Paint.Fill)
}

func TestBarFlip(t *testing.T) {
	c := chart.New(chart.Cartesian{}, 400, 300)
	c.AddAxis(chart.NewAxis(chart.NumberAxis, chart.X))
	c.AddAxis(chart.NewAxis(chart.CategoryAxis, chart.Y))
	b := NewBar()
	b.SetFlipXY(true)
	b.SetXKey("x")
	b.SetYKeys("y1")
	b.SetData(barRows())
	c.AddSeries(b)
	require.True(t, c.Flush())

	assert.Equal(t, data.Values("a", "b", "c"), c.Axis(chart.Y).Domain())
	assert.Equal(t, data.Numbers(0, 3), c.Axis(chart.X).Domain())
	nds := barData(t, b)
	require.Len(t, nds, 3)
	assert.Less(t, nds[0].Width, nds[2].Width)
	assert.Equal(t, nds[0].Height, nds[2].Height)
}

func TestBarNormalized(t *testing.T) {
	c, b := newBarChart(t)
	b.SetNormalizedTo(-100)
	assert.Equal(t, 100.0, b.NormalizedTo())
	require.True(t, c.Flush())
	lo, hi, ok := data.Extent(c.Axis(chart.Y).Domain())
	require.True(t, ok)
	assert.InDelta(t, -100, lo, 1e-9)
	assert.InDelta(t, 100, hi, 1e-9)

	// positive and negative parts of a stack each reach the limit
	require.Len(t, b.yData, 3)
	assert.InDeltaSlice(t, []float64{100.0 / 3, 200.0 / 3}, b.yData[0][0], 1e-9)
	assert.InDeltaSlice(t, []float64{100, -100}, b.yData[1][0], 1e-9)
	assert.InDeltaSlice(t, []float64{75, 25}, b.yData[2][0], 1e-9)

	b.SetData(data.RowsOf(map[string]any{"x": "a", "y1": 1, "y2": 3}))
	require.True(t, c.Flush())
	assert.Equal(t, data.Numbers(0, 100), b.Domain(chart.Y))
}

func TestBarMissingKeys(t *testing.T) {
	c := chart.New(chart.Cartesian{}, 400, 300)
	c.AddAxis(chart.NewAxis(chart.CategoryAxis, chart.X))
	c.AddAxis(chart.NewAxis(chart.NumberAxis, chart.Y))
	b := NewBar()
	b.SetData(barRows())
	c.AddSeries(b)
	c.Flush()
	assert.Nil(t, b.NodeData())
	assert.Empty(t, c.Legend.Data())
}

func TestBarTooltip(t *testing.T) {
	_, b := newBarChart(t)
	h := b.TooltipHTML(b.NodeData()[0])
	assert.Contains(t, h, "First")
	assert.Contains(t, h, "a: 1")

	b.Tooltip.Renderer = func(p chart.TooltipParams) chart.TooltipContent {
		return chart.TooltipContent{Content: p.XValue.Str() + "/" + p.YKey}
	}
	assert.Contains(t, b.TooltipHTML(b.NodeData()[0]), "a/y1")
}
