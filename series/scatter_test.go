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

func scatterRows() []data.Row {
	return data.RowsOf(
		map[string]any{"x": 1, "y": 10, "s": 1, "name": "one"},
		map[string]any{"x": 2, "y": 20, "s": 2, "name": "two"},
		map[string]any{"x": 3, "y": 30, "s": 3, "name": "three"},
		map[string]any{"x": 4, "y": nil, "s": 4, "name": "four"},
	)
}

func newScatterChart(t *testing.T) (*chart.Chart, *Scatter) {
	c := chart.New(chart.Cartesian{}, 400, 300)
	c.AddAxis(chart.NewAxis(chart.NumberAxis, chart.X))
	c.AddAxis(chart.NewAxis(chart.NumberAxis, chart.Y))
	s := NewScatter()
	s.SetXKey("x")
	s.SetYKey("y")
	s.SetData(scatterRows())
	c.AddSeries(s)
	require.True(t, c.Flush())
	return c, s
}

func scatterData(t *testing.T, s *Scatter) []*ScatterNodeDatum {
	var nds []*ScatterNodeDatum
	for _, nd := range s.NodeData() {
		sd, ok := nd.(*ScatterNodeDatum)
		require.True(t, ok)
		nds = append(nds, sd)
	}
	return nds
}

func TestScatterPoints(t *testing.T) {
	c, s := newScatterChart(t)
	assert.Equal(t, data.Numbers(1, 4), c.Axis(chart.X).Domain())
	assert.Equal(t, data.Numbers(10, 30), c.Axis(chart.Y).Domain())

	nds := scatterData(t, s)
	require.Len(t, nds, 3)
	assert.Less(t, nds[0].X, nds[1].X)
	assert.Greater(t, nds[0].Y, nds[1].Y)
	for _, nd := range nds {
		assert.Equal(t, 6.0, nd.Size)
		assert.Nil(t, nd.Label)
	}

	kids := s.PickGroup().Children
	require.Len(t, kids, 3)
	m := kids[0].(*scene.Marker)
	assert.Equal(t, scene.Circle, m.Shape)
	assert.Equal(t, nds[0].X, m.X)
	assert.Equal(t, s.Marker.Fill(), m.Paint.Fill)
}

func TestScatterSizes(t *testing.T) {
	c, s := newScatterChart(t)
	s.SetSizeKey("s")
	require.True(t, c.Flush())
	nds := scatterData(t, s)
	require.Len(t, nds, 3)

	// sizes span the marker size to the max size over the
	// extent of all rows, including those not drawn
	assert.InDelta(t, 6, nds[0].Size, 1e-9)
	assert.InDelta(t, 14, nds[1].Size, 1e-9)
	assert.InDelta(t, 22, nds[2].Size, 1e-9)

	s.Marker.SetDomain([]float64{0, 2})
	require.True(t, c.Flush())
	nds = scatterData(t, s)
	assert.InDelta(t, 18, nds[0].Size, 1e-9)
	assert.InDelta(t, 30, nds[1].Size, 1e-9)
}

func TestScatterMarkerShape(t *testing.T) {
	c, s := newScatterChart(t)
	old := s.PickGroup().Children[0]
	s.Marker.SetShape(scene.Square)
	require.True(t, c.Flush())

	kids := s.PickGroup().Children
	require.Len(t, kids, 3)
	assert.NotSame(t, old, kids[0])
	assert.Equal(t, scene.Square, kids[0].(*scene.Marker).Shape)
	assert.Equal(t, scene.Square, c.Legend.Data()[0].Marker.Shape)
}

func TestScatterLabels(t *testing.T) {
	c, s := newScatterChart(t)
	s.SetLabelKey("name")
	s.Label.SetEnabled(true)
	require.True(t, c.Flush())

	rect := s.Rect()
	placed := 0
	for _, nd := range scatterData(t, s) {
		l := nd.Label
		if l == nil {
			continue
		}
		placed++
		assert.GreaterOrEqual(t, l.X, rect.X)
		assert.GreaterOrEqual(t, l.Y, rect.Y)
		assert.LessOrEqual(t, l.X+l.Width, rect.X+rect.Width)
		assert.LessOrEqual(t, l.Y+l.Height, rect.Y+rect.Height)
	}
	assert.Positive(t, placed)
}

func TestPlaceLabel(t *testing.T) {
	font := chart.NewLabel().Font()
	rect := scene.BBox{Width: 100, Height: 100}
	nd := &ScatterNodeDatum{X: 50, Y: 50, Size: 10}
	l := placeLabel("abc", font, nd, rect, nil)
	require.NotNil(t, l)
	assert.Equal(t, 55.0, l.X)
	assert.InDelta(t, 45, l.Y+l.Height, 1e-9)

	// the top right is taken, so it goes to the bottom right
	taken := []scene.BBox{{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}}
	l2 := placeLabel("abc", font, nd, rect, taken)
	require.NotNil(t, l2)
	assert.Equal(t, 55.0, l2.X)
	assert.Equal(t, 55.0, l2.Y)

	// no room anywhere
	assert.Nil(t, placeLabel("abc", font, nd, scene.BBox{X: 48, Y: 48, Width: 4, Height: 4}, nil))
}

func TestScatterLegend(t *testing.T) {
	c, s := newScatterChart(t)
	items := c.Legend.Data()
	require.Len(t, items, 1)
	assert.Equal(t, "y", items[0].Label)
	assert.True(t, items[0].Enabled)

	s.SetTitle("Sales")
	require.True(t, c.Flush())
	assert.Equal(t, "Sales", c.Legend.Data()[0].Label)

	s.ToggleSeriesItem("y", false)
	require.True(t, c.Flush())
	assert.False(t, s.Visible())
	assert.False(t, s.Group().Visible)
	assert.False(t, c.Legend.Data()[0].Enabled)
}

func TestScatterTooltip(t *testing.T) {
	_, s := newScatterChart(t)
	s.SetXName("Width")
	h := s.TooltipHTML(s.NodeData()[0])
	assert.Contains(t, h, "Width: 1")
	assert.Contains(t, h, "y: 10")
}

func TestScatterCategoryAxis(t *testing.T) {
	c := chart.New(chart.Cartesian{}, 400, 300)
	c.AddAxis(chart.NewAxis(chart.CategoryAxis, chart.X))
	c.AddAxis(chart.NewAxis(chart.NumberAxis, chart.Y))
	s := NewScatter()
	s.SetXKey("name")
	s.SetYKey("y")
	s.SetData(scatterRows())
	c.AddSeries(s)
	require.True(t, c.Flush())

	assert.Equal(t, data.Values("one", "two", "three", "four"), c.Axis(chart.X).Domain())
	nds := scatterData(t, s)
	require.Len(t, nds, 3)
	// points are centered in their bands
	bw := c.Axis(chart.X).Scale.Bandwidth()
	assert.InDelta(t, c.Axis(chart.X).Scale.Convert(data.StringValue("one"))+bw/2, nds[0].X, 1e-9)
}
