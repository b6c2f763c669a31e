// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/scene"
)

func treemapRows() []data.Row {
	return data.RowsOf(
		map[string]any{"label": "Tech", "children": []map[string]any{
			{"label": "A", "size": 3, "color": 2},
			{"label": "B", "size": 1, "color": -2},
		}},
		map[string]any{"label": "Energy", "children": []map[string]any{
			{"label": "C", "size": 4, "color": 0},
		}},
	)
}

func newTreemapChart(t *testing.T) (*chart.Chart, *Treemap) {
	c := chart.New(chart.Hierarchy{}, 400, 300)
	tm := NewTreemap()
	tm.SetData(treemapRows())
	c.AddSeries(tm)
	require.True(t, c.Flush())
	return c, tm
}

func leaf(v float64) *TreemapNodeDatum { return &TreemapNodeDatum{Value: v} }

func TestSquarify(t *testing.T) {
	root := &TreemapNodeDatum{Children: []*TreemapNodeDatum{
		leaf(6), leaf(6), leaf(4), leaf(3), leaf(2), leaf(2), leaf(1), leaf(0),
	}}
	for _, c := range root.Children {
		root.Value += c.Value
	}
	none := func(n *TreemapNodeDatum) (top, right, bottom, left float64) { return }
	layoutTreemap(root, 600, 400, none)

	total := 600.0 * 400
	area := 0.0
	for i, c := range root.Children {
		a := (c.X1 - c.X0) * (c.Y1 - c.Y0)
		area += a
		assert.InDelta(t, c.Value/root.Value*total, a, 1e-6, i)
		assert.GreaterOrEqual(t, c.X0, 0.0)
		assert.GreaterOrEqual(t, c.Y0, 0.0)
		assert.LessOrEqual(t, c.X1, 600+1e-9)
		assert.LessOrEqual(t, c.Y1, 400+1e-9)
		for _, o := range root.Children[i+1:] {
			overlap := math.Max(0, math.Min(c.X1, o.X1)-math.Max(c.X0, o.X0)) *
				math.Max(0, math.Min(c.Y1, o.Y1)-math.Max(c.Y0, o.Y0))
			assert.InDelta(t, 0, overlap, 1e-6)
		}
	}
	assert.InDelta(t, total, area, 1e-6)

	// the biggest tiles are not slivers
	c := root.Children[0]
	w, h := c.X1-c.X0, c.Y1-c.Y0
	assert.Less(t, math.Max(w/h, h/w), 3.0)
}

func TestSquarifyPadding(t *testing.T) {
	root := &TreemapNodeDatum{Value: 2, Children: []*TreemapNodeDatum{leaf(1), leaf(1)}}
	layoutTreemap(root, 100, 100, func(n *TreemapNodeDatum) (top, right, bottom, left float64) {
		return 20, 5, 5, 5
	})
	for _, c := range root.Children {
		assert.GreaterOrEqual(t, c.X0, 5.0)
		assert.GreaterOrEqual(t, c.Y0, 20.0)
		assert.LessOrEqual(t, c.X1, 95.0)
		assert.LessOrEqual(t, c.Y1, 95.0)
	}

	// padding larger than the tile collapses it to its center
	root = &TreemapNodeDatum{Value: 1, Children: []*TreemapNodeDatum{leaf(1)}}
	layoutTreemap(root, 10, 10, func(n *TreemapNodeDatum) (top, right, bottom, left float64) {
		return 20, 20, 20, 20
	})
	c := root.Children[0]
	assert.Equal(t, c.X0, c.X1)
	assert.Equal(t, c.Y0, c.Y1)
}

func TestTreemapTree(t *testing.T) {
	_, tm := newTreemapChart(t)
	root := tm.Tree()
	require.NotNil(t, root)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, 8.0, root.Value)
	require.Len(t, root.Children, 2)

	tech := root.Children[0]
	assert.Equal(t, "TECH", tech.Label)
	assert.Equal(t, 4.0, tech.Value)
	assert.Equal(t, 1, tech.Depth)
	assert.Same(t, root, tech.Parent)
	assert.Equal(t, parentFill, tech.Fill)

	a, b := tech.Children[0], tech.Children[1]
	assert.Equal(t, "A", a.Label)
	assert.Equal(t, 2.0, a.ColorValue)
	assert.NotEqual(t, parentFill, a.Fill)
	assert.NotEqual(t, a.Fill, b.Fill)
	assert.True(t, a.IsLeaf())

	nds := tm.NodeData()
	require.Len(t, nds, 6)
	for i, nd := range nds {
		assert.Equal(t, strconv.Itoa(i), nd.ItemID())
	}
	assert.Same(t, root, nds[0])
}

func TestTreemapLayout(t *testing.T) {
	_, tm := newTreemapChart(t)
	rect := tm.Rect()
	root := tm.Tree()
	assert.Equal(t, rect.Width, root.X1-root.X0)
	assert.Equal(t, rect.Height, root.Y1-root.Y0)

	root.each(func(n *TreemapNodeDatum) {
		p := n.Parent
		if p == nil {
			return
		}
		assert.GreaterOrEqual(t, n.X0, p.X0)
		assert.GreaterOrEqual(t, n.Y0, p.Y0)
		assert.LessOrEqual(t, n.X1, p.X1)
		assert.LessOrEqual(t, n.Y1, p.Y1)
	})

	// parents with room get a title above their children
	tech := root.Children[0]
	assert.True(t, tech.HasTitle)
	assert.Greater(t, tech.Children[0].Y0-tech.Y0, tm.NodePadding())
	assert.False(t, root.HasTitle)

	kids := tm.PickGroup().Children
	require.Len(t, kids, 6)
	r, name, value := tileParts(kids[1].(*scene.Group))
	assert.Equal(t, tech.X0, r.X)
	assert.Equal(t, "TECH", name.Text)
	assert.True(t, name.Visible)
	assert.False(t, value.Visible)
	assert.Equal(t, "", r.Paint.Stroke)

	_, name, value = tileParts(kids[2].(*scene.Group))
	assert.Equal(t, "A", name.Text)
	assert.True(t, value.Visible)
	assert.Equal(t, "2.00%", value.Text)
}

func TestTreemapSingleRoot(t *testing.T) {
	c, tm := newTreemapChart(t)
	tm.SetData([]data.Row{treemapRows()[0]})
	require.True(t, c.Flush())
	root := tm.Tree()
	assert.Equal(t, "TECH", root.Label)
	assert.Len(t, root.Children, 2)
	assert.Len(t, tm.NodeData(), 3)
}

func TestTreemapLabelFonts(t *testing.T) {
	tm := NewTreemap()
	for _, l := range []*chart.Label{tm.Title, tm.Subtitle, tm.Labels.Large, tm.Labels.Medium, tm.Labels.Small} {
		assert.Equal(t, scene.Bold, l.FontWeight())
		assert.Equal(t, "white", l.Color())
	}
	assert.Equal(t, scene.WeightNormal, tm.Labels.Color.FontWeight())
	assert.Less(t, tm.Labels.Small.FontSize(), tm.Labels.Large.FontSize())
}

func TestTreemapNoSizeKey(t *testing.T) {
	c, tm := newTreemapChart(t)
	tm.SetSizeKey("")
	require.True(t, c.Flush())
	assert.Equal(t, 3.0, tm.Tree().Value)
}

func TestTreemapColorParents(t *testing.T) {
	c, tm := newTreemapChart(t)
	rows := treemapRows()
	rows[0]["color"] = data.NumberValue(10)
	tm.SetData(rows)
	tm.SetColorRange([]string{"#000000", "#ffffff"})
	require.True(t, c.Flush())
	assert.Equal(t, parentFill, tm.Tree().Children[0].Fill)

	tm.SetColorParents(true)
	require.True(t, c.Flush())
	tech, energy := tm.Tree().Children[0], tm.Tree().Children[1]
	assert.Equal(t, "#ffffff", tech.Fill)
	// parents without a color value keep the parent fill
	assert.Equal(t, parentFill, energy.Fill)
}

func TestTreemapTooltip(t *testing.T) {
	_, tm := newTreemapChart(t)
	nds := tm.NodeData()
	assert.Contains(t, tm.TooltipHTML(nds[0]), "Root")
	h := tm.TooltipHTML(nds[2])
	assert.Contains(t, h, "A")
	assert.Contains(t, h, "Change: 2.00")
}

func TestTreemapEmpty(t *testing.T) {
	c := chart.New(chart.Hierarchy{}, 400, 300)
	tm := NewTreemap()
	c.AddSeries(tm)
	c.Flush()
	assert.Nil(t, tm.Tree())
	assert.Nil(t, tm.NodeData())
	assert.Empty(t, c.Legend.Data())
}
