// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/safehtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

func TestFixNumericExtent(t *testing.T) {
	got := FixNumericExtent([]float64{5, 5})
	assert.InDelta(t, 4.95, got[0], 1e-12)
	assert.InDelta(t, 5.05, got[1], 1e-12)
	assert.Equal(t, [2]float64{0, 1}, FixNumericExtent(nil))
	assert.Equal(t, [2]float64{0, 0}, FixNumericExtent([]float64{0, 0}))
	assert.Equal(t, [2]float64{-3, 7}, FixNumericExtent([]float64{-3, 7}))
	assert.Equal(t, [2]float64{0, 1}, FixNumericExtent([]float64{math.Inf(-1), 2}))
	assert.Equal(t, [2]float64{0, 1}, FixNumericExtent([]float64{math.NaN(), math.NaN()}))

	assert.Equal(t, data.Numbers(-1, 4), NumericDomain(data.Values(2, "x", -1, 4, nil)))
	assert.Nil(t, NumericDomain(data.Values("x")))
}

func TestConvergeSize(t *testing.T) {
	fixed := func(Size) Size { return Size{100, 50} }
	calls := 0
	s := convergeSize(Size{}, 3, fixed, func(Size) Size {
		calls++
		return Size{10, 20}
	})
	assert.Equal(t, Size{10, 20}, s)
	assert.Equal(t, 2, calls)

	calls = 0
	s = convergeSize(Size{10, 20}, 3, fixed, func(Size) Size {
		calls++
		return Size{10, 20}
	})
	assert.Equal(t, Size{10, 20}, s)
	assert.Equal(t, 1, calls)

	// the budget of each pass is what the previous size leaves over
	var got []Size
	s = convergeSize(Size{}, 3, func(prev Size) Size {
		return Size{100 - prev.Width, 50}
	}, func(b Size) Size {
		got = append(got, b)
		return Size{b.Width / 2, 10}
	})
	assert.Equal(t, []Size{{100, 50}, {50, 50}, {75, 50}}, got[:3])
	assert.Equal(t, Size{25, 10}, s)
	// the layout is run again within the budget of the chosen size
	require.Len(t, got, 4)
	assert.Equal(t, Size{50, 50}, got[3])
}

func legendData(labels ...string) []LegendDatum {
	var ds []LegendDatum
	for _, l := range labels {
		ds = append(ds, LegendDatum{SeriesID: "s", ItemID: l, Label: l, Enabled: true,
			Marker: LegendMarkerStyle{Fill: "red", Stroke: "black", FillOpacity: 1, StrokeOpacity: 1}})
	}
	return ds
}

func TestLegendVertical(t *testing.T) {
	l := NewLegend()
	assert.False(t, l.Group.Visible)
	l.SetData(legendData("one", "two", "three", "four"))
	assert.True(t, l.Group.Visible)
	assert.Equal(t, Vertical, l.Orientation())

	tall := l.PerformLayout(0, 1000)
	require.Len(t, l.Nodes(), 4)
	assert.Positive(t, tall.Width)
	xs := map[float64]bool{}
	for _, g := range l.Nodes() {
		xs[g.TranslationX] = true
	}
	assert.Len(t, xs, 1, "one column")

	short := l.PerformLayout(0, tall.Height/2)
	assert.Less(t, short.Height, tall.Height)
	assert.Greater(t, short.Width, tall.Width)
	assert.Equal(t, short, l.Size())
}

func TestLegendHorizontal(t *testing.T) {
	l := NewLegend()
	l.SetPosition(LegendBottom)
	assert.Equal(t, Horizontal, l.Orientation())
	l.SetData(legendData("one", "two", "three", "four"))

	wide := l.PerformLayout(1000, 0)
	ys := map[float64]bool{}
	for _, g := range l.Nodes() {
		ys[g.TranslationY] = true
	}
	assert.Len(t, ys, 1, "one row")

	narrow := l.PerformLayout(wide.Width/2, 0)
	assert.Less(t, narrow.Width, wide.Width)
	assert.Greater(t, narrow.Height, wide.Height)

	l.SetData(nil)
	assert.Equal(t, Size{}, l.PerformLayout(100, 100))
	assert.Empty(t, l.Nodes())
	assert.False(t, l.Group.Visible)
}

func TestLegendItemReuse(t *testing.T) {
	l := NewLegend()
	l.SetData(legendData("a", "b"))
	l.PerformLayout(0, 500)
	first := l.Nodes()[0]

	ds := legendData("a", "b")
	ds[0].Enabled = false
	l.SetData(ds)
	l.PerformLayout(0, 500)
	assert.Same(t, first, l.Nodes()[0])
	assert.Equal(t, 0.5, first.Opacity)
	assert.Equal(t, 1.0, l.Nodes()[1].Opacity)

	_, label := itemParts(first)
	assert.Equal(t, "a", label.Text)

	l.Item.Label.SetFormatter(func(d LegendDatum) string { return "<" + d.Label + ">" })
	l.PerformLayout(0, 500)
	assert.Equal(t, "<a>", label.Text)

	// a new marker shape rebuilds the items
	l.Item.Marker.SetShape("circle")
	l.PerformLayout(0, 500)
	assert.NotSame(t, first, l.Nodes()[0])
}

func TestToTooltipHTML(t *testing.T) {
	h := ToTooltipHTML(TooltipContent{Content: "a < b"}, TooltipContent{Title: "Sales", Color: "red"})
	assert.Contains(t, h, `class="vkchart-tooltip-title"`)
	assert.Contains(t, h, "#ff0000")
	assert.Contains(t, h, "#888888")
	assert.Contains(t, h, "a &lt; b")
	assert.Equal(t, "Sales\na < b", PlainText(h))

	h = ToTooltipHTML(TooltipContent{Content: "only"}, TooltipContent{})
	assert.NotContains(t, h, "-title")
	assert.Equal(t, "only", PlainText(h))

	raw := safehtml.HTMLEscaped("<raw>")
	assert.Equal(t, raw.String(), ToTooltipHTML(TooltipContent{HTML: raw}, TooltipContent{Title: "x"}))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,234.5", FormatNumber(1234.5, 2))
	assert.Equal(t, "1,235", FormatNumber(1234.6, 0))
	assert.Equal(t, "NaN", FormatNumber(math.NaN(), 2))
	assert.Equal(t, "0.25", FormatValue(data.NumberValue(0.25)))
	assert.Equal(t, "x", FormatValue(data.StringValue("x")))

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", FormatValue(data.TimeValue(day)))
	assert.Equal(t, "2024-03-01 12:30", FormatValue(data.TimeValue(day.Add(12*time.Hour+30*time.Minute))))
	assert.Equal(t, "00:00:05", formatTime(day.Add(5*time.Second), 30e3))

	assert.Equal(t, 0, stepDigits(10))
	assert.Equal(t, 1, stepDigits(0.5))
	assert.Equal(t, 2, stepDigits(0.05))
}

func TestAxisTicks(t *testing.T) {
	a := NewAxis(NumberAxis, Y)
	require.True(t, a.setDomain(data.Values(0.3, 9.6)))
	assert.False(t, a.setDomain(data.Values(0.3, 9.6)))
	assert.Equal(t, data.Numbers(0, 10), a.Domain())

	a.Scale.SetRange(100, 0)
	a.Update(200)
	require.Positive(t, a.ticks.Len())
	var labels []string
	a.ticks.Each(func(g *scene.Group, v data.Value, i int) {
		labels = append(labels, g.ChildByTag("label").(*scene.Text).Text)
	})
	assert.Equal(t, "0", labels[0])
	assert.Equal(t, "10", labels[len(labels)-1])
	assert.Greater(t, a.Thickness(), a.TickSize()+labelPadding)

	a.SetFormatter(func(v data.Value) string { return v.Str() + "%" })
	a.Update(200)
	assert.Equal(t, "10%", a.ticks.Nodes()[a.ticks.Len()-1].ChildByTag("label").(*scene.Text).Text)

	c := NewAxis(CategoryAxis, X)
	c.setDomain(data.Values("b", "a", "b"))
	assert.Empty(t, cmp.Diff(data.Values("b", "a"), c.Domain(), cmp.Comparer(data.Value.Equal)))
	c.Scale.SetRange(0, 100)
	assert.InDelta(t, c.Scale.Convert(data.StringValue("a"))+c.Scale.Bandwidth()/2, c.tickPos(data.StringValue("a")), 1e-9)
}

func TestAxisEvents(t *testing.T) {
	a := NewAxis(NumberAxis, X)
	var cats []observe.Category
	a.AddEventListener(observe.LayoutChange, observe.OnEvent(func(_ any, ev observe.Event) {
		cats = append(cats, ev.Type())
	}), nil)
	a.Title.SetText("Time")
	a.SetTickSize(8)
	assert.Equal(t, []observe.Category{observe.LayoutChange, observe.LayoutChange}, cats)
}
