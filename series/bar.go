// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scale"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/selection"
)

// BarLabelPlacement is where the label of a bar is drawn.
type BarLabelPlacement string

const (
	// BarLabelInside centers the label in the bar.
	BarLabelInside BarLabelPlacement = "inside"

	// BarLabelOutside draws the label past the end of the bar.
	BarLabelOutside BarLabelPlacement = "outside"
)

// BarFormatterParams are passed to a bar formatter.
type BarFormatterParams struct {
	Datum       data.Row
	XKey, YKey  string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Highlighted bool
}

// BarFormat overrides the style of a bar. Zero fields are ignored.
type BarFormat struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// BarLabelDatum is the label of a bar.
type BarLabelDatum struct {
	Text     string
	X, Y     float64
	Align    scene.TextAlign
	Baseline scene.TextBaseline
}

// BarNodeDatum is the node datum of one bar.
type BarNodeDatum struct {
	chart.NodeDatumBase

	// Index is the index of the data row.
	Index int

	// YValue is the raw value of the bar.
	YValue data.Value

	X, Y, Width, Height float64

	Fill, Stroke string
	StrokeWidth  float64

	// Label is nil if the bar has no label.
	Label *BarLabelDatum
}

// Point returns the center of the bar.
func (d *BarNodeDatum) Point() (x, y float64, ok bool) {
	return d.X + d.Width/2, d.Y + d.Height/2, true
}

// Bar is a series of bars, or columns if flipped, with one category
// per data row. Each category has a group of stacks side by side, and
// each stack has one bar per y key, one on top of the other.
type Bar struct {
	chart.SeriesBase

	// Formatter, if set, overrides the style of each bar.
	Formatter func(p BarFormatterParams) BarFormat

	// LabelFormatter, if set, returns the text of the label
	// of each bar from its raw value.
	LabelFormatter func(v data.Value) string

	xKey           observe.Property[string]
	xName          observe.Property[string]
	yKeys          observe.Property[[][]string]
	yNames         observe.Property[map[string]string]
	grouped        observe.Property[bool]
	hideInLegend   observe.Property[[]string]
	normalizedTo   observe.Property[float64]
	fills          observe.Property[[]string]
	strokes        observe.Property[[]string]
	fillOpacity    observe.Property[float64]
	strokeOpacity  observe.Property[float64]
	strokeWidth    observe.Property[float64]
	lineDash       observe.Property[[]float64]
	lineDashOffset observe.Property[float64]
	flipXY         observe.Property[bool]
	labelPlacement observe.Property[BarLabelPlacement]

	// Shadow, if set, is drawn under the bars.
	Shadow *chart.DropShadow

	// flatYKeys are the y keys as last set with SetYKeys.
	flatYKeys []string

	// seriesItemEnabled is whether each y key is shown.
	seriesItemEnabled map[string]bool

	// cumYKeyCount is the number of y keys before each stack.
	cumYKeyCount []int

	// groupScale places the stacks within a category.
	groupScale *scale.Band

	xData   []data.Value
	yData   [][][]float64
	yDomain []data.Value

	rects  *selection.Selection[*scene.Rect, chart.NodeDatum]
	labels *selection.Selection[*scene.Text, chart.NodeDatum]
}

// NewBar returns a new bar series.
func NewBar() *Bar {
	b := &Bar{
		xKey:              observe.NewProperty("xKey", "", observe.DataChange),
		xName:             observe.NewProperty("xName", "", observe.Update),
		yKeys:             observe.NewProperty[[][]string]("yKeys", nil, observe.DataChange),
		yNames:            observe.NewProperty[map[string]string]("yNames", nil, observe.LegendChange),
		grouped:           observe.NewProperty("grouped", false, observe.DataChange),
		hideInLegend:      observe.NewProperty[[]string]("hideInLegend", nil, observe.LayoutChange),
		normalizedTo:      observe.NewProperty("normalizedTo", 0.0, observe.DataChange),
		fills:             observe.NewProperty("fills", slices.Clone(chart.DefaultFills), observe.DataChange),
		strokes:           observe.NewProperty("strokes", slices.Clone(chart.DefaultStrokes), observe.DataChange),
		fillOpacity:       observe.NewProperty("fillOpacity", 1.0, observe.LayoutChange),
		strokeOpacity:     observe.NewProperty("strokeOpacity", 1.0, observe.LayoutChange),
		strokeWidth:       observe.NewProperty("strokeWidth", 1.0, observe.Update),
		lineDash:          observe.NewProperty[[]float64]("lineDash", nil, observe.Update),
		lineDashOffset:    observe.NewProperty("lineDashOffset", 0.0, observe.Update),
		flipXY:            observe.NewProperty("flipXY", false, observe.DataChange),
		labelPlacement:    observe.NewProperty("labelPlacement", BarLabelInside, observe.Update),
		seriesItemEnabled: map[string]bool{},
		groupScale:        scale.NewBand(),
	}
	b.InitSeries(b, "bar", chart.X, chart.Y)
	b.Label.SetEnabled(false)
	b.groupScale.SetPadding(0.1)
	b.groupScale.SetRound(true)
	b.rects = selection.New[*scene.Rect, chart.NodeDatum](b.PickGroup())
	lg := scene.NewGroup()
	lg.Name = "labels"
	lg.ZIndex = 1
	b.Group().AddChild(lg)
	b.labels = selection.New[*scene.Text, chart.NodeDatum](lg)
	b.AddPropertyListener("yKeys", observe.OnProperty(func(_ any, ev *observe.PropertyChange) {
		b.resetItems()
	}), b)
	return b
}

func (b *Bar) XKey() string                      { return b.xKey.Get() }
func (b *Bar) XName() string                     { return b.xName.Get() }
func (b *Bar) YNames() map[string]string         { return b.yNames.Get() }
func (b *Bar) Grouped() bool                     { return b.grouped.Get() }
func (b *Bar) HideInLegend() []string            { return b.hideInLegend.Get() }
func (b *Bar) NormalizedTo() float64             { return b.normalizedTo.Get() }
func (b *Bar) Fills() []string                   { return b.fills.Get() }
func (b *Bar) Strokes() []string                 { return b.strokes.Get() }
func (b *Bar) FillOpacity() float64              { return b.fillOpacity.Get() }
func (b *Bar) StrokeOpacity() float64            { return b.strokeOpacity.Get() }
func (b *Bar) LineDash() []float64               { return b.lineDash.Get() }
func (b *Bar) LineDashOffset() float64           { return b.lineDashOffset.Get() }
func (b *Bar) FlipXY() bool                      { return b.flipXY.Get() }
func (b *Bar) LabelPlacement() BarLabelPlacement { return b.labelPlacement.Get() }

// BarStrokeWidth returns the stroke width of the bars.
func (b *Bar) BarStrokeWidth() float64 { return b.strokeWidth.Get() }

// YKeys returns the y keys of each stack.
func (b *Bar) YKeys() [][]string { return b.yKeys.Get() }

func (b *Bar) SetXKey(v string)                      { b.xKey.Set(&b.Observable, v) }
func (b *Bar) SetXName(v string)                     { b.xName.Set(&b.Observable, v) }
func (b *Bar) SetYNames(v map[string]string)         { b.yNames.Set(&b.Observable, v) }
func (b *Bar) SetHideInLegend(v []string)            { b.hideInLegend.Set(&b.Observable, v) }
func (b *Bar) SetNormalizedTo(v float64)             { b.normalizedTo.Set(&b.Observable, math.Abs(v)) }
func (b *Bar) SetFills(v []string)                   { b.fills.Set(&b.Observable, v) }
func (b *Bar) SetStrokes(v []string)                 { b.strokes.Set(&b.Observable, v) }
func (b *Bar) SetFillOpacity(v float64)              { b.fillOpacity.Set(&b.Observable, v) }
func (b *Bar) SetStrokeOpacity(v float64)            { b.strokeOpacity.Set(&b.Observable, v) }
func (b *Bar) SetBarStrokeWidth(v float64)           { b.strokeWidth.Set(&b.Observable, v) }
func (b *Bar) SetLineDash(v []float64)               { b.lineDash.Set(&b.Observable, v) }
func (b *Bar) SetLineDashOffset(v float64)           { b.lineDashOffset.Set(&b.Observable, v) }
func (b *Bar) SetFlipXY(v bool)                      { b.flipXY.Set(&b.Observable, v) }
func (b *Bar) SetLabelPlacement(v BarLabelPlacement) { b.labelPlacement.Set(&b.Observable, v) }

// SetYKeys sets the y keys. If the series is grouped, each key is
// its own stack; otherwise all keys are stacked together.
func (b *Bar) SetYKeys(keys ...string) {
	b.flatYKeys = slices.Clone(keys)
	b.yKeys.Set(&b.Observable, b.stacks())
}

// SetYKeyStacks sets the y keys of each stack directly.
func (b *Bar) SetYKeyStacks(stacks [][]string) {
	b.flatYKeys = slices.Concat(stacks...)
	b.yKeys.Set(&b.Observable, stacks)
}

// SetGrouped sets whether the y keys set with [Bar.SetYKeys]
// are side by side rather than stacked.
func (b *Bar) SetGrouped(v bool) {
	if !b.grouped.Set(&b.Observable, v) {
		return
	}
	if b.flatYKeys != nil {
		b.yKeys.Set(&b.Observable, b.stacks())
	}
}

// stacks returns the stacks of the flat y keys.
func (b *Bar) stacks() [][]string {
	if len(b.flatYKeys) == 0 {
		return nil
	}
	if !b.Grouped() {
		return [][]string{slices.Clone(b.flatYKeys)}
	}
	st := make([][]string, len(b.flatYKeys))
	for i, k := range b.flatYKeys {
		st[i] = []string{k}
	}
	return st
}

// resetItems enables every y key and recounts them.
func (b *Bar) resetItems() {
	b.seriesItemEnabled = map[string]bool{}
	b.cumYKeyCount = b.cumYKeyCount[:0]
	n := 0
	for _, st := range b.YKeys() {
		b.cumYKeyCount = append(b.cumYKeyCount, n)
		n += len(st)
		for _, k := range st {
			b.seriesItemEnabled[k] = true
		}
	}
	b.updateGroupDomain()
}

// updateGroupDomain sets the domain of the group scale to
// the stacks with at least one enabled key.
func (b *Bar) updateGroupDomain() {
	var vis []data.Value
	for i, st := range b.YKeys() {
		if slices.ContainsFunc(st, func(k string) bool { return b.seriesItemEnabled[k] }) {
			vis = append(vis, data.StringValue(strconv.Itoa(i)))
		}
	}
	b.groupScale.SetDomain(vis)
}

// ItemEnabled returns whether the y key is shown.
func (b *Bar) ItemEnabled(yKey string) bool { return b.seriesItemEnabled[yKey] }

// SetColors sets the fills and strokes.
func (b *Bar) SetColors(fills, strokes []string) {
	b.SetFills(fills)
	b.SetStrokes(strokes)
}

// categoryAxis returns the axis of the categories.
func (b *Bar) categoryAxis() *chart.Axis {
	if b.FlipXY() {
		return b.YAxis()
	}
	return b.XAxis()
}

// valueAxis returns the axis of the values.
func (b *Bar) valueAxis() *chart.Axis {
	if b.FlipXY() {
		return b.XAxis()
	}
	return b.YAxis()
}

func (b *Bar) ProcessData() bool {
	xKey, yKeys := b.XKey(), b.YKeys()
	rows := b.Data()
	b.xData, b.yData, b.yDomain = nil, nil, nil
	if xKey == "" || len(yKeys) == 0 {
		b.WarnOnce("keys", "bar: xKey and yKeys are required")
		return false
	}
	missingKeys(&b.SeriesBase, rows, append([]string{xKey}, b.flatYKeys...)...)

	b.xData = data.Column(rows, xKey)
	b.yData = make([][][]float64, len(rows))
	for i, row := range rows {
		group := make([][]float64, len(yKeys))
		for j, st := range yKeys {
			stack := make([]float64, len(st))
			for k, key := range st {
				if f, ok := finite(row.Get(key)); ok && b.seriesItemEnabled[key] {
					stack[k] = f
				}
			}
			group[j] = stack
		}
		b.yData[i] = group
	}

	ymin, ymax := 0.0, 0.0
	for _, group := range b.yData {
		for _, stack := range group {
			lo, hi := stackExtent(stack)
			ymin, ymax = min(ymin, lo), max(ymax, hi)
		}
	}
	ext := []float64{ymin, ymax}
	if len(b.yData) == 0 {
		ext = nil
	}

	// positive values are scaled by their stack's positive total and
	// negative values by its negative total, so each part reaches nt
	if nt := b.NormalizedTo(); nt != 0 && !math.IsNaN(nt) && !math.IsInf(nt, 0) {
		for _, group := range b.yData {
			for _, stack := range group {
				lo, hi := stackExtent(stack)
				for k, y := range stack {
					switch {
					case y < 0:
						stack[k] = -y / lo * nt
					case hi > 0:
						stack[k] = y / hi * nt
					}
				}
			}
		}
		ext = []float64{0, nt}
		if ymin < 0 {
			ext[0] = -nt
		}
	}
	e := chart.FixNumericExtent(ext)
	b.yDomain = data.Numbers(e[0], e[1])
	return true
}

// stackExtent returns the sum of the negative values
// and the sum of the positive values of the stack.
func stackExtent(stack []float64) (lo, hi float64) {
	for _, y := range stack {
		if y < 0 {
			lo += y
		} else {
			hi += y
		}
	}
	return
}

func (b *Bar) Domain(dir chart.Direction) []data.Value {
	if (dir == chart.X) != b.FlipXY() {
		return b.xData
	}
	return b.yDomain
}

func (b *Bar) CreateNodeData() []chart.NodeDatum {
	xa, ya := b.categoryAxis(), b.valueAxis()
	if xa == nil || ya == nil {
		return nil
	}
	xs, ys := xa.Scale, ya.Scale
	rows := b.Data()
	flip := b.FlipXY()
	placement := b.LabelPlacement()
	labels := b.Label.Enabled()
	b.groupScale.SetRange(0, xs.Bandwidth())
	barWidth := b.groupScale.Bandwidth()

	var nds []chart.NodeDatum
	for gi, xv := range b.xData {
		x := xs.Convert(xv)
		for si, stack := range b.yData[gi] {
			prevMin, prevMax := 0.0, 0.0
			for li, cur := range stack {
				key := b.YKeys()[si][li]
				barX := x + b.groupScale.Convert(data.StringValue(strconv.Itoa(si)))
				prev := prevMax
				if cur < 0 {
					prev = prevMin
				}
				if cur < 0 {
					prevMin += cur
				} else {
					prevMax += cur
				}
				if !scale.InRange(xs, barX, barWidth) {
					continue
				}
				y := scale.ConvertClamped(ys, data.NumberValue(prev+cur))
				bottom := scale.ConvertClamped(ys, data.NumberValue(prev))
				yv := rows[gi].Get(key)
				ci := b.cumYKeyCount[si] + li
				nd := &BarNodeDatum{
					NodeDatumBase: chart.NodeDatumBase{S: b, Item: key, Row: rows[gi]},
					Index:         gi,
					YValue:        yv,
					Fill:          colorAt(b.Fills(), ci),
					Stroke:        colorAt(b.Strokes(), ci),
					StrokeWidth:   b.BarStrokeWidth(),
				}
				if flip {
					nd.X, nd.Y = math.Min(y, bottom), barX
					nd.Width, nd.Height = math.Abs(bottom-y), barWidth
				} else {
					nd.X, nd.Y = barX, math.Min(y, bottom)
					nd.Width, nd.Height = barWidth, math.Abs(bottom-y)
				}
				if labels && b.seriesItemEnabled[key] {
					nd.Label = b.barLabel(yv, barX, barWidth, y, bottom, flip, placement)
				}
				nds = append(nds, nd)
			}
		}
	}
	return nds
}

// barLabel returns the label of a bar from barX to barX+barWidth
// across and from bottom to y along the value axis, or nil if
// it has no text.
func (b *Bar) barLabel(yv data.Value, barX, barWidth, y, bottom float64, flip bool, placement BarLabelPlacement) *BarLabelDatum {
	var text string
	if b.LabelFormatter != nil {
		text = b.LabelFormatter(yv)
	} else if yv.Kind() == data.Number {
		text = toFixed(yv.Num())
	}
	if text == "" {
		return nil
	}
	sign := 1.0
	if yv.Num() < 0 {
		sign = -1
	}
	l := &BarLabelDatum{Text: text, Align: scene.AlignCenter, Baseline: scene.BaselineMiddle}
	half := math.Abs(bottom-y) / 2
	switch {
	case flip && placement == BarLabelInside:
		l.X, l.Y = y-sign*half, barX+barWidth/2
	case flip:
		l.X, l.Y = y+sign*4, barX+barWidth/2
		l.Align = scene.AlignStart
		if sign < 0 {
			l.Align = scene.AlignEnd
		}
	case placement == BarLabelInside:
		l.X, l.Y = barX+barWidth/2, y+sign*half
	default:
		l.X = barX + barWidth/2
		l.Y = y - 3
		l.Baseline = scene.BaselineBottom
		if sign < 0 {
			l.Y = y + 4
			l.Baseline = scene.BaselineTop
		}
	}
	return l
}

func (b *Bar) Update() {
	nds := b.NodeData()
	b.rects.Update(nds, nil, func(nd chart.NodeDatum, i int) *scene.Rect {
		r := scene.NewRect()
		r.Tag = "bar"
		return r
	})
	b.labels.Update(nds, nil, func(nd chart.NodeDatum, i int) *scene.Text {
		return labelNode()
	})
	b.updateRects()
	b.updateLabels()
}

func (b *Bar) updateRects() {
	h := b.Chart().HighlightedDatum()
	flip := b.FlipXY()
	shadow := b.Shadow.Shadow()
	b.rects.Each(func(r *scene.Rect, d chart.NodeDatum, i int) {
		nd := d.(*BarNodeDatum)
		fill, stroke, sw := b.ItemStyle(nd, nd.Fill, nd.Stroke, nd.StrokeWidth)
		if b.Formatter != nil {
			f := b.Formatter(BarFormatterParams{
				Datum: nd.Row, XKey: b.XKey(), YKey: nd.Item,
				Fill: fill, Stroke: stroke, StrokeWidth: sw,
				Highlighted: b.IsHighlighted(nd),
			})
			fill = cmp.Or(f.Fill, fill)
			stroke = cmp.Or(f.Stroke, stroke)
			if f.StrokeWidth > 0 {
				sw = f.StrokeWidth
			}
		}
		r.SetBounds(nd.X, nd.Y, nd.Width, nd.Height)
		r.SetFill(fill)
		r.SetStroke(stroke)
		r.SetStrokeWidth(sw)
		r.SetFillOpacity(b.FillOpacity())
		r.SetStrokeOpacity(b.StrokeOpacity())
		r.SetLineDash(b.LineDash())
		r.SetLineDashOffset(b.LineDashOffset())
		r.SetShadow(shadow)
		if flip {
			r.SetVisible(nd.Width > 0)
		} else {
			r.SetVisible(nd.Height > 0)
		}
		z := b.ZIndex(nd, i)
		if h != nil && h.Series() == chart.Series(b) && h.ItemID() == nd.Item {
			z = chart.HighlightedZIndex
		}
		r.SetZIndex(z)
		r.SetOpacity(b.Opacity(nd))
	})
}

func (b *Bar) updateLabels() {
	enabled := b.Label.Enabled()
	b.labels.Each(func(t *scene.Text, d chart.NodeDatum, i int) {
		nd := d.(*BarNodeDatum)
		l := nd.Label
		if l == nil || !enabled {
			t.SetVisible(false)
			return
		}
		b.Label.Apply(t)
		t.SetAlign(l.Align, l.Baseline)
		t.SetText(l.Text)
		t.SetPos(l.X, l.Y)
		t.SetVisible(true)
		t.SetOpacity(b.Opacity(nd))
	})
}

// stackIndex returns the index of the stack and the level
// within it of the y key, or -1.
func (b *Bar) stackIndex(yKey string) (stack, level int) {
	for i, st := range b.YKeys() {
		if j := slices.Index(st, yKey); j >= 0 {
			return i, j
		}
	}
	return -1, -1
}

// yName returns the display name of the y key.
func (b *Bar) yName(yKey string) string {
	if n, ok := b.YNames()[yKey]; ok && n != "" {
		return n
	}
	return yKey
}

func (b *Bar) TooltipHTML(d chart.NodeDatum) string {
	nd, ok := d.(*BarNodeDatum)
	xa, ya := b.categoryAxis(), b.valueAxis()
	if !ok || b.XKey() == "" || xa == nil || ya == nil {
		return ""
	}
	si, li := b.stackIndex(nd.Item)
	if si < 0 {
		return ""
	}
	color := colorAt(b.Fills(), b.cumYKeyCount[si]+li)
	xv := nd.Row.Get(b.XKey())
	title := b.YNames()[nd.Item]
	content := xa.FormatDatum(xv) + ": " + ya.FormatDatum(nd.YValue)
	return b.Tooltip.Render(chart.TooltipParams{
		Datum:  nd.Row,
		Title:  title,
		Color:  color,
		XKey:   b.XKey(),
		XName:  b.XName(),
		XValue: xv,
		YKey:   nd.Item,
		YName:  title,
		YValue: nd.YValue,
	}, chart.TooltipContent{Title: title, Content: content, BackgroundColor: color})
}

func (b *Bar) ListSeriesItems(items *[]chart.LegendDatum) {
	if len(b.Data()) == 0 || b.XKey() == "" || len(b.YKeys()) == 0 || !b.ShowInLegend() {
		return
	}
	hidden := b.HideInLegend()
	for si, st := range b.YKeys() {
		for li, key := range st {
			if slices.Contains(hidden, key) {
				continue
			}
			ci := b.cumYKeyCount[si] + li
			*items = append(*items, chart.LegendDatum{
				SeriesID: b.ID,
				ItemID:   key,
				Enabled:  b.seriesItemEnabled[key],
				Label:    b.yName(key),
				Marker: chart.LegendMarkerStyle{
					Fill:          colorAt(b.Fills(), ci),
					Stroke:        colorAt(b.Strokes(), ci),
					FillOpacity:   b.FillOpacity(),
					StrokeOpacity: b.StrokeOpacity(),
				},
			})
		}
	}
}

// ToggleSeriesItem shows or hides the bars of the y key.
func (b *Bar) ToggleSeriesItem(itemID string, enabled bool) {
	if _, ok := b.seriesItemEnabled[itemID]; !ok {
		return
	}
	b.seriesItemEnabled[itemID] = enabled
	b.updateGroupDomain()
	b.ScheduleNodeData()
	b.ScheduleLegend()
}
