// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scale"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/selection"
)

// AxisKinds are the kinds of [Axis].
type AxisKinds int32

const (
	// NumberAxis is a linear axis.
	NumberAxis AxisKinds = iota

	// CategoryAxis is an axis of discrete bands.
	CategoryAxis

	// LogAxis is a logarithmic axis.
	LogAxis

	// TimeAxis is a linear axis of times.
	TimeAxis
)

var axisKindNames = [...]string{"number", "category", "log", "time"}

func (k AxisKinds) String() string {
	if k >= 0 && int(k) < len(axisKindNames) {
		return axisKindNames[k]
	}
	return fmt.Sprintf("AxisKinds(%d)", int32(k))
}

// AxisKindFromString returns the axis kind with the given name.
func AxisKindFromString(s string) (AxisKinds, error) {
	for i, nm := range axisKindNames {
		if strings.EqualFold(nm, s) {
			return AxisKinds(i), nil
		}
	}
	return 0, fmt.Errorf("chart.AxisKindFromString: %q is not a valid axis kind", s)
}

// Continuous returns whether the kind maps numbers.
func (k AxisKinds) Continuous() bool { return k != CategoryAxis }

// AxisPosition is the side of the series area an axis is drawn on.
type AxisPosition string

const (
	AxisTop    AxisPosition = "top"
	AxisRight  AxisPosition = "right"
	AxisBottom AxisPosition = "bottom"
	AxisLeft   AxisPosition = "left"
)

// labelPadding is the space between ticks and tick labels,
// and between tick labels and the title.
const labelPadding = 5

// Axis maps the values of one direction of its bound series onto
// the series area, and draws its line, ticks, tick labels, grid
// lines, and title.
type Axis struct {
	observe.Observable

	// ID is the unique id of the axis.
	ID string

	// Kind is the kind of axis, which determines its scale.
	Kind AxisKinds

	// Direction is the direction of the series values the axis maps.
	Direction Direction

	// Scale maps domain values onto pixels. Its domain is set by
	// the chart and its range by the chart layout.
	Scale scale.Scale

	// Title is the title of the axis, drawn when enabled.
	Title *Caption

	// Label is the style of the tick labels.
	Label *Label

	position  observe.Property[AxisPosition]
	tickCount observe.Property[int]
	tickSize  observe.Property[float64]
	nice      observe.Property[bool]
	lineColor observe.Property[string]
	gridColor observe.Property[string]
	formatter observe.Property[func(v data.Value) string]

	chart       *Chart
	boundSeries []Series
	domain      []data.Value

	group *scene.Group
	line  *scene.Line
	ticks *selection.Selection[*scene.Group, data.Value]
}

// NewAxis returns a new axis of the given kind and direction,
// at the bottom for x and the left for y.
func NewAxis(kind AxisKinds, dir Direction) *Axis {
	a := &Axis{
		ID:        observe.NewID("Axis"),
		Kind:      kind,
		Direction: dir,
		Title:     NewCaption(),
		Label:     NewLabel(),
		tickCount: observe.NewProperty("tickCount", 10, observe.DataChange),
		tickSize:  observe.NewProperty("tickSize", 6.0, observe.LayoutChange),
		nice:      observe.NewProperty("nice", true, observe.DataChange),
		lineColor: observe.NewProperty("lineColor", "rgba(195, 195, 195, 1)", observe.Change),
		gridColor: observe.NewProperty("gridColor", "rgba(219, 219, 219, 1)", observe.Change),
		formatter: observe.NewProperty[func(v data.Value) string]("formatter", nil, observe.LayoutChange),
	}
	pos := AxisBottom
	if dir == Y {
		pos = AxisLeft
	}
	a.position = observe.NewProperty("position", pos, observe.LayoutChange)
	a.InitObservable(a)

	switch kind {
	case CategoryAxis:
		b := scale.NewBand()
		b.SetPaddingInner(0.2)
		b.SetPaddingOuter(0.3)
		a.Scale = b
	case LogAxis:
		a.Scale = scale.NewLog(10)
	case TimeAxis:
		a.Scale = scale.NewTime()
	default:
		a.Scale = scale.NewLinear()
	}

	a.Title.Node.Font = scene.Font{Size: 12, Weight: scene.Bold, Family: "Verdana, sans-serif"}
	a.Title.Node.Tag = "title"

	a.group = scene.NewGroup()
	a.group.Name = a.ID
	a.group.PointerEvents = false
	a.line = scene.NewLine()
	a.line.Tag = "line"
	a.ticks = selection.New[*scene.Group, data.Value](a.group)
	a.group.AddChild(a.line, a.Title.Node)

	// tick count and nice change the domain of the scale
	a.AddEventListener(observe.DataChange, observe.On(func() { a.domain = nil }), a)

	// title and label changes can change the thickness
	relayout := observe.On(func() { a.FireEvent(observe.NewEvent(observe.LayoutChange)) })
	a.Title.AddEventListener(observe.Change, relayout, a)
	a.Label.AddEventListener(observe.Change, relayout, a)
	return a
}

func (a *Axis) Position() AxisPosition { return a.position.Get() }

// TickCount returns the approximate number of ticks.
func (a *Axis) TickCount() int { return a.tickCount.Get() }

// TickSize returns the length of the ticks.
func (a *Axis) TickSize() float64 { return a.tickSize.Get() }

// Nice returns whether the domain of a continuous axis
// is extended to round tick values.
func (a *Axis) Nice() bool        { return a.nice.Get() }
func (a *Axis) LineColor() string { return a.lineColor.Get() }
func (a *Axis) GridColor() string { return a.gridColor.Get() }

func (a *Axis) SetPosition(v AxisPosition) { a.position.Set(&a.Observable, v) }
func (a *Axis) SetTickCount(v int)         { a.tickCount.Set(&a.Observable, v) }
func (a *Axis) SetTickSize(v float64)      { a.tickSize.Set(&a.Observable, v) }
func (a *Axis) SetNice(v bool)             { a.nice.Set(&a.Observable, v) }
func (a *Axis) SetLineColor(v string)      { a.lineColor.Set(&a.Observable, v) }
func (a *Axis) SetGridColor(v string)      { a.gridColor.Set(&a.Observable, v) }

// SetFormatter sets the function formatting tick labels.
func (a *Axis) SetFormatter(f func(v data.Value) string) { a.formatter.Set(&a.Observable, f) }

// Group returns the group holding the nodes of the axis.
func (a *Axis) Group() *scene.Group { return a.group }

// BoundSeries returns the series whose values the axis maps,
// in series order.
func (a *Axis) BoundSeries() []Series { return a.boundSeries }

// Domain returns the domain of the scale.
func (a *Axis) Domain() []data.Value { return a.Scale.Domain() }

// setDomain sets the domain from the values aggregated from the
// bound series, reporting whether it changed. Continuous axes take
// the fixed extent of the values and discrete axes the distinct
// values in order.
func (a *Axis) setDomain(vs []data.Value) bool {
	var d []data.Value
	if a.Kind.Continuous() {
		var ext []float64
		if lo, hi, ok := data.Extent(vs); ok {
			ext = []float64{lo, hi}
		}
		e := FixNumericExtent(ext)
		d = data.Numbers(e[0], e[1])
	} else {
		d = data.Unique(vs)
	}
	if equalValues(a.domain, d) {
		return false
	}
	a.domain = d
	a.Scale.SetDomain(d)
	if c, ok := a.Scale.(scale.Continuous); ok && a.Nice() {
		c.Nice(a.TickCount())
	}
	return true
}

func equalValues(a, b []data.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// tickValues returns the values to draw ticks at.
func (a *Axis) tickValues() []data.Value {
	return a.Scale.Ticks(a.TickCount())
}

// FormatTick returns the label of the tick value.
func (a *Axis) FormatTick(v data.Value, ticks []data.Value) string {
	if f := a.formatter.Get(); f != nil {
		return f(v)
	}
	switch v.Kind() {
	case data.Number:
		step := 0.0
		if len(ticks) > 1 {
			step = ticks[1].Num() - ticks[0].Num()
		}
		return FormatNumber(v.Num(), stepDigits(step))
	case data.Time:
		span := 0.0
		if len(ticks) > 1 {
			span = ticks[len(ticks)-1].Num() - ticks[0].Num()
		}
		return formatTime(v.Time(), span)
	}
	return v.Str()
}

// FormatDatum returns the text of a data value on the axis,
// for tooltips.
func (a *Axis) FormatDatum(v data.Value) string {
	if f := a.formatter.Get(); f != nil {
		return f(v)
	}
	return FormatValue(v)
}

// vertical returns whether the axis is drawn on the left or right.
func (a *Axis) vertical() bool {
	p := a.Position()
	return p == AxisLeft || p == AxisRight
}

// Thickness returns the space the axis needs next to the series
// area for its ticks, tick labels, and title.
func (a *Axis) Thickness() float64 {
	ticks := a.tickValues()
	font := a.Label.Font()
	var maxW, maxH float64
	for _, v := range ticks {
		m := scene.MeasureText(a.FormatTick(v, ticks), font)
		maxW = math.Max(maxW, m.Width)
		maxH = math.Max(maxH, m.Height())
	}
	t := a.TickSize() + labelPadding
	if a.vertical() {
		return t + maxW
	}
	t += maxH
	if a.Title.Enabled() && a.Title.Text() != "" {
		t += labelPadding + scene.MeasureText(a.Title.Text(), a.Title.Font()).Height()
	}
	return t
}

// tickPos returns the pixel position of a tick, which is the
// middle of the band for category axes.
func (a *Axis) tickPos(v data.Value) float64 {
	return a.Scale.Convert(v) + a.Scale.Bandwidth()/2
}

// Update draws the axis for its current scale. The grid lines
// span gridLength across the series area.
func (a *Axis) Update(gridLength float64) {
	r := a.Scale.Range()
	lo, hi := math.Min(r[0], r[1]), math.Max(r[0], r[1])
	pos := a.Position()
	tickSize := a.TickSize()

	a.line.SetStroke(a.LineColor())
	if a.vertical() {
		a.line.SetPoints(0, lo, 0, hi)
	} else {
		a.line.SetPoints(lo, 0, hi, 0)
	}

	ticks := a.tickValues()
	a.ticks.Update(ticks, func(v data.Value) string { return v.Kind().String() + ":" + v.Str() },
		func(v data.Value, i int) *scene.Group {
			g := scene.NewGroup()
			grid := scene.NewLine()
			grid.Tag = "grid"
			tick := scene.NewLine()
			tick.Tag = "tick"
			label := scene.NewText()
			label.Tag = "label"
			g.AddChild(grid, tick, label)
			return g
		})
	a.ticks.Each(func(g *scene.Group, v data.Value, i int) {
		grid := g.Children[0].(*scene.Line)
		tick := g.Children[1].(*scene.Line)
		label := g.Children[2].(*scene.Text)
		p := a.tickPos(v)
		g.SetVisible(!math.IsNaN(p))
		if math.IsNaN(p) {
			return
		}
		grid.SetStroke(a.GridColor())
		grid.SetLineDash([]float64{4, 2})
		tick.SetStroke(a.LineColor())
		a.Label.Apply(label)
		label.SetText(a.FormatTick(v, ticks))
		switch pos {
		case AxisLeft:
			tick.SetPoints(-tickSize, p, 0, p)
			grid.SetPoints(0, p, gridLength, p)
			label.SetPos(-tickSize-labelPadding, p)
			label.SetAlign(scene.AlignRight, scene.BaselineMiddle)
		case AxisRight:
			tick.SetPoints(0, p, tickSize, p)
			grid.SetPoints(0, p, -gridLength, p)
			label.SetPos(tickSize+labelPadding, p)
			label.SetAlign(scene.AlignLeft, scene.BaselineMiddle)
		case AxisTop:
			tick.SetPoints(p, -tickSize, p, 0)
			grid.SetPoints(p, 0, p, gridLength)
			label.SetPos(p, -tickSize-labelPadding)
			label.SetAlign(scene.AlignCenter, scene.BaselineBottom)
		default:
			tick.SetPoints(p, 0, p, tickSize)
			grid.SetPoints(p, 0, p, -gridLength)
			label.SetPos(p, tickSize+labelPadding)
			label.SetAlign(scene.AlignCenter, scene.BaselineTop)
		}
	})

	title := a.Title.Node
	title.SetVisible(a.Title.Enabled() && a.Title.Text() != "")
	mid := (lo + hi) / 2
	switch pos {
	case AxisLeft, AxisRight:
		// titles are not rotated, so they go above the axis
		title.SetPos(0, lo-labelPadding)
		title.SetAlign(scene.AlignCenter, scene.BaselineBottom)
	case AxisTop:
		title.SetPos(mid, -a.Thickness())
		title.SetAlign(scene.AlignCenter, scene.BaselineTop)
	default:
		title.SetPos(mid, a.Thickness())
		title.SetAlign(scene.AlignCenter, scene.BaselineBottom)
	}
}
