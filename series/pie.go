// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scale"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/selection"
)

// PieCallout is the style of the lines from pie slices to their labels.
type PieCallout struct {
	observe.Observable

	colors      observe.Property[[]string]
	length      observe.Property[float64]
	strokeWidth observe.Property[float64]
}

// NewPieCallout returns a new callout of length 10
// in the default stroke colors.
func NewPieCallout() *PieCallout {
	c := &PieCallout{
		colors:      observe.NewProperty("colors", slices.Clone(chart.DefaultStrokes), observe.Change),
		length:      observe.NewProperty("length", 10.0, observe.Change),
		strokeWidth: observe.NewProperty("strokeWidth", 1.0, observe.Change),
	}
	c.InitObservable(c)
	return c
}

func (c *PieCallout) Colors() []string     { return c.colors.Get() }
func (c *PieCallout) Length() float64      { return c.length.Get() }
func (c *PieCallout) StrokeWidth() float64 { return c.strokeWidth.Get() }

func (c *PieCallout) SetColors(v []string)     { c.colors.Set(&c.Observable, v) }
func (c *PieCallout) SetLength(v float64)      { c.length.Set(&c.Observable, v) }
func (c *PieCallout) SetStrokeWidth(v float64) { c.strokeWidth.Set(&c.Observable, v) }

// PieFormatterParams are passed to a pie formatter.
type PieFormatterParams struct {
	Datum               data.Row
	AngleKey, RadiusKey string
	Fill                string
	Stroke              string
	StrokeWidth         float64
	Highlighted         bool
}

// PieFormat overrides the style of a slice. Zero fields are ignored.
type PieFormat struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// PieLabel is the label of a slice.
type PieLabel struct {
	Text     string
	Align    scene.TextAlign
	Baseline scene.TextBaseline
}

// PieNodeDatum is the node datum of one slice.
type PieNodeDatum struct {
	chart.NodeDatumBase

	// Index is the index of the data row.
	Index int

	// Radius is the outer radius as a fraction of the full radius.
	Radius float64

	StartAngle, EndAngle, MidAngle float64
	MidCos, MidSin                 float64

	// Label is nil if the slice has no label.
	Label *PieLabel
}

// Pie is a series of slices, one per data row, with angles in
// proportion to the values of the angle key and, optionally,
// radii in proportion to the values of the radius key.
type Pie struct {
	chart.SeriesBase
	chart.PolarBase

	// Title is drawn above the pie.
	Title *chart.Caption

	// Callout is the style of the label lines.
	Callout *PieCallout

	// Shadow, if set, is drawn under the slices.
	Shadow *chart.DropShadow

	// Formatter, if set, overrides the style of each slice.
	Formatter func(p PieFormatterParams) PieFormat

	// LabelFormatter, if set, returns the label text
	// from the value of the label key.
	LabelFormatter func(v data.Value) string

	angleKey          observe.Property[string]
	angleName         observe.Property[string]
	radiusKey         observe.Property[string]
	radiusName        observe.Property[string]
	radiusMin         observe.Property[float64]
	radiusMax         observe.Property[float64]
	labelKey          observe.Property[string]
	labelName         observe.Property[string]
	labelMinAngle     observe.Property[float64]
	labelOffset       observe.Property[float64]
	fills             observe.Property[[]string]
	strokes           observe.Property[[]string]
	fillOpacity       observe.Property[float64]
	strokeOpacity     observe.Property[float64]
	strokeWidth       observe.Property[float64]
	lineDash          observe.Property[[]float64]
	lineDashOffset    observe.Property[float64]
	rotation          observe.Property[float64]
	outerRadiusOffset observe.Property[float64]
	innerRadiusOffset observe.Property[float64]
	titleInLegend     observe.Property[bool]

	// seriesItemEnabled is whether each row is shown.
	seriesItemEnabled []bool

	radiusScale *scale.Linear
	sliceData   []*PieNodeDatum

	groups *selection.Selection[*scene.Group, chart.NodeDatum]
}

// NewPie returns a new pie series.
func NewPie() *Pie {
	p := &Pie{
		Title:             chart.NewCaption(),
		Callout:           NewPieCallout(),
		angleKey:          observe.NewProperty("angleKey", "", observe.DataChange),
		angleName:         observe.NewProperty("angleName", "", observe.Update),
		radiusKey:         observe.NewProperty("radiusKey", "", observe.DataChange),
		radiusName:        observe.NewProperty("radiusName", "", observe.Update),
		radiusMin:         observe.NewProperty("radiusMin", math.NaN(), observe.DataChange),
		radiusMax:         observe.NewProperty("radiusMax", math.NaN(), observe.DataChange),
		labelKey:          observe.NewProperty("labelKey", "", observe.DataChange),
		labelName:         observe.NewProperty("labelName", "", observe.Update),
		labelMinAngle:     observe.NewProperty("labelMinAngle", 20.0, observe.DataChange),
		labelOffset:       observe.NewProperty("labelOffset", 3.0, observe.Update),
		fills:             observe.NewProperty("fills", slices.Clone(chart.DefaultFills), observe.DataChange),
		strokes:           observe.NewProperty("strokes", slices.Clone(chart.DefaultStrokes), observe.DataChange),
		fillOpacity:       observe.NewProperty("fillOpacity", 1.0, observe.LayoutChange),
		strokeOpacity:     observe.NewProperty("strokeOpacity", 1.0, observe.LayoutChange),
		strokeWidth:       observe.NewProperty("strokeWidth", 1.0, observe.Update),
		lineDash:          observe.NewProperty[[]float64]("lineDash", nil, observe.Update),
		lineDashOffset:    observe.NewProperty("lineDashOffset", 0.0, observe.Update),
		rotation:          observe.NewProperty("rotation", 0.0, observe.DataChange),
		outerRadiusOffset: observe.NewProperty("outerRadiusOffset", 0.0, observe.Update),
		innerRadiusOffset: observe.NewProperty("innerRadiusOffset", 0.0, observe.Update),
		titleInLegend:     observe.NewProperty("titleInLegend", false, observe.LegendChange),
		radiusScale:       scale.NewLinear(),
	}
	p.InitSeries(p, "pie")
	p.radiusScale.SetDomain(data.Numbers(0, 1))

	p.Title.Node.Baseline = scene.BaselineBottom
	p.Title.Node.Tag = "title"
	p.Group().AddChild(p.Title.Node)
	p.Title.AddEventListener(observe.Change, observe.On(func() {
		p.ScheduleUpdate()
		p.ScheduleLegend()
	}), p)
	p.Callout.AddEventListener(observe.Change, observe.On(p.ScheduleUpdate), p)
	p.AddPropertyListener("data", observe.OnProperty(func(_ any, ev *observe.PropertyChange) {
		rows, _ := ev.Value.([]data.Row)
		p.seriesItemEnabled = make([]bool, len(rows))
		for i := range p.seriesItemEnabled {
			p.seriesItemEnabled[i] = true
		}
	}), p)
	p.groups = selection.New[*scene.Group, chart.NodeDatum](p.PickGroup())
	return p
}

func (p *Pie) AngleKey() string           { return p.angleKey.Get() }
func (p *Pie) AngleName() string          { return p.angleName.Get() }
func (p *Pie) RadiusKey() string          { return p.radiusKey.Get() }
func (p *Pie) RadiusName() string         { return p.radiusName.Get() }
func (p *Pie) LabelKey() string           { return p.labelKey.Get() }
func (p *Pie) LabelName() string          { return p.labelName.Get() }
func (p *Pie) LabelMinAngle() float64     { return p.labelMinAngle.Get() }
func (p *Pie) LabelOffset() float64       { return p.labelOffset.Get() }
func (p *Pie) Fills() []string            { return p.fills.Get() }
func (p *Pie) Strokes() []string          { return p.strokes.Get() }
func (p *Pie) FillOpacity() float64       { return p.fillOpacity.Get() }
func (p *Pie) StrokeOpacity() float64     { return p.strokeOpacity.Get() }
func (p *Pie) SliceStrokeWidth() float64  { return p.strokeWidth.Get() }
func (p *Pie) LineDash() []float64        { return p.lineDash.Get() }
func (p *Pie) LineDashOffset() float64    { return p.lineDashOffset.Get() }
func (p *Pie) Rotation() float64          { return p.rotation.Get() }
func (p *Pie) OuterRadiusOffset() float64 { return p.outerRadiusOffset.Get() }
func (p *Pie) InnerRadiusOffset() float64 { return p.innerRadiusOffset.Get() }
func (p *Pie) TitleInLegend() bool        { return p.titleInLegend.Get() }

// RadiusMin and RadiusMax return the radius key values mapped to the
// inner and outer radius, which are NaN to use the extent of the values.
func (p *Pie) RadiusMin() float64 { return p.radiusMin.Get() }
func (p *Pie) RadiusMax() float64 { return p.radiusMax.Get() }

func (p *Pie) SetAngleKey(v string)           { p.angleKey.Set(&p.Observable, v) }
func (p *Pie) SetAngleName(v string)          { p.angleName.Set(&p.Observable, v) }
func (p *Pie) SetRadiusKey(v string)          { p.radiusKey.Set(&p.Observable, v) }
func (p *Pie) SetRadiusName(v string)         { p.radiusName.Set(&p.Observable, v) }
func (p *Pie) SetRadiusMin(v float64)         { p.radiusMin.Set(&p.Observable, v) }
func (p *Pie) SetRadiusMax(v float64)         { p.radiusMax.Set(&p.Observable, v) }
func (p *Pie) SetLabelKey(v string)           { p.labelKey.Set(&p.Observable, v) }
func (p *Pie) SetLabelName(v string)          { p.labelName.Set(&p.Observable, v) }
func (p *Pie) SetLabelMinAngle(v float64)     { p.labelMinAngle.Set(&p.Observable, v) }
func (p *Pie) SetLabelOffset(v float64)       { p.labelOffset.Set(&p.Observable, v) }
func (p *Pie) SetFills(v []string)            { p.fills.Set(&p.Observable, v) }
func (p *Pie) SetStrokes(v []string)          { p.strokes.Set(&p.Observable, v) }
func (p *Pie) SetFillOpacity(v float64)       { p.fillOpacity.Set(&p.Observable, v) }
func (p *Pie) SetStrokeOpacity(v float64)     { p.strokeOpacity.Set(&p.Observable, v) }
func (p *Pie) SetSliceStrokeWidth(v float64)  { p.strokeWidth.Set(&p.Observable, v) }
func (p *Pie) SetLineDash(v []float64)        { p.lineDash.Set(&p.Observable, v) }
func (p *Pie) SetLineDashOffset(v float64)    { p.lineDashOffset.Set(&p.Observable, v) }
func (p *Pie) SetRotation(v float64)          { p.rotation.Set(&p.Observable, v) }
func (p *Pie) SetOuterRadiusOffset(v float64) { p.outerRadiusOffset.Set(&p.Observable, v) }
func (p *Pie) SetInnerRadiusOffset(v float64) { p.innerRadiusOffset.Set(&p.Observable, v) }
func (p *Pie) SetTitleInLegend(v bool)        { p.titleInLegend.Set(&p.Observable, v) }

// SetColors sets the fills and strokes, and the callout colors to the strokes.
func (p *Pie) SetColors(fills, strokes []string) {
	p.SetFills(fills)
	p.SetStrokes(strokes)
	p.Callout.SetColors(strokes)
}

// ItemEnabled returns whether the row at index i is shown.
func (p *Pie) ItemEnabled(i int) bool {
	return i >= 0 && i < len(p.seriesItemEnabled) && p.seriesItemEnabled[i]
}

// Domain returns nil: pie series have no axes.
func (p *Pie) Domain(dir chart.Direction) []data.Value { return nil }

// sliceAngle returns the angle in radians of the given fraction of
// the pie, starting at 12 o'clock.
func sliceAngle(f, rotation float64) float64 {
	return -math.Pi/2 + f*2*math.Pi + rotation
}

// quadrantAlign returns the text alignment of a label outside
// the pie at the given angle.
func quadrantAlign(angle float64) (scene.TextAlign, scene.TextBaseline) {
	a := math.Remainder(angle, 2*math.Pi)
	switch q := math.Pi / 4; {
	case a >= -3*q && a < -q:
		return scene.AlignCenter, scene.BaselineBottom
	case a >= -q && a < q:
		return scene.AlignLeft, scene.BaselineMiddle
	case a >= q && a < 3*q:
		return scene.AlignCenter, scene.BaselineHanging
	}
	return scene.AlignRight, scene.BaselineMiddle
}

func (p *Pie) ProcessData() bool {
	p.sliceData = nil
	key := p.AngleKey()
	if key == "" {
		p.WarnOnce("keys", "pie: angleKey is required")
		return false
	}
	rows := p.Data()
	missingKeys(&p.SeriesBase, rows, key, p.RadiusKey(), p.LabelKey())
	if len(p.seriesItemEnabled) != len(rows) {
		p.seriesItemEnabled = make([]bool, len(rows))
		for i := range p.seriesItemEnabled {
			p.seriesItemEnabled[i] = true
		}
	}

	angles := make([]float64, len(rows))
	total := 0.0
	for i, r := range rows {
		if f, ok := finite(r.Get(key)); ok && p.seriesItemEnabled[i] {
			angles[i] = math.Abs(f)
			total += angles[i]
		}
	}

	var radii []float64
	if rk := p.RadiusKey(); rk != "" {
		radii = make([]float64, len(rows))
		lo, hi := math.Inf(1), math.Inf(-1)
		for i, r := range rows {
			radii[i] = math.Abs(r.Get(rk).Num())
			if isFinite(radii[i]) {
				lo, hi = min(lo, radii[i]), max(hi, radii[i])
			}
		}
		if v := p.RadiusMin(); !math.IsNaN(v) {
			lo = v
		}
		if v := p.RadiusMax(); !math.IsNaN(v) {
			hi = v
		}
		for i, v := range radii {
			if d := hi - lo; d != 0 && isFinite(d) {
				radii[i] = (v - lo) / d
			} else {
				radii[i] = 1
			}
		}
	}

	lk := p.LabelKey()
	labels := p.Label.Enabled() && lk != ""
	rotation := p.Rotation() * math.Pi / 180
	minAngle := p.LabelMinAngle() * math.Pi / 180
	sum := 0.0
	for i, r := range rows {
		start := sum
		if total > 0 {
			sum += angles[i] / total
		}
		nd := &PieNodeDatum{
			NodeDatumBase: chart.NodeDatumBase{S: p, Item: strconv.Itoa(i), Row: r},
			Index:         i,
			Radius:        1,
			StartAngle:    sliceAngle(start, rotation),
			EndAngle:      sliceAngle(sum, rotation),
		}
		if radii != nil {
			nd.Radius = radii[i]
		}
		nd.MidAngle = (nd.StartAngle + nd.EndAngle) / 2
		nd.MidCos, nd.MidSin = math.Cos(nd.MidAngle), math.Sin(nd.MidAngle)
		if labels && math.Abs(nd.EndAngle-nd.StartAngle) > minAngle {
			l := &PieLabel{}
			if p.LabelFormatter != nil {
				l.Text = p.LabelFormatter(r.Get(lk))
			} else {
				l.Text = r.Get(lk).Str()
			}
			l.Align, l.Baseline = quadrantAlign(nd.MidAngle)
			nd.Label = l
		}
		p.sliceData = append(p.sliceData, nd)
	}
	return true
}

func (p *Pie) CreateNodeData() []chart.NodeDatum {
	nds := make([]chart.NodeDatum, len(p.sliceData))
	for i, s := range p.sliceData {
		nds[i] = s
	}
	return nds
}

// newSliceNode returns the group of a slice with its sector,
// callout line, and label.
func newSliceNode() *scene.Group {
	g := scene.NewGroup()
	s := scene.NewSector()
	s.Tag = "sector"
	l := scene.NewLine()
	l.Tag = "callout"
	l.PointerEvents = false
	t := labelNode()
	g.AddChild(s, l, t)
	return g
}

func sliceParts(g *scene.Group) (*scene.Sector, *scene.Line, *scene.Text) {
	return g.ChildByTag("sector").(*scene.Sector), g.ChildByTag("callout").(*scene.Line),
		g.ChildByTag("label").(*scene.Text)
}

func (p *Pie) Update() {
	r := p.Radius
	inner := 0.0
	if o := p.InnerRadiusOffset(); o != 0 {
		inner = r + o
	}
	p.radiusScale.SetRange(inner, r+p.OuterRadiusOffset())
	p.Group().SetTranslation(p.CenterX, p.CenterY)
	p.Group().SetVisible(p.Visible() && slices.Contains(p.seriesItemEnabled, true))
	p.Title.Node.SetPos(0, -r-p.OuterRadiusOffset()-2)
	p.Title.Node.SetVisible(p.Title.Enabled())

	p.groups.Update(p.NodeData(), nil, func(nd chart.NodeDatum, i int) *scene.Group {
		return newSliceNode()
	})

	fills, strokes := p.Fills(), p.Strokes()
	shadow := p.Shadow.Shadow()
	innerPx := p.radiusScale.Convert(data.NumberValue(0))
	co := p.Callout
	p.groups.Each(func(g *scene.Group, d chart.NodeDatum, i int) {
		nd := d.(*PieNodeDatum)
		sec, line, text := sliceParts(g)
		fill, stroke, sw := p.ItemStyle(nd, colorAt(fills, i), colorAt(strokes, i), p.SliceStrokeWidth())
		if p.Formatter != nil {
			f := p.Formatter(PieFormatterParams{
				Datum: nd.Row, AngleKey: p.AngleKey(), RadiusKey: p.RadiusKey(),
				Fill: fill, Stroke: stroke, StrokeWidth: sw,
				Highlighted: p.IsHighlighted(nd),
			})
			fill = cmp.Or(f.Fill, fill)
			stroke = cmp.Or(f.Stroke, stroke)
			if f.StrokeWidth > 0 {
				sw = f.StrokeWidth
			}
		}
		outer := p.radiusScale.Convert(data.NumberValue(nd.Radius))
		g.SetZIndex(p.ZIndex(nd, i))
		sec.SetRadii(innerPx, outer)
		sec.SetAngles(nd.StartAngle, nd.EndAngle)
		sec.SetFill(fill)
		sec.SetStroke(stroke)
		sec.SetStrokeWidth(sw)
		sec.SetFillOpacity(p.FillOpacity())
		sec.SetStrokeOpacity(p.StrokeOpacity())
		sec.SetLineDash(p.LineDash())
		sec.SetLineDashOffset(p.LineDashOffset())
		sec.SetShadow(shadow)
		sec.SetOpacity(p.Opacity(nil))

		l := nd.Label
		line.SetVisible(l != nil)
		text.SetVisible(l != nil)
		if l == nil {
			return
		}
		line.SetStroke(colorAt(co.Colors(), i))
		line.SetStrokeWidth(co.StrokeWidth())
		line.SetPoints(nd.MidCos*outer, nd.MidSin*outer, nd.MidCos*(outer+co.Length()), nd.MidSin*(outer+co.Length()))
		lr := outer + co.Length() + p.LabelOffset()
		p.Label.Apply(text)
		text.SetText(l.Text)
		text.SetPos(nd.MidCos*lr, nd.MidSin*lr)
		text.SetAlign(l.Align, l.Baseline)
	})
}

// title returns the text of the title if it is shown.
func (p *Pie) title() string {
	if !p.Title.Enabled() {
		return ""
	}
	return p.Title.Text()
}

func (p *Pie) TooltipHTML(d chart.NodeDatum) string {
	nd, ok := d.(*PieNodeDatum)
	key := p.AngleKey()
	if !ok || key == "" {
		return ""
	}
	color := colorAt(p.Fills(), nd.Index)
	row := nd.Row
	av := row.Get(key)
	content := av.Str()
	if av.Kind() == data.Number {
		content = toFixed(av.Num())
	}
	if lk := p.LabelKey(); lk != "" {
		content = row.Get(lk).Str() + ": " + content
	}
	var rv data.Value
	if rk := p.RadiusKey(); rk != "" {
		rv = row.Get(rk)
	}
	title := p.title()
	return p.Tooltip.Render(chart.TooltipParams{
		Datum:       row,
		Title:       title,
		Color:       color,
		AngleKey:    key,
		AngleName:   p.AngleName(),
		AngleValue:  av,
		RadiusKey:   p.RadiusKey(),
		RadiusName:  p.RadiusName(),
		RadiusValue: rv,
		LabelKey:    p.LabelKey(),
	}, chart.TooltipContent{Title: title, Content: content, BackgroundColor: color})
}

func (p *Pie) ListSeriesItems(items *[]chart.LegendDatum) {
	lk := p.LabelKey()
	rows := p.Data()
	if len(rows) == 0 || lk == "" || !p.ShowInLegend() {
		return
	}
	title := ""
	if p.TitleInLegend() {
		title = p.Title.Text()
	}
	fills, strokes := p.Fills(), p.Strokes()
	for i, r := range rows {
		var parts []string
		if title != "" {
			parts = append(parts, title)
		}
		parts = append(parts, r.Get(lk).Str())
		*items = append(*items, chart.LegendDatum{
			SeriesID: p.ID,
			ItemID:   strconv.Itoa(i),
			Enabled:  p.ItemEnabled(i),
			Label:    strings.Join(parts, " - "),
			Marker: chart.LegendMarkerStyle{
				Fill:          colorAt(fills, i),
				Stroke:        colorAt(strokes, i),
				FillOpacity:   p.FillOpacity(),
				StrokeOpacity: p.StrokeOpacity(),
			},
		})
	}
}

// ToggleSeriesItem shows or hides the slice of the row
// whose index is the item id.
func (p *Pie) ToggleSeriesItem(itemID string, enabled bool) {
	i, err := strconv.Atoi(itemID)
	if err != nil || i < 0 || i >= len(p.seriesItemEnabled) {
		return
	}
	p.seriesItemEnabled[i] = enabled
	p.ScheduleNodeData()
	p.ScheduleLegend()
}
