// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"cmp"
	"math"
	"strings"

	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scale"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/selection"
)

// MarkerFormatterParams are passed to a marker formatter.
type MarkerFormatterParams struct {
	Datum       data.Row
	XKey, YKey  string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Size        float64
	Highlighted bool
}

// MarkerFormat overrides the style of a marker. Zero fields are ignored.
type MarkerFormat struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Size        float64
}

// SeriesMarker is the marker style of a scatter series.
type SeriesMarker struct {
	observe.Observable

	// Formatter, if set, overrides the style of each marker.
	Formatter func(p MarkerFormatterParams) MarkerFormat

	enabled       observe.Property[bool]
	shape         observe.Property[scene.MarkerShape]
	size          observe.Property[float64]
	maxSize       observe.Property[float64]
	domain        observe.Property[[]float64]
	fill          observe.Property[string]
	stroke        observe.Property[string]
	strokeWidth   observe.Property[float64]
	fillOpacity   observe.Property[float64]
	strokeOpacity observe.Property[float64]
}

// NewSeriesMarker returns a new circle marker of size 6,
// growing up to 30 with the size key.
func NewSeriesMarker() *SeriesMarker {
	m := &SeriesMarker{
		enabled:       observe.NewProperty("enabled", true, observe.Change),
		shape:         observe.NewProperty("shape", scene.Circle, observe.Change, observe.LegendChange),
		size:          observe.NewProperty("size", 6.0, observe.DataChange),
		maxSize:       observe.NewProperty("maxSize", 30.0, observe.DataChange),
		domain:        observe.NewProperty[[]float64]("domain", nil, observe.DataChange),
		fill:          observe.NewProperty("fill", chart.DefaultFills[0], observe.Change, observe.LegendChange),
		stroke:        observe.NewProperty("stroke", chart.DefaultStrokes[0], observe.Change, observe.LegendChange),
		strokeWidth:   observe.NewProperty("strokeWidth", 1.0, observe.Change),
		fillOpacity:   observe.NewProperty("fillOpacity", 1.0, observe.Change),
		strokeOpacity: observe.NewProperty("strokeOpacity", 1.0, observe.Change),
	}
	m.InitObservable(m)
	return m
}

func (m *SeriesMarker) Enabled() bool            { return m.enabled.Get() }
func (m *SeriesMarker) Shape() scene.MarkerShape { return m.shape.Get() }
func (m *SeriesMarker) Size() float64            { return m.size.Get() }
func (m *SeriesMarker) MaxSize() float64         { return m.maxSize.Get() }
func (m *SeriesMarker) Fill() string             { return m.fill.Get() }
func (m *SeriesMarker) Stroke() string           { return m.stroke.Get() }
func (m *SeriesMarker) StrokeWidth() float64     { return m.strokeWidth.Get() }
func (m *SeriesMarker) FillOpacity() float64     { return m.fillOpacity.Get() }
func (m *SeriesMarker) StrokeOpacity() float64   { return m.strokeOpacity.Get() }

// Domain returns the size values mapped onto the size range,
// or nil if it is the extent of the size values.
func (m *SeriesMarker) Domain() []float64 { return m.domain.Get() }

func (m *SeriesMarker) SetEnabled(v bool)            { m.enabled.Set(&m.Observable, v) }
func (m *SeriesMarker) SetShape(v scene.MarkerShape) { m.shape.Set(&m.Observable, v) }
func (m *SeriesMarker) SetSize(v float64)            { m.size.Set(&m.Observable, v) }
func (m *SeriesMarker) SetMaxSize(v float64)         { m.maxSize.Set(&m.Observable, v) }
func (m *SeriesMarker) SetDomain(v []float64)        { m.domain.Set(&m.Observable, v) }
func (m *SeriesMarker) SetFill(v string)             { m.fill.Set(&m.Observable, v) }
func (m *SeriesMarker) SetStroke(v string)           { m.stroke.Set(&m.Observable, v) }
func (m *SeriesMarker) SetStrokeWidth(v float64)     { m.strokeWidth.Set(&m.Observable, v) }
func (m *SeriesMarker) SetFillOpacity(v float64)     { m.fillOpacity.Set(&m.Observable, v) }
func (m *SeriesMarker) SetStrokeOpacity(v float64)   { m.strokeOpacity.Set(&m.Observable, v) }

// ScatterLabel is a placed label of a scatter point,
// with X and Y at its top left corner.
type ScatterLabel struct {
	Text                string
	X, Y, Width, Height float64
}

// ScatterNodeDatum is the node datum of one scatter point.
type ScatterNodeDatum struct {
	chart.NodeDatumBase

	// X and Y are the center of the marker.
	X, Y float64

	Size float64

	// Label is nil if the point has no label, or it did not fit.
	Label *ScatterLabel
}

func (d *ScatterNodeDatum) Point() (x, y float64, ok bool) { return d.X, d.Y, true }

// Scatter is a series of markers at the x and y values of each data
// row, optionally sized by a size key and labeled by a label key.
type Scatter struct {
	chart.SeriesBase

	// Marker is the style of the markers.
	Marker *SeriesMarker

	title     observe.Property[string]
	xKey      observe.Property[string]
	yKey      observe.Property[string]
	sizeKey   observe.Property[string]
	labelKey  observe.Property[string]
	xName     observe.Property[string]
	yName     observe.Property[string]
	sizeName  observe.Property[string]
	labelName observe.Property[string]

	xData, yData []data.Value
	sizeData     []float64
	labelData    []string

	xDomain, yDomain []data.Value

	sizeScale *scale.Linear
	sizeFixed bool

	markers *selection.Selection[*scene.Marker, chart.NodeDatum]
	labels  *selection.Selection[*scene.Text, chart.NodeDatum]

	// markerShape is the shape of the current marker nodes.
	markerShape scene.MarkerShape
}

// NewScatter returns a new scatter series.
func NewScatter() *Scatter {
	s := &Scatter{
		Marker:    NewSeriesMarker(),
		title:     observe.NewProperty("title", "", observe.LayoutChange),
		xKey:      observe.NewProperty("xKey", "", observe.DataChange),
		yKey:      observe.NewProperty("yKey", "", observe.DataChange),
		sizeKey:   observe.NewProperty("sizeKey", "", observe.DataChange),
		labelKey:  observe.NewProperty("labelKey", "", observe.DataChange),
		xName:     observe.NewProperty("xName", "", observe.Update),
		yName:     observe.NewProperty("yName", "", observe.Update),
		sizeName:  observe.NewProperty("sizeName", "Size", observe.Update),
		labelName: observe.NewProperty("labelName", "Label", observe.Update),
		sizeScale: scale.NewLinear(),
	}
	s.InitSeries(s, "scatter", chart.X, chart.Y)
	s.Label.SetEnabled(false)
	s.Label.AddPropertyListener("fontSize", observe.OnProperty(func(_ any, _ *observe.PropertyChange) {
		s.ScheduleNodeData()
	}), s)
	s.Marker.AddEventListener(observe.Change, observe.On(s.ScheduleUpdate), s)
	s.Marker.AddEventListener(observe.DataChange, observe.On(s.ScheduleNodeData), s)
	s.Marker.AddEventListener(observe.LegendChange, observe.On(s.ScheduleLegend), s)
	s.markers = selection.New[*scene.Marker, chart.NodeDatum](s.PickGroup())
	lg := scene.NewGroup()
	lg.Name = "labels"
	lg.ZIndex = 1
	s.Group().AddChild(lg)
	s.labels = selection.New[*scene.Text, chart.NodeDatum](lg)
	return s
}

func (s *Scatter) Title() string     { return s.title.Get() }
func (s *Scatter) XKey() string      { return s.xKey.Get() }
func (s *Scatter) YKey() string      { return s.yKey.Get() }
func (s *Scatter) SizeKey() string   { return s.sizeKey.Get() }
func (s *Scatter) LabelKey() string  { return s.labelKey.Get() }
func (s *Scatter) XName() string     { return s.xName.Get() }
func (s *Scatter) YName() string     { return s.yName.Get() }
func (s *Scatter) SizeName() string  { return s.sizeName.Get() }
func (s *Scatter) LabelName() string { return s.labelName.Get() }

func (s *Scatter) SetTitle(v string)     { s.title.Set(&s.Observable, v) }
func (s *Scatter) SetXKey(v string)      { s.xKey.Set(&s.Observable, v) }
func (s *Scatter) SetYKey(v string)      { s.yKey.Set(&s.Observable, v) }
func (s *Scatter) SetSizeKey(v string)   { s.sizeKey.Set(&s.Observable, v) }
func (s *Scatter) SetLabelKey(v string)  { s.labelKey.Set(&s.Observable, v) }
func (s *Scatter) SetXName(v string)     { s.xName.Set(&s.Observable, v) }
func (s *Scatter) SetYName(v string)     { s.yName.Set(&s.Observable, v) }
func (s *Scatter) SetSizeName(v string)  { s.sizeName.Set(&s.Observable, v) }
func (s *Scatter) SetLabelName(v string) { s.labelName.Set(&s.Observable, v) }

// SetColors sets the marker colors to the first of each palette.
func (s *Scatter) SetColors(fills, strokes []string) {
	s.Marker.SetFill(colorAt(fills, 0))
	s.Marker.SetStroke(colorAt(strokes, 0))
}

// OnHighlightChange updates the markers without new node data.
func (s *Scatter) OnHighlightChange() { s.ScheduleUpdate() }

// domainOf returns the domain of the values on the axis: the fixed
// extent of the finite values on continuous axes, and the values
// themselves otherwise.
func domainOf(a *chart.Axis, vs []data.Value) []data.Value {
	if !a.Kind.Continuous() {
		return vs
	}
	var fs []float64
	if lo, hi, ok := data.Extent(vs); ok {
		fs = []float64{lo, hi}
	}
	e := chart.FixNumericExtent(fs)
	return data.Numbers(e[0], e[1])
}

func (s *Scatter) ProcessData() bool {
	xa, ya := s.XAxis(), s.YAxis()
	s.xData, s.yData, s.sizeData, s.labelData = nil, nil, nil, nil
	s.xDomain, s.yDomain = nil, nil
	if xa == nil || ya == nil {
		return false
	}
	var rows []data.Row
	if s.XKey() != "" && s.YKey() != "" {
		rows = s.Data()
	} else {
		s.WarnOnce("keys", "scatter: xKey and yKey are required")
	}
	missingKeys(&s.SeriesBase, rows, s.XKey(), s.YKey(), s.SizeKey(), s.LabelKey())

	s.xData = data.Column(rows, s.XKey())
	s.yData = data.Column(rows, s.YKey())
	if k := s.SizeKey(); k != "" {
		s.sizeData = make([]float64, len(rows))
		for i, r := range rows {
			s.sizeData[i] = r.Get(k).Num()
		}
	}
	if k := s.LabelKey(); k != "" {
		s.labelData = make([]string, len(rows))
		for i, r := range rows {
			s.labelData[i] = r.Get(k).Str()
		}
	}

	dom := s.Marker.Domain()
	if len(dom) < 2 {
		dom = nil
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, f := range s.sizeData {
			if isFinite(f) {
				lo, hi = min(lo, f), max(hi, f)
			}
		}
		if lo <= hi {
			dom = []float64{lo, hi}
		}
	}
	s.sizeFixed = dom == nil || dom[0] == dom[1]
	if !s.sizeFixed {
		s.sizeScale.SetDomain(data.Numbers(dom[0], dom[1]))
	}

	s.xDomain = domainOf(xa, s.xData)
	s.yDomain = domainOf(ya, s.yData)
	return true
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func (s *Scatter) Domain(dir chart.Direction) []data.Value {
	if dir == chart.X {
		return s.xDomain
	}
	return s.yDomain
}

// markerSize returns the size of the marker of the point at index i.
func (s *Scatter) markerSize(i int) float64 {
	if s.sizeFixed || len(s.sizeData) == 0 {
		return s.Marker.Size()
	}
	f := s.sizeData[i]
	if !isFinite(f) {
		return s.Marker.Size()
	}
	return s.sizeScale.Convert(data.NumberValue(f))
}

func (s *Scatter) CreateNodeData() []chart.NodeDatum {
	xa, ya := s.XAxis(), s.YAxis()
	if xa == nil || ya == nil {
		return nil
	}
	xs, ys := xa.Scale, ya.Scale
	xc, yc := xa.Kind.Continuous(), ya.Kind.Continuous()
	xo, yo := xs.Bandwidth()/2, ys.Bandwidth()/2
	s.sizeScale.SetRange(s.Marker.Size(), s.Marker.MaxSize())
	rows := s.Data()
	font := s.Label.Font()
	labels := s.Label.Enabled() && len(s.labelData) > 0
	rect := s.Rect()
	var placed []scene.BBox

	var nds []chart.NodeDatum
	for i := range s.xData {
		xv, yv := s.xData[i], s.yData[i]
		if (xc && !xv.IsFinite()) || (yc && !yv.IsFinite()) || xv.IsNull() || yv.IsNull() {
			continue
		}
		x, y := xs.Convert(xv)+xo, ys.Convert(yv)+yo
		if math.IsNaN(x) || math.IsNaN(y) || !scale.InRange(xs, x, 0) || !scale.InRange(ys, y, 0) {
			continue
		}
		nd := &ScatterNodeDatum{
			NodeDatumBase: chart.NodeDatumBase{S: s, Item: s.YKey(), Row: rows[i]},
			X:             x,
			Y:             y,
			Size:          s.markerSize(i),
		}
		if labels && s.labelData[i] != "" {
			nd.Label = placeLabel(s.labelData[i], font, nd, rect, placed)
			if nd.Label != nil {
				placed = append(placed, scene.BBox{X: nd.Label.X, Y: nd.Label.Y, Width: nd.Label.Width, Height: nd.Label.Height})
			}
		}
		nds = append(nds, nd)
	}
	return nds
}

// placeLabel places the label at the top right of the marker, or
// else at one of its other corners, where it fits in the rect without
// overlapping the placed labels. It returns nil if there is no room.
func placeLabel(text string, font scene.Font, nd *ScatterNodeDatum, rect scene.BBox, placed []scene.BBox) *ScatterLabel {
	m := scene.MeasureText(text, font)
	w, h := m.Width, m.Height()
	r := nd.Size / 2
	for _, c := range [][2]float64{{r, -r - h}, {r, r}, {-r - w, -r - h}, {-r - w, r}} {
		bb := scene.BBox{X: nd.X + c[0], Y: nd.Y + c[1], Width: w, Height: h}
		if bb.X < rect.X || bb.Y < rect.Y || bb.X+w > rect.X+rect.Width || bb.Y+h > rect.Y+rect.Height {
			continue
		}
		overlaps := false
		for _, p := range placed {
			if bb.X < p.X+p.Width && p.X < bb.X+w && bb.Y < p.Y+p.Height && p.Y < bb.Y+h {
				overlaps = true
				break
			}
		}
		if !overlaps {
			return &ScatterLabel{Text: text, X: bb.X, Y: bb.Y, Width: w, Height: h}
		}
	}
	return nil
}

func (s *Scatter) Update() {
	shape := s.Marker.Shape()
	if shape != s.markerShape {
		s.markers.Clear()
		s.markerShape = shape
	}
	nds := s.NodeData()
	s.markers.Update(nds, nil, func(nd chart.NodeDatum, i int) *scene.Marker {
		m := scene.NewMarker(shape)
		m.Tag = "marker"
		return m
	})
	var labeled []chart.NodeDatum
	for _, nd := range nds {
		if nd.(*ScatterNodeDatum).Label != nil {
			labeled = append(labeled, nd)
		}
	}
	s.labels.Update(labeled, nil, func(nd chart.NodeDatum, i int) *scene.Text {
		return labelNode()
	})
	s.updateMarkers()
	s.updateLabels()
}

func (s *Scatter) updateMarkers() {
	mk := s.Marker
	s.markers.Each(func(n *scene.Marker, d chart.NodeDatum, i int) {
		nd := d.(*ScatterNodeDatum)
		fill, stroke, sw := s.ItemStyle(nd, mk.Fill(), mk.Stroke(), mk.StrokeWidth())
		size := nd.Size
		if mk.Formatter != nil {
			f := mk.Formatter(MarkerFormatterParams{
				Datum: nd.Row, XKey: s.XKey(), YKey: s.YKey(),
				Fill: fill, Stroke: stroke, StrokeWidth: sw, Size: size,
				Highlighted: s.IsHighlighted(nd),
			})
			fill = cmp.Or(f.Fill, fill)
			stroke = cmp.Or(f.Stroke, stroke)
			if f.StrokeWidth > 0 {
				sw = f.StrokeWidth
			}
			if f.Size > 0 {
				size = f.Size
			}
		}
		n.SetFill(fill)
		n.SetStroke(stroke)
		n.SetStrokeWidth(sw)
		n.SetSize(size)
		n.SetFillOpacity(mk.FillOpacity())
		n.SetStrokeOpacity(mk.StrokeOpacity())
		n.SetPos(nd.X, nd.Y)
		n.SetOpacity(s.Opacity(nd))
		n.SetZIndex(s.ZIndex(nd, i))
		n.SetVisible(mk.Enabled() && size > 0)
	})
}

func (s *Scatter) updateLabels() {
	s.labels.Each(func(t *scene.Text, d chart.NodeDatum, i int) {
		l := d.(*ScatterNodeDatum).Label
		s.Label.Apply(t)
		t.SetAlign(scene.AlignLeft, scene.BaselineTop)
		t.SetText(l.Text)
		t.SetPos(l.X, l.Y)
	})
}

func (s *Scatter) TooltipHTML(d chart.NodeDatum) string {
	nd, ok := d.(*ScatterNodeDatum)
	xa, ya := s.XAxis(), s.YAxis()
	if !ok || s.XKey() == "" || s.YKey() == "" || xa == nil || ya == nil {
		return ""
	}
	color := cmp.Or(s.Marker.Fill(), "gray")
	title := cmp.Or(s.Title(), s.YName())
	row := nd.Row
	xv, yv := row.Get(s.XKey()), row.Get(s.YKey())
	lines := []string{
		cmp.Or(s.XName(), s.XKey()) + ": " + xa.FormatDatum(xv),
		cmp.Or(s.YName(), s.YKey()) + ": " + ya.FormatDatum(yv),
	}
	if k := s.SizeKey(); k != "" {
		lines = append(lines, cmp.Or(s.SizeName(), k)+": "+chart.FormatValue(row.Get(k)))
	}
	if k := s.LabelKey(); k != "" {
		lines = append([]string{cmp.Or(s.LabelName(), k) + ": " + row.Get(k).Str()}, lines...)
	}
	return s.Tooltip.Render(chart.TooltipParams{
		Datum:    row,
		Title:    title,
		Color:    color,
		XKey:     s.XKey(),
		XName:    s.XName(),
		XValue:   xv,
		YKey:     s.YKey(),
		YName:    s.YName(),
		YValue:   yv,
		SizeKey:  s.SizeKey(),
		LabelKey: s.LabelKey(),
	}, chart.TooltipContent{Title: title, Content: strings.Join(lines, "\n"), BackgroundColor: color})
}

func (s *Scatter) ListSeriesItems(items *[]chart.LegendDatum) {
	if len(s.Data()) == 0 || s.XKey() == "" || s.YKey() == "" || !s.ShowInLegend() {
		return
	}
	mk := s.Marker
	*items = append(*items, chart.LegendDatum{
		SeriesID: s.ID,
		ItemID:   s.YKey(),
		Enabled:  s.Visible(),
		Label:    cmp.Or(s.Title(), s.YName(), s.YKey()),
		Marker: chart.LegendMarkerStyle{
			Shape:         mk.Shape(),
			Fill:          mk.Fill(),
			Stroke:        mk.Stroke(),
			FillOpacity:   mk.FillOpacity(),
			StrokeOpacity: mk.StrokeOpacity(),
		},
	})
}
