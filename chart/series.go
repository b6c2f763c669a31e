// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"cogentcore.org/chart/base/logx"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

// Direction is the direction of an axis.
type Direction int32

const (
	// X is the horizontal direction.
	X Direction = iota

	// Y is the vertical direction.
	Y
)

func (d Direction) String() string {
	switch d {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return fmt.Sprintf("Direction(%d)", int32(d))
}

// HighlightedZIndex is the z index of the node of the highlighted datum.
const HighlightedZIndex = 1e12

// DefaultFills and DefaultStrokes are the default palette of series.
var (
	DefaultFills   = []string{"#c16068", "#a2bf8a", "#ebcc87", "#80a0c3", "#b58dae", "#85c0d1"}
	DefaultStrokes = []string{"#874349", "#718661", "#a48f5f", "#5a7088", "#7f637a", "#5d8692"}
)

// NodeDatum is one item of the node data of a series: the data
// needed to render one node, derived from one raw data row.
type NodeDatum interface {
	// Series returns the series that created the datum.
	Series() Series

	// ItemID returns the id of the series item the datum belongs
	// to, such as the y key of a bar in a stacked bar series.
	ItemID() string

	// Datum returns the raw data row, which is the same reference
	// the series was given.
	Datum() data.Row

	// Point returns the anchor point of the datum in series
	// coordinates, if it has one.
	Point() (x, y float64, ok bool)
}

// NodeDatumBase is embedded by the node datum types of all series.
type NodeDatumBase struct {
	S    Series
	Item string
	Row  data.Row
}

func (d *NodeDatumBase) Series() Series                 { return d.S }
func (d *NodeDatumBase) ItemID() string                 { return d.Item }
func (d *NodeDatumBase) Datum() data.Row                { return d.Row }
func (d *NodeDatumBase) Point() (x, y float64, ok bool) { return 0, 0, false }

// ItemHighlightStyle is the style of the highlighted item.
// Empty or zero values leave the normal style in place.
type ItemHighlightStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// SeriesHighlightStyle is the style of a series while one of
// its items, or an item of another series, is highlighted.
type SeriesHighlightStyle struct {
	// StrokeWidth is the stroke width of the highlighted series;
	// zero leaves it unchanged.
	StrokeWidth float64

	// DimOpacity is the opacity of the series that are not highlighted.
	DimOpacity float64
}

// HighlightStyle is how a series shows highlighting.
type HighlightStyle struct {
	Item   ItemHighlightStyle
	Series SeriesHighlightStyle
}

// DefaultHighlightStyle returns the highlight style that fills the
// highlighted item in yellow and does not dim other series.
func DefaultHighlightStyle() HighlightStyle {
	return HighlightStyle{
		Item:   ItemHighlightStyle{Fill: "yellow"},
		Series: SeriesHighlightStyle{DimOpacity: 1},
	}
}

// Series is a dataset rendered by a chart. All series embed
// [SeriesBase], which provides the methods not specific to the
// type of series. The chart calls the methods in the order of its
// update phases; series never call them on themselves.
type Series interface {
	// AsSeries returns the [SeriesBase] of the series.
	AsSeries() *SeriesBase

	// Type returns the name of the type of series, such as "bar".
	Type() string

	// ProcessData reads the raw data through the configured keys into
	// the series' own arrays and computes its domains. It returns false
	// if the series is not configured enough to be rendered.
	ProcessData() bool

	// CreateNodeData returns the node data for the processed data,
	// using the current axes, rectangle, and layout parameters.
	CreateNodeData() []NodeDatum

	// NodeData returns the node data last returned by CreateNodeData.
	NodeData() []NodeDatum

	// Update binds the node data to the nodes of the series
	// and sets all of their visual properties.
	Update()

	// Domain returns the domain the series contributes to the axis
	// of the given direction.
	Domain(dir Direction) []data.Value

	// TooltipHTML returns the tooltip for the given node datum.
	TooltipHTML(nd NodeDatum) string

	// ListSeriesItems appends the legend items of the series.
	ListSeriesItems(items *[]LegendDatum)

	// ToggleSeriesItem turns the given item on or off.
	ToggleSeriesItem(itemID string, enabled bool)

	// OnHighlightChange is called when the highlighted datum
	// of the chart changes.
	OnHighlightChange()

	// FireNodeClickEvent fires the [NodeClickEvent] for the datum.
	FireNodeClickEvent(nd NodeDatum)

	// SetColors sets the palette of the series.
	SetColors(fills, strokes []string)
}

// SeriesBase holds the state common to all series. A series is
// created standalone, attached to a chart with [Chart.AddSeries],
// and detached with [Chart.RemoveSeries].
//
// Properties declaring [observe.DataChange] set the node data pending
// flag and properties declaring [observe.Update] or [observe.Change]
// set the update pending flag. The flags are only ever cleared by the
// chart, once per frame, however many properties changed.
type SeriesBase struct {
	observe.Observable

	// ID is the unique id of the series.
	ID string

	// This is the series as its true underlying type.
	This Series

	// Label is the style of the series' labels.
	Label *Label

	// Tooltip holds the tooltip settings.
	Tooltip *SeriesTooltip

	typ        string
	directions []Direction

	chart        *Chart
	xAxis, yAxis *Axis

	// group holds all nodes of the series.
	group *scene.Group

	// pickGroup holds the nodes that can be picked.
	pickGroup *scene.Group

	// rect is the rectangle available to the series,
	// in series coordinates.
	rect scene.BBox

	data           observe.Property[[]data.Row]
	visible        observe.Property[bool]
	showInLegend   observe.Property[bool]
	highlightStyle observe.Property[HighlightStyle]

	nodeDataPending bool
	updatePending   bool
	dataOK          bool
	nodeData        []NodeDatum
}

// InitSeries initializes the series. It must be called by the
// constructor of every series type, with the directions of the
// axes the series is bound to, which are none for polar series.
func (s *SeriesBase) InitSeries(this Series, typ string, dirs ...Direction) {
	s.This = this
	s.typ = typ
	s.directions = dirs
	s.ID = observe.NewID(typ)
	s.InitObservable(this)
	s.Label = NewLabel()
	s.Tooltip = NewSeriesTooltip()

	s.group = scene.NewGroup()
	s.group.Name = s.ID
	s.pickGroup = scene.NewGroup()
	s.pickGroup.Name = "pick"
	s.group.AddChild(s.pickGroup)

	s.data = observe.NewProperty[[]data.Row]("data", nil, observe.DataChange)
	s.visible = observe.NewProperty("visible", true, observe.DataChange)
	s.showInLegend = observe.NewProperty("showInLegend", true, observe.LayoutChange)
	s.highlightStyle = observe.NewProperty("highlightStyle", DefaultHighlightStyle(), observe.Update)
	s.nodeDataPending = true

	s.AddEventListener(observe.DataChange, observe.On(s.ScheduleNodeData), s)
	s.AddEventListener(observe.Update, observe.On(s.ScheduleUpdate), s)
	s.AddEventListener(observe.Change, observe.On(s.ScheduleUpdate), s)
	s.Label.AddEventListener(observe.Change, observe.On(s.ScheduleUpdate), s)
	s.Label.AddEventListener(observe.DataChange, observe.On(s.ScheduleNodeData), s)
}

func (s *SeriesBase) AsSeries() *SeriesBase { return s }

func (s *SeriesBase) Type() string { return s.typ }

// Directions returns the directions of the axes the series uses.
func (s *SeriesBase) Directions() []Direction { return s.directions }

// Chart returns the chart the series is attached to, or nil.
func (s *SeriesBase) Chart() *Chart { return s.chart }

// XAxis returns the bound x axis, or nil.
func (s *SeriesBase) XAxis() *Axis { return s.xAxis }

// YAxis returns the bound y axis, or nil.
func (s *SeriesBase) YAxis() *Axis { return s.yAxis }

// Axis returns the bound axis of the given direction, or nil.
func (s *SeriesBase) Axis(dir Direction) *Axis {
	if dir == X {
		return s.xAxis
	}
	return s.yAxis
}

// Group returns the group holding all nodes of the series.
func (s *SeriesBase) Group() *scene.Group { return s.group }

// PickGroup returns the group holding the pickable nodes.
func (s *SeriesBase) PickGroup() *scene.Group { return s.pickGroup }

// Rect returns the rectangle available to the series.
func (s *SeriesBase) Rect() scene.BBox { return s.rect }

func (s *SeriesBase) Data() []data.Row               { return s.data.Get() }
func (s *SeriesBase) Visible() bool                  { return s.visible.Get() }
func (s *SeriesBase) ShowInLegend() bool             { return s.showInLegend.Get() }
func (s *SeriesBase) HighlightStyle() HighlightStyle { return s.highlightStyle.Get() }

// SetData sets the raw data. Setting a slice always counts as a
// change, so in-place edits are picked up by setting it again.
func (s *SeriesBase) SetData(v []data.Row)               { s.data.Set(&s.Observable, v) }
func (s *SeriesBase) SetVisible(v bool)                  { s.visible.Set(&s.Observable, v) }
func (s *SeriesBase) SetShowInLegend(v bool)             { s.showInLegend.Set(&s.Observable, v) }
func (s *SeriesBase) SetHighlightStyle(v HighlightStyle) { s.highlightStyle.Set(&s.Observable, v) }

// NodeData returns the current node data.
func (s *SeriesBase) NodeData() []NodeDatum { return s.nodeData }

// NodeDataPending returns whether the node data must be recreated.
func (s *SeriesBase) NodeDataPending() bool { return s.nodeDataPending }

// SetNodeDataPending sets whether the node data must be recreated.
// Any change of the flag makes the update pending, and setting it
// makes the chart update pending.
func (s *SeriesBase) SetNodeDataPending(v bool) {
	if s.nodeDataPending == v {
		return
	}
	s.nodeDataPending = v
	s.SetUpdatePending(true)
	if v && s.chart != nil {
		s.chart.SetUpdatePending(true)
	}
}

// UpdatePending returns whether the nodes must be updated.
func (s *SeriesBase) UpdatePending() bool { return s.updatePending }

// SetUpdatePending sets whether the nodes must be updated.
// Setting it makes the chart update pending.
func (s *SeriesBase) SetUpdatePending(v bool) {
	if s.updatePending == v {
		return
	}
	s.updatePending = v
	if v && s.chart != nil {
		s.chart.SetUpdatePending(true)
	}
}

// ScheduleNodeData makes the node data pending.
func (s *SeriesBase) ScheduleNodeData() { s.SetNodeDataPending(true) }

// ScheduleUpdate makes the update pending.
func (s *SeriesBase) ScheduleUpdate() { s.SetUpdatePending(true) }

// ScheduleLayout asks the chart for a new layout.
func (s *SeriesBase) ScheduleLayout() { s.FireEvent(observe.NewEvent(observe.LayoutChange)) }

// ScheduleLegend asks the chart to rebuild the legend.
func (s *SeriesBase) ScheduleLegend() { s.FireEvent(observe.NewEvent(observe.LegendChange)) }

// ToggleSeriesItem shows or hides the whole series.
func (s *SeriesBase) ToggleSeriesItem(itemID string, enabled bool) {
	s.SetVisible(enabled)
}

// OnHighlightChange schedules an update so that the nodes
// reflect the new highlighting.
func (s *SeriesBase) OnHighlightChange() { s.ScheduleUpdate() }

// FireNodeClickEvent fires a [NodeClickEvent] for the datum.
func (s *SeriesBase) FireNodeClickEvent(nd NodeDatum) {
	s.FireEvent(&NodeClickEvent{Base: observe.Base{Kind: observe.NodeClick}, Datum: nd})
}

// SetColors does nothing; series with a palette override it.
func (s *SeriesBase) SetColors(fills, strokes []string) {}

// WarnOnce logs a warning once per series and key,
// for configuration and data problems.
func (s *SeriesBase) WarnOnce(key, msg string, args ...any) {
	logx.WarnOnce(s.ID+"."+key, msg, append([]any{"series", s.ID}, args...)...)
}

// highlighted returns the highlighted datum of the chart, or nil.
func (s *SeriesBase) highlighted() NodeDatum {
	if s.chart == nil {
		return nil
	}
	return s.chart.highlightedDatum
}

// IsHighlighted returns whether the datum is the highlighted datum.
func (s *SeriesBase) IsHighlighted(nd NodeDatum) bool {
	h := s.highlighted()
	return h != nil && h == nd
}

// highlights returns whether the series, or the item of the datum
// if nd is not nil, is the highlighted one.
func (s *SeriesBase) highlights(nd NodeDatum) bool {
	h := s.highlighted()
	if h == nil || h.Series() == nil || h.Series().AsSeries() != s {
		return false
	}
	return nd == nil || h.ItemID() == nd.ItemID()
}

// Opacity returns the opacity for the nodes of the datum, or of the
// whole series if nd is nil: 1 if nothing is highlighted or the datum
// belongs to the highlighted item, and the dim opacity otherwise.
func (s *SeriesBase) Opacity(nd NodeDatum) float64 {
	if s.highlighted() == nil || s.highlights(nd) {
		return 1
	}
	return s.HighlightStyle().Series.DimOpacity
}

// StrokeWidth returns the highlight stroke width if the datum belongs
// to the highlighted item and one is set, and def otherwise.
func (s *SeriesBase) StrokeWidth(def float64, nd NodeDatum) float64 {
	if sw := s.HighlightStyle().Series.StrokeWidth; sw > 0 && s.highlights(nd) {
		return sw
	}
	return def
}

// ItemStyle returns the fill, stroke, and stroke width of the datum,
// replaced by the set fields of the item highlight style if the datum
// is highlighted. The stroke width otherwise goes through [SeriesBase.StrokeWidth].
func (s *SeriesBase) ItemStyle(nd NodeDatum, fill, stroke string, strokeWidth float64) (string, string, float64) {
	if !s.IsHighlighted(nd) {
		return fill, stroke, s.StrokeWidth(strokeWidth, nd)
	}
	hs := s.HighlightStyle().Item
	if hs.Fill != "" {
		fill = hs.Fill
	}
	if hs.Stroke != "" {
		stroke = hs.Stroke
	}
	if hs.StrokeWidth > 0 {
		strokeWidth = hs.StrokeWidth
	} else {
		strokeWidth = s.StrokeWidth(strokeWidth, nd)
	}
	return fill, stroke, strokeWidth
}

// ZIndex returns the z index of the node of the datum at index i,
// which brings the highlighted datum to the front.
func (s *SeriesBase) ZIndex(nd NodeDatum, i int) float64 {
	if s.IsHighlighted(nd) {
		return HighlightedZIndex
	}
	return float64(i)
}

// attach binds the series to the chart and adds its group
// to the series root.
func (s *SeriesBase) attach(c *Chart) {
	s.chart = c
	c.seriesRoot.AddChild(s.group)
	s.nodeDataPending = true
	s.updatePending = true
}

// detach removes the series from its chart and its nodes from the scene.
func (s *SeriesBase) detach() {
	if p := s.group.Parent(); p != nil {
		p.AsNode().RemoveChild(s.group)
	}
	s.chart = nil
	s.xAxis, s.yAxis = nil, nil
	s.nodeData = nil
	s.dataOK = false
}

// PolarSeries is a series laid out around a center,
// such as a pie series.
type PolarSeries interface {
	Series

	// AsPolar returns the [PolarBase] of the series.
	AsPolar() *PolarBase
}

// PolarBase is embedded by polar series.
type PolarBase struct {
	CenterX, CenterY, Radius float64
}

func (p *PolarBase) AsPolar() *PolarBase { return p }

// setPolar sets the center and radius, reporting whether they changed.
func (p *PolarBase) setPolar(cx, cy, r float64) bool {
	if p.CenterX == cx && p.CenterY == cy && p.Radius == r {
		return false
	}
	p.CenterX, p.CenterY, p.Radius = cx, cy, r
	return true
}
