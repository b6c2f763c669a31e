// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart provides the chart orchestrator, which turns property
// changes on series, axes, and the legend into an ordered sequence of
// data processing, domain, layout, node data, node update, and legend
// passes on a retained scene graph. It also defines the [Series]
// contract implemented by the series package.
package chart

import (
	"slices"
	"sync"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

// ErrNoSize is returned when a chart without a positive size
// is asked for its scene.
var ErrNoSize = errors.New("chart: size is not positive")

// DebugUpdateTrace logs the passes of [Chart.DoUpdate] at debug level.
var DebugUpdateTrace = false

// Chart owns a scene, its series, axes, legend, and captions, and
// keeps the scene in sync with them through [Chart.DoUpdate].
// All methods must be called on the frame goroutine, or between
// [Chart.AsyncLock] and [Chart.AsyncUnlock].
type Chart struct {
	observe.Observable

	// ID is the unique id of the chart.
	ID string

	// Scene is the scene the chart draws into.
	Scene *scene.Scene

	// Title and Subtitle are drawn centered at the top.
	Title, Subtitle *Caption

	// Legend lists the series items.
	Legend *Legend

	// Layout positions the axes and series.
	Layout Layout

	// OnRender, if set, is called by [Chart.Frame] after
	// an update that changed the scene.
	OnRender func(s *scene.Scene)

	size       observe.Property[Size]
	padding    observe.Property[Padding]
	background observe.Property[string]

	series []Series
	axes   []*Axis

	// seriesRoot holds the groups of all series.
	seriesRoot *scene.Group

	// seriesRect is the rect given to the series by the last layout.
	seriesRect scene.BBox

	dataPending   bool
	layoutPending bool
	updatePending bool
	legendPending bool

	captionAutoPadding float64
	legendAutoPadding  Padding

	highlightedDatum NodeDatum

	// listeners registered on series and axes, kept for removal
	onSeriesLayout, onSeriesLegend, onSeriesClick *observe.EventListener
	onAxisData, onAxisLayout                      *observe.EventListener

	mu sync.Mutex
}

// New returns a new chart of the given size with the given layout.
func New(layout Layout, width, height float64) *Chart {
	c := &Chart{
		ID:         observe.NewID("Chart"),
		Scene:      scene.New(width, height),
		Title:      NewCaption(),
		Subtitle:   NewCaption(),
		Legend:     NewLegend(),
		Layout:     layout,
		size:       observe.NewProperty("size", Size{width, height}, observe.LayoutChange),
		padding:    observe.NewProperty("padding", NewPadding(20), observe.LayoutChange),
		background: observe.NewProperty("background", "white", observe.Change),
		seriesRoot: scene.NewGroup(),
	}
	c.InitObservable(c)
	c.Title.Node.Font.Size = 14
	c.Title.Node.Font.Weight = scene.Bold
	c.Title.Node.Tag = "title"
	c.Subtitle.Node.Tag = "subtitle"

	c.seriesRoot.Name = "series"
	c.seriesRoot.ZIndex = 1
	c.Legend.Group.ZIndex = 2
	c.Title.Node.ZIndex = 3
	c.Subtitle.Node.ZIndex = 3
	c.Scene.Root.AddChild(c.seriesRoot, c.Legend.Group, c.Title.Node, c.Subtitle.Node)

	c.AddEventListener(observe.LayoutChange, observe.On(c.ScheduleLayout), c)
	c.AddPropertyListener("size", observe.OnProperty(func(_ any, ev *observe.PropertyChange) {
		sz := ev.Value.(Size)
		c.Scene.Resize(sz.Width, sz.Height)
	}), c)
	c.AddPropertyListener("background", observe.OnProperty(func(_ any, ev *observe.PropertyChange) {
		c.Scene.Background = ev.Value.(string)
		c.Scene.Root.MarkDirty()
	}), c)
	c.Title.AddEventListener(observe.Change, observe.On(c.ScheduleLayout), c)
	c.Subtitle.AddEventListener(observe.Change, observe.On(c.ScheduleLayout), c)
	c.Legend.AddEventListener(observe.LayoutChange, observe.On(c.ScheduleLayout), c)

	c.onSeriesLayout = observe.On(func() {
		c.ScheduleLayout()
		c.ScheduleLegend()
	})
	c.onSeriesLegend = observe.On(c.ScheduleLegend)
	c.onSeriesClick = observe.OnEvent(func(_ any, ev observe.Event) {
		nc, ok := ev.(*NodeClickEvent)
		if !ok {
			return
		}
		s, _ := ev.Source().(Series)
		c.FireEvent(&SeriesNodeClickEvent{
			Base:   observe.Base{Kind: observe.SeriesNodeClick},
			Series: s,
			Datum:  nc.Datum,
		})
	})
	c.onAxisData = observe.On(c.ScheduleData)
	c.onAxisLayout = observe.On(c.ScheduleLayout)

	c.dataPending = true
	c.layoutPending = true
	c.legendPending = true
	return c
}

// Size returns the size of the chart.
func (c *Chart) Size() Size { return c.size.Get() }

// SetSize sets the size of the chart, which schedules a layout.
func (c *Chart) SetSize(width, height float64) { c.size.Set(&c.Observable, Size{width, height}) }

func (c *Chart) Padding() Padding     { return c.padding.Get() }
func (c *Chart) SetPadding(v Padding) { c.padding.Set(&c.Observable, v) }

func (c *Chart) Background() string     { return c.background.Get() }
func (c *Chart) SetBackground(v string) { c.background.Set(&c.Observable, v) }

// Series returns the series in drawing order.
func (c *Chart) Series() []Series { return c.series }

// Axes returns the axes.
func (c *Chart) Axes() []*Axis { return c.axes }

// SeriesRoot returns the group holding the groups of all series.
func (c *Chart) SeriesRoot() *scene.Group { return c.seriesRoot }

// SeriesRect returns the rect given to the series by the last layout.
func (c *Chart) SeriesRect() scene.BBox { return c.seriesRect }

// HighlightedDatum returns the highlighted datum, or nil.
func (c *Chart) HighlightedDatum() NodeDatum { return c.highlightedDatum }

// SetUpdatePending sets whether an update of the series is pending.
func (c *Chart) SetUpdatePending(v bool) { c.updatePending = v }

// ScheduleData schedules the aggregation of the axis domains.
func (c *Chart) ScheduleData() { c.dataPending = true }

// ScheduleLayout schedules a layout.
func (c *Chart) ScheduleLayout() { c.layoutPending = true }

// ScheduleLegend schedules a rebuild of the legend data.
func (c *Chart) ScheduleLegend() { c.legendPending = true }

// ScheduleFullUpdate schedules every pass of the next update
// for every series.
func (c *Chart) ScheduleFullUpdate() {
	c.dataPending = true
	c.layoutPending = true
	c.legendPending = true
	for _, s := range c.series {
		s.AsSeries().SetNodeDataPending(true)
	}
	c.updatePending = true
}

// Pending returns whether any pass of the update is pending.
func (c *Chart) Pending() bool {
	return c.dataPending || c.layoutPending || c.updatePending || c.legendPending
}

// AddSeries adds the series to the chart, moving it from its
// current chart if it has one.
func (c *Chart) AddSeries(s Series) {
	sb := s.AsSeries()
	if sb.chart == c {
		return
	}
	if sb.chart != nil {
		sb.chart.RemoveSeries(s)
	}
	c.series = append(c.series, s)
	sb.attach(c)
	sb.AddEventListener(observe.LayoutChange, c.onSeriesLayout, c)
	sb.AddEventListener(observe.LegendChange, c.onSeriesLegend, c)
	sb.AddEventListener(observe.DataProcessed, c.onSeriesLegend, c)
	sb.AddEventListener(observe.NodeClick, c.onSeriesClick, c)
	c.bindAxes()
	c.dataPending = true
	c.layoutPending = true
	c.legendPending = true
	c.updatePending = true
}

// RemoveSeries removes the series from the chart. Its nodes leave the
// scene and it can be added to a chart again.
func (c *Chart) RemoveSeries(s Series) bool {
	i := slices.Index(c.series, s)
	if i < 0 {
		return false
	}
	sb := s.AsSeries()
	sb.RemoveEventListener(observe.LayoutChange, c.onSeriesLayout, c)
	sb.RemoveEventListener(observe.LegendChange, c.onSeriesLegend, c)
	sb.RemoveEventListener(observe.DataProcessed, c.onSeriesLegend, c)
	sb.RemoveEventListener(observe.NodeClick, c.onSeriesClick, c)
	if h := c.highlightedDatum; h != nil && h.Series() == s {
		c.highlightedDatum = nil
	}
	sb.detach()
	c.series = slices.Delete(c.series, i, i+1)
	c.bindAxes()
	c.dataPending = true
	c.layoutPending = true
	c.legendPending = true
	return true
}

// AddAxis adds the axis to the chart. Each series is bound to
// the first axis of each of its directions.
func (c *Chart) AddAxis(a *Axis) {
	if a.chart == c {
		return
	}
	a.chart = c
	c.axes = append(c.axes, a)
	c.Scene.Root.AddChild(a.group)
	a.AddEventListener(observe.DataChange, c.onAxisData, c)
	a.AddEventListener(observe.LayoutChange, c.onAxisLayout, c)
	a.AddEventListener(observe.Change, c.onAxisLayout, c)
	c.bindAxes()
	c.dataPending = true
	c.layoutPending = true
}

// RemoveAxis removes the axis from the chart.
func (c *Chart) RemoveAxis(a *Axis) bool {
	i := slices.Index(c.axes, a)
	if i < 0 {
		return false
	}
	a.RemoveEventListener(observe.DataChange, c.onAxisData, c)
	a.RemoveEventListener(observe.LayoutChange, c.onAxisLayout, c)
	a.RemoveEventListener(observe.Change, c.onAxisLayout, c)
	c.Scene.Root.RemoveChild(a.group)
	a.chart = nil
	a.boundSeries = nil
	a.domain = nil
	c.axes = slices.Delete(c.axes, i, i+1)
	c.bindAxes()
	c.dataPending = true
	c.layoutPending = true
	return true
}

// Axis returns the first axis of the direction, or nil.
func (c *Chart) Axis(dir Direction) *Axis {
	for _, a := range c.axes {
		if a.Direction == dir {
			return a
		}
	}
	return nil
}

// bindAxes binds every series to the first axis of each of its
// directions, and rebuilds the bound series of the axes.
func (c *Chart) bindAxes() {
	for _, a := range c.axes {
		a.boundSeries = nil
	}
	for _, s := range c.series {
		sb := s.AsSeries()
		sb.xAxis, sb.yAxis = nil, nil
		for _, dir := range sb.directions {
			a := c.Axis(dir)
			if a == nil {
				continue
			}
			if dir == X {
				sb.xAxis = a
			} else {
				sb.yAxis = a
			}
			a.boundSeries = append(a.boundSeries, s)
		}
	}
}

// axesBound returns whether the series has an axis
// for each of its directions.
func (c *Chart) axesBound(sb *SeriesBase) bool {
	for _, dir := range sb.directions {
		if sb.Axis(dir) == nil {
			return false
		}
	}
	return true
}

// Destroy removes all series and axes and clears the scene.
func (c *Chart) Destroy() {
	for len(c.series) > 0 {
		c.RemoveSeries(c.series[len(c.series)-1])
	}
	for len(c.axes) > 0 {
		c.RemoveAxis(c.axes[len(c.axes)-1])
	}
	c.ClearListeners()
	c.Scene.Root.DeleteChildren()
	c.highlightedDatum = nil
}
