// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"cogentcore.org/chart/base/logx"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

// captionSpacing is the space above and between the captions.
const captionSpacing = 10

// maxLegendPasses is the number of legend layouts tried
// before settling on a size.
const maxLegendPasses = 3

// maxFlushPasses bounds [Chart.Flush].
const maxFlushPasses = 10

// DoUpdate runs the pending passes of the update in order:
// data processing, axis domains, layout, node data, node
// updates, and the legend. It returns whether anything was pending.
// It is not reentrant: series and listeners must not call it.
func (c *Chart) DoUpdate() bool {
	if !c.Pending() && !c.seriesPending() {
		return false
	}
	if DebugUpdateTrace {
		slog.Debug("chart: update", "chart", c.ID, "data", c.dataPending, "layout", c.layoutPending,
			"update", c.updatePending, "legend", c.legendPending)
	}

	processed := c.processData()
	if processed || c.dataPending {
		c.updateDomains()
		c.dataPending = false
	}

	if c.layoutPending && c.performLayout() {
		c.layoutPending = false
	}

	c.createNodeData()
	c.updateNodes()

	if c.legendPending {
		c.updateLegend()
		c.legendPending = false
	}

	c.updatePending = c.seriesPending()
	return true
}

// seriesPending returns whether any series has a pending flag.
func (c *Chart) seriesPending() bool {
	for _, s := range c.series {
		sb := s.AsSeries()
		if sb.nodeDataPending || sb.updatePending {
			return true
		}
	}
	return false
}

// processData processes the data of every series whose node data
// is pending, or of all series if the data of the chart is pending.
// It returns whether any series was processed.
func (c *Chart) processData() bool {
	processed := false
	for _, s := range c.series {
		sb := s.AsSeries()
		if !sb.nodeDataPending && !c.dataPending {
			continue
		}
		sb.dataOK = s.ProcessData()
		processed = true
		sb.FireEvent(observe.NewEvent(observe.DataProcessed))
	}
	return processed
}

// updateDomains sets the domain of every axis from the domains of its
// visible bound series, in series order. The first series with values
// decides whether the values are continuous; series of the other kind
// are skipped. Series whose axis domain changed get new node data.
func (c *Chart) updateDomains() {
	for _, a := range c.axes {
		var vs []data.Value
		typed, continuous := false, false
		for _, s := range a.boundSeries {
			sb := s.AsSeries()
			if !sb.Visible() || !sb.dataOK {
				continue
			}
			d := s.Domain(a.Direction)
			if len(d) == 0 {
				continue
			}
			cont := data.Continuous(d)
			if !typed {
				typed, continuous = true, cont
			} else if cont != continuous {
				logx.WarnOnce(a.ID+".domainKind."+sb.ID, "chart: series domain kind does not match axis, skipping",
					"axis", a.ID, "series", sb.ID, "continuous", cont)
				continue
			}
			vs = append(vs, d...)
		}
		if !a.setDomain(vs) {
			continue
		}
		for _, s := range a.boundSeries {
			s.AsSeries().SetNodeDataPending(true)
		}
		c.layoutPending = true
	}
}

// performLayout places the captions, the legend, and then the axes
// and series in what is left. It returns false without doing anything
// if the chart has no size.
func (c *Chart) performLayout() bool {
	sz := c.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return false
	}
	c.Scene.Resize(sz.Width, sz.Height)
	c.positionCaptions()
	c.positionLegend()

	rect := scene.BBox{Width: sz.Width, Height: sz.Height}
	rect = rect.Shrink(c.captionAutoPadding, 0, 0, 0)
	if c.Legend.Group.Visible {
		lp, sp := c.legendAutoPadding, c.Legend.Spacing()
		switch c.Legend.Position() {
		case LegendTop:
			rect = rect.Shrink(lp.Top+sp, 0, 0, 0)
		case LegendBottom:
			rect = rect.Shrink(0, 0, lp.Bottom+sp, 0)
		case LegendLeft:
			rect = rect.Shrink(0, 0, 0, lp.Left+sp)
		default:
			rect = rect.Shrink(0, lp.Right+sp, 0, 0)
		}
	}
	p := c.Padding()
	rect = rect.Shrink(p.Top, p.Right, p.Bottom, p.Left)

	layout := c.Layout
	if layout == nil {
		layout = Cartesian{}
	}
	c.seriesRect = layout.PerformLayout(c, rect)
	for _, s := range c.series {
		sb := s.AsSeries()
		sb.rect = c.seriesRect
		sb.SetNodeDataPending(true)
	}
	return true
}

// positionCaptions places the title, and the subtitle below it if
// the title is shown, and sets the space they take at the top.
func (c *Chart) positionCaptions() {
	w := c.Size().Width
	top := float64(captionSpacing)
	titleVisible, subtitleVisible := false, false
	if c.Title.Enabled() {
		titleVisible = true
		c.Title.Node.SetPos(w/2, top)
		bb := c.Title.Node.LocalBBox()
		top = bb.Y + bb.Height
		if c.Subtitle.Enabled() {
			subtitleVisible = true
			c.Subtitle.Node.SetPos(w/2, top+captionSpacing)
			bb := c.Subtitle.Node.LocalBBox()
			top = bb.Y + bb.Height
		}
	}
	c.Title.Node.SetVisible(titleVisible)
	c.Subtitle.Node.SetVisible(subtitleVisible)
	c.captionAutoPadding = math.Floor(top)
}

// positionLegend lays out the legend for its side of the chart below
// the captions, and sets the space it takes on that side.
func (c *Chart) positionLegend() {
	c.legendAutoPadding = Padding{}
	l := c.Legend
	if !l.Enabled() || len(l.Data()) == 0 {
		return
	}
	sz := c.Size()
	width, height := sz.Width, sz.Height-c.captionAutoPadding
	sp := l.Spacing()
	pos := l.Position()

	// the legend size does not change its own budget: items wrap
	// across the chart for top and bottom legends and down it for
	// left and right ones
	budget := func(Size) Size {
		if pos == LegendLeft || pos == LegendRight {
			return Size{0, height - sp*2}
		}
		return Size{width - sp*2, 0}
	}
	size := convergeSize(l.Size(), maxLegendPasses, budget, func(b Size) Size {
		return l.PerformLayout(b.Width, b.Height)
	})
	bb := l.Group.LocalBBox()

	var tx, ty float64
	switch pos {
	case LegendBottom:
		tx = (width-size.Width)/2 - bb.X
		ty = c.captionAutoPadding + height - size.Height - bb.Y - sp
		c.legendAutoPadding.Bottom = size.Height
	case LegendTop:
		tx = (width-size.Width)/2 - bb.X
		ty = c.captionAutoPadding + sp - bb.Y
		c.legendAutoPadding.Top = size.Height
	case LegendLeft:
		tx = sp - bb.X
		ty = c.captionAutoPadding + (height-size.Height)/2 - bb.Y
		c.legendAutoPadding.Left = size.Width
	default:
		tx = width - size.Width - bb.X - sp
		ty = c.captionAutoPadding + (height-size.Height)/2 - bb.Y
		c.legendAutoPadding.Right = size.Width
	}
	l.Group.SetTranslation(math.Floor(tx), math.Floor(ty))
}

// createNodeData recreates the node data of every series whose node
// data is pending. Invisible series keep their stale node data. Series
// that cannot be laid out yet get no node data and stay pending.
func (c *Chart) createNodeData() {
	for _, s := range c.series {
		sb := s.AsSeries()
		if !sb.nodeDataPending {
			continue
		}
		if !sb.Visible() {
			sb.SetNodeDataPending(false)
			continue
		}
		if sb.chart == nil || !c.axesBound(sb) || c.layoutPending || c.dataPending {
			sb.nodeData = nil
			continue
		}
		if sb.dataOK {
			sb.nodeData = s.CreateNodeData()
		} else {
			sb.nodeData = nil
		}
		c.rebindHighlight(sb)
		sb.SetNodeDataPending(false)
	}
}

// rebindHighlight replaces a highlighted datum of the series with the
// new node datum of the same item and row, or clears the highlight.
func (c *Chart) rebindHighlight(sb *SeriesBase) {
	h := c.highlightedDatum
	if h == nil || h.Series() == nil || h.Series().AsSeries() != sb {
		return
	}
	for _, nd := range sb.nodeData {
		if nd.ItemID() == h.ItemID() && data.SameRow(nd.Datum(), h.Datum()) {
			c.highlightedDatum = nd
			return
		}
	}
	c.highlightedDatum = nil
}

// updateNodes updates the nodes of every series whose update is
// pending. Invisible series only have their group hidden.
func (c *Chart) updateNodes() {
	for _, s := range c.series {
		sb := s.AsSeries()
		if !sb.updatePending {
			continue
		}
		visible := sb.Visible()
		sb.group.SetVisible(visible)
		if visible {
			s.Update()
		}
		sb.updatePending = false
	}
}

// updateLegend lists the items of every series once, in order,
// and gives them to the legend if they changed.
func (c *Chart) updateLegend() {
	var items []LegendDatum
	for _, s := range c.series {
		s.ListSeriesItems(&items)
	}
	if !slices.Equal(items, c.Legend.Data()) {
		c.Legend.SetData(items)
	}
}

// Flush runs updates until nothing is pending, for a bounded number
// of passes. It returns whether the chart settled.
func (c *Chart) Flush() bool {
	for range maxFlushPasses {
		if !c.DoUpdate() {
			return true
		}
	}
	return !c.Pending() && !c.seriesPending()
}

// Frame runs one update and, if the scene changed, calls
// [Chart.OnRender] and marks the scene clean. It returns whether
// the update ran.
func (c *Chart) Frame() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	ran := c.DoUpdate()
	if c.Scene.Dirty() {
		if c.OnRender != nil {
			c.OnRender(c.Scene)
		}
		c.Scene.MarkClean()
	}
	return ran
}

// Run calls [Chart.Frame] at the given interval until the
// context is done.
func (c *Chart) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			c.Frame()
		}
	}
}

// AsyncLock must be called before changing the chart from a goroutine
// other than the one calling [Chart.Run]. It must have a matching
// [Chart.AsyncUnlock] after it.
func (c *Chart) AsyncLock() { c.mu.Lock() }

// AsyncUnlock must be called after changing the chart from a goroutine
// other than the one calling [Chart.Run].
func (c *Chart) AsyncUnlock() { c.mu.Unlock() }

// Snapshot flushes the pending updates and returns a copy of
// the scene that can be rendered on another goroutine.
func (c *Chart) Snapshot() (*scene.Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sz := c.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return nil, ErrNoSize
	}
	c.Flush()
	return c.Scene.Snapshot(), nil
}
