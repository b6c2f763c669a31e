// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/selection"
)

// LegendOrientation is the direction in which legend items are packed.
type LegendOrientation int32

const (
	// Vertical packs items in as few columns as possible.
	Vertical LegendOrientation = iota

	// Horizontal packs items in as few rows as possible.
	Horizontal
)

// LegendPosition is the side of the chart the legend is placed on.
type LegendPosition string

const (
	LegendTop    LegendPosition = "top"
	LegendRight  LegendPosition = "right"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
)

// LegendMarkerStyle is the marker of a legend item.
type LegendMarkerStyle struct {
	Shape         scene.MarkerShape
	Fill          string
	Stroke        string
	FillOpacity   float64
	StrokeOpacity float64
}

// LegendDatum is one item of the legend.
type LegendDatum struct {
	// SeriesID is the id of the series owning the item.
	SeriesID string

	// ItemID is the id of the item within its series.
	ItemID string

	// Enabled is whether the item is shown.
	Enabled bool

	Marker LegendMarkerStyle

	// Label is the text of the item.
	Label string
}

// LegendMarker is the marker style of all legend items.
type LegendMarker struct {
	observe.Observable

	size        observe.Property[float64]
	shape       observe.Property[scene.MarkerShape]
	padding     observe.Property[float64]
	strokeWidth observe.Property[float64]
}

func newLegendMarker() *LegendMarker {
	m := &LegendMarker{
		size:        observe.NewProperty("size", 15.0, observe.LayoutChange),
		shape:       observe.NewProperty[scene.MarkerShape]("shape", "", observe.LayoutChange),
		padding:     observe.NewProperty("padding", 8.0, observe.LayoutChange),
		strokeWidth: observe.NewProperty("strokeWidth", 1.0, observe.Change),
	}
	m.InitObservable(m)
	return m
}

func (m *LegendMarker) Size() float64 { return m.size.Get() }

// Shape returns the shape used for all items. If it is empty,
// each item uses the shape given by its series.
func (m *LegendMarker) Shape() scene.MarkerShape { return m.shape.Get() }

// Padding returns the space between the marker and the label.
func (m *LegendMarker) Padding() float64     { return m.padding.Get() }
func (m *LegendMarker) StrokeWidth() float64 { return m.strokeWidth.Get() }

func (m *LegendMarker) SetSize(v float64)            { m.size.Set(&m.Observable, v) }
func (m *LegendMarker) SetShape(v scene.MarkerShape) { m.shape.Set(&m.Observable, v) }
func (m *LegendMarker) SetPadding(v float64)         { m.padding.Set(&m.Observable, v) }
func (m *LegendMarker) SetStrokeWidth(v float64)     { m.strokeWidth.Set(&m.Observable, v) }

// LegendLabel is the text style of all legend items.
type LegendLabel struct {
	observe.Observable

	color      observe.Property[string]
	fontStyle  observe.Property[scene.FontStyle]
	fontWeight observe.Property[scene.FontWeight]
	fontSize   observe.Property[float64]
	fontFamily observe.Property[string]
	formatter  observe.Property[func(d LegendDatum) string]
}

func newLegendLabel() *LegendLabel {
	l := &LegendLabel{
		color:      observe.NewProperty("color", "black", observe.Change),
		fontStyle:  observe.NewProperty("fontStyle", scene.FontNormal, observe.LayoutChange),
		fontWeight: observe.NewProperty("fontWeight", scene.WeightNormal, observe.LayoutChange),
		fontSize:   observe.NewProperty("fontSize", 12.0, observe.LayoutChange),
		fontFamily: observe.NewProperty("fontFamily", "Verdana, sans-serif", observe.LayoutChange),
		formatter:  observe.NewProperty[func(d LegendDatum) string]("formatter", nil, observe.LayoutChange),
	}
	l.InitObservable(l)
	return l
}

func (l *LegendLabel) Color() string                { return l.color.Get() }
func (l *LegendLabel) FontStyle() scene.FontStyle   { return l.fontStyle.Get() }
func (l *LegendLabel) FontWeight() scene.FontWeight { return l.fontWeight.Get() }
func (l *LegendLabel) FontSize() float64            { return l.fontSize.Get() }
func (l *LegendLabel) FontFamily() string           { return l.fontFamily.Get() }

func (l *LegendLabel) SetColor(v string)                { l.color.Set(&l.Observable, v) }
func (l *LegendLabel) SetFontStyle(v scene.FontStyle)   { l.fontStyle.Set(&l.Observable, v) }
func (l *LegendLabel) SetFontWeight(v scene.FontWeight) { l.fontWeight.Set(&l.Observable, v) }
func (l *LegendLabel) SetFontSize(v float64)            { l.fontSize.Set(&l.Observable, v) }
func (l *LegendLabel) SetFontFamily(v string)           { l.fontFamily.Set(&l.Observable, v) }

// SetFormatter sets the function returning the text of an item.
func (l *LegendLabel) SetFormatter(f func(d LegendDatum) string) { l.formatter.Set(&l.Observable, f) }

// Font returns the font of the labels.
func (l *LegendLabel) Font() scene.Font {
	return scene.Font{Style: l.FontStyle(), Weight: l.FontWeight(), Size: l.FontSize(), Family: l.FontFamily()}
}

// Text returns the text of the item.
func (l *LegendLabel) Text(d LegendDatum) string {
	if f := l.formatter.Get(); f != nil {
		return f(d)
	}
	return d.Label
}

// LegendItem is the style of all legend items. The events of the
// marker and label are forwarded to the item.
type LegendItem struct {
	observe.Observable

	Marker *LegendMarker
	Label  *LegendLabel

	paddingX observe.Property[float64]
	paddingY observe.Property[float64]
}

func newLegendItem() *LegendItem {
	it := &LegendItem{
		Marker:   newLegendMarker(),
		Label:    newLegendLabel(),
		paddingX: observe.NewProperty("paddingX", 16.0, observe.LayoutChange),
		paddingY: observe.NewProperty("paddingY", 8.0, observe.LayoutChange),
	}
	it.InitObservable(it)
	forward(&it.Marker.Observable, &it.Observable, observe.Change, observe.LayoutChange)
	forward(&it.Label.Observable, &it.Observable, observe.Change, observe.LayoutChange)
	return it
}

// PaddingX returns the horizontal space between columns of items.
func (it *LegendItem) PaddingX() float64 { return it.paddingX.Get() }

// PaddingY returns the vertical space between rows of items.
func (it *LegendItem) PaddingY() float64 { return it.paddingY.Get() }

func (it *LegendItem) SetPaddingX(v float64) { it.paddingX.Set(&it.Observable, v) }
func (it *LegendItem) SetPaddingY(v float64) { it.paddingY.Set(&it.Observable, v) }

// forward fires the given categories on to when they fire on from.
func forward(from, to *observe.Observable, cs ...observe.Category) {
	for _, c := range cs {
		from.AddEventListener(c, observe.On(func() { to.FireEvent(observe.NewEvent(c)) }), to)
	}
}

// Legend shows one item per series item, packed into a grid.
type Legend struct {
	observe.Observable

	// ID is the unique id of the legend.
	ID string

	// Item is the style of the items.
	Item *LegendItem

	// Group holds the item nodes.
	Group *scene.Group

	data        observe.Property[[]LegendDatum]
	enabled     observe.Property[bool]
	orientation observe.Property[LegendOrientation]
	position    observe.Property[LegendPosition]
	spacing     observe.Property[float64]

	items *selection.Selection[*scene.Group, LegendDatum]
	size  Size
}

// NewLegend returns a new enabled legend on the right.
func NewLegend() *Legend {
	l := &Legend{
		ID:          observe.NewID("Legend"),
		Item:        newLegendItem(),
		Group:       scene.NewGroup(),
		data:        observe.NewProperty[[]LegendDatum]("data", nil, observe.LayoutChange),
		enabled:     observe.NewProperty("enabled", true, observe.LayoutChange),
		orientation: observe.NewProperty("orientation", Vertical, observe.LayoutChange),
		position:    observe.NewProperty("position", LegendRight, observe.LayoutChange),
		spacing:     observe.NewProperty("spacing", 20.0, observe.LayoutChange),
	}
	l.InitObservable(l)
	l.Group.Name = l.ID
	l.Group.Visible = false
	l.items = selection.New[*scene.Group, LegendDatum](l.Group)

	l.AddPropertyListener("data", observe.OnProperty(func(any, *observe.PropertyChange) { l.updateVisible() }), l)
	l.AddPropertyListener("enabled", observe.OnProperty(func(any, *observe.PropertyChange) { l.updateVisible() }), l)
	l.AddPropertyListener("position", observe.OnProperty(func(_ any, ev *observe.PropertyChange) {
		switch ev.Value.(LegendPosition) {
		case LegendLeft, LegendRight:
			l.SetOrientation(Vertical)
		case LegendTop, LegendBottom:
			l.SetOrientation(Horizontal)
		}
	}), l)
	l.Item.Marker.AddPropertyListener("shape", observe.OnProperty(func(any, *observe.PropertyChange) {
		l.items.Clear()
	}), l)
	l.AddEventListener(observe.Change, observe.On(l.update), l)
	forward(&l.Item.Observable, &l.Observable, observe.Change, observe.LayoutChange)
	return l
}

func (l *Legend) Data() []LegendDatum            { return l.data.Get() }
func (l *Legend) Enabled() bool                  { return l.enabled.Get() }
func (l *Legend) Orientation() LegendOrientation { return l.orientation.Get() }
func (l *Legend) Position() LegendPosition       { return l.position.Get() }

// Spacing returns the space between the legend and the edge of the chart.
func (l *Legend) Spacing() float64 { return l.spacing.Get() }

func (l *Legend) SetData(v []LegendDatum)            { l.data.Set(&l.Observable, v) }
func (l *Legend) SetEnabled(v bool)                  { l.enabled.Set(&l.Observable, v) }
func (l *Legend) SetOrientation(v LegendOrientation) { l.orientation.Set(&l.Observable, v) }

// SetPosition sets the position, which also sets the orientation.
func (l *Legend) SetPosition(v LegendPosition) { l.position.Set(&l.Observable, v) }
func (l *Legend) SetSpacing(v float64)         { l.spacing.Set(&l.Observable, v) }

// Size returns the size computed by the last layout.
func (l *Legend) Size() Size { return l.size }

// Nodes returns the item nodes in data order.
func (l *Legend) Nodes() []*scene.Group { return l.items.Nodes() }

func (l *Legend) updateVisible() {
	l.Group.SetVisible(l.Enabled() && len(l.Data()) > 0)
}

func (l *Legend) markerShape(d LegendDatum) scene.MarkerShape {
	if s := l.Item.Marker.Shape(); s != "" {
		return s
	}
	if d.Marker.Shape != "" {
		return d.Marker.Shape
	}
	return scene.Square
}

func newLegendItemNode(shape scene.MarkerShape) *scene.Group {
	g := scene.NewGroup()
	m := scene.NewMarker(shape)
	m.Tag = "marker"
	t := scene.NewText()
	t.Tag = "label"
	t.Align = scene.AlignStart
	t.Baseline = scene.BaselineMiddle
	g.AddChild(m, t)
	return g
}

func itemParts(g *scene.Group) (*scene.Marker, *scene.Text) {
	return g.Children[0].(*scene.Marker), g.Children[1].(*scene.Text)
}

// PerformLayout packs the items into a grid for the given size,
// which is only a hint: a vertical legend takes the width it needs
// and fits the height if it can, and a horizontal legend takes the
// height it needs and fits the width if it can. It returns the size
// of the packed items, which is also given by [Legend.Size].
func (l *Legend) PerformLayout(width, height float64) Size {
	marker, label := l.Item.Marker, l.Item.Label
	paddingX, paddingY := l.Item.PaddingX(), l.Item.PaddingY()

	l.items.Update(l.Data(), func(d LegendDatum) string {
		return d.SeriesID + "-" + d.ItemID + "-" + string(l.markerShape(d))
	}, func(d LegendDatum, i int) *scene.Group {
		return newLegendItemNode(l.markerShape(d))
	})

	var bboxes []scene.BBox
	l.items.Each(func(g *scene.Group, d LegendDatum, i int) {
		m, t := itemParts(g)
		ms := marker.Size()
		m.SetSize(ms)
		m.SetPos(ms/2, 0)
		t.SetFont(label.Font())
		t.SetText(label.Text(d))
		t.SetPos(ms+marker.Padding(), 0)
		bboxes = append(bboxes, g.LocalBBox())
	})

	itemCount := len(bboxes)
	if itemCount == 0 {
		l.size = Size{}
		return l.size
	}
	itemHeight := bboxes[0].Height
	width = math.Max(1, width)
	height = math.Max(1, height)

	rowCount := 0
	var paddedWidth, paddedHeight float64
	switch l.Orientation() {
	case Horizontal:
		for {
			rowCount++
			columnCount, columnWidth, itemsWidth := 0, 0.0, 0.0
			i := 0
			for i < itemCount {
				columnWidth = math.Max(columnWidth, bboxes[i].Width)
				i++
				if i%rowCount == 0 {
					itemsWidth += columnWidth
					columnWidth = 0
					columnCount++
				}
			}
			if i%rowCount != 0 {
				itemsWidth += columnWidth
				columnCount++
			}
			paddedWidth = itemsWidth + float64(columnCount-1)*paddingX
			if !(paddedWidth > width && columnCount > 1) {
				break
			}
		}
		paddedHeight = itemHeight*float64(rowCount) + float64(rowCount-1)*paddingY

	default:
		rowCount = itemCount * 2
		for {
			rowCount = rowCount>>1 + rowCount%2
			columnCount, columnWidth, itemsWidth, itemsHeight := 0, 0.0, 0.0, 0.0
			i := 0
			for i < itemCount {
				if columnCount == 0 {
					itemsHeight += bboxes[i].Height
				}
				columnWidth = math.Max(columnWidth, bboxes[i].Width)
				i++
				if i%rowCount == 0 {
					itemsWidth += columnWidth
					columnWidth = 0
					columnCount++
				}
			}
			if i%rowCount != 0 {
				itemsWidth += columnWidth
				columnCount++
			}
			paddedWidth = itemsWidth + float64(columnCount-1)*paddingX
			paddedHeight = itemsHeight + float64(rowCount-1)*paddingY
			if !(paddedHeight > height && rowCount > 1) {
				break
			}
		}
	}

	startX := (width - paddedWidth) / 2
	startY := (height - paddedHeight) / 2
	x, y, columnWidth := 0.0, 0.0, 0.0
	l.items.Each(func(g *scene.Group, d LegendDatum, i int) {
		g.SetTranslation(math.Floor(startX+x), math.Floor(startY+y))
		columnWidth = math.Max(columnWidth, bboxes[i].Width)
		if (i+1)%rowCount == 0 {
			x += columnWidth + paddingX
			y = 0
			columnWidth = 0
		} else {
			y += bboxes[i].Height + paddingY
		}
	})
	l.update()
	l.size = Size{paddedWidth, paddedHeight}
	return l.size
}

// update applies the styles that do not affect the layout.
func (l *Legend) update() {
	marker, label := l.Item.Marker, l.Item.Label
	l.items.Each(func(g *scene.Group, d LegendDatum, i int) {
		m, t := itemParts(g)
		m.SetFill(d.Marker.Fill)
		m.SetStroke(d.Marker.Stroke)
		m.SetStrokeWidth(marker.StrokeWidth())
		m.SetFillOpacity(d.Marker.FillOpacity)
		m.SetStrokeOpacity(d.Marker.StrokeOpacity)
		t.SetFill(label.Color())
		if d.Enabled {
			g.SetOpacity(1)
		} else {
			g.SetOpacity(0.5)
		}
	})
}

// DatumForPoint returns the item under the given point,
// in the coordinates of the legend's parent.
func (l *Legend) DatumForPoint(x, y float64) (LegendDatum, bool) {
	hit := scene.PickNode(l.Group, x, y)
	if hit == nil {
		return LegendDatum{}, false
	}
	d, ok := scene.DatumOf(hit).(LegendDatum)
	return d, ok
}

// convergeSize lays out at most passes times, each time within the
// budget computed from the size of the previous pass, until the size
// equals the size before it. If the size does not settle, the
// second-to-last size is chosen and the layout is run again within
// its budget, so that the laid out nodes match the returned size.
// This stops layouts of pathological item sets from oscillating.
func convergeSize(prev Size, passes int, budget func(prev Size) Size, layout func(budget Size) Size) Size {
	var sizes, budgets []Size
	for range passes {
		b := budget(prev)
		s := layout(b)
		if s == prev {
			return s
		}
		sizes, budgets = append(sizes, s), append(budgets, b)
		prev = s
	}
	n := len(sizes)
	if n < 2 {
		return prev
	}
	layout(budgets[n-2])
	return sizes[n-2]
}
