// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
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

// TreemapLabels are the styles of the leaf labels of a treemap,
// picked by the size of the tile, and of the value labels.
type TreemapLabels struct {
	Large, Medium, Small *chart.Label

	// Color is the style of the value labels.
	Color *chart.Label
}

// TreemapNodeDatum is the node datum of one node of the tree.
// Its item id is the index of the node in depth first order.
type TreemapNodeDatum struct {
	chart.NodeDatumBase

	Parent   *TreemapNodeDatum
	Children []*TreemapNodeDatum
	Depth    int

	// Value is the size of the node, which for a parent
	// is the sum of the sizes of its leaves.
	Value float64

	// X0, Y0, X1, Y1 are the edges of the tile.
	X0, Y0, X1, Y1 float64

	Fill  string
	Label string

	// HasTitle is whether the parent has room for its label above
	// its children.
	HasTitle bool

	// ColorValue is the value of the color key, or NaN.
	ColorValue float64
}

// Point returns the center of the tile.
func (d *TreemapNodeDatum) Point() (x, y float64, ok bool) {
	return (d.X0 + d.X1) / 2, (d.Y0 + d.Y1) / 2, true
}

// IsLeaf returns whether the node has no children.
func (d *TreemapNodeDatum) IsLeaf() bool { return len(d.Children) == 0 }

// each calls fn on the node and its descendants in depth first order.
func (d *TreemapNodeDatum) each(fn func(n *TreemapNodeDatum)) {
	fn(d)
	for _, c := range d.Children {
		c.each(fn)
	}
}

// Treemap is a series drawing hierarchical data as nested tiles
// with areas in proportion to the sizes of their leaves. The data
// is one root row, or a list of rows under an implicit root, and
// the children of each row are under its children key.
type Treemap struct {
	chart.SeriesBase

	// Title is the style of the parent labels.
	Title *chart.Label

	// Subtitle is the style of the parent labels below the top level.
	Subtitle *chart.Label

	Labels TreemapLabels

	// Shadow, if set, is drawn under the parent tiles.
	Shadow *chart.DropShadow

	nodePadding  observe.Property[float64]
	labelKey     observe.Property[string]
	sizeKey      observe.Property[string]
	colorKey     observe.Property[string]
	colorName    observe.Property[string]
	rootName     observe.Property[string]
	colorDomain  observe.Property[[]float64]
	colorRange   observe.Property[[]string]
	colorParents observe.Property[bool]

	// root is the implicit root of a list of rows,
	// kept until the data changes.
	root data.Row

	tree *TreemapNodeDatum

	groups *selection.Selection[*scene.Group, chart.NodeDatum]
}

// NewTreemap returns a new treemap series.
func NewTreemap() *Treemap {
	t := &Treemap{
		Title:    chart.NewLabel(),
		Subtitle: chart.NewLabel(),
		Labels: TreemapLabels{
			Large:  chart.NewLabel(),
			Medium: chart.NewLabel(),
			Small:  chart.NewLabel(),
			Color:  chart.NewLabel(),
		},
		Shadow:       chart.NewDropShadow(),
		nodePadding:  observe.NewProperty("nodePadding", 2.0, observe.DataChange),
		labelKey:     observe.NewProperty("labelKey", "label", observe.DataChange),
		sizeKey:      observe.NewProperty("sizeKey", "size", observe.DataChange),
		colorKey:     observe.NewProperty("colorKey", "color", observe.DataChange),
		colorName:    observe.NewProperty("colorName", "Change", observe.Update),
		rootName:     observe.NewProperty("rootName", "Root", observe.Update),
		colorDomain:  observe.NewProperty("colorDomain", []float64{-5, 5}, observe.DataChange),
		colorRange:   observe.NewProperty("colorRange", []string{"#cb4b3f", "#6acb64"}, observe.DataChange),
		colorParents: observe.NewProperty("colorParents", false, observe.DataChange),
	}
	t.InitSeries(t, "treemap")

	for _, l := range []*chart.Label{t.Title, t.Subtitle, t.Labels.Large, t.Labels.Medium, t.Labels.Small, t.Labels.Color} {
		l.SetColor("white")
		l.SetFontWeight(scene.Bold)
		l.AddEventListener(observe.Change, observe.On(t.ScheduleUpdate), t)
	}
	t.Title.SetFontSize(12)
	t.Subtitle.SetFontSize(9)
	t.Labels.Large.SetFontSize(18)
	t.Labels.Medium.SetFontSize(14)
	t.Labels.Small.SetFontSize(10)
	t.Labels.Color.SetFontWeight(scene.WeightNormal)

	// title sizes decide the padding of parents
	for _, l := range []*chart.Label{t.Title, t.Subtitle} {
		l.AddPropertyListener("fontSize", observe.OnProperty(func(_ any, _ *observe.PropertyChange) {
			t.ScheduleNodeData()
		}), t)
	}

	t.Shadow.SetColor("rgba(0, 0, 0, 0.4)")
	t.Shadow.SetXOffset(1.5)
	t.Shadow.SetYOffset(1.5)
	t.Shadow.AddEventListener(observe.Change, observe.On(t.ScheduleUpdate), t)

	t.AddPropertyListener("data", observe.OnProperty(func(_ any, _ *observe.PropertyChange) {
		t.root = nil
	}), t)
	t.groups = selection.New[*scene.Group, chart.NodeDatum](t.PickGroup())
	return t
}

func (t *Treemap) NodePadding() float64   { return t.nodePadding.Get() }
func (t *Treemap) LabelKey() string       { return t.labelKey.Get() }
func (t *Treemap) SizeKey() string        { return t.sizeKey.Get() }
func (t *Treemap) ColorKey() string       { return t.colorKey.Get() }
func (t *Treemap) ColorName() string      { return t.colorName.Get() }
func (t *Treemap) RootName() string       { return t.rootName.Get() }
func (t *Treemap) ColorDomain() []float64 { return t.colorDomain.Get() }
func (t *Treemap) ColorRange() []string   { return t.colorRange.Get() }
func (t *Treemap) ColorParents() bool     { return t.colorParents.Get() }

func (t *Treemap) SetNodePadding(v float64)   { t.nodePadding.Set(&t.Observable, v) }
func (t *Treemap) SetLabelKey(v string)       { t.labelKey.Set(&t.Observable, v) }
func (t *Treemap) SetSizeKey(v string)        { t.sizeKey.Set(&t.Observable, v) }
func (t *Treemap) SetColorKey(v string)       { t.colorKey.Set(&t.Observable, v) }
func (t *Treemap) SetColorName(v string)      { t.colorName.Set(&t.Observable, v) }
func (t *Treemap) SetRootName(v string)       { t.rootName.Set(&t.Observable, v) }
func (t *Treemap) SetColorDomain(v []float64) { t.colorDomain.Set(&t.Observable, v) }
func (t *Treemap) SetColorRange(v []string)   { t.colorRange.Set(&t.Observable, v) }
func (t *Treemap) SetColorParents(v bool)     { t.colorParents.Set(&t.Observable, v) }

// Tree returns the root of the processed tree, or nil.
func (t *Treemap) Tree() *TreemapNodeDatum { return t.tree }

// Domain returns nil: treemaps have no axes.
func (t *Treemap) Domain(dir chart.Direction) []data.Value { return nil }

// rootRow returns the row at the root of the tree.
func (t *Treemap) rootRow() data.Row {
	rows := t.Data()
	switch len(rows) {
	case 0:
		return nil
	case 1:
		return rows[0]
	}
	if t.root == nil {
		t.root = data.Row{data.ChildrenKey: data.ListValue(slices.Clone(rows))}
	}
	return t.root
}

const parentFill = "#272931"

func (t *Treemap) ProcessData() bool {
	t.tree = nil
	root := t.rootRow()
	if root == nil {
		return false
	}
	lk, sk, ck := t.LabelKey(), t.SizeKey(), t.ColorKey()
	colors := &scale.Color{Domain: t.ColorDomain(), Range: t.ColorRange()}
	colorParents := t.ColorParents()
	index := 0
	var build func(r data.Row, parent *TreemapNodeDatum, depth int) *TreemapNodeDatum
	build = func(r data.Row, parent *TreemapNodeDatum, depth int) *TreemapNodeDatum {
		n := &TreemapNodeDatum{
			NodeDatumBase: chart.NodeDatumBase{S: t, Item: strconv.Itoa(index), Row: r},
			Parent:        parent,
			Depth:         depth,
			ColorValue:    math.NaN(),
		}
		index++
		if lk != "" {
			n.Label = r.Get(lk).Str()
		}
		if ck != "" {
			if f, ok := finite(r.Get(ck)); ok {
				n.ColorValue = f
			}
		}
		for _, c := range r.Children() {
			n.Children = append(n.Children, build(c, n, depth+1))
		}
		if n.IsLeaf() {
			n.Value = 1
			if sk != "" {
				f, ok := finite(r.Get(sk))
				n.Value = 0
				if ok && f > 0 {
					n.Value = f
				}
			}
		} else {
			for _, c := range n.Children {
				n.Value += c.Value
			}
			n.Label = strings.ToUpper(n.Label)
		}
		n.Fill = parentFill
		if (n.IsLeaf() || colorParents) && !math.IsNaN(n.ColorValue) {
			n.Fill = colors.Convert(n.ColorValue)
		}
		return n
	}
	t.tree = build(root, nil, 0)
	missingKeys(&t.SeriesBase, t.Data(), lk)
	return true
}

// titleLabel returns the label style of the title of a parent
// at the given depth.
func (t *Treemap) titleLabel(depth int) *chart.Label {
	if depth > 1 {
		return t.Subtitle
	}
	return t.Title
}

func (t *Treemap) CreateNodeData() []chart.NodeDatum {
	if t.tree == nil {
		return nil
	}
	pad := t.NodePadding()
	rect := t.Rect()
	layoutTreemap(t.tree, rect.Width, rect.Height, func(n *TreemapNodeDatum) (top, right, bottom, left float64) {
		n.HasTitle = false
		top = pad
		if n.Depth > 0 && n.Label != "" {
			m := scene.MeasureText(n.Label, t.titleLabel(n.Depth).Font())
			th := m.Height() + 2*pad
			if m.Width+2*pad <= n.X1-n.X0 && th < n.Y1-n.Y0 {
				n.HasTitle = true
				top = th
			}
		}
		return top, pad, pad, pad
	})
	var nds []chart.NodeDatum
	t.tree.each(func(n *TreemapNodeDatum) {
		n.X0 += rect.X
		n.X1 += rect.X
		n.Y0 += rect.Y
		n.Y1 += rect.Y
		nds = append(nds, n)
	})
	return nds
}

// newTileNode returns the group of a tile with its rect
// and its name and value labels.
func newTileNode() *scene.Group {
	g := scene.NewGroup()
	r := scene.NewRect()
	r.Tag = "tile"
	name := labelNode()
	name.Tag = "name"
	value := labelNode()
	value.Tag = "value"
	g.AddChild(r, name, value)
	return g
}

func tileParts(g *scene.Group) (*scene.Rect, *scene.Text, *scene.Text) {
	return g.ChildByTag("tile").(*scene.Rect), g.ChildByTag("name").(*scene.Text),
		g.ChildByTag("value").(*scene.Text)
}

// leafLabel returns the label style of a leaf with the given
// inner size.
func (t *Treemap) leafLabel(w, h float64) *chart.Label {
	switch s := math.Min(w, h); {
	case s > 40:
		return t.Labels.Large
	case s > 20:
		return t.Labels.Medium
	}
	return t.Labels.Small
}

func (t *Treemap) Update() {
	t.Group().SetVisible(t.Visible())
	t.groups.Update(t.NodeData(), nil, func(nd chart.NodeDatum, i int) *scene.Group {
		return newTileNode()
	})
	shadow := t.Shadow.Shadow()
	pad := t.NodePadding()
	ck := t.ColorKey()
	t.groups.Each(func(g *scene.Group, d chart.NodeDatum, i int) {
		nd := d.(*TreemapNodeDatum)
		r, name, value := tileParts(g)
		w, h := nd.X1-nd.X0, nd.Y1-nd.Y0

		stroke := "black"
		if nd.Depth < 2 {
			stroke = ""
		}
		fill, stroke, sw := t.ItemStyle(nd, nd.Fill, stroke, 1)
		g.SetZIndex(float64(nd.Depth))
		r.SetBounds(nd.X0, nd.Y0, w, h)
		r.SetFill(fill)
		r.SetStroke(stroke)
		r.SetStrokeWidth(sw)
		r.SetOpacity(t.Opacity(nil))
		r.SetVisible(w > 0 && h > 0)
		if !nd.IsLeaf() {
			r.SetShadow(shadow)
		} else {
			r.SetShadow(nil)
		}

		if !nd.IsLeaf() {
			value.SetVisible(false)
			name.SetVisible(nd.HasTitle)
			if !nd.HasTitle {
				return
			}
			t.titleLabel(nd.Depth).Apply(name)
			name.SetText(nd.Label)
			name.SetPos(nd.X0+pad, nd.Y0+pad)
			name.SetAlign(scene.AlignLeft, scene.BaselineTop)
			return
		}

		lw, lh := w-2*pad, h-2*pad
		l := t.leafLabel(lw, lh)
		m := scene.MeasureText(nd.Label, l.Font())
		showName := nd.Label != "" && m.Width <= lw && m.Height() <= lh
		name.SetVisible(showName)
		cx, cy := (nd.X0+nd.X1)/2, (nd.Y0+nd.Y1)/2

		var vt string
		if ck != "" && !math.IsNaN(nd.ColorValue) {
			vt = toFixed(nd.ColorValue) + "%"
		}
		vm := scene.MeasureText(vt, t.Labels.Color.Font())
		showValue := showName && vt != "" && m.Height()+vm.Height() <= lh && vm.Width <= lw
		value.SetVisible(showValue)

		if showName {
			l.Apply(name)
			name.SetText(nd.Label)
			name.SetPos(cx, cy)
			if showValue {
				name.SetAlign(scene.AlignCenter, scene.BaselineBottom)
			} else {
				name.SetAlign(scene.AlignCenter, scene.BaselineMiddle)
			}
		}
		if showValue {
			t.Labels.Color.Apply(value)
			value.SetText(vt)
			value.SetPos(cx, cy)
			value.SetAlign(scene.AlignCenter, scene.BaselineHanging)
		}
	})
}

func (t *Treemap) TooltipHTML(d chart.NodeDatum) string {
	nd, ok := d.(*TreemapNodeDatum)
	if !ok {
		return ""
	}
	title := nd.Label
	if nd.Depth == 0 {
		title = t.RootName()
	}
	var content string
	if t.ColorKey() != "" && !math.IsNaN(nd.ColorValue) {
		content = t.ColorName() + ": " + toFixed(nd.ColorValue)
	}
	color := nd.Fill
	return t.Tooltip.Render(chart.TooltipParams{
		Datum:    nd.Row,
		Title:    title,
		Color:    color,
		LabelKey: t.LabelKey(),
		SizeKey:  t.SizeKey(),
		ColorKey: t.ColorKey(),
	}, chart.TooltipContent{Title: title, Content: content, BackgroundColor: color})
}

// ListSeriesItems adds nothing: treemaps have no legend items.
func (t *Treemap) ListSeriesItems(items *[]chart.LegendDatum) {}

