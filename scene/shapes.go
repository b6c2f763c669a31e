// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"
	"slices"
)

// Shadow is a drop shadow drawn beneath a filled shape.
type Shadow struct {
	Color   string
	XOffset float64
	YOffset float64
	Blur    float64
}

// Paint is the fill and stroke style of a shape.
// Colors are CSS color strings; an empty color is not painted.
type Paint struct {
	Fill           string
	Stroke         string
	StrokeWidth    float64
	FillOpacity    float64
	StrokeOpacity  float64
	LineDashOffset float64

	// Shadow is shared by reference between shapes,
	// so changing it requires setting a new pointer.
	Shadow *Shadow
}

// DefaultPaint returns the initial paint of shapes.
func DefaultPaint() Paint {
	return Paint{Fill: "black", FillOpacity: 1, StrokeOpacity: 1}
}

// Shape is a [Node] with a paint and an outline.
type Shape interface {
	Node

	// AsShape returns the [ShapeBase] of the shape.
	AsShape() *ShapeBase

	// Outline returns the outline of the shape in its own coordinates.
	Outline() *Path
}

// ShapeBase is embedded by all painted nodes.
type ShapeBase struct {
	NodeBase
	Paint    Paint
	LineDash []float64
}

func (s *ShapeBase) AsShape() *ShapeBase { return s }

func (s *ShapeBase) init(this Node) {
	s.NodeBase.init(this)
	s.Paint = DefaultPaint()
}

// SetPaint sets the whole [Paint].
func (s *ShapeBase) SetPaint(p Paint) bool { return set(&s.NodeBase, &s.Paint, p) }

func (s *ShapeBase) SetFill(c string) bool           { return set(&s.NodeBase, &s.Paint.Fill, c) }
func (s *ShapeBase) SetStroke(c string) bool         { return set(&s.NodeBase, &s.Paint.Stroke, c) }
func (s *ShapeBase) SetStrokeWidth(w float64) bool   { return set(&s.NodeBase, &s.Paint.StrokeWidth, w) }
func (s *ShapeBase) SetFillOpacity(v float64) bool   { return set(&s.NodeBase, &s.Paint.FillOpacity, v) }
func (s *ShapeBase) SetStrokeOpacity(v float64) bool { return set(&s.NodeBase, &s.Paint.StrokeOpacity, v) }
func (s *ShapeBase) SetShadow(sh *Shadow) bool       { return set(&s.NodeBase, &s.Paint.Shadow, sh) }

func (s *ShapeBase) SetLineDashOffset(v float64) bool {
	return set(&s.NodeBase, &s.Paint.LineDashOffset, v)
}

// SetLineDash sets the stroke dash pattern.
func (s *ShapeBase) SetLineDash(d []float64) bool {
	if slices.Equal(s.LineDash, d) {
		return false
	}
	s.LineDash = slices.Clone(d)
	s.MarkDirty()
	return true
}

// Group is a node whose only purpose is to hold children.
type Group struct {
	NodeBase
}

// NewGroup returns a new empty group.
func NewGroup() *Group {
	g := &Group{}
	g.init(g)
	return g
}

// Rect is a rectangle.
type Rect struct {
	ShapeBase
	X, Y, Width, Height float64
}

// NewRect returns a new rectangle.
func NewRect() *Rect {
	r := &Rect{}
	r.init(r)
	return r
}

// SetBounds sets the position and size of the rectangle.
func (r *Rect) SetBounds(x, y, w, h float64) bool {
	c := set(&r.NodeBase, &r.X, x)
	c = set(&r.NodeBase, &r.Y, y) || c
	c = set(&r.NodeBase, &r.Width, w) || c
	return set(&r.NodeBase, &r.Height, h) || c
}

func (r *Rect) LocalBBox() BBox { return BBox{r.X, r.Y, r.Width, r.Height} }

func (r *Rect) ContainsPoint(x, y float64) bool { return r.LocalBBox().ContainsPoint(x, y) }

func (r *Rect) Outline() *Path {
	p := &Path{}
	p.Rect(r.X, r.Y, r.Width, r.Height)
	return p
}

// Sector is an annular sector centered on (CenterX, CenterY), with
// angles in radians measured clockwise from the positive x axis.
type Sector struct {
	ShapeBase
	CenterX, CenterY         float64
	InnerRadius, OuterRadius float64
	StartAngle, EndAngle     float64
}

// NewSector returns a new sector.
func NewSector() *Sector {
	s := &Sector{}
	s.init(s)
	return s
}

// SetAngles sets the start and end angles.
func (s *Sector) SetAngles(start, end float64) bool {
	c := set(&s.NodeBase, &s.StartAngle, start)
	return set(&s.NodeBase, &s.EndAngle, end) || c
}

// SetRadii sets the inner and outer radii.
func (s *Sector) SetRadii(inner, outer float64) bool {
	c := set(&s.NodeBase, &s.InnerRadius, inner)
	return set(&s.NodeBase, &s.OuterRadius, outer) || c
}

func (s *Sector) Outline() *Path {
	p := &Path{}
	p.Arc(s.CenterX, s.CenterY, s.OuterRadius, s.StartAngle, s.EndAngle)
	if s.InnerRadius > 0 {
		p.Arc(s.CenterX, s.CenterY, s.InnerRadius, s.EndAngle, s.StartAngle)
	} else {
		p.LineTo(s.CenterX, s.CenterY)
	}
	p.Close()
	return p
}

func (s *Sector) LocalBBox() BBox {
	r := s.OuterRadius
	return BBox{s.CenterX - r, s.CenterY - r, 2 * r, 2 * r}
}

func (s *Sector) ContainsPoint(x, y float64) bool {
	dx, dy := x-s.CenterX, y-s.CenterY
	r := math.Hypot(dx, dy)
	if r < s.InnerRadius || r > s.OuterRadius {
		return false
	}
	span := s.EndAngle - s.StartAngle
	if span >= 2*math.Pi {
		return true
	}
	a := math.Mod(math.Atan2(dy, dx)-s.StartAngle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a <= span
}

// Line is a straight line segment.
type Line struct {
	ShapeBase
	X1, Y1, X2, Y2 float64
}

// NewLine returns a new line, stroked black with width 1.
func NewLine() *Line {
	l := &Line{}
	l.init(l)
	l.Paint.Fill = ""
	l.Paint.Stroke = "black"
	l.Paint.StrokeWidth = 1
	return l
}

// SetPoints sets the end points of the line.
func (l *Line) SetPoints(x1, y1, x2, y2 float64) bool {
	c := set(&l.NodeBase, &l.X1, x1)
	c = set(&l.NodeBase, &l.Y1, y1) || c
	c = set(&l.NodeBase, &l.X2, x2) || c
	return set(&l.NodeBase, &l.Y2, y2) || c
}

func (l *Line) Outline() *Path {
	p := &Path{}
	p.MoveTo(l.X1, l.Y1)
	p.LineTo(l.X2, l.Y2)
	return p
}

func (l *Line) LocalBBox() BBox {
	x0, y0 := math.Min(l.X1, l.X2), math.Min(l.Y1, l.Y2)
	return BBox{x0, y0, math.Abs(l.X2 - l.X1), math.Abs(l.Y2 - l.Y1)}
}

func (l *Line) ContainsPoint(x, y float64) bool {
	dx, dy := l.X2-l.X1, l.Y2-l.Y1
	ln := dx*dx + dy*dy
	t := 0.0
	if ln > 0 {
		t = math.Max(0, math.Min(1, ((x-l.X1)*dx+(y-l.Y1)*dy)/ln))
	}
	px, py := l.X1+t*dx, l.Y1+t*dy
	return math.Hypot(x-px, y-py) <= math.Max(l.Paint.StrokeWidth/2, 2)
}

// TextAlign is the horizontal alignment of text relative to its x.
type TextAlign string

const (
	AlignStart  TextAlign = "start"
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
	AlignEnd    TextAlign = "end"
)

// TextBaseline is the vertical alignment of text relative to its y.
type TextBaseline string

const (
	BaselineTop        TextBaseline = "top"
	BaselineHanging    TextBaseline = "hanging"
	BaselineMiddle     TextBaseline = "middle"
	BaselineAlphabetic TextBaseline = "alphabetic"
	BaselineBottom     TextBaseline = "bottom"
)

// Text is a single line of text.
type Text struct {
	ShapeBase
	X, Y     float64
	Text     string
	Font     Font
	Align    TextAlign
	Baseline TextBaseline
}

// NewText returns a new text node in 10px sans-serif.
func NewText() *Text {
	t := &Text{}
	t.init(t)
	t.Font = Font{Size: 10, Family: "sans-serif"}
	t.Align = AlignStart
	t.Baseline = BaselineAlphabetic
	return t
}

// SetText sets the text.
func (t *Text) SetText(s string) bool { return set(&t.NodeBase, &t.Text, s) }

// SetPos sets the anchor position.
func (t *Text) SetPos(x, y float64) bool {
	c := set(&t.NodeBase, &t.X, x)
	return set(&t.NodeBase, &t.Y, y) || c
}

// SetFont sets the font.
func (t *Text) SetFont(f Font) bool { return set(&t.NodeBase, &t.Font, f) }

// SetAlign sets the alignment and baseline.
func (t *Text) SetAlign(a TextAlign, b TextBaseline) bool {
	c := set(&t.NodeBase, &t.Align, a)
	return set(&t.NodeBase, &t.Baseline, b) || c
}

// Origin returns the top left of the text box.
func (t *Text) Origin() (x, y float64) {
	m := MeasureText(t.Text, t.Font)
	x = t.X
	switch t.Align {
	case AlignCenter:
		x -= m.Width / 2
	case AlignRight, AlignEnd:
		x -= m.Width
	}
	y = t.Y
	switch t.Baseline {
	case BaselineMiddle:
		y -= m.Height() / 2
	case BaselineBottom:
		y -= m.Height()
	case BaselineAlphabetic:
		y -= m.Ascent
	}
	return
}

func (t *Text) LocalBBox() BBox {
	m := MeasureText(t.Text, t.Font)
	x, y := t.Origin()
	return BBox{x, y, m.Width, m.Height()}
}

func (t *Text) ContainsPoint(x, y float64) bool { return t.LocalBBox().ContainsPoint(x, y) }

func (t *Text) Outline() *Path {
	p := &Path{}
	b := t.LocalBBox()
	p.Rect(b.X, b.Y, b.Width, b.Height)
	return p
}

// MarkerShape is the shape of a [Marker].
type MarkerShape string

const (
	Circle   MarkerShape = "circle"
	Square   MarkerShape = "square"
	Diamond  MarkerShape = "diamond"
	Cross    MarkerShape = "cross"
	Plus     MarkerShape = "plus"
	Triangle MarkerShape = "triangle"
)

// MarkerShapes returns all marker shapes.
func MarkerShapes() []MarkerShape {
	return []MarkerShape{Circle, Square, Diamond, Cross, Plus, Triangle}
}

// Marker is a symbol of a given size centered on (X, Y).
type Marker struct {
	ShapeBase
	X, Y  float64
	Size  float64
	Shape MarkerShape
}

// NewMarker returns a new circle marker of size 12.
func NewMarker(shape MarkerShape) *Marker {
	m := &Marker{}
	m.init(m)
	m.Size = 12
	m.Shape = shape
	return m
}

// SetPos sets the center.
func (m *Marker) SetPos(x, y float64) bool {
	c := set(&m.NodeBase, &m.X, x)
	return set(&m.NodeBase, &m.Y, y) || c
}

// SetSize sets the size.
func (m *Marker) SetSize(s float64) bool { return set(&m.NodeBase, &m.Size, s) }

// SetShape sets the shape.
func (m *Marker) SetShape(s MarkerShape) bool { return set(&m.NodeBase, &m.Shape, s) }

func (m *Marker) LocalBBox() BBox {
	h := m.Size / 2
	return BBox{m.X - h, m.Y - h, m.Size, m.Size}
}

func (m *Marker) ContainsPoint(x, y float64) bool {
	if m.Shape == Circle {
		return math.Hypot(x-m.X, y-m.Y) <= m.Size/2
	}
	return m.LocalBBox().ContainsPoint(x, y)
}

func (m *Marker) Outline() *Path {
	p := &Path{}
	x, y, h := m.X, m.Y, m.Size/2
	switch m.Shape {
	case Square:
		p.Rect(x-h, y-h, m.Size, m.Size)
	case Diamond:
		p.MoveTo(x, y-h)
		p.LineTo(x+h, y)
		p.LineTo(x, y+h)
		p.LineTo(x-h, y)
		p.Close()
	case Triangle:
		p.MoveTo(x, y-h)
		p.LineTo(x+h, y+h)
		p.LineTo(x-h, y+h)
		p.Close()
	case Plus, Cross:
		t := m.Size / 6
		pts := [][2]float64{
			{-t, -h}, {t, -h}, {t, -t}, {h, -t}, {h, t}, {t, t},
			{t, h}, {-t, h}, {-t, t}, {-h, t}, {-h, -t}, {-t, -t},
		}
		for i, pt := range pts {
			px, py := pt[0], pt[1]
			if m.Shape == Cross {
				px, py = (px-py)*math.Sqrt2/2, (px+py)*math.Sqrt2/2
			}
			if i == 0 {
				p.MoveTo(x+px, y+py)
			} else {
				p.LineTo(x+px, y+py)
			}
		}
		p.Close()
	default:
		p.Arc(x, y, h, 0, 2*math.Pi)
		p.Close()
	}
	return p
}
