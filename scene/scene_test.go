// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirtyTracking(t *testing.T) {
	s := New(100, 100)
	g := NewGroup()
	r := NewRect()
	g.AddChild(r)
	s.Root.AddChild(g)
	assert.True(t, s.Dirty())

	s.MarkClean()
	assert.False(t, s.Dirty())
	assert.False(t, r.SetBounds(0, 0, 0, 0))
	assert.False(t, s.Dirty())

	assert.True(t, r.SetBounds(1, 2, 3, 4))
	assert.True(t, g.Dirty())
	assert.True(t, s.Dirty())

	s.MarkClean()
	assert.False(t, r.SetFill("black"))
	assert.True(t, r.SetFill("red"))
	assert.True(t, s.Dirty())

	s.MarkClean()
	assert.True(t, r.SetLineDash([]float64{2, 2}))
	s.MarkClean()
	assert.False(t, r.SetLineDash([]float64{2, 2}))
	assert.False(t, s.Dirty())

	assert.True(t, s.Resize(200, 100))
	assert.False(t, s.Resize(200, 100))
}

func TestTree(t *testing.T) {
	g := NewGroup()
	a, b, c := NewRect(), NewRect(), NewRect()
	g.AddChild(a, b)
	g.InsertChild(c, 0)
	assert.Equal(t, []Node{c, a, b}, g.Children)
	assert.Equal(t, Node(g), a.Parent())

	assert.True(t, g.MoveChild(c, 2))
	assert.Equal(t, []Node{a, b, c}, g.Children)

	g2 := NewGroup()
	g2.AddChild(a)
	assert.Equal(t, []Node{b, c}, g.Children)
	assert.Equal(t, Node(g2), a.Parent())

	b.Datum = "datum"
	b.Destroy()
	assert.True(t, b.Destroyed())
	assert.Nil(t, b.Datum)
	assert.Equal(t, []Node{c}, g.Children)

	c.Tag = "label"
	assert.Equal(t, Node(c), g.ChildByTag("label"))
	assert.Nil(t, g.ChildByTag("none"))

	g.DeleteChildren()
	assert.Empty(t, g.Children)
	assert.True(t, c.Destroyed())
}

func TestSortedChildren(t *testing.T) {
	g := NewGroup()
	a, b, c := NewRect(), NewRect(), NewRect()
	g.AddChild(a, b, c)
	a.SetZIndex(2)
	assert.Equal(t, []Node{b, c, a}, g.SortedChildren())
}

func TestPickNode(t *testing.T) {
	s := New(100, 100)
	g := NewGroup()
	g.SetTranslation(10, 10)
	back := NewRect()
	back.SetBounds(0, 0, 50, 50)
	front := NewRect()
	front.SetBounds(20, 20, 10, 10)
	front.SetZIndex(1)
	g.AddChild(front, back)
	s.Root.AddChild(g)

	assert.Equal(t, Node(front), s.PickNode(35, 35))
	assert.Equal(t, Node(back), s.PickNode(12, 12))
	assert.Nil(t, s.PickNode(5, 5))

	front.SetVisible(false)
	assert.Equal(t, Node(back), s.PickNode(35, 35))

	g.SetPointerEvents(false)
	assert.Nil(t, s.PickNode(35, 35))
}

func TestSector(t *testing.T) {
	s := NewSector()
	s.SetRadii(10, 20)
	s.SetAngles(0, math.Pi/2)
	assert.True(t, s.ContainsPoint(0, 15))
	assert.True(t, s.ContainsPoint(15, 0))
	assert.False(t, s.ContainsPoint(5, 5))
	assert.False(t, s.ContainsPoint(-15, 0))

	s.SetAngles(-math.Pi/2, 3*math.Pi/2)
	assert.True(t, s.ContainsPoint(-15, 0))

	p := s.Outline()
	require.NotEmpty(t, p.Ops)
	assert.Equal(t, MoveTo, p.Ops[0].Op)
	assert.Equal(t, ClosePath, p.Ops[len(p.Ops)-1].Op)
}

func TestBBox(t *testing.T) {
	g := NewGroup()
	a := NewRect()
	a.SetBounds(0, 0, 10, 10)
	b := NewRect()
	b.SetBounds(20, 5, 10, 10)
	b.SetTranslation(5, 0)
	g.AddChild(a, b)
	g.SetTranslation(100, 100)
	assert.Equal(t, BBox{100, 100, 35, 15}, ComputeBBox(g))

	bb := BBox{0, 0, 100, 50}.Shrink(10, 20, 10, 20)
	assert.Equal(t, BBox{20, 10, 60, 30}, bb)
	assert.False(t, BBox{0, 0, math.NaN(), 1}.IsValid())
}

func TestMeasureText(t *testing.T) {
	f := Font{Size: 12, Family: "Verdana, sans-serif"}
	m := MeasureText("Revenue", f)
	assert.Greater(t, m.Width, 0.0)
	assert.Greater(t, m.Height(), 0.0)
	assert.Equal(t, m, MeasureText("Revenue", f))
	assert.Less(t, m.Width, MeasureText("Revenue and more", f).Width)
	assert.Equal(t, 0.0, MeasureText("", f).Width)
	assert.Equal(t, "italic bold 12px Verdana, sans-serif", Font{Italic, Bold, 12, "Verdana, sans-serif"}.CSS())

	txt := NewText()
	txt.SetFont(f)
	txt.SetText("Q1")
	txt.SetPos(50, 50)
	txt.SetAlign(AlignCenter, BaselineMiddle)
	bb := txt.LocalBBox()
	assert.InDelta(t, 50, bb.X+bb.Width/2, 1e-9)
	assert.InDelta(t, 50, bb.Y+bb.Height/2, 1e-9)
}

func TestMarkers(t *testing.T) {
	for _, sh := range MarkerShapes() {
		m := NewMarker(sh)
		m.SetPos(10, 10)
		m.SetSize(8)
		assert.True(t, m.ContainsPoint(10, 10), sh)
		assert.False(t, m.ContainsPoint(30, 30), sh)
		assert.NotEmpty(t, m.Outline().SVG(), sh)
	}
}

func TestClone(t *testing.T) {
	g := NewGroup()
	r := NewRect()
	r.SetBounds(1, 2, 3, 4)
	r.SetLineDash([]float64{1, 2})
	r.Datum = map[string]int{"a": 1}
	g.AddChild(r)

	c := Clone(g)
	require.Len(t, c.Children, 1)
	rc := c.Children[0].(*Rect)
	assert.NotSame(t, r, rc)
	assert.Equal(t, 3.0, rc.Width)
	assert.Equal(t, []float64{1, 2}, rc.LineDash)
	assert.Equal(t, Node(c), rc.Parent())
	assert.Equal(t, Node(rc), rc.This)

	rc.LineDash[0] = 5
	assert.Equal(t, 1.0, r.LineDash[0])
	rc.SetBounds(0, 0, 0, 0)
	assert.Equal(t, 3.0, r.Width)
}

func TestDatumOf(t *testing.T) {
	g := NewGroup()
	g.Datum = 5
	s := NewSector()
	g.AddChild(s)
	assert.Equal(t, 5, DatumOf(s))
	s.Datum = 6
	assert.Equal(t, 6, DatumOf(s))
}
