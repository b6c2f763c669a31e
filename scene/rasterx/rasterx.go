// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterx renders a scene graph into an image.
package rasterx

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/scene"
)

// Render draws the scene into a new image of the scene's size.
func Render(s *scene.Scene) *image.RGBA {
	w, h := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if s.Background != "" {
		bg := colors.LogFromString(s.Background, nil)
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	r := &renderer{img: img}
	r.node(s.Root, 0, 0, 1)
	return img
}

// WritePNG renders the scene and encodes it as PNG.
func WritePNG(w io.Writer, s *scene.Scene) error {
	return png.Encode(w, Render(s))
}

type renderer struct {
	img *image.RGBA
}

func (r *renderer) node(n scene.Node, ox, oy, opacity float64) {
	nb := n.AsNode()
	if !nb.Visible {
		return
	}
	ox += nb.TranslationX
	oy += nb.TranslationY
	opacity *= nb.Opacity
	switch n := n.(type) {
	case *scene.Text:
		r.text(n, ox, oy, opacity)
	case scene.Shape:
		r.shape(n, ox, oy, opacity)
	}
	for _, k := range nb.SortedChildren() {
		r.node(k, ox, oy, opacity)
	}
}

func (r *renderer) paint(c string, opacity float64) (color.Color, bool) {
	if c == "" {
		return nil, false
	}
	nc, err := colors.FromString(c, nil)
	if err != nil {
		return nil, false
	}
	nc = colors.ApplyOpacity(nc, opacity)
	return nc, nc.A > 0
}

func (r *renderer) fill(p *scene.Path, ox, oy float64, c color.Color) {
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	open := false
	for _, op := range p.Ops {
		x, y := float32(op.X+ox), float32(op.Y+oy)
		switch op.Op {
		case scene.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(x, y)
			open = true
		case scene.LineTo:
			z.LineTo(x, y)
		case scene.ClosePath:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// strokePath returns the outline of the stroke of p with the given
// width, as one quad per segment.
func strokePath(p *scene.Path, width float64) *scene.Path {
	sp := &scene.Path{}
	hw := width / 2
	var sx, sy, cx, cy float64
	seg := func(x0, y0, x1, y1 float64) {
		dx, dy := x1-x0, y1-y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			return
		}
		nx, ny := -dy/l*hw, dx/l*hw
		sp.MoveTo(x0+nx, y0+ny)
		sp.LineTo(x1+nx, y1+ny)
		sp.LineTo(x1-nx, y1-ny)
		sp.LineTo(x0-nx, y0-ny)
		sp.Close()
	}
	for _, op := range p.Ops {
		switch op.Op {
		case scene.MoveTo:
			sx, sy, cx, cy = op.X, op.Y, op.X, op.Y
		case scene.LineTo:
			seg(cx, cy, op.X, op.Y)
			cx, cy = op.X, op.Y
		case scene.ClosePath:
			seg(cx, cy, sx, sy)
			cx, cy = sx, sy
		}
	}
	return sp
}

func (r *renderer) shape(s scene.Shape, ox, oy, opacity float64) {
	sb := s.AsShape()
	p := s.Outline()
	_, isLine := s.(*scene.Line)
	if !isLine {
		if sh := sb.Paint.Shadow; sh != nil {
			if c, ok := r.paint(sh.Color, opacity); ok {
				r.fill(p, ox+sh.XOffset, oy+sh.YOffset, c)
			}
		}
		if c, ok := r.paint(sb.Paint.Fill, opacity*sb.Paint.FillOpacity); ok {
			r.fill(p, ox, oy, c)
		}
	}
	if sb.Paint.StrokeWidth > 0 {
		if c, ok := r.paint(sb.Paint.Stroke, opacity*sb.Paint.StrokeOpacity); ok {
			r.fill(strokePath(p, sb.Paint.StrokeWidth), ox, oy, c)
		}
	}
}

func (r *renderer) text(t *scene.Text, ox, oy, opacity float64) {
	if t.Text == "" {
		return
	}
	c, ok := r.paint(t.Paint.Fill, opacity*t.Paint.FillOpacity)
	if !ok {
		return
	}
	x, y := t.Origin()
	m := scene.MeasureText(t.Text, t.Font)
	x += ox
	y += oy + m.Ascent
	scene.WithFace(t.Font, func(fc font.Face) {
		d := &font.Drawer{
			Dst:  r.img,
			Src:  image.NewUniform(c),
			Face: fc,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
		}
		d.DrawString(t.Text)
	})
}
