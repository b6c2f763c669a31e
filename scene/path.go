// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"
	"strconv"
	"strings"
)

// PathOps are the kinds of [PathOp].
type PathOps uint8

const (
	MoveTo PathOps = iota
	LineTo
	ClosePath
)

// PathOp is a single path command.
type PathOp struct {
	Op   PathOps
	X, Y float64
}

// Path is an outline made of straight segments, which is how shapes
// are handed to renderers. Arcs are flattened on construction.
type Path struct {
	Ops []PathOp
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) { p.Ops = append(p.Ops, PathOp{MoveTo, x, y}) }

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) { p.Ops = append(p.Ops, PathOp{LineTo, x, y}) }

// Close closes the current subpath.
func (p *Path) Close() { p.Ops = append(p.Ops, PathOp{Op: ClosePath}) }

// Arc adds segments along the circle of radius r centered at (cx, cy),
// from angle a0 to a1 in radians, measured clockwise from the positive
// x axis in screen coordinates. It starts with a LineTo, or a MoveTo
// if the path is empty.
func (p *Path) Arc(cx, cy, r, a0, a1 float64) {
	n := int(math.Ceil(math.Abs(a1-a0) / (math.Pi / 32)))
	n = max(n, 1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 && len(p.Ops) == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
}

// Rect adds a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// SVG returns the path as SVG path data.
func (p *Path) SVG() string {
	var sb strings.Builder
	for i, op := range p.Ops {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch op.Op {
		case MoveTo:
			sb.WriteString("M")
		case LineTo:
			sb.WriteString("L")
		case ClosePath:
			sb.WriteString("Z")
			continue
		}
		sb.WriteString(formatFloat(op.X))
		sb.WriteByte(',')
		sb.WriteString(formatFloat(op.Y))
	}
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}
