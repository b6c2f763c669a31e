// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"
)

// BBox is an axis-aligned bounding box.
type BBox struct {
	X, Y, Width, Height float64
}

// IsValid returns whether the box has finite coordinates
// and non-negative size.
func (b BBox) IsValid() bool {
	for _, v := range [...]float64{b.X, b.Y, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Width >= 0 && b.Height >= 0
}

// ContainsPoint returns whether the point is inside the box,
// including its edges.
func (b BBox) ContainsPoint(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(o BBox) BBox {
	x0 := math.Min(b.X, o.X)
	y0 := math.Min(b.Y, o.Y)
	x1 := math.Max(b.X+b.Width, o.X+o.Width)
	y1 := math.Max(b.Y+b.Height, o.Y+o.Height)
	return BBox{x0, y0, x1 - x0, y1 - y0}
}

// Translate returns the box offset by the given amounts.
func (b BBox) Translate(dx, dy float64) BBox {
	return BBox{b.X + dx, b.Y + dy, b.Width, b.Height}
}

// Shrink returns the box with the given amount removed from each side,
// never going below zero size.
func (b BBox) Shrink(top, right, bottom, left float64) BBox {
	b.X += left
	b.Y += top
	b.Width = math.Max(0, b.Width-left-right)
	b.Height = math.Max(0, b.Height-top-bottom)
	return b
}

// ComputeBBox returns the bounding box of the node in its
// parent's coordinates.
func ComputeBBox(n Node) BBox {
	nb := n.AsNode()
	return n.LocalBBox().Translate(nb.TranslationX, nb.TranslationY)
}
