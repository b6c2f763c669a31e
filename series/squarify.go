// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import "math"

// phi is the aspect ratio the squarified layout aims for.
var phi = (1 + math.Sqrt(5)) / 2

// treemapPadding returns the space between the edges of a parent
// node and its children, after the rect of the node is set.
type treemapPadding func(n *TreemapNodeDatum) (top, right, bottom, left float64)

// layoutTreemap sets the rects of the root and all of its descendants,
// filling the given width and height. Each parent lays out its children
// inside its rect less its padding, in rows of nodes whose aspect
// ratios are as close to the golden ratio as possible.
func layoutTreemap(root *TreemapNodeDatum, width, height float64, padding treemapPadding) {
	root.X0, root.Y0, root.X1, root.Y1 = 0, 0, width, height
	var position func(n *TreemapNodeDatum)
	position = func(n *TreemapNodeDatum) {
		if n.X1 < n.X0 {
			n.X0 = (n.X0 + n.X1) / 2
			n.X1 = n.X0
		}
		if n.Y1 < n.Y0 {
			n.Y0 = (n.Y0 + n.Y1) / 2
			n.Y1 = n.Y0
		}
		if len(n.Children) == 0 {
			return
		}
		top, right, bottom, left := padding(n)
		x0, y0, x1, y1 := n.X0+left, n.Y0+top, n.X1-right, n.Y1-bottom
		if x1 < x0 {
			x0 = (x0 + x1) / 2
			x1 = x0
		}
		if y1 < y0 {
			y0 = (y0 + y1) / 2
			y1 = y0
		}
		squarify(n, x0, y0, x1, y1)
		for _, c := range n.Children {
			position(c)
		}
	}
	position(root)
}

// squarify lays out the children of the parent in the rect.
func squarify(parent *TreemapNodeDatum, x0, y0, x1, y1 float64) {
	nodes := parent.Children
	value := parent.Value
	n := len(nodes)
	i0, i1 := 0, 0
	for i0 < n {
		dx, dy := x1-x0, y1-y0

		// the next non-empty node starts the row
		sum := nodes[i1].Value
		i1++
		for sum == 0 && i1 < n {
			sum = nodes[i1].Value
			i1++
		}
		minV, maxV := sum, sum
		alpha := math.Max(dy/dx, dx/dy) / (value * phi)
		beta := sum * sum * alpha
		minRatio := math.Max(maxV/beta, beta/minV)

		// add nodes while the worst aspect ratio improves
		for ; i1 < n; i1++ {
			v := nodes[i1].Value
			sum += v
			minV, maxV = math.Min(minV, v), math.Max(maxV, v)
			beta = sum * sum * alpha
			ratio := math.Max(maxV/beta, beta/minV)
			if ratio > minRatio {
				sum -= v
				break
			}
			minRatio = ratio
		}

		row := nodes[i0:i1]
		if dx < dy {
			y := y1
			if value != 0 {
				y = y0 + dy*sum/value
			}
			dice(row, sum, x0, y0, x1, y)
			y0 = y
		} else {
			x := x1
			if value != 0 {
				x = x0 + dx*sum/value
			}
			slice(row, sum, x0, y0, x, y1)
			x0 = x
		}
		value -= sum
		i0 = i1
	}
}

// dice lays out the nodes left to right across the rect.
func dice(nodes []*TreemapNodeDatum, value, x0, y0, x1, y1 float64) {
	k := 0.0
	if value != 0 {
		k = (x1 - x0) / value
	}
	for _, n := range nodes {
		n.Y0, n.Y1 = y0, y1
		n.X0 = x0
		x0 += n.Value * k
		n.X1 = x0
	}
}

// slice lays out the nodes top to bottom down the rect.
func slice(nodes []*TreemapNodeDatum, value, x0, y0, x1, y1 float64) {
	k := 0.0
	if value != 0 {
		k = (y1 - y0) / value
	}
	for _, n := range nodes {
		n.X0, n.X1 = x0, x1
		n.Y0 = y0
		y0 += n.Value * k
		n.Y1 = y0
	}
}
