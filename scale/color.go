// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"

	"cogentcore.org/chart/colors"
)

// Color maps numbers onto colors, interpolating in the Lab color
// space between the range colors placed at the domain stops.
// Numbers outside the domain get the color of the nearest end.
type Color struct {
	// Domain are the increasing stops.
	Domain []float64

	// Range are the CSS colors at each stop.
	Range []string
}

// Convert returns the CSS color for the given number.
func (c *Color) Convert(x float64) string {
	n := min(len(c.Domain), len(c.Range))
	if n == 0 {
		return ""
	}
	if n == 1 || math.IsNaN(x) || x <= c.Domain[0] {
		return c.Range[0]
	}
	if x >= c.Domain[n-1] {
		return c.Range[n-1]
	}
	i := sort.SearchFloat64s(c.Domain[:n], x)
	lo, hi := c.Domain[i-1], c.Domain[i]
	t := (x - lo) / (hi - lo)
	a := colors.LogFromString(c.Range[i-1], nil)
	b := colors.LogFromString(c.Range[i], nil)
	return colors.AsCSS(colors.Blend(t*100, a, b))
}
