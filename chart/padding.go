// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Padding is the space on each side of a box.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// NewPadding returns padding with all sides set to v.
func NewPadding(v float64) Padding {
	return Padding{v, v, v, v}
}

// Size is a width and height.
type Size struct {
	Width, Height float64
}
