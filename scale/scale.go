// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values onto pixel ranges: continuous
// linear, logarithmic, and time scales, a categorical band scale,
// and a color scale.
package scale

import (
	"math"

	"cogentcore.org/chart/data"
)

// Scale maps values of a domain onto a pixel range.
type Scale interface {
	// Convert maps the value to a pixel position, returning NaN
	// for values outside the scale's domain type.
	Convert(v data.Value) float64

	// Domain returns the domain. For continuous scales
	// it is the two end values.
	Domain() []data.Value

	// SetDomain sets the domain.
	SetDomain(d []data.Value)

	// Range returns the pixel range.
	Range() [2]float64

	// SetRange sets the pixel range. It may be reversed.
	SetRange(r0, r1 float64)

	// Bandwidth returns the width of a category band,
	// which is zero for continuous scales.
	Bandwidth() float64

	// Ticks returns about count values suitable for axis ticks.
	Ticks(count int) []data.Value
}

// Continuous is a [Scale] over a numeric domain.
type Continuous interface {
	Scale

	// Invert maps a pixel position back to a domain number.
	Invert(px float64) float64

	// SetClamp sets whether conversions are clamped to the range.
	SetClamp(clamp bool)

	// Nice extends the domain to round tick values.
	Nice(count int)
}

// IsContinuous returns whether the scale is [Continuous].
func IsContinuous(s Scale) bool {
	_, ok := s.(Continuous)
	return ok
}

// ConvertClamped converts the value, clamping the result to the range
// if the scale is continuous.
func ConvertClamped(s Scale, v data.Value) float64 {
	px := s.Convert(v)
	if !IsContinuous(s) || math.IsNaN(px) {
		return px
	}
	r := s.Range()
	lo, hi := math.Min(r[0], r[1]), math.Max(r[0], r[1])
	return math.Max(lo, math.Min(hi, px))
}

// InRange returns whether a span of the given width starting at px
// overlaps the range of the scale.
func InRange(s Scale, px, width float64) bool {
	r := s.Range()
	lo, hi := math.Min(r[0], r[1]), math.Max(r[0], r[1])
	return px+width >= lo && px <= hi
}

// rangeBase holds a pixel range.
type rangeBase struct {
	rng [2]float64
}

func (r *rangeBase) Range() [2]float64 { return r.rng }

func (r *rangeBase) SetRange(r0, r1 float64) { r.rng = [2]float64{r0, r1} }

func (r *rangeBase) interpolate(t float64) float64 {
	return r.rng[0] + t*(r.rng[1]-r.rng[0])
}

func (r *rangeBase) normalize(px float64) float64 {
	d := r.rng[1] - r.rng[0]
	if d == 0 {
		return 0.5
	}
	return (px - r.rng[0]) / d
}
