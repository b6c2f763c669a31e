// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"cogentcore.org/chart/data"
)

// FixNumericExtent returns a usable [min, max] domain for the given
// extent. A nil or empty extent gives [0, 1]. A zero length extent
// is padded by 1% of its value on each side, so [0, 0] stays as is.
// A non-finite extent gives [0, 1].
func FixNumericExtent(extent []float64) [2]float64 {
	if len(extent) == 0 {
		return [2]float64{0, 1}
	}
	lo, hi := extent[0], extent[len(extent)-1]
	if lo == hi {
		pad := math.Abs(lo * 0.01)
		lo -= pad
		hi += pad
	}
	if !isFinite(lo) || !isFinite(hi) {
		return [2]float64{0, 1}
	}
	return [2]float64{lo, hi}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NumericDomain returns the extent of the finite numbers among
// the values as a two value domain, or nil if there are none.
func NumericDomain(vs []data.Value) []data.Value {
	lo, hi, ok := data.Extent(vs)
	if !ok {
		return nil
	}
	return data.Numbers(lo, hi)
}
