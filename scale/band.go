// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"cogentcore.org/chart/data"
)

// Band is a categorical [Scale] dividing its range into one band
// per domain value. Values are identified by their string form.
type Band struct {
	rangeBase
	domain       []data.Value
	index        map[string]int
	paddingInner float64
	paddingOuter float64
	round        bool

	step      float64
	bandwidth float64
	starts    []float64
}

// NewBand returns a new band scale with an empty domain
// and range [0, 1].
func NewBand() *Band {
	b := &Band{}
	b.SetRange(0, 1)
	return b
}

func (b *Band) Domain() []data.Value { return b.domain }

// SetDomain sets the categories, dropping duplicates.
func (b *Band) SetDomain(d []data.Value) {
	b.domain = data.Unique(d)
	b.index = make(map[string]int, len(b.domain))
	for i, v := range b.domain {
		b.index[v.Str()] = i
	}
	b.rescale()
}

func (b *Band) SetRange(r0, r1 float64) {
	b.rangeBase.SetRange(r0, r1)
	b.rescale()
}

// SetPadding sets both the inner and outer padding,
// as fractions of the step.
func (b *Band) SetPadding(p float64) {
	b.paddingInner, b.paddingOuter = p, p
	b.rescale()
}

// SetPaddingInner sets the padding between bands.
func (b *Band) SetPaddingInner(p float64) {
	b.paddingInner = p
	b.rescale()
}

// SetPaddingOuter sets the padding before the first
// and after the last band.
func (b *Band) SetPaddingOuter(p float64) {
	b.paddingOuter = p
	b.rescale()
}

// SetRound sets whether band positions and widths are rounded
// to whole pixels.
func (b *Band) SetRound(round bool) {
	b.round = round
	b.rescale()
}

func (b *Band) rescale() {
	n := float64(len(b.domain))
	r0, r1 := b.rng[0], b.rng[1]
	reverse := r1 < r0
	start, stop := r0, r1
	if reverse {
		start, stop = r1, r0
	}
	b.step = (stop - start) / math.Max(1, n-b.paddingInner+b.paddingOuter*2)
	if b.round {
		b.step = math.Floor(b.step)
	}
	start += (stop - start - b.step*(n-b.paddingInner)) * 0.5
	b.bandwidth = b.step * (1 - b.paddingInner)
	if b.round {
		start = math.Round(start)
		b.bandwidth = math.Round(b.bandwidth)
	}
	b.starts = make([]float64, len(b.domain))
	for i := range b.starts {
		b.starts[i] = start + b.step*float64(i)
	}
	if reverse {
		for i, j := 0, len(b.starts)-1; i < j; i, j = i+1, j-1 {
			b.starts[i], b.starts[j] = b.starts[j], b.starts[i]
		}
	}
}

// Convert returns the start of the value's band,
// or NaN if the value is not in the domain.
func (b *Band) Convert(v data.Value) float64 {
	i, ok := b.index[v.Str()]
	if !ok {
		return math.NaN()
	}
	return b.starts[i]
}

func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Ticks returns the domain.
func (b *Band) Ticks(count int) []data.Value { return b.domain }
