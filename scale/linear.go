// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"cogentcore.org/chart/base/logx"
	"cogentcore.org/chart/data"
)

// Linear is a linear [Continuous] scale.
type Linear struct {
	rangeBase
	s scale.Linear
}

// NewLinear returns a linear scale with domain and range [0, 1].
func NewLinear() *Linear {
	l := &Linear{s: scale.Linear{Min: 0, Max: 1}}
	l.SetRange(0, 1)
	return l
}

func (l *Linear) Domain() []data.Value { return data.Numbers(l.s.Min, l.s.Max) }

// SetDomain sets the domain from the first and last values,
// which are converted to numbers.
func (l *Linear) SetDomain(d []data.Value) {
	if len(d) == 0 {
		return
	}
	l.s.Min, l.s.Max = d[0].Num(), d[len(d)-1].Num()
}

func (l *Linear) Bandwidth() float64 { return 0 }

func (l *Linear) SetClamp(clamp bool) { l.s.Clamp = clamp }

func (l *Linear) Convert(v data.Value) float64 {
	x := v.Num()
	if math.IsNaN(x) {
		return math.NaN()
	}
	return l.interpolate(l.s.Map(x))
}

func (l *Linear) Invert(px float64) float64 {
	return l.s.Unmap(l.normalize(px))
}

// ordered returns the scale with Min <= Max.
func (l *Linear) ordered() scale.Linear {
	s := l.s
	if s.Min > s.Max {
		s.Min, s.Max = s.Max, s.Min
	}
	return s
}

func (l *Linear) tickValues(count int) []float64 {
	s := l.ordered()
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return nil
	}
	if s.Min == s.Max {
		return []float64{s.Min}
	}
	major, _ := s.Ticks(scale.TickOptions{Max: max(count, 1)})
	return major
}

func (l *Linear) Ticks(count int) []data.Value {
	return data.Numbers(l.tickValues(count)...)
}

func (l *Linear) Nice(count int) {
	s := l.ordered()
	if s.Min == s.Max || math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return
	}
	s.Nice(scale.TickOptions{Max: max(count, 1)})
	if l.s.Min > l.s.Max {
		s.Min, s.Max = s.Max, s.Min
	}
	l.s.Min, l.s.Max = s.Min, s.Max
}

// Time is a linear scale over times, whose domain and ticks
// are time values.
type Time struct {
	Linear
}

// NewTime returns a new time scale.
func NewTime() *Time {
	t := &Time{Linear: *NewLinear()}
	return t
}

func (t *Time) Domain() []data.Value {
	return timeValues(t.s.Min, t.s.Max)
}

func (t *Time) Ticks(count int) []data.Value {
	return timeValues(t.tickValues(count)...)
}

func timeValues(ms ...float64) []data.Value {
	vs := make([]data.Value, len(ms))
	for i, m := range ms {
		vs[i] = data.TimeValue(data.NumberValue(m).Time())
	}
	return vs
}

// Log is a logarithmic [Continuous] scale. Its domain must be
// strictly positive; otherwise it maps linearly.
type Log struct {
	rangeBase
	base  int
	lin   *Linear
	s     scale.Log
	ok    bool
	clamp bool
}

// NewLog returns a logarithmic scale of the given base
// with domain [1, 10] and range [0, 1].
func NewLog(base int) *Log {
	l := &Log{base: base, lin: NewLinear()}
	l.SetRange(0, 1)
	l.SetDomain(data.Numbers(1, 10))
	return l
}

func (l *Log) SetRange(r0, r1 float64) {
	l.rangeBase.SetRange(r0, r1)
	l.lin.SetRange(r0, r1)
}

func (l *Log) Bandwidth() float64 { return 0 }

func (l *Log) Domain() []data.Value { return l.lin.Domain() }

func (l *Log) SetDomain(d []data.Value) {
	l.lin.SetDomain(d)
	lo, hi := l.lin.s.Min, l.lin.s.Max
	s, err := scale.NewLog(math.Min(lo, hi), math.Max(lo, hi), l.base)
	l.ok = err == nil
	if !l.ok {
		logx.WarnOnce("scale.Log.domain", "log scale domain must be positive, mapping linearly", "min", lo, "max", hi)
		return
	}
	l.s = s
}

func (l *Log) SetClamp(clamp bool) {
	l.lin.SetClamp(clamp)
	l.clamp = clamp
}

// reversed returns whether the domain runs from high to low.
func (l *Log) reversed() bool { return l.lin.s.Min > l.lin.s.Max }

func (l *Log) Convert(v data.Value) float64 {
	if !l.ok {
		return l.lin.Convert(v)
	}
	x := v.Num()
	if math.IsNaN(x) || x <= 0 {
		return math.NaN()
	}
	t := l.s.Map(x)
	if l.clamp {
		t = math.Max(0, math.Min(1, t))
	}
	if l.reversed() {
		t = 1 - t
	}
	return l.interpolate(t)
}

func (l *Log) Invert(px float64) float64 {
	if !l.ok {
		return l.lin.Invert(px)
	}
	t := l.normalize(px)
	if l.reversed() {
		t = 1 - t
	}
	lo, hi := math.Log(l.s.Min), math.Log(l.s.Max)
	return math.Exp(lo + t*(hi-lo))
}

func (l *Log) Ticks(count int) []data.Value {
	if !l.ok {
		return l.lin.Ticks(count)
	}
	major, _ := l.s.Ticks(scale.TickOptions{Max: max(count, 1)})
	return data.Numbers(major...)
}

func (l *Log) Nice(count int) {
	if !l.ok {
		l.lin.Nice(count)
		return
	}
	l.s.Nice(scale.TickOptions{Max: max(count, 1)})
	if l.reversed() {
		l.lin.s.Min, l.lin.s.Max = l.s.Max, l.s.Min
	} else {
		l.lin.s.Min, l.lin.s.Max = l.s.Min, l.s.Max
	}
}
