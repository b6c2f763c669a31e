// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/chart/data"
)

func TestLinear(t *testing.T) {
	l := NewLinear()
	l.SetDomain(data.Numbers(0, 100))
	l.SetRange(200, 0)
	assert.Equal(t, 200.0, l.Convert(data.NumberValue(0)))
	assert.Equal(t, 100.0, l.Convert(data.NumberValue(50)))
	assert.Equal(t, -200.0, l.Convert(data.NumberValue(200)))
	assert.True(t, math.IsNaN(l.Convert(data.StringValue("x"))))
	assert.InDelta(t, 25, l.Invert(150), 1e-9)
	assert.Equal(t, 0.0, ConvertClamped(l, data.NumberValue(200)))
	assert.Equal(t, 0.0, l.Bandwidth())
	assert.True(t, IsContinuous(l))

	ticks := l.Ticks(5)
	assert.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 5)
	assert.Equal(t, 0.0, ticks[0].Num())
	assert.Equal(t, 100.0, ticks[len(ticks)-1].Num())

	l.SetDomain(data.Numbers(0.3, 9.7))
	l.Nice(10)
	assert.Equal(t, []data.Value{data.NumberValue(0), data.NumberValue(10)}, l.Domain())

	l.SetDomain(data.Numbers(5, 5))
	assert.Equal(t, 100.0, l.Convert(data.NumberValue(5)))
	assert.Len(t, l.Ticks(5), 1)
}

func TestInRange(t *testing.T) {
	l := NewLinear()
	l.SetRange(0, 100)
	assert.True(t, InRange(l, 50, 0))
	assert.True(t, InRange(l, -5, 10))
	assert.False(t, InRange(l, -20, 10))
	assert.False(t, InRange(l, 101, 10))
}

func TestTime(t *testing.T) {
	s := NewTime()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(24 * time.Hour)
	s.SetDomain([]data.Value{data.TimeValue(t0), data.TimeValue(t1)})
	s.SetRange(0, 100)
	assert.InDelta(t, 50, s.Convert(data.TimeValue(t0.Add(12*time.Hour))), 1e-9)
	assert.Equal(t, data.Time, s.Domain()[0].Kind())
	for _, tk := range s.Ticks(4) {
		assert.Equal(t, data.Time, tk.Kind())
	}
}

func TestLog(t *testing.T) {
	l := NewLog(10)
	l.SetDomain(data.Numbers(1, 1000))
	l.SetRange(0, 300)
	assert.InDelta(t, 0, l.Convert(data.NumberValue(1)), 1e-9)
	assert.InDelta(t, 100, l.Convert(data.NumberValue(10)), 1e-9)
	assert.InDelta(t, 300, l.Convert(data.NumberValue(1000)), 1e-9)
	assert.InDelta(t, 100, l.Invert(200), 1e-6)
	assert.True(t, math.IsNaN(l.Convert(data.NumberValue(-1))))
	assert.NotEmpty(t, l.Ticks(5))

	l.SetDomain(data.Numbers(0, 10))
	assert.InDelta(t, 150, l.Convert(data.NumberValue(5)), 1e-9)
}

func TestBand(t *testing.T) {
	b := NewBand()
	b.SetDomain(data.Values("Q1", "Q2", "Q3", "Q4", "Q2"))
	b.SetRange(0, 400)
	assert.Len(t, b.Domain(), 4)
	assert.Equal(t, 100.0, b.Bandwidth())
	assert.Equal(t, 0.0, b.Convert(data.StringValue("Q1")))
	assert.Equal(t, 300.0, b.Convert(data.StringValue("Q4")))
	assert.True(t, math.IsNaN(b.Convert(data.StringValue("Q5"))))
	assert.False(t, IsContinuous(b))

	b.SetPaddingInner(0.2)
	b.SetPaddingOuter(0.1)
	step := 400 / (4 - 0.2 + 0.2)
	assert.InDelta(t, step, b.Step(), 1e-9)
	assert.InDelta(t, step*0.8, b.Bandwidth(), 1e-9)
	first := b.Convert(data.StringValue("Q1"))
	last := b.Convert(data.StringValue("Q4"))
	assert.InDelta(t, 400, last+b.Bandwidth()+first, 1e-9, "outer padding is symmetric")

	b.SetRange(400, 0)
	assert.Greater(t, b.Convert(data.StringValue("Q1")), b.Convert(data.StringValue("Q4")))

	b.SetRange(0, 401)
	b.SetPadding(0)
	b.SetRound(true)
	assert.Equal(t, 100.0, b.Bandwidth())
}

func TestColor(t *testing.T) {
	c := &Color{Domain: []float64{-5, 5}, Range: []string{"#cb4b3f", "#6acb64"}}
	assert.Equal(t, "#cb4b3f", c.Convert(-10))
	assert.Equal(t, "#6acb64", c.Convert(5))
	mid := c.Convert(0)
	assert.NotEqual(t, "#cb4b3f", mid)
	assert.NotEqual(t, "#6acb64", mid)
	assert.Equal(t, "", (&Color{}).Convert(1))
}
