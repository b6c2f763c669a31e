// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"cogentcore.org/chart/data"
)

var (
	printerMu sync.Mutex
	printer   = message.NewPrinter(language.English)
)

// SetLocale sets the language used to format numbers.
func SetLocale(tag language.Tag) {
	printerMu.Lock()
	defer printerMu.Unlock()
	printer = message.NewPrinter(tag)
}

// FormatNumber formats the number with digit grouping and at most
// the given number of fraction digits.
func FormatNumber(f float64, digits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return data.NumberValue(f).Str()
	}
	printerMu.Lock()
	defer printerMu.Unlock()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(max(digits, 0))))
}

// FormatValue formats a value for display: numbers with
// [FormatNumber] and at most two fraction digits, and times
// as dates, or date times if they are not at midnight.
func FormatValue(v data.Value) string {
	switch v.Kind() {
	case data.Number:
		return FormatNumber(v.Num(), 2)
	case data.Time:
		return formatTime(v.Time(), 0)
	}
	return v.Str()
}

// stepDigits returns the number of fraction digits needed
// to tell apart values the given step apart.
func stepDigits(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 2
	}
	return max(0, int(-math.Floor(math.Log10(step))))
}

// formatTime formats the time with a precision suited to the
// span of the times being shown, in milliseconds; zero means unknown.
func formatTime(t time.Time, span float64) string {
	t = t.UTC()
	switch {
	case span > 0 && span < float64(time.Minute/time.Millisecond):
		return t.Format("15:04:05")
	case span > 0 && span < 2*float64(24*time.Hour/time.Millisecond):
		return t.Format("15:04")
	case t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0:
		return t.Format(time.DateOnly)
	}
	return t.Format("2006-01-02 15:04")
}
