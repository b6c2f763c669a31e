// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestValue(t *testing.T) {
	assert.True(t, Value{}.IsNull())
	assert.Equal(t, 3.5, NumberValue(3.5).Num())
	assert.True(t, math.IsNaN(StringValue("abc").Num()))
	assert.Equal(t, 12.0, StringValue("12").Num())
	assert.Equal(t, "12", NumberValue(12).Str())
	assert.Equal(t, 1.0, BoolValue(true).Num())

	tm := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, float64(tm.UnixMilli()), TimeValue(tm).Num())
	assert.True(t, TimeValue(tm).IsFinite())
	assert.False(t, NumberValue(math.Inf(1)).IsFinite())
	assert.False(t, StringValue("1").IsFinite())

	assert.True(t, NumberValue(math.NaN()).Equal(NumberValue(math.NaN())))
	assert.False(t, NumberValue(1).Equal(StringValue("1")))
	assert.Equal(t, "list", List.String())
}

func TestValueOf(t *testing.T) {
	assert.Equal(t, Number, ValueOf(3).Kind())
	assert.Equal(t, Number, ValueOf(uint8(3)).Kind())
	assert.Equal(t, String, ValueOf("x").Kind())
	assert.Equal(t, Null, ValueOf(nil).Kind())
	v := ValueOf([]any{map[string]any{"a": 1.0}, "skip"})
	assert.Equal(t, List, v.Kind())
	assert.Len(t, v.Rows(), 1)
}

func TestSameRow(t *testing.T) {
	a := RowOf(map[string]any{"x": 1})
	b := RowOf(map[string]any{"x": 1})
	assert.True(t, SameRow(a, a))
	assert.False(t, SameRow(a, b))
	assert.True(t, SameRow(nil, nil))
}

func TestExtent(t *testing.T) {
	min, max, ok := Extent(Values(3, "x", nil, -2, 10, math.NaN()))
	assert.True(t, ok)
	assert.Equal(t, -2.0, min)
	assert.Equal(t, 10.0, max)

	_, _, ok = Extent(Values("a", "b"))
	assert.False(t, ok)

	assert.True(t, Continuous(Values(1, nil, 2)))
	assert.False(t, Continuous(Values(1, "a")))
	assert.False(t, Continuous(Values(nil)))
	assert.Equal(t, Values("a", "b"), Unique(Values("a", "b", "a")))
}

func TestReadJSON(t *testing.T) {
	rows, err := ReadJSON(strings.NewReader(`[{"q":"Q1","v":140},{"q":"Q2","v":null,"children":[{"v":1}]}]`))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Q1", rows[0].Get("q").Str())
	assert.Equal(t, 140.0, rows[0].Get("v").Num())
	assert.True(t, rows[1].Get("v").IsNull())
	assert.Len(t, rows[1].Children(), 1)

	_, err = ReadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("q,v,ok,day\nQ1,140,true,2024-01-02\nQ2,,false\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Number, rows[0].Get("v").Kind())
	assert.Equal(t, Bool, rows[0].Get("ok").Kind())
	assert.Equal(t, Time, rows[0].Get("day").Kind())
	assert.True(t, rows[1].Get("v").IsNull())
	assert.True(t, rows[1].Has("day"))
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "q")
	f.SetCellValue(sheet, "B1", "v")
	f.SetCellValue(sheet, "A2", "Q1")
	f.SetCellValue(sheet, "B2", 140)
	f.SetCellValue(sheet, "A3", "Q2")
	f.SetCellValue(sheet, "B3", 200.5)
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	rows, err := ReadXLSX(&buf, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Q2", rows[1].Get("q").Str())
	assert.Equal(t, 200.5, rows[1].Get("v").Num())
}
