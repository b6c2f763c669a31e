// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data provides the dynamically typed records that chart
// series read their values from, and loaders producing them from
// JSON, CSV, and spreadsheet files.
package data

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Kinds are the kinds of [Value].
type Kinds uint8

const (
	// Null is a missing or undefined value.
	Null Kinds = iota

	// Number is a float64 value, which may be NaN or infinite.
	Number

	// String is a string value.
	String

	// Bool is a boolean value.
	Bool

	// Time is a time value, which converts to a number
	// in milliseconds since the Unix epoch.
	Time

	// List is a list of child rows, used for hierarchical data.
	List
)

var kindNames = [...]string{"null", "number", "string", "bool", "time", "list"}

func (k Kinds) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kinds(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single dynamically typed value read from a [Row].
// The zero Value is [Null].
type Value struct {
	kind Kinds
	num  float64
	str  string
	t    time.Time
	rows []Row
}

// NumberValue returns a [Number] value.
func NumberValue(f float64) Value { return Value{kind: Number, num: f} }

// StringValue returns a [String] value.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// BoolValue returns a [Bool] value.
func BoolValue(b bool) Value {
	v := Value{kind: Bool}
	if b {
		v.num = 1
	}
	return v
}

// TimeValue returns a [Time] value.
func TimeValue(t time.Time) Value { return Value{kind: Time, t: t} }

// ListValue returns a [List] value holding the given child rows.
func ListValue(rows []Row) Value { return Value{kind: List, rows: rows} }

// Kind returns the kind of the value.
func (v Value) Kind() Kinds { return v.kind }

// IsNull returns whether the value is [Null].
func (v Value) IsNull() bool { return v.kind == Null }

// Float returns the numeric form of the value, and whether it has one.
// Numbers and bools convert directly, times convert to milliseconds
// since the Unix epoch, and strings are parsed. Everything else
// returns NaN and false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case Number, Bool:
		return v.num, true
	case Time:
		return float64(v.t.UnixMilli()), true
	case String:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return math.NaN(), false
		}
		return f, true
	}
	return math.NaN(), false
}

// Num returns the numeric form of the value, or NaN if it has none.
func (v Value) Num() float64 {
	f, _ := v.Float()
	return f
}

// IsFinite returns whether the value is a number or time
// with a finite numeric form.
func (v Value) IsFinite() bool {
	if v.kind != Number && v.kind != Time {
		return false
	}
	f := v.Num()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Str returns the string form of the value. Null is the empty string.
func (v Value) Str() string {
	switch v.kind {
	case Null:
		return ""
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case String:
		return v.str
	case Bool:
		return strconv.FormatBool(v.num != 0)
	case Time:
		return v.t.Format(time.RFC3339)
	case List:
		return fmt.Sprintf("[%d rows]", len(v.rows))
	}
	return ""
}

// String implements [fmt.Stringer].
func (v Value) String() string { return v.Str() }

// Time returns the time of a [Time] value, or the time corresponding
// to the value as milliseconds since the Unix epoch.
func (v Value) Time() time.Time {
	if v.kind == Time {
		return v.t
	}
	return time.UnixMilli(int64(v.Num()))
}

// Rows returns the child rows of a [List] value.
func (v Value) Rows() []Row { return v.rows }

// Bool returns whether the value is truthy: a non-zero number,
// a true bool, a non-empty string, a time, or a list.
func (v Value) Bool() bool {
	switch v.kind {
	case Number, Bool:
		return v.num != 0 && !math.IsNaN(v.num)
	case String:
		return v.str != ""
	case Time, List:
		return true
	}
	return false
}

// Equal returns whether the two values are of the same kind and
// hold equal contents. Lists are equal only when they share the same
// backing rows.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Number, Bool:
		return v.num == o.num || (math.IsNaN(v.num) && math.IsNaN(o.num))
	case String:
		return v.str == o.str
	case Time:
		return v.t.Equal(o.t)
	case List:
		return len(v.rows) == len(o.rows) && (len(v.rows) == 0 || &v.rows[0] == &o.rows[0])
	}
	return false
}

// ValueOf converts a Go value into a [Value]. It accepts the types
// produced by decoding JSON into an any, all numeric types, strings,
// bools, [time.Time], rows and slices of rows or maps.
func ValueOf(x any) Value {
	switch x := x.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case float64:
		return NumberValue(x)
	case float32:
		return NumberValue(float64(x))
	case int:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case int32:
		return NumberValue(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return StringValue(x.String())
		}
		return NumberValue(f)
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case time.Time:
		return TimeValue(x)
	case Row:
		return ListValue([]Row{x})
	case []Row:
		return ListValue(x)
	case map[string]any:
		return ListValue([]Row{RowOf(x)})
	case []map[string]any:
		return ListValue(RowsOf(x...))
	case []any:
		rows := make([]Row, 0, len(x))
		for _, e := range x {
			if m, ok := e.(map[string]any); ok {
				rows = append(rows, RowOf(m))
			}
		}
		return ListValue(rows)
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberValue(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NumberValue(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return NumberValue(rv.Float())
	case reflect.String:
		return StringValue(rv.String())
	case reflect.Bool:
		return BoolValue(rv.Bool())
	}
	return StringValue(fmt.Sprint(x))
}

// Values converts each of the given Go values with [ValueOf].
func Values(xs ...any) []Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = ValueOf(x)
	}
	return vs
}

// Numbers returns [Number] values for the given floats.
func Numbers(fs ...float64) []Value {
	vs := make([]Value, len(fs))
	for i, f := range fs {
		vs[i] = NumberValue(f)
	}
	return vs
}
