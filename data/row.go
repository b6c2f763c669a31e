// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"
	"reflect"

	"github.com/aclements/go-moremath/stats"
)

// ChildrenKey is the key holding the child rows of
// a hierarchical record.
const ChildrenKey = "children"

// Row is a single data record: a mapping from keys to values.
// Rows are reference values: series bind the same Row they were
// given back to their nodes.
type Row map[string]Value

// RowOf converts a map of Go values into a Row with [ValueOf].
func RowOf(m map[string]any) Row {
	r := make(Row, len(m))
	for k, x := range m {
		r[k] = ValueOf(x)
	}
	return r
}

// RowsOf converts each of the given maps with [RowOf].
func RowsOf(ms ...map[string]any) []Row {
	rows := make([]Row, len(ms))
	for i, m := range ms {
		rows[i] = RowOf(m)
	}
	return rows
}

// Get returns the value at the given key, which is [Null] if absent.
func (r Row) Get(key string) Value {
	return r[key]
}

// Has returns whether the row has a value at the given key.
func (r Row) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Children returns the child rows of a hierarchical record.
func (r Row) Children() []Row {
	return r[ChildrenKey].Rows()
}

// SameRow returns whether the two rows are the same reference.
func SameRow(a, b Row) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

// Column returns the values at the given key of each row.
func Column(rows []Row, key string) []Value {
	vs := make([]Value, len(rows))
	for i, r := range rows {
		vs[i] = r.Get(key)
	}
	return vs
}

// Extent returns the minimum and maximum of the finite numeric values,
// and false if there are none.
func Extent(vs []Value) (min, max float64, ok bool) {
	fs := make([]float64, 0, len(vs))
	for _, v := range vs {
		if v.IsFinite() {
			fs = append(fs, v.Num())
		}
	}
	if len(fs) == 0 {
		return math.NaN(), math.NaN(), false
	}
	min, max = stats.Bounds(fs)
	return min, max, true
}

// Continuous returns whether all non-null values are numbers or times,
// and there is at least one of them.
func Continuous(vs []Value) bool {
	n := 0
	for _, v := range vs {
		switch v.Kind() {
		case Null:
		case Number, Time:
			n++
		default:
			return false
		}
	}
	return n > 0
}

// Unique returns the values with duplicates removed,
// keeping the first occurrence of each. Lists are never merged.
func Unique(vs []Value) []Value {
	type key struct {
		kind Kinds
		num  float64
		str  string
		ms   int64
	}
	seen := make(map[key]bool, len(vs))
	out := make([]Value, 0, len(vs))
	for _, v := range vs {
		if v.kind == List {
			out = append(out, v)
			continue
		}
		k := key{kind: v.kind, num: v.num, str: v.str}
		if v.kind == Time {
			k.ms = v.t.UnixNano()
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
