// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observe

import (
	"reflect"
)

// Property is a reactive value cell. It is declared as a field of
// an entity embedding [Observable], with the name reported to
// property listeners and the categories fired after each change:
//
//	type Label struct {
//		observe.Observable
//		fontSize observe.Property[float64]
//	}
//
//	l.fontSize = observe.NewProperty("fontSize", 12.0, observe.LayoutChange)
//	func (l *Label) SetFontSize(v float64) *Label { l.fontSize.Set(&l.Observable, v); return l }
type Property[T any] struct {
	name       string
	categories []Category
	value      T
}

// NewProperty returns a new property with the given name,
// initial value, and declared categories.
func NewProperty[T any](name string, value T, categories ...Category) Property[T] {
	return Property[T]{name: name, categories: categories, value: value}
}

// Name returns the name of the property.
func (p *Property[T]) Name() string { return p.name }

// Categories returns the categories fired after each change.
func (p *Property[T]) Categories() []Category { return p.categories }

// Get returns the current value.
func (p *Property[T]) Get() T { return p.value }

// Set stores the value if it is [Changed] from the current one, and
// then notifies the property listeners of o followed by the listeners
// of each declared category, in declaration order. It returns whether
// the value changed. The new value is visible to listeners and to
// any reader immediately.
func (p *Property[T]) Set(o *Observable, value T) bool {
	old := p.value
	if !Changed(old, value) {
		return false
	}
	p.value = value
	o.NotifyPropertyListeners(p.name, old, value)
	o.NotifyEventListeners(p.categories...)
	return true
}

// Init sets the value without notifying anyone.
// It is used by constructors and by deep copies.
func (p *Property[T]) Init(value T) { p.value = value }

// Changed reports whether setting a property holding old to value
// counts as a change. Values are compared with ==, except that a
// non-nil reference value (slice, map, pointer, func, chan, or a value
// that is not comparable) always counts as changed, even when it is
// the same reference as old. This supports in-place mutation of
// container values followed by a re-set to trigger notification.
func Changed(old, value any) bool {
	if isReference(value) {
		return true
	}
	return !equal(old, value)
}

func isReference(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	case reflect.Struct, reflect.Array:
		return !rv.Comparable()
	}
	return false
}

func equal(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	return false
}
