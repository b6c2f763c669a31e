// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observe

// Event is a categorical event fired through an [Observable].
// Custom events embed [Base] to satisfy it.
type Event interface {
	// Type returns the category of the event.
	Type() Category

	// Source returns the entity that fired the event.
	Source() any

	// SetSource sets the entity that fired the event.
	// It is called by [Observable.FireEvent].
	SetSource(src any)
}

// Base is the basic [Event] implementation.
type Base struct {
	Kind Category
	Src  any
}

// NewEvent returns a new event of the given category.
func NewEvent(c Category) *Base {
	return &Base{Kind: c}
}

func (b *Base) Type() Category    { return b.Kind }
func (b *Base) Source() any       { return b.Src }
func (b *Base) SetSource(src any) { b.Src = src }

// PropertyChange is passed to property listeners when
// a reactive property changes value.
type PropertyChange struct {
	// Name is the name of the property.
	Name string

	// Source is the entity that owns the property.
	Source any

	OldValue any
	Value    any
}

// PropertyListener is a registered property listener.
// Its identity is its pointer: registering the same pointer twice
// under the same name and scope is a no-op.
type PropertyListener struct {
	fn func(scope any, ev *PropertyChange)
}

// OnProperty returns a new [PropertyListener] calling fn with the
// scope it was registered under.
func OnProperty(fn func(scope any, ev *PropertyChange)) *PropertyListener {
	return &PropertyListener{fn: fn}
}

// EventListener is a registered categorical event listener.
// Its identity is its pointer.
type EventListener struct {
	fn func(scope any, ev Event)
}

// OnEvent returns a new [EventListener] calling fn with the
// scope it was registered under.
func OnEvent(fn func(scope any, ev Event)) *EventListener {
	return &EventListener{fn: fn}
}

// On returns a new [EventListener] calling fn and ignoring
// the scope and the event.
func On(fn func()) *EventListener {
	return &EventListener{fn: func(any, Event) { fn() }}
}
