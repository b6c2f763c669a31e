// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observe provides the reactive substrate that every mutable
// chart entity is built on: property-change notification, categorical
// event notification with scope-qualified listener registration, and
// the [Property] cell that performs dirty-checking on set.
//
// All notification is synchronous. There is no reentrancy guard: a
// listener that sets the property it listens to recurses immediately,
// and it is the caller's responsibility not to create such cycles.
package observe

import (
	"cogentcore.org/chart/base/keylist"
)

// scopeSet is an ordered set of invocation scopes.
type scopeSet = keylist.List[any, struct{}]

// Observable provides property and categorical event notification.
// It is embedded by value in chart entities, which call
// [Observable.InitObservable] with themselves so that events carry
// the entity as their source. The zero value is ready to use.
type Observable struct {
	owner any

	// properties maps a property name to its listeners,
	// each with the ordered set of scopes it is registered under.
	properties map[string]*keylist.List[*PropertyListener, *scopeSet]

	// events is the dispatch table indexed by [Category].
	events [CategoriesN]*keylist.List[*EventListener, *scopeSet]
}

// InitObservable sets the entity reported as the source of
// events fired through this Observable.
func (o *Observable) InitObservable(owner any) {
	o.owner = owner
}

// Owner returns the entity set by [Observable.InitObservable],
// or the Observable itself if none was set.
func (o *Observable) Owner() any {
	if o.owner == nil {
		return o
	}
	return o.owner
}

func (o *Observable) scope(scope any) any {
	if scope == nil {
		return o.Owner()
	}
	return scope
}

// AddPropertyListener registers the listener for changes of the named
// property, to be called with the given scope (the owner if nil).
// Registering the same (name, listener, scope) triple again is a no-op.
func (o *Observable) AddPropertyListener(name string, l *PropertyListener, scope any) {
	if o.properties == nil {
		o.properties = make(map[string]*keylist.List[*PropertyListener, *scopeSet])
	}
	ls := o.properties[name]
	if ls == nil {
		ls = keylist.New[*PropertyListener, *scopeSet]()
		o.properties[name] = ls
	}
	addScope(ls, l, o.scope(scope))
}

// RemovePropertyListener removes the listener registered under the
// given scope (the owner if nil) for the named property. A nil listener
// removes all listeners of the property. Removing an absent listener
// is a no-op.
func (o *Observable) RemovePropertyListener(name string, l *PropertyListener, scope any) {
	ls := o.properties[name]
	if ls == nil {
		return
	}
	if l == nil {
		delete(o.properties, name)
		return
	}
	removeScope(ls, l, o.scope(scope))
	if ls.Len() == 0 {
		delete(o.properties, name)
	}
}

// NotifyPropertyListeners calls the listeners of the named property,
// in registration order, once per registered scope.
func (o *Observable) NotifyPropertyListeners(name string, oldValue, value any) {
	ls := o.properties[name]
	if ls.Len() == 0 {
		return
	}
	ev := &PropertyChange{Name: name, Source: o.Owner(), OldValue: oldValue, Value: value}
	snap := ls.Clone()
	for i, l := range snap.Keys {
		for _, sc := range snap.Values[i].Clone().Keys {
			l.fn(sc, ev)
		}
	}
}

// PropertyListenerCount returns the number of distinct listeners
// registered for the named property.
func (o *Observable) PropertyListenerCount(name string) int {
	return o.properties[name].Len()
}

// AddEventListener registers the listener for events of the given
// category, to be called with the given scope (the owner if nil).
// Registering the same (category, listener, scope) triple again is a no-op.
func (o *Observable) AddEventListener(c Category, l *EventListener, scope any) {
	ls := o.events[c]
	if ls == nil {
		ls = keylist.New[*EventListener, *scopeSet]()
		o.events[c] = ls
	}
	addScope(ls, l, o.scope(scope))
}

// RemoveEventListener removes the listener registered under the
// given scope (the owner if nil) for the given category. A nil listener
// removes all listeners of the category.
func (o *Observable) RemoveEventListener(c Category, l *EventListener, scope any) {
	ls := o.events[c]
	if ls == nil {
		return
	}
	if l == nil {
		o.events[c] = nil
		return
	}
	removeScope(ls, l, o.scope(scope))
	if ls.Len() == 0 {
		o.events[c] = nil
	}
}

// EventListenerCount returns the number of distinct listeners
// registered for the given category.
func (o *Observable) EventListenerCount(c Category) int {
	return o.events[c].Len()
}

// NotifyEventListeners fires a [Base] event for each of the given
// categories, in order.
func (o *Observable) NotifyEventListeners(cs ...Category) {
	for _, c := range cs {
		if o.events[c].Len() == 0 {
			continue
		}
		o.dispatch(&Base{Kind: c, Src: o.Owner()})
	}
}

// FireEvent sets the source of the event to the owner and calls
// the listeners of its category.
func (o *Observable) FireEvent(ev Event) {
	ev.SetSource(o.Owner())
	o.dispatch(ev)
}

func (o *Observable) dispatch(ev Event) {
	ls := o.events[ev.Type()]
	if ls.Len() == 0 {
		return
	}
	snap := ls.Clone()
	for i, l := range snap.Keys {
		for _, sc := range snap.Values[i].Clone().Keys {
			l.fn(sc, ev)
		}
	}
}

// ClearListeners removes all property and event listeners.
func (o *Observable) ClearListeners() {
	o.properties = nil
	o.events = [CategoriesN]*keylist.List[*EventListener, *scopeSet]{}
}

func addScope[L comparable](ls *keylist.List[L, *scopeSet], l L, scope any) {
	ss, ok := ls.AtTry(l)
	if !ok {
		ss = keylist.New[any, struct{}]()
		ls.Set(l, ss)
	}
	ss.Add(scope, struct{}{})
}

func removeScope[L comparable](ls *keylist.List[L, *scopeSet], l L, scope any) {
	ss, ok := ls.AtTry(l)
	if !ok {
		return
	}
	ss.DeleteByKey(scope)
	if ss.Len() == 0 {
		ls.DeleteByKey(l)
	}
}
