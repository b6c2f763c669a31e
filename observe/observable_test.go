// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/chart/observe"
)

type component struct {
	Observable
	john Property[string]
	bob  Property[string]
	foo  Property[string]
	arr  Property[[]int]
	dict Property[map[string]int]
}

func newComponent() *component {
	c := &component{
		john: NewProperty("john", "smith", DataChange, LayoutChange),
		bob:  NewProperty("bob", "marley", DataChange, LayoutChange),
		foo:  NewProperty("foo", "", Change),
		arr:  NewProperty("arr", []int{}),
		dict: NewProperty("dict", map[string]int{}),
	}
	c.InitObservable(c)
	return c
}

func (c *component) SetJohn(v string) { c.john.Set(&c.Observable, v) }
func (c *component) SetBob(v string)  { c.bob.Set(&c.Observable, v) }
func (c *component) SetFoo(v string)  { c.foo.Set(&c.Observable, v) }
func (c *component) SetArr(v []int)   { c.arr.Set(&c.Observable, v) }

func TestPropertyChangeEvent(t *testing.T) {
	c := newComponent()
	assert.Equal(t, "smith", c.john.Get())

	var got *PropertyChange
	c.AddPropertyListener("john", OnProperty(func(scope any, ev *PropertyChange) {
		got = ev
	}), nil)
	var cats []Category
	c.AddEventListener(DataChange, OnEvent(func(scope any, ev Event) {
		cats = append(cats, ev.Type())
		assert.Equal(t, c, ev.Source())
	}), nil)
	c.AddEventListener(LayoutChange, OnEvent(func(scope any, ev Event) {
		cats = append(cats, ev.Type())
	}), nil)

	c.SetJohn("doe")
	c.SetFoo("blah")

	require.NotNil(t, got)
	assert.Equal(t, "john", got.Name)
	assert.Equal(t, c, got.Source)
	assert.Equal(t, "smith", got.OldValue)
	assert.Equal(t, "doe", got.Value)
	assert.Equal(t, []Category{DataChange, LayoutChange}, cats)
	assert.Equal(t, "blah", c.foo.Get())
}

func TestAddRemovePropertyListener(t *testing.T) {
	c := newComponent()
	sum := 0
	l1 := OnProperty(func(any, *PropertyChange) { sum += 1 })
	l2 := OnProperty(func(any, *PropertyChange) { sum += 3 })
	l3 := OnProperty(func(any, *PropertyChange) { sum += 5 })
	c.AddPropertyListener("john", l1, nil)
	c.AddPropertyListener("john", l2, nil)
	c.AddPropertyListener("john", l3, nil)
	c.AddPropertyListener("john", l3, nil)

	c.SetJohn("test1")
	assert.Equal(t, 9, sum)

	sum = 0
	c.SetJohn("test1")
	assert.Equal(t, 0, sum)

	sum = 0
	c.RemovePropertyListener("john", l1, nil)
	c.RemovePropertyListener("john", l1, nil)
	c.SetJohn("test2")
	assert.Equal(t, 8, sum)

	sum = 0
	c.RemovePropertyListener("john", nil, nil)
	c.SetJohn("test3")
	assert.Equal(t, 0, sum)
	assert.Equal(t, 0, c.PropertyListenerCount("john"))
}

func TestListenerScopes(t *testing.T) {
	c := newComponent()
	scopeA, scopeB := &struct{ name string }{"a"}, &struct{ name string }{"b"}
	var scopes []any
	l := OnEvent(func(scope any, ev Event) { scopes = append(scopes, scope) })
	c.AddEventListener(DataChange, l, scopeA)
	c.AddEventListener(DataChange, l, scopeB)
	c.AddEventListener(DataChange, l, scopeA)
	assert.Equal(t, 1, c.EventListenerCount(DataChange))

	c.SetJohn("one")
	assert.Equal(t, []any{scopeA, scopeB}, scopes)

	scopes = nil
	c.RemoveEventListener(DataChange, l, scopeA)
	c.SetJohn("two")
	assert.Equal(t, []any{scopeB}, scopes)

	scopes = nil
	c.RemoveEventListener(DataChange, l, scopeB)
	c.SetJohn("three")
	assert.Empty(t, scopes)
	assert.Equal(t, 0, c.EventListenerCount(DataChange))
}

func TestDefaultScopeIsOwner(t *testing.T) {
	c := newComponent()
	var scope any
	c.AddEventListener(LayoutChange, OnEvent(func(s any, ev Event) { scope = s }), nil)
	c.SetBob("dylan")
	assert.Equal(t, c, scope)
}

func TestRemoveDefaultScope(t *testing.T) {
	c := newComponent()
	other := &struct{ name string }{"other"}
	var scopes []any
	pl := OnProperty(func(scope any, ev *PropertyChange) { scopes = append(scopes, scope) })
	c.AddPropertyListener("john", pl, nil)
	c.AddPropertyListener("john", pl, other)
	el := OnEvent(func(scope any, ev Event) { scopes = append(scopes, scope) })
	c.AddEventListener(DataChange, el, nil)
	c.AddEventListener(DataChange, el, other)

	// a nil scope removes only the registration under the owner
	c.RemovePropertyListener("john", pl, nil)
	c.RemoveEventListener(DataChange, el, nil)
	c.SetJohn("paul")
	assert.Equal(t, []any{other, other}, scopes)
	assert.Equal(t, 1, c.PropertyListenerCount("john"))
	assert.Equal(t, 1, c.EventListenerCount(DataChange))
}

func TestEqualityRule(t *testing.T) {
	c := newComponent()
	n := 0
	c.AddPropertyListener("foo", OnProperty(func(any, *PropertyChange) { n++ }), nil)
	c.SetFoo("x")
	c.SetFoo("x")
	assert.Equal(t, 1, n)

	n = 0
	c.AddPropertyListener("arr", OnProperty(func(any, *PropertyChange) { n++ }), nil)
	same := []int{1, 2}
	c.SetArr(same)
	assert.Equal(t, 1, n)
	c.SetArr(same)
	assert.Equal(t, 2, n, "setting the same slice again must fire")
	c.SetArr([]int{1, 2})
	assert.Equal(t, 3, n)

	c.SetArr(nil)
	assert.Equal(t, 4, n)
	c.SetArr(nil)
	assert.Equal(t, 4, n, "nil to nil is not a change")
}

func TestChanged(t *testing.T) {
	assert.False(t, Changed(1, 1))
	assert.True(t, Changed(1, 2))
	assert.True(t, Changed(1, 1.0))
	assert.False(t, Changed(nil, nil))
	assert.False(t, Changed(struct{ A int }{1}, struct{ A int }{1}))
	p := &struct{}{}
	assert.True(t, Changed(p, p))
	m := map[string]int{}
	assert.True(t, Changed(m, m))
	var f func()
	assert.False(t, Changed(f, f))
	assert.True(t, Changed(nil, func() {}))
}

func TestFireEvent(t *testing.T) {
	c := newComponent()
	var src any
	c.AddEventListener(NodeClick, OnEvent(func(_ any, ev Event) { src = ev.Source() }), nil)
	c.FireEvent(NewEvent(NodeClick))
	assert.Equal(t, c, src)

	// no listeners: no-op
	c.FireEvent(NewEvent(LegendClick))
	c.NotifyEventListeners(Update)
}

func TestListenerRemovesItself(t *testing.T) {
	c := newComponent()
	n := 0
	var l *EventListener
	l = OnEvent(func(any, Event) {
		n++
		c.RemoveEventListener(Change, l, nil)
	})
	c.AddEventListener(Change, l, nil)
	c.SetFoo("a")
	c.SetFoo("b")
	assert.Equal(t, 1, n)
}

func TestReentrantSet(t *testing.T) {
	c := newComponent()
	depth := 0
	c.AddPropertyListener("john", OnProperty(func(_ any, ev *PropertyChange) {
		depth++
		if ev.Value == "a" {
			c.SetJohn("b")
		}
	}), nil)
	c.SetJohn("a")
	assert.Equal(t, 2, depth)
	assert.Equal(t, "b", c.john.Get())
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "layoutChange", LayoutChange.String())
	cat, err := CategoryFromString("LegendChange")
	assert.NoError(t, err)
	assert.Equal(t, LegendChange, cat)
	_, err = CategoryFromString("resize")
	assert.Error(t, err)
	assert.Len(t, Categories(), int(CategoriesN))
}

func TestIDArena(t *testing.T) {
	a := &IDArena{}
	assert.Equal(t, "BarSeries-1", a.Next("BarSeries"))
	assert.Equal(t, "BarSeries-2", a.Next("BarSeries"))
	assert.Equal(t, "Legend-1", a.Next("Legend"))
}
