// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key to indexes, to support fast lookup by key
while retaining insertion order.

It backs the listener tables of package observe, where the
iteration order of listeners and scopes must be the order in
which they were registered.
*/
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values,
// with a map from a key to indexes.
// The zero value is ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value
// is usable without initialization, so this is
// just a simple standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) makeIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Reset removes all elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing the value in place,
// keeping its original position.
func (kl *List[K, V]) Set(key K, val V) {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// Add adds an item with the given key to the end of the list.
// It returns false and leaves the list unchanged if the key
// is already on the list.
func (kl *List[K, V]) Add(key K, val V) bool {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
	if _, ok := kl.indexes[key]; ok {
		return false
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return true
}

// At returns the value for the given key, or the zero value.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if kl != nil {
		if idx, ok := kl.indexes[key]; ok {
			return kl.Values[idx], true
		}
	}
	var zv V
	return zv, false
}

// Has returns whether the key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	_, ok := kl.AtTry(key)
	return ok
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	if kl == nil {
		return -1
	}
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
// This is relatively slow because it needs to regenerate the
// index map.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.makeIndexes()
	return true
}

// Clone returns a shallow copy of the list that can be iterated
// while the original is being modified.
func (kl *List[K, V]) Clone() *List[K, V] {
	if kl == nil {
		return &List[K, V]{}
	}
	cl := &List[K, V]{
		Keys:   slices.Clone(kl.Keys),
		Values: slices.Clone(kl.Values),
	}
	cl.makeIndexes()
	return cl
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v: %v, ", kl.Keys[i], v)
	}
	return sv + "}"
}
