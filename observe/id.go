// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observe

import (
	"strconv"
	"sync"
)

// IDArena issues opaque identifiers of the form "Type-N",
// numbering each type independently starting at 1.
type IDArena struct {
	mu     sync.Mutex
	counts map[string]int
}

// DefaultArena is the arena used by [NewID].
var DefaultArena = &IDArena{}

// Next returns the next identifier for the given type name.
func (a *IDArena) Next(typ string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.counts == nil {
		a.counts = make(map[string]int)
	}
	a.counts[typ]++
	return typ + "-" + strconv.Itoa(a.counts[typ])
}

// NewID returns the next identifier for the given type name
// from the [DefaultArena].
func NewID(typ string) string {
	return DefaultArena.Next(typ)
}
