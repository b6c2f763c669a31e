// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection binds an ordered list of data items to the
// children of a scene group, one node per item. Each update computes
// a keyed diff between the previously bound data and the new data,
// creates nodes for entering items, keeps the nodes of updating items,
// destroys the nodes of exiting items, and reorders the children to
// match the data order.
package selection

import (
	"fmt"
	"strconv"

	"cogentcore.org/chart/base/logx"
	"cogentcore.org/chart/scene"
)

// KeyFunc returns the identity of a data item. Items with equal keys
// in the old and new data are bound to the same node.
type KeyFunc[D any] func(d D) string

// Join is the result of diffing old data against new data.
type Join struct {
	// Enter are the indexes in the new data of items with no
	// matching old item.
	Enter []int

	// Update are the (old, new) index pairs of matching items.
	Update [][2]int

	// Exit are the indexes in the old data of items with no
	// matching new item.
	Exit []int

	// Dropped are the indexes in the new data of items whose key is
	// repeated later in the new data. Only the last item with a
	// given key is bound.
	Dropped []int
}

// Stats are the counts of an update.
type Stats struct {
	Enter, Update, Exit, Dropped int
}

func indexKey(i int) string { return strconv.Itoa(i) }

// Diff computes the join of old and new data by key. A nil key
// function matches items by position. The Enter and Update lists are
// in new data order; the Exit list is in old data order.
func Diff[D any](old, new []D, key KeyFunc[D]) Join {
	keyOf := func(data []D, i int) string {
		if key == nil {
			return indexKey(i)
		}
		return key(data[i])
	}
	last := make(map[string]int, len(new))
	for i := range new {
		last[keyOf(new, i)] = i
	}
	oldIndex := make(map[string]int, len(old))
	for i := range old {
		k := keyOf(old, i)
		if _, dup := oldIndex[k]; !dup {
			oldIndex[k] = i
		}
	}
	var j Join
	matched := make(map[int]bool, len(old))
	for i := range new {
		k := keyOf(new, i)
		if last[k] != i {
			j.Dropped = append(j.Dropped, i)
			continue
		}
		if oi, ok := oldIndex[k]; ok {
			j.Update = append(j.Update, [2]int{oi, i})
			matched[oi] = true
		} else {
			j.Enter = append(j.Enter, i)
		}
	}
	for i := range old {
		if !matched[i] {
			j.Exit = append(j.Exit, i)
		}
	}
	return j
}

// Selection binds data of type D to child nodes of type N of a parent
// node. A parent should be owned by a single selection; children of
// the parent that the selection did not create are kept ahead of the
// selection's nodes.
type Selection[N scene.Node, D any] struct {
	parent scene.Node
	nodes  []N
	data   []D
}

// New returns a new empty selection under the given parent.
func New[N scene.Node, D any](parent scene.Node) *Selection[N, D] {
	return &Selection[N, D]{parent: parent}
}

// Parent returns the parent node.
func (s *Selection[N, D]) Parent() scene.Node { return s.parent }

// Len returns the number of bound nodes.
func (s *Selection[N, D]) Len() int { return len(s.nodes) }

// Nodes returns the bound nodes in data order.
func (s *Selection[N, D]) Nodes() []N { return s.nodes }

// Data returns the bound data.
func (s *Selection[N, D]) Data() []D { return s.data }

// Each calls fn for each bound node with its datum and index.
func (s *Selection[N, D]) Each(fn func(n N, d D, i int)) {
	for i, n := range s.nodes {
		fn(n, s.data[i], i)
	}
}

// Update binds the given data, calling create for each entering item.
// Each node's [scene.NodeBase.Datum] is set to its item. Exiting nodes
// are removed from the parent and destroyed. Afterwards the parent's
// children from this selection are in data order.
//
// Items whose key is repeated later in data are dropped, and a warning
// is logged once per selection and key.
func (s *Selection[N, D]) Update(data []D, key KeyFunc[D], create func(d D, i int) N) Stats {
	j := Diff(s.data, data, key)
	for _, i := range j.Dropped {
		k := key(data[i])
		logx.WarnOnce(fmt.Sprintf("selection/%p/%s", s, k), "selection: duplicate key, keeping the last item", "key", k)
	}
	pb := s.parent.AsNode()
	for _, oi := range j.Exit {
		n := s.nodes[oi]
		n.AsNode().Destroy()
	}
	bound := make([]N, len(data))
	have := make([]bool, len(data))
	for _, p := range j.Update {
		bound[p[1]] = s.nodes[p[0]]
		have[p[1]] = true
	}
	for _, i := range j.Enter {
		bound[i] = create(data[i], i)
		have[i] = true
	}
	nodes := make([]N, 0, len(data)-len(j.Dropped))
	kept := make([]D, 0, len(data)-len(j.Dropped))
	for i, d := range data {
		if !have[i] {
			continue
		}
		n := bound[i]
		n.AsNode().Datum = d
		nodes = append(nodes, n)
		kept = append(kept, d)
	}
	offset := len(pb.Children) - len(s.nodes) + len(j.Exit)
	for _, i := range j.Enter {
		if bound[i].AsNode().Parent() != s.parent {
			pb.AddChild(bound[i])
		}
	}
	offset = max(offset, 0)
	for i, n := range nodes {
		if pb.IndexOf(n) != offset+i {
			pb.MoveChild(n, offset+i)
		}
	}
	s.nodes, s.data = nodes, kept
	return Stats{Enter: len(j.Enter), Update: len(j.Update), Exit: len(j.Exit), Dropped: len(j.Dropped)}
}

// Clear removes and destroys all bound nodes.
func (s *Selection[N, D]) Clear() Stats {
	return s.Update(nil, nil, nil)
}
