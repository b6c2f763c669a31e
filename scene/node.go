// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"reflect"
	"slices"
	"sort"

	"github.com/jinzhu/copier"
)

// Node is a node of the retained scene graph. All node types embed
// [NodeBase] and are created with one of the New functions, which
// set [NodeBase.This].
type Node interface {
	// AsNode returns the [NodeBase] of the node.
	AsNode() *NodeBase

	// LocalBBox returns the bounding box of the node in its own
	// coordinates, before its translation is applied.
	LocalBBox() BBox

	// ContainsPoint returns whether the given point, in the node's
	// own coordinates, hits the node.
	ContainsPoint(x, y float64) bool
}

// NodeBase holds the state common to all nodes. Visual state is
// changed through the Set methods, which report whether the value
// changed and mark the node and its ancestors dirty. Writing the
// exported fields directly bypasses change tracking.
type NodeBase struct {
	// Name is an optional name used to find children.
	Name string

	// Tag distinguishes the roles of sibling nodes, such as the
	// sector and the label of a pie slice.
	Tag string

	// This is the node as its true underlying type.
	This Node `copier:"-"`

	// Children are the child nodes, in insertion order.
	// Rendering uses [NodeBase.SortedChildren].
	Children []Node `copier:"-"`

	// Datum is the data item bound to the node. It is shared,
	// not copied, by [Clone].
	Datum any `copier:"-"`

	// Visible is whether the node and its children are rendered.
	Visible bool

	// Opacity multiplies the opacity of the node and its children.
	Opacity float64

	// ZIndex orders siblings for rendering and picking,
	// with higher values on top.
	ZIndex float64

	// TranslationX and TranslationY offset the node and
	// its children within the parent.
	TranslationX, TranslationY float64

	// PointerEvents is whether the node and its children take
	// part in picking.
	PointerEvents bool

	parent Node
	dirty  bool
}

// AsNode satisfies the [Node] interface.
func (n *NodeBase) AsNode() *NodeBase { return n }

// LocalBBox returns the union of the bounding boxes of the
// visible children.
func (n *NodeBase) LocalBBox() BBox {
	var bb BBox
	first := true
	for _, k := range n.Children {
		kb := k.AsNode()
		if !kb.Visible {
			continue
		}
		b := ComputeBBox(k)
		if !b.IsValid() {
			continue
		}
		if first {
			bb = b
			first = false
		} else {
			bb = bb.Union(b)
		}
	}
	return bb
}

// ContainsPoint returns false: a plain node is hit
// only through its children.
func (n *NodeBase) ContainsPoint(x, y float64) bool { return false }

func (n *NodeBase) init(this Node) {
	n.This = this
	n.Visible = true
	n.Opacity = 1
	n.PointerEvents = true
	n.dirty = true
}

// Parent returns the parent node, or nil.
func (n *NodeBase) Parent() Node { return n.parent }

// Dirty returns whether the node or any of its descendants changed
// since the last [NodeBase.MarkClean].
func (n *NodeBase) Dirty() bool { return n.dirty }

// MarkDirty marks the node and its ancestors dirty.
func (n *NodeBase) MarkDirty() {
	var p Node = n.This
	for p != nil {
		pb := p.AsNode()
		if pb.dirty {
			return
		}
		pb.dirty = true
		p = pb.parent
	}
}

// MarkClean clears the dirty flag of the node and all of its descendants.
func (n *NodeBase) MarkClean() {
	n.dirty = false
	for _, k := range n.Children {
		k.AsNode().MarkClean()
	}
}

// set stores v in *p and marks n dirty if it differs.
func set[T comparable](n *NodeBase, p *T, v T) bool {
	if *p == v {
		return false
	}
	*p = v
	n.MarkDirty()
	return true
}

// SetVisible sets [NodeBase.Visible].
func (n *NodeBase) SetVisible(v bool) bool { return set(n, &n.Visible, v) }

// SetOpacity sets [NodeBase.Opacity].
func (n *NodeBase) SetOpacity(v float64) bool { return set(n, &n.Opacity, v) }

// SetZIndex sets [NodeBase.ZIndex].
func (n *NodeBase) SetZIndex(v float64) bool { return set(n, &n.ZIndex, v) }

// SetPointerEvents sets [NodeBase.PointerEvents].
func (n *NodeBase) SetPointerEvents(v bool) bool { return set(n, &n.PointerEvents, v) }

// SetTranslation sets [NodeBase.TranslationX] and [NodeBase.TranslationY].
func (n *NodeBase) SetTranslation(x, y float64) bool {
	cx := set(n, &n.TranslationX, x)
	cy := set(n, &n.TranslationY, y)
	return cx || cy
}

// AddChild adds the given children at the end of the children list,
// removing each from any previous parent.
func (n *NodeBase) AddChild(kids ...Node) {
	for _, k := range kids {
		n.InsertChild(k, len(n.Children))
	}
}

// InsertChild inserts the given child at the given index,
// removing it from any previous parent.
func (n *NodeBase) InsertChild(kid Node, index int) {
	kb := kid.AsNode()
	if kb.parent != nil {
		kb.parent.AsNode().RemoveChild(kid)
	}
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	kb.parent = n.This
	kb.dirty = false
	kb.MarkDirty()
}

// IndexOf returns the index of the given child, or -1.
func (n *NodeBase) IndexOf(kid Node) int {
	return slices.Index(n.Children, kid)
}

// MoveChild moves the given child to the given index.
// It returns false if kid is not a child of n.
func (n *NodeBase) MoveChild(kid Node, index int) bool {
	i := n.IndexOf(kid)
	if i < 0 {
		return false
	}
	if i == index {
		return true
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	n.MarkDirty()
	return true
}

// RemoveChild removes the given child without destroying it.
// It returns false if kid is not a child of n.
func (n *NodeBase) RemoveChild(kid Node) bool {
	i := n.IndexOf(kid)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	kid.AsNode().parent = nil
	n.MarkDirty()
	return true
}

// DeleteChildren removes and destroys all children.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, k := range kids {
		k.AsNode().parent = nil
		k.AsNode().Destroy()
	}
	if len(kids) > 0 {
		n.MarkDirty()
	}
}

// Destroy removes the node from its parent and recursively destroys it
// and its children, releasing their bound data.
func (n *NodeBase) Destroy() {
	if n.This == nil {
		return
	}
	if n.parent != nil {
		n.parent.AsNode().RemoveChild(n.This)
	}
	n.DeleteChildren()
	n.Datum = nil
	n.This = nil
}

// Destroyed returns whether [NodeBase.Destroy] has been called.
func (n *NodeBase) Destroyed() bool { return n.This == nil }

// ChildByTag returns the first child with the given tag, or nil.
func (n *NodeBase) ChildByTag(tag string) Node {
	for _, k := range n.Children {
		if k.AsNode().Tag == tag {
			return k
		}
	}
	return nil
}

// SortedChildren returns the children in rendering order:
// ascending [NodeBase.ZIndex], stable with respect to insertion order.
func (n *NodeBase) SortedChildren() []Node {
	kids := slices.Clone(n.Children)
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].AsNode().ZIndex < kids[j].AsNode().ZIndex
	})
	return kids
}

// WalkDown calls fun on the node and its descendants in pre-order,
// skipping the descendants of nodes for which fun returns false.
func WalkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.AsNode().Children {
		WalkDown(k, fun)
	}
}

// DatumOf returns the datum bound to the node or, if it has none,
// to its nearest ancestor that has one.
func DatumOf(n Node) any {
	for n != nil {
		nb := n.AsNode()
		if nb.Datum != nil {
			return nb.Datum
		}
		n = nb.parent
	}
	return nil
}

// Clone returns a deep copy of the given node and its descendants,
// detached from any parent. Bound data are shared with the original.
func Clone[N Node](n N) N {
	return cloneNode(n).(N)
}

func cloneNode(n Node) Node {
	nb := n.AsNode()
	nc := reflect.New(reflect.TypeOf(n).Elem()).Interface().(Node)
	err := copier.CopyWithOption(nc, n, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("scene.Clone", "err", err)
	}
	cb := nc.AsNode()
	cb.This = nc
	cb.Datum = nb.Datum
	cb.dirty = true
	for _, k := range nb.Children {
		cb.AddChild(cloneNode(k))
	}
	return nc
}
