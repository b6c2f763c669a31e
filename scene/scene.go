// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the retained scene graph that charts draw
// into: groups, rectangles, sectors, lines, text, and markers with
// z-ordering, translation, opacity, change tracking, bounding boxes,
// and hit-testing. Renderers live in the svgx and rasterx packages.
package scene

// Scene is the root of a scene graph with a viewport size.
type Scene struct {
	// Root holds all top-level nodes.
	Root *Group

	Width, Height float64

	// Background is the CSS color painted behind everything;
	// empty means transparent.
	Background string
}

// New returns a new scene of the given size.
func New(width, height float64) *Scene {
	return &Scene{Root: NewGroup(), Width: width, Height: height, Background: "white"}
}

// Resize sets the size of the scene, returning whether it changed.
func (s *Scene) Resize(width, height float64) bool {
	if s.Width == width && s.Height == height {
		return false
	}
	s.Width, s.Height = width, height
	s.Root.MarkDirty()
	return true
}

// Dirty returns whether anything changed since the last [Scene.MarkClean].
func (s *Scene) Dirty() bool { return s.Root.Dirty() }

// MarkClean clears the change tracking of all nodes,
// typically after rendering.
func (s *Scene) MarkClean() { s.Root.MarkClean() }

// PickNode returns the topmost visible node hit by the given point
// in scene coordinates, or nil.
func (s *Scene) PickNode(x, y float64) Node {
	return PickNode(s.Root, x, y)
}

// PickNode returns the topmost visible node under n hit by the
// given point in the coordinates of n's parent, or nil. Nodes with
// pointer events disabled are skipped together with their children.
func PickNode(n Node, x, y float64) Node {
	nb := n.AsNode()
	if !nb.Visible || !nb.PointerEvents {
		return nil
	}
	lx, ly := x-nb.TranslationX, y-nb.TranslationY
	kids := nb.SortedChildren()
	for i := len(kids) - 1; i >= 0; i-- {
		if hit := PickNode(kids[i], lx, ly); hit != nil {
			return hit
		}
	}
	if n.ContainsPoint(lx, ly) {
		return n
	}
	return nil
}

// Snapshot returns a deep copy of the scene that can be rendered
// while the original continues to change.
func (s *Scene) Snapshot() *Scene {
	return &Scene{
		Root:       Clone(s.Root),
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background,
	}
}

// TotalOpacity returns the opacity of the node multiplied by
// the opacities of its ancestors.
func TotalOpacity(n Node) float64 {
	o := 1.0
	for n != nil {
		nb := n.AsNode()
		o *= nb.Opacity
		n = nb.parent
	}
	return o
}
