// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

// Caption is a centered line of text such as the title of a chart
// or of a pie series. The text node is updated directly by the
// setters, which fire [observe.Change].
type Caption struct {
	observe.Observable

	// Node is the text node of the caption.
	Node *scene.Text

	enabled observe.Property[bool]
	padding observe.Property[Padding]
}

// NewCaption returns a new disabled caption
// in 10px Verdana, centered and top aligned.
func NewCaption() *Caption {
	c := &Caption{
		Node:    scene.NewText(),
		enabled: observe.NewProperty("enabled", false, observe.Change),
		padding: observe.NewProperty("padding", NewPadding(10), observe.Change),
	}
	c.InitObservable(c)
	c.Node.Font = scene.Font{Size: 10, Family: "Verdana, sans-serif"}
	c.Node.Paint.Fill = "rgba(70, 70, 70, 1)"
	c.Node.Align = scene.AlignCenter
	c.Node.Baseline = scene.BaselineTop
	c.Node.PointerEvents = false
	return c
}

func (c *Caption) Enabled() bool    { return c.enabled.Get() }
func (c *Caption) Padding() Padding { return c.padding.Get() }
func (c *Caption) Text() string     { return c.Node.Text }
func (c *Caption) Font() scene.Font { return c.Node.Font }
func (c *Caption) Color() string    { return c.Node.Paint.Fill }

func (c *Caption) SetEnabled(v bool)    { c.enabled.Set(&c.Observable, v) }
func (c *Caption) SetPadding(v Padding) { c.padding.Set(&c.Observable, v) }

func (c *Caption) changed(ok bool) {
	if ok {
		c.FireEvent(observe.NewEvent(observe.Change))
	}
}

func (c *Caption) SetText(v string) { c.changed(c.Node.SetText(v)) }

func (c *Caption) SetColor(v string) { c.changed(c.Node.SetFill(v)) }

func (c *Caption) SetFontSize(v float64) {
	f := c.Node.Font
	f.Size = v
	c.changed(c.Node.SetFont(f))
}

func (c *Caption) SetFontFamily(v string) {
	f := c.Node.Font
	f.Family = v
	c.changed(c.Node.SetFont(f))
}

func (c *Caption) SetFontStyle(v scene.FontStyle) {
	f := c.Node.Font
	f.Style = v
	c.changed(c.Node.SetFont(f))
}

func (c *Caption) SetFontWeight(v scene.FontWeight) {
	f := c.Node.Font
	f.Weight = v
	c.changed(c.Node.SetFont(f))
}
