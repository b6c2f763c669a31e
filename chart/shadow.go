// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

// DropShadow is the shadow style of series shapes.
type DropShadow struct {
	observe.Observable

	enabled observe.Property[bool]
	color   observe.Property[string]
	xOffset observe.Property[float64]
	yOffset observe.Property[float64]
	blur    observe.Property[float64]

	shadow *scene.Shadow
}

// NewDropShadow returns a new enabled shadow
// in half transparent black with a blur of 5.
func NewDropShadow() *DropShadow {
	d := &DropShadow{
		enabled: observe.NewProperty("enabled", true, observe.Change),
		color:   observe.NewProperty("color", "rgba(0, 0, 0, 0.5)", observe.Change),
		xOffset: observe.NewProperty("xOffset", 0.0, observe.Change),
		yOffset: observe.NewProperty("yOffset", 0.0, observe.Change),
		blur:    observe.NewProperty("blur", 5.0, observe.Change),
	}
	d.InitObservable(d)
	d.AddEventListener(observe.Change, observe.On(func() { d.shadow = nil }), d)
	return d
}

func (d *DropShadow) Enabled() bool    { return d.enabled.Get() }
func (d *DropShadow) Color() string    { return d.color.Get() }
func (d *DropShadow) XOffset() float64 { return d.xOffset.Get() }
func (d *DropShadow) YOffset() float64 { return d.yOffset.Get() }
func (d *DropShadow) Blur() float64    { return d.blur.Get() }

func (d *DropShadow) SetEnabled(v bool)    { d.enabled.Set(&d.Observable, v) }
func (d *DropShadow) SetColor(v string)    { d.color.Set(&d.Observable, v) }
func (d *DropShadow) SetXOffset(v float64) { d.xOffset.Set(&d.Observable, v) }
func (d *DropShadow) SetYOffset(v float64) { d.yOffset.Set(&d.Observable, v) }
func (d *DropShadow) SetBlur(v float64)    { d.blur.Set(&d.Observable, v) }

// Shadow returns the scene shadow for the current style, or nil if
// the shadow is nil or disabled. The same pointer is returned until
// the style changes, so shapes stay clean across updates.
func (d *DropShadow) Shadow() *scene.Shadow {
	if d == nil || !d.Enabled() {
		return nil
	}
	if d.shadow == nil {
		d.shadow = &scene.Shadow{Color: d.Color(), XOffset: d.XOffset(), YOffset: d.YOffset(), Blur: d.Blur()}
	}
	return d.shadow
}
