// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chart/observe"
	"cogentcore.org/chart/scene"
)

// Label holds the text style of series labels.
// Turning labels on or off changes node data;
// the other properties only fire [observe.Change].
type Label struct {
	observe.Observable

	enabled    observe.Property[bool]
	fontStyle  observe.Property[scene.FontStyle]
	fontWeight observe.Property[scene.FontWeight]
	fontSize   observe.Property[float64]
	fontFamily observe.Property[string]
	color      observe.Property[string]
}

// NewLabel returns a new enabled label in 12px Verdana.
func NewLabel() *Label {
	l := &Label{
		enabled:    observe.NewProperty("enabled", true, observe.Change, observe.DataChange),
		fontStyle:  observe.NewProperty("fontStyle", scene.FontNormal, observe.Change),
		fontWeight: observe.NewProperty("fontWeight", scene.WeightNormal, observe.Change),
		fontSize:   observe.NewProperty("fontSize", 12.0, observe.Change),
		fontFamily: observe.NewProperty("fontFamily", "Verdana, sans-serif", observe.Change),
		color:      observe.NewProperty("color", "rgba(70, 70, 70, 1)", observe.Change),
	}
	l.InitObservable(l)
	return l
}

func (l *Label) Enabled() bool                { return l.enabled.Get() }
func (l *Label) FontStyle() scene.FontStyle   { return l.fontStyle.Get() }
func (l *Label) FontWeight() scene.FontWeight { return l.fontWeight.Get() }
func (l *Label) FontSize() float64            { return l.fontSize.Get() }
func (l *Label) FontFamily() string           { return l.fontFamily.Get() }
func (l *Label) Color() string                { return l.color.Get() }

func (l *Label) SetEnabled(v bool)                { l.enabled.Set(&l.Observable, v) }
func (l *Label) SetFontStyle(v scene.FontStyle)   { l.fontStyle.Set(&l.Observable, v) }
func (l *Label) SetFontWeight(v scene.FontWeight) { l.fontWeight.Set(&l.Observable, v) }
func (l *Label) SetFontSize(v float64)            { l.fontSize.Set(&l.Observable, v) }
func (l *Label) SetFontFamily(v string)           { l.fontFamily.Set(&l.Observable, v) }
func (l *Label) SetColor(v string)                { l.color.Set(&l.Observable, v) }

// Font returns the font of the label.
func (l *Label) Font() scene.Font {
	return scene.Font{
		Style:  l.FontStyle(),
		Weight: l.FontWeight(),
		Size:   l.FontSize(),
		Family: l.FontFamily(),
	}
}

// Apply sets the font and color of the text node.
func (l *Label) Apply(t *scene.Text) {
	t.SetFont(l.Font())
	t.SetFill(l.Color())
}
