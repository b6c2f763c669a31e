// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"cogentcore.org/chart/base/errors"
)

// FontStyle is the CSS font style.
type FontStyle string

const (
	FontNormal FontStyle = ""
	Italic     FontStyle = "italic"
	Oblique    FontStyle = "oblique"
)

// FontWeight is the CSS font weight.
type FontWeight string

const (
	WeightNormal FontWeight = ""
	Bold         FontWeight = "bold"
	Bolder       FontWeight = "bolder"
	Lighter      FontWeight = "lighter"
)

// Font describes the font of a [Text] node.
type Font struct {
	Style  FontStyle
	Weight FontWeight
	Size   float64
	Family string
}

// IsBold returns whether the weight renders as bold.
func (f Font) IsBold() bool {
	switch f.Weight {
	case Bold, Bolder, "600", "700", "800", "900":
		return true
	}
	return false
}

// IsItalic returns whether the style renders as italic.
func (f Font) IsItalic() bool {
	return f.Style == Italic || f.Style == Oblique
}

// CSS returns the font as a CSS font shorthand,
// such as "italic bold 12px Verdana, sans-serif".
func (f Font) CSS() string {
	var parts []string
	if f.Style != FontNormal {
		parts = append(parts, string(f.Style))
	}
	if f.Weight != WeightNormal {
		parts = append(parts, string(f.Weight))
	}
	parts = append(parts, fmt.Sprintf("%gpx", f.Size))
	if f.Family != "" {
		parts = append(parts, f.Family)
	}
	return strings.Join(parts, " ")
}

// TextMetrics are the measured dimensions of a line of text.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns the line height.
func (m TextMetrics) Height() float64 { return m.Ascent + m.Descent }

// Text is measured and drawn with the Go fonts, which stand in for
// whatever family is requested.
var fonts struct {
	sync.Mutex
	parsed   [4]*opentype.Font
	faces    *lru.Cache
	measures *lru.Cache
}

type faceKey struct {
	variant int
	size    float64
}

type measureKey struct {
	face faceKey
	text string
}

func init() {
	fonts.faces = errors.Must1(lru.New(64))
	fonts.measures = errors.Must1(lru.New(4096))
}

func variantOf(f Font) int {
	v := 0
	if f.IsBold() {
		v |= 1
	}
	if f.IsItalic() {
		v |= 2
	}
	return v
}

// face returns the cached face for the key. fonts must be locked.
func face(k faceKey) font.Face {
	if fc, ok := fonts.faces.Get(k); ok {
		return fc.(font.Face)
	}
	ft := fonts.parsed[k.variant]
	if ft == nil {
		src := [...][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}[k.variant]
		ft = errors.Must1(opentype.Parse(src))
		fonts.parsed[k.variant] = ft
	}
	fc := errors.Must1(opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    k.size,
		DPI:     72,
		Hinting: font.HintingNone,
	}))
	fonts.faces.Add(k, fc)
	return fc
}

// WithFace calls fn with the face used to measure and draw text in
// the given font. Faces are not safe for concurrent use, so fn must
// not retain the face.
func WithFace(f Font, fn func(fc font.Face)) {
	fonts.Lock()
	defer fonts.Unlock()
	fn(face(faceKey{variantOf(f), fontSize(f)}))
}

func fontSize(f Font) float64 {
	if f.Size <= 0 {
		return 12
	}
	return f.Size
}

// MeasureText returns the metrics of the given single line of text.
func MeasureText(text string, f Font) TextMetrics {
	k := measureKey{faceKey{variantOf(f), fontSize(f)}, text}
	fonts.Lock()
	defer fonts.Unlock()
	if m, ok := fonts.measures.Get(k); ok {
		return m.(TextMetrics)
	}
	fc := face(k.face)
	met := fc.Metrics()
	m := TextMetrics{
		Width:   fixedToFloat(font.MeasureString(fc, text)),
		Ascent:  fixedToFloat(met.Ascent),
		Descent: fixedToFloat(met.Descent),
	}
	fonts.measures.Add(k, m)
	return m
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
