// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses and manipulates the CSS color strings used
// throughout the chart packages, and provides the default palettes.
package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"cogentcore.org/chart/base/errors"
)

// Transparent is the fully transparent color.
var Transparent = color.NRGBA{}

// DefaultFills are the fill colors assigned to series in order.
var DefaultFills = []string{
	"#f3622d", "#fba71b", "#57b757", "#41a9c9",
	"#4258c9", "#9a42c8", "#c84164", "#888888",
}

// DefaultStrokes are the stroke colors matching [DefaultFills].
var DefaultStrokes = []string{
	"#aa4520", "#b07513", "#3d803d", "#2d768d",
	"#2e3e8d", "#6c2e8c", "#8c2d46", "#5f5f5f",
}

// AsNRGBA returns the given color as a non-premultiplied color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromName returns the color with the given CSS standard name.
func FromName(name string) (color.NRGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.NRGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return AsNRGBA(c), nil
}

// FromString returns a color value from the given CSS string.
// It accepts hex values, rgb(), rgba(), hsl(), and hsla() functions,
// standard color names, "none", and "transparent", and the following
// transformations of the base color:
//   - inverse
//   - lighten-PCT or darken-PCT: changes the HSL lightness by PCT percent
//   - clearer-PCT or opaquer-PCT: changes the alpha by PCT percent
//   - blend-PCT-color: blends PCT percent of the given color into base
func FromString(str string, base color.Color) (color.NRGBA, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return color.NRGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgb"):
		args, err := funcArgs(lstr, "rgba", "rgb")
		if err != nil {
			return color.NRGBA{}, err
		}
		return fromRGBArgs(args)
	case strings.HasPrefix(lstr, "hsl"):
		args, err := funcArgs(lstr, "hsla", "hsl")
		if err != nil {
			return color.NRGBA{}, err
		}
		return fromHSLArgs(args)
	}
	if hidx := strings.Index(lstr, "-"); hidx > 0 {
		cmd, rest := lstr[:hidx], lstr[hidx+1:]
		pctstr, clrstr, _ := strings.Cut(rest, "-")
		pct, err := strconv.ParseFloat(pctstr, 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colors.FromString: error getting percent from %q: %w", pctstr, err)
		}
		switch cmd {
		case "lighten":
			return Lighten(base, pct), nil
		case "darken":
			return Lighten(base, -pct), nil
		case "clearer":
			return Clearer(base, pct), nil
		case "opaquer":
			return Clearer(base, -pct), nil
		case "blend":
			if clrstr == "" {
				return color.NRGBA{}, fmt.Errorf("colors.FromString: blend color not found; format is blend-PCT-color, got %q", lstr)
			}
			oc, err := FromString(clrstr, base)
			return Blend(pct, base, oc), err
		}
	}
	switch lstr {
	case "none", "transparent":
		return Transparent, nil
	case "inverse":
		if base == nil {
			return color.NRGBA{}, errors.New("colors.FromString: base color must be provided for inverse")
		}
		return Inverse(base), nil
	}
	return FromName(lstr)
}

// MustFromString returns the color for the given string,
// panicking on any error.
func MustFromString(str string, base color.Color) color.NRGBA {
	return errors.Must1(FromString(str, base))
}

// LogFromString returns the color for the given string,
// logging any error.
func LogFromString(str string, base color.Color) color.NRGBA {
	return errors.Log1(FromString(str, base))
}

func funcArgs(s string, names ...string) ([]string, error) {
	for _, nm := range names {
		if strings.HasPrefix(s, nm+"(") && strings.HasSuffix(s, ")") {
			inner := s[len(nm)+1 : len(s)-1]
			inner = strings.NewReplacer("/", ",", " ", ",").Replace(inner)
			var args []string
			for _, a := range strings.Split(inner, ",") {
				if a != "" {
					args = append(args, a)
				}
			}
			return args, nil
		}
	}
	return nil, errors.New("colors.FromString: malformed color function: " + s)
}

// component parses a number or percentage, scaling percentages to max.
func component(s string, max float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		return f / 100 * max, err
	}
	return strconv.ParseFloat(s, 64)
}

func alpha(args []string, i int) (float64, error) {
	if len(args) <= i {
		return 1, nil
	}
	return component(args[i], 1)
}

func fromRGBArgs(args []string) (color.NRGBA, error) {
	if len(args) < 3 {
		return color.NRGBA{}, fmt.Errorf("colors.FromString: rgb needs 3 components, got %d", len(args))
	}
	var rgb [3]float64
	for i := range rgb {
		v, err := component(args[i], 255)
		if err != nil {
			return color.NRGBA{}, err
		}
		rgb[i] = v
	}
	a, err := alpha(args, 3)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{clamp8(rgb[0]), clamp8(rgb[1]), clamp8(rgb[2]), clamp8(a * 255)}, nil
}

func fromHSLArgs(args []string) (color.NRGBA, error) {
	if len(args) < 3 {
		return color.NRGBA{}, fmt.Errorf("colors.FromString: hsl needs 3 components, got %d", len(args))
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return color.NRGBA{}, err
	}
	s, err := component(args[1], 1)
	if err != nil {
		return color.NRGBA{}, err
	}
	l, err := component(args[2], 1)
	if err != nil {
		return color.NRGBA{}, err
	}
	a, err := alpha(args, 3)
	if err != nil {
		return color.NRGBA{}, err
	}
	return fromColorful(colorful.Hsl(math.Mod(h, 360), s, l), a), nil
}

func clamp8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// FromHex parses the given hex color string, with or without a
// leading #, in 3, 4, 6, or 8 digit form.
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 || len(hex) == 4 {
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// AsHex returns the color as #rrggbb, or #rrggbbaa if it
// is not fully opaque.
func AsHex(c color.Color) string {
	n := AsNRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// AsCSS returns the color as a hex string if it is opaque,
// and as an rgba() function otherwise.
func AsCSS(c color.Color) string {
	n := AsNRGBA(c)
	if n.A == 255 {
		return AsHex(n)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64))
}

// WithAlpha returns the color with the alpha set to the
// given value between 0 and 1.
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := AsNRGBA(c)
	n.A = clamp8(a * 255)
	return n
}

// ApplyOpacity returns the color with its alpha multiplied by
// the given opacity between 0 and 1.
func ApplyOpacity(c color.Color, opacity float64) color.NRGBA {
	n := AsNRGBA(c)
	n.A = clamp8(float64(n.A) * opacity)
	return n
}

// Clearer returns a color that is the given amount more
// transparent, in percent of absolute alpha. Negative amounts
// make it more opaque.
func Clearer(c color.Color, amount float64) color.NRGBA {
	n := AsNRGBA(c)
	n.A = clamp8(float64(n.A) - amount/100*255)
	return n
}

func toColorful(c color.Color) (colorful.Color, float64) {
	n := AsNRGBA(c)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}, float64(n.A) / 255
}

func fromColorful(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{r, g, b, clamp8(a * 255)}
}

// Lighten returns the color with its HSL lightness increased by the
// given percent. Negative amounts darken it.
func Lighten(c color.Color, pct float64) color.NRGBA {
	cf, a := toColorful(c)
	h, s, l := cf.Hsl()
	l = math.Max(0, math.Min(1, l+pct/100))
	return fromColorful(colorful.Hsl(h, s, l), a)
}

// Blend returns the given percent blend between the two colors,
// in the Lab color space: 10 is 10% of y and 90% of x.
func Blend(pct float64, x, y color.Color) color.NRGBA {
	xc, xa := toColorful(x)
	yc, ya := toColorful(y)
	t := math.Max(0, math.Min(100, pct)) / 100
	return fromColorful(xc.BlendLab(yc, t), xa+(ya-xa)*t)
}

// Inverse returns the inverse of the given color,
// keeping its alpha.
func Inverse(c color.Color) color.NRGBA {
	n := AsNRGBA(c)
	return color.NRGBA{255 - n.R, 255 - n.G, 255 - n.B, n.A}
}

// Palette returns the color at index i of the palette, cycling.
func Palette(p []string, i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}
