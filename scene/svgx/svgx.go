// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgx renders a scene graph as an SVG document.
package svgx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/scene"
)

// errWriter records the first write error, since the SVG
// writer does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return len(b), nil
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, nil
}

// Render writes the scene to w as an SVG document.
// Invisible nodes and their children are omitted.
func Render(w io.Writer, s *scene.Scene) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(s.Width), int(s.Height))
	if s.Background != "" {
		canvas.Rect(0, 0, int(s.Width), int(s.Height), "fill:"+color(s.Background))
	}
	renderNode(canvas, s.Root)
	canvas.End()
	return ew.err
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// color normalizes a CSS color for output, mapping
// unparsable colors to none.
func color(c string) string {
	if c == "" {
		return "none"
	}
	nc, err := colors.FromString(c, nil)
	if err != nil || nc.A == 0 {
		return "none"
	}
	return colors.AsCSS(nc)
}

func renderNode(canvas *svg.SVG, n scene.Node) {
	nb := n.AsNode()
	if !nb.Visible {
		return
	}
	var attrs []string
	if nb.TranslationX != 0 || nb.TranslationY != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="translate(%s,%s)"`, num(nb.TranslationX), num(nb.TranslationY)))
	}
	if nb.Opacity != 1 {
		attrs = append(attrs, fmt.Sprintf(`opacity="%s"`, num(nb.Opacity)))
	}
	grouped := len(attrs) > 0
	if grouped {
		canvas.Group(attrs...)
	}
	switch n := n.(type) {
	case *scene.Text:
		renderText(canvas, n)
	case scene.Shape:
		renderShape(canvas, n)
	}
	for _, k := range nb.SortedChildren() {
		renderNode(canvas, k)
	}
	if grouped {
		canvas.Gend()
	}
}

func paintStyle(p scene.Paint, dash []float64, fill bool) string {
	var sb strings.Builder
	if fill {
		fmt.Fprintf(&sb, "fill:%s;fill-opacity:%s;", color(p.Fill), num(p.FillOpacity))
	} else {
		sb.WriteString("fill:none;")
	}
	if p.Stroke != "" && p.StrokeWidth > 0 {
		fmt.Fprintf(&sb, "stroke:%s;stroke-width:%s;stroke-opacity:%s;", color(p.Stroke), num(p.StrokeWidth), num(p.StrokeOpacity))
		if len(dash) > 0 {
			ds := make([]string, len(dash))
			for i, d := range dash {
				ds[i] = num(d)
			}
			fmt.Fprintf(&sb, "stroke-dasharray:%s;stroke-dashoffset:%s;", strings.Join(ds, ","), num(p.LineDashOffset))
		}
	}
	return strings.TrimSuffix(sb.String(), ";")
}

func renderShape(canvas *svg.SVG, s scene.Shape) {
	sb := s.AsShape()
	_, isLine := s.(*scene.Line)
	d := s.Outline().SVG()
	if sh := sb.Paint.Shadow; sh != nil && !isLine {
		canvas.Path(d, fmt.Sprintf(`transform="translate(%s,%s)"`, num(sh.XOffset), num(sh.YOffset)), "fill:"+color(sh.Color))
	}
	canvas.Path(d, paintStyle(sb.Paint, sb.LineDash, !isLine))
}

func anchor(a scene.TextAlign) string {
	switch a {
	case scene.AlignCenter:
		return "middle"
	case scene.AlignRight, scene.AlignEnd:
		return "end"
	}
	return "start"
}

func baseline(b scene.TextBaseline) string {
	switch b {
	case scene.BaselineTop, scene.BaselineHanging:
		return "hanging"
	case scene.BaselineMiddle:
		return "middle"
	case scene.BaselineBottom:
		return "text-after-edge"
	}
	return "alphabetic"
}

func renderText(canvas *svg.SVG, t *scene.Text) {
	if t.Text == "" {
		return
	}
	f := t.Font
	style := fmt.Sprintf("font-size:%spx;font-family:%s;text-anchor:%s;dominant-baseline:%s;%s",
		num(f.Size), strings.ReplaceAll(f.Family, `"`, `'`), anchor(t.Align), baseline(t.Baseline),
		paintStyle(t.Paint, nil, true))
	if f.IsBold() {
		style += ";font-weight:bold"
	}
	if f.IsItalic() {
		style += ";font-style:italic"
	}
	canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(t.X), num(t.Y)))
	canvas.Text(0, 0, t.Text, style)
	canvas.Gend()
}
