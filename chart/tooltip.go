// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"html"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	strip "github.com/grokify/html-strip-tags-go"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/data"
	"cogentcore.org/chart/observe"
)

// TooltipClass is the CSS class of tooltips. The title and content
// elements use it with "-title" and "-content" appended.
const TooltipClass = "vkchart-tooltip"

// TooltipParams are passed to a [TooltipRenderer]. Only the fields
// for the kind of series being rendered are set.
type TooltipParams struct {
	// Datum is the raw data row.
	Datum data.Row

	// Title is the title of the series.
	Title string

	// Color is the fill color of the node.
	Color string

	XKey, XName string
	XValue      data.Value

	YKey, YName string
	YValue      data.Value

	AngleKey, AngleName string
	AngleValue          data.Value

	RadiusKey, RadiusName string
	RadiusValue           data.Value

	LabelKey, SizeKey, ColorKey string
}

// TooltipContent is what a [TooltipRenderer] returns. If HTML is
// set it is the whole tooltip; otherwise the other fields are merged
// with the defaults of the series by [ToTooltipHTML].
type TooltipContent struct {
	HTML            safehtml.HTML
	Title           string
	Content         string
	Color           string
	BackgroundColor string
}

// TooltipRenderer returns the tooltip content for a node.
type TooltipRenderer func(p TooltipParams) TooltipContent

// SeriesTooltip is the tooltip configuration of a series.
type SeriesTooltip struct {
	observe.Observable

	// Renderer, if set, overrides the default tooltip content.
	Renderer TooltipRenderer

	enabled observe.Property[bool]
}

// NewSeriesTooltip returns a new enabled tooltip configuration.
func NewSeriesTooltip() *SeriesTooltip {
	t := &SeriesTooltip{enabled: observe.NewProperty("enabled", true, observe.Change)}
	t.InitObservable(t)
	return t
}

func (t *SeriesTooltip) Enabled() bool     { return t.enabled.Get() }
func (t *SeriesTooltip) SetEnabled(v bool) { t.enabled.Set(&t.Observable, v) }

// Render returns the tooltip HTML for the params, using the renderer
// if there is one, merged with the given defaults.
func (t *SeriesTooltip) Render(p TooltipParams, defaults TooltipContent) string {
	if t.Renderer == nil {
		return ToTooltipHTML(defaults, TooltipContent{})
	}
	return ToTooltipHTML(t.Renderer(p), defaults)
}

const tooltipSource = `{{if .Title}}<div class="vkchart-tooltip-title" style="{{.Style}}">{{.Title}}</div>{{end}}<div class="vkchart-tooltip-content">{{.Content}}</div>`

var tooltipTemplate = template.Must(template.New("tooltip").Parse(tooltipSource))

// ToTooltipHTML returns the HTML of the tooltip content, with empty
// fields taken from the defaults. The title and content are escaped.
// The title is shown in white on gray unless colors are given.
func ToTooltipHTML(in, defaults TooltipContent) string {
	if in.HTML.String() != "" {
		return in.HTML.String()
	}
	title := or(in.Title, defaults.Title)
	content := or(in.Content, defaults.Content)
	color := or(in.Color, defaults.Color, "white")
	bg := or(in.BackgroundColor, defaults.BackgroundColor, "#888")
	style := safehtml.StyleFromProperties(safehtml.StyleProperties{
		Color:           cssColor(color),
		BackgroundColor: cssColor(bg),
	})
	h, err := tooltipTemplate.ExecuteToHTML(struct {
		Title   string
		Content string
		Style   safehtml.Style
	}{title, content, style})
	if errors.Log(err) != nil {
		return ""
	}
	return h.String()
}

// cssColor returns the color in hex form, which passes style
// sanitization, or the color as given if it cannot be parsed.
func cssColor(c string) string {
	if nc, err := colors.FromString(c, nil); err == nil {
		return colors.AsHex(nc)
	}
	return c
}

func or(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}

// PlainText returns the text of tooltip HTML, with the tags removed,
// entities unescaped, and the title and content on separate lines.
func PlainText(h string) string {
	h = strings.ReplaceAll(h, "</div><div", "</div>\n<div")
	return strings.TrimSpace(html.UnescapeString(strip.StripTags(h)))
}
