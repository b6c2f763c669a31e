// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/config"
	"cogentcore.org/chart/series"
)

const salesTOML = `
title = "Sales"
width = 400
theme = "dark"

[legend]
position = "bottom"

[[series]]
type = "bar"
xKey = "quarter"
yKeys = ["apples", "pears"]
labels = true

[[series.data]]
quarter = "Q1"
apples = 3
pears = 1

[[series.data]]
quarter = "Q2"
apples = 4
pears = 2
`

const salesYAML = `
title: Sales
width: 400
theme: dark
legend:
  position: bottom
series:
  - type: bar
    xKey: quarter
    yKeys: [apples, pears]
    labels: true
    data:
      - {quarter: Q1, apples: 3, pears: 1}
      - {quarter: Q2, apples: 4, pears: 2}
`

const salesJSON = `{
	"title": "Sales",
	"width": 400,
	"theme": "dark",
	"legend": {"position": "bottom"},
	"series": [{
		"type": "bar",
		"xKey": "quarter",
		"yKeys": ["apples", "pears"],
		"labels": true,
		"data": [
			{"quarter": "Q1", "apples": 3, "pears": 1},
			{"quarter": "Q2", "apples": 4, "pears": 2}
		]
	}]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestNew(t *testing.T) {
	o := config.New()
	assert.Equal(t, 800.0, o.Width)
	assert.Equal(t, 600.0, o.Height)
	assert.Equal(t, 20.0, o.Padding)
	assert.Equal(t, "light", o.Theme)
	assert.Equal(t, "right", o.Legend.Position)
	assert.Equal(t, 20.0, o.Legend.Spacing)
	assert.Empty(t, o.Series)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range []string{
		writeFile(t, dir, "sales.toml", salesTOML),
		writeFile(t, dir, "sales.yaml", salesYAML),
		writeFile(t, dir, "sales.json", salesJSON),
	} {
		o, err := config.Open(fn)
		require.NoError(t, err, fn)
		assert.Equal(t, "Sales", o.Title, fn)
		assert.Equal(t, 400.0, o.Width, fn)
		assert.Equal(t, 600.0, o.Height, fn)
		assert.Equal(t, "dark", o.Theme, fn)
		assert.Equal(t, "bottom", o.Legend.Position, fn)
		assert.Equal(t, 20.0, o.Legend.Spacing, fn)
		require.Len(t, o.Series, 1, fn)
		so := o.Series[0]
		assert.Equal(t, "bar", so.Type, fn)
		assert.Equal(t, "quarter", so.XKey, fn)
		assert.Equal(t, []string{"apples", "pears"}, so.YKeys, fn)
		require.NotNil(t, so.Labels, fn)
		assert.True(t, *so.Labels, fn)
		require.Len(t, so.Data, 2, fn)
		assert.Equal(t, "Q2", so.Data[1]["quarter"], fn)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Open(writeFile(t, dir, "sales.ini", "title=x"))
	assert.True(t, errors.Is(err, config.ErrUnknownFormat))

	_, err = config.Open(writeFile(t, dir, "bad.toml", "title = "))
	assert.Error(t, err)

	_, err = config.Open(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	o, err := config.Open(writeFile(t, dir, "sales.toml", salesTOML))
	require.NoError(t, err)
	for _, name := range []string{"out.yaml", "out.json"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, config.Save(o, fn))
		o2, err := config.Open(fn)
		require.NoError(t, err, name)
		assert.Equal(t, o.Title, o2.Title, name)
		assert.Equal(t, o.Width, o2.Width, name)
		assert.Equal(t, o.Legend, o2.Legend, name)
		assert.Equal(t, o.Series[0].YKeys, o2.Series[0].YKeys, name)
	}
	assert.True(t, errors.Is(config.Save(o, filepath.Join(dir, "out.txt")), config.ErrUnknownFormat))
}

func TestValidate(t *testing.T) {
	o := config.New()
	assert.ErrorContains(t, o.Validate(), "no series")

	o.Theme = "neon"
	o.Legend.Position = "middle"
	o.Series = []config.SeriesOptions{{Type: "line"}, {Type: "scatter", Marker: "star"}}
	o.Axes = []config.AxisOptions{{Kind: "angle", Direction: "z"}}
	err := o.Validate()
	for _, s := range []string{`"neon"`, `"middle"`, `"line"`, `"star"`, `"angle"`, `"z"`} {
		assert.ErrorContains(t, err, s)
	}
}

func TestBuildBar(t *testing.T) {
	dir := t.TempDir()
	o, err := config.Open(writeFile(t, dir, "sales.toml", salesTOML))
	require.NoError(t, err)
	c, err := o.Build(dir)
	require.NoError(t, err)
	require.True(t, c.Flush())

	assert.Equal(t, "cartesian", c.Layout.Type())
	require.Len(t, c.Axes(), 2)
	assert.Equal(t, chart.CategoryAxis, c.Axis(chart.X).Kind)
	assert.Equal(t, chart.NumberAxis, c.Axis(chart.Y).Kind)
	assert.Equal(t, chart.Size{Width: 400, Height: 600}, c.Size())
	assert.Equal(t, "#1e1f24", c.Background())
	assert.Equal(t, "Sales", c.Title.Text())
	assert.True(t, c.Title.Enabled())
	assert.False(t, c.Subtitle.Enabled())
	assert.Equal(t, chart.LegendBottom, c.Legend.Position())

	b, ok := c.Series()[0].(*series.Bar)
	require.True(t, ok)
	assert.True(t, b.Label.Enabled())
	assert.Len(t, b.NodeData(), 4)
	assert.Equal(t, "#e07a82", b.Fills()[0])
	assert.Len(t, c.Legend.Data(), 2)
}

func TestBuildPieFromCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fruit.csv", "name,count\napple,3\npear,1\nplum,2\n")
	fn := writeFile(t, dir, "fruit.yaml", `
title: Fruit
series:
  - type: pie
    file: fruit.csv
    angleKey: count
    labelKey: name
    title: Basket
`)
	o, err := config.Open(fn)
	require.NoError(t, err)
	c, err := o.Build(filepath.Dir(fn))
	require.NoError(t, err)
	require.True(t, c.Flush())

	assert.Equal(t, "polar", c.Layout.Type())
	assert.Empty(t, c.Axes())
	p := c.Series()[0].(*series.Pie)
	assert.Len(t, p.NodeData(), 3)
	assert.True(t, p.Title.Enabled())
	items := c.Legend.Data()
	require.Len(t, items, 3)
	assert.Equal(t, "Basket - apple", items[0].Label)
}

func TestBuildTreemap(t *testing.T) {
	o := config.New()
	o.Series = []config.SeriesOptions{{
		Type:  "treemap",
		Title: "Market",
		Data: []map[string]any{
			{"label": "Tech", "children": []any{
				map[string]any{"label": "A", "size": 2, "color": 1},
			}},
		},
	}}
	c, err := o.Build("")
	require.NoError(t, err)
	require.True(t, c.Flush())
	assert.Equal(t, "hierarchy", c.Layout.Type())
	tm := c.Series()[0].(*series.Treemap)
	assert.Equal(t, "Market", tm.RootName())
	// a single row is the root itself
	assert.Equal(t, "TECH", tm.Tree().Label)
	assert.Len(t, tm.NodeData(), 2)
}

func TestBuildErrors(t *testing.T) {
	o := config.New()
	o.Series = []config.SeriesOptions{{Type: "bar"}, {Type: "pie"}}
	_, err := o.Build("")
	assert.ErrorContains(t, err, "cannot be drawn")

	o.Series = []config.SeriesOptions{{Type: "bar", File: "missing.csv"}}
	_, err = o.Build(t.TempDir())
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	o, err := config.Open(writeFile(t, dir, "sales.toml", salesTOML))
	require.NoError(t, err)
	c, err := o.Build(dir)
	require.NoError(t, err)
	require.True(t, c.Flush())
	b := c.Series()[0].(*series.Bar)

	o.Title = "Sales 2"
	o.Theme = "pastel"
	o.Series[0].Grouped = true
	require.NoError(t, o.Apply(c, dir))
	require.True(t, c.Flush())
	assert.Same(t, b, c.Series()[0])
	assert.Equal(t, "Sales 2", c.Title.Text())
	assert.Equal(t, "#fdfcf7", c.Background())
	assert.Equal(t, [][]string{{"apples"}, {"pears"}}, b.YKeys())

	o.Series = append(o.Series, config.SeriesOptions{Type: "scatter"})
	assert.True(t, errors.Is(o.Apply(c, dir), config.ErrMismatch))
	o.Series = []config.SeriesOptions{{Type: "pie"}}
	assert.True(t, errors.Is(o.Apply(c, dir), config.ErrMismatch))
}

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"dark", "light", "pastel"}, config.Themes())

	th, err := config.ThemeByName("Light")
	require.NoError(t, err)
	th.Fills[0] = "black"
	th2, err := config.ThemeByName("light")
	require.NoError(t, err)
	assert.Equal(t, chart.DefaultFills[0], th2.Fills[0])
	assert.Equal(t, "#c16068", chart.DefaultFills[0])

	_, err = config.ThemeByName("neon")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	defer func(d time.Duration) { config.WatchDelay = d }(config.WatchDelay)
	config.WatchDelay = 10 * time.Millisecond

	dir := t.TempDir()
	fn := writeFile(t, dir, "sales.toml", salesTOML)
	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan *config.Options, 16)
	done := make(chan error)
	go func() {
		done <- config.Watch(ctx, fn, func(o *config.Options, err error) {
			if err == nil {
				got <- o
			}
		})
	}()

	var o *config.Options
	assert.Eventually(t, func() bool {
		// other files in the directory are ignored
		os.WriteFile(filepath.Join(dir, "other.toml"), []byte(`title = "x"`), 0666)
		os.WriteFile(fn, []byte(`title = "Reloaded"`), 0666)
		select {
		case o = <-got:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
	require.NotNil(t, o)
	assert.Equal(t, "Reloaded", o.Title)
}
