// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/chart/config"
)

const treemapYAML = `
width: 300
height: 200
series:
  - type: treemap
    colorName: Growth
    data:
      - label: Tech
        children:
          - {label: A, size: 3, color: 2}
          - {label: B, size: 1, color: -1}
`

func TestInit(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "fruit.toml")
	a := NewApp()
	require.NoError(t, a.InitCmd(fn))
	assert.Error(t, a.InitCmd(fn))

	o, err := config.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "Fruit sales", o.Title)
	require.Len(t, o.Series, 1)
	assert.Len(t, o.Series[0].Data, 4)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "fruit.yaml")
	a := NewApp()
	require.NoError(t, a.InitCmd(fn))

	outs, err := a.RenderCmd(context.Background(), fn)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "fruit.svg")}, outs)
	b, err := os.ReadFile(outs[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
	assert.Contains(t, string(b), "Fruit sales")

	a.Output = filepath.Join(dir, "chart.png")
	outs, err = a.RenderCmd(context.Background(), fn)
	require.NoError(t, err)
	b, err = os.ReadFile(outs[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestRenderSeveral(t *testing.T) {
	dir := t.TempDir()
	a := NewApp()
	var files []string
	for _, name := range []string{"a.toml", "b.json", "c.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, a.InitCmd(fn))
		files = append(files, fn)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree.yaml"), []byte(treemapYAML), 0666))
	files = append(files, filepath.Join(dir, "tree.yaml"))

	a.Output = filepath.Join(dir, "out")
	a.Format = "png"
	a.Jobs = 2
	outs, err := a.RenderCmd(context.Background(), files...)
	require.NoError(t, err)
	require.Len(t, outs, 4)
	for i, out := range outs {
		assert.Equal(t, filepath.Join(dir, "out"), filepath.Dir(out))
		base := filepath.Base(files[i])
		assert.Equal(t, strings.TrimSuffix(base, filepath.Ext(base))+".png", filepath.Base(out))
		assert.FileExists(t, out)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	a := NewApp()
	_, err := a.RenderCmd(context.Background())
	assert.Error(t, err)

	a.Format = "gif"
	_, err = a.RenderCmd(context.Background(), filepath.Join(dir, "x.toml"))
	assert.ErrorContains(t, err, "gif")

	a.Format = ""
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`theme = "neon"`), 0666))
	_, err = a.RenderCmd(context.Background(), bad)
	assert.ErrorContains(t, err, "neon")
}

func TestTooltip(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(treemapYAML), 0666))

	var out bytes.Buffer
	a := NewApp()
	a.Stdout = &out
	require.NoError(t, a.TooltipCmd(fn, 150, 100, true))
	assert.Contains(t, out.String(), "Growth")
	assert.NotContains(t, out.String(), "<")

	assert.Error(t, a.TooltipCmd(fn, -10, -10, false))
}

func TestWatch(t *testing.T) {
	defer func(d time.Duration) { config.WatchDelay = d }(config.WatchDelay)
	config.WatchDelay = 10 * time.Millisecond

	dir := t.TempDir()
	fn := filepath.Join(dir, "fruit.yaml")
	a := NewApp()
	require.NoError(t, a.InitCmd(fn))
	o, err := config.Open(fn)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	renders := make(chan string, 16)
	done := make(chan error)
	go func() {
		done <- a.WatchCmd(ctx, fn, func(out string) { renders <- out })
	}()
	out := <-renders
	assert.Equal(t, filepath.Join(dir, "fruit.svg"), out)

	// a new title is applied in place; a new series type rebuilds
	o.Title = "Reloaded"
	o.Series[0].Type = "scatter"
	o.Series[0].YKey = "apples"
	o.Series[0].XKey = "pears"
	assert.Eventually(t, func() bool {
		config.Save(o, fn)
		select {
		case <-renders:
			b, _ := os.ReadFile(out)
			return strings.Contains(string(b), "Reloaded")
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
