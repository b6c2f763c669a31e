// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands in the vkchart tool.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/config"
	"cogentcore.org/chart/scene"
	"cogentcore.org/chart/scene/rasterx"
	"cogentcore.org/chart/scene/svgx"
)

// App holds the flags shared by the commands of the vkchart tool.
type App struct {

	// Output is the output file, or the output directory when
	// rendering several charts. If empty, outputs are written
	// next to their options files.
	Output string

	// Format is svg or png. If empty, it is taken from the
	// extension of Output, and is svg otherwise.
	Format string

	// Jobs is the number of charts rendered at once,
	// or unlimited if not positive.
	Jobs int

	// Stdout is where the tooltip command writes.
	Stdout io.Writer
}

// NewApp returns a new app writing to [os.Stdout].
func NewApp() *App {
	return &App{Stdout: os.Stdout}
}

// format returns the output format, svg or png.
func (a *App) format() (string, error) {
	f := strings.ToLower(a.Format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(a.Output)), ".")
	}
	switch f {
	case "", "svg":
		return "svg", nil
	case "png":
		return "png", nil
	}
	return "", fmt.Errorf("unknown output format %q (want svg or png)", f)
}

// outputFor returns the output file of the named options file.
// The output is a directory if there are several inputs.
func (a *App) outputFor(filename, format string, several bool) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) + "." + format
	switch {
	case a.Output == "":
		return filepath.Join(filepath.Dir(filename), base)
	case several:
		return filepath.Join(a.Output, base)
	}
	return a.Output
}

// build opens the options file and builds its chart.
func build(filename string) (*chart.Chart, error) {
	o, err := config.Open(filename)
	if err != nil {
		return nil, err
	}
	c, err := o.Build(filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// write renders the scene to the named file in the format.
func write(s *scene.Scene, filename, format string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if format == "png" {
		return rasterx.WritePNG(f, s)
	}
	return svgx.Render(f, s)
}

// renderChart renders a snapshot of the chart to the named file.
func renderChart(c *chart.Chart, filename, format string) error {
	s, err := c.Snapshot()
	if err != nil {
		return err
	}
	return write(s, filename, format)
}
