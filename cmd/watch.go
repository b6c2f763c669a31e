// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/config"
)

// WatchCmd renders the chart of the options file, and renders it
// again each time the file changes, until the context is done.
// Changes that keep the series and axes of the chart are applied to
// it in place; others build a new chart. Errors in the changed file
// are logged and the last good chart is kept. The rendered function,
// if non-nil, is called with the output file after every render.
func (a *App) WatchCmd(ctx context.Context, filename string, rendered func(out string)) error {
	format, err := a.format()
	if err != nil {
		return err
	}
	c, err := build(filename)
	if err != nil {
		return err
	}
	out := a.outputFor(filename, format, false)
	render := func() {
		if errors.Log(renderChart(c, out, format)) != nil {
			return
		}
		slog.Info("rendered", "options", filename, "output", out)
		if rendered != nil {
			rendered(out)
		}
	}
	render()

	dir := filepath.Dir(filename)
	return config.Watch(ctx, filename, func(o *config.Options, err error) {
		if errors.Log(err) != nil || errors.Log(o.Validate()) != nil {
			return
		}
		err = o.Apply(c, dir)
		if errors.Is(err, config.ErrMismatch) {
			var nc *chart.Chart
			nc, err = o.Build(dir)
			if err == nil {
				c.Destroy()
				c = nc
			}
		}
		if errors.Log(err) != nil {
			return
		}
		render()
	})
}
