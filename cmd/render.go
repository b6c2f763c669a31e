// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
)

// RenderCmd renders the charts of the given options files,
// each on its own goroutine, and returns the output files.
func (a *App) RenderCmd(ctx context.Context, files ...string) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no options files")
	}
	format, err := a.format()
	if err != nil {
		return nil, err
	}
	several := len(files) > 1
	if several && a.Output != "" {
		if err := os.MkdirAll(a.Output, 0755); err != nil {
			return nil, err
		}
	}

	outs := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if a.Jobs > 0 {
		g.SetLimit(a.Jobs)
	}
	for i, fn := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := build(fn)
			if err != nil {
				return err
			}
			defer c.Destroy()
			out := a.outputFor(fn, format, several)
			if err := renderChart(c, out, format); err != nil {
				return fmt.Errorf("%s: %w", out, err)
			}
			slog.Info("rendered", "options", fn, "output", out)
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outs, nil
}
