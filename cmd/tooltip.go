// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/chart/chart"
)

// TooltipCmd prints the tooltip of the series node at (x, y) in the
// chart of the options file, as HTML, or as plain text if plain is set.
// It returns an error if there is no node there.
func (a *App) TooltipCmd(filename string, x, y float64, plain bool) error {
	c, err := build(filename)
	if err != nil {
		return err
	}
	defer c.Destroy()
	c.Flush()
	h := c.TooltipAt(x, y)
	if h == "" {
		return fmt.Errorf("no series node at (%g, %g)", x, y)
	}
	if plain {
		h = chart.PlainText(h)
	}
	_, err = fmt.Fprintln(a.Stdout, h)
	return err
}
