// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"cogentcore.org/chart/config"
)

// Example returns the options of an example bar chart.
func Example() *config.Options {
	o := config.New()
	o.Title = "Fruit sales"
	o.Subtitle = "By quarter"
	o.Series = []config.SeriesOptions{{
		Type:   "bar",
		XKey:   "quarter",
		YKeys:  []string{"apples", "pears", "plums"},
		YNames: map[string]string{"apples": "Apples", "pears": "Pears", "plums": "Plums"},
		Data: []map[string]any{
			{"quarter": "Q1", "apples": 140, "pears": 80, "plums": 32},
			{"quarter": "Q2", "apples": 124, "pears": 96, "plums": 60},
			{"quarter": "Q3", "apples": 112, "pears": 104, "plums": 88},
			{"quarter": "Q4", "apples": 118, "pears": 72, "plums": 40},
		},
	}}
	return o
}

// InitCmd writes the [Example] options to the named file,
// which must not exist yet.
func (a *App) InitCmd(filename string) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("%q already exists", filename)
	}
	if err := config.Save(Example(), filename); err != nil {
		return fmt.Errorf("error writing options file: %w", err)
	}
	return nil
}
