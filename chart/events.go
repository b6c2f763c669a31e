// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chart/observe"
)

// NodeClickEvent is fired by a series when one of its nodes is clicked.
type NodeClickEvent struct {
	observe.Base

	// Datum is the node datum of the clicked node.
	Datum NodeDatum
}

// SeriesNodeClickEvent is fired by a chart when a node of one of
// its series is clicked.
type SeriesNodeClickEvent struct {
	observe.Base

	// Series is the series owning the clicked node.
	Series Series

	// Datum is the node datum of the clicked node.
	Datum NodeDatum
}

// LegendClickEvent is fired by a legend when one of its items is clicked.
type LegendClickEvent struct {
	observe.Base

	// SeriesID is the id of the series owning the item.
	SeriesID string

	// ItemID is the id of the item within its series.
	ItemID string

	// Enabled is the new state of the item.
	Enabled bool
}
