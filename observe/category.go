// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observe

import (
	"fmt"
	"strings"
)

// Category is the closed set of categorical events that reactive
// properties can declare. Several unrelated properties declaring the
// same category coalesce into one downstream action.
type Category int32

const (
	// Change is fired by presentation-only properties
	// that do not affect layout or data.
	Change Category = iota

	// LayoutChange is fired by properties that affect the size
	// or position of chart elements.
	LayoutChange

	// DataChange is fired by properties that affect processed
	// data or axis domains.
	DataChange

	// Update is fired by properties that only require
	// the nodes of a series to be updated.
	Update

	// LegendChange is fired when the items shown in the legend change.
	LegendChange

	// DataProcessed is fired by a series after it processed its data.
	DataProcessed

	// NodeClick is fired by a series when one of its nodes is clicked.
	NodeClick

	// SeriesNodeClick is fired by a chart when a node of
	// any of its series is clicked.
	SeriesNodeClick

	// LegendClick is fired by a legend when one of its items is clicked.
	LegendClick

	// CategoriesN is the number of categories.
	CategoriesN
)

var categoryNames = [CategoriesN]string{
	"change",
	"layoutChange",
	"dataChange",
	"update",
	"legendChange",
	"dataProcessed",
	"nodeClick",
	"seriesNodeClick",
	"legendClick",
}

// String returns the lowerCamelCase name of the category.
func (c Category) String() string {
	if c < 0 || c >= CategoriesN {
		return fmt.Sprintf("Category(%d)", int32(c))
	}
	return categoryNames[c]
}

// CategoryFromString returns the category with the given name,
// ignoring case.
func CategoryFromString(s string) (Category, error) {
	for i, nm := range categoryNames {
		if strings.EqualFold(nm, s) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("observe.CategoryFromString: %q is not a valid category", s)
}

// Categories returns all of the categories in order.
func Categories() []Category {
	cs := make([]Category, CategoriesN)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}
