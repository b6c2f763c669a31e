// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type inner struct {
	Size  float64 `default:"12"`
	Bold  bool    `default:"true"`
	Color string
}

type outer struct {
	Name    string   `default:"chart"`
	Count   int      `default:"3"`
	Fills   []string `default:"['#f3622d', '#fba71b']"`
	Font    inner
	Ptr     *inner
	Extra   *float64 `default:"0.5"`
	private int      `default:"7"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := &outer{}
	assert.NoError(t, SetFromDefaultTags(o))
	assert.Equal(t, "chart", o.Name)
	assert.Equal(t, 3, o.Count)
	assert.Equal(t, []string{"#f3622d", "#fba71b"}, o.Fills)
	assert.Equal(t, 12.0, o.Font.Size)
	assert.True(t, o.Font.Bold)
	assert.Nil(t, o.Ptr)
	if assert.NotNil(t, o.Extra) {
		assert.Equal(t, 0.5, *o.Extra)
	}
	assert.Equal(t, 0, o.private)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	type bad struct {
		N int `default:"x"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
	assert.Error(t, SetFromDefaultTags(3))
	assert.NoError(t, SetFromDefaultTags(nil))
}
