// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestWarnOnce(t *testing.T) {
	ResetWarnings()
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	assert.True(t, WarnOnce("bar/xKey", "key not found", "key", "x"))
	assert.False(t, WarnOnce("bar/xKey", "key not found", "key", "x"))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("key not found")))

	ResetWarnings()
	assert.True(t, WarnOnce("bar/xKey", "key not found"))
}

func TestLevelString(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "WARN", LevelString(out, slog.LevelWarn))
	assert.Equal(t, "ERROR", LevelString(out, slog.LevelError))
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := UserLevel.Level()
	defer UserLevel.Set(prev)
	UserLevel.Set(slog.LevelWarn)
	l := slog.New(NewHandler(&buf))
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
