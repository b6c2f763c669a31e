// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the structured logging setup shared by the
// chart packages and the vkchart command: a [log/slog] text handler
// with terminal-colored level names and helpers for warnings that
// must only be emitted once.
package logx

import (
	"io"
	"log/slog"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the command line flags of the program.
var UserLevel = &slog.LevelVar{}

func init() {
	UserLevel.Set(defaultUserLevel)
}

// NewHandler returns a text handler writing to w whose level names
// are colored when w is a terminal that supports colors.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lvl))
			return a
		},
	})
}

// LevelString returns the name of the given level, colored
// for the color profile of the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIBrightRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}

// Init installs a [NewHandler] for w as the default slog logger,
// at the given level.
func Init(w io.Writer, level slog.Level) {
	UserLevel.Set(level)
	slog.SetDefault(slog.New(NewHandler(w)))
}

var warned sync.Map

// WarnOnce logs msg at the warning level the first time it is called
// with the given key, and does nothing on later calls with the same key.
// It returns whether the message was logged.
func WarnOnce(key, msg string, args ...any) bool {
	if _, loaded := warned.LoadOrStore(key, struct{}{}); loaded {
		return false
	}
	slog.Warn(msg, args...)
	return true
}

// ResetWarnings forgets all keys recorded by [WarnOnce].
func ResetWarnings() {
	warned.Range(func(k, _ any) bool {
		warned.Delete(k)
		return true
	})
}
