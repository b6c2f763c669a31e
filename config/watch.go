// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long [Watch] waits after the last change to a
// file before reopening it, so that one save is one reload.
var WatchDelay = 100 * time.Millisecond

// Watch calls fn with the options reopened from the named file each
// time it changes, until the context is done. Errors opening the file
// are passed to fn, and watching continues. The directory of the file
// is watched, so editors that save by replacing the file are seen.
func Watch(ctx context.Context, filename string, fn func(o *Options, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}

	timer := time.NewTimer(WatchDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Rename == fsnotify.Rename:
				timer.Reset(WatchDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("config.Watch: %w", err))
		case <-timer.C:
			fn(Open(abs))
		}
	}
}
