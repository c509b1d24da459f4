// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch generates the output OBJ file from the preset file, and generates
// it again each time the preset file changes, until interrupted.
func Watch(c *Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return watch(ctx, c, nil)
}

// watch runs the watch loop until ctx is done. Each generation result is
// sent on done, if it is non-nil.
func watch(ctx context.Context, c *Config, done chan<- error) error {
	if c.Preset == "" {
		return fmt.Errorf("watch requires a preset file")
	}
	preset, err := homedir.Expand(c.Preset)
	if err != nil {
		return err
	}
	preset, err = filepath.Abs(preset)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating preset watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(preset)); err != nil {
		return fmt.Errorf("watching %s: %w", preset, err)
	}
	regen := func() {
		err := regenerate(c)
		if done != nil {
			done <- err
		}
	}
	regen()
	logx.PrintlnInfo("watching ", preset)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != preset || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("preset changed", "file", event.Name, "op", event.Op.String())
			regen()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("preset watcher error: " + err.Error())
		}
	}
}

// regenerate generates the output from the current preset.
// Errors are logged, so that a bad edit does not stop the watch.
func regenerate(c *Config) error {
	tr, err := c.Torus()
	if errors.Log(err) != nil {
		return err
	}
	out, err := generate(c, tr)
	if errors.Log(err) != nil {
		return err
	}
	logx.PrintlnInfo(out, " generated!")
	return nil
}
