// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watch reloads path when it changes and passes each valid result to onChange.
// Invalid files are reported to onError and otherwise ignored. Watch returns
// once the watcher is set up; it stops when ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}
	if onError == nil {
		onError = func(error) {}
	}

	reload := func() {
		cfg, err := Load(path)
		if err != nil {
			onError(fmt.Errorf("reload config: %w", err))
			return
		}
		onChange(cfg)
	}

	go func() {
		defer watcher.Close()
		var debounce *time.Timer
		for {
			select {
			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != filepath.Base(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				onError(err)
			}
		}
	}()
	return nil
}
