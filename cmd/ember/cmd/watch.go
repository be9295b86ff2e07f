package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/emberkit/ember/pkg/config"
)

// debounceDuration collapses the burst of events an editor save produces.
const debounceDuration = 100 * time.Millisecond

// watchConfig calls onChange after ember.yaml in root is written, created,
// or replaced. Calls are debounced and never overlap. The directory is
// watched rather than the file so that atomic saves (write to a temp file,
// then rename) are seen. Close the returned watcher to stop.
func watchConfig(root string, onChange func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	go func() {
		var (
			mu    sync.Mutex
			timer *time.Timer
		)
		trigger := func() {
			mu.Lock()
			defer mu.Unlock()
			onChange()
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != config.FileName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDuration, trigger)
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(stderr, "Warning: watch: %v\n", err)
			}
		}
	}()

	return watcher, nil
}
