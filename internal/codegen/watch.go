package codegen

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
)

// Result is the outcome of one regeneration triggered by Watch.
type Result struct {
	Schema string
	Err    error
}

// Watch regenerates a schema into outDir each time its file is written,
// created or renamed in dir. The set of schemas is rediscovered on every
// event with the same rules as Discover. Both channels are closed when ctx
// is cancelled or the watcher fails.
func (g *Generator) Watch(ctx context.Context, dir, outDir string, explicit []string) (results <-chan Result, errors <-chan error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %v", err)
	}
	dirs := []string{dir}
	for _, p := range explicit {
		if d := filepath.Dir(p); !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}
	if len(explicit) > 0 {
		dirs = dirs[1:]
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			watcher.Close()
			return nil, nil, fmt.Errorf("failed to add directory %s to watcher: %v", d, err)
		}
		g.log.Info("Watching schema directory", "dir", d)
	}

	resultsCh := make(chan Result, 1)
	errorsCh := make(chan error, 1)

	go func() {
		defer close(resultsCh)
		defer close(errorsCh)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				g.log.Info("Schema watcher stopped")
				return
			case event, ok := <-watcher.Events:
				if !ok {
					errorsCh <- fmt.Errorf("watcher events channel closed unexpectedly")
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				name, err := filepath.Abs(event.Name)
				if err != nil {
					continue
				}
				targets, err := Discover(dir, explicit, g.log)
				if err != nil || !slices.Contains(targets, name) {
					continue
				}

				g.log.Debug("Schema changed. Regenerating...", "schema", name)
				_, err = g.Run(ctx, []string{name}, outDir)
				select {
				case resultsCh <- Result{Schema: name, Err: err}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					errorsCh <- fmt.Errorf("watcher errors channel closed unexpectedly")
					return
				}
				g.log.Warn("Watcher error", "err", err)
			}
		}
	}()

	return resultsCh, errorsCh, nil
}
