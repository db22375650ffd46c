package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/tsblank/internal/logging"
)

// DefaultDebounce is how long Watch waits for events to settle before
// re-running.
const DefaultDebounce = 200 * time.Millisecond

// Watch runs once, then re-runs whenever an input under the watched paths
// changes, until ctx is done. onRun receives every run's result. Bursts of
// events within debounce collapse into one run; a zero debounce uses
// DefaultDebounce.
func (r *Runner) Watch(ctx context.Context, debounce time.Duration, onRun func(*Result, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	d := &discoverer{
		workDir:    r.opts.WorkingDir,
		extensions: r.opts.effectiveExtensions(),
		opts:       r.opts,
		outDir:     resolveOutDir(r.opts.WorkingDir, r.opts.Config.OutDir),
	}
	for _, path := range r.opts.effectivePaths() {
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.opts.WorkingDir, path)
		}
		if err := d.watchTree(fsw, path); err != nil {
			return err
		}
	}

	logger := logging.FromContext(ctx)
	onRun(r.Run(ctx))

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := d.watchTree(fsw, event.Name); err != nil {
						logger.Warn("watch new directory", logging.FieldPath, event.Name, logging.FieldError, err)
					}
					continue
				}
			}
			if !d.relevant(event) {
				continue
			}
			logger.Debug("input changed", logging.FieldPath, event.Name, logging.FieldEvent, event.Op.String())

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			onRun(r.Run(ctx))

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, err)
		}
	}
}

// watchTree adds root and every directory below it that discovery would
// enter. A file root watches its directory.
func (d *discoverer) watchTree(fsw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return addWatch(fsw, filepath.Dir(root))
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(entry.Name(), ".") || path == d.outDir || d.ignored(path)) {
			return filepath.SkipDir
		}
		return addWatch(fsw, path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return nil
}

func addWatch(fsw *fsnotify.Watcher, dir string) error {
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}
	return nil
}

// relevant reports whether event touches an input. An in-place Markdown
// rewrite triggers one extra run that writes nothing.
func (d *discoverer) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return d.matchesFile(event.Name)
}
