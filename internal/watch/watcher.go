// Package watch reruns catalog generation when watched source files change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Matcher decides which paths are relevant for regeneration
type Matcher interface {
	HasExtension(name string) bool
	IsSkippedDir(name string) bool
}

// Watcher debounces file system events and calls Regenerate once changes settle
type Watcher struct {
	roots      []string
	files      map[string]bool
	ignore     map[string]bool
	matcher    Matcher
	debounce   time.Duration
	logger     *zap.Logger
	regenerate func() error
}

// New creates a Watcher for the given files and directories.
// ignore lists paths whose changes never trigger regeneration, such as the output file.
func New(roots []string, ignore []string, matcher Matcher, debounce time.Duration, logger *zap.Logger, regenerate func() error) *Watcher {
	w := &Watcher{
		roots:      roots,
		files:      make(map[string]bool),
		ignore:     make(map[string]bool),
		matcher:    matcher,
		debounce:   debounce,
		logger:     logger,
		regenerate: regenerate,
	}
	for _, p := range ignore {
		w.ignore[absPath(p)] = true
	}
	return w
}

// Run regenerates once, then again after every burst of relevant changes, until ctx is done.
// Regeneration errors are logged and don't stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init failed: %w", err)
	}
	defer fw.Close()

	for _, root := range w.roots {
		if err := w.add(fw, root); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
	}

	w.trigger()

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				w.addIfDir(fw, ev.Name)
			}
			if !w.relevant(ev.Name) {
				continue
			}
			w.logger.Debug("Change detected", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C
		case <-pending:
			pending = nil
			w.trigger()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) trigger() {
	if err := w.regenerate(); err != nil {
		w.logger.Warn("Regeneration failed", zap.Error(err))
	}
}

// add watches a directory tree, or the directory holding a single file
func (w *Watcher) add(fw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		w.files[absPath(root)] = true
		return fw.Add(filepath.Dir(root))
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.matcher.IsSkippedDir(d.Name()) {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

func (w *Watcher) addIfDir(fw *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || !w.underRoot(path) {
		return
	}
	if err := w.add(fw, path); err != nil {
		w.logger.Warn("Failed to watch new directory", zap.String("path", path), zap.Error(err))
	}
}

// relevant reports whether a change to path should trigger regeneration
func (w *Watcher) relevant(path string) bool {
	abs := absPath(path)
	if w.ignore[abs] {
		return false
	}
	if w.files[abs] {
		return true
	}
	return w.matcher.HasExtension(path) && w.underRoot(path)
}

func (w *Watcher) underRoot(path string) bool {
	abs := absPath(path)
	for _, root := range w.roots {
		if w.files[absPath(root)] {
			continue
		}
		rel, err := filepath.Rel(absPath(root), abs)
		if err == nil && rel != ".." && !startsWithParent(rel) {
			return true
		}
	}
	return false
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
