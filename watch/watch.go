// Package watch regenerates views when custom stub files change.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last filesystem event
// before the callback fires. Editors often emit several events per
// save; debouncing folds them into one regeneration.
const DefaultDebounce = 300 * time.Millisecond

// A Watcher observes a stub directory and invokes a callback after
// changes settle.
type Watcher struct {
	dir      string
	debounce time.Duration
	log      *logrus.Logger
}

// New returns a watcher over the given stub directory.
func New(dir string) *Watcher {
	return &Watcher{
		dir:      dir,
		debounce: DefaultDebounce,
		log:      logrus.StandardLogger(),
	}
}

// WithDebounce sets the debounce interval.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// WithLogger sets the logger.
func (w *Watcher) WithLogger(log *logrus.Logger) *Watcher {
	if log != nil {
		w.log = log
	}
	return w
}

// Run watches until ctx is done, invoking fn after each settled batch
// of write/create/remove/rename events. A failing fn is logged, not
// fatal, so a broken intermediate save does not stop the watch.
func (w *Watcher) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.WithField("dir", w.dir).Info("watching for stub changes")

	var (
		timer   = time.NewTimer(0)
		pending bool
	)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.WithField("file", event.Name).Debug("stub changed")
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(w.debounce)
			pending = true
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")
		case <-timer.C:
			pending = false
			if err := fn(ctx); err != nil {
				w.log.WithError(err).Error("regeneration failed")
			}
		}
	}
}
