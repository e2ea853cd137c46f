package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bladegen/bladegen/plan"
)

// A Writer renders manifest entries into files under an output root.
// The planner's manifest is advisory: the writer owns the overwrite,
// backup and force semantics the planner stays out of.
type Writer struct {
	store   *Store
	out     string
	workers int
	force   bool
	backup  bool
	dryRun  bool
	log     *logrus.Logger
}

// A Result summarizes one generation run.
type Result struct {
	// RunID uniquely identifies the run in logs and reports.
	RunID string

	// Written lists the output paths created or overwritten, sorted.
	Written []string

	// Skipped lists existing paths left untouched (force disabled), sorted.
	Skipped []string

	// BackedUp lists the .bak files created before overwriting, sorted.
	BackedUp []string

	// TotalBytes is the number of bytes written.
	TotalBytes int64
}

// NewWriter creates a writer rendering stubs from store into out.
func NewWriter(store *Store, out string) *Writer {
	return &Writer{
		store:   store,
		out:     out,
		workers: runtime.GOMAXPROCS(0),
		log:     logrus.StandardLogger(),
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithForce makes the writer overwrite existing files.
func (w *Writer) WithForce(force bool) *Writer {
	w.force = force
	return w
}

// WithBackup makes the writer copy existing files to "<path>.bak"
// before overwriting them. Only meaningful together with WithForce.
func (w *Writer) WithBackup(backup bool) *Writer {
	w.backup = backup
	return w
}

// WithDryRun makes Generate report what it would write without
// touching the filesystem.
func (w *Writer) WithDryRun(dryRun bool) *Writer {
	w.dryRun = dryRun
	return w
}

// WithLogger sets the logger used for per-file progress output.
func (w *Writer) WithLogger(log *logrus.Logger) *Writer {
	if log != nil {
		w.log = log
	}
	return w
}

// Existing returns the manifest paths that already exist under the
// output root, in manifest order. Callers use it to confirm overwrites
// before generating.
func (w *Writer) Existing(entries []plan.Entry) []string {
	var existing []string
	for _, e := range entries {
		if _, err := os.Stat(filepath.Join(w.out, filepath.FromSlash(e.Path))); err == nil {
			existing = append(existing, e.Path)
		}
	}
	return existing
}

// Generate renders every entry with the given variables. Entries are
// written in parallel; the result lists are sorted so output is stable
// regardless of scheduling.
func (w *Writer) Generate(ctx context.Context, entries []plan.Entry, vars map[string]string) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := w.log.WithFields(logrus.Fields{
		"run":       res.RunID,
		"framework": w.store.Framework(),
	})
	if w.dryRun {
		for _, e := range entries {
			res.Written = append(res.Written, e.Path)
		}
		log.WithField("files", len(res.Written)).Info("dry run, nothing written")
		return res, nil
	}

	var mu sync.Mutex
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(w.workers)
	for _, e := range entries {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcome, n, err := w.generate(e, vars)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			res.TotalBytes += n
			switch outcome {
			case outcomeWritten:
				res.Written = append(res.Written, e.Path)
			case outcomeSkipped:
				res.Skipped = append(res.Skipped, e.Path)
			case outcomeBackedUp:
				res.Written = append(res.Written, e.Path)
				res.BackedUp = append(res.BackedUp, e.Path+".bak")
			}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(res.Written)
	sort.Strings(res.Skipped)
	sort.Strings(res.BackedUp)
	log.WithFields(logrus.Fields{
		"written": len(res.Written),
		"skipped": len(res.Skipped),
		"bytes":   res.TotalBytes,
	}).Info("generation finished")
	return res, nil
}

type outcome int

const (
	outcomeWritten outcome = iota
	outcomeSkipped
	outcomeBackedUp
)

func (w *Writer) generate(e plan.Entry, vars map[string]string) (outcome, int64, error) {
	stub, err := w.store.Load(e.Stub)
	if err != nil {
		return 0, 0, err
	}
	content := Render(stub, vars)
	path := filepath.Join(w.out, filepath.FromSlash(e.Path))

	out := outcomeWritten
	if prev, err := os.ReadFile(path); err == nil {
		if !w.force {
			w.log.WithField("path", e.Path).Debug("exists, skipping")
			return outcomeSkipped, 0, nil
		}
		if w.backup {
			if err := os.WriteFile(path+".bak", prev, 0o644); err != nil {
				return 0, 0, &WriteError{Path: e.Path + ".bak", Cause: err}
			}
			out = outcomeBackedUp
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, 0, &WriteError{Path: e.Path, Cause: err}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return 0, 0, &WriteError{Path: e.Path, Cause: err}
	}
	w.log.WithFields(logrus.Fields{
		"path":     e.Path,
		"category": e.Category,
	}).Debug("written")
	return out, int64(len(content)), nil
}
