package watch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestWatcherFiresAfterChange(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	fired := make(chan struct{}, 1)
	w := New(dir).WithDebounce(50 * time.Millisecond).WithLogger(quietLogger())

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			calls.Add(1)
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher a moment to install, then burst several writes.
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.stub"), []byte("x"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("callback never fired")
	}
	// The write burst debounces into a single callback.
	time.Sleep(200 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), int32(2))

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatcherCallbackErrorIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan struct{}, 4)
	w := New(dir).WithDebounce(20 * time.Millisecond).WithLogger(quietLogger())

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			fired <- struct{}{}
			return errors.New("boom")
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.stub"), []byte("x"), 0o644))
	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("callback never fired")
	}

	// Watcher keeps running after the callback error.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.stub"), []byte("y"), 0o644))
	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("watcher stopped after callback error")
	}

	cancel()
	<-done
}

func TestWatcherMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing")).WithLogger(quietLogger())
	err := w.Run(context.Background(), func(context.Context) error { return nil })
	require.Error(t, err)
}
