package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick:\n  period_ms: 120\n"), 0o644))

	got := make(chan SnakeConfig, 4)
	w := NewWatcher(path, log.New(io.Discard), func(cfg SnakeConfig) { got <- cfg })
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		assert.NoError(t, <-done)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)

	// A broken edit is skipped
	require.NoError(t, os.WriteFile(path, []byte("tick:\n  period_ms: -1\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("tick:\n  period_ms: 75\n"), 0o644))

	// Truncation events may deliver an intermediate config first.
	timeout := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-got:
			assert.Positive(t, cfg.Tick.PeriodMS)
			if cfg.Tick.PeriodMS == 75 {
				return
			}
		case <-timeout:
			t.Fatal("watcher did not report the change")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick:\n  period_ms: 120\n"), 0o644))

	got := make(chan SnakeConfig, 1)
	w := NewWatcher(path, log.New(io.Discard), func(cfg SnakeConfig) { got <- cfg })
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case <-got:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "snake.yaml"), log.New(io.Discard), func(SnakeConfig) {})
	assert.Error(t, w.Run(context.Background()))
}
