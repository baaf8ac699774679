package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.NotNil(t, watcher.logger)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, NewDebouncer(0).delay)
	assert.Equal(t, time.Second, NewDebouncer(time.Second).delay)
}

func TestFileWatcherAddPath(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NoError(t, watcher.AddPath(t.TempDir()))
	assert.Error(t, watcher.AddPath("/non/existent/path"))
}

func TestWatchFile_Missing(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	err = watcher.WatchFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Empty(t, watcher.filters)
}

func TestWatchFile_DeliversOnlyTheStoreFile(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "store.yaml")
	require.NoError(t, os.WriteFile(storePath, []byte("branding:\n  name: A\n"), 0o644))

	watcher, err := NewFileWatcher(30*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.WatchFile(storePath))

	var mu sync.Mutex
	var batches [][]ChangeEvent
	watcher.AddHandler(func(ctx context.Context, events []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, events)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(storePath, []byte("branding:\n  name: B\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(batches) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, batch := range batches {
		for _, e := range batch {
			abs, err := filepath.Abs(e.Path)
			require.NoError(t, err)
			assert.Equal(t, storePath, abs)
		}
	}
}

func TestStoreFilter(t *testing.T) {
	testCases := []struct {
		path     string
		expected bool
	}{
		{"store.yaml", true},
		{"store.YML", true},
		{"shop/store.json", true},
		{"main.go", false},
		{"README.md", false},
		{"store", false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, StoreFilter(tc.path))
		})
	}
}

func TestNoEditorTempFilter(t *testing.T) {
	testCases := []struct {
		path     string
		expected bool
	}{
		{"store.yaml", true},
		{"store.yaml~", false},
		{".#store.yaml", false},
		{".store.yaml.swp", false},
		{"store.yaml.tmp", false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, NoEditorTempFilter(tc.path))
		})
	}
}

func TestFileFilterFor(t *testing.T) {
	dir := t.TempDir()
	filter := FileFilterFor(filepath.Join(dir, "store.yaml"))

	assert.True(t, filter(filepath.Join(dir, "store.yaml")))
	assert.True(t, filter(filepath.Join(dir, ".", "store.yaml")))
	assert.False(t, filter(filepath.Join(dir, "other.yaml")))
}

func TestDebouncer(t *testing.T) {
	debouncer := NewDebouncer(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go debouncer.start(ctx)

	debouncer.Add(ChangeEvent{Path: "b.yaml", Type: EventTypeCreated})
	debouncer.Add(ChangeEvent{Path: "a.yaml", Type: EventTypeModified})
	debouncer.Add(ChangeEvent{Path: "b.yaml", Type: EventTypeModified})

	select {
	case events := <-debouncer.Output():
		require.Len(t, events, 2)
		assert.Equal(t, "a.yaml", events[0].Path)
		assert.Equal(t, "b.yaml", events[1].Path)
		assert.Equal(t, EventTypeModified, events[1].Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no batch delivered")
	}
}

func TestFileWatcher_StopEndsGoroutinesWithLiveContext(t *testing.T) {
	watcher, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, watcher.AddPath(t.TempDir()))
	require.NoError(t, watcher.Start(context.Background()))

	stopped := make(chan error, 1)
	go func() { stopped <- watcher.Stop() }()

	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestFileWatcherErrorHandling(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)

	assert.NoError(t, watcher.Stop())
	assert.NoError(t, watcher.Stop())
}
