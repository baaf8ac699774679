// Package testutils holds helpers shared by package tests: temporary store
// projects, test configurations and file assertions.
package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/storecraft/internal/config"
	"github.com/conneroisu/storecraft/internal/store"
)

// CreateTempProject creates a temporary project directory holding the demo
// store and returns the directory and the store path.
func CreateTempProject(t *testing.T) (dir, storePath string) {
	t.Helper()

	dir = t.TempDir()
	storePath = WriteStore(t, dir, store.Default())

	return dir, storePath
}

// WriteStore writes site as store.yaml into dir and returns its path.
func WriteStore(t *testing.T, dir string, site *store.Configuration) string {
	t.Helper()

	data, err := store.Marshal(site)
	require.NoError(t, err)

	path := filepath.Join(dir, config.DefaultStorePath)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

// CreateTestConfig returns a configuration for storePath that never opens
// a browser, listens on a free port and writes into a temporary directory.
func CreateTestConfig(t *testing.T, storePath string) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Store.Path = storePath
	cfg.Server.Port = 0
	cfg.Server.Open = false
	cfg.Build.OutputDir = filepath.Join(t.TempDir(), config.DefaultOutputDir)

	return cfg
}

// AssertFilePermissions checks the permission bits of path.
func AssertFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	actualMode := info.Mode()
	require.Equal(t, expectedMode, actualMode&os.FileMode(0o777),
		"File %s has incorrect permissions: got %o, want %o",
		path, actualMode&os.FileMode(0o777), expectedMode)
}

// WaitForFileChange waits until path is modified after originalModTime.
func WaitForFileChange(t *testing.T, path string, originalModTime time.Time, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		info, err := os.Stat(path)
		if err == nil && info.ModTime().After(originalModTime) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("File %s was not modified within %v", path, timeout)
}
