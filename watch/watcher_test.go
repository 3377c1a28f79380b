package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForRebuild(t *testing.T, ch <-chan []string) []string {
	t.Helper()
	select {
	case changed := <-ch:
		return changed
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild callback never fired")
		return nil
	}
}

func TestWriteTriggersRebuild(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))

	w, err := New(dir)
	require.NoError(t, err)
	defer w.Stop()
	w.SetDebounce(50 * time.Millisecond)

	ch := make(chan []string, 1)
	w.OnRebuild(func(changed []string) error {
		ch <- changed
		return nil
	})
	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nvar X = 1\n"), 0o644))

	changed := waitForRebuild(t, ch)
	require.Len(t, changed, 1)
	assert.Equal(t, filepath.Join(dir, "main.go"), changed[0])
}

func TestBurstDebouncesToOneRebuild(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Stop()
	w.SetDebounce(200 * time.Millisecond)

	ch := make(chan []string, 4)
	w.OnRebuild(func(changed []string) error {
		ch <- changed
		return nil
	})
	w.Start()

	for _, name := range []string{"a.go", "b.go", "c.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("package p\n"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	changed := waitForRebuild(t, ch)
	assert.Len(t, changed, 3, "burst coalesces into one rebuild")

	select {
	case extra := <-ch:
		t.Fatalf("unexpected second rebuild: %v", extra)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestNonSourceFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Stop()
	w.SetDebounce(50 * time.Millisecond)

	ch := make(chan []string, 1)
	w.OnRebuild(func(changed []string) error {
		ch <- changed
		return nil
	})
	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("readme"), 0o644))

	select {
	case changed := <-ch:
		t.Fatalf("markdown write triggered rebuild: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewDottedDirectoryIsWatched(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Stop()
	w.SetDebounce(50 * time.Millisecond)

	ch := make(chan []string, 1)
	w.OnRebuild(func(changed []string) error {
		ch <- changed
		return nil
	})
	w.Start()

	sub := filepath.Join(dir, "v1.2")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// The create event must land before writes inside the directory.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(sub, "gen.go"), []byte("package v12\n"), 0o644))

	changed := waitForRebuild(t, ch)
	require.Len(t, changed, 1)
	assert.Equal(t, filepath.Join(sub, "gen.go"), changed[0])
}

func TestSkipDir(t *testing.T) {
	assert.True(t, skipDir(".git"))
	assert.True(t, skipDir("_examples"))
	assert.True(t, skipDir("vendor"))
	assert.True(t, skipDir("testdata"))
	assert.False(t, skipDir("resolver"))
}
