package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/timepicker/config"
)

func startWatcher(t *testing.T, path string) <-chan config.File {
	t.Helper()
	changes := make(chan config.File, 4)
	w, err := New(path, func(cfg config.File) { changes <- cfg })
	require.NoError(t, err)
	w.SetDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		w.Close()
	})
	return changes
}

func TestReloadOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.Save(path, config.Default()))
	changes := startWatcher(t, path)

	cfg := config.Default()
	cfg.Picker.Colors.Track = "#010203"
	require.NoError(t, config.Save(path, cfg))

	select {
	case got := <-changes:
		assert.Equal(t, "#010203", got.Picker.Colors.Track)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestInvalidFileIsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.Save(path, config.Default()))
	changes := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("[picker]\nmode = \"triple\"\n"), 0644))
	select {
	case <-changes:
		t.Fatal("invalid config should not be delivered")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestOtherFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, config.Save(path, config.Default()))
	changes := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	select {
	case <-changes:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
