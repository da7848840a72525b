package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/core"
)

func TestMain(m *testing.M) {
	core.EventSystemInitialize()
	go core.ProcessEvents()
	os.Exit(m.Run())
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "prisma.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
app_name = "Demo"
log_level = "debug"
headless = true

[window]
width = 800
height = 600

[palette]
seed = 7
saturation_min = 0.5
saturation_max = 0.8
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.AppName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Headless)
	assert.Equal(t, uint32(800), cfg.Window.Width)
	assert.Equal(t, uint32(600), cfg.Window.Height)
	assert.Equal(t, uint64(7), cfg.Palette.Seed)
	assert.Equal(t, float32(0.5), cfg.Palette.SaturationMin)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `app_name = "Minimal"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Minimal", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint32(1280), cfg.Window.Width)
	assert.Equal(t, uint32(720), cfg.Window.Height)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeConfig(t, t.TempDir(), `app_name = not quoted`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `app_name = "Before"`)

	updated := make(chan string, 4)
	handle, err := core.EventRegister(core.EVENT_CODE_WATCHED_FILE_UPDATED, func(ctx core.EventContext) bool {
		se, ok := ctx.Data.(*core.SystemEvent)
		if !ok {
			return false
		}
		updated <- se.FilePath
		return true
	})
	require.NoError(t, err)
	defer core.EventUnregister(core.EVENT_CODE_WATCHED_FILE_UPDATED, handle)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, "Before", w.Current().AppName)

	require.NoError(t, os.WriteFile(path, []byte(`app_name = "After"`), 0o644))

	select {
	case got := <-updated:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was never announced")
	}

	assert.Eventually(t, func() bool {
		return w.Current().AppName == "After"
	}, 5*time.Second, 10*time.Millisecond)
}
