// Package config loads engine configuration from a TOML file and can watch
// it for changes, applying what is safe to apply live.
package config

import (
	"errors"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prisma/engine/core"
)

type WindowConfig struct {
	PosX   uint32 `toml:"pos_x"`
	PosY   uint32 `toml:"pos_y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type PaletteConfig struct {
	Seed          uint64  `toml:"seed"`
	SaturationMin float32 `toml:"saturation_min"`
	SaturationMax float32 `toml:"saturation_max"`
	ValueMin      float32 `toml:"value_min"`
	ValueMax      float32 `toml:"value_max"`
}

type Config struct {
	AppName  string        `toml:"app_name"`
	LogLevel string        `toml:"log_level"`
	Headless bool          `toml:"headless"`
	Window   WindowConfig  `toml:"window"`
	Palette  PaletteConfig `toml:"palette"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		AppName:  "Prisma",
		LogLevel: "info",
		Window: WindowConfig{
			PosX:   100,
			PosY:   100,
			Width:  1280,
			Height: 720,
		},
	}
}

// Load reads a TOML configuration file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply pushes the live-updatable parts of the configuration into the
// running engine. Window geometry and app name only take effect on startup.
func (c *Config) Apply() {
	if c.LogLevel == "" {
		return
	}
	level, err := core.LogParseLevel(c.LogLevel)
	if err != nil {
		core.LogWarn("unknown log level %q, keeping current", c.LogLevel)
		return
	}
	core.LogSetLevel(level)
}

// Watcher reloads the configuration file whenever it changes on disk.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	done     chan struct{}
	isClosed bool

	mutex sync.RWMutex
	cfg   *Config
}

// NewWatcher loads the file once, applies it and starts watching for writes.
// Each successful reload is re-applied and announced with a
// EVENT_CODE_WATCHED_FILE_UPDATED event carrying the file path.
func NewWatcher(path string) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Apply()

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(path); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		cfg:      cfg,
	}
	go w.start()
	return w, nil
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.cfg
}

func (w *Watcher) Close() error {
	if w.isClosed {
		return errors.New("config watcher already closed")
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}

func (w *Watcher) start() {
	for {
		select {
		case e := <-w.fsnotify.Events:
			// Editors commonly replace the file, which shows up as
			// create or rename rather than a plain write.
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()

		case e := <-w.fsnotify.Errors:
			if e == nil {
				return
			}
			core.LogError(e.Error())

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		core.LogWarn("failed to reload config %s: %s", w.path, err)
		return
	}

	w.mutex.Lock()
	w.cfg = cfg
	w.mutex.Unlock()

	cfg.Apply()
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_WATCHED_FILE_UPDATED,
		Data: &core.SystemEvent{
			FilePath: w.path,
		},
	})
}
