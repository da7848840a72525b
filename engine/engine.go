package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/spaghettifunk/prisma/engine/colour"
	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/platform"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	// Written by event handlers on the dispatch goroutine and read by the
	// frame loop, hence atomic.
	isRunning     atomic.Bool
	isSuspended   atomic.Bool
	platform      *platform.Platform
	configWatcher *config.Watcher
	camera        *Camera
	palette       *colour.Palette
	width         uint32
	height        uint32
	clock         *core.Clock
	lastTime      float64

	eventHandles map[core.EventCode]uuid.UUID
}

func New(g *Game) (*Engine, error) {
	ac := g.ApplicationConfig

	var watcher *config.Watcher
	if ac.ConfigPath != "" {
		w, err := config.NewWatcher(ac.ConfigPath)
		if err != nil {
			core.LogError(err.Error())
			return nil, err
		}
		watcher = w
		applyFileConfig(ac, w.Current())
	} else {
		core.LogSetLevel(ac.LogLevel)
	}

	var p *platform.Platform
	if !ac.Headless {
		p = platform.New()
	}

	e := &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		clock:         core.NewClock(),
		platform:      p,
		configWatcher: watcher,
		camera:        NewCamera(),
		palette:       colour.NewPalette(ac.Palette),
		width:         ac.StartWidth,
		height:        ac.StartHeight,
		lastTime:      0,
		eventHandles:  make(map[core.EventCode]uuid.UUID),
	}
	e.isRunning.Store(true)
	return e, nil
}

// applyFileConfig copies the file-backed settings over the programmatic ones.
func applyFileConfig(ac *ApplicationConfig, cfg *config.Config) {
	if cfg.AppName != "" {
		ac.Name = cfg.AppName
	}
	ac.Headless = cfg.Headless
	if cfg.Window.Width > 0 {
		ac.StartPosX = cfg.Window.PosX
		ac.StartPosY = cfg.Window.PosY
		ac.StartWidth = cfg.Window.Width
		ac.StartHeight = cfg.Window.Height
	}
	ac.Palette = colour.PaletteOptions{
		Seed:          cfg.Palette.Seed,
		SaturationMin: cfg.Palette.SaturationMin,
		SaturationMax: cfg.Palette.SaturationMax,
		ValueMin:      cfg.Palette.ValueMin,
		ValueMax:      cfg.Palette.ValueMax,
	}
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	core.EventSystemInitialize()

	// register the engine-level handlers
	for code, handler := range map[core.EventCode]core.FnOnEvent{
		core.EVENT_CODE_APPLICATION_QUIT: e.onEvent,
		core.EVENT_CODE_KEY_PRESSED:      e.onKey,
		core.EVENT_CODE_KEY_RELEASED:     e.onKey,
		core.EVENT_CODE_RESIZED:          e.onResized,
	} {
		handle, err := core.EventRegister(code, handler)
		if err != nil {
			return err
		}
		e.eventHandles[code] = handle
	}

	if e.platform != nil {
		if err := e.platform.Startup(e.gameInstance.ApplicationConfig.Name,
			e.gameInstance.ApplicationConfig.StartPosX,
			e.gameInstance.ApplicationConfig.StartPosY,
			e.gameInstance.ApplicationConfig.StartWidth,
			e.gameInstance.ApplicationConfig.StartHeight); err != nil {
			return err
		}
	}

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()

	e.lastTime = e.clock.Elapsed()

	// start goroutine to process all the events around the engine
	go core.ProcessEvents()

	var targetFrameSeconds float64 = 1.0 / 60.0

	for e.isRunning.Load() {
		if e.platform != nil && !e.platform.PumpMessages() {
			e.isRunning.Store(false)
		}

		if !e.isSuspended.Load() {
			// Update clock and get delta time.
			e.clock.Update()

			var currentTime float64 = e.clock.Elapsed()
			var delta float64 = currentTime - e.lastTime

			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err)
				e.isRunning.Store(false)
				break
			}

			// Call the game's render routine.
			if e.gameInstance.FnRender != nil {
				if err := e.gameInstance.FnRender(delta); err != nil {
					core.LogError("game render failed, shutting down: %s", err)
					e.isRunning.Store(false)
					break
				}
			}

			// Figure out how long the frame took and, if time is left
			// within the 60Hz budget, give it back to the OS.
			e.clock.Update()
			frameElapsedTime := e.clock.Elapsed() - currentTime
			core.MetricsUpdate(frameElapsedTime)

			remainingSeconds := targetFrameSeconds - frameElapsedTime
			if remainingSeconds > 0 {
				time.Sleep(time.Duration(remainingSeconds * float64(time.Second)))
			}

			// NOTE: Input update/state copying should always be handled
			// after any input should be recorded; I.E. before this line.
			// As a safety, input is the last thing to be updated before
			// this frame ends.
			core.InputUpdate(delta)

			// Update last time
			e.lastTime = currentTime
		}
	}

	return e.Shutdown()
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("game shutdown failed: %s", err)
		}
	}

	for code, handle := range e.eventHandles {
		if err := core.EventUnregister(code, handle); err != nil {
			core.LogWarn(err.Error())
		}
	}

	if e.configWatcher != nil {
		if err := e.configWatcher.Close(); err != nil {
			core.LogWarn(err.Error())
		}
	}

	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if e.platform != nil {
		if err := e.platform.Shutdown(); err != nil {
			return err
		}
	}
	return nil
}

// Camera returns the engine's default camera.
func (e *Engine) Camera() *Camera {
	return e.camera
}

// Palette returns the colour palette built from the application config.
func (e *Engine) Palette() *colour.Palette {
	return e.palette
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// Stop asks the frame loop to exit. Safe to call from event handlers.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("application quit requested, shutting down")
		e.isRunning.Store(false)
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong payload associated with the event type `%d`", context.Type)
		return false
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED && ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	if context.Type != core.EVENT_CODE_RESIZED {
		return false
	}
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong payload associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width != e.width || height != e.height {
		e.width = width
		e.height = height

		core.LogDebug("window resize: %d, %d", width, height)

		// Handle minimization
		if width == 0 || height == 0 {
			core.LogInfo("window minimized, suspending application")
			e.isSuspended.Store(true)
			return false
		}
		if e.isSuspended.Load() {
			core.LogInfo("window restored, resuming application")
			e.isSuspended.Store(false)
		}
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
	return false
}
