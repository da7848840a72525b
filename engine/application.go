package engine

import (
	"github.com/spaghettifunk/prisma/engine/colour"
	"github.com/spaghettifunk/prisma/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Headless runs the frame loop without creating a window. Input then
	// only arrives through events fired by the application itself.
	Headless bool
	// Optional TOML configuration file. When set it overrides the fields
	// above and is watched for changes while the engine runs.
	ConfigPath string
	// Options for the palette handed to the game instance.
	Palette colour.PaletteOptions
}
