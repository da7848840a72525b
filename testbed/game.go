package testbed

import (
	"fmt"

	"github.com/spaghettifunk/prisma/engine"
	"github.com/spaghettifunk/prisma/engine/colour"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

type TestGame struct {
	*engine.Game
	engine *engine.Engine
}

type gameState struct {
	WorldCamera *engine.Camera
	Palette     *colour.Palette

	width  uint32
	height uint32

	// A small parent chain of spinning transforms, each tinted with the
	// next palette colour.
	transforms []*math.Transform
	tints      []colour.Colour

	// Pickable volume around the root transform.
	rootExtents math.Extents3D

	statusElapsed float64
}

const cameraMoveSpeed = float32(5.0)
const cameraTurnSpeed = float32(1.0)

func NewTestGame() (*TestGame, error) {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   100,
				StartPosY:   100,
				StartWidth:  1280,
				StartHeight: 720,
				Name:        "Prisma Testbed",
				LogLevel:    core.DebugLevel,
				Palette: colour.PaletteOptions{
					Seed: 42,
				},
			},
			State: &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

// AttachEngine hands the game its engine so it can reach the camera and
// palette. Must be called before Initialize runs.
func (g *TestGame) AttachEngine(e *engine.Engine) {
	g.engine = e
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.engine == nil {
		return fmt.Errorf("the game has no engine attached")
	}

	state := g.State.(*gameState)

	state.WorldCamera = g.engine.Camera()
	state.WorldCamera.SetPosition(math.NewVec3(10.5, 5.0, 9.5))

	state.Palette = g.engine.Palette()

	// Root cube, a child orbiting it and a grandchild orbiting that.
	root := math.TransformCreate()
	child := math.TransformFromPosition(math.NewVec3(10.0, 0.0, 1.0))
	child.Parent = root
	grandchild := math.TransformFromPosition(math.NewVec3(5.0, 0.0, 1.0))
	grandchild.Parent = child

	state.transforms = []*math.Transform{root, child, grandchild}
	state.tints = make([]colour.Colour, len(state.transforms))
	for i := range state.tints {
		state.tints[i] = state.Palette.Next()
		core.LogDebug("transform %d tinted %s", i, state.tints[i].ToHex())
	}

	state.rootExtents = math.Extents3D{
		Min: math.NewVec3(-5, -5, -5),
		Max: math.NewVec3(5, 5, 5),
	}

	if _, err := core.EventRegister(core.EVENT_CODE_BUTTON_PRESSED, g.gameOnClick); err != nil {
		return err
	}
	if _, err := core.EventRegister(core.EVENT_CODE_WATCHED_FILE_UPDATED, g.gameOnConfigChange); err != nil {
		return err
	}

	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	dt := float32(deltaTime)

	if core.InputIsKeyDown(core.KEY_A) || core.InputIsKeyDown(core.KEY_LEFT) {
		state.WorldCamera.Yaw(cameraTurnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_D) || core.InputIsKeyDown(core.KEY_RIGHT) {
		state.WorldCamera.Yaw(-cameraTurnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_UP) {
		state.WorldCamera.Pitch(cameraTurnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_DOWN) {
		state.WorldCamera.Pitch(-cameraTurnSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_W) {
		state.WorldCamera.MoveForward(cameraMoveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_S) {
		state.WorldCamera.MoveBackward(cameraMoveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_Q) {
		state.WorldCamera.MoveLeft(cameraMoveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_E) {
		state.WorldCamera.MoveRight(cameraMoveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_SPACE) {
		state.WorldCamera.MoveUp(cameraMoveSpeed * dt)
	}
	if core.InputIsKeyDown(core.KEY_X) {
		state.WorldCamera.MoveDown(cameraMoveSpeed * dt)
	}

	if core.InputIsKeyUp(core.KEY_P) && core.InputWasKeyDown(core.KEY_P) {
		pos := state.WorldCamera.GetPosition()
		core.LogDebug("Pos:[%.2f, %.2f, %.2f]", pos.X, pos.Y, pos.Z)
	}

	// Re-tint everything from the palette on demand.
	if core.InputIsKeyUp(core.KEY_C) && core.InputWasKeyDown(core.KEY_C) {
		for i := range state.tints {
			state.tints[i] = state.Palette.Next()
			core.LogInfo("transform %d re-tinted %s", i, state.tints[i].ToHex())
		}
	}

	// Perform a small rotation on each transform in the chain.
	rotation := math.NewQuatFromAxisAngle(math.NewVec3(0, 1, 0), float32(0.5*deltaTime))
	for _, tr := range state.transforms {
		tr.Rotate(rotation)
	}

	state.statusElapsed += deltaTime
	if state.statusElapsed >= 1.0 {
		state.statusElapsed = 0
		g.logStatus(state)
	}

	return nil
}

func (g *TestGame) logStatus(state *gameState) {
	pos := state.WorldCamera.GetPosition()
	rot := state.WorldCamera.GetEulerRotation()

	leftDown := core.InputIsButtonDown(core.BUTTON_LEFT)
	rightDown := core.InputIsButtonDown(core.BUTTON_RIGHT)
	mouseX, mouseY := core.InputGetMousePosition()

	// convert to NDC
	mouseXNDC := math.RangeConvertFloat32(float32(mouseX), 0, float32(state.width), -1, 1)
	mouseYNDC := math.RangeConvertFloat32(float32(mouseY), 0, float32(state.height), -1, 1)

	fps, frameTime := core.MetricsFrame()

	worldPos := state.transforms[len(state.transforms)-1].GetWorld().TransformPoint(math.NewVec3Zero())

	core.LogInfo(
		"FPS: %5.1f(%4.1fms) Pos=[%7.3f %7.3f %7.3f ] Rot=[%7.3f, %7.3f, %7.3f ]\n"+
			"Mouse: X=%-5d Y=%-5d   L=%s R=%s   NDC: X=%.6f, Y=%.6f\n"+
			"Grandchild world position: [%7.3f %7.3f %7.3f]",
		fps,
		frameTime,
		pos.X, pos.Y, pos.Z,
		math.RadToDeg(rot.X), math.RadToDeg(rot.Y), math.RadToDeg(rot.Z),
		mouseX, mouseY,
		map[bool]string{true: "Y", false: "N"}[leftDown],
		map[bool]string{true: "Y", false: "N"}[rightDown],
		mouseXNDC,
		mouseYNDC,
		worldPos.X, worldPos.Y, worldPos.Z,
	)
}

func (g *TestGame) Render(deltaTime float64) error {
	// Nothing to draw without a renderer; the view matrix still gets
	// rebuilt each frame so camera movement is exercised.
	state := g.State.(*gameState)
	_ = state.WorldCamera.GetView()
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)

	state.width = width
	state.height = height

	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogDebug("TestGame shutting down")
	return nil
}

// gameOnClick casts a ray from the camera and reports whether it hits the
// root transform's bounding box.
func (g *TestGame) gameOnClick(context core.EventContext) bool {
	me, ok := context.Data.(*core.MouseEvent)
	if !ok || me.Button != core.BUTTON_LEFT {
		return false
	}

	state := g.State.(*gameState)
	ray := math.Ray{
		Origin:    state.WorldCamera.GetPosition(),
		Direction: state.WorldCamera.Forward(),
	}
	if distance, hit := ray.IntersectsExtents(state.rootExtents); hit {
		core.LogInfo("root volume hit at distance %.3f", distance)
	}
	return false
}

func (g *TestGame) gameOnConfigChange(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		return false
	}
	core.LogInfo("configuration reloaded from %s", se.FilePath)
	return false
}
