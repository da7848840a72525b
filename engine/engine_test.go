package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

const cameraTol = 1e-5

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.True(t, c.GetPosition().Compare(math.NewVec3Zero(), cameraTol))
	assert.True(t, c.GetView().Compare(math.NewMat4Identity(), cameraTol))
}

func TestCameraViewIsInverseOfPosition(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math.NewVec3(3, 2, -5))

	view := c.GetView()
	assert.InDelta(t, float32(-3), view.Data[12], cameraTol)
	assert.InDelta(t, float32(-2), view.Data[13], cameraTol)
	assert.InDelta(t, float32(5), view.Data[14], cameraTol)
}

func TestCameraMovement(t *testing.T) {
	c := NewCamera()

	c.MoveUp(2)
	assert.InDelta(t, float32(2), c.GetPosition().Y, cameraTol)
	c.MoveDown(2)
	assert.InDelta(t, float32(0), c.GetPosition().Y, cameraTol)

	// With no rotation the camera looks down -Z.
	forward := c.Forward()
	assert.True(t, forward.Compare(math.NewVec3(0, 0, -1), cameraTol))

	c.MoveForward(4)
	assert.InDelta(t, float32(-4), c.GetPosition().Z, cameraTol)
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera()
	c.Pitch(10)
	assert.InDelta(t, pitchLimit, c.GetEulerRotation().X, cameraTol)
	c.Pitch(-20)
	assert.InDelta(t, -pitchLimit, c.GetEulerRotation().X, cameraTol)
}

func TestCameraYawTurnsForward(t *testing.T) {
	c := NewCamera()
	c.Yaw(math.K_HALF_PI)
	forward := c.Forward()
	assert.InDelta(t, float32(-1), forward.X, 1e-4)
	assert.InDelta(t, float32(0), forward.Z, 1e-4)
}

func TestEngineHeadlessRun(t *testing.T) {
	frames := 0
	shutdownRan := false

	g := &Game{
		ApplicationConfig: &ApplicationConfig{
			Name:        "engine-test",
			StartWidth:  320,
			StartHeight: 240,
			Headless:    true,
		},
		FnInitialize: func() error { return nil },
		FnUpdate: func(deltaTime float64) error {
			frames++
			if frames >= 3 {
				core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
			}
			return nil
		},
		FnOnResize: func(width, height uint32) error { return nil },
		FnShutdown: func() error {
			shutdownRan = true
			return nil
		},
	}

	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	w, h := e.GetFramebufferSize()
	assert.Equal(t, uint32(320), w)
	assert.Equal(t, uint32(240), h)
	assert.NotNil(t, e.Camera())
	assert.NotNil(t, e.Palette())

	require.NoError(t, e.Run())
	assert.GreaterOrEqual(t, frames, 3)
	assert.True(t, shutdownRan)
}
