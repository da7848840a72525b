package engine

import (
	"github.com/spaghettifunk/prisma/engine/math"
)

// Camera is a position plus Euler rotation (pitch, yaw, roll) with a lazily
// rebuilt view matrix. Mutate it through the setters and movement helpers so
// the view matrix is recalculated when needed.
type Camera struct {
	position      math.Vec3
	eulerRotation math.Vec3
	isDirty       bool
	viewMatrix    math.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.eulerRotation = math.NewVec3Zero()
	c.position = math.NewVec3Zero()
	c.isDirty = false
	c.viewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.eulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.eulerRotation = rotation
	c.isDirty = true
}

func (c *Camera) GetView() math.Mat4 {
	if c.isDirty {
		rotation := math.NewMat4EulerXYZ(c.eulerRotation.X, c.eulerRotation.Y, c.eulerRotation.Z)
		translation := math.NewMat4Translation(c.position)

		c.viewMatrix = rotation.Mul(translation).Inverse()
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) Forward() math.Vec3 {
	return c.GetView().Forward()
}

func (c *Camera) Backward() math.Vec3 {
	return c.GetView().Backward()
}

func (c *Camera) Left() math.Vec3 {
	return c.GetView().Left()
}

func (c *Camera) Right() math.Vec3 {
	return c.GetView().Right()
}

func (c *Camera) MoveForward(amount float32) {
	c.position = c.position.Add(c.Forward().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveBackward(amount float32) {
	c.position = c.position.Add(c.Backward().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveLeft(amount float32) {
	c.position = c.position.Add(c.Left().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveRight(amount float32) {
	c.position = c.position.Add(c.Right().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveUp(amount float32) {
	c.position = c.position.Add(math.NewVec3Up().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveDown(amount float32) {
	c.position = c.position.Add(math.NewVec3Down().MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) Yaw(amount float32) {
	c.eulerRotation.Y += amount
	c.isDirty = true
}

// pitchLimit keeps the camera just short of straight up/down, 89 degrees.
const pitchLimit = float32(1.55334306)

func (c *Camera) Pitch(amount float32) {
	c.eulerRotation.X = math.Clamp(c.eulerRotation.X+amount, -pitchLimit, pitchLimit)
	c.isDirty = true
}
