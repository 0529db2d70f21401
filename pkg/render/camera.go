package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Chase camera defaults.
const (
	ChaseDistance = 10 // Units behind the target
	ChaseHeight   = 4  // Units above the target
	chaseRate     = 5  // Smoothing rate per second
)

// View is a camera basis in world space. Forward and Right are unit vectors;
// Up is derived so the three are orthonormal.
type View struct {
	Eye     math3d.Vec3
	Forward math3d.Vec3
	Right   math3d.Vec3
	Up      math3d.Vec3
}

// NewView builds a view from an eye position and forward/right directions.
func NewView(eye, forward, right math3d.Vec3) View {
	return View{
		Eye:     eye,
		Forward: forward,
		Right:   right,
		Up:      right.Cross(forward).Normalize(),
	}
}

// ToWorld maps a camera-space direction (x right, y up, z toward the viewer)
// into world space.
func (v View) ToWorld(d math3d.Vec3) math3d.Vec3 {
	return v.Right.Scale(d.X).Add(v.Up.Scale(d.Y)).Sub(v.Forward.Scale(d.Z))
}

// ChaseCamera trails a moving target, lagging behind its position and heading
// with exponential smoothing.
type ChaseCamera struct {
	Distance float32
	Height   float32

	// Smoothed target state
	Target math3d.Vec3
	Yaw    float32
	Pitch  float32
}

// NewChaseCamera creates a camera already settled on the target.
func NewChaseCamera(target math3d.Vec3, yaw, pitch float32) *ChaseCamera {
	return &ChaseCamera{
		Distance: ChaseDistance,
		Height:   ChaseHeight,
		Target:   target,
		Yaw:      yaw,
		Pitch:    pitch,
	}
}

// Snap discards smoothing and jumps to the target state.
func (c *ChaseCamera) Snap(target math3d.Vec3, yaw, pitch float32) {
	c.Target = target
	c.Yaw = yaw
	c.Pitch = pitch
}

// Update eases the smoothed state toward the target. Yaw takes the shortest
// way around the circle.
func (c *ChaseCamera) Update(dt float32, target math3d.Vec3, yaw, pitch float32) {
	k := math32.Min(chaseRate*dt, 1)
	c.Target = c.Target.Lerp(target, k)
	c.Yaw += math3d.AngleDifference(yaw, c.Yaw) * k
	c.Pitch += (pitch - c.Pitch) * k
}

// Eye returns the camera position: behind the smoothed heading and raised by
// Height.
func (c *ChaseCamera) Eye() math3d.Vec3 {
	back := math3d.Heading(c.Yaw, c.Pitch).Scale(-c.Distance)
	return c.Target.Add(back).Add(math3d.V3(0, c.Height, 0))
}

// Forward returns the unit direction from the eye to the smoothed target.
func (c *ChaseCamera) Forward() math3d.Vec3 {
	return c.Target.Sub(c.Eye()).Normalize()
}

// Right returns Forward × world up, normalized.
func (c *ChaseCamera) Right() math3d.Vec3 {
	return c.Forward().Cross(math3d.Up()).Normalize()
}

// View returns the current camera basis.
func (c *ChaseCamera) View() View {
	eye := c.Eye()
	fwd := c.Target.Sub(eye).Normalize()
	return NewView(eye, fwd, fwd.Cross(math3d.Up()).Normalize())
}
