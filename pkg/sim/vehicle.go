package sim

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Flight model constants.
const (
	MaxSpeed       = 2.5 // units per second
	Clearance      = 2.0 // minimum gap kept from a body's surface
	Drag           = 0.95
	RollRate       = 5.0
	MaxPitch       = math32.Pi / 3
	StartPositionY = 5
	StartPositionZ = 25
)

// Vehicle is the flyable craft.
type Vehicle struct {
	Position   math3d.Vec3
	Velocity   math3d.Vec3
	Yaw        float32
	Pitch      float32
	Roll       float32
	TargetRoll float32
}

// NewVehicle creates the craft at its fixed start position, facing +Z.
func NewVehicle() *Vehicle {
	return &Vehicle{
		Position: math3d.V3(0, StartPositionY, StartPositionZ),
	}
}

// Forward returns the direction the vehicle is facing.
func (v *Vehicle) Forward() math3d.Vec3 {
	return math3d.Heading(v.Yaw, v.Pitch)
}

// Right returns the vehicle's horizontal right-hand direction.
func (v *Vehicle) Right() math3d.Vec3 {
	return v.Forward().Cross(math3d.Up()).Normalize()
}

// Speed returns the current velocity magnitude.
func (v *Vehicle) Speed() float32 {
	return v.Velocity.Len()
}

// Accelerate adds dir*amount to the velocity, then rescales it to MaxSpeed if
// it is faster. The clamp never changes the direction of travel.
func (v *Vehicle) Accelerate(dir math3d.Vec3, amount float32) {
	v.Velocity = v.Velocity.Add(dir.Scale(amount))
	if speed := v.Velocity.Len(); speed > MaxSpeed {
		v.Velocity = v.Velocity.Scale(MaxSpeed / speed)
	}
}

// Turn changes yaw and pitch. Pitch is held within ±MaxPitch.
func (v *Vehicle) Turn(dyaw, dpitch float32) {
	v.Yaw += dyaw
	v.Pitch = math3d.Clamp(v.Pitch+dpitch, -MaxPitch, MaxPitch)
}

// Update integrates velocity. A step that would bring the craft within
// Clearance of any body is rejected and the velocity halved instead.
// Drag and roll easing apply every frame regardless.
func (v *Vehicle) Update(dt float32, bodies []Body) {
	next := v.Position.Add(v.Velocity.Scale(dt))
	if Collides(next, bodies) {
		v.Velocity = v.Velocity.Scale(0.5)
	} else {
		v.Position = next
	}

	v.Velocity = v.Velocity.Scale(Drag)
	v.Roll += (v.TargetRoll - v.Roll) * RollRate * dt
}

// WarpTo teleports the craft and zeroes all motion.
func (v *Vehicle) WarpTo(pos math3d.Vec3, yaw, pitch float32) {
	v.Position = pos
	v.Yaw = yaw
	v.Pitch = pitch
	v.Velocity = math3d.Zero3()
	v.Roll = 0
	v.TargetRoll = 0
}

// Collides reports whether p is closer than Clearance to the surface of any body.
func Collides(p math3d.Vec3, bodies []Body) bool {
	for i := range bodies {
		if p.Distance(bodies[i].Position()) < bodies[i].Radius+Clearance {
			return true
		}
	}
	return false
}
