// Package scene runs one frame of the flythrough: it applies input, steps the
// simulation and draws the result into a framebuffer it owns.
package scene

import (
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/shade"
	"github.com/taigrr/orrery/pkg/sim"
)

// Control tuning.
const (
	MaxFrameTime = 0.1  // Seconds; longer frames are truncated
	Thrust       = 6.0  // Units per second squared
	BoostFactor  = 3.0  // Thrust multiplier while boosting
	TurnRate     = 1.5  // Radians per second
	BankAngle    = 0.45 // Target roll while yawing
)

var (
	background = math3d.RGB(0, 0, 8)
	orbitColor = math3d.RGB(70, 70, 90)
)

// Options configures a Scene.
type Options struct {
	Width      int
	Height     int
	FOV        float32 // Vertical, radians
	Stars      int
	StarSeed   uint32
	ShowOrbits bool
}

// DefaultOptions returns the standard 1280×720 setup.
func DefaultOptions() Options {
	return Options{
		Width:      render.DefaultWidth,
		Height:     render.DefaultHeight,
		FOV:        render.DefaultFOV,
		Stars:      render.DefaultStarCount,
		StarSeed:   render.DefaultStarSeed,
		ShowOrbits: true,
	}
}

// Scene owns the world state and the frame buffers.
type Scene struct {
	System     *sim.System
	Vehicle    *sim.Vehicle
	Camera     *render.ChaseCamera
	Starfield  *render.Starfield
	ShowOrbits bool
	Elapsed    float32

	fb     *render.Framebuffer
	raster *render.Rasterizer
	ship   render.Wireframe
	frames uint64
	warps  int
}

// New builds the default solar system with the vehicle at its start position.
func New(opts Options) *Scene {
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.FOV <= 0 {
		opts.FOV = def.FOV
	}

	v := sim.NewVehicle()
	cam := render.NewChaseCamera(v.Position, v.Yaw, v.Pitch)

	proj := render.NewProjector(opts.Width, opts.Height)
	proj.FOV = opts.FOV

	return &Scene{
		System:     sim.DefaultSystem(),
		Vehicle:    v,
		Camera:     cam,
		Starfield:  render.NewStarfield(opts.Stars, opts.Width, opts.Height, opts.StarSeed),
		ShowOrbits: opts.ShowOrbits,
		fb:         render.NewFramebuffer(opts.Width, opts.Height),
		raster:     render.NewRasterizer(proj, cam.View()),
		ship:       render.VehicleWireframe(),
	}
}

// Framebuffer returns the buffer Render draws into.
func (s *Scene) Framebuffer() *render.Framebuffer {
	return s.fb
}

// Update applies one frame of input and advances the simulation by dt
// seconds. It reports whether the exit key was pressed.
func (s *Scene) Update(dt float32, in Input) bool {
	if in.Pressed(KeyExit) {
		return true
	}
	dt = math3d.Clamp(dt, 0, MaxFrameTime)

	if in.Pressed(KeyToggleOrbits) {
		s.ShowOrbits = !s.ShowOrbits
	}
	for n := 1; n <= 7; n++ {
		if k, _ := WarpKey(n); in.Pressed(k) {
			s.Warp(n)
		}
	}

	s.steer(dt, in)

	s.System.Update(dt)
	s.Vehicle.Update(dt, s.System.Bodies)
	s.Camera.Update(dt, s.Vehicle.Position, s.Vehicle.Yaw, s.Vehicle.Pitch)
	s.Elapsed += dt
	return false
}

func (s *Scene) steer(dt float32, in Input) {
	v := s.Vehicle

	amount := float32(Thrust) * dt
	if in.Held(KeyBoost) {
		amount *= BoostFactor
	}
	axis := func(pos, neg Key) float32 {
		var a float32
		if in.Held(pos) {
			a++
		}
		if in.Held(neg) {
			a--
		}
		return a
	}

	if f := axis(KeyForward, KeyBack); f != 0 {
		v.Accelerate(v.Forward(), f*amount)
	}
	if r := axis(KeyStrafeRight, KeyStrafeLeft); r != 0 {
		v.Accelerate(v.Right(), r*amount)
	}
	if u := axis(KeyUp, KeyDown); u != 0 {
		v.Accelerate(math3d.Up(), u*amount)
	}

	// Increasing yaw turns left, so a right turn banks toward positive roll.
	yaw := axis(KeyYawLeft, KeyYawRight)
	v.TargetRoll = -yaw * BankAngle
	pitch := axis(KeyPitchUp, KeyPitchDown)
	v.Turn(yaw*TurnRate*dt, pitch*TurnRate*dt)
}

// Warp teleports the vehicle beside planet n (1-based) and snaps the camera
// behind it. It reports false for an unknown planet.
func (s *Scene) Warp(n int) bool {
	pos, yaw, pitch, ok := s.System.WarpTarget(n)
	if !ok {
		return false
	}
	s.Vehicle.WarpTo(pos, yaw, pitch)
	s.Camera.Snap(pos, yaw, pitch)
	s.warps++
	return true
}

// Render draws the current state: starfield, orbit rings, bodies and moons,
// then the vehicle. The returned buffer is only valid until the next Render.
func (s *Scene) Render() *render.Framebuffer {
	fb, r := s.fb, s.raster

	fb.Reset(background)
	r.SetView(s.Camera.View())
	r.Time = s.Elapsed
	r.ResetStats()

	s.Starfield.Draw(fb)

	if s.ShowOrbits {
		for i := range s.System.Bodies {
			if b := &s.System.Bodies[i]; b.OrbitRadius > 0 {
				r.DrawOrbit(fb, math3d.Zero3(), b.OrbitRadius, orbitColor)
			}
		}
	}

	for i := range s.System.Bodies {
		b := &s.System.Bodies[i]
		r.DrawSphere(fb, b.Position(), b.Radius, b.SpinAngle, b.Material)
		for j, p := range b.MoonPositions() {
			r.DrawSphere(fb, p, b.Moons[j].Size, b.Moons[j].OrbitAngle, shade.DefaultMoon)
		}
	}

	v := s.Vehicle
	r.DrawWireframe(fb, s.ship, render.Pose{
		Position: v.Position,
		Yaw:      v.Yaw,
		Pitch:    v.Pitch,
		Roll:     v.Roll,
	})

	s.frames++
	return fb
}

// Stats summarizes the scene for a heads-up display.
type Stats struct {
	Frames          uint64
	Warps           int
	Elapsed         float32
	Speed           float32
	Position        math3d.Vec3
	Nearest         string  // Name of the closest body
	NearestKind     string  // Its material
	NearestDistance float32 // To its surface
	Raster          render.RasterStats
}

// Stats returns counters and readouts from the last Update and Render.
func (s *Scene) Stats() Stats {
	st := Stats{
		Frames:   s.frames,
		Warps:    s.warps,
		Elapsed:  s.Elapsed,
		Speed:    s.Vehicle.Speed(),
		Position: s.Vehicle.Position,
		Raster:   s.raster.Stats,
	}
	if i, d := s.System.Nearest(s.Vehicle.Position); i >= 0 {
		b := &s.System.Bodies[i]
		st.Nearest = b.Name
		st.NearestKind = shade.Name(b.Material)
		st.NearestDistance = d
	}
	return st
}
