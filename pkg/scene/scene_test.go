package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/sim"
)

// fakeInput holds keys down and fires presses exactly once.
type fakeInput struct {
	KeyState
}

func hold(keys ...Key) *fakeInput {
	in := &fakeInput{}
	for _, k := range keys {
		in.SetHeld(k, true)
	}
	in.ClearPressed()
	return in
}

func press(keys ...Key) *fakeInput {
	in := &fakeInput{}
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func smallScene() *Scene {
	opts := DefaultOptions()
	opts.Width, opts.Height = 320, 180
	return New(opts)
}

func TestNewScene(t *testing.T) {
	s := New(Options{})

	assert.Equal(t, 1280, s.Framebuffer().Width)
	assert.Equal(t, 720, s.Framebuffer().Height)
	assert.Equal(t, math3d.V3(0, 5, 25), s.Vehicle.Position)
	assert.InDelta(t, 15, s.Camera.Eye().Z, 1e-4)
	assert.InDelta(t, 9, s.Camera.Eye().Y, 1e-4)
}

func TestUpdateExit(t *testing.T) {
	s := smallScene()

	assert.True(t, s.Update(0.016, press(KeyExit)))
	assert.False(t, s.Update(0.016, hold(KeyExit)), "holding exit without a fresh press does nothing")
}

func TestUpdateCapsFrameTime(t *testing.T) {
	s := smallScene()

	s.Update(5, hold())
	assert.InDelta(t, MaxFrameTime, s.Elapsed, 1e-6)

	s.Update(-1, hold())
	assert.InDelta(t, MaxFrameTime, s.Elapsed, 1e-6)
}

func TestThrustForward(t *testing.T) {
	s := smallScene()
	start := s.Vehicle.Position

	for range 30 {
		s.Update(1.0/60, hold(KeyForward))
	}

	assert.Greater(t, s.Vehicle.Position.Z, start.Z)
	assert.InDelta(t, start.X, s.Vehicle.Position.X, 1e-4)
	assert.Greater(t, s.Vehicle.Speed(), float32(0))
}

func TestBoostNeverExceedsMaxSpeed(t *testing.T) {
	s := smallScene()
	in := hold(KeyForward, KeyStrafeRight, KeyUp, KeyBoost)

	for range 120 {
		s.Update(MaxFrameTime, in)
		require.LessOrEqual(t, s.Vehicle.Speed(), float32(sim.MaxSpeed+1e-4))
	}
}

func TestStrafeRightMovesTowardCameraRight(t *testing.T) {
	s := smallScene()
	for range 10 {
		s.Update(1.0/60, hold(KeyStrafeRight))
	}

	// Facing +Z, right is -X.
	assert.Less(t, s.Vehicle.Position.X, float32(0))
}

func TestYawBanks(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		yawSign float32
		roll    float32
	}{
		{"left", KeyYawLeft, 1, -BankAngle},
		{"right", KeyYawRight, -1, BankAngle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := smallScene()
			s.Update(0.05, hold(tc.key))

			assert.Greater(t, s.Vehicle.Yaw*tc.yawSign, float32(0))
			assert.InDelta(t, tc.roll, s.Vehicle.TargetRoll, 1e-6)
			assert.Greater(t, s.Vehicle.Roll*tc.roll, float32(0), "roll eases toward the bank")
		})
	}

	s := smallScene()
	s.Update(0.05, hold(KeyYawLeft))
	s.Update(0.05, hold())
	assert.Zero(t, s.Vehicle.TargetRoll, "releasing the turn levels out")
}

func TestWarpKeys(t *testing.T) {
	for n := 1; n <= 7; n++ {
		s := smallScene()
		s.Vehicle.Velocity = math3d.V3(1, 1, 1)
		k, ok := WarpKey(n)
		require.True(t, ok)

		want, _, _, _ := s.System.WarpTarget(n)
		s.Update(1.0/60, press(k))

		assert.InDelta(t, 0, s.Vehicle.Position.Distance(want), 1e-4, "planet %d", n)
		assert.Zero(t, s.Vehicle.Speed())
		assert.Equal(t, 1, s.Stats().Warps)
	}

	_, ok := WarpKey(8)
	assert.False(t, ok)
}

func TestToggleOrbits(t *testing.T) {
	s := smallScene()
	require.True(t, s.ShowOrbits)

	s.Update(0.016, press(KeyToggleOrbits))
	assert.False(t, s.ShowOrbits)

	s.Update(0.016, hold(KeyToggleOrbits))
	assert.False(t, s.ShowOrbits, "held key must not toggle again")
}

func TestRenderDrawsVehicle(t *testing.T) {
	s := smallScene()
	s.ShowOrbits = false
	s.Starfield.Stars = nil

	fb := s.Render()
	require.Same(t, s.Framebuffer(), fb)

	lit := 0
	for _, p := range fb.Pixels {
		if p != background.Pack() {
			lit++
		}
	}
	assert.Positive(t, lit, "vehicle wireframe should be visible")
	assert.EqualValues(t, 1, s.Stats().Frames)
}

func TestRenderDeterministic(t *testing.T) {
	a, b := smallScene(), smallScene()
	in := hold(KeyForward, KeyYawLeft)

	for range 20 {
		a.Update(1.0/30, in)
		b.Update(1.0/30, in)
	}
	a.Warp(4)
	b.Warp(4)

	assert.Equal(t, a.Render().Pixels, b.Render().Pixels)
}

func TestRenderWarpShowsPlanet(t *testing.T) {
	s := smallScene()
	require.True(t, s.Warp(5))
	s.Render()

	assert.Positive(t, s.Stats().Raster.SpheresDrawn)
	assert.Positive(t, s.Stats().Raster.Fragments)
}

func TestStatsNearest(t *testing.T) {
	s := smallScene()
	s.Warp(3)

	st := s.Stats()
	assert.Equal(t, "Terra", st.Nearest)
	assert.Equal(t, "terrestrial", st.NearestKind)
	assert.Positive(t, st.NearestDistance)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "forward", KeyForward.String())
	assert.Equal(t, "exit", KeyExit.String())
	assert.Equal(t, "unknown", KeyCount.String())
}

func TestKeyStatePressedEdge(t *testing.T) {
	var ks KeyState
	ks.SetHeld(KeyBoost, true)
	assert.True(t, ks.Pressed(KeyBoost))
	assert.True(t, ks.Held(KeyBoost))

	ks.ClearPressed()
	ks.SetHeld(KeyBoost, true)
	assert.False(t, ks.Pressed(KeyBoost), "staying down is not a new press")

	ks.SetHeld(KeyBoost, false)
	assert.False(t, ks.Held(KeyBoost))
	assert.False(t, ks.Held(Key(-1)))
}
