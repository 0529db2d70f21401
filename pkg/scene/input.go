package scene

// Key is a logical control, independent of the physical key bound to it.
type Key int

// Controls.
const (
	KeyForward Key = iota
	KeyBack
	KeyStrafeLeft
	KeyStrafeRight
	KeyUp
	KeyDown
	KeyYawLeft
	KeyYawRight
	KeyPitchUp
	KeyPitchDown
	KeyBoost
	KeyWarp1
	KeyWarp2
	KeyWarp3
	KeyWarp4
	KeyWarp5
	KeyWarp6
	KeyWarp7
	KeyToggleOrbits
	KeyExit

	KeyCount // Number of keys; not a key.
)

var keyNames = [KeyCount]string{
	"forward", "back", "strafe-left", "strafe-right", "up", "down",
	"yaw-left", "yaw-right", "pitch-up", "pitch-down", "boost",
	"warp-1", "warp-2", "warp-3", "warp-4", "warp-5", "warp-6", "warp-7",
	"toggle-orbits", "exit",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// WarpKey returns the key that warps to planet n (1-7).
func WarpKey(n int) (Key, bool) {
	if n < 1 || n > 7 {
		return 0, false
	}
	return KeyWarp1 + Key(n-1), true
}

// Input is one frame's keyboard snapshot. Held reports keys currently down;
// Pressed reports keys that went down since the previous frame.
type Input interface {
	Held(k Key) bool
	Pressed(k Key) bool
}

// KeyState is a plain Input backed by two bitsets. Presenters fill it each
// frame.
type KeyState struct {
	held    [KeyCount]bool
	pressed [KeyCount]bool
}

// Held implements Input.
func (s *KeyState) Held(k Key) bool {
	return k >= 0 && k < KeyCount && s.held[k]
}

// Pressed implements Input.
func (s *KeyState) Pressed(k Key) bool {
	return k >= 0 && k < KeyCount && s.pressed[k]
}

// SetHeld records whether k is down. A transition from up to down also marks
// k as pressed until the next ClearPressed.
func (s *KeyState) SetHeld(k Key, down bool) {
	if k < 0 || k >= KeyCount {
		return
	}
	if down && !s.held[k] {
		s.pressed[k] = true
	}
	s.held[k] = down
}

// Press marks k as newly pressed without changing its held state.
func (s *KeyState) Press(k Key) {
	if k >= 0 && k < KeyCount {
		s.pressed[k] = true
	}
}

// ClearPressed forgets edge-triggered presses. Call after each Update.
func (s *KeyState) ClearPressed() {
	s.pressed = [KeyCount]bool{}
}
