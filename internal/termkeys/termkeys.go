// Package termkeys derives held and newly pressed controls from terminal key
// events.
//
// Most terminals only report presses, repeating them while a key is down, so
// a key counts as held until HoldTimeout after its last press. Terminals that
// speak the kitty keyboard protocol also report releases, which end the hold
// at once.
package termkeys

import (
	"sync"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orrery/pkg/scene"
)

// HoldTimeout is how long a key stays held after its last press event.
const HoldTimeout = 500 * time.Millisecond

// Kitty keyboard protocol: disambiguate, report releases, report every key.
const (
	EnableKitty  = "\x1b[>11u"
	DisableKitty = "\x1b[<u"
)

// Bindings maps key codes to controls.
var Bindings = map[rune]scene.Key{
	'w':             scene.KeyForward,
	's':             scene.KeyBack,
	'a':             scene.KeyStrafeLeft,
	'd':             scene.KeyStrafeRight,
	uv.KeySpace:     scene.KeyUp,
	'c':             scene.KeyDown,
	uv.KeyLeft:      scene.KeyYawLeft,
	uv.KeyRight:     scene.KeyYawRight,
	uv.KeyUp:        scene.KeyPitchUp,
	uv.KeyDown:      scene.KeyPitchDown,
	uv.KeyLeftShift: scene.KeyBoost,
	'1':             scene.KeyWarp1,
	'2':             scene.KeyWarp2,
	'3':             scene.KeyWarp3,
	'4':             scene.KeyWarp4,
	'5':             scene.KeyWarp5,
	'6':             scene.KeyWarp6,
	'7':             scene.KeyWarp7,
	'o':             scene.KeyToggleOrbits,
	uv.KeyEscape:    scene.KeyExit,
}

// HUDKey toggles the heads-up display. It is not a scene control.
const HUDKey = 'h'

// State collects key events from the terminal's reader goroutine. The frame
// loop takes a Snapshot once per frame.
type State struct {
	mu        sync.Mutex
	lastSeen  [scene.KeyCount]time.Time
	pressed   [scene.KeyCount]bool
	toggleHUD bool
}

func (s *State) held(k scene.Key, now time.Time) bool {
	seen := s.lastSeen[k]
	return !seen.IsZero() && now.Sub(seen) < HoldTimeout
}

// Down records a key press at now.
func (s *State) Down(k uv.Key, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k.Code == HUDKey {
		if !k.IsRepeat {
			s.toggleHUD = true
		}
		return
	}

	// Shifted letters drive boost on terminals that never report a bare
	// shift key.
	if k.Mod.Contains(uv.ModShift) {
		s.lastSeen[scene.KeyBoost] = now
	}

	sk, ok := Bindings[k.Code]
	if !ok {
		return
	}
	if !k.IsRepeat && !s.held(sk, now) {
		s.pressed[sk] = true
	}
	s.lastSeen[sk] = now
}

// Up records a key release.
func (s *State) Up(k uv.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sk, ok := Bindings[k.Code]; ok {
		s.lastSeen[sk] = time.Time{}
	}
	if k.Mod.Contains(uv.ModShift) || k.Code == uv.KeyLeftShift {
		s.lastSeen[scene.KeyBoost] = time.Time{}
	}
}

// Snapshot fills keys with the state at now and clears pending presses. It
// reports whether the HUD toggle was pressed since the last snapshot.
func (s *State) Snapshot(now time.Time, keys *scene.KeyState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range scene.KeyCount {
		keys.SetHeld(k, s.held(k, now))
		if s.pressed[k] {
			keys.Press(k)
		}
	}
	s.pressed = [scene.KeyCount]bool{}

	toggle := s.toggleHUD
	s.toggleHUD = false
	return toggle
}
