package main

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/taigrr/orrery/internal/config"
	"github.com/taigrr/orrery/internal/hud"
	"github.com/taigrr/orrery/pkg/scene"
)

// Held controls, polled every tick.
var heldKeys = []struct {
	key  scene.Key
	keys []ebiten.Key
}{
	{scene.KeyForward, []ebiten.Key{ebiten.KeyW}},
	{scene.KeyBack, []ebiten.Key{ebiten.KeyS}},
	{scene.KeyStrafeLeft, []ebiten.Key{ebiten.KeyA}},
	{scene.KeyStrafeRight, []ebiten.Key{ebiten.KeyD}},
	{scene.KeyUp, []ebiten.Key{ebiten.KeySpace}},
	{scene.KeyDown, []ebiten.Key{ebiten.KeyC}},
	{scene.KeyYawLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{scene.KeyYawRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{scene.KeyPitchUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{scene.KeyPitchDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{scene.KeyBoost, []ebiten.Key{ebiten.KeyShiftLeft}},
}

// Edge-triggered controls.
var pressedKeys = []struct {
	key  scene.Key
	keys []ebiten.Key
}{
	{scene.KeyWarp1, []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}},
	{scene.KeyWarp2, []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}},
	{scene.KeyWarp3, []ebiten.Key{ebiten.Key3, ebiten.KeyNumpad3}},
	{scene.KeyWarp4, []ebiten.Key{ebiten.Key4, ebiten.KeyNumpad4}},
	{scene.KeyWarp5, []ebiten.Key{ebiten.Key5, ebiten.KeyNumpad5}},
	{scene.KeyWarp6, []ebiten.Key{ebiten.Key6, ebiten.KeyNumpad6}},
	{scene.KeyWarp7, []ebiten.Key{ebiten.Key7, ebiten.KeyNumpad7}},
	{scene.KeyToggleOrbits, []ebiten.Key{ebiten.KeyO}},
	{scene.KeyExit, []ebiten.Key{ebiten.KeyEscape}},
}

// Game adapts a Scene to ebiten's update/draw loop.
type Game struct {
	scene *scene.Scene
	hud   *hud.HUD
	log   zerolog.Logger

	input     scene.KeyState
	lastFrame time.Time
	lastWarps int

	frame *image.RGBA
}

// NewGame wraps sc for display in a window.
func NewGame(sc *scene.Scene, cfg config.Viewer, log zerolog.Logger) *Game {
	fb := sc.Framebuffer()
	h := hud.New(cfg.FPS)
	h.Visible = cfg.HUD
	return &Game{
		scene: sc,
		hud:   h,
		log:   log,
		frame: image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height)),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) pollInput() {
	for _, b := range heldKeys {
		g.input.SetHeld(b.key, anyPressed(b.keys))
	}
	for _, b := range pressedKeys {
		if anyJustPressed(b.keys) {
			g.input.Press(b.key)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
}

func (g *Game) Update() error {
	now := time.Now()
	if g.lastFrame.IsZero() {
		g.lastFrame = now
	}
	dt := float32(now.Sub(g.lastFrame).Seconds())
	g.lastFrame = now

	g.pollInput()
	exit := g.scene.Update(dt, &g.input)
	g.input.ClearPressed()
	if exit {
		return ebiten.Termination
	}

	if st := g.scene.Stats(); st.Warps != g.lastWarps {
		g.lastWarps = st.Warps
		g.log.Info().Str("near", st.Nearest).Msg("warped")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.scene.Render()
	st := g.scene.Stats()

	g.hud.Tick(time.Now(), st.Speed)
	fb.CopyRGBA(g.frame.Pix)
	g.hud.Draw(g.frame, st)
	screen.WritePixels(g.frame.Pix)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.scene.Framebuffer()
	return fb.Width, fb.Height
}

func runWindow(sc *scene.Scene, cfg config.Viewer, log zerolog.Logger) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("orrery")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(NewGame(sc, cfg, log)); err != nil {
		return err
	}
	return nil
}
