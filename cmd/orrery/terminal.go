package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orrery/internal/config"
	"github.com/taigrr/orrery/internal/hud"
	"github.com/taigrr/orrery/internal/termkeys"
	"github.com/taigrr/orrery/pkg/scene"
)

func runTerminal(sc *scene.Scene, cfg config.Viewer) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	fmt.Fprint(os.Stdout, termkeys.EnableKitty)

	cleanup := func() {
		fmt.Fprint(os.Stdout, termkeys.DisableKitty)
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	in := &termkeys.State{}
	h := hud.New(cfg.FPS)
	h.Visible = cfg.HUD

	sizes := make(chan uv.WindowSizeEvent, 1)

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				// Keep only the latest size.
				select {
				case <-sizes:
				default:
				}
				sizes <- ev

			case uv.KeyPressEvent:
				if ev.MatchString("ctrl+c") {
					cancel()
					return
				}
				in.Down(ev.Key(), time.Now())

			case uv.KeyReleaseEvent:
				in.Up(ev.Key())
			}
		}
	}()

	var keys scene.KeyState
	targetDuration := time.Second / time.Duration(cfg.FPS)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-sizes:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		if in.Snapshot(now, &keys) {
			h.Toggle()
		}
		exit := sc.Update(dt, &keys)
		keys.ClearPressed()
		if exit {
			return nil
		}

		fb := sc.Render()
		st := sc.Stats()
		area := uv.Rect(0, 0, width, height)

		fb.Draw(term, area)
		h.Tick(now, st.Speed)
		h.DrawCells(term, area, st)

		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
