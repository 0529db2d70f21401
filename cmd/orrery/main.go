// orrery - Solar System Flythrough
// Fly a small craft through a procedurally shaded solar system, rendered
// entirely on the CPU into a window or a terminal.
//
// Controls:
//
//	W/S         - Thrust forward/back
//	A/D         - Strafe left/right
//	Space/C     - Rise/descend
//	Arrows      - Yaw and pitch
//	Left Shift  - Boost
//	1-7         - Warp to planet
//	O           - Toggle orbit rings
//	H           - Toggle HUD
//	Esc         - Quit
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/taigrr/orrery/internal/config"
	"github.com/taigrr/orrery/internal/logging"
	"github.com/taigrr/orrery/pkg/scene"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadViewer(args)
	if err != nil {
		return err
	}

	log := logging.ForWriter(os.Stderr, cfg.LogLevel)
	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Str("presenter", cfg.Presenter).
		Msg("starting orrery")

	sc := scene.New(sceneOptions(cfg))

	switch cfg.Presenter {
	case config.PresenterTerminal:
		err = runTerminal(sc, cfg)
	default:
		err = runWindow(sc, cfg, log)
	}
	if err != nil {
		log.Error().Err(err).Msg("presenter failed")
		return err
	}

	logSummary(log, sc.Stats())
	return nil
}

func sceneOptions(cfg config.Viewer) scene.Options {
	return scene.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		FOV:        float32(cfg.FOV) * math32.Pi / 180,
		Stars:      cfg.Stars,
		StarSeed:   cfg.Seed,
		ShowOrbits: cfg.Orbits,
	}
}

func logSummary(log zerolog.Logger, st scene.Stats) {
	log.Info().
		Uint64("frames", st.Frames).
		Int("warps", st.Warps).
		Float32("elapsed", st.Elapsed).
		Str("nearest", st.Nearest).
		Msg("flight ended")
}
