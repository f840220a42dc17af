package main

import (
	"flag"
	"os"

	"bumperballs/game"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file with BUMPERBALLS_* settings")
	demoName := flag.String("demo", "", "demo to run: single, bounce, collide, bots, arena")
	separation := flag.String("separation", "", "collision separation: pushapart, legacy, none")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	config, err := game.LoadConfig(*envFile)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	if *demoName != "" {
		if config.Demo, err = game.ParseDemo(*demoName); err != nil {
			log.Fatal("invalid -demo", "err", err)
		}
	}
	if *separation != "" {
		if config.Physics.Separation, err = game.ParseSeparationMode(*separation); err != nil {
			log.Fatal("invalid -separation", "err", err)
		}
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	logger, err := game.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}

	// Size the surface to the monitor once; later window resizes only scale it
	if config.FitToMonitor {
		monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
		if monitorWidth > 0 && monitorHeight > 0 {
			config.ScreenWidth = int(float64(monitorWidth) * config.WindowedSizeRatio)
			config.ScreenHeight = int(float64(monitorHeight) * config.WindowedSizeRatio)
		}
	}
	if err := config.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	g := game.NewGame(config, logger)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("bumperballs: " + config.Demo.String())
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
