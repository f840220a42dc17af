package main

import (
	"flag"
	"os"
	"time"

	"bumperballs/game"

	"github.com/charmbracelet/log"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file with BUMPERBALLS_* settings")
	demoName := flag.String("demo", "arena", "demo to run: single, bounce, collide, bots, arena")
	frames := flag.Int("frames", 60*120, "maximum number of frames to simulate")
	dt := flag.Float64("dt", 1.0/60, "simulated seconds per frame")
	speed := flag.Int("speed", game.DefaultTimeScaleDigit, "time scale digit 0-9 applied to dt")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	config, err := game.LoadConfig(*envFile)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	if config.Demo, err = game.ParseDemo(*demoName); err != nil {
		log.Fatal("invalid -demo", "err", err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	logger, err := game.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}

	timeScale := game.NewTimeScale()
	if !timeScale.Select(*speed) {
		logger.Fatal("invalid -speed", "digit", *speed)
	}
	if timeScale.Paused() {
		logger.Fatal("a paused run never advances", "speed", *speed)
	}

	sim := game.NewDemoSimulator(config, nil)
	sim.OnCollision = func(a, b *game.Entity, damageA, damageB int) {
		logger.Debug("collision", "a", a.Color, "b", b.Color, "damageA", damageA, "damageB", damageB)
	}

	logger.Info("headless run", "demo", config.Demo, "entities", sim.Len(),
		"frames", *frames, "dt", timeScale.Apply(*dt), "speed", timeScale.String())

	start := time.Now()
	report := game.RunHeadless(sim, *frames, timeScale.Apply(*dt), config.Demo.Combat())

	for i, e := range report.Eliminated {
		logger.Info("eliminated", "place", len(report.Eliminated)-i+len(report.Remaining), "color", e.Color, "health", e.Health)
	}
	for _, e := range report.Remaining {
		logger.Info("remaining", "color", e.Color, "health", e.Health,
			"x", int(e.Pos.X), "y", int(e.Pos.Y))
	}
	logger.Info("done",
		"frames", report.Frames,
		"simulated", time.Duration(report.SimulatedSeconds*float64(time.Second)).Round(time.Millisecond),
		"collisions", report.Collisions,
		"elapsed", time.Since(start).Round(time.Microsecond))
}
