package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const profileCaptureDuration = 3 * time.Second

// Game runs one demo inside the ebiten loop
type Game struct {
	config    Config
	sim       *Simulator
	renderer  *Renderer
	hud       *HUD
	timeScale *TimeScale
	logger    *log.Logger
	profiler  *Profiler

	// Health readout built at the end of the last simulated frame
	overlay []string

	// Frames whose wall-clock delta exceeded MaxFrameDelta
	skippedFrames int

	winnerAnnounced bool
	prevAltEnter    bool

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a game for cfg.Demo
func NewGame(config Config, logger *log.Logger) *Game {
	g := &Game{
		config:         config,
		sim:            NewDemoSimulator(config, nil),
		renderer:       NewRenderer(config.ScreenWidth, config.ScreenHeight),
		hud:            NewHUD(),
		timeScale:      NewTimeScale(),
		logger:         logger,
		lastUpdateTime: time.Now(),
	}
	g.sim.OnCollision = g.logCollision

	if config.ProfileDir != "" {
		profiler, err := NewProfiler(config.ProfileDir, profileCaptureDuration, logger)
		if err != nil {
			logger.Warn("profiling disabled", "err", err)
		} else {
			g.profiler = profiler
		}
	}
	g.overlay = OverlayLines(g.sim.Entities())

	for _, e := range g.sim.Entities() {
		logger.Debug("spawned", "id", e.ID, "color", e.Color, "behavior", e.Behavior.Kind,
			"x", int(e.Pos.X), "y", int(e.Pos.Y))
	}
	logger.Info("demo started", "demo", config.Demo, "entities", g.sim.Len(),
		"separation", config.Physics.Separation, "size", fmt.Sprintf("%dx%d", config.ScreenWidth, config.ScreenHeight))

	return g
}

// Simulator returns the running simulator
func (g *Game) Simulator() *Simulator {
	return g.sim
}

// Overlay returns the health readout shown this frame
func (g *Game) Overlay() []string {
	return g.overlay
}

// SkippedFrames returns how many frames were too long to simulate
func (g *Game) SkippedFrames() int {
	return g.skippedFrames
}

// SelectTimeScale switches the time multiplier to the one bound to digit
func (g *Game) SelectTimeScale(digit int) {
	if !g.timeScale.Select(digit) {
		return
	}
	g.hud.AnnounceTimeScale(g.timeScale)
	g.logger.Info("time scale", "digit", digit, "multiplier", g.timeScale.Multiplier())
}

// Update advances the game by the wall-clock time since the previous call
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	g.handleInput()
	g.Advance(deltaTime)
	return nil
}

// Advance runs one frame with a wall-clock delta of dt seconds and reports
// whether the simulation moved. Frames longer than MaxFrameDelta (a hidden
// tab, a debugger pause) are skipped without touching any state.
func (g *Game) Advance(dt float64) bool {
	if dt > g.config.MaxFrameDelta {
		g.skippedFrames++
		g.logger.Debug("frame skipped", "dt", dt)
		if g.profiler != nil {
			if err := g.profiler.CaptureProfile("frame-skip"); err != nil {
				g.logger.Debug("profile not captured", "err", err)
			}
		}
		return false
	}

	g.hud.Update(dt)

	if g.timeScale.Paused() {
		return false
	}

	g.sim.Step(g.timeScale.Apply(dt))
	g.finishFrame()
	return true
}

// finishFrame builds the overlay from the settled state, then compacts the
// roster. Removal happens only after every read of the frame is done.
func (g *Game) finishFrame() {
	g.overlay = OverlayLines(g.sim.Entities())

	for _, e := range g.sim.RemoveEliminated() {
		g.logger.Info("eliminated", "id", e.ID, "color", e.Color, "health", e.Health)
	}

	if g.config.Demo.Combat() && !g.winnerAnnounced {
		if survivors := g.sim.Survivors(); len(survivors) == 1 {
			g.winnerAnnounced = true
			g.hud.Announce(fmt.Sprintf("%s wins", survivors[0].Color))
			g.logger.Info("winner", "id", survivors[0].ID, "color", survivors[0].Color, "health", survivors[0].Health)
		}
	}
}

func (g *Game) logCollision(a, b *Entity, damageA, damageB int) {
	g.logger.Debug("collision",
		"a", a.Color, "b", b.Color,
		"damageA", damageA, "damageB", damageB)
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	stats := fmt.Sprintf("collisions %d  skipped %d  speed %s  tps %.0f",
		g.sim.Collisions(), g.skippedFrames, g.timeScale, ebiten.ActualTPS())
	g.renderer.Render(screen, g.sim, g.overlay, g.hud, stats)
}

// Layout returns the fixed surface size; window resizes only scale it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
