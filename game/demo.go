package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// Demo identifies one of the bundled scenarios
type Demo int

const (
	DemoSingle  Demo = iota // One random-walking ball
	DemoBounce              // Two balls, edge bouncing, collisions detected but not resolved
	DemoCollide             // Several balls with collision resolution
	DemoBots                // Bot behaviors without combat
	DemoArena               // Bots with health, damage and elimination
)

// ErrUnknownDemo is returned by ParseDemo for names it does not know
var ErrUnknownDemo = errors.New("unknown demo")

var demoNames = []string{
	DemoSingle:  "single",
	DemoBounce:  "bounce",
	DemoCollide: "collide",
	DemoBots:    "bots",
	DemoArena:   "arena",
}

func (d Demo) String() string {
	if d >= 0 && int(d) < len(demoNames) {
		return demoNames[d]
	}
	return fmt.Sprintf("Demo(%d)", int(d))
}

// Demos returns every demo in order
func Demos() []Demo {
	return []Demo{DemoSingle, DemoBounce, DemoCollide, DemoBots, DemoArena}
}

// ParseDemo converts a demo name into a Demo
func ParseDemo(name string) (Demo, error) {
	for i, n := range demoNames {
		if n == name {
			return Demo(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// Combat reports whether the demo tracks health and eliminates entities
func (d Demo) Combat() bool {
	return d == DemoArena
}

// Demo tuning that is not worth exposing through Config
const (
	singleRadius       = 50.0
	singleDrag         = 0.6
	singleRandomChance = 0.001
	collideBallCount   = 4
	collideMaxSpeed    = 150.0
)

// NewDemoSimulator builds the simulator and initial roster for cfg.Demo.
// The roster is fixed here; behaviors never change afterwards.
func NewDemoSimulator(cfg Config, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = cfg.NewRand()
	}
	width := float64(cfg.ScreenWidth)
	height := float64(cfg.ScreenHeight)
	physics := cfg.Physics

	switch cfg.Demo {
	case DemoSingle:
		physics.Drag = singleDrag
		physics.DamageScale = 0
		sim := NewSimulator(width, height, physics, rng)
		ball := NewEntity(width/2, height/2, singleRadius, "white")
		ball.Vel = Vec{X: 180, Y: 120}
		ball.Acc = Vec{X: 60, Y: 60}
		ball.Behavior = RandomWalk(cfg.MaxAccel, singleRandomChance)
		sim.Add(ball)
		return sim

	case DemoBounce:
		physics.DamageScale = 0
		physics.ResolveCollisions = false
		sim := NewSimulator(width, height, physics, rng)
		for _, color := range []string{"blue", "red"} {
			ball := randomEntity(rng, width, height, cfg.Radius, color)
			ball.Vel = Vec{X: 100, Y: 0}
			ball.Acc = Vec{X: 20, Y: 90}
			sim.Add(ball)
		}
		return sim

	case DemoCollide:
		physics.DamageScale = 0
		sim := NewSimulator(width, height, physics, rng)
		colors := []string{"blue", "red", "green", "orange"}
		for i := 0; i < collideBallCount; i++ {
			ball := randomEntity(rng, width, height, cfg.Radius, colors[i%len(colors)])
			ball.Vel = Vec{
				X: (rng.Float64()*2 - 1) * collideMaxSpeed,
				Y: (rng.Float64()*2 - 1) * collideMaxSpeed,
			}
			sim.Add(ball)
		}
		return sim

	case DemoBots:
		physics.DamageScale = 0
		sim := NewSimulator(width, height, physics, rng)
		roster := []struct {
			color    string
			behavior Behavior
		}{
			{"blue", RandomWalk(cfg.MaxAccel, cfg.RandomWalkChance)},
			{"red", Ram(cfg.MaxAccel)},
			{"purple", Intercept(cfg.MaxAccel)},
			{"gray", Stationary()},
		}
		for _, r := range roster {
			bot := randomEntity(rng, width, height, cfg.Radius, r.color)
			bot.Behavior = r.behavior
			sim.Add(bot)
		}
		return sim

	default:
		sim := NewSimulator(width, height, physics, rng)
		roster := []struct {
			color    string
			behavior Behavior
		}{
			{"blue", RandomWalk(cfg.MaxAccel, cfg.RandomWalkChance)},
			{"red", Ram(cfg.MaxAccel)},
			{"green", LeadPursuit(cfg.MaxAccel)},
		}
		for _, r := range roster {
			pos := randomPosition(rng, width, height, cfg.Radius)
			sim.Add(NewCombatant(pos.X, pos.Y, cfg.Radius, r.color, r.behavior))
		}
		return sim
	}
}

// randomPosition picks a centre that keeps the whole circle on the surface
func randomPosition(rng *rand.Rand, width, height, radius float64) Vec {
	return Vec{
		X: radius + rng.Float64()*(width-2*radius),
		Y: radius + rng.Float64()*(height-2*radius),
	}
}

func randomEntity(rng *rand.Rand, width, height, radius float64, color string) *Entity {
	pos := randomPosition(rng, width, height, radius)
	return NewEntity(pos.X, pos.Y, radius, color)
}
