package game

import (
	"math"
	"strings"
	"sync/atomic"
)

// EntityID identifies an entity in logs and reports.
// Rosters are ordered slices; the ID is never used to look entities up.
type EntityID uint64

var nextEntityID uint64

func generateEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// StartingHealth is the health every combat entity spawns with
const StartingHealth = 100

// Entity is a simulated circular body (a ball or a player)
type Entity struct {
	ID EntityID

	// Position in world coordinates
	Pos Vec

	// Velocity in pixels per second
	Vel Vec

	// Acceleration in pixels per second^2
	Acc Vec

	// Collision radius in pixels, constant for the entity's lifetime
	Radius float64

	// Color name, one of the palette entries
	Color string

	// Health only matters when HasHealth is set (combat demos)
	Health    int
	HasHealth bool

	// Facing angle in radians and its angular velocity
	Rotation        float64
	AngularVelocity float64

	// Behavior decides the acceleration each frame
	Behavior Behavior
}

// NewEntity creates a plain entity at the given position
func NewEntity(x, y, radius float64, color string) *Entity {
	return &Entity{
		ID:     generateEntityID(),
		Pos:    Vec{X: x, Y: y},
		Radius: radius,
		Color:  color,
	}
}

// NewCombatant creates an entity with health and the given behavior
func NewCombatant(x, y, radius float64, color string, behavior Behavior) *Entity {
	e := NewEntity(x, y, radius, color)
	e.Health = StartingHealth
	e.HasHealth = true
	e.Behavior = behavior
	return e
}

// Step advances the entity by dt seconds using semi-implicit Euler and linear drag.
// The drag factor (1 - drag*dt) is not clamped: when drag*dt > 1 the velocity
// changes sign.
func (e *Entity) Step(dt, drag float64) {
	e.Pos.X += e.Vel.X * dt
	e.Pos.Y += e.Vel.Y * dt

	e.Vel.X += e.Acc.X * dt
	e.Vel.Y += e.Acc.Y * dt

	factor := 1 - drag*dt
	e.Vel.X *= factor
	e.Vel.Y *= factor

	e.Rotation += e.AngularVelocity * dt
}

// Hit applies collision damage from other. Entities without health ignore hits.
func (e *Entity) Hit(other *Entity, damageScale float64) int {
	if !e.HasHealth {
		return 0
	}
	damage := int(math.Round(damageScale * Magnitude(other.Vel)))
	e.Health -= damage
	return damage
}

// Eliminated reports whether the entity has run out of health
func (e *Entity) Eliminated() bool {
	return e.HasHealth && e.Health <= 0
}

// Initial is the upper-cased first letter of the entity's color
func (e *Entity) Initial() string {
	if e.Color == "" {
		return "?"
	}
	return strings.ToUpper(e.Color[:1])
}

// Speed returns the magnitude of the entity's velocity
func (e *Entity) Speed() float64 {
	return Magnitude(e.Vel)
}
