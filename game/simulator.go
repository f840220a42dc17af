package game

import (
	"math/rand"
)

// Physics holds the tunable rules a simulator runs with
type Physics struct {
	// Drag is the linear drag coefficient applied per second
	Drag float64

	// DamageScale multiplies the other entity's speed to get collision damage.
	// Zero disables the damage rule.
	DamageScale float64

	// ResolveCollisions enables the velocity swap and separation correction.
	// When false, collisions are detected (and damage applied) but bodies pass through.
	ResolveCollisions bool

	// Separation selects the post-swap positional correction
	Separation SeparationMode
}

// DefaultPhysics returns the rules of the final combat demo
func DefaultPhysics() Physics {
	return Physics{
		Drag:              0.01,
		DamageScale:       0.1,
		ResolveCollisions: true,
		Separation:        SeparationPushApart,
	}
}

// CollisionHook is called for every intersecting pair after damage is applied
// and before velocities change.
type CollisionHook func(a, b *Entity, damageA, damageB int)

// Simulator owns the roster and advances it frame by frame
type Simulator struct {
	width  float64
	height float64

	physics Physics
	rng     *rand.Rand

	// Ordered roster; index order decides collision processing order
	entities []*Entity

	// Scratch buffer for the per-entity view of the other entities
	others []*Entity

	// Total number of intersecting pairs seen since construction
	collisions int

	// OnCollision is optional
	OnCollision CollisionHook
}

// NewSimulator creates a simulator for a width x height surface.
// A nil rng gets a time-independent default source so runs stay reproducible.
func NewSimulator(width, height float64, physics Physics, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Simulator{
		width:    width,
		height:   height,
		physics:  physics,
		rng:      rng,
		entities: make([]*Entity, 0, 8),
	}
}

// Width returns the simulation width
func (s *Simulator) Width() float64 { return s.width }

// Height returns the simulation height
func (s *Simulator) Height() float64 { return s.height }

// Physics returns the rules this simulator runs with
func (s *Simulator) Physics() Physics { return s.physics }

// Add appends entities to the end of the roster
func (s *Simulator) Add(entities ...*Entity) {
	s.entities = append(s.entities, entities...)
}

// Entities returns the live roster. Callers must not modify it.
func (s *Simulator) Entities() []*Entity {
	return s.entities
}

// Len returns the number of entities in the roster
func (s *Simulator) Len() int {
	return len(s.entities)
}

// Collisions returns the number of intersecting pairs processed so far
func (s *Simulator) Collisions() int {
	return s.collisions
}

// HandleEdges points the velocity back inside the bounds on any axis where the
// entity's centre has reached the margin. The position is left untouched, so a
// fast entity may sit past the edge for a few frames.
func (s *Simulator) HandleEdges(e *Entity) {
	if e.Pos.X >= s.width-e.Radius {
		e.Vel.X = -abs(e.Vel.X)
	}
	if e.Pos.X <= e.Radius {
		e.Vel.X = abs(e.Vel.X)
	}

	if e.Pos.Y >= s.height-e.Radius {
		e.Vel.Y = -abs(e.Vel.Y)
	}
	if e.Pos.Y <= e.Radius {
		e.Vel.Y = abs(e.Vel.Y)
	}
}

// Step advances every entity by dt seconds: steer, integrate, bounce off the
// edges, then resolve collisions for the whole roster.
func (s *Simulator) Step(dt float64) {
	for i, e := range s.entities {
		e.Behavior.Steer(e, s.othersOf(i), s.rng)
		e.Step(dt, s.physics.Drag)
		s.HandleEdges(e)
	}

	s.HandleCollisions()
}

// othersOf returns a view of every entity except the one at index i.
// The slice is reused between calls.
func (s *Simulator) othersOf(i int) []*Entity {
	s.others = append(s.others[:0], s.entities[:i]...)
	s.others = append(s.others, s.entities[i+1:]...)
	return s.others
}

// RemoveEliminated compacts the roster, dropping every entity whose health has
// run out. It runs as its own pass after the frame's iteration has finished
// and returns the removed entities in roster order.
func (s *Simulator) RemoveEliminated() []*Entity {
	var removed []*Entity
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Eliminated() {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}

	// Clear the tail so removed entities can be collected
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept

	return removed
}

// Survivors returns the entities that still have health left.
// Entities without health are not counted.
func (s *Simulator) Survivors() []*Entity {
	var survivors []*Entity
	for _, e := range s.entities {
		if e.HasHealth && !e.Eliminated() {
			survivors = append(survivors, e)
		}
	}
	return survivors
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
