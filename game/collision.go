package game

import (
	"fmt"
	"math"
)

// SeparationMode selects how overlapping entities are pushed apart after the
// velocity swap
type SeparationMode int

const (
	// SeparationPushApart moves both entities along the line between their
	// centres by half the overlap each, leaving them just out of contact.
	SeparationPushApart SeparationMode = iota

	// SeparationLegacy advances both entities along their own (post-swap)
	// velocity by sqrt(r1+r2) / distance(pos1+vel1, pos2+vel2). The ratio is
	// unbounded: a zero projected distance yields infinite or NaN positions.
	SeparationLegacy

	// SeparationNone leaves positions alone
	SeparationNone
)

var separationNames = map[SeparationMode]string{
	SeparationPushApart: "pushapart",
	SeparationLegacy:    "legacy",
	SeparationNone:      "none",
}

func (m SeparationMode) String() string {
	if name, ok := separationNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SeparationMode(%d)", int(m))
}

// ParseSeparationMode converts a name produced by String back into a mode
func ParseSeparationMode(name string) (SeparationMode, error) {
	for mode, n := range separationNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown separation mode %q", name)
}

// separationSlop keeps pushed-apart entities strictly out of contact so the
// same pair is not resolved again next frame
const separationSlop = 1e-6

// HandleCollisions scans every unordered pair once, in index order, and
// resolves each intersecting pair immediately. Later pairs see the positions
// and velocities left by earlier ones. Returns the number of pairs resolved.
func (s *Simulator) HandleCollisions() int {
	count := 0
	for i := 0; i < len(s.entities); i++ {
		for j := i + 1; j < len(s.entities); j++ {
			if Intersecting(s.entities[i], s.entities[j]) {
				s.HandleCollision(s.entities[i], s.entities[j])
				count++
			}
		}
	}
	s.collisions += count
	return count
}

// HandleCollision resolves a single intersecting pair: damage first, then the
// x-velocity swap, then the separation correction.
func (s *Simulator) HandleCollision(a, b *Entity) {
	var damageA, damageB int
	if s.physics.DamageScale > 0 {
		damageA = a.Hit(b, s.physics.DamageScale)
		damageB = b.Hit(a, s.physics.DamageScale)
	}

	if s.OnCollision != nil {
		s.OnCollision(a, b, damageA, damageB)
	}

	if !s.physics.ResolveCollisions {
		return
	}

	// Equal masses: exchange the x components only
	a.Vel.X, b.Vel.X = b.Vel.X, a.Vel.X

	switch s.physics.Separation {
	case SeparationPushApart:
		PushApart(a, b)
	case SeparationLegacy:
		legacySeparate(a, b)
	}
}

// PushApart moves two overlapping entities apart along the line between their
// centres until they no longer touch. Coincident centres separate along +x.
func PushApart(a, b *Entity) {
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance == 0 {
		dx, dy, distance = 1, 0, 0
	} else {
		dx /= distance
		dy /= distance
	}

	overlap := (a.Radius + b.Radius) - distance
	if overlap < 0 {
		return
	}

	separation := overlap*0.5 + separationSlop
	a.Pos.X -= dx * separation
	a.Pos.Y -= dy * separation
	b.Pos.X += dx * separation
	b.Pos.Y += dy * separation
}

func legacySeparate(a, b *Entity) {
	projected := Distance(a.Pos.Add(a.Vel), b.Pos.Add(b.Vel))
	t := math.Sqrt(a.Radius+b.Radius) / projected

	a.Pos = a.Pos.Add(a.Vel.Scale(t))
	b.Pos = b.Pos.Add(b.Vel.Scale(t))
}
