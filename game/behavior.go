package game

import (
	"fmt"
	"math"
	"math/rand"
)

// BehaviorKind selects how an entity picks its acceleration each frame
type BehaviorKind int

const (
	BehaviorNone        BehaviorKind = iota // Plain integration, acceleration untouched
	BehaviorRandomWalk                      // Occasionally resamples a random acceleration
	BehaviorRam                             // Accelerates straight at the nearest opponent
	BehaviorLeadPursuit                     // Steers toward the opponent via a desired velocity
	BehaviorStationary                      // Held motionless
	BehaviorIntercept                       // Aims at the opponent's predicted position
)

var behaviorNames = map[BehaviorKind]string{
	BehaviorNone:        "none",
	BehaviorRandomWalk:  "random",
	BehaviorRam:         "ram",
	BehaviorLeadPursuit: "lead",
	BehaviorStationary:  "stationary",
	BehaviorIntercept:   "intercept",
}

func (k BehaviorKind) String() string {
	if name, ok := behaviorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BehaviorKind(%d)", int(k))
}

// Behavior is the per-entity steering rule, fixed when the roster is built
type Behavior struct {
	Kind BehaviorKind

	// MaxAccel bounds the acceleration magnitude (random walk: per axis)
	MaxAccel float64

	// Chance is the per-frame probability that a random walker resamples
	Chance float64
}

// RandomWalk returns a random-walk behavior
func RandomWalk(maxAccel, chance float64) Behavior {
	return Behavior{Kind: BehaviorRandomWalk, MaxAccel: maxAccel, Chance: chance}
}

// Ram returns a direct-ramming behavior
func Ram(maxAccel float64) Behavior {
	return Behavior{Kind: BehaviorRam, MaxAccel: maxAccel}
}

// LeadPursuit returns a lead-pursuit behavior
func LeadPursuit(maxAccel float64) Behavior {
	return Behavior{Kind: BehaviorLeadPursuit, MaxAccel: maxAccel}
}

// Intercept returns a behavior that leads moving targets
func Intercept(maxAccel float64) Behavior {
	return Behavior{Kind: BehaviorIntercept, MaxAccel: maxAccel}
}

// Stationary returns a behavior that keeps the entity still
func Stationary() Behavior {
	return Behavior{Kind: BehaviorStationary}
}

// Steer updates self's acceleration (and, for stationary entities, velocity)
// before integration. others is a read-only view of every other entity in the
// roster; Steer never modifies it.
func (b Behavior) Steer(self *Entity, others []*Entity, rng *rand.Rand) {
	switch b.Kind {
	case BehaviorRandomWalk:
		if rng.Float64() < b.Chance {
			self.Acc.X = (rng.Float64()*2 - 1) * b.MaxAccel
			self.Acc.Y = (rng.Float64()*2 - 1) * b.MaxAccel
		}

	case BehaviorRam:
		opponent := NearestOpponent(self, others)
		if opponent == nil {
			return
		}
		dir := Normalize(opponent.Pos.Sub(self.Pos))
		if dir == (Vec{}) {
			return
		}
		self.Acc = dir.Scale(b.MaxAccel)

	case BehaviorLeadPursuit:
		opponent := NearestOpponent(self, others)
		if opponent == nil {
			return
		}
		desired := Normalize(opponent.Pos.Sub(self.Pos)).Scale(b.MaxAccel)
		if desired == (Vec{}) {
			return
		}
		self.Acc = Normalize(desired).Scale(b.MaxAccel)

	case BehaviorIntercept:
		opponent := NearestOpponent(self, others)
		if opponent == nil {
			return
		}
		speed := math.Max(self.Speed(), b.MaxAccel)
		aim := PredictiveAim(self.Pos, opponent.Pos, opponent.Vel, speed)
		dir := Normalize(aim.Sub(self.Pos))
		if dir == (Vec{}) {
			return
		}
		self.Acc = dir.Scale(b.MaxAccel)

	case BehaviorStationary:
		self.Vel = Vec{}
		self.Acc = Vec{}
	}
}

// NearestOpponent returns the closest entity in others that is not self and
// has not been eliminated, or nil when there is none.
func NearestOpponent(self *Entity, others []*Entity) *Entity {
	var nearest *Entity
	nearestDistSq := math.MaxFloat64

	for _, other := range others {
		if other == self || other.Eliminated() {
			continue
		}
		dx := other.Pos.X - self.Pos.X
		dy := other.Pos.Y - self.Pos.Y
		distSq := dx*dx + dy*dy
		if distSq < nearestDistSq {
			nearestDistSq = distSq
			nearest = other
		}
	}

	return nearest
}
