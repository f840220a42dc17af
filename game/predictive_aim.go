package game

import "math"

const (
	// interceptIterations bounds the fixed-point refinement of the intercept time
	interceptIterations = 5

	// interceptTolerance is the intercept time change (seconds) considered converged
	interceptTolerance = 0.001
)

// PredictiveAim estimates where a target moving at targetVel will be when a
// pursuer travelling at pursuitSpeed reaches it.
// Returns the target's current position when the target is (nearly) still,
// already adjacent, or when pursuitSpeed is not positive.
func PredictiveAim(from, targetPos, targetVel Vec, pursuitSpeed float64) Vec {
	if math.Abs(targetVel.X) < 0.1 && math.Abs(targetVel.Y) < 0.1 {
		return targetPos
	}

	distance := Distance(from, targetPos)
	if distance < 1.0 || pursuitSpeed <= 0 {
		return targetPos
	}

	// Solve |targetPos + targetVel*t - from| = pursuitSpeed*t iteratively,
	// starting from the time needed to reach the current position.
	t := distance / pursuitSpeed
	for i := 0; i < interceptIterations; i++ {
		predicted := targetPos.Add(targetVel.Scale(t))
		newT := Distance(from, predicted) / pursuitSpeed
		if math.Abs(newT-t) < interceptTolerance {
			t = newT
			break
		}
		t = newT
	}

	return targetPos.Add(targetVel.Scale(t))
}
