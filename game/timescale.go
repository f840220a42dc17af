package game

import "fmt"

// DefaultTimeScaleDigit is the digit whose multiplier is 1x
const DefaultTimeScaleDigit = 4

// timeScales maps digit keys to simulated-time multipliers. 0 pauses, each
// step up from there doubles the previous one.
var timeScales = [10]float64{0, 0.125, 0.25, 0.5, 1, 2, 4, 8, 16, 32}

// TimeScaleForDigit returns the multiplier bound to a digit key
func TimeScaleForDigit(digit int) (float64, bool) {
	if digit < 0 || digit >= len(timeScales) {
		return 0, false
	}
	return timeScales[digit], true
}

// TimeScale tracks the active multiplier applied to each frame's delta
type TimeScale struct {
	digit int
}

// NewTimeScale starts at 1x
func NewTimeScale() *TimeScale {
	return &TimeScale{digit: DefaultTimeScaleDigit}
}

// Select switches to the multiplier bound to digit. Returns false and keeps
// the current multiplier for digits outside 0-9.
func (t *TimeScale) Select(digit int) bool {
	if _, ok := TimeScaleForDigit(digit); !ok {
		return false
	}
	t.digit = digit
	return true
}

// Multiplier returns the active multiplier
func (t *TimeScale) Multiplier() float64 {
	return timeScales[t.digit]
}

// Apply scales a wall-clock delta into simulated time
func (t *TimeScale) Apply(dt float64) float64 {
	return dt * t.Multiplier()
}

// Paused reports whether simulated time is stopped
func (t *TimeScale) Paused() bool {
	return t.Multiplier() == 0
}

func (t *TimeScale) String() string {
	if t.Paused() {
		return "paused"
	}
	m := t.Multiplier()
	if m < 1 {
		return fmt.Sprintf("1/%gx", 1/m)
	}
	return fmt.Sprintf("%gx", m)
}
