package game

// DebugState holds global debug flags toggled from the keyboard
type DebugState struct {
	ShowVectors bool // Draw velocity and acceleration vectors
	ShowStats   bool // Draw collision and frame counters
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
