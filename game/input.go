package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// digitKeys are the top-row digit keys; numpadKeys the keypad equivalents
var (
	digitKeys = [10]ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	numpadKeys = [10]ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
		ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
)

// pressedDigit returns the digit whose key went down this tick, or -1
func pressedDigit() int {
	for d := range digitKeys {
		if inpututil.IsKeyJustPressed(digitKeys[d]) || inpututil.IsKeyJustPressed(numpadKeys[d]) {
			return d
		}
	}
	return -1
}

// handleInput processes time scale, debug and fullscreen keys
func (g *Game) handleInput() {
	if d := pressedDigit(); d >= 0 {
		g.SelectTimeScale(d)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowVectors = !debugState.ShowVectors
		debugState.ShowStats = debugState.ShowVectors
	}

	// Alt+Enter toggles fullscreen; the logical surface keeps its size
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnterPressed && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnterPressed
}
