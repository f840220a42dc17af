package game

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	bannerFadeSeconds = 1.5
	bannerHoldAlpha   = 1.0
)

// HUD tracks transient on-screen messages
type HUD struct {
	banner      string
	bannerFade  *gween.Tween
	bannerAlpha float32
}

// NewHUD creates an empty HUD
func NewHUD() *HUD {
	return &HUD{}
}

// Announce shows msg and starts fading it out
func (h *HUD) Announce(msg string) {
	h.banner = msg
	h.bannerAlpha = bannerHoldAlpha
	h.bannerFade = gween.New(bannerHoldAlpha, 0, bannerFadeSeconds, ease.InQuad)
}

// AnnounceTimeScale shows the active time multiplier
func (h *HUD) AnnounceTimeScale(t *TimeScale) {
	h.Announce(fmt.Sprintf("speed %s", t))
}

// Update advances the fade by dt wall-clock seconds
func (h *HUD) Update(dt float64) {
	if h.bannerFade == nil {
		return
	}
	alpha, finished := h.bannerFade.Update(float32(dt))
	h.bannerAlpha = alpha
	if finished {
		h.bannerFade = nil
		h.banner = ""
		h.bannerAlpha = 0
	}
}

// Banner returns the current message and its opacity in [0, 1]
func (h *HUD) Banner() (string, float32) {
	return h.banner, h.bannerAlpha
}
