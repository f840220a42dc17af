package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont faces are font.Face, not text/v2 faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Render constants
const (
	overlayMarginX    = 10
	overlayMarginY    = 20
	overlayLineHeight = 16
	facingLineScale   = 1.5
	vectorScale       = 0.25
)

var (
	// colorBlur is painted over the previous frame instead of clearing it,
	// leaving a fading trail behind moving entities
	colorBlur     = color.NRGBA{R: 200, G: 200, B: 200, A: 102}
	colorOverlay  = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	colorVelocity = color.NRGBA{R: 0, G: 160, B: 0, A: 255}
	colorAccel    = color.NRGBA{R: 200, G: 0, B: 0, A: 255}
)

// Renderer draws the simulation, the health overlay and the HUD
type Renderer struct {
	width, height float32
}

// NewRenderer creates a renderer for a fixed-size surface
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: float32(width), height: float32(height)}
}

// Render draws one frame. The screen is expected to keep the previous frame.
func (r *Renderer) Render(screen *ebiten.Image, sim *Simulator, overlay []string, hud *HUD, stats string) {
	vector.DrawFilledRect(screen, 0, 0, r.width, r.height, colorBlur, false)

	debugState := GetDebugState()
	for _, entity := range sim.Entities() {
		r.RenderEntity(screen, entity)
		if debugState.ShowVectors {
			r.renderVectors(screen, entity)
		}
	}

	for i, line := range overlay {
		text.Draw(screen, line, basicfont.Face7x13, overlayMarginX, overlayMarginY+i*overlayLineHeight, colorOverlay)
	}

	if msg, alpha := hud.Banner(); msg != "" && alpha > 0 {
		bannerColor := colorOverlay
		bannerColor.A = uint8(math.Round(float64(alpha) * 255))
		x := int(r.width)/2 - len(msg)*basicfont.Face7x13.Advance/2
		text.Draw(screen, msg, basicfont.Face7x13, x, int(r.height)/2, bannerColor)
	}

	if debugState.ShowStats && stats != "" {
		text.Draw(screen, stats, basicfont.Face7x13, overlayMarginX, int(r.height)-overlayMarginX, colorOverlay)
	}
}

// RenderEntity draws an entity as a filled circle with a short line showing
// where it is heading
func (r *Renderer) RenderEntity(screen *ebiten.Image, entity *Entity) {
	clr := ColorFor(entity.Color)
	x := float32(entity.Pos.X)
	y := float32(entity.Pos.Y)

	vector.DrawFilledCircle(screen, x, y, float32(entity.Radius), clr, true)

	angle := FacingAngle(entity)
	length := entity.Radius * facingLineScale
	endX := entity.Pos.X + math.Cos(angle)*length
	endY := entity.Pos.Y + math.Sin(angle)*length
	vector.StrokeLine(screen, x, y, float32(endX), float32(endY), 3, color.Black, true)
}

func (r *Renderer) renderVectors(screen *ebiten.Image, entity *Entity) {
	x := float32(entity.Pos.X)
	y := float32(entity.Pos.Y)
	vx := float32(entity.Pos.X + entity.Vel.X*vectorScale)
	vy := float32(entity.Pos.Y + entity.Vel.Y*vectorScale)
	ax := float32(entity.Pos.X + entity.Acc.X*vectorScale)
	ay := float32(entity.Pos.Y + entity.Acc.Y*vectorScale)
	vector.StrokeLine(screen, x, y, vx, vy, 1, colorVelocity, true)
	vector.StrokeLine(screen, x, y, ax, ay, 1, colorAccel, true)
}

// FacingAngle is the direction an entity is drawn facing: its acceleration
// when it has one, its rotation otherwise
func FacingAngle(entity *Entity) float64 {
	if entity.Acc != (Vec{}) {
		return math.Atan2(entity.Acc.Y, entity.Acc.X)
	}
	return entity.Rotation
}

// OverlayLines builds the stacked health readout, one "<initial> <health>"
// line per health-bearing entity that is still alive, in roster order
func OverlayLines(entities []*Entity) []string {
	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		if !e.HasHealth || e.Eliminated() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %d", e.Initial(), e.Health))
	}
	return lines
}
