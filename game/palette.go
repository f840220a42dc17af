package game

import "image/color"

var (
	// Palette maps the color names used by rosters to render colors
	Palette = map[string]color.RGBA{
		"blue":   {40, 90, 230, 255},
		"red":    {220, 40, 40, 255},
		"green":  {30, 170, 60, 255},
		"orange": {255, 140, 0, 255},
		"purple": {140, 60, 200, 255},
		"gray":   {110, 110, 110, 255},
		"white":  {255, 255, 255, 255},
	}

	fallbackColor = color.RGBA{255, 100, 0, 255}
)

// ColorFor returns the render color for a color name, orange when unknown
func ColorFor(name string) color.RGBA {
	if c, ok := Palette[name]; ok {
		return c
	}
	return fallbackColor
}
