package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Demo != DemoArena {
		t.Fatalf("default demo: got=%s", cfg.Demo)
	}
	if cfg.Physics != DefaultPhysics() {
		t.Fatalf("default physics: got=%+v", cfg.Physics)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"BUMPERBALLS_WIDTH":        "640",
		"BUMPERBALLS_HEIGHT":       "480",
		"BUMPERBALLS_DRAG":         "0.2",
		"BUMPERBALLS_DAMAGE_SCALE": "0.5",
		"BUMPERBALLS_RADIUS":       "12",
		"BUMPERBALLS_DEMO":         "bots",
		"BUMPERBALLS_SEPARATION":   "legacy",
		"BUMPERBALLS_SEED":         "42",
		"BUMPERBALLS_LOG_LEVEL":    "debug",
		"BUMPERBALLS_MAX_ACCEL":    "",
	}))
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if cfg.ScreenWidth != 640 || cfg.ScreenHeight != 480 || cfg.FitToMonitor {
		t.Fatalf("size: %dx%d fit=%v", cfg.ScreenWidth, cfg.ScreenHeight, cfg.FitToMonitor)
	}
	if cfg.Physics.Drag != 0.2 || cfg.Physics.DamageScale != 0.5 || cfg.Radius != 12 {
		t.Fatalf("floats: %+v radius=%g", cfg.Physics, cfg.Radius)
	}
	if cfg.Demo != DemoBots || cfg.Physics.Separation != SeparationLegacy {
		t.Fatalf("demo=%s separation=%s", cfg.Demo, cfg.Physics.Separation)
	}
	if cfg.Seed != 42 || cfg.LogLevel != "debug" {
		t.Fatalf("seed=%d level=%s", cfg.Seed, cfg.LogLevel)
	}
	if cfg.MaxAccel != DefaultConfig().MaxAccel {
		t.Fatalf("empty value should be ignored, got max accel %g", cfg.MaxAccel)
	}
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"width", map[string]string{"BUMPERBALLS_WIDTH": "wide"}},
		{"drag", map[string]string{"BUMPERBALLS_DRAG": "lots"}},
		{"demo", map[string]string{"BUMPERBALLS_DEMO": "pong"}},
		{"separation", map[string]string{"BUMPERBALLS_SEPARATION": "bounce"}},
		{"seed", map[string]string{"BUMPERBALLS_SEED": "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := cfg.ApplyEnv(mapLookup(tt.vars)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestApplyEnvUnknownDemoWrapsSentinel(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(mapLookup(map[string]string{"BUMPERBALLS_DEMO": "pong"}))
	if !errors.Is(err, ErrUnknownDemo) {
		t.Fatalf("expected ErrUnknownDemo, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"radius too large", func(c *Config) { c.ScreenHeight = 50; c.Radius = 30 }},
		{"zero frame delta", func(c *Config) { c.MaxFrameDelta = 0 }},
		{"chance above one", func(c *Config) { c.RandomWalkChance = 1.5 }},
		{"negative drag", func(c *Config) { c.Physics.Drag = -0.1 }},
		{"negative damage", func(c *Config) { c.Physics.DamageScale = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "BUMPERBALLS_DEMO=collide\nBUMPERBALLS_RADIUS=20\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("BUMPERBALLS_DEMO")
		os.Unsetenv("BUMPERBALLS_RADIUS")
	})

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Demo != DemoCollide || cfg.Radius != 20 {
		t.Fatalf("demo=%s radius=%g", cfg.Demo, cfg.Radius)
	}
}

func TestLoadConfigIgnoresMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
	if cfg.Demo != DefaultConfig().Demo {
		t.Fatalf("unexpected demo %s", cfg.Demo)
	}
}

func TestNewRandIsSeeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	a := cfg.NewRand()
	b := cfg.NewRand()
	for i := 0; i < 5; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("same seed should give same sequence: %d != %d", x, y)
		}
	}
}
