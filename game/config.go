package game

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by LoadConfig
const EnvPrefix = "BUMPERBALLS_"

// Config holds game configuration
type Config struct {
	// ScreenWidth is the surface width in pixels
	ScreenWidth int

	// ScreenHeight is the surface height in pixels
	ScreenHeight int

	// FitToMonitor sizes the surface from the monitor once at startup
	FitToMonitor bool

	// WindowedSizeRatio is the share of the monitor used when fitting
	WindowedSizeRatio float64

	// Demo selects the scenario to run
	Demo Demo

	// Physics are the simulator rules; demos override parts of them
	Physics Physics

	// Radius of every ball in pixels
	Radius float64

	// MaxAccel bounds bot acceleration in pixels per second^2
	MaxAccel float64

	// RandomWalkChance is the per-frame resample probability of random walkers
	RandomWalkChance float64

	// MaxFrameDelta is the longest wall-clock frame (seconds) that still
	// advances the simulation; longer frames are skipped
	MaxFrameDelta float64

	// Seed feeds the simulator's random source. Zero picks a seed from the clock.
	Seed int64

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// ProfileDir receives a CPU profile and trace whenever a frame is
	// skipped. Empty disables profiling.
	ProfileDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       1024,
		ScreenHeight:      768,
		FitToMonitor:      true,
		WindowedSizeRatio: 0.9,
		Demo:              DemoArena,
		Physics:           DefaultPhysics(),
		Radius:            30,
		MaxAccel:          200,
		RandomWalkChance:  0.01,
		MaxFrameDelta:     0.1,
		LogLevel:          "info",
	}
}

// LoadConfig starts from DefaultConfig, loads the given .env files (".env"
// when none are given; missing files are ignored) into the process
// environment and applies BUMPERBALLS_* overrides.
func LoadConfig(envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", file, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from variables found through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}

	ints := map[string]*int{
		"WIDTH":  &c.ScreenWidth,
		"HEIGHT": &c.ScreenHeight,
	}
	for name, dst := range ints {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
			c.FitToMonitor = false
		}
	}

	floats := map[string]*float64{
		"DRAG":            &c.Physics.Drag,
		"DAMAGE_SCALE":    &c.Physics.DamageScale,
		"RADIUS":          &c.Radius,
		"MAX_ACCEL":       &c.MaxAccel,
		"RANDOM_CHANCE":   &c.RandomWalkChance,
		"MAX_FRAME_DELTA": &c.MaxFrameDelta,
	}
	for name, dst := range floats {
		if v, ok := get(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = f
		}
	}

	if v, ok := get("DEMO"); ok {
		demo, err := ParseDemo(v)
		if err != nil {
			return fmt.Errorf("%sDEMO: %w", EnvPrefix, err)
		}
		c.Demo = demo
	}
	if v, ok := get("SEPARATION"); ok {
		mode, err := ParseSeparationMode(v)
		if err != nil {
			return fmt.Errorf("%sSEPARATION: %w", EnvPrefix, err)
		}
		c.Physics.Separation = mode
	}
	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("PROFILE_DIR"); ok {
		c.ProfileDir = v
	}

	return nil
}

// NewRand returns the simulation random source for this configuration
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	case c.Radius <= 0:
		return fmt.Errorf("radius %g must be positive", c.Radius)
	case 2*c.Radius >= float64(min(c.ScreenWidth, c.ScreenHeight)):
		return fmt.Errorf("radius %g does not fit a %dx%d surface", c.Radius, c.ScreenWidth, c.ScreenHeight)
	case c.MaxFrameDelta <= 0:
		return fmt.Errorf("max frame delta %g must be positive", c.MaxFrameDelta)
	case c.RandomWalkChance < 0 || c.RandomWalkChance > 1:
		return fmt.Errorf("random walk chance %g outside [0, 1]", c.RandomWalkChance)
	case c.Physics.Drag < 0:
		return fmt.Errorf("drag %g must not be negative", c.Physics.Drag)
	case c.Physics.DamageScale < 0:
		return fmt.Errorf("damage scale %g must not be negative", c.Physics.DamageScale)
	}
	return nil
}
