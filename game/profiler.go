package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Profiler captures a CPU profile and an execution trace when the frame loop
// stalls long enough for a frame to be skipped
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	logger          *log.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, captureDuration time.Duration, logger *log.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: captureDuration,
		profilesDir:     dir,
		logger:          logger,
	}, nil
}

// CaptureProfile starts a background capture tagged with reason.
// Captures closer together than the cooldown are refused.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime).Round(time.Millisecond))
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("%s-%s", reason, p.lastCaptureTime.Format("20060102-150405"))

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var captures sync.WaitGroup
		captures.Add(2)
		go func() {
			defer captures.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.logger.Warn("cpu profile failed", "err", err)
			}
		}()
		go func() {
			defer captures.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.logger.Warn("trace failed", "err", err)
			}
		}()
		captures.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.logger.Info("profile captured",
			"cpu", p.path(baseName, ".cpu.prof"),
			"trace", p.path(baseName, ".trace"),
			"allocKB", m.Alloc/1024,
			"numGC", m.NumGC)
	}()

	return nil
}

// Wait blocks until any capture in flight has been written
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) path(baseName, ext string) string {
	return filepath.Join(p.profilesDir, baseName+ext)
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	file, err := os.Create(p.path(baseName, ".cpu.prof"))
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	file, err := os.Create(p.path(baseName, ".trace"))
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()
	return nil
}
