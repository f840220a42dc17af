package game

import (
	"io"
	"os"
	"testing"
	"time"
)

func TestProfilerWritesCaptureFiles(t *testing.T) {
	logger, _ := NewLogger(io.Discard, "info")
	dir := t.TempDir()
	p, err := NewProfiler(dir, 20*time.Millisecond, logger)
	if err != nil {
		t.Fatalf("new profiler: %v", err)
	}

	if err := p.CaptureProfile("stall"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if err := p.CaptureProfile("stall"); err == nil {
		t.Fatalf("second capture should be refused")
	}
	p.Wait()

	if p.IsProfiling() {
		t.Fatalf("capture should have finished")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected a profile and a trace, got %d files", len(entries))
	}
}
