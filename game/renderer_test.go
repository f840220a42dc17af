package game

import (
	"math"
	"testing"
)

func TestOverlayLines(t *testing.T) {
	blue := NewCombatant(0, 0, 10, "blue", Behavior{})
	red := NewCombatant(0, 0, 10, "red", Behavior{})
	red.Health = 42
	dead := NewCombatant(0, 0, 10, "green", Behavior{})
	dead.Health = 0
	plain := NewEntity(0, 0, 10, "gray")

	got := OverlayLines([]*Entity{blue, plain, red, dead})
	want := []string{"B 100", "R 42"}

	if len(got) != len(want) {
		t.Fatalf("lines: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestFacingAngle(t *testing.T) {
	e := NewEntity(0, 0, 10, "blue")
	e.Rotation = 1.25
	if got := FacingAngle(e); got != 1.25 {
		t.Fatalf("without acceleration: got=%g", got)
	}

	e.Acc = Vec{Y: 5}
	if got := FacingAngle(e); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("facing acceleration: got=%g", got)
	}
}

func TestColorForFallsBack(t *testing.T) {
	if got := ColorFor("red"); got != Palette["red"] {
		t.Fatalf("red: %v", got)
	}
	if got := ColorFor("chartreuse"); got.A != 255 {
		t.Fatalf("fallback should be opaque: %v", got)
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(nil, "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
