package game

import "testing"

func TestTimeScaleForDigit(t *testing.T) {
	tests := []struct {
		digit int
		want  float64
		ok    bool
	}{
		{0, 0, true},
		{1, 0.125, true},
		{4, 1, true},
		{5, 2, true},
		{9, 32, true},
		{-1, 0, false},
		{10, 0, false},
	}

	for _, tt := range tests {
		got, ok := TimeScaleForDigit(tt.digit)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("digit %d: got=(%g, %v) want=(%g, %v)", tt.digit, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTimeScaleDefaultsToRealTime(t *testing.T) {
	ts := NewTimeScale()
	if ts.Multiplier() != 1 || ts.Paused() {
		t.Fatalf("expected 1x, got %s", ts)
	}
	if got := ts.Apply(0.016); got != 0.016 {
		t.Fatalf("apply: got=%g", got)
	}
}

func TestTimeScaleSelect(t *testing.T) {
	ts := NewTimeScale()

	if !ts.Select(6) {
		t.Fatalf("digit 6 should be accepted")
	}
	if got := ts.Apply(0.5); got != 2 {
		t.Fatalf("4x of 0.5: got=%g", got)
	}

	if ts.Select(12) {
		t.Fatalf("digit 12 should be rejected")
	}
	if ts.Multiplier() != 4 {
		t.Fatalf("rejected digit changed multiplier to %g", ts.Multiplier())
	}

	ts.Select(0)
	if !ts.Paused() || ts.Apply(1) != 0 {
		t.Fatalf("digit 0 should pause")
	}
}

func TestTimeScaleString(t *testing.T) {
	tests := map[int]string{
		0: "paused",
		1: "1/8x",
		3: "1/2x",
		4: "1x",
		9: "32x",
	}
	for digit, want := range tests {
		ts := NewTimeScale()
		ts.Select(digit)
		if got := ts.String(); got != want {
			t.Fatalf("digit %d: got=%q want=%q", digit, got, want)
		}
	}
}
