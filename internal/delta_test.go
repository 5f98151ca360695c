package internal

import (
	"testing"
)

func TestNewDeltaAccumulator(t *testing.T) {
	a := NewDeltaAccumulator()
	if a == nil {
		t.Fatal("NewDeltaAccumulator() returned nil")
	}
	if got := a.Reconstruct(); got != "" {
		t.Errorf("Reconstruct() on empty accumulator = %q, want \"\"", got)
	}
}

func TestDeltaAccumulator_AddDelta(t *testing.T) {
	tests := []struct {
		name   string
		deltas []struct {
			seq      int
			fragment string
		}
		want string
	}{
		{
			name: "in order",
			deltas: []struct {
				seq      int
				fragment string
			}{
				{0, "He"}, {1, "l"}, {2, "lo"},
			},
			want: "Hello",
		},
		{
			name: "out of order",
			deltas: []struct {
				seq      int
				fragment string
			}{
				{2, "lo"}, {0, "He"}, {1, "l"},
			},
			want: "Hello",
		},
		{
			name: "duplicate sequence overwrites",
			deltas: []struct {
				seq      int
				fragment string
			}{
				{0, "Hx"}, {1, "llo"}, {0, "He"},
			},
			want: "Hello",
		},
		{
			name: "gap omitted",
			deltas: []struct {
				seq      int
				fragment string
			}{
				{0, "He"}, {3, "!"},
			},
			want: "He!",
		},
		{
			name: "negative sequence ignored",
			deltas: []struct {
				seq      int
				fragment string
			}{
				{-1, "bad"}, {0, "ok"},
			},
			want: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewDeltaAccumulator()
			var got string
			for _, d := range tt.deltas {
				got = a.AddDelta(d.seq, d.fragment)
			}
			if got != tt.want {
				t.Errorf("AddDelta() reconstruction = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeltaAccumulator_GapFilledRetroactively(t *testing.T) {
	a := NewDeltaAccumulator()

	if got := a.AddDelta(0, "He"); got != "He" {
		t.Errorf("after seq 0: %q, want %q", got, "He")
	}
	if got := a.AddDelta(2, "lo"); got != "Helo" {
		t.Errorf("after seq 2 with gap: %q, want %q", got, "Helo")
	}
	// Filling the gap changes the reconstruction in place.
	if got := a.AddDelta(1, "l"); got != "Hello" {
		t.Errorf("after gap filled: %q, want %q", got, "Hello")
	}
}

func TestDeltaAccumulator_Clear(t *testing.T) {
	a := NewDeltaAccumulator()
	a.AddDelta(0, "Hello")

	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}

	a.Clear()

	if a.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", a.Len())
	}
	if got := a.Reconstruct(); got != "" {
		t.Errorf("Reconstruct() after Clear() = %q, want \"\"", got)
	}
}
