package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("edges = (%d, %d), expected (6, 5)", r.Right(), r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	got := outer.Centered(20, 4)
	want := NewRect(30, 10, 20, 4)
	if got != want {
		t.Errorf("Centered = %+v, expected %+v", got, want)
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"min", Min(3, -1), -1},
		{"max", Max(3, -1), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, expected %d", tt.got, tt.want)
			}
		})
	}
}

func TestRuntimeConfigTickDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.TickRate = tt.rate
		if got := cfg.TickDuration(); got != tt.want {
			t.Errorf("TickDuration at %d = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
