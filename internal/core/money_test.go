package core

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{12.345, 12.35},
		{-12.345, -12.35},
		{12.344, 12.34},
		{0.004999, 0.0},
		{-700, -700},
		{0.1 + 0.2, 0.3},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoundUpToMultiple(t *testing.T) {
	cases := []struct {
		v     float64
		limit int
		want  float64
	}{
		{712.5, 50, 750},
		{700, 50, 700},
		{1, 50, 50},
		{1712.31, 100, 1800},
		{0, 10, 0},
	}
	for _, tc := range cases {
		if got := RoundUpToMultiple(tc.v, tc.limit); got != tc.want {
			t.Fatalf("RoundUpToMultiple(%v, %d) = %v, want %v", tc.v, tc.limit, got, tc.want)
		}
	}
}
