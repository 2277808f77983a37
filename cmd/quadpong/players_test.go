package main

import (
	"testing"

	"github.com/vovakirdan/quadpong/internal/config"
)

func TestSidesOf(t *testing.T) {
	tests := []struct {
		i, n int
		want string
	}{
		{0, 1, "top,right,bottom,left"},
		{0, 2, "top,bottom"},
		{1, 2, "right,left"},
		{2, 3, "bottom"},
		{0, 3, "top,left"},
		{3, 4, "left"},
		{4, 5, "-"},
	}
	for _, tc := range tests {
		if got := sidesOf(tc.i, tc.n, 4); got != tc.want {
			t.Errorf("sidesOf(%d, %d) = %q, expected %q", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestKeysOf(t *testing.T) {
	if got := keysOf(config.DefaultPlayers()[0]); got != "W/S" {
		t.Errorf("keysOf = %q, expected W/S", got)
	}
	if got := keysOf(config.DefaultPlayer(0)); got != "-" {
		t.Errorf("keysOf(filler) = %q, expected -", got)
	}
}
