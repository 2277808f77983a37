package core

import (
	"reflect"
	"testing"
)

func TestKeyStatePollEdges(t *testing.T) {
	k := NewKeyState()

	if edges := k.Poll(); len(edges) != 0 {
		t.Fatalf("empty state should produce no edges, got %v", edges)
	}

	k.Press("w")
	k.Press("r")
	got := k.Poll()
	want := []KeyEdge{{Key: "r", Down: true}, {Key: "w", Down: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Poll() = %v, expected %v", got, want)
	}

	// Held keys produce no edges on the next poll
	if edges := k.Poll(); len(edges) != 0 {
		t.Errorf("unchanged state should produce no edges, got %v", edges)
	}

	k.Release("w")
	k.Press("s")
	got = k.Poll()
	want = []KeyEdge{{Key: "w", Down: false}, {Key: "s", Down: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Poll() = %v, expected %v", got, want)
	}
}

func TestKeyStatePressReleaseBetweenPolls(t *testing.T) {
	k := NewKeyState()
	k.Press("w")
	k.Release("w")

	if edges := k.Poll(); len(edges) != 0 {
		t.Errorf("a tap fully between polls is invisible, got %v", edges)
	}
}

func TestKeyStateHeldAndReset(t *testing.T) {
	k := NewKeyState()
	k.Press("s")
	k.Press("f")

	if !k.IsDown("s") {
		t.Error("s should be held")
	}
	if got := k.Held(); !reflect.DeepEqual(got, []string{"f", "s"}) {
		t.Errorf("Held() = %v", got)
	}

	k.Poll()
	k.Reset()
	if len(k.Held()) != 0 {
		t.Error("Reset should clear held keys")
	}
	if edges := k.Poll(); len(edges) != 0 {
		t.Errorf("Reset should also forget polled keys, got %v", edges)
	}
}
