package tui

import (
	"sort"
	"time"
)

const (
	// firstHold covers the delay before a terminal starts auto-repeating.
	firstHold = 550 * time.Millisecond
	// repeatHold covers the gap between auto-repeated key events.
	repeatHold = 150 * time.Millisecond
)

// KeyHold synthesizes key releases. Terminals report key presses and
// auto-repeats but never releases, so a key counts as held until no event
// for it arrives within the hold window.
type KeyHold struct {
	keys map[string]heldKey
}

type heldKey struct {
	last    time.Time
	repeats int
}

// NewKeyHold creates an empty tracker.
func NewKeyHold() *KeyHold {
	return &KeyHold{keys: make(map[string]heldKey)}
}

// Seen records an event for key. It reports true for the first event of a
// hold, i.e. when the key should be pressed.
func (h *KeyHold) Seen(key string, now time.Time) bool {
	k, held := h.keys[key]
	if held {
		k.repeats++
	}
	k.last = now
	h.keys[key] = k
	return !held
}

// Expire returns, in sorted order, the keys whose hold window ran out
// and forgets them.
func (h *KeyHold) Expire(now time.Time) []string {
	var released []string
	for key, k := range h.keys {
		window := repeatHold
		if k.repeats == 0 {
			window = firstHold
		}
		if now.Sub(k.last) > window {
			released = append(released, key)
			delete(h.keys, key)
		}
	}
	sort.Strings(released)
	return released
}

// Reset forgets every key.
func (h *KeyHold) Reset() {
	clear(h.keys)
}
