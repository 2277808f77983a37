package core

import "sort"

// KeyEdge is a change of a single key between two polls.
type KeyEdge struct {
	Key  string
	Down bool // true for press, false for release
}

// KeyState holds the set of keys currently held down.
// The platform feeds Press/Release as input arrives; the simulation calls
// Poll once per tick to receive the edges that happened since the last poll.
type KeyState struct {
	held   map[string]bool
	polled map[string]bool
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{
		held:   make(map[string]bool),
		polled: make(map[string]bool),
	}
}

// Press marks a key as held.
func (k *KeyState) Press(key string) {
	k.held[key] = true
}

// Release marks a key as no longer held.
func (k *KeyState) Release(key string) {
	delete(k.held, key)
}

// IsDown reports whether the key is currently held.
func (k *KeyState) IsDown(key string) bool {
	return k.held[key]
}

// Held returns the currently held keys in sorted order.
func (k *KeyState) Held() []string {
	keys := make([]string, 0, len(k.held))
	for key := range k.held {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Poll diffs the held set against the previous poll and returns the edges.
// Releases are reported before presses; each group is sorted by key.
func (k *KeyState) Poll() []KeyEdge {
	var released, pressed []string
	for key := range k.polled {
		if !k.held[key] {
			released = append(released, key)
		}
	}
	for key := range k.held {
		if !k.polled[key] {
			pressed = append(pressed, key)
		}
	}
	sort.Strings(released)
	sort.Strings(pressed)

	edges := make([]KeyEdge, 0, len(released)+len(pressed))
	for _, key := range released {
		edges = append(edges, KeyEdge{Key: key, Down: false})
		delete(k.polled, key)
	}
	for _, key := range pressed {
		edges = append(edges, KeyEdge{Key: key, Down: true})
		k.polled[key] = true
	}
	return edges
}

// Reset forgets every held and polled key.
func (k *KeyState) Reset() {
	clear(k.held)
	clear(k.polled)
}
