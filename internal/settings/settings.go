// Package settings holds the player configuration list and notifies
// subscribers whenever it changes.
package settings

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/quadpong/internal/config"
)

// Store is the source of truth for the configured players.
// Every mutating call validates its input and then emits a change
// notification. Subscribers pull the new list with Players.
type Store struct {
	mu          sync.Mutex
	players     []config.PlayerConfig
	subscribers map[int]func()
	nextSubID   int
}

// NewStore creates a store seeded with the given players.
func NewStore(players []config.PlayerConfig) *Store {
	return &Store{
		players:     clonePlayers(players),
		subscribers: make(map[int]func()),
	}
}

// Players returns a copy of the current player list.
func (s *Store) Players() []config.PlayerConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePlayers(s.players)
}

// Len returns the number of configured players.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// Subscribe registers fn to be called after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// SetPlayers replaces the whole player list.
func (s *Store) SetPlayers(players []config.PlayerConfig) error {
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}

	s.mu.Lock()
	s.players = clonePlayers(players)
	s.mu.Unlock()

	s.notify()
	return nil
}

// AddPlayer appends a player.
func (s *Store) AddPlayer(p config.PlayerConfig) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	s.mu.Lock()
	s.players = append(s.players, p)
	s.mu.Unlock()

	s.notify()
	return nil
}

// RemoveLast drops the last player. It reports whether a player was removed;
// nothing is emitted when the list is already empty.
func (s *Store) RemoveLast() bool {
	s.mu.Lock()
	if len(s.players) == 0 {
		s.mu.Unlock()
		return false
	}
	s.players = s.players[:len(s.players)-1]
	s.mu.Unlock()

	s.notify()
	return true
}

// Update applies fn to the player at index i.
func (s *Store) Update(i int, fn func(*config.PlayerConfig)) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.players) {
		s.mu.Unlock()
		return fmt.Errorf("settings: no player at index %d", i)
	}
	p := s.players[i]
	fn(&p)
	if err := p.Validate(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("settings: %w", err)
	}
	s.players[i] = p
	s.mu.Unlock()

	s.notify()
	return nil
}

// notify calls subscribers outside the lock so they may read the store.
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subscribers))
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func clonePlayers(players []config.PlayerConfig) []config.PlayerConfig {
	if players == nil {
		return nil
	}
	out := make([]config.PlayerConfig, len(players))
	copy(out, players)
	return out
}
