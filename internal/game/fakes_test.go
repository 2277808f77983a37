package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/core"
)

// recorder implements every collaborator and counts the calls it receives.
type recorder struct {
	style        TextStyle
	clears       int
	rects        []core.Rect
	images       int
	texts        []string
	created      map[int]int
	scoreUpdates map[int]int
	loadingShown int
	loadingShut  int
	confettiOn   int
	confettiOff  int
	resets       int
	rotations    []Rotation
	sounds       []string
}

func newRecorder() *recorder {
	return &recorder{
		created:      make(map[int]int),
		scoreUpdates: make(map[int]int),
	}
}

func (r *recorder) collaborators() Collaborators {
	return Collaborators{
		Surface:    r,
		Scoreboard: r,
		Loading:    r,
		Confetti:   r,
		Rotator:    (*rotator)(r),
		Audio:      r,
	}
}

func (r *recorder) SetTextStyle(s TextStyle) { r.style = s }
func (r *recorder) FillRect(rect core.Rect, _ core.Color) {
	r.rects = append(r.rects, rect)
}
func (r *recorder) DrawImage(Sprite, core.Rect) { r.images++ }
func (r *recorder) FillText(text string, _, _ float64, _ core.Color) {
	r.texts = append(r.texts, text)
}
func (r *recorder) Create(id int, _ string, _ core.Color, score int) { r.created[id] = score }
func (r *recorder) UpdateScore(id int, score int)                    { r.scoreUpdates[id] = score }
func (r *recorder) Show()                                            { r.loadingShown++ }
func (r *recorder) Close()                                           { r.loadingShut++ }
func (r *recorder) Start()                                           { r.confettiOn++ }
func (r *recorder) Stop()                                            { r.confettiOff++ }
func (r *recorder) Play(sound string)                                { r.sounds = append(r.sounds, sound) }

// Clear serves both Surface and Scoreboard.
func (r *recorder) Clear() { r.clears++ }

// rotator splits ArenaRotator off the recorder.
type rotator recorder

func (r *rotator) ResetRotation()    { r.resets++ }
func (r *rotator) Rotate(x Rotation) { r.rotations = append(r.rotations, x) }

// roster is a static PlayerSource.
type roster []config.PlayerConfig

func (r roster) Players() []config.PlayerConfig { return r }

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func testPlayers(n int) roster {
	all := config.DefaultPlayers()
	return roster(all[:n])
}

// newTestManager builds a manager with the default config and a fake clock.
func newTestManager(t testing.TB, players roster) (*Manager, *recorder, *fakeClock) {
	t.Helper()
	rec := newRecorder()
	clock := newFakeClock()
	m, err := New(config.DefaultGameConfig(), players, rec.collaborators(), Options{Seed: 7, Clock: clock.Now})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m, rec, clock
}

// toReady steps the manager past the init delay into Ready.
func toReady(m *Manager, clock *fakeClock) {
	m.Update(clock.Advance(m.cfg.Timing.InitDelay))
}

// tick advances the clock by one frame interval and updates the manager.
func tick(m *Manager, clock *fakeClock) bool {
	return m.Update(clock.Advance(m.cfg.Timing.FrameInterval()))
}

// press delivers a tap of key spanning one update.
func press(m *Manager, clock *fakeClock, key string) {
	m.Keys().Press(key)
	tick(m, clock)
	m.Keys().Release(key)
	tick(m, clock)
}
