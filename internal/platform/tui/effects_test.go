package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/quadpong/internal/core"
	"github.com/vovakirdan/quadpong/internal/game"
)

func TestConfettiLifecycle(t *testing.T) {
	c := NewConfetti(1)
	c.Step(40, 20)
	if c.Len() != 0 {
		t.Error("inactive confetti should not spawn")
	}

	c.Start()
	for i := 0; i < 10; i++ {
		c.Step(40, 20)
	}
	if c.Len() == 0 {
		t.Fatal("active confetti should have particles")
	}

	s := core.NewScreen(40, 20)
	c.Draw(s)
	if s.String() == core.NewScreen(40, 20).String() {
		t.Error("confetti should draw on the screen")
	}

	c.Stop()
	if c.Active() || c.Len() != 0 {
		t.Error("Stop should clear the particles")
	}
}

func TestRotatorMirror(t *testing.T) {
	r := NewRotator()
	if h, v := r.Mirror(); h || v {
		t.Error("neutral rotator must not mirror")
	}

	r.Rotate(game.Rotation{Degrees: 45, X: 0.1, Y: 0.9})
	if h, v := r.Mirror(); !h || !v {
		t.Errorf("Mirror() = (%v, %v), expected (true, true)", h, v)
	}

	r.ResetRotation()
	if h, v := r.Mirror(); h || v {
		t.Error("reset should return to neutral")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", r.Count())
	}
}

func TestAudioCueExpires(t *testing.T) {
	now := time.Unix(0, 0)
	a := NewAudioCue(func() time.Time { return now })

	a.Play("goat")
	if a.Current() != "goat" {
		t.Errorf("Current() = %q, expected goat", a.Current())
	}
	now = now.Add(cueDuration)
	if a.Current() != "" {
		t.Error("cue should expire")
	}
	if a.Plays() != 1 {
		t.Errorf("Plays() = %d, expected 1", a.Plays())
	}
}

func TestScorePanel(t *testing.T) {
	p := NewScorePanel()
	p.Create(3, "John", core.ColorBlue, 0)
	p.Create(4, "Jane", core.ColorGreen, 0)
	p.UpdateScore(4, 2)
	p.UpdateScore(99, 5)

	if s, ok := p.Score(4); !ok || s != 2 {
		t.Errorf("Score(4) = (%d, %v), expected (2, true)", s, ok)
	}
	if _, ok := p.Score(99); ok {
		t.Error("unknown players must not get an entry")
	}

	p.Clear()
	if p.Len() != 0 {
		t.Error("Clear should drop every entry")
	}
}
