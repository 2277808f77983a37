package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quadpong/internal/core"
	"github.com/vovakirdan/quadpong/internal/game"
)

// Loading is the loading indicator shown while a session initializes.
type Loading struct {
	spinner spinner.Model
	visible bool
}

// NewLoading creates a hidden loading indicator.
func NewLoading() *Loading {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	return &Loading{spinner: s}
}

func (l *Loading) Show()  { l.visible = true }
func (l *Loading) Close() { l.visible = false }

// Visible reports whether the indicator is shown.
func (l *Loading) Visible() bool {
	return l.visible
}

// Tick starts the spinner animation.
func (l *Loading) Tick() tea.Msg {
	return l.spinner.Tick()
}

// Update advances the spinner.
func (l *Loading) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner line.
func (l *Loading) View() string {
	return l.spinner.View() + " Loading players..."
}

// confettiColors are the colors particles are drawn with.
var confettiColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
}

var confettiRunes = []rune{'*', '+', '•', '▪', '~'}

// particle is a single falling confetti piece in cell coordinates.
type particle struct {
	x, y   float64
	vx, vy float64
	symbol rune
	color  core.Color
}

// Confetti rains colored particles over the arena while active.
type Confetti struct {
	rng       *rand.Rand
	active    bool
	particles []particle
}

// NewConfetti creates an inactive confetti effect.
func NewConfetti(seed int64) *Confetti {
	return &Confetti{rng: rand.New(rand.NewSource(seed))}
}

func (c *Confetti) Start() { c.active = true }

func (c *Confetti) Stop() {
	c.active = false
	c.particles = c.particles[:0]
}

// Active reports whether confetti is falling.
func (c *Confetti) Active() bool {
	return c.active
}

// Step spawns new particles along the top edge and moves the existing ones.
// Particles that leave the screen are dropped.
func (c *Confetti) Step(width, height int) {
	if !c.active || width <= 0 || height <= 0 {
		return
	}

	for i := 0; i < 1+width/20; i++ {
		c.particles = append(c.particles, particle{
			x:      c.rng.Float64() * float64(width),
			y:      0,
			vx:     (c.rng.Float64() - 0.5) * 0.6,
			vy:     0.2 + c.rng.Float64()*0.5,
			symbol: confettiRunes[c.rng.Intn(len(confettiRunes))],
			color:  confettiColors[c.rng.Intn(len(confettiColors))],
		})
	}

	alive := c.particles[:0]
	for _, p := range c.particles {
		p.x += p.vx
		p.y += p.vy
		if p.y >= float64(height) || p.x < 0 || p.x >= float64(width) {
			continue
		}
		alive = append(alive, p)
	}
	c.particles = alive
}

// Draw paints the particles on top of s.
func (c *Confetti) Draw(s *core.Screen) {
	for _, p := range c.particles {
		s.Set(int(p.x), int(p.y), p.symbol, p.color)
	}
}

// Len returns the number of live particles.
func (c *Confetti) Len() int {
	return len(c.particles)
}

// Rotator stands in for the arena rotation. A terminal cannot rotate text,
// so a rotation is shown by mirroring the arena.
type Rotator struct {
	current game.Rotation
	active  bool
	count   int
}

// NewRotator creates a rotator in the neutral position.
func NewRotator() *Rotator {
	return &Rotator{}
}

func (r *Rotator) ResetRotation() {
	r.current = game.Rotation{}
	r.active = false
}

func (r *Rotator) Rotate(rot game.Rotation) {
	r.current = rot
	r.active = true
	r.count++
}

// Mirror returns the flips that approximate the current rotation.
func (r *Rotator) Mirror() (horizontal, vertical bool) {
	if !r.active {
		return false, false
	}
	return r.current.Y > r.current.X, r.current.Degrees >= 45
}

// Count returns how many rotations were applied.
func (r *Rotator) Count() int {
	return r.count
}

// cueDuration is how long a sound cue stays in the status line.
const cueDuration = 600 * time.Millisecond

// AudioCue stands in for audio playback by showing the last sound cue in
// the status line for a short while.
type AudioCue struct {
	now   func() time.Time
	sound string
	until time.Time
	plays int
}

// NewAudioCue creates an audio stand-in reading time from now.
func NewAudioCue(now func() time.Time) *AudioCue {
	if now == nil {
		now = time.Now
	}
	return &AudioCue{now: now}
}

func (a *AudioCue) Play(sound string) {
	a.sound = sound
	a.until = a.now().Add(cueDuration)
	a.plays++
}

// Current returns the sound being "played", or "" when none is.
func (a *AudioCue) Current() string {
	if a.sound == "" || !a.now().Before(a.until) {
		return ""
	}
	return a.sound
}

// Plays returns how many cues were triggered.
func (a *AudioCue) Plays() int {
	return a.plays
}
