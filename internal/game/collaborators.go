package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/quadpong/internal/core"
)

// ErrMissingCollaborator is returned when a required collaborator is nil.
var ErrMissingCollaborator = errors.New("game: missing collaborator")

// TextAlign is the horizontal anchor of FillText.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextStyle configures text drawing. It is applied once at construction.
type TextStyle struct {
	Font  string
	Align TextAlign
}

// Sprite is an image reference drawn by DrawImage.
type Sprite struct {
	Name  string
	Glyph rune // Fallback for character-cell surfaces
}

// Avatar is the image drawn on top of every ball.
var Avatar = Sprite{Name: "avatar", Glyph: '●'}

// Surface is the 2D drawing target of the simulation.
// Coordinates are arena units.
type Surface interface {
	SetTextStyle(style TextStyle)
	Clear()
	FillRect(r core.Rect, c core.Color)
	DrawImage(img Sprite, r core.Rect)
	FillText(text string, x, y float64, c core.Color)
}

// Scoreboard displays one entry per player.
type Scoreboard interface {
	Clear()
	Create(playerID int, name string, color core.Color, score int)
	UpdateScore(playerID int, score int)
}

// LoadingIndicator brackets initialization.
type LoadingIndicator interface {
	Show()
	Close()
}

// Confetti brackets the winner celebration.
type Confetti interface {
	Start()
	Stop()
}

// Rotation is a whole-arena 3D rotation: Degrees around the (X, Y, Z) axis.
type Rotation struct {
	Degrees float64
	X, Y, Z float64
}

// ArenaRotator applies visual transforms to the whole arena.
type ArenaRotator interface {
	ResetRotation()
	Rotate(r Rotation)
}

// AudioPlayer plays a sound cue by identifier.
type AudioPlayer interface {
	Play(sound string)
}

// Collaborators groups everything the simulation drives but does not own.
type Collaborators struct {
	Surface    Surface
	Scoreboard Scoreboard
	Loading    LoadingIndicator
	Confetti   Confetti
	Rotator    ArenaRotator
	Audio      AudioPlayer
}

// validate reports the first missing collaborator.
func (c Collaborators) validate() error {
	switch {
	case c.Surface == nil:
		return fmt.Errorf("%w: surface", ErrMissingCollaborator)
	case c.Scoreboard == nil:
		return fmt.Errorf("%w: scoreboard", ErrMissingCollaborator)
	case c.Loading == nil:
		return fmt.Errorf("%w: loading indicator", ErrMissingCollaborator)
	case c.Confetti == nil:
		return fmt.Errorf("%w: confetti", ErrMissingCollaborator)
	case c.Rotator == nil:
		return fmt.Errorf("%w: arena rotator", ErrMissingCollaborator)
	case c.Audio == nil:
		return fmt.Errorf("%w: audio player", ErrMissingCollaborator)
	}
	return nil
}

// NopCollaborators returns collaborators that discard every call.
// Used for headless simulation.
func NopCollaborators() Collaborators {
	n := nop{}
	return Collaborators{
		Surface:    n,
		Scoreboard: n,
		Loading:    n,
		Confetti:   n,
		Rotator:    n,
		Audio:      n,
	}
}

type nop struct{}

func (nop) SetTextStyle(TextStyle)                        {}
func (nop) Clear()                                        {}
func (nop) FillRect(core.Rect, core.Color)                {}
func (nop) DrawImage(Sprite, core.Rect)                   {}
func (nop) FillText(string, float64, float64, core.Color) {}
func (nop) Create(int, string, core.Color, int)           {}
func (nop) UpdateScore(int, int)                          {}
func (nop) Show()                                         {}
func (nop) Close()                                        {}
func (nop) Start()                                        {}
func (nop) Stop()                                         {}
func (nop) ResetRotation()                                {}
func (nop) Rotate(Rotation)                               {}
func (nop) Play(string)                                   {}
