package game

import "fmt"

// Side identifies one edge of the arena and the paddle slot defending it.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Sides is the fixed enumeration order of paddle slots.
var Sides = [4]Side{SideTop, SideRight, SideBottom, SideLeft}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide converts a side name into a Side.
func ParseSide(name string) (Side, error) {
	for _, s := range Sides {
		if s.String() == name {
			return s, nil
		}
	}
	return SideLeft, fmt.Errorf("game: unknown side %q", name)
}

// Horizontal reports whether a paddle on this side moves along the x axis.
func (s Side) Horizontal() bool {
	return s == SideTop || s == SideBottom
}
