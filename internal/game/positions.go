package game

// SlotPool tracks which starting slots are taken within one session.
type SlotPool struct {
	used map[Side]bool
}

// NewSlotPool creates an empty pool.
func NewSlotPool() *SlotPool {
	return &SlotPool{used: make(map[Side]bool)}
}

// Claim takes the first free slot in side order. When all four are taken
// it returns left again, so a fifth ball shares the left slot.
func (p *SlotPool) Claim() Side {
	for _, s := range Sides {
		if !p.used[s] {
			p.used[s] = true
			return s
		}
	}
	p.used[SideLeft] = true
	return SideLeft
}

// Used reports whether a slot has been claimed.
func (p *SlotPool) Used(s Side) bool {
	return p.used[s]
}

// Clear frees every slot.
func (p *SlotPool) Clear() {
	clear(p.used)
}

// slotPosition returns the top-left corner of a starting slot: two body
// lengths from the arena center toward the given side.
func slotPosition(s Side, arena, w, h float64) (float64, float64) {
	midX := arena/2 - w/2
	midY := arena/2 - h/2
	switch s {
	case SideTop:
		return midX, midY - h - h
	case SideRight:
		return midX + w + w, midY
	case SideBottom:
		return midX, midY + h + h
	default:
		return midX - w - w, midY
	}
}
