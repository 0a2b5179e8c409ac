package viewstate

type Clip int

const (
	ClipA Clip = iota
	ClipB
)

func (c Clip) String() string {
	if c == ClipB {
		return "B"
	}
	return "A"
}

// HeroAlternator swaps the two hero background clips. A finish signal from the
// clip that is not playing is stale and ignored.
type HeroAlternator struct {
	active Clip
}

func (h *HeroAlternator) Finished(clip Clip) bool {
	if clip != h.active {
		return false
	}
	if h.active == ClipA {
		h.active = ClipB
	} else {
		h.active = ClipA
	}
	return true
}

func (h HeroAlternator) Active() Clip { return h.active }
