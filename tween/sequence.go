package tween

// Sequence runs tweens back to back.
type Sequence struct {
	Tweens []*Tween
	index  int
}

func NewSequence(tweens ...*Tween) *Sequence {
	return &Sequence{Tweens: tweens}
}

// Update advances the running tween by dt, carrying leftover time into the next
// one. It returns the current value, the index of the running tween and whether
// the whole sequence is complete.
func (s *Sequence) Update(dt float32) (float32, int, bool) {
	if len(s.Tweens) == 0 {
		return 0, 0, true
	}
	for {
		if s.index >= len(s.Tweens) {
			last := len(s.Tweens) - 1
			return s.Tweens[last].End, last, true
		}
		t := s.Tweens[s.index]
		before := t.elapsed
		val, done := t.Update(dt)
		if !done {
			return val, s.index, false
		}
		dt -= t.Duration - before
		s.index++
		if s.index >= len(s.Tweens) {
			return val, s.index - 1, true
		}
		if dt <= 0 {
			return val, s.index, false
		}
	}
}

func (s *Sequence) Complete() bool { return s.index >= len(s.Tweens) }
