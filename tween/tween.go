// Package tween interpolates a single float value over time.
package tween

// Easing maps normalized progress in [0, 1] to eased progress.
type Easing func(t float32) float32

func Linear(t float32) float32 { return t }

func InQuad(t float32) float32 { return t * t }

func OutQuad(t float32) float32 { return t * (2 - t) }

func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Tween moves from Begin to End over Duration seconds.
type Tween struct {
	Begin, End float32
	Duration   float32
	Ease       Easing
	elapsed    float32
}

func New(begin, end, duration float32, ease Easing) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{Begin: begin, End: end, Duration: duration, Ease: ease}
}

// Update advances the tween by dt seconds and returns the current value and
// whether the tween has reached its end.
func (t *Tween) Update(dt float32) (float32, bool) {
	t.elapsed += dt
	if t.Duration <= 0 || t.elapsed >= t.Duration {
		t.elapsed = t.Duration
		return t.End, true
	}
	if t.elapsed < 0 {
		t.elapsed = 0
	}
	p := t.Ease(t.elapsed / t.Duration)
	return t.Begin + (t.End-t.Begin)*p, false
}
