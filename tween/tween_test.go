package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTweenReachesEnd(t *testing.T) {
	tw := New(0, 10, 1, OutQuad)

	val, done := tw.Update(0.5)
	assert.False(t, done)
	assert.InDelta(t, 7.5, val, 0.001)

	val, done = tw.Update(0.6)
	assert.True(t, done)
	assert.Equal(t, float32(10), val)

	// stays finished
	val, done = tw.Update(1)
	assert.True(t, done)
	assert.Equal(t, float32(10), val)
}

func TestTweenZeroDuration(t *testing.T) {
	val, done := New(3, 4, 0, nil).Update(0)
	assert.True(t, done)
	assert.Equal(t, float32(4), val)
}

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{
		"linear":    Linear,
		"inQuad":    InQuad,
		"outQuad":   OutQuad,
		"inOutQuad": InOutQuad,
	} {
		assert.InDelta(t, 0, ease(0), 0.0001, name)
		assert.InDelta(t, 1, ease(1), 0.0001, name)
	}
	assert.InDelta(t, 0.5, InOutQuad(0.5), 0.0001)
}

func TestSequence(t *testing.T) {
	seq := NewSequence(
		New(1, 0, 0.5, Linear),
		New(0, 1, 0.5, Linear),
	)

	val, idx, done := seq.Update(0.25)
	assert.False(t, done)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 0.5, val, 0.001)

	// crosses into the second tween with 0.25s left over
	val, idx, done = seq.Update(0.5)
	assert.False(t, done)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 0.5, val, 0.001)

	val, _, done = seq.Update(1)
	assert.True(t, done)
	assert.Equal(t, float32(1), val)
	assert.True(t, seq.Complete())
}

func TestEmptySequence(t *testing.T) {
	_, _, done := NewSequence().Update(1)
	assert.True(t, done)
}
