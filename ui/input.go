package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	delay    = 30
	interval = 3
)

// RepeatingKeyPressed returns true on first press and then at an interval
// while held.
func RepeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	if d >= delay && (d-delay)%interval == 0 {
		return true
	}
	return false
}

var touchIDs []ebiten.TouchID

// JustPressedPointers returns the positions of touches that began this frame,
// followed by the cursor if the left mouse button was just pressed.
func JustPressedPointers() []image.Point {
	var pts []image.Point
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pts = append(pts, image.Pt(ebiten.CursorPosition()))
	}
	return pts
}
