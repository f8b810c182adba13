package deck

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-card-flip/tray"
	"github.com/SvenDH/go-card-flip/tween"
)

const (
	moveDuration = float32(0.3)
	// flipDuration is the length of each half of the flip.
	flipDuration = float32(0.15)
	borderWidth  = 2
)

var (
	borderColor = color.NRGBA{0xf4, 0xe9, 0xcd, 0xff}
	faceColor   = color.NRGBA{0xfb, 0xf7, 0xee, 0xff}
	backColor   = color.NRGBA{0x8c, 0x2f, 0x39, 0xff}
	inkColor    = color.NRGBA{0x22, 0x1e, 0x22, 0xff}
)

// Card is an animated playing card. It implements tray.Card.
type Card struct {
	Id    ulid.ULID
	Name  string
	Value int

	size   tray.Size
	pos    tray.Point
	target tray.Point
	status tray.Status
	faceUp bool
	// Animation
	tweenX   *tween.Tween
	tweenY   *tween.Tween
	flip     *tween.Sequence
	scaleX   float32
	revealed bool
}

func NewCard(name string, value int, size tray.Size, at tray.Point, faceUp bool) *Card {
	return &Card{
		Id:     ulid.Make(),
		Name:   name,
		Value:  value,
		size:   size,
		pos:    at,
		target: at,
		status: tray.StatusInDeck,
		faceUp: faceUp,
		scaleX: 1,
	}
}

func (c *Card) Status() tray.Status     { return c.status }
func (c *Card) SetStatus(s tray.Status) { c.status = s }
func (c *Card) Position() tray.Point    { return c.pos }
func (c *Card) Target() tray.Point      { return c.target }
func (c *Card) Size() tray.Size         { return c.size }
func (c *Card) FaceUp() bool            { return c.faceUp }

// SetTargetLocation animates the card from where it is now to p, replacing
// any movement in progress.
func (c *Card) SetTargetLocation(p tray.Point) {
	c.target = p
	c.tweenX = tween.New(float32(c.pos.X), float32(p.X), moveDuration, tween.OutQuad)
	c.tweenY = tween.New(float32(c.pos.Y), float32(p.Y), moveDuration, tween.OutQuad)
}

func (c *Card) Update(dt float32) {
	if c.tweenX != nil && c.tweenY != nil {
		xVal, xDone := c.tweenX.Update(dt)
		yVal, yDone := c.tweenY.Update(dt)
		c.pos = tray.Point{X: float64(xVal), Y: float64(yVal)}
		// Animation is done when both tweens are finished
		if xDone && yDone {
			c.pos = c.target
			c.tweenX = nil
			c.tweenY = nil
		}
	}
	if c.flip != nil {
		scale, step, done := c.flip.Update(dt)
		c.scaleX = scale
		if step > 0 || done {
			c.faceUp = true
		}
		if done {
			c.scaleX = 1
			c.flip = nil
		}
	}
}

func (c *Card) IsDoneMoving() bool { return c.tweenX == nil && c.tweenY == nil }

// Flipping reports whether the reveal animation is still running.
func (c *Card) Flipping() bool { return c.flip != nil }

func (c *Card) Contains(p tray.Point) bool {
	return tray.RectAt(c.pos, c.size).Contains(p)
}

func (c *Card) SendToPot(p tray.Point) {
	c.status = tray.StatusInPot
	c.SetTargetLocation(p)
}

// Reveal squeezes the card to nothing and opens it face up.
func (c *Card) Reveal() {
	if c.revealed {
		return
	}
	c.revealed = true
	if c.faceUp {
		return
	}
	c.flip = tween.NewSequence(
		tween.New(1, 0, flipDuration, tween.InQuad),
		tween.New(0, 1, flipDuration, tween.OutQuad),
	)
}

func (c *Card) Render(s tray.Surface) {
	w := c.size.W * float64(c.scaleX)
	if w <= 0 {
		return
	}
	outer := tray.Rect{X: c.pos.X + (c.size.W-w)/2, Y: c.pos.Y, W: w, H: c.size.H}
	s.FillRect(outer, borderColor)

	inner := tray.Rect{
		X: outer.X + borderWidth,
		Y: outer.Y + borderWidth,
		W: outer.W - 2*borderWidth,
		H: outer.H - 2*borderWidth,
	}
	if inner.W <= 0 || inner.H <= 0 {
		return
	}
	if !c.faceUp {
		s.FillRect(inner, backColor)
		return
	}
	s.FillRect(inner, faceColor)
	// skip text while the card is too narrow to hold it
	if c.scaleX < 0.5 {
		return
	}
	s.DrawText(c.Name, tray.Point{X: inner.X + 3, Y: inner.Y + 12}, tray.AlignLeft, inkColor)
	s.DrawText(strconv.Itoa(c.Value), tray.Point{X: inner.X + inner.W - 3, Y: inner.Y + inner.H - 4}, tray.AlignRight, inkColor)
}

func (c *Card) String() string {
	return fmt.Sprintf("%s(%d)#%s", c.Name, c.Value, c.Id)
}
