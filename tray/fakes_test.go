package tray

import (
	"errors"
	"fmt"
	"image/color"
)

type fakeCard struct {
	name       string
	status     Status
	pos        Point
	target     Point
	size       Size
	moveFrames int
	potFrames  int
	moving     int
	updates    int
	sentToPot  int
	reveals    int
}

func (c *fakeCard) Status() Status     { return c.status }
func (c *fakeCard) SetStatus(s Status) { c.status = s }
func (c *fakeCard) Position() Point    { return c.pos }
func (c *fakeCard) String() string     { return c.name }

func (c *fakeCard) SetTargetLocation(p Point) {
	c.target = p
	c.moving = c.moveFrames
	if c.moving == 0 {
		c.pos = p
	}
}

func (c *fakeCard) Update(dt float32) {
	c.updates++
	if c.moving > 0 {
		c.moving--
		if c.moving == 0 {
			c.pos = c.target
		}
	}
}

func (c *fakeCard) IsDoneMoving() bool { return c.moving == 0 }

func (c *fakeCard) Contains(p Point) bool { return RectAt(c.pos, c.size).Contains(p) }

func (c *fakeCard) SendToPot(p Point) {
	c.sentToPot++
	c.status = StatusInPot
	c.target = p
	c.moving = c.potFrames
}

func (c *fakeCard) Reveal() { c.reveals++ }

func (c *fakeCard) Render(s Surface) { s.DrawText(c.name, c.pos, AlignLeft, nil) }

type fakeDeck struct {
	cards     []*fakeCard
	drawn     []*fakeCard
	size      Size
	alignLeft bool
	err       error
}

// newFakeDeck returns n cards named prefix0..prefixN. Cards settle in the
// frame they are drawn and take potFrames updates to reach the pot.
func newFakeDeck(prefix string, n int, alignLeft bool, potFrames int) *fakeDeck {
	d := &fakeDeck{size: Size{W: 40, H: 60}, alignLeft: alignLeft}
	for i := 0; i < n; i++ {
		d.cards = append(d.cards, &fakeCard{
			name:       fmt.Sprintf("%s%d", prefix, i),
			status:     StatusInDeck,
			size:       d.size,
			moveFrames: 1,
			potFrames:  potFrames,
		})
	}
	return d
}

func (d *fakeDeck) Draw() (Card, error) {
	if d.err != nil {
		return nil, d.err
	}
	if len(d.cards) == 0 {
		return nil, fmt.Errorf("fake: %w", ErrDeckExhausted)
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	d.drawn = append(d.drawn, c)
	return c, nil
}

func (d *fakeDeck) CardSize() Size  { return d.size }
func (d *fakeDeck) AlignLeft() bool { return d.alignLeft }

var errBrokenDeck = errors.New("broken deck")

type op struct {
	kind  string
	text  string
	rect  Rect
	at    Point
	align Align
}

type recorder struct {
	ops []op
}

func (r *recorder) FillRect(rect Rect, c color.Color) {
	r.ops = append(r.ops, op{kind: "fill", rect: rect})
}

func (r *recorder) DrawText(s string, at Point, align Align, c color.Color) {
	r.ops = append(r.ops, op{kind: "text", text: s, at: at, align: align})
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}
