package tray

const (
	slotMarginX = 30
	slotMarginY = 40
	// cardPadding is the horizontal slot pitch in card widths.
	cardPadding = 1.2
)

func (t *Tray) mirror(x, width float64, d Deck) float64 {
	if d.AlignLeft() {
		return x
	}
	return t.ctx.Screen.W - (x + width)
}

// SlotPosition returns the top-left corner of hand slot index for the side
// drawing from d. Right-aligned decks are mirrored about the screen width so
// both hands face each other from opposite edges.
func (t *Tray) SlotPosition(index int, d Deck) Point {
	w := d.CardSize().W
	x := slotMarginX + t.origin.X + cardPadding*w*float64(index)
	return Point{
		X: t.mirror(x, w, d),
		Y: slotMarginY + t.origin.Y,
	}
}

// PotPosition returns where a card committed from d comes to rest, just off
// the centre line on that side's half of the screen.
func (t *Tray) PotPosition(d Deck) Point {
	size := d.CardSize()
	x := t.ctx.Screen.W/2 - size.W - t.ctx.TileSize
	return Point{
		X: t.mirror(x, size.W, d),
		Y: slotMarginY + t.origin.Y + size.H + 2*t.ctx.TileSize,
	}
}

// NamePosition returns the anchor and alignment of the display name for the
// side drawing from d.
func (t *Tray) NamePosition(d Deck) (Point, Align) {
	p := Point{X: slotMarginX + t.origin.X, Y: t.origin.Y + 2*t.ctx.TileSize}
	if d.AlignLeft() {
		return p, AlignLeft
	}
	p.X = t.ctx.Screen.W - p.X
	return p, AlignRight
}
