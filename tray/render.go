package tray

// Render draws the background, the opponent's side, the player's side and
// both names. It does not modify the tray.
func (t *Tray) Render(s Surface) {
	s.FillRect(t.Bounds(), backgroundColor)
	t.renderSide(s, &t.com)
	t.renderSide(s, &t.me)
	for _, sd := range []*side{&t.com, &t.me} {
		at, align := t.NamePosition(sd.deck)
		s.DrawText(sd.name, at, align, nameColor)
	}
}

func (t *Tray) renderSide(s Surface, sd *side) {
	for _, slot := range sd.slots {
		// committed cards are drawn once, as the pot
		if c, ok := slot.Card(); ok && c.Status() == StatusInHand {
			c.Render(s)
		}
	}
	if c, ok := sd.pot.Card(); ok {
		c.Render(s)
	}
}
