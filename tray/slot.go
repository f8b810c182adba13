package tray

// Slot holds at most one card. The zero value is empty.
type Slot struct {
	card     Card
	occupied bool
}

func Occupied(c Card) Slot {
	return Slot{card: c, occupied: c != nil}
}

func (s Slot) Empty() bool { return !s.occupied }

func (s Slot) Card() (Card, bool) {
	return s.card, s.occupied
}

// Stale reports whether the slot needs a new card: it was never filled or its
// card has left the hand.
func (s Slot) Stale() bool {
	return !s.occupied || s.card.Status() != StatusInHand
}
