package tray

import (
	"errors"
	"image/color"

	"github.com/SvenDH/go-card-flip/rng"
)

// ErrDeckExhausted is returned (possibly wrapped) by a Deck that has no card
// left to draw.
var ErrDeckExhausted = errors.New("deck exhausted")

type Status int

const (
	StatusInDeck Status = iota
	StatusInHand
	StatusInPot
	StatusDiscarded
)

func (s Status) String() string {
	switch s {
	case StatusInDeck:
		return "in-deck"
	case StatusInHand:
		return "in-hand"
	case StatusInPot:
		return "in-pot"
	case StatusDiscarded:
		return "discarded"
	}
	return "unknown"
}

// Card is a single animated card as seen by the tray.
type Card interface {
	Status() Status
	SetStatus(Status)
	Position() Point
	// SetTargetLocation starts moving the card towards p.
	SetTargetLocation(p Point)
	// Update advances movement and flip animations by dt seconds.
	Update(dt float32)
	IsDoneMoving() bool
	Contains(p Point) bool
	// SendToPot commits the card: its status becomes StatusInPot and it moves
	// to the pot location p.
	SendToPot(p Point)
	// Reveal turns the card face up. Only the first call has an effect.
	Reveal()
	Render(s Surface)
	String() string
}

// Deck is an ordered source of cards for one side of the table.
type Deck interface {
	// Draw returns the next card or an error matching ErrDeckExhausted.
	Draw() (Card, error)
	CardSize() Size
	// AlignLeft reports whether the deck's hand is laid out from the left
	// screen edge. Otherwise the layout is mirrored.
	AlignLeft() bool
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Offset returns how far text of the given width starts from its anchor.
func (a Align) Offset(width float64) float64 {
	switch a {
	case AlignRight:
		return -width
	case AlignCenter:
		return -width / 2
	}
	return 0
}

// Surface is the drawing target used by Render.
type Surface interface {
	FillRect(r Rect, c color.Color)
	DrawText(s string, at Point, align Align, c color.Color)
}

// Context is the enclosing game state shared with the tray.
type Context struct {
	TileSize     float64
	Screen       Size
	Rand         rng.Generator
	PlayerName   string
	OpponentName string
}
