// Package deck provides the cards and decks a tray draws from.
package deck

import (
	"fmt"

	"github.com/SvenDH/go-card-flip/rng"
	"github.com/SvenDH/go-card-flip/tray"
)

// ErrExhausted is returned by Draw when there are no more cards.
var ErrExhausted = fmt.Errorf("deck: %w", tray.ErrDeckExhausted)

type Options struct {
	CardSize tray.Size
	// AlignLeft lays this deck's hand out from the left screen edge.
	AlignLeft bool
	// FaceUp deals cards face up. Face-down cards are turned by Reveal.
	FaceUp bool
	// Spawn is where drawn cards start moving from.
	Spawn tray.Point
}

// Deck is an ordered pile of cards. It implements tray.Deck.
type Deck struct {
	cards []*Card
	opts  Options
}

// New builds a deck holding the given entries in order, each repeated Count
// times. Counts are clamped to [1, MaxCount].
func New(entries []Entry, opts Options) *Deck {
	d := &Deck{opts: opts}
	for _, e := range entries {
		n := min(max(e.Count, 1), MaxCount)
		for i := 0; i < n; i++ {
			d.cards = append(d.cards, NewCard(e.Name, e.Value, opts.CardSize, opts.Spawn, opts.FaceUp))
		}
	}
	return d
}

// Draw takes the next card off the top.
// If there are no more cards, ErrExhausted is returned along with a nil card.
func (d *Deck) Draw() (tray.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrExhausted
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Shuffle reorders the remaining cards.
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) Remaining() int { return len(d.cards) }

// Cards returns the remaining cards, top first.
func (d *Deck) Cards() []*Card { return append([]*Card(nil), d.cards...) }

func (d *Deck) CardSize() tray.Size { return d.opts.CardSize }

func (d *Deck) AlignLeft() bool { return d.opts.AlignLeft }
