// Package tray coordinates both hands and the shared pot of a card-flip match.
//
// A Tray is driven from a single game thread: Update once per frame, Render
// once per frame and HandleTouchAt whenever input arrives between frames.
// None of its methods block.
package tray

import (
	"errors"
	"fmt"
	"image/color"

	"go.uber.org/zap"
)

// PotState is the lifecycle of the shared pot within one round.
type PotState int

const (
	// PotEmpty waits for the player to pick a hand card.
	PotEmpty PotState = iota
	// PotFilled holds both committed cards while they travel to the pot.
	PotFilled
	// PotRevealed is reached once both cards settled and the opponent's card
	// was flipped. Only Reset leaves it.
	PotRevealed
)

func (s PotState) String() string {
	switch s {
	case PotEmpty:
		return "empty"
	case PotFilled:
		return "filled"
	case PotRevealed:
		return "revealed"
	}
	return "unknown"
}

var (
	backgroundColor = color.NRGBA{0x1d, 0x4a, 0x2f, 0xff}
	nameColor       = color.NRGBA{0xf4, 0xe9, 0xcd, 0xff}
)

type Config struct {
	// Size is the number of hand slots per side.
	Size         int
	Origin       Point
	Bounds       Size
	PlayerDeck   Deck
	OpponentDeck Deck
	Logger       *zap.Logger
	// OnReveal is called right after the opponent's pot card was flipped.
	OnReveal func(mine, theirs Card)
}

type side struct {
	name      string
	deck      Deck
	slots     []Slot
	pot       Slot
	exhausted bool
}

func (s *side) inHand() []Card {
	cards := make([]Card, 0, len(s.slots))
	for _, slot := range s.slots {
		if c, ok := slot.Card(); ok && c.Status() == StatusInHand {
			cards = append(cards, c)
		}
	}
	return cards
}

type Tray struct {
	ctx      Context
	origin   Point
	bounds   Size
	me, com  side
	state    PotState
	logger   *zap.Logger
	onReveal func(mine, theirs Card)
}

// New creates a tray with empty slots and empty pots. Slots are filled by
// Update.
func New(ctx Context, cfg Config) (*Tray, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("tray: hand size must be positive, got %d", cfg.Size)
	}
	if cfg.PlayerDeck == nil || cfg.OpponentDeck == nil {
		return nil, errors.New("tray: both decks are required")
	}
	if ctx.Rand == nil {
		return nil, errors.New("tray: context has no randomness source")
	}
	t := &Tray{
		ctx:      ctx,
		origin:   cfg.Origin,
		bounds:   cfg.Bounds,
		me:       side{name: ctx.PlayerName, deck: cfg.PlayerDeck, slots: make([]Slot, cfg.Size)},
		com:      side{name: ctx.OpponentName, deck: cfg.OpponentDeck, slots: make([]Slot, cfg.Size)},
		logger:   cfg.Logger,
		onReveal: cfg.OnReveal,
	}
	if t.bounds == (Size{}) {
		t.bounds = ctx.Screen
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	return t, nil
}

// Update refills stale slots on both sides, advances every card by dt and
// flips the opponent's pot card once both pot cards have settled.
func (t *Tray) Update(dt float32) error {
	if err := t.updateHandAndPot(&t.me, dt); err != nil {
		return err
	}
	if err := t.updateHandAndPot(&t.com, dt); err != nil {
		return err
	}
	if t.state == PotFilled && t.BothReady() {
		t.reveal()
	}
	return nil
}

func (t *Tray) updateHandAndPot(s *side, dt float32) error {
	for i := range s.slots {
		if s.slots[i].Stale() {
			c, err := s.deck.Draw()
			if errors.Is(err, ErrDeckExhausted) {
				if !s.exhausted {
					s.exhausted = true
					t.logger.Debug("deck exhausted, leaving slot unfilled",
						zap.String("side", s.name),
						zap.Int("slot", i),
					)
				}
				// retried next frame
				continue
			}
			if err != nil {
				return fmt.Errorf("refill %s slot %d: %w", s.name, i, err)
			}
			s.exhausted = false
			c.SetTargetLocation(t.SlotPosition(i, s.deck))
			c.SetStatus(StatusInHand)
			s.slots[i] = Occupied(c)
		}
		c, _ := s.slots[i].Card()
		c.Update(dt)
	}
	if c, ok := s.pot.Card(); ok {
		c.Update(dt)
	}
	return nil
}

// BothReady reports whether both pots hold a card and neither card is still
// moving.
func (t *Tray) BothReady() bool {
	mine, ok := t.me.pot.Card()
	if !ok {
		return false
	}
	theirs, ok := t.com.pot.Card()
	if !ok {
		return false
	}
	return mine.IsDoneMoving() && theirs.IsDoneMoving()
}

func (t *Tray) reveal() {
	mine, _ := t.me.pot.Card()
	theirs, _ := t.com.pot.Card()
	t.state = PotRevealed
	theirs.Reveal()
	t.logger.Info("pot revealed",
		zap.Stringer("mine", mine),
		zap.Stringer("theirs", theirs),
	)
	if t.onReveal != nil {
		t.onReveal(mine, theirs)
	}
}

// HandleTouchAt commits the player's hand card under p together with a random
// card from the opponent's hand. It only acts while the pot is empty and
// reports whether a selection was made.
func (t *Tray) HandleTouchAt(p Point) bool {
	if !t.canCommit() {
		return false
	}
	mine, ok := t.cardAt(p)
	if !ok {
		return false
	}
	return t.commit(mine)
}

// CommitSlot commits the player's card in hand slot i, as a touch on that card
// would. It reports false when the pot is not empty or the slot holds no hand
// card.
func (t *Tray) CommitSlot(i int) bool {
	if !t.canCommit() || i < 0 || i >= len(t.me.slots) {
		return false
	}
	mine, ok := t.me.slots[i].Card()
	if !ok || mine.Status() != StatusInHand {
		return false
	}
	return t.commit(mine)
}

func (t *Tray) canCommit() bool {
	return t.state == PotEmpty && t.me.pot.Empty() && t.com.pot.Empty()
}

func (t *Tray) commit(mine Card) bool {
	candidates := t.com.inHand()
	if len(candidates) == 0 {
		t.logger.Debug("opponent has no card to commit", zap.String("side", t.com.name))
		return false
	}
	theirs := candidates[t.ctx.Rand.Intn(len(candidates))]

	mine.SendToPot(t.PotPosition(t.me.deck))
	theirs.SendToPot(t.PotPosition(t.com.deck))
	t.me.pot = Occupied(mine)
	t.com.pot = Occupied(theirs)
	t.state = PotFilled
	t.logger.Debug("cards committed",
		zap.Stringer("mine", mine),
		zap.Stringer("theirs", theirs),
	)
	return true
}

// cardAt returns the topmost in-hand player card containing p. Later slots
// are drawn over earlier ones, so the scan runs from the last slot down.
func (t *Tray) cardAt(p Point) (Card, bool) {
	for i := len(t.me.slots) - 1; i >= 0; i-- {
		c, ok := t.me.slots[i].Card()
		if ok && c.Status() == StatusInHand && c.Contains(p) {
			return c, true
		}
	}
	return nil, false
}

// Reset starts a new round after a reveal: both pot cards are discarded and
// the pots emptied. Their hand slots are refilled by the next Update. Reset
// does nothing unless the pot is revealed.
func (t *Tray) Reset() bool {
	if t.state != PotRevealed {
		return false
	}
	for _, s := range []*side{&t.me, &t.com} {
		if c, ok := s.pot.Card(); ok {
			c.SetStatus(StatusDiscarded)
		}
		s.pot = Slot{}
	}
	t.state = PotEmpty
	t.logger.Info("new round")
	return true
}

func (t *Tray) State() PotState { return t.state }

func (t *Tray) Revealed() bool { return t.state == PotRevealed }

func (t *Tray) PlayerSlots() []Slot { return append([]Slot(nil), t.me.slots...) }

func (t *Tray) OpponentSlots() []Slot { return append([]Slot(nil), t.com.slots...) }

func (t *Tray) PlayerPot() Slot { return t.me.pot }

func (t *Tray) OpponentPot() Slot { return t.com.pot }

// Bounds returns the rectangle covered by the tray background.
func (t *Tray) Bounds() Rect { return RectAt(t.origin, t.bounds) }
