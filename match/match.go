// Package match wires the configured decks, randomness and tray together.
package match

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SvenDH/go-card-flip/config"
	"github.com/SvenDH/go-card-flip/deck"
	"github.com/SvenDH/go-card-flip/rng"
	"github.com/SvenDH/go-card-flip/tray"
)

// Reveal is one settled pot.
type Reveal struct {
	Round        int
	Mine, Theirs *deck.Card
}

type Match struct {
	Tray     *tray.Tray
	Player   *deck.Deck
	Opponent *deck.Deck
	Seed     int64

	rand    rng.Generator
	logger  *zap.Logger
	reveals []Reveal
}

// New builds a match from cfg. Both decks come from the same list and are
// shuffled independently.
func New(cfg config.Config, logger *zap.Logger) (*Match, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = rng.NewSeed(); err != nil {
			return nil, err
		}
	}
	entries, err := deck.Load(cfg.DeckFile)
	if err != nil {
		return nil, err
	}

	g := rng.NewSeeded(seed)
	screen := tray.Size{W: float64(cfg.ScreenWidth), H: float64(cfg.ScreenHeight)}
	card := tray.Size{W: cfg.CardWidth(), H: cfg.CardHeight()}

	m := &Match{
		Seed:   seed,
		rand:   g,
		logger: logger,
		// cards slide in from the bottom corners
		Player: deck.New(entries, deck.Options{
			CardSize:  card,
			AlignLeft: true,
			FaceUp:    true,
			Spawn:     tray.Point{X: -card.W, Y: screen.H - card.H},
		}),
		Opponent: deck.New(entries, deck.Options{
			CardSize: card,
			Spawn:    tray.Point{X: screen.W, Y: screen.H - card.H},
		}),
	}
	m.Player.Shuffle(g)
	m.Opponent.Shuffle(g)

	origin := tray.Point{Y: screen.H / 4}
	m.Tray, err = tray.New(tray.Context{
		TileSize:     cfg.TileSize,
		Screen:       screen,
		Rand:         g,
		PlayerName:   cfg.PlayerName,
		OpponentName: cfg.OpponentName,
	}, tray.Config{
		Size:         cfg.HandSize,
		Origin:       origin,
		Bounds:       tray.Size{W: screen.W, H: screen.H - origin.Y},
		PlayerDeck:   m.Player,
		OpponentDeck: m.Opponent,
		Logger:       logger,
		OnReveal:     m.record,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("match created",
		zap.Int64("seed", seed),
		zap.Int("hand_size", cfg.HandSize),
		zap.Int("deck_size", m.Player.Remaining()),
	)
	return m, nil
}

func (m *Match) record(mine, theirs tray.Card) {
	r := Reveal{Round: len(m.reveals) + 1}
	r.Mine, _ = mine.(*deck.Card)
	r.Theirs, _ = theirs.(*deck.Card)
	m.reveals = append(m.reveals, r)
	if r.Mine != nil && r.Theirs != nil {
		m.logger.Debug("round settled",
			zap.Int("round", r.Round),
			zap.Int("mine", r.Mine.Value),
			zap.Int("theirs", r.Theirs.Value),
		)
	}
}

// Reveals returns every settled pot so far.
func (m *Match) Reveals() []Reveal { return append([]Reveal(nil), m.reveals...) }

// SlotCenter returns the centre of the player's hand card in slot i.
func (m *Match) SlotCenter(i int) (tray.Point, error) {
	slots := m.Tray.PlayerSlots()
	if i < 0 || i >= len(slots) {
		return tray.Point{}, fmt.Errorf("slot %d out of range [0, %d)", i, len(slots))
	}
	c, ok := slots[i].Card()
	if !ok || c.Status() != tray.StatusInHand {
		return tray.Point{}, fmt.Errorf("slot %d holds no hand card", i)
	}
	return tray.RectAt(c.Position(), m.Player.CardSize()).Center(), nil
}

// RandomSlot picks one of the player's in-hand slots, or -1 when the hand is
// empty.
func (m *Match) RandomSlot() int {
	var idx []int
	for i, s := range m.Tray.PlayerSlots() {
		if c, ok := s.Card(); ok && c.Status() == tray.StatusInHand {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return -1
	}
	return idx[m.rand.Intn(len(idx))]
}
