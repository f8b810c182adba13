package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-flip/config"
	"github.com/SvenDH/go-card-flip/match"
	"github.com/SvenDH/go-card-flip/tray"
	"github.com/SvenDH/go-card-flip/ui"
	"github.com/SvenDH/go-card-flip/ui/loop"
)

var (
	focusColor = color.NRGBA{0xf2, 0xc1, 0x4e, 0xff}
	hintColor  = color.NRGBA{0xb8, 0xc9, 0xb0, 0xff}
	clearColor = color.NRGBA{0x10, 0x2a, 0x1b, 0xff}
)

// Table is the playing screen: both hands, the pot and the deck counters.
type Table struct {
	W, H   int
	match  *match.Match
	logger *zap.Logger
	// focus is the hand slot picked with the keyboard, -1 when the mouse or
	// touch was used last.
	focus int
}

func NewTable(cfg config.Config, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m, err := match.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Table{
		W:      cfg.ScreenWidth,
		H:      cfg.ScreenHeight,
		match:  m,
		logger: logger,
		focus:  -1,
	}, nil
}

func (t *Table) Init() ui.Cmd {
	return nil
}

func (t *Table) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	switch m := msg.(type) {
	case ui.Tick:
		t.moveFocus()
		if err := t.match.Tray.Update(m.DeltaTime); err != nil {
			return t, ui.Fail(err)
		}
	case ui.TouchEvent:
		t.focus = -1
		t.match.Tray.HandleTouchAt(tray.Point{X: m.X, Y: m.Y})
	case ui.KeyEvent:
		if !m.Pressed {
			return t, nil
		}
		switch m.Key {
		case ebiten.KeyEnter, ebiten.KeySpace:
			if t.focus >= 0 {
				t.match.Tray.CommitSlot(t.focus)
			}
		case ebiten.KeyN:
			t.match.Tray.Reset()
		case ebiten.KeyEscape:
			t.logger.Info("quit requested", zap.Int("rounds", len(t.match.Reveals())))
			return t, loop.Quit
		}
	}
	return t, nil
}

func (t *Table) moveFocus() {
	size := len(t.match.Tray.PlayerSlots())
	switch {
	case ui.RepeatingKeyPressed(ebiten.KeyArrowLeft):
		if t.focus <= 0 {
			t.focus = size - 1
		} else {
			t.focus--
		}
	case ui.RepeatingKeyPressed(ebiten.KeyArrowRight):
		t.focus = (t.focus + 1) % size
	}
}

func (t *Table) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	s := ui.NewSurface(screen)
	t.match.Tray.Render(s)

	if t.focus >= 0 {
		if p, err := t.match.SlotCenter(t.focus); err == nil {
			size := t.match.Player.CardSize()
			s.FillRect(tray.Rect{X: p.X - size.W/2, Y: p.Y + size.H/2 + 4, W: size.W, H: 3}, focusColor)
		}
	}

	bottom := float64(t.H) - 8
	s.DrawText(fmt.Sprintf("Deck: %d", t.match.Player.Remaining()), tray.Point{X: 8, Y: bottom}, tray.AlignLeft, hintColor)
	s.DrawText(fmt.Sprintf("Deck: %d", t.match.Opponent.Remaining()), tray.Point{X: float64(t.W) - 8, Y: bottom}, tray.AlignRight, hintColor)

	var hint string
	switch t.match.Tray.State() {
	case tray.PotEmpty:
		hint = "Pick a card"
	case tray.PotRevealed:
		hint = fmt.Sprintf("Round %d - press N for the next round", len(t.match.Reveals()))
	}
	if hint != "" {
		s.DrawText(hint, tray.Point{X: float64(t.W) / 2, Y: bottom}, tray.AlignCenter, hintColor)
	}
}
