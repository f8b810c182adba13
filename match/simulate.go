package match

import (
	"fmt"
	"image/color"
	"io"

	"go.uber.org/zap"

	"github.com/SvenDH/go-card-flip/tray"
)

// DrawCounter is a surface that only counts draw calls.
type DrawCounter struct {
	Rects, Texts int
}

func (d *DrawCounter) FillRect(tray.Rect, color.Color)                      { d.Rects++ }
func (d *DrawCounter) DrawText(string, tray.Point, tray.Align, color.Color) { d.Texts++ }

// Simulate autoplays the match onto a DrawCounter, logs the totals and writes
// one line per settled round to w.
func (m *Match) Simulate(opts AutoplayOptions, w io.Writer) (Stats, error) {
	surface := &DrawCounter{}
	st, err := m.Autoplay(opts, surface)
	if err != nil {
		return st, err
	}
	m.logger.Info("simulation finished",
		zap.Int64("seed", m.Seed),
		zap.Int("frames", st.Frames),
		zap.Int("touches", st.Touches),
		zap.Int("rounds", st.Rounds),
		zap.Int("rects", surface.Rects),
		zap.Int("texts", surface.Texts),
		zap.Int("player_deck", m.Player.Remaining()),
		zap.Int("opponent_deck", m.Opponent.Remaining()),
	)
	for _, r := range m.reveals {
		if r.Mine == nil || r.Theirs == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "round %d: %s %d vs %s %d\n",
			r.Round, r.Mine.Name, r.Mine.Value, r.Theirs.Name, r.Theirs.Value); err != nil {
			return st, fmt.Errorf("write round %d: %w", r.Round, err)
		}
	}
	return st, nil
}
