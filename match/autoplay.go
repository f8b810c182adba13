package match

import (
	"errors"

	"go.uber.org/zap"

	"github.com/SvenDH/go-card-flip/tray"
)

type AutoplayOptions struct {
	// Frames caps the number of updates. 0 means no cap.
	Frames int
	// DT is the frame time in seconds.
	DT float32
	// Think is how many frames to wait on an empty pot before touching.
	Think int
	// Linger is how many frames a revealed pot stays before the next round.
	Linger int
	// Rounds stops after this many reveals. 0 means no limit.
	Rounds int
}

type Stats struct {
	Frames  int
	Touches int
	Rounds  int
}

var errNoProgress = errors.New("autoplay: frame cap required when rounds are unlimited")

// Autoplay drives the match without input: it touches a random hand card
// whenever the pot is empty and starts a new round after each reveal. It stops
// at the frame cap, the round limit, or when the player can no longer commit a
// card. s may be nil to skip rendering.
func (m *Match) Autoplay(opts AutoplayOptions, s tray.Surface) (Stats, error) {
	var st Stats
	if opts.Frames <= 0 && opts.Rounds <= 0 {
		return st, errNoProgress
	}
	wait := 0
	for opts.Frames <= 0 || st.Frames < opts.Frames {
		if err := m.Tray.Update(opts.DT); err != nil {
			return st, err
		}
		st.Frames++
		if s != nil {
			m.Tray.Render(s)
		}

		switch m.Tray.State() {
		case tray.PotEmpty:
			if wait++; wait < opts.Think {
				continue
			}
			wait = 0
			if !m.Tray.CommitSlot(m.RandomSlot()) {
				m.logger.Info("no card left to commit", zap.Int("frame", st.Frames))
				return st, nil
			}
			st.Touches++
		case tray.PotRevealed:
			if wait == 0 {
				st.Rounds++
				if opts.Rounds > 0 && st.Rounds >= opts.Rounds {
					return st, nil
				}
			}
			if wait++; wait < opts.Linger {
				continue
			}
			wait = 0
			m.Tray.Reset()
		}
	}
	return st, nil
}
