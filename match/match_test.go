package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SvenDH/go-card-flip/config"
	"github.com/SvenDH/go-card-flip/tray"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Seed = 42
	return cfg
}

func TestNew(t *testing.T) {
	m, err := New(testConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, int64(42), m.Seed)
	assert.Equal(t, 26, m.Player.Remaining())
	assert.Equal(t, 26, m.Opponent.Remaining())
	assert.True(t, m.Player.AlignLeft())
	assert.False(t, m.Opponent.AlignLeft())
	assert.Equal(t, tray.Size{W: 48, H: 64}, m.Player.CardSize())
	assert.Equal(t, tray.PotEmpty, m.Tray.State())
}

func TestNewIsDeterministic(t *testing.T) {
	a, err := New(testConfig(t), nil)
	require.NoError(t, err)
	b, err := New(testConfig(t), nil)
	require.NoError(t, err)

	for i, c := range a.Player.Cards() {
		assert.Equal(t, c.Value, b.Player.Cards()[i].Value)
	}
}

func TestNewRandomSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = 0
	m, err := New(cfg, nil)
	require.NoError(t, err)
	assert.NotZero(t, m.Seed)
}

func TestNewBadDeckFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.DeckFile = filepath.Join(t.TempDir(), "missing.deck")
	_, err := New(cfg, nil)
	assert.Error(t, err)
}

func TestCommitRandomSlot(t *testing.T) {
	m, err := New(testConfig(t), nil)
	require.NoError(t, err)

	_, err = m.SlotCenter(0)
	assert.Error(t, err, "nothing drawn yet")
	assert.Equal(t, -1, m.RandomSlot())

	require.NoError(t, m.Tray.Update(1))
	_, err = m.SlotCenter(5)
	assert.Error(t, err)

	slot := m.RandomSlot()
	require.GreaterOrEqual(t, slot, 0)
	want, _ := m.Tray.PlayerSlots()[slot].Card()
	require.True(t, m.Tray.CommitSlot(slot))
	got, ok := m.Tray.PlayerPot().Card()
	require.True(t, ok)
	assert.Same(t, want, got)
	assert.False(t, m.Tray.CommitSlot(0))
}

func TestTouchSettledCard(t *testing.T) {
	m, err := New(testConfig(t), nil)
	require.NoError(t, err)
	require.NoError(t, m.Tray.Update(1))

	p, err := m.SlotCenter(2)
	require.NoError(t, err)
	want, _ := m.Tray.PlayerSlots()[2].Card()
	require.True(t, m.Tray.HandleTouchAt(p))
	got, _ := m.Tray.PlayerPot().Card()
	assert.Same(t, want, got)
}

func TestAutoplayRounds(t *testing.T) {
	m, err := New(testConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	surface := &DrawCounter{}
	st, err := m.Autoplay(AutoplayOptions{DT: 1.0 / 60, Think: 3, Linger: 3, Rounds: 4}, surface)
	require.NoError(t, err)
	assert.Equal(t, 4, st.Rounds)
	assert.Equal(t, 4, st.Touches)
	assert.Len(t, m.Reveals(), 4)
	// background and both names every frame
	assert.GreaterOrEqual(t, surface.Rects, st.Frames)
	assert.GreaterOrEqual(t, surface.Texts, 2*st.Frames)

	for i, r := range m.Reveals() {
		assert.Equal(t, i+1, r.Round)
		require.NotNil(t, r.Mine)
		require.NotNil(t, r.Theirs)
		assert.True(t, r.Theirs.FaceUp() || r.Theirs.Flipping())
	}
}

func TestAutoplayRunsOutOfCards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.deck")
	require.NoError(t, os.WriteFile(path, []byte("6 x Frog 1\n"), 0o644))
	cfg := testConfig(t)
	cfg.DeckFile = path

	m, err := New(cfg, nil)
	require.NoError(t, err)
	st, err := m.Autoplay(AutoplayOptions{Frames: 10000, DT: 1.0 / 60}, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, st.Rounds)
	assert.Equal(t, 6, st.Touches)
	assert.Less(t, st.Frames, 10000)
}

func TestAutoplayNeedsALimit(t *testing.T) {
	m, err := New(testConfig(t), nil)
	require.NoError(t, err)
	_, err = m.Autoplay(AutoplayOptions{DT: 0.1}, nil)
	assert.Error(t, err)
}
