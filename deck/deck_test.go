package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvenDH/go-card-flip/rng"
	"github.com/SvenDH/go-card-flip/tray"
)

var testOptions = Options{
	CardSize:  tray.Size{W: 40, H: 60},
	AlignLeft: true,
	Spawn:     tray.Point{X: -50, Y: 10},
}

func TestNewExpandsCounts(t *testing.T) {
	d := New([]Entry{
		{Count: 2, Name: "Ace", Value: 1},
		{Name: "King", Value: 13},
	}, testOptions)

	require.Equal(t, 3, d.Remaining())
	names := []string{}
	for _, c := range d.Cards() {
		names = append(names, c.Name)
		assert.Equal(t, tray.StatusInDeck, c.Status())
		assert.Equal(t, testOptions.Spawn, c.Position())
		assert.Equal(t, testOptions.CardSize, c.Size())
		assert.False(t, c.FaceUp())
	}
	assert.Equal(t, []string{"Ace", "Ace", "King"}, names)
	assert.NotEqual(t, d.Cards()[0].Id, d.Cards()[1].Id)
	assert.Equal(t, testOptions.CardSize, d.CardSize())
	assert.True(t, d.AlignLeft())
}

func TestDraw(t *testing.T) {
	d := New([]Entry{{Name: "One", Value: 1}, {Name: "Two", Value: 2}}, testOptions)

	c, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, "One", c.(*Card).Name)

	c, err = d.Draw()
	require.NoError(t, err)
	assert.Equal(t, "Two", c.(*Card).Name)

	c, err = d.Draw()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.True(t, errors.Is(err, tray.ErrDeckExhausted))
}

func TestShuffle(t *testing.T) {
	entries := []Entry{}
	for i := 1; i <= 10; i++ {
		entries = append(entries, Entry{Name: "C", Value: i})
	}
	a := New(entries, testOptions)
	b := New(entries, testOptions)
	a.Shuffle(rng.NewSeeded(5))
	b.Shuffle(rng.NewSeeded(5))

	values := func(d *Deck) []int {
		var v []int
		for _, c := range d.Cards() {
			v = append(v, c.Value)
		}
		return v
	}
	assert.Equal(t, values(a), values(b))
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, values(a))
	assert.NotEqual(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, values(a))
}

func TestDeckSatisfiesTray(t *testing.T) {
	var _ tray.Deck = New(nil, testOptions)
	var _ tray.Card = NewCard("x", 1, tray.Size{}, tray.Point{}, true)
}
