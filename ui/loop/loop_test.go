package loop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ n int }

type counter struct {
	seen []Msg
	// reply is returned after every message
	reply func(Msg) Cmd
}

func (c *counter) Update(msg Msg) (*counter, Cmd) {
	c.seen = append(c.seen, msg)
	if c.reply == nil {
		return c, nil
	}
	return c, c.reply(msg)
}

func TestStartRunsInitCommand(t *testing.T) {
	c := &counter{}
	d := &Dispatcher[*counter]{Model: c}
	d.Start(func() Msg { return ping{1} })
	assert.Equal(t, []Msg{ping{1}}, c.seen)

	d.Start(nil)
	d.Start(func() Msg { return nil })
	assert.Len(t, c.seen, 1)
}

func TestSendFollowsCommands(t *testing.T) {
	c := &counter{reply: func(msg Msg) Cmd {
		p, ok := msg.(ping)
		if !ok || p.n >= 3 {
			return nil
		}
		return func() Msg { return ping{p.n + 1} }
	}}
	d := &Dispatcher[*counter]{Model: c}
	d.Send(ping{1})
	assert.Equal(t, []Msg{ping{1}, ping{2}, ping{3}}, c.seen)
	assert.NoError(t, d.Err())
	assert.False(t, d.Quit())
}

func TestErrorAndQuit(t *testing.T) {
	boom := errors.New("boom")
	c := &counter{reply: func(Msg) Cmd { return Fail(boom) }}
	d := &Dispatcher[*counter]{Model: c}

	d.Start(func() Msg { return ping{1} })
	d.Send(ping{2})
	require.Error(t, d.Err())
	assert.ErrorIs(t, d.Err(), boom)
	assert.Len(t, c.seen, 2)

	d.Send(QuitMsg{})
	assert.True(t, d.Quit())
	assert.Len(t, c.seen, 2, "quit never reaches the model")
}
