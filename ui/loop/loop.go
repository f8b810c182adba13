// Package loop runs the message/command cycle behind ui.Program without
// touching the window, so it can be exercised headless.
package loop

import "errors"

type Msg interface{}

type Cmd func() Msg

// ErrorMsg stops the program with Err.
type ErrorMsg struct {
	Err error
}

// QuitMsg stops the program without an error.
type QuitMsg struct{}

func Fail(err error) Cmd {
	return func() Msg { return ErrorMsg{Err: err} }
}

func Quit() Msg { return QuitMsg{} }

// Updater is a model that turns a message into its next state and an optional
// follow-up command.
type Updater[M any] interface {
	Update(msg Msg) (M, Cmd)
}

// Dispatcher feeds messages to a model and runs the commands it returns until
// one yields nothing.
type Dispatcher[M Updater[M]] struct {
	Model M
	err   error
	quit  bool
}

// Start runs the model's init command, if any.
func (d *Dispatcher[M]) Start(init Cmd) {
	if init == nil {
		return
	}
	if msg := init(); msg != nil {
		d.Send(msg)
	}
}

func (d *Dispatcher[M]) Send(msg Msg) {
	var cmd Cmd
	for {
		switch m := msg.(type) {
		case ErrorMsg:
			d.err = errors.Join(d.err, m.Err)
			return
		case QuitMsg:
			d.quit = true
			return
		}
		d.Model, cmd = d.Model.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if msg == nil {
			return
		}
	}
}

// Err returns every error reported through ErrorMsg.
func (d *Dispatcher[M]) Err() error { return d.err }

func (d *Dispatcher[M]) Quit() bool { return d.quit }
