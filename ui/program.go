package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SvenDH/go-card-flip/ui/loop"
)

type Msg = loop.Msg

// Tick is sent once per frame after all input messages.
type Tick struct {
	DeltaTime float32
}

// TouchEvent is a touch or left click that started this frame, in screen
// pixels.
type TouchEvent struct {
	X, Y float64
}

type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

type (
	ErrorMsg = loop.ErrorMsg
	QuitMsg  = loop.QuitMsg
	Cmd      = loop.Cmd
)

// Based on bubbletea model
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	Draw(screen *ebiten.Image)
}

func Fail(err error) Cmd { return loop.Fail(err) }

// Program adapts a Model to ebiten.Game.
type Program struct {
	M             Model
	Width, Height int
	ShowDebug     bool
	// TPS is the fixed update rate used to derive Tick.DeltaTime.
	TPS int
	d   *loop.Dispatcher[Model]
}

func (p *Program) Update() error {
	if p.d == nil {
		if p.TPS > 0 {
			ebiten.SetTPS(p.TPS)
		}
		p.d = &loop.Dispatcher[Model]{Model: p.M}
		p.d.Start(p.M.Init())
	}
	for _, pt := range JustPressedPointers() {
		p.d.Send(TouchEvent{X: float64(pt.X), Y: float64(pt.Y)})
	}
	for i := ebiten.Key(0); i < ebiten.KeyMax; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(i)) {
			p.d.Send(KeyEvent{Key: ebiten.Key(i), Pressed: true})
		}
		if inpututil.IsKeyJustReleased(ebiten.Key(i)) {
			p.d.Send(KeyEvent{Key: ebiten.Key(i)})
		}
	}
	p.d.Send(Tick{DeltaTime: 1 / float32(ebiten.TPS())})
	p.M = p.d.Model
	if err := p.d.Err(); err != nil {
		return err
	}
	if p.d.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.M.Draw(screen)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}
