// Package game hosts the screensaver in a desktop window through ebiten.
package game

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/screensaver/internal/config"
	"github.com/iburimskiy/screensaver/internal/loop"
	"github.com/iburimskiy/screensaver/internal/screensaver"
)

// ErrNoViewport is returned when the window reports no usable size.
var ErrNoViewport = errors.New("game: window has no size")

var idleBackground = color.RGBA{R: 0x12, G: 0x12, B: 0x18, A: 0xFF}

var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Session is the controller state the window reports on.
type Session interface {
	Active() bool
	Status() string
}

// Game adapts the ebiten run loop to screensaver.Host. Every listener and
// scheduled callback runs inside Update.
type Game struct {
	screensaver.Events

	loop    *loop.Loop
	session Session
	canvas  *Canvas

	width, height int
	resized       bool

	cursor     image.Point
	cursorSeen bool
	keys       []ebiten.Key
	touches    []ebiten.TouchID
}

// NewGame returns a game sized w x h until the first Layout call.
func NewGame(l *loop.Loop, w, h int) *Game {
	return &Game{loop: l, width: w, height: h}
}

// Attach sets the controller whose status is shown while idle.
func (g *Game) Attach(s Session) {
	g.session = s
}

func (g *Game) Viewport() (int, int) {
	return g.width, g.height
}

func (g *Game) AcquireCanvas() (screensaver.Canvas, error) {
	if g.width <= 0 || g.height <= 0 {
		return nil, ErrNoViewport
	}
	g.canvas = NewCanvas(g.width, g.height)
	return g.canvas, nil
}

func (g *Game) Update() error {
	if g.resized {
		g.resized = false
		g.Emit(screensaver.Resize)
	}

	if g.pollInput() {
		return ebiten.Termination
	}

	g.loop.Tick(time.Now())

	active := g.session != nil && g.session.Active()
	if tps := tpsFor(active); ebiten.TPS() != tps {
		ebiten.SetTPS(tps)
	}
	return nil
}

// pollInput turns this tick's input into events. It reports true on Ctrl+Q.
func (g *Game) pollInput() bool {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch {
		case k == ebiten.KeyQ && ctrl:
			return true
		case k == ebiten.KeyEscape:
			g.Emit(screensaver.ToggleKey)
		default:
			g.Emit(screensaver.KeyPress)
		}
	}

	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			g.Emit(screensaver.PointerDown)
			break
		}
	}

	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != g.cursor {
		if g.cursorSeen {
			g.Emit(screensaver.PointerMove)
		}
		g.cursor = p
	}
	g.cursorSeen = true

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.Emit(screensaver.Scroll)
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		g.Emit(screensaver.TouchStart)
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil && g.canvas.Visible() {
		screen.DrawImage(g.canvas.Image(), nil)
		return
	}

	screen.Fill(idleBackground)
	status := "Starting..."
	if g.session != nil {
		status = g.session.Status()
	}
	ebitenutil.DebugPrintAt(screen, status+" - Ctrl+Q to quit", 12, 12)
}

// Layout uses the window's size as the viewport. A change is reported as a
// Resize event on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// tpsFor drops the update rate while only the idle countdown is on screen.
func tpsFor(active bool) int {
	if active {
		return config.ActiveTPS
	}
	return config.IdleTPS
}
