// Package terminal hosts the screensaver in a terminal through tcell.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/iburimskiy/screensaver/internal/config"
	"github.com/iburimskiy/screensaver/internal/loop"
	"github.com/iburimskiy/screensaver/internal/screensaver"
)

var (
	// ErrNotTerminal is returned by Open when stdout is redirected.
	ErrNotTerminal = errors.New("terminal: stdout is not a terminal")
	// ErrNoViewport is returned when the screen reports no usable size.
	ErrNoViewport = errors.New("terminal: screen has no size")
)

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Open initialises the real terminal screen with mouse tracking enabled.
func Open() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}

// Statuser supplies the line shown while the screensaver is hidden.
type Statuser interface {
	Status() string
}

// Host adapts a tcell.Screen to screensaver.Host.
type Host struct {
	screensaver.Events

	screen       tcell.Screen
	canvas       *Canvas
	lastX, lastY int
}

func NewHost(screen tcell.Screen) *Host {
	return &Host{screen: screen, lastX: -1, lastY: -1}
}

// Viewport is the screen size in half-cell pixels.
func (h *Host) Viewport() (int, int) {
	cols, rows := h.screen.Size()
	return cols, rows * 2
}

func (h *Host) AcquireCanvas() (screensaver.Canvas, error) {
	w, hh := h.Viewport()
	if w <= 0 || hh <= 0 {
		return nil, ErrNoViewport
	}
	h.canvas = NewCanvas(w, hh)
	return h.canvas, nil
}

// HandleEvent forwards a tcell event to the listeners. It reports true when
// the user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.Emit(screensaver.Resize)

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEscape:
			h.Emit(screensaver.ToggleKey)
		case tcell.KeyRune:
			if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
				return true
			}
			h.Emit(screensaver.KeyPress)
		default:
			h.Emit(screensaver.KeyPress)
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		switch {
		case buttons&wheelButtons != 0:
			h.Emit(screensaver.Scroll)
		case buttons&(tcell.Button1|tcell.Button2|tcell.Button3) != 0:
			h.Emit(screensaver.PointerDown)
		}
		if x, y := ev.Position(); x != h.lastX || y != h.lastY {
			moved := h.lastX >= 0
			h.lastX, h.lastY = x, y
			if moved {
				h.Emit(screensaver.PointerMove)
			}
		}
	}
	return false
}

// Render draws either the running effect or the idle status line.
func (h *Host) Render(status Statuser) {
	if h.canvas != nil && h.canvas.Visible() {
		h.canvas.Flush(h.screen)
	} else {
		h.screen.Clear()
		_, rows := h.screen.Size()
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		col := 1
		for _, r := range status.Status() + " - Ctrl+C to quit" {
			h.screen.SetContent(col, rows-1, r, nil, style)
			col++
		}
	}
	h.screen.Show()
}

// Run drives l and renders until ctx is done or the user quits. Events are
// polled on a separate goroutine and dispatched here, so every listener and
// frame callback runs on the caller's goroutine.
func (h *Host) Run(ctx context.Context, l *loop.Loop, status Statuser) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TerminalFPS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			l.Tick(now)
			h.Render(status)
		}
	}
}
