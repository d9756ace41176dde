package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/screensaver/internal/config"
	"github.com/iburimskiy/screensaver/internal/loop"
	"github.com/iburimskiy/screensaver/internal/screensaver"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func countEmits(h *Host) map[screensaver.EventKind]int {
	counts := make(map[screensaver.EventKind]int)
	kinds := append([]screensaver.EventKind{screensaver.Resize, screensaver.ToggleKey}, screensaver.ActivityKinds...)
	for _, kind := range kinds {
		kind := kind
		h.Listen(kind, func() { counts[kind]++ })
	}
	return counts
}

func TestHostViewportUsesHalfCells(t *testing.T) {
	h := NewHost(newSimScreen(t, 40, 12))

	if w, hh := h.Viewport(); w != 40 || hh != 24 {
		t.Errorf("Expected 40x24 viewport, got %dx%d", w, hh)
	}

	canvas, err := h.AcquireCanvas()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w, hh := canvas.Size(); w != 40 || hh != 24 {
		t.Errorf("Expected 40x24 canvas, got %dx%d", w, hh)
	}
}

func TestHostKeys(t *testing.T) {
	h := NewHost(newSimScreen(t, 20, 5))
	counts := countEmits(h)

	if quit := h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); quit {
		t.Error("Escape should not quit")
	}
	if counts[screensaver.ToggleKey] != 1 {
		t.Errorf("Expected 1 toggle, got %d", counts[screensaver.ToggleKey])
	}
	if counts[screensaver.KeyPress] != 0 {
		t.Errorf("Escape should not count as a key press, got %d", counts[screensaver.KeyPress])
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if counts[screensaver.KeyPress] != 1 {
		t.Errorf("Expected 1 key press, got %d", counts[screensaver.KeyPress])
	}

	if quit := h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)); !quit {
		t.Error("Expected Ctrl+C to quit")
	}
}

func TestHostMouse(t *testing.T) {
	h := NewHost(newSimScreen(t, 20, 5))
	counts := countEmits(h)

	// The first report only records the position.
	h.HandleEvent(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	if counts[screensaver.PointerMove] != 0 {
		t.Errorf("Expected no move on first report, got %d", counts[screensaver.PointerMove])
	}

	h.HandleEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	if counts[screensaver.PointerMove] != 1 {
		t.Errorf("Expected 1 move, got %d", counts[screensaver.PointerMove])
	}

	h.HandleEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	if counts[screensaver.PointerDown] != 1 {
		t.Errorf("Expected 1 pointer down, got %d", counts[screensaver.PointerDown])
	}
	if counts[screensaver.PointerMove] != 1 {
		t.Errorf("Expected no extra move for a click in place, got %d", counts[screensaver.PointerMove])
	}

	h.HandleEvent(tcell.NewEventMouse(4, 3, tcell.WheelDown, tcell.ModNone))
	if counts[screensaver.Scroll] != 1 {
		t.Errorf("Expected 1 scroll, got %d", counts[screensaver.Scroll])
	}
}

func TestHostResize(t *testing.T) {
	h := NewHost(newSimScreen(t, 20, 5))
	counts := countEmits(h)

	h.HandleEvent(tcell.NewEventResize(30, 10))
	if counts[screensaver.Resize] != 1 {
		t.Errorf("Expected 1 resize, got %d", counts[screensaver.Resize])
	}
}

func TestHostRendersStatusThenEffect(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	screen := newSimScreen(t, 60, 10)
	h := NewHost(screen)
	l := loop.New(epoch)

	c, err := screensaver.New(h, l, config.Options{Timeout: time.Minute, Mode: "dvdLogo", Seed: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer c.Close()

	h.Render(c)
	if line := rowText(screen, 9); !strings.Contains(line, "Screensaver in 01:00") {
		t.Errorf("Expected countdown status, got %q", line)
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !c.Active() {
		t.Fatal("Expected Escape to start the screensaver")
	}
	l.Tick(epoch.Add(time.Second / config.TerminalFPS))
	h.Render(c)

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != halfBlock {
		t.Errorf("Expected effect cells, got %q", mainc)
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if c.Active() {
		t.Error("Expected a key press to dismiss the screensaver")
	}
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(mainc)
	}
	return b.String()
}
