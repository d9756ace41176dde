package game

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/iburimskiy/screensaver/internal/config"
	"github.com/iburimskiy/screensaver/internal/effect"
	"github.com/iburimskiy/screensaver/internal/loop"
	"github.com/iburimskiy/screensaver/internal/screensaver"
)

func TestLayoutReportsResize(t *testing.T) {
	g := NewGame(loop.New(time.Now()), 800, 600)

	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Expected 800x600 layout, got %dx%d", w, h)
	}
	if g.resized {
		t.Error("Expected no resize for an unchanged size")
	}

	g.Layout(1280, 720)
	if w, h := g.Viewport(); w != 1280 || h != 720 {
		t.Errorf("Expected 1280x720 viewport, got %dx%d", w, h)
	}
	if !g.resized {
		t.Error("Expected a pending resize")
	}
}

func TestAcquireCanvasWithoutSize(t *testing.T) {
	g := NewGame(loop.New(time.Now()), 0, 0)

	_, err := screensaver.New(g, loop.New(time.Now()), config.Options{})
	if !errors.Is(err, screensaver.ErrNoCanvas) {
		t.Errorf("Expected ErrNoCanvas, got %v", err)
	}
	if !errors.Is(err, ErrNoViewport) {
		t.Errorf("Expected the viewport cause to be kept, got %v", err)
	}
}

func TestTPSFollowsActivity(t *testing.T) {
	if got := tpsFor(true); got != config.ActiveTPS {
		t.Errorf("Expected %d TPS while active, got %d", config.ActiveTPS, got)
	}
	if got := tpsFor(false); got != config.IdleTPS {
		t.Errorf("Expected %d TPS while idle, got %d", config.IdleTPS, got)
	}
}

func TestFillVertices(t *testing.T) {
	col := color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	quad := []effect.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	vs, is := fillVertices(quad, col, nil, nil)
	if len(vs) < 4 {
		t.Fatalf("Expected at least 4 vertices, got %d", len(vs))
	}
	if len(is)%3 != 0 || len(is) == 0 {
		t.Fatalf("Expected whole triangles, got %d indices", len(is))
	}
	for i, v := range vs {
		if v.ColorR != 1 || v.ColorG != 0 || v.ColorB != 1 || v.ColorA != 1 {
			t.Errorf("Vertex %d: expected magenta, got %v,%v,%v,%v", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Errorf("Vertex %d: expected white texel source, got %v,%v", i, v.SrcX, v.SrcY)
		}
	}
	for _, idx := range is {
		if int(idx) >= len(vs) {
			t.Errorf("Index %d out of range", idx)
		}
	}
}
