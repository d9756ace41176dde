package effect

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/iburimskiy/screensaver/internal/config"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("Expected %q to parse to %v, got %v (ok=%v)", m.String(), m, got, ok)
		}
	}

	for _, name := range []string{"", "StarWarp", "matrix", "dvd"} {
		if _, ok := ParseMode(name); ok {
			t.Errorf("Expected %q to be rejected", name)
		}
	}

	if Mode(7).Valid() {
		t.Error("Expected Mode(7) to be invalid")
	}
}

func TestNewBuildsRequestedMode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, m := range Modes {
		if got := New(m, 800, 600, rng).Mode(); got != m {
			t.Errorf("Expected effect for %v, got %v", m, got)
		}
	}
	if got := New(Mode(42), 800, 600, rng).Mode(); got != StarWarp {
		t.Errorf("Expected invalid mode to fall back to StarWarp, got %v", got)
	}
}

func TestRandomCoversAllModes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[Mode]bool{}
	for i := 0; i < 200; i++ {
		seen[Random(rng)] = true
	}
	if len(seen) != len(Modes) {
		t.Errorf("Expected all %d modes to be picked, got %v", len(Modes), seen)
	}
}

func TestEveryEffectDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, m := range Modes {
		e := New(m, 640, 480, rng)
		s := newRecordSurface(640, 480)
		e.Step(640, 480)
		e.Draw(s)

		if s.clears != 1 {
			t.Errorf("%v: expected one clear per frame, got %d", m, s.clears)
		}
		if s.clearedTo != background {
			t.Errorf("%v: expected white background, got %v", m, s.clearedTo)
		}
		if s.circles+s.polygons+s.strokes == 0 {
			t.Errorf("%v: expected some shapes to be drawn", m)
		}
	}
}

func TestInterpolate(t *testing.T) {
	a := MustHex("#FF00FF")
	b := MustHex("#FFFF00")

	if got := Interpolate(a, b, 0); got != a {
		t.Errorf("Expected factor 0 to give %v, got %v", a, got)
	}
	if got := Interpolate(a, b, 1); got != b {
		t.Errorf("Expected factor 1 to give %v, got %v", b, got)
	}
	want := color.RGBA{R: 0xFF, G: 128, B: 128, A: 0xFF}
	if got := Interpolate(a, b, 0.5); got != want {
		t.Errorf("Expected midpoint %v, got %v", want, got)
	}
	if got := Interpolate(a, b, 3); got != b {
		t.Errorf("Expected factor to clamp to 1, got %v", got)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#00FFFF")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("Expected cyan, got %v", c)
	}

	for _, bad := range []string{"00FFFF", "#00FFF", "#GGGGGG", ""} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestFadeWrapsPalette(t *testing.T) {
	f := newFade(len(config.Palette)-1, 0.99, 0.02)
	f.advance()
	if f.index != 0 || f.next != 1 || f.factor != 0 {
		t.Errorf("Expected fade to wrap to index 0, got %+v", f)
	}
}
