package effect

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/iburimskiy/screensaver/internal/config"
)

var (
	palette    = mustPalette(config.Palette)
	background = MustHex(config.Background)
)

// ParseHex decodes a #RRGGBB colour.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// MustHex is ParseHex for compile-time constants.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func mustPalette(hex []string) []color.RGBA {
	out := make([]color.RGBA, len(hex))
	for i, h := range hex {
		out[i] = MustHex(h)
	}
	return out
}

// Interpolate blends a towards b channel by channel; factor is clamped to [0, 1].
func Interpolate(a, b color.RGBA, factor float64) color.RGBA {
	f := clamp01(factor)
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fade walks through the palette, blending from index towards next.
type fade struct {
	index, next int
	factor      float64
	rate        float64
}

func newFade(index int, factor, rate float64) fade {
	return fade{index: index, next: (index + 1) % len(palette), factor: factor, rate: rate}
}

func (f *fade) advance() {
	f.factor += f.rate
	if f.factor >= 1 {
		f.snap()
	}
}

// snap jumps straight to the next palette entry.
func (f *fade) snap() {
	f.index = f.next
	f.next = (f.index + 1) % len(palette)
	f.factor = 0
}

func (f fade) color() color.RGBA {
	return Interpolate(palette[f.index], palette[f.next], f.factor)
}
