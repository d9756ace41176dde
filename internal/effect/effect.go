// Package effect holds the four screensaver animations and the drawing
// contract they render through.
//
// Each effect owns its particle set. Step advances it by one frame for the
// given canvas size and Draw paints the current state. Effects share no
// state with each other.
package effect

import (
	"image/color"
	"math/rand"
)

// Mode names one of the four animations.
type Mode int

const (
	StarWarp Mode = iota
	Pipes
	Toasters
	DvdLogo
)

// Modes lists every valid mode in declaration order.
var Modes = []Mode{StarWarp, Pipes, Toasters, DvdLogo}

var modeNames = [...]string{"starWarp", "pipes", "toasters", "dvdLogo"}

func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeNames[m]
}

// Valid reports whether m is one of the four modes.
func (m Mode) Valid() bool {
	return m >= StarWarp && m <= DvdLogo
}

// ParseMode maps a mode name back to its Mode. Unknown names report false.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return 0, false
}

// Random picks a mode uniformly.
func Random(rng *rand.Rand) Mode {
	return Modes[rng.Intn(len(Modes))]
}

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Surface is the canvas an effect paints on.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	FillPolygon(pts []Point, c color.Color)
	// StrokePolyline draws connected segments with round joins.
	StrokePolyline(pts []Point, width float64, c color.Color)
}

// Effect is one running animation.
type Effect interface {
	Mode() Mode
	Step(w, h int)
	Draw(s Surface)
}

// New builds a fresh particle set for mode sized to a w x h canvas.
// Invalid modes fall back to StarWarp.
func New(mode Mode, w, h int, rng *rand.Rand) Effect {
	switch mode {
	case Pipes:
		return newPipeSet(w, h, rng)
	case Toasters:
		return newToasterFleet(w, h, rng)
	case DvdLogo:
		return newDvdBounce(w, h, rng)
	default:
		return newStarField(w, h, rng)
	}
}
