package effect

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/screensaver/internal/config"
)

// Screen edges a toaster can re-enter from.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

type toaster struct {
	x, y      float64
	vx, vy    float64
	size      float64
	countdown float64 // frames until the next possible direction change
	delay     float64 // frames before the colour starts fading
	fade      fade
}

func (t *toaster) box() (w, h float64) {
	scale := t.size / 30
	return config.ToasterLogoWidth * scale, config.ToasterLogoHeight * scale
}

// toasterFleet flies logos across the screen, wrapping them back in from a
// random edge once they leave it.
type toasterFleet struct {
	toasters []toaster
	rng      *rand.Rand
}

func newToasterFleet(w, h int, rng *rand.Rand) *toasterFleet {
	f := &toasterFleet{toasters: make([]toaster, config.ToasterCount), rng: rng}
	for i := range f.toasters {
		f.toasters[i] = toaster{
			x:         rng.Float64() * float64(w),
			y:         rng.Float64() * float64(h),
			vx:        randomSign(rng) * (rng.Float64()*2 + 1),
			vy:        randomSign(rng) * (rng.Float64() + 0.5),
			size:      rng.Float64()*20 + 30,
			countdown: f.countdown(),
			delay:     rng.Float64() * 100,
			fade:      newFade(rng.Intn(len(palette)), rng.Float64(), 0.0002+rng.Float64()*0.001),
		}
	}
	return f
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

func (f *toasterFleet) countdown() float64 {
	return f.rng.Float64()*config.ToasterCountdownSpan + config.ToasterMinCountdown
}

func (f *toasterFleet) Mode() Mode { return Toasters }

func (f *toasterFleet) Step(w, h int) {
	cw, ch := float64(w), float64(h)

	for i := range f.toasters {
		t := &f.toasters[i]

		if t.delay > 0 {
			t.delay--
		} else {
			t.fade.advance()
		}

		t.x += t.vx
		t.y += t.vy

		t.countdown--
		if t.countdown <= 0 {
			switch r := f.rng.Float64(); {
			case r < 0.2:
				t.vx = -t.vx
			case r < 0.4:
				t.vy = -t.vy
			case r < 0.5:
				t.vx, t.vy = -t.vx, -t.vy
			}
			t.countdown = f.countdown()
		}

		bw, bh := t.box()
		if t.x < -bw || t.x > cw+bw || t.y < -bh || t.y > ch+bh {
			f.reenter(t, cw, ch, bw, bh)
		}
	}
}

// reenter puts t back on a random edge heading into the screen.
func (f *toasterFleet) reenter(t *toaster, cw, ch, bw, bh float64) {
	switch f.rng.Intn(4) {
	case edgeTop:
		t.x, t.y = f.rng.Float64()*cw, -bh
		t.vy = math.Abs(t.vy)
	case edgeRight:
		t.x, t.y = cw+bw, f.rng.Float64()*ch
		t.vx = -math.Abs(t.vx)
	case edgeBottom:
		t.x, t.y = f.rng.Float64()*cw, ch+bh
		t.vy = -math.Abs(t.vy)
	default:
		t.x, t.y = -bw, f.rng.Float64()*ch
		t.vx = math.Abs(t.vx)
	}
	t.countdown = f.countdown()
}

func (f *toasterFleet) Draw(s Surface) {
	s.Clear(background)

	for _, t := range f.toasters {
		accent := palette[t.fade.index]
		if t.delay <= 0 {
			accent = t.fade.color()
		}
		// A slight tilt with the heading, never enough to flip the logo.
		tilt := math.Sin(math.Atan2(t.vy, t.vx)) * config.ToasterMaxTilt
		bw, bh := t.box()
		drawLogo(s, t.x, t.y, bw, bh, tilt, accent)
	}
}
