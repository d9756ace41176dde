package effect

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/screensaver/internal/config"
)

// dvdBounce is the single logo bouncing off the screen edges. The colour
// fades slowly and jumps to the next palette entry on every bounce.
type dvdBounce struct {
	x, y        float64
	vx, vy      float64
	w, h        float64
	fade        fade
	justBounced bool
}

func newDvdBounce(w, h int, rng *rand.Rand) *dvdBounce {
	speed := func() float64 {
		return randomSign(rng) * (rng.Float64()*config.DvdSpeedSpan + config.DvdMinSpeed)
	}
	return &dvdBounce{
		x:    rng.Float64() * math.Max(float64(w)-config.DvdLogoWidth, 0),
		y:    rng.Float64() * math.Max(float64(h)-config.DvdLogoHeight, 0),
		vx:   speed(),
		vy:   speed(),
		w:    config.DvdLogoWidth,
		h:    config.DvdLogoHeight,
		fade: newFade(0, 0, config.DvdTransitionRate),
	}
}

func (d *dvdBounce) Mode() Mode { return DvdLogo }

func (d *dvdBounce) Step(w, h int) {
	if d.justBounced {
		d.justBounced = false
	} else {
		d.fade.advance()
	}

	d.x += d.vx
	d.y += d.vy

	cw, ch := float64(w), float64(h)
	collided := false

	if d.x+d.w > cw {
		d.vx = -math.Abs(d.vx)
		d.x = cw - d.w
		collided = true
	} else if d.x < 0 {
		d.vx = math.Abs(d.vx)
		d.x = 0
		collided = true
	}

	if d.y+d.h > ch {
		d.vy = -math.Abs(d.vy)
		d.y = ch - d.h
		collided = true
	} else if d.y < 0 {
		d.vy = math.Abs(d.vy)
		d.y = 0
		collided = true
	}

	if collided {
		d.bounce()
	}
}

// bounce switches colour immediately. If the fade had already reached the
// next entry visually, skip one more so the change is always visible.
func (d *dvdBounce) bounce() {
	before := d.fade.color()
	d.fade.snap()
	if d.fade.color() == before {
		d.fade.snap()
	}
	d.justBounced = true
}

func (d *dvdBounce) Draw(s Surface) {
	s.Clear(background)
	drawLogo(s, d.x, d.y, d.w, d.h, 0, d.fade.color())
}
