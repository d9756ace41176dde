package effect

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/screensaver/internal/config"
)

type star struct {
	x, y  float64
	z     float64
	size  float64
	color color.RGBA
}

// starField flies the viewer through a field of stars; stars that reach the
// viewer respawn at the back.
type starField struct {
	stars []star
	rng   *rand.Rand
	w, h  int
}

func newStarField(w, h int, rng *rand.Rand) *starField {
	f := &starField{stars: make([]star, config.StarCount), rng: rng, w: w, h: h}
	for i := range f.stars {
		f.spawn(&f.stars[i])
		f.stars[i].z = rng.Float64() * config.StarMaxDepth
	}
	return f
}

func (f *starField) Mode() Mode { return StarWarp }

// spawn places st at the back of the field at a random angle and radius.
func (f *starField) spawn(st *star) {
	half := math.Max(float64(f.w)/2, 1)
	angle := f.rng.Float64() * 2 * math.Pi
	distance := math.Sqrt(f.rng.Float64()) * half

	st.z = config.StarMaxDepth
	st.x = math.Cos(angle) * distance
	st.y = math.Sin(angle) * distance
	st.size = (1-distance/half)*0.1 + 0.5
	st.color = palette[f.rng.Intn(len(palette))]
}

func (f *starField) Step(w, h int) {
	f.w, f.h = w, h
	for i := range f.stars {
		st := &f.stars[i]
		// Closer stars move faster.
		st.z -= config.StarSpeed * (2 - st.z/config.StarMaxDepth)
		if st.z <= 0 {
			f.spawn(st)
		}
	}
}

func (f *starField) Draw(s Surface) {
	s.Clear(background)

	w, h := s.Size()
	for _, st := range f.stars {
		if st.z <= 0 {
			continue
		}
		x := st.x/st.z*float64(w)/2 + float64(w)/2
		y := st.y/st.z*float64(h)/2 + float64(h)/2
		r := (1 - st.z/config.StarMaxDepth) * st.size * 4
		s.FillCircle(x, y, r, st.color)
	}
}
