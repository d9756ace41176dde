package effect

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/screensaver/internal/config"
)

// Direction a pipe grows in.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) reverse() Direction { return (d + 2) % 4 }

func (d Direction) step(x, y float64) (float64, float64) {
	switch d {
	case Up:
		return x, y - config.PipeSegmentLength
	case Right:
		return x + config.PipeSegmentLength, y
	case Down:
		return x, y + config.PipeSegmentLength
	default:
		return x - config.PipeSegmentLength, y
	}
}

type segment struct {
	x, y float64
	dir  Direction
}

type pipe struct {
	segments []segment
	color    color.RGBA
}

// pipeSet grows a handful of pipes one segment per frame, keeping only the
// newest maxSegments joints of each.
type pipeSet struct {
	pipes       []pipe
	rng         *rand.Rand
	maxSegments int
}

func newPipeSet(w, h int, rng *rand.Rand) *pipeSet {
	p := &pipeSet{
		pipes:       make([]pipe, config.PipeCount),
		rng:         rng,
		maxSegments: config.PipeMaxSegments,
	}
	for i := range p.pipes {
		p.pipes[i] = pipe{
			segments: append(make([]segment, 0, p.maxSegments+1), segment{
				x:   rng.Float64() * float64(w),
				y:   rng.Float64() * float64(h),
				dir: Direction(rng.Intn(4)),
			}),
			color: palette[rng.Intn(len(palette))],
		}
	}
	return p
}

func (p *pipeSet) Mode() Mode { return Pipes }

func (p *pipeSet) Step(w, h int) {
	for i := range p.pipes {
		pp := &p.pipes[i]
		last := pp.segments[len(pp.segments)-1]

		dir := last.dir
		if p.rng.Float64() < config.PipeTurnProbability {
			dir = Direction(p.rng.Intn(4))
		}

		x, y := dir.step(last.x, last.y)
		if x < 0 || x > float64(w) || y < 0 || y > float64(h) {
			dir = dir.reverse()
			x, y = dir.step(last.x, last.y)
		}

		pp.segments = append(pp.segments, segment{x: x, y: y, dir: dir})
		if n := len(pp.segments) - p.maxSegments; n > 0 {
			pp.segments = append(pp.segments[:0], pp.segments[n:]...)
		}
	}
}

func (p *pipeSet) Draw(s Surface) {
	s.Clear(background)

	for _, pp := range p.pipes {
		pts := make([]Point, len(pp.segments))
		for i, seg := range pp.segments {
			pts[i] = Point{X: seg.x, Y: seg.y}
		}
		s.StrokePolyline(pts, config.PipeLineWidth, pp.color)
	}
}
