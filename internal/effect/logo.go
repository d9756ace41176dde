package effect

import (
	"image/color"
	"math"
)

// Logo design grid, scaled to the requested box when drawn.
const (
	logoGridWidth  = 246.0
	logoGridHeight = 123.0
)

var (
	logoDark = [][]Point{
		{{123, 0}, {123, 123}, {61.5, 61.5}},
		{{246, 123}, {123, 123}, {184.5, 61.5}},
	}
	logoAccent = [][]Point{
		{{0, 123}, {0, 0}, {123, 123}},
		{{123, 0}, {246, 0}, {123, 123}},
	}
	logoInk = color.RGBA{A: 0xFF}
)

// drawLogo paints the logo into the w x h box at (x, y), rotated by tilt
// radians around the box centre.
func drawLogo(s Surface, x, y, w, h, tilt float64, accent color.Color) {
	cx, cy := x+w/2, y+h/2
	sx, sy := w/logoGridWidth, h/logoGridHeight
	sin, cos := math.Sincos(tilt)

	place := func(tri []Point) []Point {
		out := make([]Point, len(tri))
		for i, p := range tri {
			px := (p.X - logoGridWidth/2) * sx
			py := (p.Y - logoGridHeight/2) * sy
			out[i] = Point{X: cx + px*cos - py*sin, Y: cy + px*sin + py*cos}
		}
		return out
	}

	for _, tri := range logoDark {
		s.FillPolygon(place(tri), logoInk)
	}
	for _, tri := range logoAccent {
		s.FillPolygon(place(tri), accent)
	}
}
