package terminal

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/vector"

	"github.com/iburimskiy/screensaver/internal/effect"
)

// halfBlock shows two vertical pixels per cell: foreground on top,
// background below.
const halfBlock = '▀'

// Canvas is an RGBA raster sized in terminal half-cells. Shapes are filled
// with an anti-aliasing rasterizer and pushed to the screen by Flush.
type Canvas struct {
	img     *image.RGBA
	rast    *vector.Rasterizer
	visible bool
}

// NewCanvas returns a w x h pixel canvas. A terminal of c columns and r rows
// maps to a c x 2r canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{rast: vector.NewRasterizer(1, 1)}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the raster. Content is not preserved.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if c.img != nil && c.img.Bounds().Dx() == w && c.img.Bounds().Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (c *Canvas) SetVisible(visible bool) { c.visible = visible }

func (c *Canvas) Visible() bool { return c.visible }

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	// Anything smaller than a pixel would vanish on a terminal grid.
	r = math.Max(r, 0.5)
	n := int(math.Max(8, math.Min(64, r*4)))
	pts := make([]effect.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = effect.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.fill(pts, col)
}

func (c *Canvas) FillPolygon(pts []effect.Point, col color.Color) {
	c.fill(pts, col)
}

func (c *Canvas) StrokePolyline(pts []effect.Point, width float64, col color.Color) {
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		c.fill([]effect.Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		}, col)
	}
	// Round joins and caps.
	for _, p := range pts {
		c.FillCircle(p.X, p.Y, half, col)
	}
}

// fill rasterises pts into their integer bounding box only, so a shape costs
// its own area rather than the whole canvas.
func (c *Canvas) fill(pts []effect.Point, col color.Color) {
	w, h := c.Size()
	pts = clip(pts, float64(w), float64(h))
	if len(pts) < 3 {
		return
	}

	box := bounds(pts, w, h)
	if box.Empty() {
		return
	}
	ox, oy := float64(box.Min.X), float64(box.Min.Y)

	c.rast.Reset(box.Dx(), box.Dy())
	c.rast.DrawOp = draw.Over
	c.rast.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		c.rast.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.rast.ClosePath()
	c.rast.Draw(c.img, box, image.NewUniform(col), image.Point{})
}

// bounds is the pixel rectangle covering pts, limited to the w x h canvas.
func bounds(pts []effect.Point, w, h int) image.Rectangle {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	return r.Intersect(image.Rect(0, 0, w, h))
}

// At returns the pixel at (x, y); out of range pixels are transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Flush paints the raster onto screen, two pixel rows per cell row.
func (c *Canvas) Flush(screen tcell.Screen) {
	cols, rows := screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := c.img.RGBAAt(x, 2*y)
			bottom := c.img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(rgb(top)).
				Background(rgb(bottom))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clip cuts a polygon down to the [0,w]x[0,h] rectangle (Sutherland-Hodgman).
func clip(pts []effect.Point, w, h float64) []effect.Point {
	edges := []struct {
		inside func(p effect.Point) bool
		cross  func(a, b effect.Point) effect.Point
	}{
		{
			func(p effect.Point) bool { return p.X >= 0 },
			func(a, b effect.Point) effect.Point { return atX(a, b, 0) },
		},
		{
			func(p effect.Point) bool { return p.X <= w },
			func(a, b effect.Point) effect.Point { return atX(a, b, w) },
		},
		{
			func(p effect.Point) bool { return p.Y >= 0 },
			func(a, b effect.Point) effect.Point { return atY(a, b, 0) },
		},
		{
			func(p effect.Point) bool { return p.Y <= h },
			func(a, b effect.Point) effect.Point { return atY(a, b, h) },
		},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]effect.Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b effect.Point, x float64) effect.Point {
	t := (x - a.X) / (b.X - a.X)
	return effect.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b effect.Point, y float64) effect.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return effect.Point{X: a.X + t*(b.X-a.X), Y: y}
}
