package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/screensaver/internal/effect"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the texture for solid triangle fills. The centre
	// pixel avoids sampling the image edge.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas is an offscreen ebiten image the effects draw onto.
type Canvas struct {
	img     *ebiten.Image
	visible bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image when the size changes. Content is not
// preserved.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
	}
	old := c.img
	c.img = ebiten.NewImage(w, h)
	if old != nil {
		old.Deallocate()
	}
}

func (c *Canvas) SetVisible(visible bool) { c.visible = visible }

func (c *Canvas) Visible() bool { return c.visible }

func (c *Canvas) Clear(col color.Color) {
	c.img.Fill(col)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), col, true)
}

func (c *Canvas) FillPolygon(pts []effect.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.vertices, c.indices = fillVertices(pts, col, c.vertices[:0], c.indices[:0])
	c.img.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *Canvas) StrokePolyline(pts []effect.Point, width float64, col color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(c.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, true)
	}
	// Round joins.
	for _, p := range pts {
		c.FillCircle(p.X, p.Y, width/2, col)
	}
}

// fillVertices appends the triangles covering the polygon pts, tinted col.
func fillVertices(pts []effect.Point, col color.Color, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	start := len(vs)
	vs, is = path.AppendVerticesAndIndicesForFilling(vs, is)

	r, g, b, a := col.RGBA()
	for i := start; i < len(vs); i++ {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	return vs, is
}
