package effect

import "image/color"

// recordSurface counts draw calls instead of painting.
type recordSurface struct {
	w, h      int
	clears    int
	clearedTo color.Color
	circles   int
	polygons  int
	strokes   int
	accents   []color.Color
}

func newRecordSurface(w, h int) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (r *recordSurface) Size() (int, int) { return r.w, r.h }

func (r *recordSurface) Clear(c color.Color) {
	r.clears++
	r.clearedTo = c
}

func (r *recordSurface) FillCircle(cx, cy, rad float64, c color.Color) { r.circles++ }

func (r *recordSurface) FillPolygon(pts []Point, c color.Color) {
	r.polygons++
	if c != logoInk {
		r.accents = append(r.accents, c)
	}
}

func (r *recordSurface) StrokePolyline(pts []Point, width float64, c color.Color) { r.strokes++ }
