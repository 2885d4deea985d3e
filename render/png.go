// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/aclements/go-plotaxis/chart"
	"github.com/aclements/go-plotaxis/plotter"
)

// supersample is the factor shapes are rasterized at before scaling
// down to the output size.
const supersample = 2

// PNG lays out c according to l and writes it and elems to w as a PNG
// image.
func PNG(w io.Writer, c *chart.Chart, l Layout, elems []plotter.Element) error {
	img, err := Image(c, l, elems)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image lays out c according to l and draws it and elems to a new
// image.
func Image(c *chart.Chart, l Layout, elems []plotter.Element) (*image.RGBA, error) {
	area := l.Apply(c)
	big := image.NewRGBA(image.Rect(0, 0, l.Width*supersample, l.Height*supersample))
	draw.Draw(big, big.Bounds(), image.White, image.Point{}, draw.Src)

	s := &pngSurface{img: big, off: area.Min}
	if err := drawChart(s, c, l, elems); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.BiLinear.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)

	// Text is drawn at the output resolution because the font is a
	// fixed-size bitmap.
	face := basicfont.Face7x13
	for _, t := range s.texts {
		adv := font.MeasureString(face, t.s).Ceil()
		x := t.x
		switch t.a {
		case anchorMiddle:
			x -= adv / 2
		case anchorEnd:
			x -= adv
		}
		d := font.Drawer{Dst: dst, Src: image.NewUniform(t.c), Face: face, Dot: fixed.P(x, t.y)}
		d.DrawString(t.s)
	}
	return dst, nil
}

type pngText struct {
	x, y int
	s    string
	a    anchor
	c    color.Color
}

// pngSurface rasterizes onto a supersampled image. off is the plot
// area origin in output pixels.
type pngSurface struct {
	img   *image.RGBA
	off   image.Point
	z     *vector.Rasterizer
	texts []pngText
}

func (p *pngSurface) pt(x, y float64) (float32, float32) {
	return float32((x + float64(p.off.X)) * supersample), float32((y + float64(p.off.Y)) * supersample)
}

// fill rasterizes the closed polygon xs, ys in plot-area coordinates.
func (p *pngSurface) fill(xs, ys []float64, c color.Color) {
	b := p.img.Bounds()
	if p.z == nil {
		p.z = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		p.z.Reset(b.Dx(), b.Dy())
	}
	z := p.z
	for i := range xs {
		x, y := p.pt(xs[i], ys[i])
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(p.img, b, image.NewUniform(c), image.Point{})
}

// segment fills a line segment of the given width as a quadrilateral.
func (p *pngSurface) segment(x1, y1, x2, y2, width float64, c color.Color) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	p.fill(
		[]float64{x1 + nx, x2 + nx, x2 - nx, x1 - nx},
		[]float64{y1 + ny, y2 + ny, y2 - ny, y1 - ny},
		c)
}

func (p *pngSurface) Polyline(xs, ys []float64, c color.Color) {
	for i := 1; i < len(xs); i++ {
		p.segment(xs[i-1], ys[i-1], xs[i], ys[i], 1.5, c)
	}
}

func (p *pngSurface) Rect(x, y, w, h float64, c color.Color) {
	p.fill([]float64{x, x + w, x + w, x}, []float64{y, y, y + h, y + h}, c)
}

func (p *pngSurface) Circle(x, y, r float64, c color.Color) {
	const n = 24
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		a := 2 * math.Pi * float64(i) / n
		xs[i], ys[i] = x+r*math.Cos(a), y+r*math.Sin(a)
	}
	p.fill(xs, ys, c)
}

func (p *pngSurface) Line(x1, y1, x2, y2 float64, c color.Color) {
	p.segment(x1, y1, x2, y2, 1, c)
}

func (p *pngSurface) Text(x, y float64, s string, a anchor, c color.Color) {
	p.texts = append(p.texts, pngText{
		x: int(math.Round(x)) + p.off.X,
		y: int(math.Round(y)) + p.off.Y,
		s: s, a: a, c: c,
	})
}
