package kanjiset

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// CanvasSize is the side of the square viewBox the KanjiVG strokes are drawn in.
const CanvasSize = 128

// Rasterizer converts an SVG document into a bitmap.
type Rasterizer interface {
	Rasterize(doc []byte) (*image.RGBA, error)
}

// SVGRasterizer rasterizes SVG documents with oksvg.
// The output size is derived from the document viewBox, one pixel per user unit.
type SVGRasterizer struct{}

var _ Rasterizer = SVGRasterizer{}

// Rasterize draws the SVG document on a transparent canvas.
func (SVGRasterizer) Rasterize(doc []byte) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("could not read the svg document: %w", err)
	}

	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid svg viewbox: %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1)

	return img, nil
}

// Renderer turns stroke records into transparent background bitmaps.
type Renderer struct {
	Rasterizer Rasterizer
}

// Render builds the SVG document of the record and rasterizes it.
func (r *Renderer) Render(rec StrokeRecord) (*image.RGBA, error) {
	rasterizer := r.Rasterizer
	if rasterizer == nil {
		rasterizer = SVGRasterizer{}
	}

	img, err := rasterizer.Rasterize(BuildSVG(rec))
	if err != nil {
		return nil, fmt.Errorf("could not rasterize %q: %w", string(rec.Char), err)
	}
	return img, nil
}

// BuildSVG returns the SVG document of the record: one black, unfilled path per stroke
// inside a CanvasSize x CanvasSize viewBox. The document has no width and height
// attributes, so the rasterizer picks the output size from the viewBox.
func BuildSVG(rec StrokeRecord) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, CanvasSize, CanvasSize)
	buf.WriteByte('\n')
	for _, d := range rec.Paths {
		buf.WriteString(`<path d="`)
		xml.EscapeText(&buf, []byte(d))
		buf.WriteString(`" stroke="black" fill="none"/>`)
		buf.WriteByte('\n')
	}
	buf.WriteString(`</svg>`)

	return buf.Bytes()
}
