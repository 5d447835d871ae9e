package kanjiset

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineRecord is a single horizontal stroke crossing the canvas center.
var lineRecord = StrokeRecord{Char: '一', Paths: []string{"M11,64 L117,64"}}

func TestRender_BuildSVG(t *testing.T) {
	assert := assert.New(t)

	doc := string(BuildSVG(StrokeRecord{
		Char:  '二',
		Paths: []string{"M25.5,32.75c1.25,0.5", "M12.75,81.75c2.12,0.62"},
	}))

	assert.True(strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 128 128">`))
	assert.True(strings.HasSuffix(doc, "</svg>"))
	assert.Equal(2, strings.Count(doc, "<path "))
	assert.Contains(doc, `<path d="M25.5,32.75c1.25,0.5" stroke="black" fill="none"/>`)
	assert.Contains(doc, `<path d="M12.75,81.75c2.12,0.62" stroke="black" fill="none"/>`)
	assert.NotContains(doc, "width=")
	assert.NotContains(doc, "height=")
	assert.Less(strings.Index(doc, "M25.5"), strings.Index(doc, "M12.75"))
}

func TestRender_BuildSVGEscapesPathData(t *testing.T) {
	doc := string(BuildSVG(StrokeRecord{Char: '一', Paths: []string{`M1,1"/><script/>`}}))
	assert.NotContains(t, doc, "<script/>")
	assert.Equal(t, 1, strings.Count(doc, "<path "))
}

func TestRender_RasterizeLine(t *testing.T) {
	assert := assert.New(t)

	img, err := SVGRasterizer{}.Rasterize(BuildSVG(lineRecord))
	require.NoError(t, err)

	assert.Equal(image.Rect(0, 0, CanvasSize, CanvasSize), img.Bounds())

	// Nothing is drawn far away from the stroke.
	for _, p := range []image.Point{{0, 0}, {127, 0}, {0, 127}, {127, 127}, {64, 10}, {64, 120}, {2, 64}} {
		assert.Zero(img.RGBAAt(p.X, p.Y).A, "pixel %v should be transparent", p)
	}

	// The stroke covers the rows around y=64.
	var covered bool
	for y := 62; y <= 66; y++ {
		if img.RGBAAt(64, y).A > 0 {
			covered = true
		}
	}
	assert.True(covered, "the stroke should be drawn across the canvas center")

	// Strokes are black, so the premultiplied color channels stay zero everywhere.
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			t.Fatalf("non black pixel found at offset %d", i)
		}
	}
}

func TestRender_EmptyRecord(t *testing.T) {
	img, err := (&Renderer{}).Render(StrokeRecord{Char: '一'})
	require.NoError(t, err)

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("empty record should render a fully transparent image")
		}
	}
}

func TestRender_InvalidDocument(t *testing.T) {
	_, err := SVGRasterizer{}.Rasterize([]byte(`<svg viewBox="0 0 0 0"></svg>`))
	assert.Error(t, err)
}

type failingRasterizer struct{ err error }

func (f failingRasterizer) Rasterize([]byte) (*image.RGBA, error) { return nil, f.err }

func TestRender_RasterizerError(t *testing.T) {
	errBackend := errors.New("backend failure")
	r := &Renderer{Rasterizer: failingRasterizer{err: errBackend}}

	_, err := r.Render(lineRecord)
	assert.ErrorIs(t, err, errBackend)
	assert.Contains(t, err.Error(), "一")
}
