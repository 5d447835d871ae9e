package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreshold_WhiteBackground(t *testing.T) {
	assert := assert.New(t)

	rect := image.Rect(0, 0, 10, 10)
	src := image.NewRGBA(rect)

	// Opaque stroke on the left half, a semi transparent edge column next to it.
	draw.Draw(src, image.Rect(0, 0, 4, 10), &image.Uniform{color.RGBA{A: 0xff}}, image.Point{}, draw.Src)
	draw.Draw(src, image.Rect(4, 0, 5, 10), &image.Uniform{color.RGBA{A: 0x20}}, image.Point{}, draw.Src)

	dst := WhiteBackground(src)

	assert.Equal(rect, dst.Bounds())
	assert.EqualValues(black, dst.At(0, 0))
	assert.EqualValues(black, dst.At(4, 9))
	assert.EqualValues(white, dst.At(5, 5))
	assert.EqualValues(white, dst.At(9, 9))
	assert.True(dst.Opaque())
	assert.True(IsBinary(dst))
}

func TestThreshold_TransparentImage(t *testing.T) {
	assert := assert.New(t)

	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	dst := WhiteBackground(src)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.EqualValues(white, dst.At(x, y))
		}
	}
}

func TestThreshold_NonRGBASource(t *testing.T) {
	assert := assert.New(t)

	// The bounds do not start at the origin and the source is not premultiplied.
	src := image.NewNRGBA(image.Rect(-2, -2, 6, 6))
	src.SetNRGBA(-2, -2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 1})
	src.SetNRGBA(5, 5, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})

	dst := WhiteBackground(src)

	assert.Equal(image.Rect(0, 0, 8, 8), dst.Bounds())
	assert.EqualValues(black, dst.At(0, 0))
	assert.EqualValues(white, dst.At(7, 7))
	assert.EqualValues(white, dst.At(3, 3))
	assert.True(IsBinary(dst))
}

func TestThreshold_IsBinary(t *testing.T) {
	assert := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), &image.Uniform{white}, image.Point{}, draw.Src)
	assert.True(IsBinary(img))

	img.SetRGBA(1, 1, black)
	assert.True(IsBinary(img))

	img.SetRGBA(2, 2, color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff})
	assert.False(IsBinary(img))

	assert.False(IsBinary(image.NewRGBA(image.Rect(0, 0, 1, 1))))
}
