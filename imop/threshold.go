// Package imop implements the pixel level operations applied on the rendered glyphs.
//
// The rasterizer produces glyphs drawn in black on a fully transparent canvas.
// WhiteBackground flattens such a glyph over a white backdrop. Unlike the
// source-over composition of the image/draw core package it does not blend:
// the alpha channel is thresholded, so every pixel touched by a stroke
// (including the antialiased edge pixels) becomes pure black and every
// untouched pixel becomes pure white.
package imop

import (
	"image"
	"image/color"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// WhiteBackground converts a transparent background image into an opaque black and white image.
// A pixel with zero alpha becomes white, any other pixel becomes black.
// The resulting image is fully opaque, so it encodes as a three channel image.
func WhiteBackground(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if src, ok := src.(*image.RGBA); ok {
		for y := 0; y < bounds.Dy(); y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := dst.PixOffset(0, y)
			for x := 0; x < bounds.Dx(); x++ {
				c := black
				if src.Pix[si+3] == 0 {
					c = white
				}
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				si += 4
				di += 4
			}
		}
		return dst
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			_, _, _, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				dst.SetRGBA(x, y, white)
			} else {
				dst.SetRGBA(x, y, black)
			}
		}
	}
	return dst
}

// IsBinary reports whether every pixel of the image is either opaque white or opaque black.
func IsBinary(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c != white && c != black {
				return false
			}
		}
	}
	return true
}
