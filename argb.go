package gocursor

import (
	"image"
	"image/color"
)

// An ARGBImage holds converted cursor pixels as the bytes A, R, G, B with
// channels not premultiplied. Its rows are in the order the native cursor
// API expects, which is upside down relative to the source pixmap.
type ARGBImage struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewARGBImage returns a transparent image of the given size.
func NewARGBImage(width, height int) *ARGBImage {
	return &ARGBImage{
		Pix:    make([]byte, 4*width*height),
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// ColorModel returns color.NRGBAModel.
func (img *ARGBImage) ColorModel() color.Model { return color.NRGBAModel }

// Bounds returns the image bounds.
func (img *ARGBImage) Bounds() image.Rectangle { return img.Rect }

// At returns the color at (x, y).
func (img *ARGBImage) At(x, y int) color.Color {
	return img.NRGBAAt(x, y)
}

// NRGBAAt returns the color at (x, y) or the zero color when out of bounds.
func (img *ARGBImage) NRGBAAt(x, y int) color.NRGBA {
	if !image.Pt(x, y).In(img.Rect) {
		return color.NRGBA{}
	}
	i := img.PixOffset(x, y)
	return color.NRGBA{A: img.Pix[i+0], R: img.Pix[i+1], G: img.Pix[i+2], B: img.Pix[i+3]}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (img *ARGBImage) PixOffset(x, y int) int {
	return (y-img.Rect.Min.Y)*img.Stride + (x-img.Rect.Min.X)*4
}
