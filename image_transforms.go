package gocursor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PadToPowerOfTwo places img in the top left corner of a transparent canvas
// whose sides are the next powers of two. Pixels are not resampled.
func PadToPowerOfTwo(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width, height := nextPowerOfTwo(bounds.Dx()), nextPowerOfTwo(bounds.Dy())
	dst := imaging.New(width, height, color.NRGBA{0, 0, 0, 0})
	return imaging.Paste(dst, img, image.Pt(0, 0))
}

// ResizeToPowerOfTwo stretches img up to the next power of two in each
// dimension using nearest neighbor sampling.
func ResizeToPowerOfTwo(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width, height := nextPowerOfTwo(bounds.Dx()), nextPowerOfTwo(bounds.Dy())
	if width == bounds.Dx() && height == bounds.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, width, height, imaging.NearestNeighbor)
}

// ScaleHotspotTo maps a hotspot from one image size to another, clamping it
// into the new bounds.
func ScaleHotspotTo(hotspot image.Point, from, to image.Point) image.Point {
	if from.X <= 0 || from.Y <= 0 {
		return image.Point{}
	}
	x := hotspot.X * to.X / from.X
	y := hotspot.Y * to.Y / from.Y
	if x >= to.X {
		x = to.X - 1
	}
	if y >= to.Y {
		y = to.Y - 1
	}
	return image.Pt(x, y)
}
