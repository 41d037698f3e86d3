package gocursor

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// A Pixmap is a rectangular, row-major pixel buffer with its top row first.
// The buffer's 32-bit pixel words are read through ByteOrder, which defaults
// to the host's native order.
type Pixmap struct {
	width  int
	height int
	format Format
	order  binary.ByteOrder
	pix    []byte
}

// NewPixmap returns a zeroed pixmap of the given size and format.
func NewPixmap(width, height int, format Format) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		format: format,
		order:  binary.NativeEndian,
		pix:    make([]byte, format.ImageBytes(width, height)),
	}
}

// NewPixmapFromBytes wraps an existing buffer. The buffer is not copied and
// must be exactly the size the format requires.
func NewPixmapFromBytes(width, height int, format Format, pix []byte) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative pixmap size %dx%d", width, height)
	}
	if want := format.ImageBytes(width, height); len(pix) != want {
		return nil, fmt.Errorf("pixmap buffer of %d bytes does not match %dx%d %s (%d bytes)",
			len(pix), width, height, format, want)
	}
	return &Pixmap{
		width:  width,
		height: height,
		format: format,
		order:  binary.NativeEndian,
		pix:    pix,
	}, nil
}

// PixmapFromImage converts any image into an RGBA8888 pixmap with
// non-premultiplied channels.
func PixmapFromImage(img image.Image) *Pixmap {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	p := NewPixmap(bounds.Dx(), bounds.Dy(), FormatRGBA8888)
	for y := 0; y < p.height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+p.Stride()]
		copy(p.pix[y*p.Stride():], src)
	}
	return p
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Format returns the pixel format.
func (p *Pixmap) Format() Format { return p.format }

// ByteOrder returns the order pixel words are read in.
func (p *Pixmap) ByteOrder() binary.ByteOrder { return p.order }

// SetByteOrder changes the order pixel words are read in. A nil order resets
// it to the host's native order.
func (p *Pixmap) SetByteOrder(order binary.ByteOrder) {
	if order == nil {
		order = binary.NativeEndian
	}
	p.order = order
}

// Pix returns the underlying buffer.
func (p *Pixmap) Pix() []byte { return p.pix }

// Stride returns the number of bytes between vertically adjacent pixels.
func (p *Pixmap) Stride() int {
	return p.width * p.format.BytesPerPixel()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Pixmap) PixOffset(x, y int) int {
	return y*p.Stride() + x*p.format.BytesPerPixel()
}

// SetNRGBA sets the pixel at (x, y) of an RGBA8888 pixmap. Out of bounds
// coordinates and other formats are ignored.
func (p *Pixmap) SetNRGBA(x, y int, c color.NRGBA) {
	if p.format != FormatRGBA8888 || !p.inBounds(x, y) {
		return
	}
	i := p.PixOffset(x, y)
	p.pix[i+0] = c.R
	p.pix[i+1] = c.G
	p.pix[i+2] = c.B
	p.pix[i+3] = c.A
}

// NRGBAAt returns the pixel at (x, y) of an RGBA8888 pixmap.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	if p.format != FormatRGBA8888 || !p.inBounds(x, y) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	return color.NRGBA{R: p.pix[i+0], G: p.pix[i+1], B: p.pix[i+2], A: p.pix[i+3]}
}

// Image returns an RGBA8888 pixmap as an image sharing its buffer.
func (p *Pixmap) Image() (*image.NRGBA, error) {
	if p.format != FormatRGBA8888 {
		return nil, &InvalidFormatError{Format: p.format}
	}
	return &image.NRGBA{
		Pix:    p.pix,
		Stride: p.Stride(),
		Rect:   image.Rect(0, 0, p.width, p.height),
	}, nil
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}
