package gocursor

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// ScalePixmap upscales an RGBA8888 pixmap by an integer factor for high-DPI
// displays. The factor must be a power of two so power of two pixmaps stay
// valid cursor sources.
func ScalePixmap(p *Pixmap, factor int) (*Pixmap, error) {
	if !isPowerOfTwo(factor) {
		return nil, fmt.Errorf("scale factor %d is not a power-of-two greater than zero", factor)
	}
	src, err := p.Image()
	if err != nil {
		return nil, err
	}
	if factor == 1 {
		out := NewPixmap(p.width, p.height, p.format)
		copy(out.pix, p.pix)
		out.order = p.order
		return out, nil
	}
	scaled := resize.Resize(uint(p.width*factor), uint(p.height*factor), src, resize.NearestNeighbor)
	out := PixmapFromImage(scaled)
	out.order = p.order
	return out, nil
}

// ScaleHotspot scales a hotspot by the same factor as ScalePixmap.
func ScaleHotspot(hotspot image.Point, factor int) image.Point {
	return hotspot.Mul(factor)
}
