package gocursor

import "encoding/binary"

// Validate checks that p can be turned into a cursor with the given hotspot.
// A nil pixmap is valid and stands for the default cursor.
func Validate(p *Pixmap, xHotspot, yHotspot int) error {
	if p == nil {
		return nil
	}
	if p.format != FormatRGBA8888 {
		return &InvalidFormatError{Format: p.format}
	}
	if !isPowerOfTwo(p.width) || !isPowerOfTwo(p.height) {
		return &InvalidDimensionsError{Width: p.width, Height: p.height}
	}
	if xHotspot < 0 || xHotspot >= p.width || yHotspot < 0 || yHotspot >= p.height {
		return &HotspotOutOfBoundsError{X: xHotspot, Y: yHotspot, Width: p.width, Height: p.height}
	}
	return nil
}

// Convert validates p and returns its pixels as ARGB with the rows flipped
// vertically. Output has the same dimensions as the input; the pixmap is not
// modified. A nil pixmap converts to a nil image.
func Convert(p *Pixmap, xHotspot, yHotspot int) (*ARGBImage, error) {
	if err := Validate(p, xHotspot, yHotspot); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return convertRGBAToARGB(p), nil
}

func convertRGBAToARGB(p *Pixmap) *ARGBImage {
	dst := NewARGBImage(p.width, p.height)
	bigEndian := isBigEndian(p.order)
	stride := p.Stride()
	for y := 0; y < p.height; y++ {
		srcRow := p.pix[(p.height-1-y)*stride : (p.height-y)*stride]
		dstRow := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
		for x := 0; x < stride; x += 4 {
			word := p.order.Uint32(srcRow[x : x+4])
			binary.BigEndian.PutUint32(dstRow[x:x+4], rgbaWordToARGB(word, bigEndian))
		}
	}
	return dst
}

// rgbaWordToARGB turns a pixel word read from R, G, B, A bytes into the word
// 0xAARRGGBB. Read big endian the word is 0xRRGGBBAA; read little endian it
// is 0xAABBGGRR.
func rgbaWordToARGB(word uint32, bigEndian bool) uint32 {
	if bigEndian {
		return word>>8 | word<<24
	}
	return word&0xFF00FF00 | (word&0xFF)<<16 | (word>>16)&0xFF
}

func isBigEndian(order binary.ByteOrder) bool {
	return order.Uint32([]byte{0x01, 0x00, 0x00, 0x00}) == 0x01000000
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// nextPowerOfTwo returns the smallest power of two >= n, with a minimum of 1.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
