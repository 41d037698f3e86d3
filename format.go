package gocursor

// Format is the pixel storage format of a Pixmap.
type Format uint8

const (
	// FormatAlpha is 8-bit alpha only.
	FormatAlpha Format = iota
	// FormatIntensity is 8-bit intensity.
	FormatIntensity
	// FormatLuminanceAlpha is 8-bit luminance followed by 8-bit alpha.
	FormatLuminanceAlpha
	// FormatRGB565 is 16-bit packed RGB.
	FormatRGB565
	// FormatRGBA4444 is 16-bit packed RGBA.
	FormatRGBA4444
	// FormatRGB888 is 24-bit RGB with no alpha.
	FormatRGB888
	// FormatRGBA8888 is 32-bit RGBA, stored as the bytes R, G, B, A. It is the only
	// format accepted as a cursor source.
	FormatRGBA8888

	formatCount
)

var formatBytesPerPixel = [formatCount]int{
	FormatAlpha:          1,
	FormatIntensity:      1,
	FormatLuminanceAlpha: 2,
	FormatRGB565:         2,
	FormatRGBA4444:       2,
	FormatRGB888:         3,
	FormatRGBA8888:       4,
}

// BytesPerPixel returns the number of bytes a single pixel occupies, or 0 for
// an unknown format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return formatBytesPerPixel[f]
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ImageBytes returns the size of a width x height buffer in this format.
func (f Format) ImageBytes(width, height int) int {
	return width * height * f.BytesPerPixel()
}

func (f Format) String() string {
	switch f {
	case FormatAlpha:
		return "Alpha"
	case FormatIntensity:
		return "Intensity"
	case FormatLuminanceAlpha:
		return "LuminanceAlpha"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA4444:
		return "RGBA4444"
	case FormatRGB888:
		return "RGB888"
	case FormatRGBA8888:
		return "RGBA8888"
	default:
		return "Unknown"
	}
}
