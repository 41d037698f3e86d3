package platform

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// A CursorImage is a cursor as handed to an UpdateCallback.
type CursorImage struct {
	Img    image.Image
	Width  int
	Height int
	Hotx   int
	Hoty   int
}

// Scale returns the cursor resized by factor with its hotspot moved to match.
func (c CursorImage) Scale(factor float32) CursorImage {
	if factor == 1 || c.Img == nil {
		return c
	}
	out := CursorImage{}
	out.Height = int(math.Round(float64(factor) * float64(c.Height)))
	out.Width = int(math.Round(float64(factor) * float64(c.Width)))
	out.Hotx = int(math.Round(float64(factor) * float64(c.Hotx)))
	out.Hoty = int(math.Round(float64(factor) * float64(c.Hoty)))
	if out.Width > 0 && out.Hotx >= out.Width {
		out.Hotx = out.Width - 1
	}
	if out.Height > 0 && out.Hoty >= out.Height {
		out.Hoty = out.Height - 1
	}
	out.Img = resize.Resize(uint(out.Width), uint(out.Height), c.Img, resize.Lanczos3)
	return out
}
