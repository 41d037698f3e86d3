package gocursor

import (
	"errors"
	"fmt"
)

// ErrDefaultCursor is returned by operations that need a custom cursor image
// when handed the default cursor.
var ErrDefaultCursor = errors.New("cursor is the default cursor and has no image")

// An InvalidFormatError is returned when a cursor pixmap is not RGBA8888.
type InvalidFormatError struct {
	Format Format
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("Cursor image pixmap is not in RGBA8888 format (got %s).", e.Format)
}

// An InvalidDimensionsError is returned when a cursor pixmap's width or height
// is not a power of two greater than zero.
type InvalidDimensionsError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionsError) Error() string {
	if !isPowerOfTwo(e.Width) {
		return fmt.Sprintf("Cursor image pixmap width of %d is not a power-of-two greater than zero.", e.Width)
	}
	return fmt.Sprintf("Cursor image pixmap height of %d is not a power-of-two greater than zero.", e.Height)
}

// A HotspotOutOfBoundsError is returned when a hotspot lies outside of
// [0, Width) x [0, Height).
type HotspotOutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *HotspotOutOfBoundsError) Error() string {
	if e.X < 0 || e.X >= e.Width {
		return fmt.Sprintf("xHotspot coordinate of %d is not within image width bounds: [0, %d).", e.X, e.Width)
	}
	return fmt.Sprintf("yHotspot coordinate of %d is not within image height bounds: [0, %d).", e.Y, e.Height)
}
