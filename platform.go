package gocursor

import "image"

// A CursorPlatform creates and selects native cursors. Implementations wrap
// whatever windowing system hosts the application.
type CursorPlatform interface {
	// CreateCursor makes a native cursor from a converted image. The image must
	// not be retained past the call unless the platform copies it.
	CreateCursor(img *ARGBImage, hotspot image.Point) (NativeCursor, error)

	// SetCursor selects a native cursor; nil selects the default pointer.
	SetCursor(cursor NativeCursor) error

	// SetSystemCursor selects one of the platform's built in cursors.
	SetSystemCursor(cursor SystemCursor) error
}

// A NativeCursor is a platform cursor resource.
type NativeCursor interface {
	// Destroy releases the resource. It is called at most once per cursor.
	Destroy() error
}

// SystemCursor enumerates the cursors every platform provides.
type SystemCursor int

// The known system cursors.
const (
	SystemCursorArrow SystemCursor = iota
	SystemCursorIbeam
	SystemCursorCrosshair
	SystemCursorHand
	SystemCursorHorizontalResize
	SystemCursorVerticalResize
	SystemCursorNWSEResize
	SystemCursorNESWResize
	SystemCursorAllResize
	SystemCursorNotAllowed
	SystemCursorNone
)

func (c SystemCursor) String() string {
	switch c {
	case SystemCursorArrow:
		return "arrow"
	case SystemCursorIbeam:
		return "ibeam"
	case SystemCursorCrosshair:
		return "crosshair"
	case SystemCursorHand:
		return "hand"
	case SystemCursorHorizontalResize:
		return "horizontal_resize"
	case SystemCursorVerticalResize:
		return "vertical_resize"
	case SystemCursorNWSEResize:
		return "nwse_resize"
	case SystemCursorNESWResize:
		return "nesw_resize"
	case SystemCursorAllResize:
		return "all_resize"
	case SystemCursorNotAllowed:
		return "not_allowed"
	case SystemCursorNone:
		return "none"
	default:
		return "unknown"
	}
}

// IsValid returns true for the known system cursors.
func (c SystemCursor) IsValid() bool {
	return c >= SystemCursorArrow && c <= SystemCursorNone
}
