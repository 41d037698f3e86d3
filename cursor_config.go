package gocursor

import "github.com/edaniels/golog"

// A CursorManagerConfig describes how a CursorManager should be set up.
type CursorManagerConfig struct {
	Platform CursorPlatform
	// ScaleFactor upscales every custom cursor for high-DPI displays. It must be
	// a power of two; zero means 1.
	ScaleFactor int
	Logger      golog.Logger
}
