// Package gocursor turns RGBA8888 bitmaps into native cursors.
//
// A Pixmap is validated (RGBA8888, power of two dimensions, hotspot in
// bounds), converted to ARGB with its rows flipped for the native cursor API,
// and handed to a CursorPlatform. The resulting Cursor owns the native
// resource until it is disposed.
package gocursor

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// A Cursor is a handle to a native cursor. The zero hotspot, nil image
// cursor returned for a nil pixmap is the default cursor; it owns nothing.
type Cursor struct {
	id      string
	img     *ARGBImage
	hotspot image.Point
	native  NativeCursor

	disposeOnce sync.Once
	disposeErr  error
	disposed    atomic.Bool
}

// Build validates p, converts it and creates a native cursor through
// platform. Passing a nil pixmap yields the default cursor regardless of the
// hotspot. No conversion work happens unless validation passes.
func Build(platform CursorPlatform, p *Pixmap, xHotspot, yHotspot int) (*Cursor, error) {
	img, err := Convert(p, xHotspot, yHotspot)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return DefaultCursor(), nil
	}
	if platform == nil {
		return nil, errors.New("no cursor platform set")
	}
	hotspot := image.Pt(xHotspot, yHotspot)
	native, err := platform.CreateCursor(img, hotspot)
	if err != nil {
		return nil, fmt.Errorf("error creating native cursor: %w", err)
	}
	return &Cursor{
		id:      uuid.NewString(),
		img:     img,
		hotspot: hotspot,
		native:  native,
	}, nil
}

// DefaultCursor returns a handle representing the platform's default pointer.
func DefaultCursor() *Cursor {
	return &Cursor{id: uuid.NewString()}
}

// ID uniquely identifies the cursor.
func (c *Cursor) ID() string {
	return c.id
}

// IsDefault returns true if the cursor stands for the default pointer.
func (c *Cursor) IsDefault() bool {
	return c.native == nil
}

// Image returns the converted cursor image, or nil for the default cursor.
func (c *Cursor) Image() *ARGBImage {
	return c.img
}

// Hotspot returns the pointer tip within the image.
func (c *Cursor) Hotspot() image.Point {
	return c.hotspot
}

// Native returns the platform resource, or nil for the default cursor.
func (c *Cursor) Native() NativeCursor {
	return c.native
}

// Disposed returns true once Dispose has been called.
func (c *Cursor) Disposed() bool {
	return c.disposed.Load()
}

// Dispose releases the native cursor. Only the first call reaches the
// platform; later calls return the first call's result. Disposing the
// default cursor does nothing. It is safe to call from multiple goroutines.
func (c *Cursor) Dispose() error {
	c.disposeOnce.Do(func() {
		c.disposed.Store(true)
		if c.native == nil {
			return
		}
		if err := c.native.Destroy(); err != nil {
			c.disposeErr = fmt.Errorf("error destroying native cursor %s: %w", c.id, err)
		}
	})
	return c.disposeErr
}
