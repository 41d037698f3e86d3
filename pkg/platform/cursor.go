// Package platform contains CursorPlatform implementations that do not need
// a windowing system: a callback driven handle for embedding hosts and an
// in-memory recorder.
package platform

import (
	"errors"
	"image"
	"sync"

	"github.com/edaniels/gocursor"
)

// UpdateCallback receives the selected cursor. A nil image means the default
// pointer is selected.
type UpdateCallback func(img image.Image, width int, height int, hotx int, hoty int)

// SystemCallback receives the selected system cursor.
type SystemCallback func(cursor gocursor.SystemCursor)

// errForeignCursor happens when a handle is asked to select a cursor another
// platform created.
var errForeignCursor = errors.New("cursor was not created by this handle")

// A CursorHandle forwards cursor selection to callbacks, scaling cursors by
// the display scale factor on the way.
type CursorHandle struct {
	mu             sync.Mutex
	callback       UpdateCallback
	systemCallback SystemCallback
	factor         float32
	prev           CursorImage
}

// NewCursorHandle returns a handle with a scale factor of 1.
func NewCursorHandle() *CursorHandle {
	h := CursorHandle{}

	h.factor = 1.0

	return &h
}

// SetCallback sets the function selected cursors are sent to.
func (h *CursorHandle) SetCallback(callback UpdateCallback) {
	h.mu.Lock()
	h.callback = callback
	h.mu.Unlock()
}

// SetSystemCallback sets the function selected system cursors are sent to.
func (h *CursorHandle) SetSystemCallback(callback SystemCallback) {
	h.mu.Lock()
	h.systemCallback = callback
	h.mu.Unlock()
}

// UpdateScale changes the display scale factor and resends the selected
// cursor at the new scale.
func (h *CursorHandle) UpdateScale(factor float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.factor = factor
	h.emit()
}

// CreateCursor copies img so the handle can resend it later.
func (h *CursorHandle) CreateCursor(img *gocursor.ARGBImage, hotspot image.Point) (gocursor.NativeCursor, error) {
	cp := &gocursor.ARGBImage{
		Pix:    append([]byte(nil), img.Pix...),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	return &handleCursor{
		owner: h,
		image: CursorImage{
			Img:    cp,
			Width:  cp.Rect.Dx(),
			Height: cp.Rect.Dy(),
			Hotx:   hotspot.X,
			Hoty:   hotspot.Y,
		},
	}, nil
}

// SetCursor sends the cursor to the callback. A nil cursor selects the
// default pointer.
func (h *CursorHandle) SetCursor(native gocursor.NativeCursor) error {
	var hc *handleCursor
	if native != nil {
		var ok bool
		hc, ok = native.(*handleCursor)
		if !ok || hc.owner != h {
			return errForeignCursor
		}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	var next CursorImage
	if hc != nil {
		if hc.destroyed {
			return ErrAlreadyDestroyed
		}
		next = hc.image
	}
	h.prev = next
	h.emit()
	return nil
}

// SetSystemCursor sends the system cursor to the system callback.
func (h *CursorHandle) SetSystemCursor(cursor gocursor.SystemCursor) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prev = CursorImage{}
	if h.systemCallback != nil {
		h.systemCallback(cursor)
	}
	return nil
}

// emit must be called with mu held.
func (h *CursorHandle) emit() {
	if h.callback == nil {
		return
	}
	cursor := h.prev.Scale(h.factor)
	h.callback(cursor.Img, cursor.Width, cursor.Height, cursor.Hotx, cursor.Hoty)
}

// handleCursor fields are guarded by owner.mu.
type handleCursor struct {
	owner     *CursorHandle
	image     CursorImage
	destroyed bool
}

func (hc *handleCursor) Destroy() error {
	hc.owner.mu.Lock()
	defer hc.owner.mu.Unlock()
	if hc.destroyed {
		return ErrAlreadyDestroyed
	}
	hc.destroyed = true
	hc.image = CursorImage{}
	return nil
}
