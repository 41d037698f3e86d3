package platform

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/edaniels/gocursor"
)

// ErrAlreadyDestroyed happens when a recorded cursor is destroyed twice.
var ErrAlreadyDestroyed = errors.New("native cursor already destroyed")

// A Recorder is an in-memory CursorPlatform. It keeps every cursor it
// creates so headless tools and tests can inspect them.
type Recorder struct {
	mu       sync.Mutex
	cursors  []*RecordedCursor
	current  *RecordedCursor
	system   *gocursor.SystemCursor
	selected int

	// CreateErr, when set, is returned by CreateCursor.
	CreateErr error
}

// A RecordedCursor is a cursor created by a Recorder.
type RecordedCursor struct {
	Image   *gocursor.ARGBImage
	Hotspot image.Point

	mu        sync.Mutex
	destroyed int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CreateCursor records the image and hotspot.
func (r *Recorder) CreateCursor(img *gocursor.ARGBImage, hotspot image.Point) (gocursor.NativeCursor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return nil, r.CreateErr
	}
	rc := &RecordedCursor{Image: img, Hotspot: hotspot}
	r.cursors = append(r.cursors, rc)
	return rc, nil
}

// SetCursor records the selection of a cursor this recorder created.
func (r *Recorder) SetCursor(native gocursor.NativeCursor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected++
	r.system = nil
	if native == nil {
		r.current = nil
		return nil
	}
	rc, ok := native.(*RecordedCursor)
	if !ok {
		return fmt.Errorf("cannot select %T: %w", native, errForeignCursor)
	}
	if rc.Destroyed() {
		return ErrAlreadyDestroyed
	}
	r.current = rc
	return nil
}

// SetSystemCursor records the selection of a system cursor.
func (r *Recorder) SetSystemCursor(cursor gocursor.SystemCursor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected++
	r.current = nil
	r.system = &cursor
	return nil
}

// Cursors returns every cursor created so far.
func (r *Recorder) Cursors() []*RecordedCursor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*RecordedCursor(nil), r.cursors...)
}

// Live returns how many created cursors have not been destroyed.
func (r *Recorder) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var live int
	for _, rc := range r.cursors {
		if !rc.Destroyed() {
			live++
		}
	}
	return live
}

// Current returns the selected custom cursor and system cursor. Both are nil
// while the default pointer is selected.
func (r *Recorder) Current() (*RecordedCursor, *gocursor.SystemCursor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.system
}

// Selections returns how many times a cursor was selected.
func (r *Recorder) Selections() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

// Destroy marks the cursor destroyed. Destroying twice is an error.
func (rc *RecordedCursor) Destroy() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.destroyed++
	if rc.destroyed > 1 {
		return ErrAlreadyDestroyed
	}
	return nil
}

// Destroyed returns true once Destroy has been called.
func (rc *RecordedCursor) Destroyed() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.destroyed > 0
}

// DestroyCount returns how many times Destroy was called.
func (rc *RecordedCursor) DestroyCount() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.destroyed
}
