package gocursor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/edaniels/golog"
	"go.uber.org/multierr"
)

var (
	// ErrManagerClosed happens when a closed CursorManager is used.
	ErrManagerClosed = errors.New("cursor manager closed")

	// ErrCursorDisposed happens when selecting a cursor that was already disposed.
	ErrCursorDisposed = errors.New("cursor already disposed")
)

// A CursorManager creates cursors on a platform, keeps track of the ones it
// owns and of which cursor is selected. It is safe for concurrent use.
type CursorManager struct {
	mu            sync.Mutex
	platform      CursorPlatform
	scaleFactor   int
	cursors       map[string]*Cursor
	current       *Cursor
	currentSystem *SystemCursor
	closed        bool
	logger        golog.Logger
}

// NewCursorManager returns a manager for the configured platform.
func NewCursorManager(config CursorManagerConfig) (*CursorManager, error) {
	if config.Platform == nil {
		return nil, errors.New("no cursor platform set")
	}
	logger := config.Logger
	if logger == nil {
		logger = Logger
	}
	if config.ScaleFactor == 0 {
		config.ScaleFactor = 1
	}
	if !isPowerOfTwo(config.ScaleFactor) {
		return nil, fmt.Errorf("scale factor %d is not a power-of-two greater than zero", config.ScaleFactor)
	}
	return &CursorManager{
		platform:    config.Platform,
		scaleFactor: config.ScaleFactor,
		cursors:     map[string]*Cursor{},
		logger:      logger,
	}, nil
}

// NewCursor builds a cursor owned by the manager. The pixmap and hotspot are
// validated at their original size before any scaling. A nil pixmap returns
// the default cursor.
func (cm *CursorManager) NewCursor(p *Pixmap, xHotspot, yHotspot int) (*Cursor, error) {
	if err := Validate(p, xHotspot, yHotspot); err != nil {
		return nil, err
	}
	if p != nil && cm.scaleFactor != 1 {
		scaled, err := ScalePixmap(p, cm.scaleFactor)
		if err != nil {
			return nil, err
		}
		hotspot := ScaleHotspot(image.Pt(xHotspot, yHotspot), cm.scaleFactor)
		p, xHotspot, yHotspot = scaled, hotspot.X, hotspot.Y
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.closed {
		return nil, ErrManagerClosed
	}
	c, err := Build(cm.platform, p, xHotspot, yHotspot)
	if err != nil {
		return nil, err
	}
	if !c.IsDefault() {
		cm.cursors[c.ID()] = c
		cm.logger.Debugw("created cursor",
			"id", c.ID(),
			"width", c.Image().Bounds().Dx(),
			"height", c.Image().Bounds().Dy(),
			"hotspot", c.Hotspot())
	}
	return c, nil
}

// SetCursor selects c. A nil or default cursor selects the default pointer.
func (cm *CursorManager) SetCursor(c *Cursor) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.closed {
		return ErrManagerClosed
	}
	var native NativeCursor
	if c != nil {
		if c.Disposed() {
			return ErrCursorDisposed
		}
		native = c.Native()
	}
	if err := cm.platform.SetCursor(native); err != nil {
		return fmt.Errorf("error setting cursor: %w", err)
	}
	cm.current = c
	cm.currentSystem = nil
	return nil
}

// SetSystemCursor selects one of the platform's built in cursors.
func (cm *CursorManager) SetSystemCursor(sc SystemCursor) error {
	if !sc.IsValid() {
		return fmt.Errorf("unknown system cursor %d", sc)
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.closed {
		return ErrManagerClosed
	}
	if err := cm.platform.SetSystemCursor(sc); err != nil {
		return fmt.Errorf("error setting system cursor %s: %w", sc, err)
	}
	cm.current = nil
	cm.currentSystem = &sc
	return nil
}

// Current returns the selected custom cursor, if any, and the selected system
// cursor, if any. Both are unset while the default pointer is selected.
func (cm *CursorManager) Current() (*Cursor, *SystemCursor) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.current, cm.currentSystem
}

// DisposeCursor disposes a cursor owned by the manager. If it is selected,
// the default pointer is selected first.
func (cm *CursorManager) DisposeCursor(c *Cursor) error {
	if c == nil {
		return nil
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	var err error
	if cm.current == c && !cm.closed {
		err = cm.platform.SetCursor(nil)
		cm.current = nil
	}
	delete(cm.cursors, c.ID())
	return multierr.Combine(err, c.Dispose())
}

// Close disposes every cursor the manager created, even when ctx is already
// done; a done ctx is reported in the returned error. The manager cannot be
// used afterwards.
func (cm *CursorManager) Close(ctx context.Context) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.closed {
		return nil
	}
	cm.closed = true
	var err error
	if cm.current != nil {
		err = cm.platform.SetCursor(nil)
		cm.current = nil
	}
	for id, c := range cm.cursors {
		err = multierr.Combine(err, c.Dispose())
		delete(cm.cursors, id)
	}
	cm.logger.Debugw("cursor manager closed")
	return multierr.Combine(err, ctx.Err())
}
