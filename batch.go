package gocursor

import (
	"fmt"

	"go.uber.org/multierr"
)

// A CursorSpec describes one cursor for BuildAll.
type CursorSpec struct {
	Pixmap   *Pixmap
	XHotspot int
	YHotspot int
}

// BuildAll builds every cursor in parallel. Either all cursors are returned,
// in the order of specs, or none are: on any failure the cursors that were
// built are disposed and every error is returned combined.
func BuildAll(platform CursorPlatform, specs []CursorSpec) ([]*Cursor, error) {
	cursors := make([]*Cursor, len(specs))
	fs := make([]func() error, 0, len(specs))
	for i, spec := range specs {
		iCopy := i
		specCopy := spec
		fs = append(fs, func() error {
			c, err := Build(platform, specCopy.Pixmap, specCopy.XHotspot, specCopy.YHotspot)
			if err != nil {
				return fmt.Errorf("cursor %d: %w", iCopy, err)
			}
			cursors[iCopy] = c
			return nil
		})
	}
	if err := runParallel(fs); err != nil {
		for _, c := range cursors {
			if c == nil {
				continue
			}
			err = multierr.Append(err, c.Dispose())
		}
		return nil, err
	}
	return cursors, nil
}
