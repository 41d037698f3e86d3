package gocursor

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// runParallel runs every function in its own goroutine and waits for all of
// them. Errors are combined in the order of fs; a panic counts as an error.
func runParallel(fs []func() error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(fs))
	for i, f := range fs {
		iCopy := i
		fCopy := f
		wg.Add(1)
		// on panic the callback calls wg.Done so the error is set before wg.Wait returns
		utils.PanicCapturingGoWithCallback(func() {
			errs[iCopy] = fCopy()
			wg.Done()
		}, func(err interface{}) {
			errs[iCopy] = fmt.Errorf("panic: %v", err)
			wg.Done()
		})
	}
	wg.Wait()
	return multierr.Combine(errs...)
}
