package quadedge

import "github.com/pkg/errors"

// InvariantError signals a defect in the structure itself: a stale handle, a
// ring pointing at a freed record, a double free. These are raised with panic
// and are never meant to be recovered into ordinary errors, since nothing can
// keep working on a corrupted graph.
type InvariantError struct {
	err error
}

func (e *InvariantError) Error() string {
	return "quadedge: " + e.err.Error()
}

func (e *InvariantError) Unwrap() error {
	return e.err
}

func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{errors.Errorf(format, args...)})
}
