package advanced

import "github.com/pkg/errors"

// Threading errors up and down the recursive divide and conquer would add a
// ton of complexity to the code. Instead, we use panics, and the public API
// recovers to convert to an error.
//
// Only caller errors are converted. Anything else that panics, in particular a
// *quadedge.InvariantError, means the graph is corrupt and keeps unwinding.

type TriangulateError struct {
	err error
}

func (e *TriangulateError) Error() string {
	return e.err.Error()
}

func (e *TriangulateError) Unwrap() error {
	return e.err
}

// Cause lets errors.Cause see through the wrapper.
func (e *TriangulateError) Cause() error {
	return e.err
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(&TriangulateError{errors.Errorf(format, args...)})
}

func fatal(err error) {
	panic(&TriangulateError{err})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(*TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
