package hull

import "github.com/pkg/errors"

// Threading errors up through the recursive partitioning would add a ton
// of complexity for faults that indicate bugs rather than bad input.
// Instead, invariant violations panic, and the public API recovers to
// convert to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
