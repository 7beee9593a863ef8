package transform

import "fmt"

// BadRotation is returned when the requested rotation is not a multiple
// of 90 degrees. This module only ever supports right-angle rotation
// rotation; any caller requesting otherwise has a programming error,
// not a recoverable geometry failure.
type BadRotation struct {
	Degrees int
}

func (e *BadRotation) Error() string {
	return fmt.Sprintf("transform: rotation of %d degrees is not a multiple of 90", e.Degrees)
}
