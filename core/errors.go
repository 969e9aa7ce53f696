package core

import (
	"errors"
	"fmt"
)

// ErrTapeBounds is matched by every TapeFault.
var ErrTapeBounds = errors.New("data pointer out of tape bounds")

// TapeFault aborts a run that touches a cell while the data pointer is outside
// the tape. Moving the pointer out of range is allowed as long as it comes
// back before the next cell access.
type TapeFault struct {
	Ptr  int
	Size int
}

func (e *TapeFault) Error() string {
	return fmt.Sprintf("%v: pointer %d, tape size %d", ErrTapeBounds, e.Ptr, e.Size)
}

func (e *TapeFault) Unwrap() error {
	return ErrTapeBounds
}
