package drill

import (
	"errors"
	"fmt"
)

// ErrInvalidUnit is returned when a run is started for a unit id that the
// word bank does not contain.
var ErrInvalidUnit = errors.New("invalid unit")

func invalidUnit(id int) error {
	return fmt.Errorf("%w: %d", ErrInvalidUnit, id)
}
