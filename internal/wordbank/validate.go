package wordbank

import (
	"errors"
	"fmt"
	"strings"
)

// validateUnits checks unit ids and word lists. Every problem found is
// reported in a single joined error.
func validateUnits(units []Unit) error {
	if len(units) == 0 {
		return ErrNoUnits
	}

	var errs []error
	seen := make(map[int]bool, len(units))

	for _, u := range units {
		if u.ID <= 0 {
			errs = append(errs, fmt.Errorf("unit id %d must be positive", u.ID))
		}
		if seen[u.ID] {
			errs = append(errs, fmt.Errorf("duplicate unit id %d", u.ID))
		}
		seen[u.ID] = true

		if len(u.Words) == 0 {
			errs = append(errs, fmt.Errorf("unit %d: %w", u.ID, ErrEmptyUnit))
			continue
		}
		for i, w := range u.Words {
			if strings.TrimSpace(w) == "" {
				errs = append(errs, fmt.Errorf("unit %d: word %d is blank", u.ID, i))
			}
		}
	}

	return errors.Join(errs...)
}
