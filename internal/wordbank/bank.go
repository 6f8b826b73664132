package wordbank

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrNoUnits is returned when a bank is built from an empty unit list.
	ErrNoUnits = errors.New("word bank has no units")

	// ErrEmptyUnit is returned when a unit has no words.
	ErrEmptyUnit = errors.New("unit has no words")
)

// Bank maps unit ids to their ordered word lists. A Bank is immutable once
// built and safe to share between engines.
type Bank struct {
	units []Unit
	byID  map[int]*Unit
}

// New validates the units and builds a Bank ordered by unit id.
func New(units []Unit) (*Bank, error) {
	if err := validateUnits(units); err != nil {
		return nil, err
	}

	sorted := make([]Unit, len(units))
	for i, u := range units {
		sorted[i] = Unit{ID: u.ID, Label: u.Label, Words: slices.Clone(u.Words)}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	b := &Bank{
		units: sorted,
		byID:  make(map[int]*Unit, len(sorted)),
	}
	for i := range b.units {
		b.byID[b.units[i].ID] = &b.units[i]
	}
	return b, nil
}

// Has reports whether the unit id is present.
func (b *Bank) Has(id int) bool {
	_, ok := b.byID[id]
	return ok
}

// Unit returns a copy of the unit with the given id.
func (b *Bank) Unit(id int) (Unit, error) {
	u, ok := b.byID[id]
	if !ok {
		return Unit{}, fmt.Errorf("unit %d not found", id)
	}
	return Unit{ID: u.ID, Label: u.Label, Words: slices.Clone(u.Words)}, nil
}

// Words returns a copy of the unit's words in bank order, or nil if the unit
// does not exist.
func (b *Bank) Words(id int) []string {
	u, ok := b.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(u.Words)
}

// Label returns the display label for a unit id. Unknown ids still get the
// default "Unit N" label.
func (b *Bank) Label(id int) string {
	if u, ok := b.byID[id]; ok {
		return u.DisplayLabel()
	}
	return Unit{ID: id}.DisplayLabel()
}

// IDs returns all unit ids in ascending order.
func (b *Bank) IDs() []int {
	ids := make([]int, len(b.units))
	for i, u := range b.units {
		ids[i] = u.ID
	}
	return ids
}

// Units returns copies of all units in ascending id order.
func (b *Bank) Units() []Unit {
	out := make([]Unit, len(b.units))
	for i, u := range b.units {
		out[i] = Unit{ID: u.ID, Label: u.Label, Words: slices.Clone(u.Words)}
	}
	return out
}

// Len returns the number of units.
func (b *Bank) Len() int {
	return len(b.units)
}
