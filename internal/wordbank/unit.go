package wordbank

import "fmt"

// Unit is a named, ordered collection of vocabulary words forming one lesson.
type Unit struct {
	ID    int      `yaml:"id" json:"id"`
	Label string   `yaml:"label,omitempty" json:"label,omitempty"` // Fixed display label; empty means "Unit N"
	Words []string `yaml:"words" json:"words"`
}

// DisplayLabel returns the fixed label when set, otherwise "Unit N".
func (u Unit) DisplayLabel() string {
	if u.Label != "" {
		return u.Label
	}
	return fmt.Sprintf("Unit %d", u.ID)
}
