// Package oracle evaluates XOR-subset oracles and decides by brute force
// whether they are constant or balanced.
package oracle

import (
	"strings"

	"github.com/pkg/errors"
)

// Definition describes one hidden boolean function: the XOR of the inputs
// selected by Doors, or the everywhere-zero function when Constant is set.
type Definition struct {
	Length   int    `json:"length"`
	Doors    []bool `json:"doors"`
	Constant bool   `json:"constant"`
}

// Validate checks the invariants tying Doors to Constant.
func (d Definition) Validate() error {
	if d.Length < 1 {
		return errors.Wrapf(ErrInvalidDefinition, "length %d must be positive", d.Length)
	}
	if len(d.Doors) != d.Length {
		return errors.Wrapf(ErrInvalidDefinition, "doors has %d entries, want %d", len(d.Doors), d.Length)
	}
	active := len(d.ActiveDoors())
	if d.Constant && active != 0 {
		return errors.Wrapf(ErrInvalidDefinition, "constant oracle has %d active doors", active)
	}
	if !d.Constant && active == 0 {
		return errors.Wrap(ErrInvalidDefinition, "balanced oracle has no active door")
	}
	return nil
}

// ActiveDoors returns the positions participating in the XOR.
func (d Definition) ActiveDoors() []int {
	out := make([]int, 0, len(d.Doors))
	for i, open := range d.Doors {
		if open {
			out = append(out, i)
		}
	}
	return out
}

// String renders the doors as a bit-string, position 0 first.
func (d Definition) String() string {
	var b strings.Builder
	b.Grow(len(d.Doors))
	for _, open := range d.Doors {
		if open {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
