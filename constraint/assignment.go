package cs

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Assignment is the dense value table of a constraint system, indexed by
// internal variable index. Slot 0 is pinned to the field's one and cannot be
// reassigned.
type Assignment struct {
	values fr.Vector
}

// NewAssignment returns an assignment with n slots, slot 0 set to one.
func NewAssignment(n int) *Assignment {
	if n < 1 {
		n = 1
	}
	a := &Assignment{values: make(fr.Vector, n)}
	a.values[0].SetOne()
	return a
}

// Set writes v at internal index idx, growing the table as needed. Writes to
// index 0 are ignored.
func (a *Assignment) Set(idx int, v fr.Element) {
	if idx == 0 {
		return
	}
	if idx >= len(a.values) {
		grown := make(fr.Vector, idx+1)
		copy(grown, a.values)
		a.values = grown
	}
	a.values[idx] = v
}

// Get returns the value at internal index idx.
func (a *Assignment) Get(idx int) fr.Element {
	return a.values[idx]
}

// Len returns the number of slots, constant one included.
func (a *Assignment) Len() int {
	return len(a.values)
}

// Vector returns the underlying fr.Vector. The caller must not reassign
// slot 0.
func (a *Assignment) Vector() fr.Vector {
	return a.values
}
