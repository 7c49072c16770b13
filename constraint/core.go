// Package cs holds the plain-data side of the gadget interchange boundary: a
// minimal rank-1 constraint system made of ordered term lists over interned
// field coefficients, and the dense variable assignment that goes with it.
//
// Internal variable indices are dense and gap-free: index 0 is the constant
// one, then the connection variables in declaration order, then the output
// variables, then the locally allocated variables. Wire-level variable ids are
// a different numbering; translating between the two is the job of the gadget
// package.
package cs

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// System is a rank-1 constraint system over the bn254 scalar field.
type System struct {
	CoeffTable

	Constraints []R1C

	// number of variables in each internal region, constant one excluded
	NbConnections int
	NbOutputs     int
	NbLocal       int
}

// NewSystem returns an empty constraint system with capacity hints.
func NewSystem(capacity int) *System {
	return &System{
		CoeffTable:  newCoeffTable(capacity / 10),
		Constraints: make([]R1C, 0, capacity),
	}
}

// AddConnection declares the next connection variable and returns its internal
// index. Connections occupy indices 1..NbConnections and must all be declared
// before outputs and locals.
func (s *System) AddConnection() (idx int) {
	idx = 1 + s.NbConnections
	s.NbConnections++
	return idx
}

// AddOutput declares the next output variable and returns its internal index.
func (s *System) AddOutput() (idx int) {
	idx = 1 + s.NbConnections + s.NbOutputs
	s.NbOutputs++
	return idx
}

// AddLocalVariable allocates the next local variable and returns its internal
// index.
func (s *System) AddLocalVariable() (idx int) {
	idx = 1 + s.NbConnections + s.NbOutputs + s.NbLocal
	s.NbLocal++
	return idx
}

// AddConstraint appends c to the system and returns its constraint index.
// Constraint order is append order; duplicates are legal.
func (s *System) AddConstraint(c R1C) int {
	s.Constraints = append(s.Constraints, c)
	return len(s.Constraints) - 1
}

// GetNbConstraints returns the number of constraints
func (s *System) GetNbConstraints() int {
	return len(s.Constraints)
}

// GetNbVariables returns the total number of variables, constant one included.
func (s *System) GetNbVariables() int {
	return 1 + s.NbConnections + s.NbOutputs + s.NbLocal
}

// FromInterface converts an int, uint64, string or *big.Int into a field
// element coefficient.
func (s *System) FromInterface(i interface{}) fr.Element {
	var e fr.Element
	switch v := i.(type) {
	case int:
		e.SetInt64(int64(v))
	case uint64:
		e.SetUint64(v)
	case string:
		if _, err := e.SetString(v); err != nil {
			panic(err)
		}
	case *big.Int:
		e.SetBigInt(v)
	default:
		panic(fmt.Sprintf("unsupported coefficient type %T", i))
	}
	return e
}

// Field returns the modulus of the scalar field.
func (s *System) Field() *big.Int {
	return fr.Modulus()
}

// VariableToString implements Resolver
func (s *System) VariableToString(vID int) string {
	if vID == 0 {
		return "1"
	}
	vID--
	if vID < s.NbConnections {
		return fmt.Sprintf("c%d", vID)
	}
	vID -= s.NbConnections
	if vID < s.NbOutputs {
		return fmt.Sprintf("o%d", vID)
	}
	vID -= s.NbOutputs
	return fmt.Sprintf("v%d", vID)
}
