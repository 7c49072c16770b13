// Package gadget moves constraints and variable assignments between the wire
// messages of package wire and the constraint system of package cs.
//
// The two sides of an exchange number variables differently. On the wire,
// id 0 is the constant one, the connection variables keep the arbitrary ids
// declared in the GadgetInstance, and locally allocated variables take
// consecutive ids from the instance's free variable id. Internally, indices
// are dense: 0 is the constant one, then connections, then outputs, then
// locals. Both parties derive the same mapping from the same instance
// parameters; nothing on the wire self-describes it, so a mismatched
// connection-id list or free id between peers silently produces wrong indices.
package gadget

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownVariable reports a wire id that is neither a declared
	// connection nor at or above the free variable id.
	ErrUnknownVariable = errors.New("wire variable id outside the declared id ranges")

	// ErrOutputVariable reports an attempt to translate an output variable.
	// Output ids never cross this boundary; they belong to the call/return
	// protocol.
	ErrOutputVariable = errors.New("output variables have no wire id translation")
)

// Translator is the bijection between wire variable ids and internal variable
// indices for one gadget instance. It is immutable and safe for concurrent
// use.
type Translator struct {
	connectionIDs []uint64
	positions     map[uint64]int // connection id -> 0-based declaration position
	nbOutputs     int
	freeID        uint64
	localBase     int // internal index of the first local variable
}

// NewTranslator builds the mapping for a gadget instance with the given
// connection ids (in declaration order), output count and free variable id.
func NewTranslator(connectionIDs []uint64, nbOutputs int, freeID uint64) *Translator {
	positions := make(map[uint64]int, len(connectionIDs))
	for i, id := range connectionIDs {
		positions[id] = i
	}
	return &Translator{
		connectionIDs: connectionIDs,
		positions:     positions,
		nbOutputs:     nbOutputs,
		freeID:        freeID,
		localBase:     1 + len(connectionIDs) + nbOutputs,
	}
}

// ToInternal translates a wire variable id into an internal index.
func (t *Translator) ToInternal(wireID uint64) (int, error) {
	// Constant one?
	if wireID == 0 {
		return 0, nil
	}

	// A connection?
	if p, ok := t.positions[wireID]; ok {
		return 1 + p, nil
	}

	// A local variable. Offsets past the index space of Term.VID cannot be
	// honest ids; reject them before the int conversion wraps.
	if wireID >= t.freeID {
		off := wireID - t.freeID
		if off > math.MaxInt32 {
			return 0, fmt.Errorf("%w: local offset %d overflows the variable index space", ErrUnknownVariable, off)
		}
		return t.localBase + int(off), nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnknownVariable, wireID)
}

// ToWire translates an internal index back into a wire variable id.
func (t *Translator) ToWire(index int) (uint64, error) {
	if index == 0 {
		return 0, nil
	}
	if index <= len(t.connectionIDs) {
		return t.connectionIDs[index-1], nil
	}
	if index < t.localBase {
		return 0, fmt.Errorf("%w: internal index %d", ErrOutputVariable, index)
	}
	return t.freeID + uint64(index-t.localBase), nil
}

// NbConnections returns the number of connection variables.
func (t *Translator) NbConnections() int {
	return len(t.connectionIDs)
}

// NbOutputs returns the number of output variables.
func (t *Translator) NbOutputs() int {
	return t.nbOutputs
}

// FreeVariableID returns the first wire id available for local variables.
func (t *Translator) FreeVariableID() uint64 {
	return t.freeID
}
