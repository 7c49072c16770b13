// Package wire defines the messages exchanged between a circuit-building
// caller and a gadget, and their framed binary encoding.
//
// Binary protocol
//
//	Message  ->  [uint32(length) | magic "zkif" | uint8(type) | cbor(body)]
//
// The 4-byte little-endian length covers everything after itself. The 4 ASCII
// magic bytes sit at fixed offset 4 so a persisted message file is
// identifiable by inspection. Field element values inside message bodies are
// packed little-endian byte vectors (see the element package); everything else
// is a plain cbor structure.
package wire

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/zkif-gadget/element"
)

var (
	ErrInvalidMagic      = errors.New("invalid message magic")
	ErrUnexpectedMessage = errors.New("unexpected message type")
	ErrFieldMismatch     = errors.New("field order mismatch")
	ErrFrameTooLarge     = errors.New("message frame exceeds size limit")
)

// MessageType identifies the concrete message carried by a frame.
type MessageType uint8

const (
	TypeGadgetInstance MessageType = iota + 1
	TypeWitness
	TypeR1CSConstraints
	TypeAssignedVariables
	TypeGadgetReturn
)

func (t MessageType) String() string {
	switch t {
	case TypeGadgetInstance:
		return "GadgetInstance"
	case TypeWitness:
		return "Witness"
	case TypeR1CSConstraints:
		return "R1CSConstraints"
	case TypeAssignedVariables:
		return "AssignedVariables"
	case TypeGadgetReturn:
		return "GadgetReturn"
	default:
		return fmt.Sprintf("MessageType(%d)", uint8(t))
	}
}

// Message is implemented by all concrete message bodies.
type Message interface {
	Type() MessageType
}

// KeyValue is an opaque configuration or info entry.
type KeyValue struct {
	Key   string
	Value []byte
}

// Get returns the value for key in kvs, or nil if absent.
func Get(kvs []KeyValue, key string) []byte {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value
		}
	}
	return nil
}

// VariableValues is a sparse mapping from wire variable id to field element,
// as parallel arrays: ids in insertion order, values packed little-endian.
// The element width is len(Values)/len(VariableIDs).
type VariableValues struct {
	VariableIDs []uint64
	Values      []byte
}

// Elements decodes the packed values. The returned slice is parallel to
// VariableIDs.
func (v *VariableValues) Elements() ([]fr.Element, error) {
	return element.DecodeMany(v.Values, len(v.VariableIDs))
}

// NewVariableValues packs ids and elements into a VariableValues. ids and
// elements must have the same length.
func NewVariableValues(ids []uint64, elements []fr.Element) VariableValues {
	return VariableValues{
		VariableIDs: ids,
		Values:      element.EncodeMany(elements),
	}
}

// BilinearConstraint asserts A·B = C over the field.
type BilinearConstraint struct {
	A, B, C VariableValues
}

// R1CSConstraints carries an ordered sequence of bilinear constraints.
type R1CSConstraints struct {
	Constraints []BilinearConstraint
}

func (m *R1CSConstraints) Type() MessageType { return TypeR1CSConstraints }

// AssignedVariables carries one block of (wire id, value) assignments.
type AssignedVariables struct {
	Values VariableValues
}

func (m *AssignedVariables) Type() MessageType { return TypeAssignedVariables }

// GadgetInstance describes one gadget invocation: which wire ids are the
// connection variables, the first id free for local allocation, the field
// order, and an opaque configuration side channel.
type GadgetInstance struct {
	ConnectionIDs  []uint64
	FreeVariableID uint64
	FieldOrder     []byte // little-endian, opaque big integer
	Config         []KeyValue
}

func (m *GadgetInstance) Type() MessageType { return TypeGadgetInstance }

// CheckFieldOrder verifies that the instance's field order, when present,
// matches the bn254 scalar field modulus.
func (m *GadgetInstance) CheckFieldOrder() error {
	if len(m.FieldOrder) == 0 {
		return nil
	}
	order := make([]byte, len(m.FieldOrder))
	for i, b := range m.FieldOrder {
		order[len(order)-1-i] = b
	}
	if new(big.Int).SetBytes(order).Cmp(fr.Modulus()) != 0 {
		return ErrFieldMismatch
	}
	return nil
}

// Witness carries the values of the instance's connection variables, packed
// in the same order as GadgetInstance.ConnectionIDs.
type Witness struct {
	IncomingValues []byte
	Info           []KeyValue
}

func (m *Witness) Type() MessageType { return TypeWitness }

// IncomingElements decodes the packed incoming values for n connection
// variables.
func (m *Witness) IncomingElements(n int) ([]fr.Element, error) {
	return element.DecodeMany(m.IncomingValues, n)
}

// GadgetReturn reports the outcome of a gadget call: the next free wire id
// after local allocations, opaque info, an optional failure string, and the
// values of the outgoing connection variables.
type GadgetReturn struct {
	FreeVariableID uint64
	Info           []KeyValue
	Error          string
	OutgoingValues []byte
}

func (m *GadgetReturn) Type() MessageType { return TypeGadgetReturn }

// Err returns the gadget failure as an error, or nil on success. A non-nil
// return invalidates any constraint or assignment stream of the same call.
func (m *GadgetReturn) Err() error {
	if m.Error == "" {
		return nil
	}
	return fmt.Errorf("gadget: %s", m.Error)
}

// SetOutgoingElements packs elements as the outgoing values.
func (m *GadgetReturn) SetOutgoingElements(elements []fr.Element) {
	m.OutgoingValues = element.EncodeMany(elements)
}

// Equal reports whether two VariableValues carry the same ids and the same
// element values, width differences aside.
func (v *VariableValues) Equal(o *VariableValues) bool {
	if len(v.VariableIDs) != len(o.VariableIDs) {
		return false
	}
	for i := range v.VariableIDs {
		if v.VariableIDs[i] != o.VariableIDs[i] {
			return false
		}
	}
	ve, err := v.Elements()
	if err != nil {
		return false
	}
	oe, err := o.Elements()
	if err != nil {
		return false
	}
	for i := range ve {
		if !ve[i].Equal(&oe[i]) {
			return false
		}
	}
	return true
}
