package gadget

import (
	cs "github.com/vocdoni/zkif-gadget/constraint"
	"github.com/vocdoni/zkif-gadget/element"
	"github.com/vocdoni/zkif-gadget/wire"
)

// ExportLocalAssignment serializes the locally computed region of a full
// assignment: everything past the constant one, the connection slots and the
// output slots. Local offset j is exported under wire id freeID+j.
// Connection and output values never appear here; they travel in the
// call/return messages.
func ExportLocalAssignment(a *cs.Assignment, nbConnections, nbOutputs int, freeID uint64) *wire.AssignedVariables {
	shared := 1 + nbConnections + nbOutputs
	nbLocal := a.Len() - shared
	if nbLocal < 0 {
		nbLocal = 0
	}

	ids := make([]uint64, nbLocal)
	for j := range ids {
		ids[j] = freeID + uint64(j)
	}

	return &wire.AssignedVariables{
		Values: wire.VariableValues{
			VariableIDs: ids,
			Values:      element.EncodeMany(a.Vector()[a.Len()-nbLocal:]),
		},
	}
}

// ImportAssignment writes every (wire id, value) pair of msg into a,
// translating ids with the recipient's own translator. Pairs addressing the
// constant one (wire id 0) are skipped; otherwise the write is unconditional
// and the last write wins.
func ImportAssignment(msg *wire.AssignedVariables, a *cs.Assignment, tr *Translator) error {
	values, err := msg.Values.Elements()
	if err != nil {
		return err
	}
	for i, id := range msg.Values.VariableIDs {
		idx, err := tr.ToInternal(id)
		if err != nil {
			return err
		}
		if idx == 0 {
			// the constant one is never assignable
			continue
		}
		a.Set(idx, values[i])
	}
	return nil
}
