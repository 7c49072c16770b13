package gadget

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/logger"

	cs "github.com/vocdoni/zkif-gadget/constraint"
	"github.com/vocdoni/zkif-gadget/element"
	"github.com/vocdoni/zkif-gadget/wire"
)

// ExportConstraints serializes every constraint of sys, in constraint order,
// translating internal indices to wire ids and packing coefficients at full
// width.
func ExportConstraints(sys *cs.System, tr *Translator) (*wire.R1CSConstraints, error) {
	out := &wire.R1CSConstraints{
		Constraints: make([]wire.BilinearConstraint, len(sys.Constraints)),
	}
	for i := range sys.Constraints {
		c := &sys.Constraints[i]
		var err error
		if out.Constraints[i].A, err = exportLinearExpression(sys, tr, c.L); err != nil {
			return nil, err
		}
		if out.Constraints[i].B, err = exportLinearExpression(sys, tr, c.R); err != nil {
			return nil, err
		}
		if out.Constraints[i].C, err = exportLinearExpression(sys, tr, c.O); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func exportLinearExpression(sys *cs.System, tr *Translator, l cs.LinearExpression) (wire.VariableValues, error) {
	ids := make([]uint64, len(l))
	values := make([]byte, 0, len(l)*fr.Bytes)
	for i, t := range l {
		id, err := tr.ToWire(t.WireID())
		if err != nil {
			return wire.VariableValues{}, err
		}
		ids[i] = id
		if values, err = element.AppendLE(values, sys.GetCoefficient(t.CoeffID()), fr.Bytes); err != nil {
			return wire.VariableValues{}, err
		}
	}
	return wire.VariableValues{VariableIDs: ids, Values: values}, nil
}

// ImportConstraint converts one wire bilinear constraint into a R1C over
// sys's coefficient table, without appending it to the system. Term order is
// the wire order; repeated ids stay repeated.
func ImportConstraint(wc wire.BilinearConstraint, sys *cs.System, tr *Translator) (cs.R1C, error) {
	var c cs.R1C
	var err error
	if c.L, err = importLinearExpression(wc.A, sys, tr); err != nil {
		return cs.R1C{}, err
	}
	if c.R, err = importLinearExpression(wc.B, sys, tr); err != nil {
		return cs.R1C{}, err
	}
	if c.O, err = importLinearExpression(wc.C, sys, tr); err != nil {
		return cs.R1C{}, err
	}
	return c, nil
}

// ImportConstraints appends every constraint of msg to sys, in message order.
func ImportConstraints(msg *wire.R1CSConstraints, sys *cs.System, tr *Translator) error {
	for _, wc := range msg.Constraints {
		c, err := ImportConstraint(wc, sys, tr)
		if err != nil {
			return err
		}
		sys.AddConstraint(c)
	}
	log := logger.Logger()
	log.Debug().Int("nbConstraints", len(msg.Constraints)).Msg("imported constraints")
	return nil
}

func importLinearExpression(vv wire.VariableValues, sys *cs.System, tr *Translator) (cs.LinearExpression, error) {
	coeffs, err := vv.Elements()
	if err != nil {
		return nil, err
	}
	l := make(cs.LinearExpression, 0, len(vv.VariableIDs))
	for i, id := range vv.VariableIDs {
		idx, err := tr.ToInternal(id)
		if err != nil {
			return nil, err
		}
		l = append(l, sys.MakeTerm(coeffs[i], idx))
	}
	return l, nil
}
