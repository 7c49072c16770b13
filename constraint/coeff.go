package cs

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// CoeffTable interns the fr.Element coefficients referenced by Term.CID.
// Slots 0..4 always hold 0, 1, 2, -1 and -2.
type CoeffTable struct {
	Coefficients []fr.Element
	mCoeffs      map[fr.Element]uint32 // maps coefficient to coeffID
}

func newCoeffTable(capacity int) CoeffTable {
	d := CoeffTable{
		Coefficients: make([]fr.Element, 5, 5+capacity),
		mCoeffs:      make(map[fr.Element]uint32, capacity),
	}

	var e fr.Element
	d.Coefficients[CoeffIdZero].SetUint64(0)
	d.Coefficients[CoeffIdOne].SetOne()
	d.Coefficients[CoeffIdTwo].SetUint64(2)
	e.SetOne().Neg(&e)
	d.Coefficients[CoeffIdMinusOne].Set(&e)
	e.SetUint64(2).Neg(&e)
	d.Coefficients[CoeffIdMinusTwo].Set(&e)

	return d
}

// AddCoeff returns the id of coeff in the table, inserting it if needed.
func (t *CoeffTable) AddCoeff(coeff fr.Element) uint32 {
	var cID uint32
	if coeff.IsZero() {
		cID = CoeffIdZero
	} else if coeff.IsOne() {
		cID = CoeffIdOne
	} else {
		var e fr.Element
		e.SetUint64(2)
		if coeff.Equal(&e) {
			cID = CoeffIdTwo
		} else {
			e.Neg(&e)
			eMinusOne := fr.One()
			eMinusOne.Neg(&eMinusOne)
			if coeff.Equal(&e) {
				cID = CoeffIdMinusTwo
			} else if coeff.Equal(&eMinusOne) {
				cID = CoeffIdMinusOne
			} else {
				cc, ok := t.mCoeffs[coeff]
				if !ok {
					cc = uint32(len(t.Coefficients))
					t.Coefficients = append(t.Coefficients, coeff)
					t.mCoeffs[coeff] = cc
				}
				cID = cc
			}
		}
	}
	return cID
}

// MakeTerm returns a Term with the given coefficient and internal variable
// index.
func (t *CoeffTable) MakeTerm(coeff fr.Element, variableID int) Term {
	return Term{CID: t.AddCoeff(coeff), VID: uint32(variableID)}
}

// GetCoefficient returns the coefficient stored at id i.
func (t *CoeffTable) GetCoefficient(i int) fr.Element {
	return t.Coefficients[i]
}

// CoeffToString implements Resolver
func (t *CoeffTable) CoeffToString(i int) string {
	var v big.Int
	t.Coefficients[i].BigInt(&v)
	return v.String()
}
