package cs

// ids of the coefficients with simple values in any cs.Coefficients slice.
const (
	CoeffIdZero = iota
	CoeffIdOne
	CoeffIdTwo
	CoeffIdMinusOne
	CoeffIdMinusTwo
)

// Term represents a coeff * variable in a constraint system.
// VID is the internal variable index (0 is the constant-one wire), CID the
// index of the coefficient in the coeff table.
type Term struct {
	CID, VID uint32
}

func (t *Term) WireID() int {
	return int(t.VID)
}

func (t *Term) CoeffID() int {
	return int(t.CID)
}
