// Package element converts between bn254 scalar field elements and the
// little-endian byte sequences used on the wire.
//
// An element travels as its canonical (non-Montgomery) unsigned value written
// little-endian. The full width is fr.Bytes; shorter encodings drop high-order
// zero bytes and decode back through zero extension. A packed vector of
// elements is the plain concatenation of full-width encodings, and the element
// width of an incoming packed vector is recovered by dividing the byte length
// by the element count.
package element

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrMalformedInput is returned when a byte buffer is inconsistent with
	// the declared element count or exceeds the field's limb capacity.
	ErrMalformedInput = errors.New("malformed element buffer")

	// ErrTooShort is returned when an encode width cannot hold a full
	// canonical element.
	ErrTooShort = errors.New("encode width smaller than field element size")
)

// maxBytes is the limb capacity of an fr.Element; decoding more bytes than
// this cannot be represented before reduction.
const maxBytes = fr.Limbs * 8

// DecodeLE interprets data as a little-endian unsigned integer, zero-extended
// to the field's limb width, and returns the corresponding field element.
func DecodeLE(data []byte) (fr.Element, error) {
	var e fr.Element
	if len(data) > maxBytes {
		return e, fmt.Errorf("%w: %d bytes exceeds %d-byte field capacity", ErrMalformedInput, len(data), maxBytes)
	}
	var v big.Int
	v.SetBytes(reverse(data))
	e.SetBigInt(&v)
	return e, nil
}

// EncodeLE writes the canonical unsigned value of e as size little-endian
// bytes. High-order bytes beyond the value are zero. size must be at least
// fr.Bytes.
func EncodeLE(e fr.Element, size int) ([]byte, error) {
	return AppendLE(nil, e, size)
}

// AppendLE appends the EncodeLE encoding of e to buf and returns the extended
// slice.
func AppendLE(buf []byte, e fr.Element, size int) ([]byte, error) {
	if size < fr.Bytes {
		return buf, fmt.Errorf("%w: %d < %d", ErrTooShort, size, fr.Bytes)
	}
	var v big.Int
	e.BigInt(&v)
	b := v.Bytes() // big-endian, minimal length
	n := len(buf)
	buf = append(buf, make([]byte, size)...)
	for i := 0; i < len(b); i++ {
		buf[n+i] = b[len(b)-1-i]
	}
	return buf, nil
}

// EncodeMany packs elements at full width, in order.
func EncodeMany(elements []fr.Element) []byte {
	buf := make([]byte, 0, len(elements)*fr.Bytes)
	for _, e := range elements {
		buf, _ = AppendLE(buf, e, fr.Bytes)
	}
	return buf
}

// DecodeMany slices data into count consecutive chunks of equal size and
// decodes each with DecodeLE. The chunk size is len(data)/count and the
// division must be exact.
func DecodeMany(data []byte, count int) ([]fr.Element, error) {
	if count == 0 {
		if len(data) != 0 {
			return nil, fmt.Errorf("%w: %d bytes with no elements", ErrMalformedInput, len(data))
		}
		return nil, nil
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer for %d elements", ErrMalformedInput, count)
	}
	if len(data)%count != 0 {
		return nil, fmt.Errorf("%w: %d bytes not divisible by %d elements", ErrMalformedInput, len(data), count)
	}
	elementSize := len(data) / count
	elements := make([]fr.Element, count)
	for i := range elements {
		var err error
		elements[i], err = DecodeLE(data[i*elementSize : (i+1)*elementSize])
		if err != nil {
			return nil, err
		}
	}
	return elements, nil
}

func reverse(data []byte) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[len(data)-1-i]
	}
	return out
}
