package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestMessageRoundTrip(t *testing.T) {
	messages := []Message{
		&GadgetInstance{
			ConnectionIDs:  []uint64{5, 9},
			FreeVariableID: 100,
			Config:         []KeyValue{{Key: "strategy", Value: []byte("fast")}},
		},
		&Witness{IncomingValues: []byte{1, 2, 3, 4}},
		&R1CSConstraints{Constraints: []BilinearConstraint{{
			A: VariableValues{VariableIDs: []uint64{5}, Values: bytes.Repeat([]byte{0}, fr.Bytes)},
		}}},
		&AssignedVariables{Values: VariableValues{VariableIDs: []uint64{100}}},
		&GadgetReturn{FreeVariableID: 103, Error: "division by zero"},
	}

	var buf bytes.Buffer
	var written int64
	for _, m := range messages {
		n, err := WriteMessage(&buf, m)
		require.NoError(t, err)
		written += n
		require.Equal(t, written, int64(buf.Len()))
	}

	for _, want := range messages {
		got, err := ReadMessage(&buf)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Zero(t, buf.Len())
}

func TestFrameLayout(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteMessage(&buf, &GadgetReturn{FreeVariableID: 7})
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	raw := buf.Bytes()
	// length prefix covers everything after itself
	require.Equal(t, uint32(len(raw)-4), binary.LittleEndian.Uint32(raw[:4]))
	// magic at fixed offset 4
	require.Equal(t, Magic, string(raw[4:8]))
	// then the message type
	require.Equal(t, byte(TypeGadgetReturn), raw[8])
}

func TestReadMessageBadMagic(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteMessage(&buf, &GadgetReturn{})
	require.NoError(t, err)

	raw := buf.Bytes()
	copy(raw[4:8], "nope")
	_, err = ReadMessage(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadMessageUnknownType(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteMessage(&buf, &GadgetReturn{})
	require.NoError(t, err)

	raw := buf.Bytes()
	raw[8] = 0xff
	_, err = ReadMessage(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrUnexpectedMessage)
}

func TestReadMessageOversizedFrame(t *testing.T) {
	// a hostile length prefix is rejected before any allocation
	prefix := binary.LittleEndian.AppendUint32(nil, 0xffffffff)
	_, err := ReadMessage(bytes.NewReader(prefix))
	require.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestReadMessageTruncated(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteMessage(&buf, &GadgetInstance{ConnectionIDs: []uint64{1, 2, 3}})
	require.NoError(t, err)

	raw := buf.Bytes()
	_, err = ReadMessage(bytes.NewReader(raw[:len(raw)-2]))
	require.Error(t, err)
}

func TestCheckFieldOrder(t *testing.T) {
	inst := &GadgetInstance{}
	require.NoError(t, inst.CheckFieldOrder()) // absent order is accepted

	// the modulus itself, little-endian
	order := fr.Modulus().Bytes()
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	inst.FieldOrder = order
	require.NoError(t, inst.CheckFieldOrder())

	inst.FieldOrder = []byte{0xff}
	require.ErrorIs(t, inst.CheckFieldOrder(), ErrFieldMismatch)
}

func TestGadgetReturnErr(t *testing.T) {
	r := &GadgetReturn{}
	require.NoError(t, r.Err())
	r.Error = "out of range"
	require.Error(t, r.Err())
}

func TestKeyValueGet(t *testing.T) {
	kvs := []KeyValue{{Key: "a", Value: []byte{1}}, {Key: "b", Value: []byte{2}}}
	require.Equal(t, []byte{2}, Get(kvs, "b"))
	require.Nil(t, Get(kvs, "c"))
}
