// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Magic identifies a framed message; it sits right after the length prefix.
const Magic = "zkif"

const headerSize = len(Magic) + 1 // magic + message type byte

// maxFrameSize caps a single framed message. The length field is only 32 bits
// anyway; this keeps a hostile prefix from forcing a multi-GiB allocation.
const maxFrameSize = 1 << 30

// WriteMessage frames and writes a single message: 4-byte little-endian
// length, magic, type byte, cbor body. It returns the number of bytes
// written, length prefix included.
func WriteMessage(w io.Writer, m Message) (int64, error) {
	body, err := cbor.Marshal(m)
	if err != nil {
		return 0, err
	}
	if len(body) > maxFrameSize-headerSize {
		return 0, fmt.Errorf("%w: %d byte body", ErrFrameTooLarge, len(body))
	}

	var header [4 + headerSize]byte
	binary.LittleEndian.PutUint32(header[:4], uint32(headerSize+len(body)))
	copy(header[4:], Magic)
	header[4+len(Magic)] = byte(m.Type())

	n, err := w.Write(header[:])
	if err != nil {
		return int64(n), err
	}
	written, err := w.Write(body)
	return int64(n + written), err
}

// ReadMessage reads one framed message and returns the decoded body.
func ReadMessage(r io.Reader) (Message, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	length := binary.LittleEndian.Uint32(prefix[:])
	if int(length) < headerSize {
		return nil, fmt.Errorf("%w: frame of %d bytes", ErrInvalidMagic, length)
	}
	if length > maxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, length)
	}

	frame := make([]byte, length)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, err
	}
	if string(frame[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, frame[:len(Magic)])
	}

	t := MessageType(frame[len(Magic)])
	body := frame[headerSize:]

	var m Message
	switch t {
	case TypeGadgetInstance:
		m = &GadgetInstance{}
	case TypeWitness:
		m = &Witness{}
	case TypeR1CSConstraints:
		m = &R1CSConstraints{}
	case TypeAssignedVariables:
		m = &AssignedVariables{}
	case TypeGadgetReturn:
		m = &GadgetReturn{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedMessage, t)
	}
	if err := cbor.Unmarshal(body, m); err != nil {
		return nil, err
	}
	return m, nil
}
