// SPDX-License-Identifier: MIT

// Package matrix: versioned binary record.
//
// Wire shape (big-endian, 40 bytes):
//
//	int32   version (currently Version)
//	float32 × 9 elements in storage order: column 0 rows 0..2, column 1, column 2
//
// Readers reject records whose version is newer than Version; older versions
// share the same layout.
package matrix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Version is the highest record version this package writes and understands.
const Version = 100

// RecordSize is the encoded size of a Matrix3 in bytes.
const RecordSize = 4 + 4*Size*Size

var (
	_ interface {
		MarshalBinary() ([]byte, error)
		WriteTo(io.Writer) (int64, error)
	} = Matrix3{}
	_ interface {
		UnmarshalBinary([]byte) error
		ReadFrom(io.Reader) (int64, error)
	} = (*Matrix3)(nil)
)

// MarshalBinary encodes m as a RecordSize-byte versioned record.
func (m Matrix3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RecordSize)
	m.encode(buf)

	return buf, nil
}

func (m Matrix3) encode(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:4], uint32(Version))
	for i, v := range m {
		binary.BigEndian.PutUint32(buf[4+4*i:], math.Float32bits(v))
	}
}

// UnmarshalBinary decodes a record produced by MarshalBinary.
// Errors: ErrShortBuffer (fewer than RecordSize bytes), ErrVersion.
// m is only written on success.
func (m *Matrix3) UnmarshalBinary(data []byte) error {
	if len(data) < RecordSize {
		return matrixErrorf(opUnmarshal, fmt.Errorf("got %d bytes, want %d: %w", len(data), RecordSize, ErrShortBuffer))
	}
	if err := m.decode(data); err != nil {
		return matrixErrorf(opUnmarshal, err)
	}

	return nil
}

func (m *Matrix3) decode(buf []byte) error {
	if v := int32(binary.BigEndian.Uint32(buf[0:4])); v > Version {
		return fmt.Errorf("version %d > %d: %w", v, Version, ErrVersion)
	}
	var out Matrix3
	for i := range out {
		out[i] = math.Float32frombits(binary.BigEndian.Uint32(buf[4+4*i:]))
	}
	*m = out

	return nil
}

// WriteTo writes the binary record of m to w.
func (m Matrix3) WriteTo(w io.Writer) (int64, error) {
	var buf [RecordSize]byte
	m.encode(buf[:])
	n, err := w.Write(buf[:])
	if err != nil {
		return int64(n), matrixErrorf(opWriteTo, err)
	}

	return int64(n), nil
}

// ReadFrom reads exactly one binary record from r into m.
// A truncated stream yields ErrShortBuffer.
func (m *Matrix3) ReadFrom(r io.Reader) (int64, error) {
	var buf [RecordSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("read %d of %d bytes: %w", n, RecordSize, ErrShortBuffer)
		}

		return int64(n), matrixErrorf(opReadFrom, err)
	}
	if err = m.decode(buf[:]); err != nil {
		return int64(n), matrixErrorf(opReadFrom, err)
	}

	return int64(n), nil
}
