// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the versioned binary record.
package matrix_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvcolor/matrix"
	"github.com/stretchr/testify/require"
)

// TestMarshalBinary_Layout pins the wire shape: big-endian version then nine
// float32 in storage order (column by column).
func TestMarshalBinary_Layout(t *testing.T) {
	t.Parallel()

	m := matrix.New([3][3]float32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	data, err := m.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, matrix.RecordSize)
	require.Equal(t, []byte{0, 0, 0, 100}, data[:4])

	// column 0 = 1,4,7 ; column 1 = 2,5,8 ; column 2 = 3,6,9
	want := []float32{1, 4, 7, 2, 5, 8, 3, 6, 9}
	for i, v := range want {
		got := math.Float32frombits(binary.BigEndian.Uint32(data[4+4*i:]))
		require.Equal(t, v, got, "field %d", i)
	}
}

// TestBinary_RoundTrip checks bit-exact decode of encoded values.
func TestBinary_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []matrix.Matrix3{matrix.Identity(), matrix.Rotation(0.1, 0.2, 0.3), RandomMatrix(99)} {
		data, err := m.MarshalBinary()
		require.NoError(t, err)

		var got matrix.Matrix3
		require.NoError(t, got.UnmarshalBinary(data))
		require.Equal(t, m, got)
	}
}

// TestUnmarshalBinary_Version accepts older and current tags, rejects newer.
func TestUnmarshalBinary_Version(t *testing.T) {
	t.Parallel()

	data, err := matrix.Scaling(1, 2, 3).MarshalBinary()
	require.NoError(t, err)

	binary.BigEndian.PutUint32(data[:4], 99)
	var m matrix.Matrix3
	require.NoError(t, m.UnmarshalBinary(data))
	require.True(t, m.Equal(matrix.Scaling(1, 2, 3)))

	binary.BigEndian.PutUint32(data[:4], matrix.Version+1)
	before := m
	err = m.UnmarshalBinary(data)
	require.ErrorIs(t, err, matrix.ErrVersion)
	require.True(t, m.Equal(before), "failed decode must not write")
}

// TestUnmarshalBinary_Short rejects truncated input.
func TestUnmarshalBinary_Short(t *testing.T) {
	t.Parallel()

	data, err := matrix.Identity().MarshalBinary()
	require.NoError(t, err)

	var m matrix.Matrix3
	require.ErrorIs(t, m.UnmarshalBinary(data[:matrix.RecordSize-1]), matrix.ErrShortBuffer)
	require.ErrorIs(t, m.UnmarshalBinary(nil), matrix.ErrShortBuffer)
}

// TestWriteToReadFrom streams two records back to back.
func TestWriteToReadFrom(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a, b := matrix.RotationX(1), matrix.Translation(2, 3)
	n, err := a.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(matrix.RecordSize), n)
	_, err = b.WriteTo(&buf)
	require.NoError(t, err)

	var got matrix.Matrix3
	n, err = got.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(matrix.RecordSize), n)
	require.Equal(t, a, got)

	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, b, got)

	// stream exhausted
	_, err = got.ReadFrom(&buf)
	require.ErrorIs(t, err, matrix.ErrShortBuffer)
}

// TestReadFrom_Truncated reports ErrShortBuffer with the bytes consumed.
func TestReadFrom_Truncated(t *testing.T) {
	t.Parallel()

	data, err := matrix.Identity().MarshalBinary()
	require.NoError(t, err)

	var m matrix.Matrix3
	n, err := m.ReadFrom(bytes.NewReader(data[:10]))
	require.ErrorIs(t, err, matrix.ErrShortBuffer)
	require.Equal(t, int64(10), n)
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

// TestWriteTo_PropagatesError keeps the writer's error matchable.
func TestWriteTo_PropagatesError(t *testing.T) {
	t.Parallel()

	_, err := matrix.Identity().WriteTo(failingWriter{})
	require.ErrorIs(t, err, errDiskFull)
	require.Contains(t, err.Error(), "WriteTo:")
}

// FuzzUnmarshalBinary ensures arbitrary input never panics and accepted
// records re-encode to the same payload.
func FuzzUnmarshalBinary(f *testing.F) {
	seed, _ := matrix.Rotation(0.5, 0.5, 0.5).MarshalBinary()
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 101})
	f.Add(bytes.Repeat([]byte{0xff}, matrix.RecordSize))

	f.Fuzz(func(t *testing.T, data []byte) {
		var m matrix.Matrix3
		if err := m.UnmarshalBinary(data); err != nil {
			return
		}
		out, err := m.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}
		if !bytes.Equal(out[4:], data[4:matrix.RecordSize]) {
			t.Fatalf("payload changed:\n in=%x\nout=%x", data[4:matrix.RecordSize], out[4:])
		}
	})
}
