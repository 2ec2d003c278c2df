// Package qword defines the 128-bit quadword, the unit in which every FIFO,
// memory and register of the pipeline moves data.
package qword

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Size is the number of bytes in a quadword.
const Size = 16

// A QW is a little-endian 128-bit value. Lo holds bits [63:0] and Hi holds
// bits [127:64].
type QW struct {
	Lo uint64
	Hi uint64
}

// FromBytes decodes the first 16 bytes of b as a little-endian quadword.
func FromBytes(b []byte) QW {
	_ = b[Size-1]

	return QW{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// FromWords builds a quadword from four 32-bit words, w0 being the least
// significant.
func FromWords(w0, w1, w2, w3 uint32) QW {
	return QW{
		Lo: uint64(w0) | uint64(w1)<<32,
		Hi: uint64(w2) | uint64(w3)<<32,
	}
}

// FromFloats builds a quadword whose four words are the bit patterns of the
// given floats.
func FromFloats(f [4]float32) QW {
	return FromWords(
		math.Float32bits(f[0]),
		math.Float32bits(f[1]),
		math.Float32bits(f[2]),
		math.Float32bits(f[3]),
	)
}

// Bytes encodes the quadword as 16 little-endian bytes.
func (q QW) Bytes() [Size]byte {
	var b [Size]byte

	binary.LittleEndian.PutUint64(b[0:8], q.Lo)
	binary.LittleEndian.PutUint64(b[8:16], q.Hi)

	return b
}

// Word returns the i-th 32-bit word, 0 being bits [31:0].
func (q QW) Word(i int) uint32 {
	switch i {
	case 0:
		return uint32(q.Lo)
	case 1:
		return uint32(q.Lo >> 32)
	case 2:
		return uint32(q.Hi)
	case 3:
		return uint32(q.Hi >> 32)
	}

	panic(fmt.Sprintf("word index %d out of range", i))
}

// Words returns the four 32-bit words, least significant first.
func (q QW) Words() [4]uint32 {
	return [4]uint32{q.Word(0), q.Word(1), q.Word(2), q.Word(3)}
}

// Floats reinterprets the four words as float32 lanes (x, y, z, w). The bit
// patterns are kept as they are.
func (q QW) Floats() [4]float32 {
	return [4]float32{
		math.Float32frombits(q.Word(0)),
		math.Float32frombits(q.Word(1)),
		math.Float32frombits(q.Word(2)),
		math.Float32frombits(q.Word(3)),
	}
}

// String prints the quadword as four hex words, most significant first.
func (q QW) String() string {
	return fmt.Sprintf("%08x_%08x_%08x_%08x",
		q.Word(3), q.Word(2), q.Word(1), q.Word(0))
}
