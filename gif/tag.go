// Package gif decodes the packed GIF tag the micro-program kicks and turns
// its register data into shaded vertices.
package gif

import (
	"fmt"

	"github.com/sarchlab/vupipe/qword"
)

// Register descriptors of the REGS field.
const (
	RegPRIM  uint8 = 0x00
	RegRGBAQ uint8 = 0x01
	RegST    uint8 = 0x02
	RegUV    uint8 = 0x03
	RegXYZF2 uint8 = 0x04
	RegXYZ2  uint8 = 0x05
	RegFOG   uint8 = 0x0A
	RegAD    uint8 = 0x0E
	RegNOP   uint8 = 0x0F
)

// Data formats of the FLG field. Only FlagPacked is decoded.
const (
	FlagPacked  uint8 = 0
	FlagReglist uint8 = 1
	FlagImage   uint8 = 2
)

// Primitive type codes and attribute bits of the PRIM field.
const (
	PrimTriangle uint16 = 0x3
	PrimIIP      uint16 = 1 << 3
)

// A Tag is a 128-bit GIF tag.
type Tag qword.QW

// NLoop returns bits [14:0], the number of register-set repetitions.
func (t Tag) NLoop() int {
	return int(t.Lo & 0x7FFF)
}

// EOP returns bit 15, the end-of-packet flag.
func (t Tag) EOP() bool {
	return t.Lo&(1<<15) != 0
}

// PRE returns bit 46, set when the PRIM field is valid.
func (t Tag) PRE() bool {
	return t.Lo&(1<<46) != 0
}

// Prim returns bits [57:47].
func (t Tag) Prim() uint16 {
	return uint16(t.Lo>>47) & 0x7FF
}

// Flag returns bits [60:59], the data format.
func (t Tag) Flag() uint8 {
	return uint8(t.Lo>>59) & 0x3
}

// NReg returns bits [63:60], raised to at least 1.
func (t Tag) NReg() int {
	return max(int(t.Lo>>60), 1)
}

// Reg returns the register descriptor at position i of the REGS field.
func (t Tag) Reg(i int) uint8 {
	return uint8(t.Hi>>(4*uint(i&0xF))) & 0xF
}

// IIP reports whether the tag selects Gouraud shading.
func (t Tag) IIP() bool {
	return t.PRE() && t.Prim()&PrimIIP != 0
}

func (t Tag) String() string {
	return fmt.Sprintf(
		"GIFtag{nloop:%d eop:%t pre:%t prim:0x%03x flg:%d nreg:%d regs:0x%016x}",
		t.NLoop(), t.EOP(), t.PRE(), t.Prim(), t.Flag(), t.NReg(), t.Hi)
}

// TagBuilder encodes GIF tags.
type TagBuilder struct {
	nloop int
	eop   bool
	pre   bool
	prim  uint16
	flag  uint8
	regs  []uint8
}

// MakeTagBuilder creates a builder for a packed tag. At least one register
// must be set before Build.
func MakeTagBuilder() TagBuilder {
	return TagBuilder{}
}

// WithNLoop sets the repetition count.
func (b TagBuilder) WithNLoop(n int) TagBuilder {
	b.nloop = n
	return b
}

// WithEOP marks the tag as the last of the packet.
func (b TagBuilder) WithEOP() TagBuilder {
	b.eop = true
	return b
}

// WithPrim sets the PRIM field and the PRE bit.
func (b TagBuilder) WithPrim(prim uint16) TagBuilder {
	b.pre = true
	b.prim = prim
	return b
}

// WithFlag sets the data format.
func (b TagBuilder) WithFlag(flg uint8) TagBuilder {
	b.flag = flg
	return b
}

// WithRegs sets the register descriptors, at most 16.
func (b TagBuilder) WithRegs(regs ...uint8) TagBuilder {
	b.regs = append([]uint8(nil), regs...)
	return b
}

// Build encodes the tag.
func (b TagBuilder) Build() Tag {
	if len(b.regs) == 0 || len(b.regs) > 16 {
		panic("a GIF tag needs 1 to 16 registers")
	}

	lo := uint64(b.nloop) & 0x7FFF
	if b.eop {
		lo |= 1 << 15
	}

	if b.pre {
		lo |= 1 << 46
	}

	lo |= uint64(b.prim&0x7FF) << 47
	lo |= uint64(b.flag&0x3) << 59
	lo |= uint64(len(b.regs)&0xF) << 60

	var hi uint64
	for i, r := range b.regs {
		hi |= uint64(r&0xF) << (4 * uint(i))
	}

	return Tag{Lo: lo, Hi: hi}
}
