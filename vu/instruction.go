package vu

// An Instruction is one 64-bit VLIW word. Bits [63:32] hold the upper
// (floating-point) slot and bits [31:0] the lower (integer, memory and
// control) slot.
type Instruction uint64

// MakeInstruction packs an upper and a lower slot into one instruction.
func MakeInstruction(u Upper, l Lower) Instruction {
	return Instruction(uint64(u)<<32 | uint64(l))
}

// Upper returns the floating-point slot.
func (i Instruction) Upper() Upper {
	return Upper(i >> 32)
}

// Lower returns the integer/memory/control slot.
func (i Instruction) Lower() Lower {
	return Lower(i)
}

// Upper-slot opcodes (the 9-bit op field).
const (
	OpMULq  uint16 = 0x01C
	OpDIV   uint16 = 0x070
	OpWAITQ uint16 = 0x073
	OpFTOI4 uint16 = 0x17C
	OpNOP   uint16 = 0x1FF
)

// BCOp is the base of a broadcast upper-slot opcode. The two low bits of the
// op field select the broadcast lane.
type BCOp uint16

// Broadcast opcode bases.
const (
	BCAdd   BCOp = 0x000
	BCSub   BCOp = 0x004
	BCMadd  BCOp = 0x008
	BCMax   BCOp = 0x010
	BCMini  BCOp = 0x014
	BCMul   BCOp = 0x018
	BCMula  BCOp = 0x020
	BCMadda BCOp = 0x038
)

// Lane selects one of the four vector lanes.
type Lane uint8

// Vector lanes.
const (
	LaneX Lane = iota
	LaneY
	LaneZ
	LaneW
)

func (l Lane) String() string {
	return string("xyzw"[l&3])
}

// Dest is the 4-bit per-lane write mask of an upper-slot operation.
type Dest uint8

// Destination masks.
const (
	DestX    Dest = 0x8
	DestY    Dest = 0x4
	DestZ    Dest = 0x2
	DestW    Dest = 0x1
	DestXY   Dest = DestX | DestY
	DestXYZ  Dest = DestX | DestY | DestZ
	DestXYZW Dest = 0xF
)

// Has reports whether the mask enables lane l.
func (d Dest) Has(l Lane) bool {
	return d&(DestX>>l) != 0
}

func (d Dest) String() string {
	s := ""
	for l := LaneX; l <= LaneW; l++ {
		if d.Has(l) {
			s += l.String()
		}
	}

	return s
}

// Upper is the floating-point slot of an instruction.
type Upper uint32

// Op9 returns the 9-bit opcode, bits [8:0].
func (u Upper) Op9() uint16 { return uint16(u & 0x1FF) }

// FD returns the destination register, bits [13:9].
func (u Upper) FD() uint8 { return uint8(u>>9) & 0x1F }

// FS returns the first source register, bits [18:14].
func (u Upper) FS() uint8 { return uint8(u>>14) & 0x1F }

// FT returns the second source register, bits [23:19].
func (u Upper) FT() uint8 { return uint8(u>>19) & 0x1F }

// Dest returns the write mask, bits [27:24].
func (u Upper) Dest() Dest { return Dest(u>>24) & 0xF }

// EBit returns the end flag, bit 30. The interpreter ends programs on XGKICK
// only; the flag is decoded for disassembly.
func (u Upper) EBit() bool { return u&(1<<30) != 0 }

// BC returns the broadcast lane of a broadcast op.
func (u Upper) BC() Lane { return Lane(u & 3) }

// BCBase returns the broadcast opcode base.
func (u Upper) BCBase() BCOp { return BCOp(u.Op9() &^ 3) }

// DivLanes returns the numerator and denominator lanes of DIV, which are kept
// in the fd field as fsf = fd[3:2] and ftf = fd[1:0].
func (u Upper) DivLanes() (fsf, ftf Lane) {
	fd := u.FD()
	return Lane(fd>>2) & 3, Lane(fd) & 3
}

// Lower-slot opcodes (the 6-bit op field).
const (
	LowerOpIBNE   uint8 = 0x23
	LowerOpIADDIU uint8 = 0x27
	LowerOpNOP    uint8 = 0x20
	LowerOpXGKICK uint8 = 0x32
	LowerOpLQI    uint8 = 0x3A
	LowerOpSQI    uint8 = 0x3E
)

// Lower is the integer/memory/control slot of an instruction. The register
// fields are named by position since their roles differ per opcode.
type Lower uint32

// Op6 returns the opcode, bits [31:26].
func (l Lower) Op6() uint8 { return uint8(l>>26) & 0x3F }

// Reg21 returns the 5-bit register field at bits [25:21].
func (l Lower) Reg21() uint8 { return uint8(l>>21) & 0x1F }

// IReg21 returns the 4-bit integer register field at bits [24:21].
func (l Lower) IReg21() uint8 { return uint8(l>>21) & 0xF }

// IReg16 returns the 4-bit integer register field at bits [19:16].
func (l Lower) IReg16() uint8 { return uint8(l>>16) & 0xF }

// IReg11 returns the 4-bit integer register field at bits [14:11].
func (l Lower) IReg11() uint8 { return uint8(l>>11) & 0xF }

// Imm15 returns bits [14:0] sign-extended.
func (l Lower) Imm15() int16 {
	return signExtend(uint32(l)&0x7FFF, 15)
}

// Imm11 returns bits [10:0] sign-extended.
func (l Lower) Imm11() int16 {
	return signExtend(uint32(l)&0x7FF, 11)
}

func signExtend(v uint32, bits uint) int16 {
	shift := 32 - bits
	return int16(int32(v<<shift) >> shift)
}
