package vif

import "fmt"

// Command codes, the top byte of a VIFcode.
const (
	CmdNOP         uint8 = 0x00
	CmdSTCYCL      uint8 = 0x01
	CmdFLUSH       uint8 = 0x11
	CmdMSCAL       uint8 = 0x14
	CmdUNPACKV4_32 uint8 = 0x6C
)

var cmdNames = map[uint8]string{
	CmdNOP:         "NOP",
	CmdSTCYCL:      "STCYCL",
	CmdFLUSH:       "FLUSH",
	CmdMSCAL:       "MSCAL",
	CmdUNPACKV4_32: "UNPACK.V4-32",
}

// A Code is a 32-bit VIFcode: cmd[31:24], num[23:16], imm[15:0].
type Code uint32

// MakeCode packs a command and its 24-bit data field.
func MakeCode(cmd uint8, data uint32) Code {
	return Code(uint32(cmd)<<24 | data&0xFFFFFF)
}

// Cmd returns the command byte.
func (c Code) Cmd() uint8 {
	return uint8(c >> 24)
}

// Num returns bits [23:16], the quadword count of an UNPACK.
func (c Code) Num() uint8 {
	return uint8(c >> 16)
}

// Imm returns bits [15:0].
func (c Code) Imm() uint16 {
	return uint16(c)
}

// Addr returns the 10-bit destination slot of an UNPACK.
func (c Code) Addr() uint16 {
	return uint16(c) & 0x3FF
}

// WL returns the write-cycle length of an STCYCL.
func (c Code) WL() uint8 {
	return uint8(c >> 8)
}

// CL returns the cycle length of an STCYCL.
func (c Code) CL() uint8 {
	return uint8(c)
}

func (c Code) String() string {
	switch c.Cmd() {
	case CmdSTCYCL:
		return fmt.Sprintf("STCYCL wl=%d cl=%d", c.WL(), c.CL())
	case CmdUNPACKV4_32:
		return fmt.Sprintf("UNPACK.V4-32 num=%d addr=%d", c.Num(), c.Addr())
	case CmdMSCAL:
		return fmt.Sprintf("MSCAL %d", c.Imm())
	}

	if name, ok := cmdNames[c.Cmd()]; ok {
		return name
	}

	return fmt.Sprintf("VIFcode{cmd:0x%.2x num:0x%.2x imm:0x%.4x}",
		c.Cmd(), c.Num(), c.Imm())
}

// STCYCL encodes a set-cycle code.
func STCYCL(wl, cl uint8) Code {
	return MakeCode(CmdSTCYCL, uint32(wl)<<8|uint32(cl))
}

// UNPACK encodes an UNPACK V4-32 of num quadwords to slot addr.
func UNPACK(num uint8, addr uint16) Code {
	return MakeCode(CmdUNPACKV4_32, uint32(num)<<16|uint32(addr&0x3FF))
}

// MSCAL encodes a micro-call at addr.
func MSCAL(addr uint16) Code {
	return MakeCode(CmdMSCAL, uint32(addr))
}

// FLUSH encodes a flush.
func FLUSH() Code {
	return MakeCode(CmdFLUSH, 0)
}
