package vu

// Encoders for the instruction forms the interpreter executes. Register
// numbers are masked to their field widths.

// UpperNOP encodes NOP.
func UpperNOP() Upper {
	return Upper(OpNOP)
}

// UpperBC encodes a broadcast op: fd.dest = op(fs, ft.bc). For BCMula and
// BCMadda the result goes to the accumulator and fd is ignored.
func UpperBC(op BCOp, dest Dest, fd, fs, ft uint8, bc Lane) Upper {
	op9 := uint32(op) | uint32(bc&3)

	return Upper(uint32(dest&0xF)<<24 |
		uint32(ft&0x1F)<<19 |
		uint32(fs&0x1F)<<14 |
		uint32(fd&0x1F)<<9 |
		op9)
}

// UpperDIV encodes DIV Q, fs.fsf / ft.ftf.
func UpperDIV(fs uint8, fsf Lane, ft uint8, ftf Lane) Upper {
	fd := uint32(fsf&3)<<2 | uint32(ftf&3)

	return Upper(uint32(ft&0x1F)<<19 |
		uint32(fs&0x1F)<<14 |
		fd<<9 |
		uint32(OpDIV))
}

// UpperWAITQ encodes WAITQ.
func UpperWAITQ() Upper {
	return Upper(OpWAITQ)
}

// UpperMULq encodes MULq.dest fd, fs, Q.
func UpperMULq(dest Dest, fd, fs uint8) Upper {
	return Upper(uint32(dest&0xF)<<24 |
		uint32(fs&0x1F)<<14 |
		uint32(fd&0x1F)<<9 |
		uint32(OpMULq))
}

// UpperFTOI4 encodes FTOI4.dest fd, fs.
func UpperFTOI4(dest Dest, fd, fs uint8) Upper {
	return Upper(uint32(dest&0xF)<<24 |
		uint32(fs&0x1F)<<14 |
		uint32(fd&0x1F)<<9 |
		uint32(OpFTOI4))
}

// LowerNOP encodes the canonical lower-slot NOP.
func LowerNOP() Lower {
	return Lower(uint32(LowerOpNOP) << 26)
}

// LowerIADDIU encodes IADDIU vt, vs, imm with a 15-bit immediate.
func LowerIADDIU(vt, vs uint8, imm int16) Lower {
	return Lower(uint32(LowerOpIADDIU)<<26 |
		uint32(vt&0xF)<<21 |
		uint32(vs&0xF)<<16 |
		uint32(uint16(imm))&0x7FFF)
}

// LowerIBNE encodes IBNE vs, vt, off with an 11-bit offset relative to the
// next instruction.
func LowerIBNE(vs, vt uint8, off int16) Lower {
	return Lower(uint32(LowerOpIBNE)<<26 |
		uint32(vs&0xF)<<21 |
		uint32(vt&0xF)<<16 |
		uint32(uint16(off))&0x7FF)
}

// LowerXGKICK encodes XGKICK is.
func LowerXGKICK(is uint8) Lower {
	return Lower(uint32(LowerOpXGKICK)<<26 | uint32(is&0xF)<<16)
}

// LowerLQI encodes LQI ft, (is++).
func LowerLQI(ft, is uint8) Lower {
	return Lower(uint32(LowerOpLQI)<<26 |
		uint32(ft&0x1F)<<21 |
		uint32(is&0xF)<<16)
}

// LowerSQI encodes SQI fs, (it++).
func LowerSQI(fs, it uint8) Lower {
	return Lower(uint32(LowerOpSQI)<<26 |
		uint32(fs&0x1F)<<21 |
		uint32(it&0xF)<<11)
}
