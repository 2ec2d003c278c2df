package vu

import "fmt"

var bcOpNames = map[BCOp]string{
	BCAdd:   "ADD",
	BCSub:   "SUB",
	BCMadd:  "MADD",
	BCMax:   "MAX",
	BCMini:  "MINI",
	BCMul:   "MUL",
	BCMula:  "MULA",
	BCMadda: "MADDA",
}

// OpName returns the mnemonic of an upper slot without operands, e.g. "MADDz".
func OpName(u Upper) string {
	switch u.Op9() {
	case OpNOP:
		return "NOP"
	case OpDIV:
		return "DIV"
	case OpWAITQ:
		return "WAITQ"
	case OpMULq:
		return "MULq"
	case OpFTOI4:
		return "FTOI4"
	}

	name, ok := bcOpNames[u.BCBase()]
	if !ok {
		return fmt.Sprintf("UPPER(%#03x)", u.Op9())
	}

	return name + u.BC().String()
}

// LowerOpName returns the mnemonic of a lower slot without operands.
func LowerOpName(l Lower) string {
	switch l.Op6() {
	case LowerOpLQI:
		return "LQI"
	case LowerOpSQI:
		return "SQI"
	case LowerOpIADDIU:
		return "IADDIU"
	case LowerOpIBNE:
		return "IBNE"
	case LowerOpXGKICK:
		return "XGKICK"
	}

	return "NOP"
}

// DisassembleUpper renders the upper slot with its operands.
func DisassembleUpper(u Upper) string {
	name := OpName(u)
	e := ""
	if u.EBit() {
		e = "[E]"
	}

	switch u.Op9() {
	case OpNOP, OpWAITQ:
		return name + e
	case OpDIV:
		fsf, ftf := u.DivLanes()
		return fmt.Sprintf("DIV%s Q, vf%02d%s, vf%02d%s",
			e, u.FS(), fsf, u.FT(), ftf)
	case OpMULq:
		return fmt.Sprintf("MULq%s.%s vf%02d, vf%02d, Q",
			e, u.Dest(), u.FD(), u.FS())
	case OpFTOI4:
		return fmt.Sprintf("FTOI4%s.%s vf%02d, vf%02d",
			e, u.Dest(), u.FD(), u.FS())
	}

	if _, ok := bcOpNames[u.BCBase()]; !ok {
		return name
	}

	dst := fmt.Sprintf("vf%02d", u.FD())
	if u.BCBase() == BCMula || u.BCBase() == BCMadda {
		dst = "ACC"
	}

	return fmt.Sprintf("%s%s.%s %s, vf%02d, vf%02d%s",
		name, e, u.Dest(), dst, u.FS(), u.FT(), u.BC())
}

// DisassembleLower renders the lower slot with its operands.
func DisassembleLower(l Lower) string {
	switch l.Op6() {
	case LowerOpLQI:
		return fmt.Sprintf("LQI vf%02d, (vi%02d++)", l.Reg21(), l.IReg16())
	case LowerOpSQI:
		return fmt.Sprintf("SQI vf%02d, (vi%02d++)", l.Reg21(), l.IReg11())
	case LowerOpIADDIU:
		return fmt.Sprintf("IADDIU vi%02d, vi%02d, %d",
			l.IReg21(), l.IReg16(), l.Imm15())
	case LowerOpIBNE:
		return fmt.Sprintf("IBNE vi%02d, vi%02d, %d",
			l.IReg21(), l.IReg16(), l.Imm11())
	case LowerOpXGKICK:
		return fmt.Sprintf("XGKICK vi%02d", l.IReg16())
	case LowerOpNOP:
		return "NOP"
	}

	return fmt.Sprintf("NOP(%#02x)", l.Op6())
}

// Disassemble renders both slots of an instruction as "upper | lower".
func Disassemble(inst Instruction) string {
	return DisassembleUpper(inst.Upper()) + " | " + DisassembleLower(inst.Lower())
}
