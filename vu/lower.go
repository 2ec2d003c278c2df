package vu

type lowerKind int

const (
	lowerNext lowerKind = iota
	lowerBranch
	lowerKick
)

// lowerEffect is the control-flow outcome of the lower slot.
type lowerEffect struct {
	kind   lowerKind
	target uint16
}

// execLower runs the lower slot against the pre-commit registers. Register and
// memory writes take effect immediately.
func (c *Comp) execLower(l Lower) lowerEffect {
	switch l.Op6() {
	case LowerOpLQI:
		c.lqi(int(l.Reg21()), int(l.IReg16()))
	case LowerOpSQI:
		c.sqi(int(l.Reg21()), int(l.IReg11()))
	case LowerOpIADDIU:
		vs := int(l.IReg16())
		c.SetVI(int(l.IReg21()), c.VI(vs)+l.Imm15())
	case LowerOpIBNE:
		if c.VI(int(l.IReg21())) != c.VI(int(l.IReg16())) {
			target := uint16(int32(c.pc) + 1 + int32(l.Imm11()))
			return lowerEffect{kind: lowerBranch, target: target}
		}
	case LowerOpXGKICK:
		return lowerEffect{kind: lowerKick, target: uint16(c.VI(int(l.IReg16())))}
	}

	return lowerEffect{kind: lowerNext}
}

func (c *Comp) lqi(ft, is int) {
	if addr, ok := dataAddr(c.VI(is)); ok && ft != 0 {
		c.vf[ft] = c.dataMem[addr]
	}

	c.SetVI(is, c.VI(is)+1)
}

func (c *Comp) sqi(fs, it int) {
	if addr, ok := dataAddr(c.VI(it)); ok {
		c.dataMem[addr] = c.VF(fs)
	}

	c.SetVI(it, c.VI(it)+1)
}

// dataAddr maps an integer register value to a data-memory slot. Negative
// values are out of range.
func dataAddr(v int16) (int, bool) {
	if v < 0 || int(v) >= DataMemSize {
		return 0, false
	}

	return int(v), true
}
