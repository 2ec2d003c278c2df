package vu

import "math"

// stagedWrite is an upper-slot result waiting to be committed.
type stagedWrite struct {
	fd    int
	dest  Dest
	value Vector
}

// execUpper evaluates the upper slot against the current registers. Register
// results are returned for a later commit; accumulator and reciprocal-unit
// updates take effect immediately.
func (c *Comp) execUpper(u Upper) (stagedWrite, bool) {
	vfs := c.VF(int(u.FS()))
	vft := c.VF(int(u.FT()))
	staged := stagedWrite{fd: int(u.FD()), dest: u.Dest()}

	switch u.Op9() {
	case OpNOP:
		return staged, false
	case OpDIV:
		fsf, ftf := u.DivLanes()
		c.div(vfs[fsf], vft[ftf])
		return staged, false
	case OpWAITQ:
		c.divBusy = 0
		return staged, false
	case OpMULq:
		staged.value = lanewise(vfs, c.q, mul)
		return staged, true
	case OpFTOI4:
		for l := range vfs {
			staged.value[l] = ftoi4(vfs[l])
		}
		return staged, true
	}

	return c.execBroadcast(u, vfs, vft[u.BC()], staged)
}

func (c *Comp) execBroadcast(
	u Upper,
	vfs Vector,
	s float32,
	staged stagedWrite,
) (stagedWrite, bool) {
	switch u.BCBase() {
	case BCAdd:
		staged.value = lanewise(vfs, s, add)
	case BCSub:
		staged.value = lanewise(vfs, s, sub)
	case BCMadd:
		staged.value = c.accPlus(lanewise(vfs, s, mul))
	case BCMax:
		staged.value = lanewise(vfs, s, maxf)
	case BCMini:
		staged.value = lanewise(vfs, s, minf)
	case BCMul:
		staged.value = lanewise(vfs, s, mul)
	case BCMula:
		c.acc = masked(c.acc, u.Dest(), lanewise(vfs, s, mul))
		return staged, false
	case BCMadda:
		c.acc = masked(c.acc, u.Dest(), c.accPlus(lanewise(vfs, s, mul)))
		return staged, false
	default:
		return staged, false
	}

	return staged, true
}

func (c *Comp) div(num, den float32) {
	if float32(math.Abs(float64(den))) < divEpsilon {
		c.q = 0
	} else {
		c.q = num / den
	}

	c.divBusy = c.divLatency
}

func (c *Comp) accPlus(v Vector) Vector {
	for l := range v {
		v[l] = c.acc[l] + v[l]
	}

	return v
}

func lanewise(v Vector, s float32, op func(a, b float32) float32) Vector {
	var r Vector
	for l := range v {
		r[l] = op(v[l], s)
	}

	return r
}

func add(a, b float32) float32 { return a + b }
func sub(a, b float32) float32 { return a - b }
func mul(a, b float32) float32 { return a * b }

// maxf and minf return the non-NaN operand when exactly one is NaN.
func maxf(a, b float32) float32 {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case a > b:
		return a
	}

	return b
}

func minf(a, b float32) float32 {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case a < b:
		return a
	}

	return b
}

// ftoi4 converts v to 12.4 fixed point and returns the integer's bit pattern
// as a float lane.
func ftoi4(v float32) float32 {
	return math.Float32frombits(uint32(FloatToFixed4(v)))
}

// FloatToFixed4 rounds v*16 half away from zero to a saturated int32. NaN
// converts to 0.
func FloatToFixed4(v float32) int32 {
	scaled := float64(v * 16)

	switch {
	case scaled != scaled:
		return 0
	case scaled >= math.MaxInt32:
		return math.MaxInt32
	case scaled <= math.MinInt32:
		return math.MinInt32
	}

	return int32(math.Round(scaled))
}

// Fixed4ToInt reinterprets the bit pattern of a float lane as a 12.4 fixed
// point number and returns its integer part.
func Fixed4ToInt(lane float32) int32 {
	return int32(math.Float32bits(lane)) >> 4
}
