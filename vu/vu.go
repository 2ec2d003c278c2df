// Package vu implements the vector unit: a dual-issue VLIW interpreter with a
// floating-point register file, an integer register file, an accumulator, a
// reciprocal unit with modelled latency and a 1024-slot data memory.
package vu

import (
	"github.com/sarchlab/vupipe/sim"
)

// Memory and register file sizes.
const (
	DataMemSize = 1024
	CodeMemSize = 512
	NumVF       = 32
	NumVI       = 16
)

// Defaults of the interpreter.
const (
	DefaultMaxCycles    = 100000
	DefaultFallbackBase = 109
	DefaultDivLatency   = 7
	divEpsilon          = 1e-37
)

// A Vector is one four-lane float register or data-memory slot, ordered
// x, y, z, w.
type Vector [4]float32

// DataMemory is the unit's data memory. The packet parser writes it before a
// program runs and the primitive parser reads it after.
type DataMemory [DataMemSize]Vector

var vf0 = Vector{0, 0, 0, 1}

// Comp is a vector unit.
type Comp struct {
	*sim.ComponentBase

	vf      [NumVF]Vector
	vi      [NumVI]int16
	acc     Vector
	q       float32
	pc      uint16
	divBusy uint8

	dataMem *DataMemory
	codeMem [CodeMemSize]Instruction

	maxCycles    uint64
	fallbackBase uint16
	divLatency   uint8

	totalCycles   uint64
	lastRunCycles uint64
	taskParentID  string
}

// DataMem returns the data memory of the unit.
func (c *Comp) DataMem() *DataMemory {
	return c.dataMem
}

// LoadProgram copies prog into code memory starting at slot 0. Slots past the
// end of prog are zeroed.
func (c *Comp) LoadProgram(prog []Instruction) {
	if len(prog) > CodeMemSize {
		panic("program does not fit in code memory")
	}

	c.codeMem = [CodeMemSize]Instruction{}
	copy(c.codeMem[:], prog)
}

// CodeMem returns the instruction at slot i.
func (c *Comp) CodeMem(i int) Instruction {
	return c.codeMem[i]
}

// VF returns vector register r. VF0 always reads (0, 0, 0, 1).
func (c *Comp) VF(r int) Vector {
	if r == 0 {
		return vf0
	}

	return c.vf[r]
}

// SetVF writes the lanes of vector register r selected by dest. Writes to VF0
// are discarded.
func (c *Comp) SetVF(r int, dest Dest, v Vector) {
	if r == 0 {
		return
	}

	c.vf[r] = masked(c.vf[r], dest, v)
}

// VI returns integer register r. VI0 always reads 0.
func (c *Comp) VI(r int) int16 {
	if r == 0 {
		return 0
	}

	return c.vi[r]
}

// SetVI writes integer register r. Writes to VI0 are discarded.
func (c *Comp) SetVI(r int, v int16) {
	if r == 0 {
		return
	}

	c.vi[r] = v
}

// ACC returns the accumulator.
func (c *Comp) ACC() Vector {
	return c.acc
}

// Q returns the reciprocal unit's result register.
func (c *Comp) Q() float32 {
	return c.q
}

// DivBusy returns the remaining reciprocal latency in cycles.
func (c *Comp) DivBusy() uint8 {
	return c.divBusy
}

// PC returns the program counter.
func (c *Comp) PC() uint16 {
	return c.pc
}

// SetPC sets the program counter, as a micro-call does.
func (c *Comp) SetPC(pc uint16) {
	c.pc = pc
}

// TotalCycles returns the number of cycles executed since the unit was built.
func (c *Comp) TotalCycles() uint64 {
	return c.totalCycles
}

// LastRunCycles returns the number of cycles of the most recent run.
func (c *Comp) LastRunCycles() uint64 {
	return c.lastRunCycles
}

// TraceUnder sets the parent task ID of the tasks the unit emits for its
// runs.
func (c *Comp) TraceUnder(parentTaskID string) {
	c.taskParentID = parentTaskID
}

// Reset clears the registers, accumulator and reciprocal unit. Data and code
// memory are kept.
func (c *Comp) Reset() {
	c.vf = [NumVF]Vector{}
	c.vi = [NumVI]int16{}
	c.acc = Vector{}
	c.q = 1
	c.pc = 0
	c.divBusy = 0
}

func masked(old Vector, dest Dest, v Vector) Vector {
	for l := LaneX; l <= LaneW; l++ {
		if dest.Has(l) {
			old[l] = v[l]
		}
	}

	return old
}
