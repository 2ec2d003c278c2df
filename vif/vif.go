// Package vif implements the packet parser that drains the DMA FIFO, decodes
// VIFcodes and unpacks payload quadwords into the vector unit's data memory.
package vif

import (
	"github.com/sarchlab/vupipe/qword"
	"github.com/sarchlab/vupipe/sim"
	"github.com/sarchlab/vupipe/vu"
)

// HookPosCodeDecoded is triggered for every VIFcode read in idle mode. Item is
// the Code.
var HookPosCodeDecoded = &sim.HookPos{Name: "VIF Code Decoded"}

// HookPosUnpacked is triggered for every payload quadword written to data
// memory. Item is the quadword and Detail the slot index as an int.
var HookPosUnpacked = &sim.HookPos{Name: "VIF Unpacked"}

// Comp is the packet parser.
type Comp struct {
	*sim.ComponentBase

	fifo sim.Buffer[qword.QW]

	wl, cl uint8

	cursor    uint16
	remaining int

	microCall      uint16
	microCallValid bool

	unpacked uint64
}

// FIFO returns the queue the parser drains.
func (c *Comp) FIFO() sim.Buffer[qword.QW] {
	return c.fifo
}

// Cycle returns the stored STCYCL parameters.
func (c *Comp) Cycle() (wl, cl uint8) {
	return c.wl, c.cl
}

// Unpacking reports whether the parser is in the middle of an UNPACK.
func (c *Comp) Unpacking() bool {
	return c.remaining > 0
}

// UnpackedQWs returns the number of payload quadwords written since the
// parser was built.
func (c *Comp) UnpackedQWs() uint64 {
	return c.unpacked
}

// TakeMicroCall returns the last requested MSCAL address and clears the
// request.
func (c *Comp) TakeMicroCall() (uint16, bool) {
	addr, ok := c.microCall, c.microCallValid
	c.microCall, c.microCallValid = 0, false

	return addr, ok
}

// Process drains the whole FIFO into mem and returns the number of quadwords
// consumed. An UNPACK that runs past the end of the FIFO resumes on the next
// call.
func (c *Comp) Process(mem *vu.DataMemory) int {
	n := 0

	for {
		q, ok := c.fifo.Pop()
		if !ok {
			return n
		}

		n++

		if c.remaining > 0 {
			c.unpack(mem, q)
			continue
		}

		c.decode(Code(q.Word(0)))
	}
}

func (c *Comp) unpack(mem *vu.DataMemory, q qword.QW) {
	slot := int(c.cursor) % vu.DataMemSize
	mem[slot] = q.Floats()

	c.cursor++
	c.remaining--
	c.unpacked++

	c.invoke(HookPosUnpacked, q, slot)
}

func (c *Comp) decode(code Code) {
	c.invoke(HookPosCodeDecoded, code, nil)

	switch code.Cmd() {
	case CmdSTCYCL:
		c.wl, c.cl = code.WL(), code.CL()
	case CmdUNPACKV4_32:
		if code.Num() > 0 {
			c.cursor = code.Addr()
			c.remaining = int(code.Num())
		}
	case CmdMSCAL:
		c.microCall, c.microCallValid = code.Imm(), true
	case CmdFLUSH:
		// Nothing is ever in flight.
	}
}

func (c *Comp) invoke(pos *sim.HookPos, item, detail interface{}) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    pos,
		Item:   item,
		Detail: detail,
	})
}
