// Package dmac models the DMA channel that moves a packet from main memory
// into the packet parser's FIFO.
package dmac

import (
	"github.com/sarchlab/vupipe/qword"
	"github.com/sarchlab/vupipe/sim"
)

// Channel control bits.
const (
	// CHCRDir selects the memory-to-peripheral direction.
	CHCRDir uint32 = 0x001
	// CHCRStart (STR) is set while a transfer is pending.
	CHCRStart uint32 = 0x100
)

// HookPosTransferDone is triggered after a transfer pushed its quadwords.
// Item is the Registers snapshot, Detail the number of quadwords moved.
var HookPosTransferDone = &sim.HookPos{Name: "DMAC Transfer Done"}

// HookPosTransferAborted is triggered when a transfer is dropped because its
// source range does not fit in memory. Item is the Registers snapshot.
var HookPosTransferAborted = &sim.HookPos{Name: "DMAC Transfer Aborted"}

// Memory is the source of a transfer.
type Memory interface {
	Contains(address, length uint64) bool
	ReadQW(address uint64) (qword.QW, error)
}

// Registers are the channel's memory-mapped registers.
type Registers struct {
	MADR uint32
	QWC  uint32
	CHCR uint32
}

// Start reports whether the STR bit is set.
func (r Registers) Start() bool {
	return r.CHCR&CHCRStart != 0
}

// Comp is a single DMA channel.
type Comp struct {
	*sim.ComponentBase

	Regs Registers

	totalQWs uint64
}

// Kick programs the channel and sets it busy.
func (c *Comp) Kick(madr, qwc uint32) {
	c.Regs.MADR = madr
	c.Regs.QWC = qwc
	c.Regs.CHCR = CHCRStart | CHCRDir
}

// Busy reports whether a kicked transfer has not run yet.
func (c *Comp) Busy() bool {
	return c.Regs.Start()
}

// TotalQWs returns the number of quadwords moved since the channel was built.
func (c *Comp) TotalQWs() uint64 {
	return c.totalQWs
}

// Transfer runs the pending transfer, if any, and returns the number of
// quadwords pushed. The transfer is all-or-nothing: when any byte of the
// source range is outside memory, the busy bit is cleared and nothing is
// pushed. dst must be able to queue every quadword of an in-bounds range.
func (c *Comp) Transfer(src Memory, dst sim.Buffer[qword.QW]) int {
	if !c.Busy() {
		return 0
	}

	defer c.clearStart()

	qws, ok := c.readSource(src)
	if !ok {
		c.invoke(HookPosTransferAborted, nil)
		return 0
	}

	for _, q := range qws {
		dst.Push(q)
	}

	c.totalQWs += uint64(len(qws))
	c.invoke(HookPosTransferDone, len(qws))

	return len(qws)
}

func (c *Comp) readSource(src Memory) ([]qword.QW, bool) {
	base := uint64(c.Regs.MADR)
	count := uint64(c.Regs.QWC)

	if !src.Contains(base, count*qword.Size) {
		return nil, false
	}

	qws := make([]qword.QW, 0, count)
	for i := uint64(0); i < count; i++ {
		q, err := src.ReadQW(base + i*qword.Size)
		if err != nil {
			return nil, false
		}

		qws = append(qws, q)
	}

	return qws, true
}

func (c *Comp) clearStart() {
	c.Regs.CHCR &^= CHCRStart
}

func (c *Comp) invoke(pos *sim.HookPos, detail interface{}) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    pos,
		Item:   c.Regs,
		Detail: detail,
	})
}
