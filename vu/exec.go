package vu

import (
	"fmt"

	"github.com/sarchlab/vupipe/sim"
	"github.com/sarchlab/vupipe/tracing"
)

// HookPosInstRetired is triggered after each instruction. Item is the
// Instruction and Detail is its program counter as a uint16.
var HookPosInstRetired = &sim.HookPos{Name: "VU Inst Retired"}

// HookPosRunAborted is triggered when a run ends without XGKICK, either by
// hitting the cycle cap or by fetching outside code memory. Detail is the
// fallback base address.
var HookPosRunAborted = &sim.HookPos{Name: "VU Run Aborted"}

// Step executes the instruction at the program counter. It returns the base
// address and true when the instruction was an XGKICK. A program counter
// outside code memory executes nothing and ends the program with the fallback
// base.
//
// Each cycle the reciprocal countdown ticks first. The upper slot is evaluated
// and its register result staged, the lower slot runs against the pre-commit
// registers, the staged result is committed, and finally the program counter
// moves.
func (c *Comp) Step() (base uint16, ended bool) {
	pc := c.pc
	if int(pc) >= CodeMemSize {
		c.invokeAborted()
		return c.fallbackBase, true
	}

	inst := c.codeMem[pc]

	if c.divBusy > 0 {
		c.divBusy--
	}

	staged, ok := c.execUpper(inst.Upper())
	effect := c.execLower(inst.Lower())

	if ok {
		c.SetVF(staged.fd, staged.dest, staged.value)
	}

	c.totalCycles++
	c.lastRunCycles++
	c.invokeRetired(inst, pc)

	switch effect.kind {
	case lowerBranch:
		c.pc = effect.target
	case lowerKick:
		c.pc++
		return effect.target, true
	default:
		c.pc++
	}

	return 0, false
}

// RunUntilKick executes from the current program counter until an XGKICK and
// returns the reported data-memory base address. A run that exceeds the cycle
// cap or fetches outside code memory returns the fallback base instead.
func (c *Comp) RunUntilKick() uint16 {
	taskID := c.startRunTask()
	defer c.endRunTask(taskID)

	c.lastRunCycles = 0

	for {
		if c.lastRunCycles >= c.maxCycles {
			c.invokeAborted()
			return c.fallbackBase
		}

		if c.NumHooks() > 0 && int(c.pc) < CodeMemSize {
			inst := c.codeMem[c.pc]
			tracing.AddTaskStep(taskID, c, OpName(inst.Upper()))
			tracing.AddTaskStep(taskID, c, LowerOpName(inst.Lower()))
		}

		if base, ended := c.Step(); ended {
			return base
		}
	}
}

func (c *Comp) startRunTask() string {
	if c.NumHooks() == 0 {
		return ""
	}

	taskID := sim.GetIDGenerator().Generate()
	tracing.StartTask(
		taskID,
		c.taskParentID,
		c,
		"vu_program",
		fmt.Sprintf("mscal@%d", c.pc),
		nil,
	)

	return taskID
}

func (c *Comp) endRunTask(taskID string) {
	if taskID == "" {
		return
	}

	tracing.EndTask(taskID, c)
}

func (c *Comp) invokeRetired(inst Instruction, pc uint16) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosInstRetired,
		Item:   inst,
		Detail: pc,
	})
}

func (c *Comp) invokeAborted() {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosRunAborted,
		Item:   c.pc,
		Detail: c.fallbackBase,
	})
}
