// Package pipeline connects the stages into a frame-stepping session: the
// payload producer writes a packet, the DMA channel moves it into the packet
// parser, the vector unit transforms the vertices, the primitive parser reads
// them back and the rasterizer draws them.
package pipeline

import (
	"fmt"

	"github.com/sarchlab/vupipe/datarecording"
	"github.com/sarchlab/vupipe/dmac"
	"github.com/sarchlab/vupipe/ee"
	"github.com/sarchlab/vupipe/gif"
	"github.com/sarchlab/vupipe/gs"
	"github.com/sarchlab/vupipe/memory"
	"github.com/sarchlab/vupipe/sim"
	"github.com/sarchlab/vupipe/tracing"
	"github.com/sarchlab/vupipe/vif"
	"github.com/sarchlab/vupipe/vu"
)

// EECyclesPerFrame is the emulated main-processor time charged to a frame.
const EECyclesPerFrame = 300000

// TelemetryTable is the data recorder table that receives one row per frame.
const TelemetryTable = "frame_telemetry"

// HookPosFrameDone is triggered at the end of every frame. Item is the
// Telemetry after the frame.
var HookPosFrameDone = &sim.HookPos{Name: "Frame Done"}

// A Producer writes the packet of the next frame into main memory.
type Producer interface {
	BuildPacket(ram ee.Memory) (ee.Packet, error)
}

// Telemetry holds the running counters of a session.
type Telemetry struct {
	EmulatedCycles uint64 `json:"emulatedCycles"`
	VU1MatOps      uint64 `json:"vu1MatOps"`
	FrameCount     uint64 `json:"frameCount"`
	VUCycles       uint64 `json:"vuCycles"`
	Triangles      int    `json:"triangles"`
	KickBase       uint16 `json:"kickBase"`
}

// Core is one emulation session. It owns main memory and every stage.
type Core struct {
	*sim.ComponentBase

	freq     sim.Freq
	producer Producer
	recorder datarecording.DataRecorder

	ram  *memory.Storage
	dmac *dmac.Comp
	vif  *vif.Comp
	vu   *vu.Comp
	fb   *gs.Framebuffer

	emulatedCycles uint64
	matOps         uint64
	frameCount     uint64
	triangles      int
	kickBase       uint16
}

// RAM returns the main memory.
func (c *Core) RAM() *memory.Storage {
	return c.ram
}

// DMAC returns the DMA channel.
func (c *Core) DMAC() *dmac.Comp {
	return c.dmac
}

// VIF returns the packet parser.
func (c *Core) VIF() *vif.Comp {
	return c.vif
}

// VU returns the vector unit.
func (c *Core) VU() *vu.Comp {
	return c.vu
}

// Framebuffer returns the rasterizer's framebuffer.
func (c *Core) Framebuffer() *gs.Framebuffer {
	return c.fb
}

// Components lists the core and its stages.
func (c *Core) Components() []sim.Component {
	return []sim.Component{c, c.dmac, c.vif, c.vu, c.fb}
}

// CurrentTime returns the emulated time, counting main-processor cycles and
// vector-unit cycles.
func (c *Core) CurrentTime() sim.VTimeInSec {
	return c.freq.CyclesToTime(c.emulatedCycles + c.vu.TotalCycles())
}

// Telemetry returns the counters after the last finished frame.
func (c *Core) Telemetry() Telemetry {
	return Telemetry{
		EmulatedCycles: c.emulatedCycles,
		VU1MatOps:      c.matOps,
		FrameCount:     c.frameCount,
		VUCycles:       c.vu.TotalCycles(),
		Triangles:      c.triangles,
		KickBase:       c.kickBase,
	}
}

// StepFrame runs every stage once. An error means the producer could not
// write its packet; the frame is not counted and the framebuffer keeps the
// previous image.
func (c *Core) StepFrame() (Telemetry, error) {
	taskID := sim.GetIDGenerator().Generate()
	tracing.StartTask(taskID, "", c, "frame",
		fmt.Sprintf("frame %d", c.frameCount), nil)
	defer tracing.EndTask(taskID, c)

	pkt, err := c.producer.BuildPacket(c.ram)
	if err != nil {
		return c.Telemetry(), fmt.Errorf("frame %d: %w", c.frameCount, err)
	}

	c.emulatedCycles += EECyclesPerFrame
	tracing.AddTaskStep(taskID, c, "packet")

	c.dmac.Kick(pkt.MADR, pkt.QWC)
	c.dmac.Transfer(c.ram, c.vif.FIFO())
	tracing.AddTaskStep(taskID, c, "dma")

	c.vif.Process(c.vu.DataMem())
	tracing.AddTaskStep(taskID, c, "vif")

	pc, _ := c.vif.TakeMicroCall()
	c.vu.SetPC(pc)
	c.vu.TraceUnder(taskID)
	c.kickBase = c.vu.RunUntilKick()
	c.matOps += pkt.MatOps
	tracing.AddTaskStep(taskID, c, "vu")

	prims := gif.Parse(c.vu.DataMem(), int(c.kickBase))
	tracing.AddTaskStep(taskID, c, "gif")

	c.fb.Clear(c.fb.ClearColor())

	c.triangles = 0
	for _, p := range prims {
		for _, t := range p.Triangles() {
			c.fb.DrawTriangle(t)
			c.triangles++
		}
	}
	tracing.AddTaskStep(taskID, c, "gs")

	c.frameCount++

	t := c.Telemetry()
	c.record(t)
	c.invokeFrameDone(t)

	return t, nil
}

func (c *Core) record(t Telemetry) {
	if c.recorder == nil {
		return
	}

	c.recorder.InsertData(TelemetryTable, t)
}

func (c *Core) invokeFrameDone(t Telemetry) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosFrameDone,
		Item:   t,
	})
}
