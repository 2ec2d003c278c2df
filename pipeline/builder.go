package pipeline

import (
	"github.com/sarchlab/vupipe/datarecording"
	"github.com/sarchlab/vupipe/dmac"
	"github.com/sarchlab/vupipe/ee"
	"github.com/sarchlab/vupipe/gs"
	"github.com/sarchlab/vupipe/memory"
	"github.com/sarchlab/vupipe/qword"
	"github.com/sarchlab/vupipe/sim"
	"github.com/sarchlab/vupipe/vif"
	"github.com/sarchlab/vupipe/vu"
)

// DefaultFreq is the main-processor clock used to convert cycles to time.
const DefaultFreq = 294.912 * sim.MHz

// Builder can build cores.
type Builder struct {
	freq        sim.Freq
	maxVUCycles uint64
	producer    Producer
	recorder    datarecording.DataRecorder
	program     []vu.Instruction
}

// MakeBuilder creates a builder that runs the rotating cube.
func MakeBuilder() Builder {
	return Builder{
		freq:        DefaultFreq,
		maxVUCycles: vu.DefaultMaxCycles,
	}
}

// WithFreq sets the main-processor clock.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithMaxVUCycles sets the cycle cap of a micro-program run.
func (b Builder) WithMaxVUCycles(n uint64) Builder {
	b.maxVUCycles = n
	return b
}

// WithProducer replaces the cube producer.
func (b Builder) WithProducer(p Producer) Builder {
	b.producer = p
	return b
}

// WithProgram replaces the cube micro-program.
func (b Builder) WithProgram(prog []vu.Instruction) Builder {
	b.program = prog
	return b
}

// WithDataRecorder records the telemetry of every frame.
func (b Builder) WithDataRecorder(r datarecording.DataRecorder) Builder {
	b.recorder = r
	return b
}

// Build creates a core. Stage names are children of name.
func (b Builder) Build(name string) *Core {
	if b.freq <= 0 {
		panic("frequency must be positive")
	}

	c := &Core{
		ComponentBase: sim.NewComponentBase(name),
		freq:          b.freq,
		producer:      b.producer,
		recorder:      b.recorder,
		ram:           memory.NewStorage(ee.RAMSize),
	}

	if c.producer == nil {
		c.producer = ee.MakeBuilder().Build()
	}

	program := b.program
	if program == nil {
		program = vu.CubeProgram()
	}

	c.dmac = dmac.MakeBuilder().Build(sim.BuildName(name, "DMAC"))
	// The FIFO can queue all of memory, so no in-bounds transfer overflows.
	c.vif = vif.MakeBuilder().
		WithFIFOCapacity(ee.RAMSize / qword.Size).
		Build(sim.BuildName(name, "VIF1"))
	c.vu = vu.MakeBuilder().
		WithMaxCycles(b.maxVUCycles).
		WithProgram(program).
		Build(sim.BuildName(name, "VU1"))
	c.fb = gs.MakeBuilder().Build(sim.BuildName(name, "GS"))

	if c.recorder != nil {
		c.recorder.CreateTable(TelemetryTable, Telemetry{})
	}

	return c
}
