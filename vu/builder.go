package vu

import "github.com/sarchlab/vupipe/sim"

// Builder can build vector units.
type Builder struct {
	maxCycles    uint64
	fallbackBase uint16
	divLatency   uint8
	program      []Instruction
	dataMem      *DataMemory
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		maxCycles:    DefaultMaxCycles,
		fallbackBase: DefaultFallbackBase,
		divLatency:   DefaultDivLatency,
	}
}

// WithMaxCycles sets the number of cycles after which a run is cut off.
func (b Builder) WithMaxCycles(n uint64) Builder {
	b.maxCycles = n
	return b
}

// WithFallbackBase sets the base address reported when a run ends without
// reaching XGKICK.
func (b Builder) WithFallbackBase(base uint16) Builder {
	b.fallbackBase = base
	return b
}

// WithDivLatency sets the number of cycles the reciprocal unit stays busy
// after a DIV.
func (b Builder) WithDivLatency(cycles uint8) Builder {
	b.divLatency = cycles
	return b
}

// WithProgram sets the program loaded into code memory at build time.
func (b Builder) WithProgram(prog []Instruction) Builder {
	b.program = prog
	return b
}

// WithDataMemory makes the unit use an existing data memory.
func (b Builder) WithDataMemory(m *DataMemory) Builder {
	b.dataMem = m
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.maxCycles == 0 {
		panic("max cycles must be positive")
	}

	if len(b.program) > CodeMemSize {
		panic("program does not fit in code memory")
	}
}

// Build creates a vector unit.
func (b Builder) Build(name string) *Comp {
	b.parametersMustBeValid()

	c := &Comp{
		ComponentBase: sim.NewComponentBase(name),
		maxCycles:     b.maxCycles,
		fallbackBase:  b.fallbackBase,
		divLatency:    b.divLatency,
		dataMem:       b.dataMem,
	}

	if c.dataMem == nil {
		c.dataMem = new(DataMemory)
	}

	c.Reset()
	c.LoadProgram(b.program)

	return c
}
