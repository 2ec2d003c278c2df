package vif

import (
	"github.com/sarchlab/vupipe/qword"
	"github.com/sarchlab/vupipe/sim"
)

// Builder can build packet parsers.
type Builder struct {
	fifoCapacity int
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		fifoCapacity: 1024,
	}
}

// WithFIFOCapacity sets the number of quadwords the input FIFO can hold.
func (b Builder) WithFIFOCapacity(n int) Builder {
	b.fifoCapacity = n
	return b
}

// Build creates a packet parser with an empty FIFO and STCYCL wl=1 cl=1.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		ComponentBase: sim.NewComponentBase(name),
		wl:            1,
		cl:            1,
	}

	c.fifo = sim.NewBuffer[qword.QW](name+".FIFO", b.fifoCapacity)

	return c
}
