package dmac

import "github.com/sarchlab/vupipe/sim"

// Builder can build DMA channels.
type Builder struct{}

// MakeBuilder creates a new Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// Build creates an idle DMA channel.
func (b Builder) Build(name string) *Comp {
	return &Comp{
		ComponentBase: sim.NewComponentBase(name),
	}
}
