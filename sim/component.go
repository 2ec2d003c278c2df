package sim

// A Component is a hardware block of the pipeline. It has a name and can be
// observed through hooks.
type Component interface {
	Named
	Hookable
	InvokeHook(ctx HookCtx)
}

// ComponentBase provides the name and hook bookkeeping that every component
// needs.
type ComponentBase struct {
	HookableBase
	name string
}

// NewComponentBase creates a new ComponentBase
func NewComponentBase(name string) *ComponentBase {
	NameMustBeValid(name)

	c := new(ComponentBase)
	c.name = name

	return c
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string {
	return c.name
}
