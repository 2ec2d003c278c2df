package sim

import "log"

// HookPosBufPush marks when an element is pushed into the buffer.
var HookPosBufPush = &HookPos{Name: "Buf Push"}

// HookPosBufPop marks when an element is popped from the buffer.
var HookPosBufPop = &HookPos{Name: "Buf Pop"}

// A Buffer is a bounded fifo queue of elements of type T.
type Buffer[T any] interface {
	Named
	Hookable

	CanPush() bool
	Push(e T)
	Pop() (T, bool)
	Peek() (T, bool)
	Capacity() int
	Size() int

	// Remove all elements in the buffer
	Clear()
}

// NewBuffer creates a default buffer object.
func NewBuffer[T any](name string, capacity int) Buffer[T] {
	NameMustBeValid(name)

	if capacity <= 0 {
		log.Panicf("buffer %s must have a positive capacity", name)
	}

	return &bufferImpl[T]{
		name:     name,
		capacity: capacity,
	}
}

type bufferImpl[T any] struct {
	HookableBase

	name     string
	capacity int
	elements []T
}

// Name returns the name of the buffer.
func (b *bufferImpl[T]) Name() string {
	return b.name
}

func (b *bufferImpl[T]) CanPush() bool {
	return len(b.elements) < b.capacity
}

func (b *bufferImpl[T]) Push(e T) {
	if len(b.elements) >= b.capacity {
		log.Panic("buffer overflow")
	}

	b.elements = append(b.elements, e)

	if b.NumHooks() > 0 {
		b.InvokeHook(HookCtx{
			Domain: b,
			Pos:    HookPosBufPush,
			Item:   e,
		})
	}
}

func (b *bufferImpl[T]) Pop() (T, bool) {
	var zero T

	if len(b.elements) == 0 {
		return zero, false
	}

	e := b.elements[0]
	b.elements[0] = zero
	b.elements = b.elements[1:]

	if b.NumHooks() > 0 {
		b.InvokeHook(HookCtx{
			Domain: b,
			Pos:    HookPosBufPop,
			Item:   e,
		})
	}

	return e, true
}

func (b *bufferImpl[T]) Peek() (T, bool) {
	if len(b.elements) == 0 {
		var zero T
		return zero, false
	}

	return b.elements[0], true
}

func (b *bufferImpl[T]) Capacity() int {
	return b.capacity
}

func (b *bufferImpl[T]) Size() int {
	return len(b.elements)
}

func (b *bufferImpl[T]) Clear() {
	b.elements = nil
}
