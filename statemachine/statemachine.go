// Package statemachine provides a Component base for protocols that are
// naturally expressed as "state in, state out" rather than a raw View
// callback. Grounded on
// original_source/include/anl/core/statemachine.h's
// StateMachineComponent<T>, which specializes Component by tracking a
// single templated state value across slots.
//
// Go has no virtual-method override, so where the original overrides
// doStateAct, Component instead holds a Step function value
// supplied at construction time — the same function-field-as-override
// idiom the anl package's HookFunc uses for Hook.
package statemachine

import "github.com/anl-sim/anl/anl"

// Step computes the next state for a component given its current state
// and its view onto the current slot. It is expected to call exactly one
// of view.Idle, view.Listen, or view.Send.
type Step[T any] func(view *anl.View, state T) T

// Component is a Component whose protocol logic is expressed purely as a
// state transition function over T. It is the Go rendering of
// StateMachineComponent<T>.
type Component[T any] struct {
	*anl.Base

	state T
	step  Step[T]
}

// New creates a state machine component with the given id (empty for an
// auto-generated one), initial state, and step function.
func New[T any](id string, initial T, step Step[T]) *Component[T] {
	anl.Require(step != nil, "state machine component requires a non-nil step function")
	return &Component[T]{
		Base:  anl.NewBase(id),
		state: initial,
		step:  step,
	}
}

// State returns the component's current state.
func (c *Component[T]) State() T {
	return c.state
}

// Act runs one slot of the state machine: it invokes the step function
// with the current state and view, and stores the returned state as the
// new current state. Simulator drivers call this once per component per
// slot (spec.md §4.6).
func (c *Component[T]) Act(view *anl.View) {
	c.state = c.step(view, c.state)
}
