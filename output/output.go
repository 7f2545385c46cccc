// Package output renders a running simulation to the outside world.
// Modules are notified at each point of the slot lifecycle and are free
// to ignore any subset of them; grounded on
// original_source/include/anl/output/output.h's OutputModule and its
// do*/on* split, though the Go rendering collapses that split into a
// single interface with default-friendly embedding (see Base).
package output

//go:generate mockgen -destination ../simulator/mock_output_test.go -package simulator_test github.com/anl-sim/anl/output Module

import "github.com/anl-sim/anl/anl"

// Module is notified of every event in a simulation's lifecycle, in the
// exact order they occur (spec.md §6.3).
type Module interface {
	// SimulationBegin fires once, before slot 0, with the total number of
	// slots that will run and the setup/topology in use.
	SimulationBegin(numSlots int, setup *anl.Setup, topology anl.Topology)

	// SlotBegin fires at the start of every slot.
	SlotBegin(slot int)

	// IntentChosen fires once every component has committed an intention
	// for the current slot.
	IntentChosen(slot int, intent *anl.IntentionAssignment)

	// TransitionComputed fires once ψ has produced the full list of
	// candidate successor states, before non-determinism (if any) is
	// resolved.
	TransitionComputed(slot int, outcomes []*anl.NetworkState)

	// ResultChosen fires once a single successor state has been picked as
	// the slot's outcome.
	ResultChosen(slot int, state *anl.NetworkState)

	// SlotEnd fires at the end of every slot.
	SlotEnd(slot int)

	// SimulationEnd fires once, after the last slot has completed.
	SimulationEnd()
}

// Base is a Module that does nothing at every lifecycle point. Embed it
// to implement only the lifecycle points a module cares about, the way
// akita's HookableBase gives every Hookable a working default.
type Base struct{}

func (Base) SimulationBegin(int, *anl.Setup, anl.Topology) {}
func (Base) SlotBegin(int)                                 {}
func (Base) IntentChosen(int, *anl.IntentionAssignment)    {}
func (Base) TransitionComputed(int, []*anl.NetworkState)   {}
func (Base) ResultChosen(int, *anl.NetworkState)           {}
func (Base) SlotEnd(int)                                   {}
func (Base) SimulationEnd()                                {}

// Multi fans a single stream of lifecycle notifications out to several
// modules, so a simulation can, for instance, print to text and record
// to SQLite in the same run.
type Multi []Module

func (m Multi) SimulationBegin(numSlots int, setup *anl.Setup, topology anl.Topology) {
	for _, mod := range m {
		mod.SimulationBegin(numSlots, setup, topology)
	}
}

func (m Multi) SlotBegin(slot int) {
	for _, mod := range m {
		mod.SlotBegin(slot)
	}
}

func (m Multi) IntentChosen(slot int, intent *anl.IntentionAssignment) {
	for _, mod := range m {
		mod.IntentChosen(slot, intent)
	}
}

func (m Multi) TransitionComputed(slot int, outcomes []*anl.NetworkState) {
	for _, mod := range m {
		mod.TransitionComputed(slot, outcomes)
	}
}

func (m Multi) ResultChosen(slot int, state *anl.NetworkState) {
	for _, mod := range m {
		mod.ResultChosen(slot, state)
	}
}

func (m Multi) SlotEnd(slot int) {
	for _, mod := range m {
		mod.SlotEnd(slot)
	}
}

func (m Multi) SimulationEnd() {
	for _, mod := range m {
		mod.SimulationEnd()
	}
}
