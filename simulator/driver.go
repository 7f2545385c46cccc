// Package simulator drives an ANL network through a sequence of slots,
// dispatching protocol callbacks, computing the transition, resolving
// non-determinism, and notifying output modules and hooks along the way.
// Grounded on original_source/src/core/simulator.cpp's Simulator.
package simulator

import (
	"fmt"
	"os"

	"github.com/anl-sim/anl/anl"
	"github.com/anl-sim/anl/monitor"
	"github.com/anl-sim/anl/output"
)

// Resolver picks a single successor state out of the (possibly several)
// states ψ admits. The default, FirstResolver, matches
// original_source/src/core/simulator.cpp's runSlot, which asserted
// exactly one outcome and otherwise refused to proceed ("can not deal
// with non-determinism yet"); FirstResolver keeps that assertion. A
// different policy can be installed with Driver.WithResolver.
type Resolver func(outcomes []*anl.NetworkState) *anl.NetworkState

// FirstResolver always picks the first candidate outcome, after asserting
// there is exactly one — spec.md §4.6 step 5 and §9 both state that the
// current contract requires ψ to have reduced the successor set to a
// single outcome and that a violation is fatal, matching
// original_source/src/core/simulator.cpp's
// Misc::Asserts::require(outcomes.size() == 1, ...). A pluggable
// Resolver is left as a documented, forward-compatible extension point
// for a future multi-outcome policy; it does not relax today's contract.
func FirstResolver(outcomes []*anl.NetworkState) *anl.NetworkState {
	anl.Require(len(outcomes) == 1,
		"transition produced %d successor states; the current contract "+
			"requires exactly one outcome", len(outcomes))
	return outcomes[0]
}

// Driver runs a configured network for a number of slots. Construct one
// with Builder.
type Driver struct {
	*anl.HookableBase

	setup     *anl.Setup
	topology  anl.Topology
	anl       *anl.ANL
	semantics anl.Semantics
	module    output.Module
	monitor   *monitor.Monitor
	resolver  Resolver

	slot         int
	hasBegun     bool
	previous     *anl.NetworkState
	intendedRuns int
}

// WithResolver overrides the non-determinism resolution policy. Must be
// called before Run/RunSingle.
func (d *Driver) WithResolver(r Resolver) *Driver {
	d.resolver = r
	return d
}

// Run performs the simulation for the given number of slots. Must not be
// called more than once, and must not be combined with RunSingle
// (spec.md §4.6, original_source/src/core/simulator.cpp's Simulator::run).
func (d *Driver) Run(numSlots int) {
	defer anl.Enter("Driver.Run")()
	anl.ConfigFatalIf(numSlots <= 0, "simulation duration must be greater than zero")

	for i := 0; i < numSlots; i++ {
		d.RunSingle(numSlots)
	}
	d.EndSingle()
}

// RunSingle runs a single slot. May be called repeatedly; a sequence of
// RunSingle calls must be terminated by exactly one call to EndSingle.
// intendedSlots is only read on the first call: it goes into the one-time
// startup announcement and is the total slot count reported to the
// monitor.
func (d *Driver) RunSingle(intendedSlots int) {
	defer anl.Enter("Driver.RunSingle")()
	anl.Require(d.topology != nil, "network topology must be set")

	if !d.hasBegun {
		d.hasBegun = true
		fmt.Fprintf(os.Stderr, "Log: [INFO] simulating %d slots.\n", intendedSlots)
		d.module.SimulationBegin(intendedSlots, d.setup, d.topology)
		d.intendedRuns = intendedSlots
	}
	d.runSlot()
	d.slot++
}

// EndSingle terminates a sequence of RunSingle calls.
func (d *Driver) EndSingle() {
	defer anl.Enter("Driver.EndSingle")()
	d.module.SimulationEnd()
}

func (d *Driver) runSlot() {
	defer anl.Enter("Driver.runSlot")()
	d.InvokeHook(d.slot, anl.BeforeSlot, nil)
	d.module.SlotBegin(d.slot)

	targetIntent := anl.NewIntentionAssignment(d.setup)

	fmt.Fprintf(os.Stderr, "Log: [INFO] running network protocol for slot %d.\n", d.slot)
	d.anl.RunSlot(d.slot, d.previous, targetIntent)
	anl.Require(!targetIntent.IsPartial(), "protocol produced a partial intention assignment")

	d.InvokeHook(d.slot, anl.IntentChosen, targetIntent)
	d.module.IntentChosen(d.slot, targetIntent)

	outcomes := d.anl.Transition(d.topology, targetIntent)
	d.InvokeHook(d.slot, anl.TransitionComputed, outcomes)
	d.module.TransitionComputed(d.slot, outcomes)

	resolve := d.resolver
	if resolve == nil {
		resolve = FirstResolver
	}
	d.previous = resolve(outcomes)

	d.module.ResultChosen(d.slot, d.previous)

	if d.monitor != nil {
		d.monitor.ReportSlot(d.slot, d.intendedRuns, d.semantics.String())
	}

	d.InvokeHook(d.slot, anl.AfterSlot, d.previous)
	d.module.SlotEnd(d.slot)
}

// Slot returns the number of the slot about to run, which equals the
// number of slots completed so far (3 after Run(3)).
func (d *Driver) Slot() int {
	return d.slot
}

// PreviousState returns the outcome of the most recently completed slot,
// or nil before slot 0 has run.
func (d *Driver) PreviousState() *anl.NetworkState {
	return d.previous
}
