package simulator

import (
	"github.com/anl-sim/anl/anl"
	"github.com/anl-sim/anl/monitor"
	"github.com/anl-sim/anl/output"
)

// Builder assembles a Driver. Follows the value-receiver, chained
// With*/Build() shape used throughout the teacher's example builders
// (e.g. sarchlab-akita's examples/ping/builder.go), rather than the
// pointer-mutating variant used by its datamoving/builder.go — this
// package has no shared mutable engine handle to guard against
// double-use, so the value form is the simpler fit.
type Builder struct {
	ticsPerSlot int
	semantics   anl.Semantics
	topology    anl.Topology
	components  []anl.Actor
	messages    []anl.Message
	modules     []output.Module
	monitor     *monitor.Monitor
}

// NewBuilder creates a Builder for a network with the given tic
// granularity, defaulting to naive semantics and a plain-text output
// module — mirroring original_source/src/core/simulator.cpp's
// Simulator constructor, which defaults mSemantics to
// ANLSemantics::NAIVE.
func NewBuilder(ticsPerSlot int) Builder {
	return Builder{ticsPerSlot: ticsPerSlot, semantics: anl.Naive}
}

// WithSemantics selects canonical or naive transition semantics.
func (b Builder) WithSemantics(s anl.Semantics) Builder {
	b.semantics = s
	return b
}

// WithTopology sets the network topology. Required before Build.
func (b Builder) WithTopology(t anl.Topology) Builder {
	b.topology = t
	return b
}

// WithComponent registers one actor component with the simulation.
func (b Builder) WithComponent(c anl.Actor) Builder {
	b.components = append(b.components, c)
	return b
}

// WithComponents registers several actor components at once.
func (b Builder) WithComponents(cs ...anl.Actor) Builder {
	b.components = append(b.components, cs...)
	return b
}

// WithMessage registers one message with the simulation.
func (b Builder) WithMessage(m anl.Message) Builder {
	b.messages = append(b.messages, m)
	return b
}

// WithMessages registers several messages at once.
func (b Builder) WithMessages(ms ...anl.Message) Builder {
	b.messages = append(b.messages, ms...)
	return b
}

// WithOutputModule adds an output module to be notified of the
// simulation lifecycle. Multiple calls fan out to every module added,
// via output.Multi.
func (b Builder) WithOutputModule(m output.Module) Builder {
	b.modules = append(b.modules, m)
	return b
}

// WithMonitor attaches an HTTP monitor that is updated once per slot.
func (b Builder) WithMonitor(mon *monitor.Monitor) Builder {
	b.monitor = mon
	return b
}

// Build finalizes the setup and returns a ready-to-run Driver. A missing
// topology, or an empty component list, is a configuration error (exit
// code 1), not a fatal contract violation — the driver has not started
// running any slots yet (spec.md §7). With no output module added, the
// driver uses a plain-text module on stdout.
func (b Builder) Build() *Driver {
	anl.ConfigFatalIf(b.topology == nil, "simulator: no topology configured; call WithTopology")
	anl.ConfigFatalIf(len(b.components) == 0, "simulator: no components configured")

	setup := anl.NewSetup(b.ticsPerSlot)
	for _, c := range b.components {
		setup.RegisterComponent(c)
	}
	for _, m := range b.messages {
		setup.RegisterMessage(m)
	}

	mod := output.Module(output.Multi(b.modules))
	if len(b.modules) == 0 {
		mod = output.NewText()
	}

	return &Driver{
		HookableBase: anl.NewHookableBase(),
		setup:        setup,
		topology:     b.topology,
		anl:          anl.NewANL(setup, b.semantics),
		module:       mod,
		monitor:      b.monitor,
		semantics:    b.semantics,
	}
}
