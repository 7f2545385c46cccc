package anl

import "github.com/rs/xid"

// A Component is a participant in the network. Components own protocol
// state and live for the span of one simulation. Identity is by Go
// interface equality: for the pointer-receiver components every real
// protocol implementation should use, that is exactly pointer equality,
// matching spec.md §3's "pointer equality is the default identity" rule.
type Component interface {
	// ID returns a stable identifier for the component. It must be unique
	// across a network setup if the structured output module is to
	// produce valid cross-references.
	ID() string
}

// An Actor is a Component with protocol logic attached: given a View onto
// the current slot, it commits exactly one intention. Grounded on
// original_source/include/anl/core/anl.h's Component::doAct, the single
// abstract method every concrete ANL component overrides.
type Actor interface {
	Component

	// Act is called once per slot with a View centered on this component.
	// It must commit exactly one intention on view before returning.
	Act(view *View)
}

// A Message is a value exchanged between components. Messages are
// interned at registration and are immutable; identity is by handle, so
// two distinct Message values are distinct messages even if their
// content is equal (spec.md §3).
type Message interface {
	// String renders the message for the plain-text output module.
	String() string

	// XML renders the message as a sequence of structured-output lines,
	// one element per line, for the XML-like output module.
	XML() []string
}

// Base gives components a stable, auto-generated identifier when the
// protocol implementation has no natural one of its own. Embed it in a
// component struct and it satisfies the ID() method of Component.
//
// Grounded on the teacher's use of github.com/rs/xid for event identity
// (sarchlab-akita's event.go, NewEventBase).
type Base struct {
	id string
}

// NewBase creates a Base with the given id. If id is empty, a fresh xid is
// generated instead.
func NewBase(id string) *Base {
	if id == "" {
		id = xid.New().String()
	}
	return &Base{id: id}
}

// ID returns the component's identifier.
func (b *Base) ID() string {
	return b.id
}
