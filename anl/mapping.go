package anl

import "strings"

// Mapping is a total map from every registered component to exactly one
// trait. It is partial until every registered component has an entry;
// once total it may be queried but never mutated (spec.md §3, §4.2). It is
// the Go rendering of TraitMapping<T> from
// original_source/include/anl/core/anl.h.
type Mapping[T Kind] struct {
	setup   *Setup
	entries map[Component]Trait[T]
}

// NewMapping creates an empty (and, unless the setup has no registered
// components, partial) trait mapping over setup.
func NewMapping[T Kind](setup *Setup) *Mapping[T] {
	return &Mapping[T]{
		setup:   setup,
		entries: make(map[Component]Trait[T], setup.ComponentCount()),
	}
}

// SetTraitFor assigns a trait to a component. Overwriting an existing
// entry, or assigning to a component not registered with the underlying
// setup, is a fatal contract violation (spec.md §4.2).
func (m *Mapping[T]) SetTraitFor(c Component, t Trait[T]) {
	defer Enter("Mapping.SetTraitFor")()
	Require(m.setup.IsComponent(c), "component %q is not registered with "+
		"this network setup", idOf(c))
	_, exists := m.entries[c]
	Require(!exists, "trait for component %q was already set this slot",
		idOf(c))
	m.entries[c] = t
}

// GetTraitFor retrieves the trait assigned to a component. Querying while
// the mapping is still partial, or querying an unregistered component, is
// a fatal contract violation (spec.md §4.2).
func (m *Mapping[T]) GetTraitFor(c Component) Trait[T] {
	defer Enter("Mapping.GetTraitFor")()
	Require(m.setup.IsComponent(c), "component %q is not registered with "+
		"this network setup", idOf(c))
	Require(!m.IsPartial(), "trait mapping is still partial; cannot query "+
		"component %q yet", idOf(c))
	t, ok := m.entries[c]
	Require(ok, "component %q has no trait in this mapping", idOf(c))
	return t
}

// IsPartial reports whether some registered component has no entry yet.
func (m *Mapping[T]) IsPartial() bool {
	return len(m.entries) < m.setup.ComponentCount()
}

// Setup returns the network setup this mapping is defined over.
func (m *Mapping[T]) Setup() *Setup {
	return m.setup
}

// ForEach calls cb once per registered component, in registration order,
// with the component's trait. Querying while the mapping is still
// partial is a fatal contract violation, matching GetTraitFor.
func (m *Mapping[T]) ForEach(cb func(Component, Trait[T])) {
	defer Enter("Mapping.ForEach")()
	Require(!m.IsPartial(), "trait mapping is still partial; cannot "+
		"iterate over it yet")
	m.setup.ForEachComponent(func(c Component) {
		cb(c, m.entries[c])
	})
}

// String renders every entry in registration order, comma-separated and
// parenthesized. Grounded on
// original_source/src/core/anl.cpp's TraitMapping<T>::toString.
func (m *Mapping[T]) String() string {
	var parts []string
	m.ForEach(func(_ Component, t Trait[T]) {
		parts = append(parts, t.String())
	})
	return "(" + strings.Join(parts, ", ") + ")"
}

// XML renders every entry as a sequence of structured-output lines.
// Grounded on original_source/src/core/anl.cpp's
// TraitMapping<T>::toXML.
func (m *Mapping[T]) XML() []string {
	var lines []string
	m.ForEach(func(c Component, t Trait[T]) {
		lines = append(lines, "<entry>", "  <for>"+c.ID()+"</for>")
		for _, line := range t.XML() {
			lines = append(lines, "  "+line)
		}
		lines = append(lines, "</entry>")
	})
	return lines
}

func idOf(c Component) string {
	if c == nil {
		return "<nil>"
	}
	return c.ID()
}

// Type aliases matching spec.md §3's IntentionAssignment / NetworkState.
type (
	// IntentionAssignment maps every component to the intention it
	// expressed this slot.
	IntentionAssignment = Mapping[IntentionType]

	// NetworkState maps every component to the action it observed at the
	// end of a slot.
	NetworkState = Mapping[ActionType]
)

// NewIntentionAssignment creates an empty intention assignment over setup.
func NewIntentionAssignment(setup *Setup) *IntentionAssignment {
	return NewMapping[IntentionType](setup)
}

// NewNetworkState creates an empty network state over setup.
func NewNetworkState(setup *Setup) *NetworkState {
	return NewMapping[ActionType](setup)
}
