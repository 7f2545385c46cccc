package anl

// Setup is the static universe a simulation runs against: the number of
// tics per slot, the components registered with the network (in
// registration order), and the set of registered messages.
//
// The insertion order of components is part of the contract: output
// rendering, trait mapping dumps, and the sender-set solver all iterate
// components in registration order (spec.md §9, "Iteration ordering").
// Grounded on original_source/include/anl/core/anl.h's NetworkSetup.
type Setup struct {
	ticsPerSlot int
	components  []Component
	componentOf map[Component]struct{}
	messages    map[Message]struct{}
}

// NewSetup creates a network setup with the given tics-per-slot
// granularity. ticsPerSlot must be at least 1; violating this is a
// programmer contract violation (fatal).
func NewSetup(ticsPerSlot int) *Setup {
	Require(ticsPerSlot >= 1, "tics per slot must be at least 1, got %d",
		ticsPerSlot)
	return &Setup{
		ticsPerSlot: ticsPerSlot,
		componentOf: make(map[Component]struct{}),
		messages:    make(map[Message]struct{}),
	}
}

// RegisterMessage registers a message with the setup. A nil message or a
// message that is already registered is a fatal contract violation.
func (s *Setup) RegisterMessage(m Message) {
	defer Enter("Setup.RegisterMessage")()
	Require(m != nil, "cannot register a nil message")
	_, exists := s.messages[m]
	Require(!exists, "message already registered")
	s.messages[m] = struct{}{}
}

// RegisterComponent registers a component with the setup, appending it to
// the registration order. A nil component or a component that is already
// registered is a fatal contract violation.
func (s *Setup) RegisterComponent(c Component) {
	defer Enter("Setup.RegisterComponent")()
	Require(c != nil, "cannot register a nil component")
	_, exists := s.componentOf[c]
	Require(!exists, "component already registered")
	s.componentOf[c] = struct{}{}
	s.components = append(s.components, c)
}

// IsMessage reports whether m is registered with this setup.
func (s *Setup) IsMessage(m Message) bool {
	if m == nil {
		return false
	}
	_, ok := s.messages[m]
	return ok
}

// IsComponent reports whether c is registered with this setup.
func (s *Setup) IsComponent(c Component) bool {
	if c == nil {
		return false
	}
	_, ok := s.componentOf[c]
	return ok
}

// ForEachComponent invokes cb for every registered component, in
// registration order.
func (s *Setup) ForEachComponent(cb func(Component)) {
	for _, c := range s.components {
		cb(c)
	}
}

// ComponentCount returns the number of registered components.
func (s *Setup) ComponentCount() int {
	return len(s.components)
}

// TicsPerSlot returns the number of tics per slot.
func (s *Setup) TicsPerSlot() int {
	return s.ticsPerSlot
}
