package anl

import "fmt"

// ActionType enumerates the outcome actions a component can observe one
// slot later.
type ActionType int

// The action variants (spec.md §3).
const (
	Idle ActionType = iota
	Silence
	Collision
	Received
	Sent
	Cancelled
)

// String renders the action type using its long-form name, used by
// diagnostics; output modules use the short symbol table instead.
func (a ActionType) String() string {
	switch a {
	case Idle:
		return "Idle"
	case Silence:
		return "Silence"
	case Collision:
		return "Collision"
	case Received:
		return "Received"
	case Sent:
		return "Sent"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IntentionType enumerates the per-slot intentions a component's protocol
// callback can express.
type IntentionType int

// The intention variants (spec.md §3).
const (
	IntentIdle IntentionType = iota
	IntentListen
	IntentSend
	IntentSendForce
)

// String renders the intention type using its long-form name.
func (i IntentionType) String() string {
	switch i {
	case IntentIdle:
		return "Idle"
	case IntentListen:
		return "Listen"
	case IntentSend:
		return "Send"
	case IntentSendForce:
		return "SendForce"
	default:
		return "Unknown"
	}
}

// Kind is the set of enums a Trait can be parameterized over. It is the Go
// generics rendering of the C++ ComponentTrait<T> template parameter.
type Kind interface {
	ActionType | IntentionType
}

// hasPayload reports whether a given kind value carries a (tic, message)
// payload. Idle/Silence/Collision/Listen do not; Received/Sent/Cancelled
// and Send/SendForce do.
func hasPayload[T Kind](k T) bool {
	switch v := any(k).(type) {
	case ActionType:
		return v == Received || v == Sent || v == Cancelled
	case IntentionType:
		return v == IntentSend || v == IntentSendForce
	}
	return false
}

// symbol renders the short-code table spec.md §6 mandates for both plain-
// text and structured output: IDL/LST/SEND/SEND! for intentions, IDL/SIL/
// COL/RCVD/SENT/CCLD for actions. The long-form String() methods above
// remain for diagnostics that want the readable name instead.
func symbol[T Kind](k T) string {
	switch v := any(k).(type) {
	case ActionType:
		switch v {
		case Idle:
			return "IDL"
		case Silence:
			return "SIL"
		case Collision:
			return "COL"
		case Received:
			return "RCVD"
		case Sent:
			return "SENT"
		case Cancelled:
			return "CCLD"
		}
	case IntentionType:
		switch v {
		case IntentIdle:
			return "IDL"
		case IntentListen:
			return "LST"
		case IntentSend:
			return "SEND"
		case IntentSendForce:
			return "SEND!"
		}
	}
	return "?"
}

// Trait is a typed tagged pair {action-or-intention, tic, message}. It is
// the Go rendering of ComponentTrait<T> from
// original_source/include/anl/core/anl.h.
type Trait[T Kind] struct {
	kind    T
	tic     int
	message Message
}

// NewTrait constructs a trait of the given kind, tic, and message,
// validating spec.md §3's invariants: payload-free variants must carry
// tic 0 and no message; payload variants require tic < ticsPerSlot and a
// non-nil message. An unregistered message only produces a warning on the
// diagnostic channel (spec.md §4.2, §7 "Expectation ... differs from
// requirement").
func NewTrait[T Kind](setup *Setup, kind T, tic int, message Message) Trait[T] {
	defer Enter("NewTrait")()
	if hasPayload(kind) {
		Require(tic >= 0 && tic < setup.TicsPerSlot(),
			"tic %d out of range [0, %d) for trait kind %v", tic,
			setup.TicsPerSlot(), kind)
		Require(message != nil, "trait kind %v requires a message", kind)
		Expect(setup.IsMessage(message),
			"message used in a trait was never registered with the setup")
	} else {
		Require(tic == 0, "trait kind %v must carry tic 0, got %d", kind, tic)
		Require(message == nil, "trait kind %v must not carry a message", kind)
	}
	return Trait[T]{kind: kind, tic: tic, message: message}
}

// Kind returns the trait's action or intention variant.
func (t Trait[T]) Kind() T {
	return t.kind
}

// Tic returns the trait's tic, or 0 for payload-free variants.
func (t Trait[T]) Tic() int {
	return t.tic
}

// Message returns the trait's message, or nil for payload-free variants.
func (t Trait[T]) Message() Message {
	return t.message
}

// Equal reports whether two traits are equal: same variant, and if the
// variant carries a payload, the same tic and the same message handle
// (spec.md §3, "Variant-level equality with payload equality").
func (t Trait[T]) Equal(other Trait[T]) bool {
	if t.kind != other.kind {
		return false
	}
	if !hasPayload(t.kind) {
		return true
	}
	return t.tic == other.tic && t.message == other.message
}

// String renders the trait using the short symbol table, with the
// optional payload appended as [msg-text, tic] (spec.md §6).
func (t Trait[T]) String() string {
	if !hasPayload(t.kind) {
		return symbol(t.kind)
	}
	return fmt.Sprintf("%s[%s, %d]", symbol(t.kind), t.message.String(), t.tic)
}

// XML renders the trait as a sequence of structured-output lines, one
// element per line, indented for the caller to nest into an enclosing
// element. Grounded on
// original_source/src/core/anl.cpp's ComponentTrait<T>::toXML; hand-built
// as a []string rather than via encoding/xml because the message payload
// is an implementation-defined child element supplied by Message.XML.
func (t Trait[T]) XML() []string {
	lines := []string{"<trait>", "  <type>" + symbol(t.kind) + "</type>"}
	if hasPayload(t.kind) {
		lines = append(lines, "  <msg>")
		for _, line := range t.message.XML() {
			lines = append(lines, "    "+line)
		}
		lines = append(lines, "  </msg>", fmt.Sprintf("  <tic>%d</tic>", t.tic))
	}
	lines = append(lines, "</trait>")
	return lines
}

// Type aliases matching spec.md §3's ComponentAction / ComponentIntention.
type (
	// Action is the outcome a component observes one slot later.
	Action = Trait[ActionType]

	// Intention is the per-slot request a component's protocol makes.
	Intention = Trait[IntentionType]
)

// NewAction is a convenience constructor for Trait[ActionType].
func NewAction(setup *Setup, kind ActionType, tic int, msg Message) Action {
	return NewTrait(setup, kind, tic, msg)
}

// NewIntention is a convenience constructor for Trait[IntentionType].
func NewIntention(setup *Setup, kind IntentionType, tic int, msg Message) Intention {
	return NewTrait(setup, kind, tic, msg)
}
