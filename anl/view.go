package anl

// View is the time-annotated, component-centric window into the ANL that
// is exposed to a protocol callback. Exactly one of Idle, Listen, or Send
// must be invoked on a view before the slot ends; a second call, or none
// at all, is a fatal contract violation enforced by the slot driver that
// owns this view (spec.md §4.6). Grounded on
// original_source/include/anl/core/anl.h's ANLView.
type View struct {
	setup     *Setup
	slot      int
	component Component

	hasPrevious bool
	previous    Action

	target *IntentionAssignment
	acted  bool
}

// NewView constructs a view for a component with no previous action (used
// for slot 0).
func NewView(setup *Setup, slot int, comp Component, target *IntentionAssignment) *View {
	return &View{setup: setup, slot: slot, component: comp, target: target}
}

// NewViewWithPrevious constructs a view for a component that observed
// prev in the previous slot.
func NewViewWithPrevious(setup *Setup, slot int, comp Component, prev Action, target *IntentionAssignment) *View {
	return &View{
		setup: setup, slot: slot, component: comp,
		hasPrevious: true, previous: prev, target: target,
	}
}

// Idle causes the component to idle in the associated slot.
func (v *View) Idle() {
	v.commit(NewIntention(v.setup, IntentIdle, 0, nil))
}

// Listen causes the component to listen to the medium in the associated
// slot.
func (v *View) Listen() {
	v.commit(NewIntention(v.setup, IntentListen, 0, nil))
}

// Send causes the component to attempt to send msg at the given tic. If
// carrierSense is true, the send may be cancelled by an earlier reachable
// transmission; if false, it always transmits.
func (v *View) Send(msg Message, tic int, carrierSense bool) {
	kind := IntentSend
	if !carrierSense {
		kind = IntentSendForce
	}
	v.commit(NewIntention(v.setup, kind, tic, msg))
}

// commit records the component's chosen intention. Committing twice in
// the same slot is a fatal contract violation.
func (v *View) commit(intent Intention) {
	defer Enter("View.commit")()
	Require(!v.acted, "component %q already committed an intention this "+
		"slot", idOf(v.component))
	v.target.SetTraitFor(v.component, intent)
	v.acted = true
}

// HasActed reports whether the component has already committed an
// intention this slot.
func (v *View) HasActed() bool {
	return v.acted
}

// PreviousAction retrieves the component's action from the previous slot.
// Calling this when HasPreviousAction is false is a fatal contract
// violation.
func (v *View) PreviousAction() Action {
	defer Enter("View.PreviousAction")()
	Require(v.hasPrevious, "component %q has no previous action to query "+
		"(this is slot 0)", idOf(v.component))
	return v.previous
}

// HasPreviousAction reports whether there is a previous action to query.
func (v *View) HasPreviousAction() bool {
	return v.hasPrevious
}

// SlotNumber returns the number of the slot this view is centered on.
func (v *View) SlotNumber() int {
	return v.slot
}

// Component returns the component this view is centered on.
func (v *View) Component() Component {
	return v.component
}

// LogProtocol adds a line to the diagnostic log channel. It is not part of
// the primary output schema (spec.md §6, "Log channel").
func (v *View) LogProtocol(msg string) {
	Logger.Printf("Log: [%s] %s", idOf(v.component), msg)
}
