package anl

// SenderSet is the trait mapping produced by the sender-set fixed point:
// for each component it holds either Sent{tic, message} (the component
// actually transmitted this slot) or the Idle sentinel (it did not).
//
// Open Question (spec.md §9): the original overloads ActionType's Idle
// variant as a "not a sender" sentinel rather than introducing a distinct
// sender-set type. We keep that overload — SenderSet is a plain
// NetworkState alias — because introducing a distinct type buys no extra
// safety here: the solver is the only producer, and the enumerator that
// consumes it (transition.go) is the only reader, both in this package.
type SenderSet = NetworkState

// senderSetComputer runs the growing-set fixed point described in
// spec.md §4.4. It is a direct port of
// original_source/src/core/anl_algorithm.cpp's SenderSetComputer.
type senderSetComputer struct {
	setup    *Setup
	topology Topology
	intent   *IntentionAssignment

	// sending accumulates components confirmed to be transmitting, across
	// completed tic iterations only (mirrors mSendingComponents).
	sending map[Component]bool

	// result carries Sent{tic, message} for confirmed senders. Populated
	// as components are confirmed, finalized with Idle sentinels once all
	// tics have been processed.
	result *SenderSet
}

// newSenderSetComputer validates its inputs and prepares the fixed-point
// state. A partial intention assignment is a fatal contract violation
// (spec.md §4.4, "Failure modes").
func newSenderSetComputer(setup *Setup, topology Topology, intent *IntentionAssignment) *senderSetComputer {
	defer Enter("newSenderSetComputer")()
	Require(setup != nil, "setup must not be nil")
	Require(topology != nil, "topology must not be nil")
	Require(intent != nil, "intention assignment must not be nil")
	Require(!intent.IsPartial(), "intention assignment is partial and thus "+
		"not usable for the sender-set fixed point")
	return &senderSetComputer{
		setup:    setup,
		topology: topology,
		intent:   intent,
		sending:  make(map[Component]bool),
		result:   NewNetworkState(setup),
	}
}

// compute runs the fixed point for tic 0..T-1 and returns the sender set.
func (c *senderSetComputer) compute() *SenderSet {
	defer Enter("senderSetComputer.compute")()
	for tic := 0; tic < c.setup.TicsPerSlot(); tic++ {
		c.computeTic(tic)
	}
	c.finish()
	return c.result
}

// computeTic processes one tic: every component whose intention is to
// send starting exactly at this tic either joins the sender set
// unconditionally (forced send) or after a carrier-sense check against
// components already confirmed sending from strictly earlier tics.
//
// Components starting at the same tic do not detect each other: the
// carrier-sense check only looks at "already" (components confirmed
// before this tic began), never at components newly added during the
// current tic (spec.md §4.4, "Rationale for the ordering").
func (c *senderSetComputer) computeTic(tic int) {
	newlySending := make(map[Component]bool)

	c.setup.ForEachComponent(func(comp Component) {
		intent := c.intent.GetTraitFor(comp)
		if intent.Kind() != IntentSend && intent.Kind() != IntentSendForce {
			return
		}
		Require(intent.Message() != nil, "component %q intends to send "+
			"with a nil message", idOf(comp))
		if intent.Tic() != tic {
			return
		}

		if intent.Kind() == IntentSendForce {
			newlySending[comp] = true
			c.result.SetTraitFor(comp, NewAction(c.setup, Sent, tic, intent.Message()))
			return
		}

		// Carrier sensing: comp does not send if some component already
		// confirmed sending (from a strictly earlier tic) can reach it.
		for already := range c.sending {
			if c.topology.CanReach(already, comp) {
				return
			}
		}
		newlySending[comp] = true
		c.result.SetTraitFor(comp, NewAction(c.setup, Sent, tic, intent.Message()))
	})

	for comp := range newlySending {
		c.sending[comp] = true
	}
}

// finish assigns the Idle sentinel to every component that never joined
// the sender set.
func (c *senderSetComputer) finish() {
	c.setup.ForEachComponent(func(comp Component) {
		if c.sending[comp] {
			return
		}
		c.result.SetTraitFor(comp, NewAction(c.setup, Idle, 0, nil))
	})
}

// ComputeSenderSet computes the sender set for a total intention
// assignment: the (component, tic, message) tuples that actually
// transmit this slot, resolving carrier sensing across overlapping
// tic ranges (spec.md §4.4).
func ComputeSenderSet(setup *Setup, topology Topology, intent *IntentionAssignment) *SenderSet {
	return newSenderSetComputer(setup, topology, intent).compute()
}
