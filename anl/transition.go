package anl

// warnComponentCount is the threshold beyond which using the canonical
// filter should be flagged: the successor-state count grows as the
// product of each component's possible-action count, so an unbounded
// canonical run over many listening components can explode
// combinatorially (spec.md §4.5, "Complexity and warning").
const warnComponentCount = 7

// ANL is the transition function ψ: given a topology and a total
// intention assignment, it produces every possible successor network
// state the chosen semantics admits. Grounded on
// original_source/src/core/anl_algorithm.cpp's ANLComputer.
type ANL struct {
	setup     *Setup
	semantics Semantics
}

// NewANL creates a ψ evaluator over setup using the given semantics.
func NewANL(setup *Setup, semantics Semantics) *ANL {
	return &ANL{setup: setup, semantics: semantics}
}

// Semantics returns the semantics this evaluator uses.
func (a *ANL) Semantics() Semantics {
	return a.semantics
}

// Transition computes ψ(topology, intent): the set of network states one
// slot later. A partial intention assignment is a fatal contract
// violation.
func (a *ANL) Transition(topology Topology, intent *IntentionAssignment) []*NetworkState {
	defer Enter("ANL.Transition")()
	Require(!intent.IsPartial(), "cannot transition on a partial intention "+
		"assignment")

	if a.semantics == Canonical && a.setup.ComponentCount() > warnComponentCount {
		Logger.Printf("Log: [WARN] canonical semantics with %d components "+
			"may produce a combinatorial explosion of successor states",
			a.setup.ComponentCount())
	}

	senderSet := ComputeSenderSet(a.setup, topology, intent)
	filter := FilterFor(a.semantics)

	front := []*NetworkState{NewNetworkState(a.setup)}
	a.setup.ForEachComponent(func(comp Component) {
		possible := a.possibleActions(topology, intent, senderSet, comp)
		possible = filter(a.setup, possible)
		Require(len(possible) > 0, "filter removed every possible action "+
			"for component %q", idOf(comp))

		back := front
		front = make([]*NetworkState, 0, len(back)*len(possible))
		for _, partial := range back {
			for _, action := range possible {
				extended := cloneNetworkState(a.setup, partial)
				extended.SetTraitFor(comp, action)
				front = append(front, extended)
			}
		}
	})
	return front
}

// RunSlot drives one round of protocol callbacks: every registered
// component is given a View onto slot and must commit exactly one
// intention. prevState is nil for slot 0 (no previous action to report);
// otherwise it must be a total NetworkState from the previous slot.
// Grounded on original_source/src/core/anl.cpp's ANL::runSlot.
func (a *ANL) RunSlot(slot int, prevState *NetworkState, targetIntent *IntentionAssignment) {
	defer Enter("ANL.RunSlot")()
	a.setup.ForEachComponent(func(comp Component) {
		actor, ok := comp.(Actor)
		Require(ok, "component %q does not implement Actor", idOf(comp))

		var view *View
		if prevState != nil {
			view = NewViewWithPrevious(a.setup, slot, comp, prevState.GetTraitFor(comp), targetIntent)
		} else {
			view = NewView(a.setup, slot, comp, targetIntent)
		}
		actor.Act(view)
		Require(view.HasActed(), "component %q did not commit an intention "+
			"for slot %d", idOf(comp), slot)
	})
}

// possibleActions enumerates the possible outcome actions for one
// component, per the table in spec.md §4.5.
func (a *ANL) possibleActions(topology Topology, intent *IntentionAssignment, senderSet *SenderSet, comp Component) []Action {
	in := intent.GetTraitFor(comp)

	switch in.Kind() {
	case IntentIdle:
		return []Action{NewAction(a.setup, Idle, 0, nil)}

	case IntentSend, IntentSendForce:
		query := senderSet.GetTraitFor(comp)
		if query.Kind() == Idle {
			return []Action{NewAction(a.setup, Cancelled, in.Tic(), in.Message())}
		}
		return []Action{NewAction(a.setup, Sent, in.Tic(), in.Message())}

	case IntentListen:
		return a.possibleListenActions(topology, senderSet, comp)
	}

	Require(false, "unreachable: exhaustive intention kinds, got %v", in.Kind())
	return nil
}

// possibleListenActions enumerates what a listening component might
// observe: Silence if no reachable component is a confirmed sender, or
// Collision plus one Received{...} per reachable sender otherwise
// (spec.md §4.5's canonical row; the naive filter subsequently prunes
// this down).
func (a *ANL) possibleListenActions(topology Topology, senderSet *SenderSet, comp Component) []Action {
	actions := make([]Action, 0, 2)
	hasSender := false

	a.setup.ForEachComponent(func(potential Component) {
		if !topology.CanReach(potential, comp) {
			return
		}
		query := senderSet.GetTraitFor(potential)
		if query.Kind() != Sent {
			return
		}
		actions = append(actions, NewAction(a.setup, Received, query.Tic(), query.Message()))
		if !hasSender {
			hasSender = true
			actions = append(actions, NewAction(a.setup, Collision, 0, nil))
		}
	})

	if !hasSender {
		actions = append(actions, NewAction(a.setup, Silence, 0, nil))
	}
	return actions
}

// cloneNetworkState copies every entry of src into a fresh NetworkState.
// Used by Transition's cross-product construction to extend each partial
// state with one more component's chosen action without mutating states
// still referenced by earlier branches.
func cloneNetworkState(setup *Setup, src *NetworkState) *NetworkState {
	clone := NewNetworkState(setup)
	for comp, trait := range src.entries {
		clone.entries[comp] = trait
	}
	return clone
}
