package anl

// Semantics selects which of the two ANL outcome semantics ψ uses.
type Semantics int

const (
	// Canonical is the loosest nondeterministic overapproximation
	// described in the report: a listener with at least one reachable
	// sender may observe Collision or any Received{tic, msg} from a
	// reachable sender (Silence only when no reachable sender exists).
	Canonical Semantics = iota

	// Naive is the deterministic reduction: zero reachable senders means
	// Silence, exactly one means that sender's Received, and more than
	// one means Collision.
	Naive
)

// String renders the semantics name for diagnostics and monitoring.
func (s Semantics) String() string {
	switch s {
	case Naive:
		return "naive"
	case Canonical:
		return "canonical"
	default:
		return "unknown"
	}
}

// Filter prunes a component's possible actions down to the set the chosen
// semantics admits. It must never return an empty slice; doing so is a
// fatal contract violation (spec.md §4.5, "Failure modes").
type Filter func(setup *Setup, actions []Action) []Action

// NothingFilter is the canonical filter: it only de-duplicates identical
// actions (same variant, tic, and message), retaining every possibility.
// Grounded on original_source/src/core/anl_algorithm.cpp's
// ANLFilterNothing.
func NothingFilter(_ *Setup, actions []Action) []Action {
	deduped := make([]Action, 0, len(actions))
	for _, a := range actions {
		seen := false
		for _, already := range deduped {
			if already.Equal(a) {
				seen = true
				break
			}
		}
		if !seen {
			deduped = append(deduped, a)
		}
	}
	return deduped
}

// NaiveFilter is the naive filter. If the input contains at least one
// Collision, it inspects the Received entries: none means keep only
// Silence, two or more means replace everything with a single Collision,
// exactly one means keep only that Received. Grounded on
// original_source/src/core/anl_algorithm.cpp's ANLFilterNaive.
func NaiveFilter(setup *Setup, actions []Action) []Action {
	sendingNeighbors := 0
	collisions := 0
	for _, a := range actions {
		switch a.Kind() {
		case Received:
			sendingNeighbors++
		case Collision:
			collisions++
		}
	}

	if collisions == 0 {
		return actions
	}

	if sendingNeighbors == 0 {
		return []Action{NewAction(setup, Silence, 0, nil)}
	}

	if sendingNeighbors > 1 {
		return []Action{NewAction(setup, Collision, 0, nil)}
	}

	Require(sendingNeighbors == 1, "naive filter expected exactly one "+
		"receivable action, found %d", sendingNeighbors)

	kept := make([]Action, 0, 1)
	for _, a := range actions {
		if a.Kind() == Received {
			kept = append(kept, a)
		}
	}
	Require(len(kept) == 1, "naive filter left %d entries after pruning to "+
		"the single sender, expected 1", len(kept))
	return kept
}

// FilterFor returns the canonical filter implementation for a Semantics
// value.
func FilterFor(s Semantics) Filter {
	switch s {
	case Naive:
		return NaiveFilter
	default:
		return NothingFilter
	}
}
