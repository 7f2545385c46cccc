package anl

// HookPos enumerates the points in the ANL slot lifecycle where a Hook may
// be invoked. Adapted from the teacher's hook.go (which defines HookPos
// for a general discrete-event engine's BeforeEvent/AfterEvent/...
// positions); here the positions are the ANL's own slot lifecycle instead.
type HookPos int

// Enumeration of possible hook positions.
const (
	// AnyPos matches every hook position.
	AnyPos HookPos = iota

	// BeforeSlot fires before any component acts in a slot.
	BeforeSlot

	// IntentChosen fires once every component has committed an intention.
	IntentChosen

	// TransitionComputed fires once ψ has produced the candidate
	// successor states.
	TransitionComputed

	// AfterSlot fires after the successor state has been chosen and
	// committed as the new previous state.
	AfterSlot
)

// Hook is a short piece of program that can be invoked by a Hookable
// object at one of the ANL slot lifecycle positions. Adapted from the
// teacher's hook.go Hook interface.
type Hook interface {
	// Pos determines when the hook should be invoked.
	Pos() HookPos

	// Func is invoked with the item relevant to pos (an
	// *IntentionAssignment for IntentChosen, a []*NetworkState for
	// TransitionComputed, a *NetworkState for AfterSlot, or nil for
	// BeforeSlot) and the slot number.
	Func(slot int, item interface{})
}

// Hookable is implemented by objects that accept hooks.
type Hookable interface {
	AcceptHook(hook Hook)
	InvokeHook(slot int, pos HookPos, item interface{})
}

// HookableBase provides the common bookkeeping for a Hookable
// implementation. Adapted from the teacher's HookableBase.
type HookableBase struct {
	hooks []Hook
}

// NewHookableBase creates an empty HookableBase.
func NewHookableBase() *HookableBase {
	return &HookableBase{}
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// InvokeHook triggers every registered hook whose position matches pos (or
// that matches AnyPos).
func (h *HookableBase) InvokeHook(slot int, pos HookPos, item interface{}) {
	for _, hook := range h.hooks {
		if hook.Pos() == AnyPos || hook.Pos() == pos {
			hook.Func(slot, item)
		}
	}
}

// HookFunc adapts a plain function into a Hook, the way http.HandlerFunc
// adapts a function into an http.Handler.
type HookFunc struct {
	pos HookPos
	fn  func(slot int, item interface{})
}

// NewHookFunc creates a Hook that calls fn at pos.
func NewHookFunc(pos HookPos, fn func(slot int, item interface{})) HookFunc {
	return HookFunc{pos: pos, fn: fn}
}

// Pos returns the hook position.
func (h HookFunc) Pos() HookPos {
	return h.pos
}

// Func invokes the wrapped function.
func (h HookFunc) Func(slot int, item interface{}) {
	h.fn(slot, item)
}
