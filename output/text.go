package output

import (
	"fmt"
	"io"
	"os"

	"github.com/anl-sim/anl/anl"
)

// Text is a Module that prints a human-readable trace of the simulation,
// one line per event, to Writer (os.Stdout if left zero). Grounded on
// original_source/src/output/stdout_module.cpp's StdOutOutputModule.
type Text struct {
	Base
	Writer io.Writer
}

// NewText creates a Text module writing to os.Stdout.
func NewText() *Text {
	return &Text{Writer: os.Stdout}
}

func (t *Text) out() io.Writer {
	if t.Writer == nil {
		return os.Stdout
	}
	return t.Writer
}

// SimulationBegin prints the slot count, tic granularity, and the
// registration order of every component.
func (t *Text) SimulationBegin(numSlots int, setup *anl.Setup, _ anl.Topology) {
	fmt.Fprintf(t.out(), "# Starting simulation with %d slots @ %d tics.\n",
		numSlots, setup.TicsPerSlot())
	fmt.Fprintln(t.out(), "# The following components will be used in the "+
		"following order:")
	setup.ForEachComponent(func(c anl.Component) {
		fmt.Fprintf(t.out(), "#  - %s\n", c.ID())
	})
	fmt.Fprintln(t.out())
}

// SlotBegin prints the slot number about to run.
func (t *Text) SlotBegin(slot int) {
	fmt.Fprintf(t.out(), "# Beginning simulation of slot %d.\n", slot)
}

// IntentChosen prints the intention assignment every component committed
// to for this slot.
func (t *Text) IntentChosen(_ int, intent *anl.IntentionAssignment) {
	fmt.Fprintln(t.out(), "# Protocol executed. Chosen intentions:")
	fmt.Fprintln(t.out(), intent.String())
}

// TransitionComputed prints how many successor states ψ admitted.
func (t *Text) TransitionComputed(_ int, outcomes []*anl.NetworkState) {
	fmt.Fprintf(t.out(), "# ANL returned %d possible successor states.\n",
		len(outcomes))
}

// ResultChosen prints the network state chosen as this slot's outcome.
func (t *Text) ResultChosen(_ int, state *anl.NetworkState) {
	fmt.Fprintln(t.out(), "# Result chosen from possible results.")
	fmt.Fprintln(t.out(), state.String())
}

// SlotEnd prints a blank separator line.
func (t *Text) SlotEnd(int) {
	fmt.Fprintln(t.out())
}
