package output

import (
	"fmt"
	"io"
	"os"

	"github.com/anl-sim/anl/anl"
)

// XML is a Module that prints a structured, XML-like trace of the
// simulation to Writer (os.Stdout if left zero). It hand-assembles lines
// rather than using encoding/xml because Message.XML supplies an
// implementation-defined child element per message type. Grounded on
// original_source/src/output/xml_module.cpp's XMLOutputModule.
type XML struct {
	Base
	Writer io.Writer
}

// NewXML creates an XML module writing to os.Stdout.
func NewXML() *XML {
	return &XML{Writer: os.Stdout}
}

func (x *XML) out() io.Writer {
	if x.Writer == nil {
		return os.Stdout
	}
	return x.Writer
}

func (x *XML) printIndented(indent string, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(x.out(), indent+line)
	}
}

// SimulationBegin prints the document header, slot count, component
// list, and every edge of the topology.
func (x *XML) SimulationBegin(numSlots int, setup *anl.Setup, topology anl.Topology) {
	fmt.Fprintln(x.out(), `<?xml version="1.0" encoding="ascii"?>`)
	fmt.Fprintln(x.out(), "<simulation>")
	fmt.Fprintf(x.out(), "  <slotcount>%d</slotcount>\n", numSlots)
	fmt.Fprintf(x.out(), "  <ticsperslot>%d</ticsperslot>\n", setup.TicsPerSlot())

	fmt.Fprintln(x.out(), "  <components>")
	setup.ForEachComponent(func(c anl.Component) {
		fmt.Fprintf(x.out(), "    <component id=%q/>\n", c.ID())
	})
	fmt.Fprintln(x.out(), "  </components>")

	fmt.Fprintln(x.out(), "  <topology>")
	setup.ForEachComponent(func(sender anl.Component) {
		setup.ForEachComponent(func(receiver anl.Component) {
			if !topology.CanReach(sender, receiver) {
				return
			}
			fmt.Fprintln(x.out(), "    <edge>")
			fmt.Fprintf(x.out(), "      <from>%s</from>\n", sender.ID())
			fmt.Fprintf(x.out(), "      <to>%s</to>\n", receiver.ID())
			fmt.Fprintln(x.out(), "    </edge>")
		})
	})
	fmt.Fprintln(x.out(), "  </topology>")
	fmt.Fprintln(x.out(), "  <execution>")
}

// SlotBegin opens a <slot> element.
func (x *XML) SlotBegin(slot int) {
	fmt.Fprintf(x.out(), "    <slot num=%q>\n", fmt.Sprint(slot))
}

// IntentChosen prints the committed intention assignment.
func (x *XML) IntentChosen(_ int, intent *anl.IntentionAssignment) {
	fmt.Fprintln(x.out(), "      <intention>")
	x.printIndented("        ", intent.XML())
	fmt.Fprintln(x.out(), "      </intention>")
}

// TransitionComputed prints every candidate successor state as a
// <choice>.
func (x *XML) TransitionComputed(_ int, outcomes []*anl.NetworkState) {
	fmt.Fprintln(x.out(), "      <choices>")
	for _, state := range outcomes {
		fmt.Fprintln(x.out(), "        <choice>")
		x.printIndented("          ", state.XML())
		fmt.Fprintln(x.out(), "        </choice>")
	}
	fmt.Fprintln(x.out(), "      </choices>")
}

// ResultChosen prints the chosen network state as a <result>.
func (x *XML) ResultChosen(_ int, state *anl.NetworkState) {
	fmt.Fprintln(x.out(), "      <result>")
	x.printIndented("        ", state.XML())
	fmt.Fprintln(x.out(), "      </result>")
}

// SlotEnd closes the </slot> element.
func (x *XML) SlotEnd(int) {
	fmt.Fprintln(x.out(), "    </slot>")
}

// SimulationEnd closes </execution> and </simulation>.
func (x *XML) SimulationEnd() {
	fmt.Fprintln(x.out(), "  </execution>")
	fmt.Fprintln(x.out(), "</simulation>")
}
