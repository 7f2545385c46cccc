package output_test

import (
	"bytes"

	"github.com/anl-sim/anl/anl"
	"github.com/anl-sim/anl/output"
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = Describe("XML", func() {
	It("renders trait mapping entries as <for> plus a <trait> with a short-symbol <type>", func() {
		setup := anl.NewSetup(4)
		sender := newComponent("sender")
		setup.RegisterComponent(sender)
		msg := newMessage("hi")
		setup.RegisterMessage(msg)

		intent := anl.NewIntentionAssignment(setup)
		intent.SetTraitFor(sender, anl.NewIntention(setup, anl.IntentSend, 2, msg))

		buf := &bytes.Buffer{}
		x := &output.XML{Writer: buf}
		x.IntentChosen(0, intent)

		out := buf.String()
		gomega.Expect(out).To(gomega.ContainSubstring("<for>sender</for>"))
		gomega.Expect(out).To(gomega.ContainSubstring("<type>SEND</type>"))
		gomega.Expect(out).NotTo(gomega.ContainSubstring("<component>"))
	})

	It("renders the topology as directed edges and the header scalars", func() {
		setup := anl.NewSetup(4)
		a := newComponent("a")
		b := newComponent("b")
		setup.RegisterComponent(a)
		setup.RegisterComponent(b)

		topo := anl.NewExplicitTopology()
		topo.AddEdge(a, b)

		buf := &bytes.Buffer{}
		x := &output.XML{Writer: buf}
		x.SimulationBegin(3, setup, topo)

		out := buf.String()
		gomega.Expect(out).To(gomega.ContainSubstring("<slotcount>3</slotcount>"))
		gomega.Expect(out).To(gomega.ContainSubstring("<ticsperslot>4</ticsperslot>"))
		gomega.Expect(out).To(gomega.ContainSubstring("<from>a</from>"))
		gomega.Expect(out).To(gomega.ContainSubstring("<to>b</to>"))
	})
})
