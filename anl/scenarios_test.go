package anl_test

import (
	"github.com/anl-sim/anl/anl"
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = Describe("ANL transition scenarios", func() {
	It("resolves the motivational chain: c1 -> c2 -> c3 (scenario 1)", func() {
		setup := anl.NewSetup(4)
		c1, c2, c3 := newComponent("c1"), newComponent("c2"), newComponent("c3")
		setup.RegisterComponent(c1)
		setup.RegisterComponent(c2)
		setup.RegisterComponent(c3)
		msg := newMessage("m")
		setup.RegisterMessage(msg)
		topo := chainTopology(c1, c2, c3)

		for _, semantics := range []anl.Semantics{anl.Canonical, anl.Naive} {
			intent := anl.NewIntentionAssignment(setup)
			intent.SetTraitFor(c1, anl.NewIntention(setup, anl.IntentSend, 1, msg))
			intent.SetTraitFor(c2, anl.NewIntention(setup, anl.IntentSend, 2, msg))
			intent.SetTraitFor(c3, anl.NewIntention(setup, anl.IntentSend, 3, msg))

			outcomes := anl.NewANL(setup, semantics).Transition(topo, intent)
			gomega.Expect(outcomes).To(gomega.HaveLen(1))

			state := outcomes[0]
			gomega.Expect(state.GetTraitFor(c1).Kind()).To(gomega.Equal(anl.Sent))
			gomega.Expect(state.GetTraitFor(c2).Kind()).To(gomega.Equal(anl.Cancelled))
			gomega.Expect(state.GetTraitFor(c3).Kind()).To(gomega.Equal(anl.Sent))
		}
	})

	It("lets simultaneous starts both through: no mutual detection (scenario 2)", func() {
		setup := anl.NewSetup(5)
		a, b := newComponent("a"), newComponent("b")
		setup.RegisterComponent(a)
		setup.RegisterComponent(b)
		m1, m2 := newMessage("m1"), newMessage("m2")
		setup.RegisterMessage(m1)
		setup.RegisterMessage(m2)
		topo := mutualTopology(a, b)

		for _, semantics := range []anl.Semantics{anl.Canonical, anl.Naive} {
			intent := anl.NewIntentionAssignment(setup)
			intent.SetTraitFor(a, anl.NewIntention(setup, anl.IntentSend, 4, m1))
			intent.SetTraitFor(b, anl.NewIntention(setup, anl.IntentSend, 4, m2))

			outcomes := anl.NewANL(setup, semantics).Transition(topo, intent)
			gomega.Expect(outcomes).To(gomega.HaveLen(1))
			state := outcomes[0]
			gomega.Expect(state.GetTraitFor(a).Kind()).To(gomega.Equal(anl.Sent))
			gomega.Expect(state.GetTraitFor(b).Kind()).To(gomega.Equal(anl.Sent))
		}
	})

	It("lets a forced send defeat a later carrier-sensed send (scenario 3)", func() {
		setup := anl.NewSetup(6)
		a, b := newComponent("a"), newComponent("b")
		setup.RegisterComponent(a)
		setup.RegisterComponent(b)
		m1, m2 := newMessage("m1"), newMessage("m2")
		setup.RegisterMessage(m1)
		setup.RegisterMessage(m2)
		topo := mutualTopology(a, b)

		intent := anl.NewIntentionAssignment(setup)
		intent.SetTraitFor(a, anl.NewIntention(setup, anl.IntentSendForce, 4, m1))
		intent.SetTraitFor(b, anl.NewIntention(setup, anl.IntentSend, 5, m2))

		outcomes := anl.NewANL(setup, anl.Naive).Transition(topo, intent)
		gomega.Expect(outcomes).To(gomega.HaveLen(1))
		state := outcomes[0]
		gomega.Expect(state.GetTraitFor(a).Kind()).To(gomega.Equal(anl.Sent))
		gomega.Expect(state.GetTraitFor(b).Kind()).To(gomega.Equal(anl.Cancelled))
	})

	It("resolves listening to a single sender deterministically under naive semantics (scenario 4)", func() {
		setup := anl.NewSetup(4)
		comp1, comp2, comp3 := newComponent("comp1"), newComponent("comp2"), newComponent("comp3")
		setup.RegisterComponent(comp1)
		setup.RegisterComponent(comp2)
		setup.RegisterComponent(comp3)
		msg := newMessage("m")
		setup.RegisterMessage(msg)
		topo := mutualTopology(comp1, comp2, comp3)

		intent := anl.NewIntentionAssignment(setup)
		intent.SetTraitFor(comp1, anl.NewIntention(setup, anl.IntentListen, 0, nil))
		intent.SetTraitFor(comp2, anl.NewIntention(setup, anl.IntentSend, 2, msg))
		intent.SetTraitFor(comp3, anl.NewIntention(setup, anl.IntentIdle, 0, nil))

		naive := anl.NewANL(setup, anl.Naive).Transition(topo, intent)
		gomega.Expect(naive).To(gomega.HaveLen(1))
		gomega.Expect(naive[0].GetTraitFor(comp1).Kind()).To(gomega.Equal(anl.Received))
		gomega.Expect(naive[0].GetTraitFor(comp1).Tic()).To(gomega.Equal(2))

		canonical := anl.NewANL(setup, anl.Canonical).Transition(topo, intent)
		gomega.Expect(canonical).To(gomega.HaveLen(2))
		kinds := []anl.ActionType{
			canonical[0].GetTraitFor(comp1).Kind(),
			canonical[1].GetTraitFor(comp1).Kind(),
		}
		gomega.Expect(kinds).To(gomega.ContainElements(anl.Received, anl.Collision))
		gomega.Expect(kinds).NotTo(gomega.ContainElement(anl.Silence))
	})

	It("resolves listening to multiple senders deterministically under naive semantics (scenario 5)", func() {
		setup := anl.NewSetup(4)
		listener, s1, s2 := newComponent("listener"), newComponent("s1"), newComponent("s2")
		setup.RegisterComponent(listener)
		setup.RegisterComponent(s1)
		setup.RegisterComponent(s2)
		m1, m2 := newMessage("m1"), newMessage("m2")
		setup.RegisterMessage(m1)
		setup.RegisterMessage(m2)
		topo := mutualTopology(listener, s1, s2)

		intent := anl.NewIntentionAssignment(setup)
		intent.SetTraitFor(listener, anl.NewIntention(setup, anl.IntentListen, 0, nil))
		intent.SetTraitFor(s1, anl.NewIntention(setup, anl.IntentSend, 1, m1))
		intent.SetTraitFor(s2, anl.NewIntention(setup, anl.IntentSend, 1, m2))

		naive := anl.NewANL(setup, anl.Naive).Transition(topo, intent)
		gomega.Expect(naive).To(gomega.HaveLen(1))
		gomega.Expect(naive[0].GetTraitFor(listener).Kind()).To(gomega.Equal(anl.Collision))

		canonical := anl.NewANL(setup, anl.Canonical).Transition(topo, intent)
		gomega.Expect(canonical).To(gomega.HaveLen(3))
	})
})
