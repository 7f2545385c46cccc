package simulator_test

import (
	"github.com/anl-sim/anl/anl"
	"github.com/anl-sim/anl/simulator"
	"github.com/anl-sim/anl/statemachine"
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type idComponent struct {
	*anl.Base
}

func newIdler(id string) *idComponent {
	return &idComponent{Base: anl.NewBase(id)}
}

func (c *idComponent) Act(view *anl.View) {
	view.Idle()
}

var _ = Describe("Driver", func() {
	var ctrl *gomock.Controller
	var mockModule *MockModule

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockModule = NewMockModule(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("notifies the output module for every lifecycle event across the requested slots", func() {
		comp := newIdler("only")

		mockModule.EXPECT().SimulationBegin(gomock.Eq(3), gomock.Any(), gomock.Any()).Times(1)
		mockModule.EXPECT().SlotBegin(gomock.Any()).Times(3)
		mockModule.EXPECT().IntentChosen(gomock.Any(), gomock.Any()).Times(3)
		mockModule.EXPECT().TransitionComputed(gomock.Any(), gomock.Any()).Times(3)
		mockModule.EXPECT().ResultChosen(gomock.Any(), gomock.Any()).Times(3)
		mockModule.EXPECT().SlotEnd(gomock.Any()).Times(3)
		mockModule.EXPECT().SimulationEnd().Times(1)

		driver := simulator.NewBuilder(2).
			WithTopology(anl.TrivialTopology{}).
			WithComponent(comp).
			WithOutputModule(mockModule).
			Build()

		driver.Run(3)

		gomega.Expect(driver.Slot()).To(gomega.Equal(3))
		gomega.Expect(driver.PreviousState()).NotTo(gomega.BeNil())
	})

	It("drives a state machine component's protocol across several slots", func() {
		var observed []anl.ActionType
		step := func(view *anl.View, state int) int {
			if view.HasPreviousAction() {
				observed = append(observed, view.PreviousAction().Kind())
			}
			view.Idle()
			return state + 1
		}
		comp := statemachine.New("counter", 0, step)

		mockModule.EXPECT().SimulationBegin(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		mockModule.EXPECT().SlotBegin(gomock.Any()).AnyTimes()
		mockModule.EXPECT().IntentChosen(gomock.Any(), gomock.Any()).AnyTimes()
		mockModule.EXPECT().TransitionComputed(gomock.Any(), gomock.Any()).AnyTimes()
		mockModule.EXPECT().ResultChosen(gomock.Any(), gomock.Any()).AnyTimes()
		mockModule.EXPECT().SlotEnd(gomock.Any()).AnyTimes()
		mockModule.EXPECT().SimulationEnd().AnyTimes()

		driver := simulator.NewBuilder(2).
			WithTopology(anl.TrivialTopology{}).
			WithComponent(comp).
			WithOutputModule(mockModule).
			Build()

		driver.Run(3)

		gomega.Expect(comp.State()).To(gomega.Equal(3))
		gomega.Expect(observed).To(gomega.HaveLen(2))
		for _, kind := range observed {
			gomega.Expect(kind).To(gomega.Equal(anl.Idle))
		}
	})
})
