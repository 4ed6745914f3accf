package scene

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("camera tracking", func() {
	var s *Scene

	newScene := func() *Scene {
		reg := NewRegistry()
		for _, spec := range []struct {
			name             string
			distance, period float64
		}{
			{"alpha", 1000, 100},
			{"beta", 2000, 200},
			{"gamma", 3000, 400},
		} {
			b, err := NewBody(spec.name, 10, spec.distance, spec.period, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(reg.Add(b)).To(Succeed())
		}
		return New(reg, Options{Logger: testLogger()})
	}

	BeforeEach(func() {
		s = newScene()
	})

	It("supersedes an in-flight move from the mid-flight state", func() {
		Expect(s.SelectBody("alpha")).To(Succeed())
		for i := 0; i < 10; i++ {
			s.Tick(0.033)
		}
		midFlight := s.Camera()

		// Retarget while the first move is still running.
		Expect(s.SelectBody("gamma")).To(Succeed())
		s.Tick(0.033)
		after := s.Camera()

		// The new sequence starts from the mid-flight state, so the first
		// step moves at most one thirtieth of the remaining way: no jump.
		b, err := s.reg.Find("gamma")
		Expect(err).NotTo(HaveOccurred())
		target := Frame(b, FrameClose)
		maxStep := target.Position.Sub(midFlight.Position).Length() / float64(DefaultInterpSteps)
		Expect(after.Position.Sub(midFlight.Position).Length()).To(BeNumerically("<=", maxStep+1e-9))
	})

	It("runs a superseded move to its new target, not the old one", func() {
		Expect(s.SelectBody("alpha")).To(Succeed())
		for i := 0; i < 5; i++ {
			s.Tick(0.033)
		}
		Expect(s.SelectBody("beta")).To(Succeed())
		for i := 0; i < DefaultInterpSteps+1; i++ {
			s.Tick(0.033)
		}

		b, err := s.reg.Find("beta")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Camera().Focus.Sub(b.Position).Length()).To(BeNumerically("~", 0, 1e-9))
		Expect(s.Tracked()).To(Equal("beta"))
	})

	It("re-centers on the tracked body's position from the same tick", func() {
		Expect(s.SelectBody("alpha")).To(Succeed())
		for i := 0; i < DefaultInterpSteps+1; i++ {
			s.Tick(0.033)
		}

		// Selecting paused the clock; resume so the body moves again.
		s.PauseToggle()
		for i := 0; i < 20; i++ {
			s.Tick(0.5)
			b, err := s.reg.Find("alpha")
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Camera().Focus).To(Equal(b.Position),
				"camera must focus the position computed this tick")
		}
	})

	It("pulls back to the wide framing when the tracked body is re-selected", func() {
		Expect(s.SelectBody("alpha")).To(Succeed())
		for i := 0; i < DefaultInterpSteps+1; i++ {
			s.Tick(0.033)
		}
		Expect(s.SelectBody("alpha")).To(Succeed())
		for i := 0; i < DefaultInterpSteps+1; i++ {
			s.Tick(0.033)
		}

		b, err := s.reg.Find("alpha")
		Expect(err).NotTo(HaveOccurred())
		want := Frame(b, FrameDefault)
		Expect(s.Camera().Position.Sub(want.Position).Length()).To(BeNumerically("~", 0, 1e-9))
		Expect(s.Tracked()).To(Equal("alpha"))
	})

	It("preserves zoom distance while following", func() {
		Expect(s.SelectBody("alpha")).To(Succeed())
		for i := 0; i < DefaultInterpSteps+1; i++ {
			s.Tick(0.033)
		}
		s.ZoomOut()
		s.Tick(0.033)
		zoomed := s.Camera().Position.Sub(s.Camera().Focus).Length()

		s.PauseToggle()
		for i := 0; i < 20; i++ {
			s.Tick(0.5)
		}
		got := s.Camera().Position.Sub(s.Camera().Focus).Length()
		Expect(got).To(BeNumerically("~", zoomed, 1e-9))
	})
})
