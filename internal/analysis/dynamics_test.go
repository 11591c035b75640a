package analysis_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/dynamo"
	"github.com/san-kum/atlas/internal/integrators"
	"github.com/san-kum/atlas/internal/orbit"
)

var _ = Describe("DetectPeriod", func() {
	tail := func(r float64) []float64 {
		samples, err := analysis.SweepBifurcation(r, r, 0, 2000, 64, 0.2)
		Expect(err).NotTo(HaveOccurred())
		return analysis.Group(samples)[0].Values
	}

	DescribeTable("finds the attracting cycle length",
		func(r float64, want int) {
			Expect(analysis.DetectPeriod(tail(r), 1e-6, 16)).To(Equal(want))
		},
		Entry("fixed point", 2.8, 1),
		Entry("two-cycle", 3.2, 2),
		Entry("four-cycle", 3.5, 4),
		Entry("chaos", 3.9, -1),
	)

	It("needs at least two full periods of data", func() {
		Expect(analysis.DetectPeriod([]float64{1, 1, 1}, 1e-6, 4)).To(Equal(-1))
		Expect(analysis.DetectPeriod([]float64{1, 1}, 1e-6, 0)).To(Equal(-1))
	})

	It("never matches NaN", func() {
		nan := math.NaN()
		Expect(analysis.DetectPeriod([]float64{nan, nan, nan, nan}, 1, 2)).To(Equal(-1))
	})

	DescribeTable("sizes the search to the recorded tail",
		func(n, want int) {
			Expect(analysis.MaxPeriodFor(n)).To(Equal(want))
			if want > 0 {
				Expect(2 * want).To(BeNumerically("<=", n))
				Expect(4 * want).To(BeNumerically(">", n))
			}
		},
		Entry("empty", 0, 0),
		Entry("single value", 1, 0),
		Entry("two values", 2, 1),
		Entry("reference keep", 60, 16),
		Entry("exact power", 64, 32),
		Entry("zoom preset keep", 120, 32),
	)

	It("detects the fixed point on the reference sweep", func() {
		cfg := analysis.DefaultSweepConfig()
		samples, err := analysis.Sweep(chaos.Logistic, cfg)
		Expect(err).NotTo(HaveOccurred())
		periods := analysis.Periods(analysis.Group(samples), 1e-6, analysis.MaxPeriodFor(cfg.Keep))
		Expect(periods).To(HaveLen(cfg.RSteps + 1))
		Expect(periods[0]).To(Equal(1))
	})

	It("labels every grouped point", func() {
		samples, err := analysis.Sweep(chaos.Logistic, analysis.SweepConfig{RMin: 2.8, RMax: 3.2, RSteps: 1, Iters: 2000, Keep: 64, X0: 0.2})
		Expect(err).NotTo(HaveOccurred())
		Expect(analysis.Periods(analysis.Group(samples), 1e-6, 16)).To(Equal([]int{1, 2}))
	})
})

var _ = Describe("LogisticLyapunov", func() {
	It("is negative on a stable fixed point", func() {
		lambda := analysis.LogisticLyapunov(2.5, 0.2, 2000, 200)
		Expect(lambda).To(BeNumerically("~", math.Log(0.5), 1e-3))
	})

	It("is positive in the chaotic band", func() {
		Expect(analysis.LogisticLyapunov(3.9, 0.2, 5000, 500)).To(BeNumerically(">", 0.3))
	})

	It("is zero with no iterations", func() {
		Expect(analysis.LogisticLyapunov(3.9, 0.2, 0, 10)).To(BeZero())
	})
})

var _ = Describe("LyapunovExponent", func() {
	It("is positive on the Lorenz attractor", func() {
		lz := chaos.NewLorenz()
		lambda := analysis.LyapunovExponent(lz, integrators.NewEuler(), dynamo.State{1, 1, 1}, 0.01, 60, 1e-8)
		Expect(lambda).To(BeNumerically(">", 0.3))
		Expect(lambda).To(BeNumerically("<", 2.0))
	})

	It("returns zero for degenerate input", func() {
		lz := chaos.NewLorenz()
		Expect(analysis.LyapunovExponent(lz, integrators.NewEuler(), dynamo.State{}, 0.01, 1, 1e-8)).To(BeZero())
		Expect(analysis.LyapunovExponent(lz, integrators.NewEuler(), dynamo.State{1, 1, 1}, 0.01, 1, 0)).To(BeZero())
	})
})

var _ = Describe("PhasePortraitToASCII", func() {
	It("plots the Hénon attractor", func() {
		pts, err := orbit.Iterate2D(chaos.NewHenon(), 0, 0, 2000)
		Expect(err).NotTo(HaveOccurred())
		art := analysis.PhasePortraitToASCII(pts, 40, 10)
		Expect(strings.Count(art, "\n")).To(Equal(10))
		Expect(art).To(ContainSubstring("•"))
	})

	It("projects Lorenz trajectories", func() {
		states, err := orbit.LorenzTrajectory(chaos.NewLorenz(), dynamo.State{0.1, 0, 0}, 0.01, 100)
		Expect(err).NotTo(HaveOccurred())
		pts := analysis.Project(states, 0, 2)
		Expect(pts).To(HaveLen(101))
		Expect(pts[0]).To(Equal(orbit.Point{X: 0.1, Y: 0}))
		Expect(analysis.Project(states, 0, 5)).To(BeEmpty())
	})

	It("skips non-finite points", func() {
		pts := []orbit.Point{{X: math.Inf(1), Y: 0}, {X: math.NaN(), Y: 1}}
		Expect(analysis.PhasePortraitToASCII(pts, 10, 5)).To(BeEmpty())
	})
})
