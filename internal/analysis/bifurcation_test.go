package analysis_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/dynamo"
	"github.com/san-kum/atlas/internal/orbit"
)

var _ = Describe("Sweep", func() {
	DescribeTable("output length is (rSteps+1)*keep",
		func(rSteps, iters, keep int) {
			samples, err := analysis.SweepBifurcation(2.5, 4.0, rSteps, iters, keep, 0.2)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).To(HaveLen((rSteps + 1) * keep))
		},
		Entry("reference diagram", 260, 420, 60),
		Entry("single parameter", 0, 100, 10),
		Entry("keep everything", 12, 30, 30),
		Entry("keep nothing", 5, 30, 0),
		Entry("no iterations", 3, 0, 0),
	)

	It("tags each group with evenly spaced parameters including both ends", func() {
		cfg := analysis.SweepConfig{RMin: 2.5, RMax: 4.0, RSteps: 6, Iters: 50, Keep: 4, X0: 0.2}
		samples, err := analysis.Sweep(chaos.Logistic, cfg)
		Expect(err).NotTo(HaveOccurred())

		points := analysis.Group(samples)
		Expect(points).To(HaveLen(7))
		for i, p := range points {
			Expect(p.Param).To(Equal(2.5 + (float64(i)/6)*(4.0-2.5)))
			Expect(p.Values).To(HaveLen(4))
		}
		Expect(points[0].Param).To(Equal(2.5))
		Expect(points[6].Param).To(Equal(4.0))
	})

	It("degenerates to the tail of a single orbit when rSteps is zero", func() {
		samples, err := analysis.SweepBifurcation(2.5, 2.5, 0, 100, 10, 0.2)
		Expect(err).NotTo(HaveOccurred())
		Expect(samples).To(HaveLen(10))

		xs, err := orbit.IterateLogisticMap(2.5, 0.2, 100)
		Expect(err).NotTo(HaveOccurred())
		tail := xs[len(xs)-10:]
		for i, s := range samples {
			Expect(s.R).To(Equal(2.5))
			Expect(s.X).To(Equal(tail[i]))
		}
	})

	It("ignores rMax when rSteps is zero", func() {
		samples, err := analysis.SweepBifurcation(3.1, 3.9, 0, 20, 2, 0.2)
		Expect(err).NotTo(HaveOccurred())
		for _, s := range samples {
			Expect(s.R).To(Equal(3.1))
		}
	})

	Context("when keep is not smaller than iters", func() {
		It("skips the burn-in and records keep iterates from x0", func() {
			samples, err := analysis.SweepBifurcation(3.3, 3.3, 0, 5, 8, 0.2)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).To(HaveLen(8))

			xs, _ := orbit.IterateLogisticMap(3.3, 0.2, 8)
			for i, s := range samples {
				Expect(s.X).To(Equal(xs[i+1]))
			}
		})

		It("reports zero burn-in", func() {
			Expect(analysis.SweepConfig{Iters: 10, Keep: 10}.BurnIn()).To(Equal(0))
			Expect(analysis.SweepConfig{Iters: 10, Keep: 40}.BurnIn()).To(Equal(0))
			Expect(analysis.SweepConfig{Iters: 420, Keep: 60}.BurnIn()).To(Equal(360))
		})
	})

	DescribeTable("rejects negative counts",
		func(cfg analysis.SweepConfig) {
			_, err := analysis.Sweep(chaos.Logistic, cfg)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
			_, err = analysis.SweepParallel(chaos.Logistic, cfg, 4)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		},
		Entry("rSteps", analysis.SweepConfig{RSteps: -1, Iters: 10, Keep: 2}),
		Entry("iters", analysis.SweepConfig{RSteps: 1, Iters: -10, Keep: 2}),
		Entry("keep", analysis.SweepConfig{RSteps: 1, Iters: 10, Keep: -2}),
	)

	DescribeTable("rejects grids whose sample count overflows int",
		func(rSteps, keep int) {
			_, err := analysis.SweepBifurcation(2.5, 4.0, rSteps, 10, keep, 0.2)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
			_, err = analysis.SweepParallel(chaos.Logistic,
				analysis.SweepConfig{RMin: 2.5, RMax: 4.0, RSteps: rSteps, Iters: 10, Keep: keep, X0: 0.2}, 4)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		},
		Entry("grid size itself overflows", math.MaxInt, 0),
		Entry("max grid with keep 2", math.MaxInt, 2),
		Entry("max grid with keep 3", math.MaxInt, 3),
		Entry("product just past the limit", math.MaxInt/4, 4),
	)

	It("accepts the largest grid whose sample count fits", func() {
		cfg := analysis.SweepConfig{RSteps: math.MaxInt/4 - 1, Iters: 10, Keep: 4}
		Expect(cfg.Validate()).To(Succeed())
	})

	It("is bit-for-bit deterministic", func() {
		cfg := analysis.DefaultSweepConfig()
		a, err := analysis.Sweep(chaos.Logistic, cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := analysis.Sweep(chaos.Logistic, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(HaveLen(len(a)))
		for i := range a {
			Expect(math.Float64bits(b[i].X)).To(Equal(math.Float64bits(a[i].X)))
			Expect(b[i].R).To(Equal(a[i].R))
		}
	})

	It("sweeps other maps", func() {
		cfg := analysis.SweepConfig{RMin: 0.5, RMax: 0.9, RSteps: 4, Iters: 200, Keep: 3, X0: 0.3}
		samples, err := analysis.Sweep(chaos.Tent, cfg)
		Expect(err).NotTo(HaveOccurred())
		// Below slope 1 the tent map contracts to 0.
		for _, s := range samples {
			Expect(s.X).To(BeNumerically("~", 0, 1e-9))
		}
	})

	It("uses the reference defaults", func() {
		cfg := analysis.DefaultSweepConfig()
		Expect(cfg).To(Equal(analysis.SweepConfig{RMin: 2.5, RMax: 4.0, RSteps: 260, Iters: 420, Keep: 60, X0: 0.2}))
		Expect(cfg.Len()).To(Equal(261 * 60))
	})
})

var _ = Describe("SweepParallel", func() {
	DescribeTable("matches the sequential sweep exactly",
		func(workers int) {
			cfg := analysis.DefaultSweepConfig()
			seq, err := analysis.Sweep(chaos.Logistic, cfg)
			Expect(err).NotTo(HaveOccurred())
			par, err := analysis.SweepParallel(chaos.Logistic, cfg, workers)
			Expect(err).NotTo(HaveOccurred())
			Expect(par).To(Equal(seq))
		},
		Entry("all CPUs", 0),
		Entry("one worker", 1),
		Entry("three workers", 3),
		Entry("more workers than chunks", 64),
	)

	It("handles keep of zero", func() {
		samples, err := analysis.SweepParallel(chaos.Logistic, analysis.SweepConfig{RSteps: 10, Iters: 10}, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(samples).To(BeEmpty())
	})
})

var _ = Describe("Group", func() {
	It("collapses consecutive samples by parameter", func() {
		points := analysis.Group([]analysis.Sample{{R: 1, X: 0.1}, {R: 1, X: 0.2}, {R: 2, X: 0.3}})
		Expect(points).To(Equal([]analysis.BifurcationPoint{
			{Param: 1, Values: []float64{0.1, 0.2}},
			{Param: 2, Values: []float64{0.3}},
		}))
		Expect(analysis.Group(nil)).To(BeEmpty())
	})
})

var _ = Describe("BifurcationToASCII", func() {
	It("renders one row per height unit", func() {
		samples, _ := analysis.Sweep(chaos.Logistic, analysis.DefaultSweepConfig())
		art := analysis.BifurcationToASCII(analysis.Group(samples), 60, 12)
		lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
		Expect(lines).To(HaveLen(12))
		Expect(art).To(ContainSubstring("•"))
	})

	It("returns empty output for unusable input", func() {
		Expect(analysis.BifurcationToASCII(nil, 10, 10)).To(BeEmpty())
		Expect(analysis.BifurcationToASCII([]analysis.BifurcationPoint{{Param: 1, Values: []float64{math.NaN()}}}, 10, 10)).To(BeEmpty())
		Expect(analysis.BifurcationToASCII([]analysis.BifurcationPoint{{Param: 1, Values: []float64{1}}}, 0, 10)).To(BeEmpty())
	})
})
