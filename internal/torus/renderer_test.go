package torus_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/donut/internal/torus"
)

func lines(frame string) []string {
	return strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
}

var _ = Describe("Renderer", func() {
	var cfg torus.Config

	BeforeEach(func() {
		cfg = torus.DefaultConfig()
	})

	Describe("frame shape", func() {
		DescribeTable("has height lines of width runes",
			func(w, h int, a, b float64) {
				cfg.Width, cfg.Height = w, h
				out, err := torus.Render(cfg, a, b)
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(HaveSuffix("\n"))

				rows := lines(out)
				Expect(rows).To(HaveLen(h))
				for _, row := range rows {
					Expect([]rune(row)).To(HaveLen(w))
				}
			},
			Entry("default", 80, 22, 0.0, 0.0),
			Entry("rotated", 80, 22, 1.3, 0.7),
			Entry("narrow", 10, 30, 0.5, 2.0),
			Entry("wide", 120, 8, 4.0, -1.0),
			Entry("single cell", 1, 1, 0.0, 0.0),
		)

		It("renders a 1x1 grid as one rune and a newline", func() {
			cfg.Width, cfg.Height = 1, 1
			out, err := torus.Render(cfg, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect([]rune(out)).To(HaveLen(2))
			Expect(out).To(HaveSuffix("\n"))
		})

		DescribeTable("degenerate sizes render nothing",
			func(w, h int) {
				cfg.Width, cfg.Height = w, h
				out, err := torus.Render(cfg, 0, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(BeEmpty())
			},
			Entry("zero width", 0, 22),
			Entry("zero height", 80, 0),
			Entry("negative", -3, -3),
		)
	})

	It("draws the torus at the default configuration", func() {
		r, err := torus.NewRenderer(cfg)
		Expect(err).NotTo(HaveOccurred())

		f := r.RenderAt(torus.Rotation{})
		Expect(f.Lit()).To(BeNumerically(">", 0))

		center := 0
		for y := cfg.Height/2 - 5; y <= cfg.Height/2+5; y++ {
			for x := cfg.Width/2 - 20; x <= cfg.Width/2+20; x++ {
				if f.At(x, y) != torus.Blank {
					center++
				}
			}
		}
		Expect(center).To(BeNumerically(">", 0))
	})

	It("is idempotent for identical inputs", func() {
		r, err := torus.NewRenderer(cfg)
		Expect(err).NotTo(HaveOccurred())

		rot := torus.Rotation{A: 0.8, B: 2.4}
		first := r.RenderAt(rot).String()
		second := r.RenderAt(rot).String()
		Expect(second).To(Equal(first))
		Expect(r.Rotation()).To(Equal(torus.Rotation{}))
	})

	DescribeTable("baseline and optimized agree",
		func(a, b float64) {
			base := cfg
			base.Mode = torus.Baseline
			opt := cfg
			opt.Mode = torus.Optimized

			want, err := torus.Render(base, a, b)
			Expect(err).NotTo(HaveOccurred())
			got, err := torus.Render(opt, a, b)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("origin", 0.0, 0.0),
		Entry("quarter turn", 1.5707963, 0.0),
		Entry("mixed", 3.1, 5.9),
		Entry("large angles", 400.0, -250.0),
	)

	It("only draws characters from the shading ramp", func() {
		cfg.Shading = []rune("abc")
		r, err := torus.NewRenderer(cfg)
		Expect(err).NotTo(HaveOccurred())

		rot := torus.Rotation{}
		for i := 0; i < 20; i++ {
			for _, c := range r.RenderAt(rot).Cells {
				if c != torus.Blank {
					Expect("abc").To(ContainSubstring(string(c)))
				}
			}
			rot = rot.Step(cfg)
		}
	})

	It("clamps the shading index to a one-character ramp", func() {
		cfg.Shading = []rune("#")
		r, err := torus.NewRenderer(cfg)
		Expect(err).NotTo(HaveOccurred())

		f := r.RenderAt(torus.Rotation{A: 1, B: 1})
		Expect(f.Lit()).To(BeNumerically(">", 0))
		for _, c := range f.Cells {
			Expect(c).To(Or(Equal('#'), Equal(torus.Blank)))
		}
	})

	It("keeps the nearest depth in every lit cell", func() {
		r, err := torus.NewRenderer(cfg)
		Expect(err).NotTo(HaveOccurred())

		f := r.RenderAt(torus.Rotation{A: 0.3, B: 0.9})
		for i, c := range f.Cells {
			if c == torus.Blank {
				Expect(f.Depth[i]).To(BeZero())
			} else {
				Expect(f.Depth[i]).To(BeNumerically(">", 0))
			}
		}
	})

	It("still renders when the camera is inside the torus", func() {
		cfg.K2 = 0.5
		out, err := torus.Render(cfg, 0.3, 0.9)
		Expect(err).NotTo(HaveOccurred())
		Expect(lines(out)).To(HaveLen(cfg.Height))
	})

	Describe("stepping", func() {
		It("advances by the configured steps", func() {
			r, err := torus.NewRenderer(cfg)
			Expect(err).NotTo(HaveOccurred())

			r.SetRotation(torus.Rotation{A: 1.25, B: -0.5})
			r.Step()
			Expect(r.Rotation()).To(Equal(torus.Rotation{A: 1.25 + cfg.AStep, B: -0.5 + cfg.BStep}))
		})

		It("changes the rendered frame", func() {
			r, err := torus.NewRenderer(cfg)
			Expect(err).NotTo(HaveOccurred())

			before := r.Render()
			r.Step()
			Expect(r.Render()).NotTo(Equal(before))
		})
	})

	Describe("configuration errors", func() {
		DescribeTable("are rejected at construction",
			func(mutate func(*torus.Config), want error) {
				mutate(&cfg)
				_, err := torus.NewRenderer(cfg)
				Expect(err).To(MatchError(want))
			},
			Entry("zero theta step", func(c *torus.Config) { c.ThetaStep = 0 }, torus.ErrInvalidStep),
			Entry("negative phi step", func(c *torus.Config) { c.PhiStep = -0.1 }, torus.ErrInvalidStep),
			Entry("empty shading", func(c *torus.Config) { c.Shading = nil }, torus.ErrEmptyShading),
			Entry("unknown mode", func(c *torus.Config) { c.Mode = "turbo" }, torus.ErrUnknownMode),
		)

		It("copies the shading ramp", func() {
			ramp := []rune(".:#")
			cfg.Shading = ramp
			r, err := torus.NewRenderer(cfg)
			Expect(err).NotTo(HaveOccurred())

			ramp[0] = 'X'
			Expect(string(r.Config().Shading)).To(Equal(".:#"))
		})
	})
})

var _ = Describe("Frame", func() {
	It("lets the nearer sample win regardless of order", func() {
		nearFirst := torus.NewFrame(3, 3)
		nearFirst.Plot(1, 1, 0.5, '@')
		nearFirst.Plot(1, 1, 0.2, '.')

		farFirst := torus.NewFrame(3, 3)
		farFirst.Plot(1, 1, 0.2, '.')
		farFirst.Plot(1, 1, 0.5, '@')

		Expect(nearFirst.String()).To(Equal(farFirst.String()))
		Expect(nearFirst.At(1, 1)).To(Equal('@'))
		Expect(farFirst.Depth[4]).To(Equal(0.5))
	})

	It("ignores samples off the grid", func() {
		f := torus.NewFrame(2, 2)
		Expect(f.Plot(-1, 0, 1, '#')).To(BeFalse())
		Expect(f.Plot(0, 2, 1, '#')).To(BeFalse())
		Expect(f.Plot(2, 0, 1, '#')).To(BeFalse())
		Expect(f.Lit()).To(BeZero())
	})

	It("does not overwrite with an equal depth", func() {
		f := torus.NewFrame(1, 1)
		Expect(f.Plot(0, 0, 0.3, 'a')).To(BeTrue())
		Expect(f.Plot(0, 0, 0.3, 'b')).To(BeFalse())
		Expect(f.String()).To(Equal("a\n"))
	})

	It("flattens rows with newlines", func() {
		f := torus.NewFrame(3, 2)
		f.Plot(0, 0, 1, 'a')
		f.Plot(2, 1, 1, 'b')
		Expect(f.String()).To(Equal("a  \n  b\n"))
	})
})
