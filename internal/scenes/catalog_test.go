package scenes_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/scenes"
	"github.com/tomaspre/physviz/internal/stage"
)

const dt = 1.0 / 30.0

// launch builds a scene from a catalog entry on a fresh 60x20 stage,
// overlaying vars on the entry defaults.
func launch(name string, vars scene.Variables) (*stage.Stage, scene.Renderer, *scene.Lifecycle) {
	entry, err := scenes.Get(name)
	Expect(err).NotTo(HaveOccurred())

	st := stage.New(60, 20)
	r := entry.New()
	lc := scene.New(st, r, scene.NewIDGen(7), entry.Options(vars)...)
	return st, r, lc
}

func advance(st *stage.Stage, frames int) {
	for i := 0; i < frames; i++ {
		st.Clock().Advance(dt)
	}
}

func sampleOf(r scene.Renderer) float64 {
	s, ok := r.(scene.Sampler)
	Expect(ok).To(BeTrue(), "renderer should expose a sample trace")
	_, v := s.Sample()
	return v
}

var _ = Describe("Catalog", func() {
	It("resolves every listed entry", func() {
		for _, e := range scenes.List() {
			got, err := scenes.Get(e.Name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.New).NotTo(BeNil())
			Expect(got.Blurb).NotTo(BeEmpty())
			Expect(got.Defaults).NotTo(BeEmpty())
		}
	})

	It("rejects unknown names", func() {
		_, err := scenes.Get("wormhole")
		Expect(err).To(MatchError("unknown scene: wormhole"))
	})

	It("lists entries and names in the same sorted order", func() {
		names := scenes.Names()
		Expect(names).To(HaveLen(len(scenes.List())))
		for i, e := range scenes.List() {
			Expect(e.Name).To(Equal(names[i]))
		}
	})

	It("overlays caller variables on the entry defaults", func() {
		entry, err := scenes.Get("pendulum")
		Expect(err).NotTo(HaveOccurred())

		st := stage.New(60, 20)
		lc := scene.New(st, entry.New(), scene.NewIDGen(1),
			entry.Options(scene.Variables{"length": 4.0})...)

		Expect(lc.Var("length", 0)).To(Equal(4.0))
		Expect(lc.Var("gravity", 0)).To(Equal(9.81), "untouched defaults survive the overlay")
	})
})

var _ = Describe("Scene rendering", func() {
	It("draws content for every catalog entry within a few frames", func() {
		for _, e := range scenes.List() {
			st, _, lc := launch(e.Name, nil)
			advance(st, 3)
			cv := lc.Content().Canvas()
			Expect(cv).NotTo(BeNil())
			Expect(cv.Blank()).To(BeFalse(), "%s drew nothing", e.Name)
		}
	})

	It("draws the grid overlay only for grid-flagged entries", func() {
		for _, e := range scenes.List() {
			st, _, lc := launch(e.Name, nil)
			advance(st, 1)
			bg := lc.Background().Canvas()
			Expect(bg).NotTo(BeNil())
			if e.Grid {
				Expect(bg.Blank()).To(BeFalse(), "%s is missing its grid", e.Name)
			} else {
				Expect(bg.Blank()).To(BeTrue(), "%s drew an unexpected background", e.Name)
			}
		}
	})
})

var _ = Describe("Collision", func() {
	It("conserves momentum through a block-on-block hit", func() {
		st, r, _ := launch("collision", nil)
		// Defaults: m1=2 at v1=3 meets m2=1 at v2=-1, total momentum 5.
		before := sampleOf(r)
		Expect(before).To(BeNumerically("~", 5.0, 1e-9))

		// 1.5s is past the first contact but before either wall bounce.
		advance(st, 45)
		Expect(sampleOf(r)).To(BeNumerically("~", 5.0, 1e-6))
	})
})

var _ = Describe("Pendulum", func() {
	It("uses the catalog defaults when no variables are supplied", func() {
		st := stage.New(60, 20)
		r := scenes.NewPendulum()
		scene.New(st, r, scene.NewIDGen(1))

		advance(st, 1)
		// θ₀ = 0.6 barely decayed after one frame.
		Expect(sampleOf(r)).To(BeNumerically("~", 0.6, 0.02))
	})

	It("falls back to defaults for keys a partial update drops", func() {
		st, r, lc := launch("pendulum", nil)
		advance(st, 1)

		// Wholesale replacement: only theta0 remains, gravity and damping
		// revert to their defaults.
		lc.Update(scene.Variables{"theta0": 1.0})
		advance(st, 1)

		Expect(lc.Var("gravity", -1)).To(Equal(-1.0))
		Expect(sampleOf(r)).To(BeNumerically(">", 0.9))
	})

	It("damps the swing toward rest", func() {
		st, r, _ := launch("pendulum", nil)
		advance(st, 600) // 20s, envelope 0.6·e^(−3)
		Expect(sampleOf(r)).To(BeNumerically("~", 0.0, 0.05))
	})
})

var _ = Describe("Photoelectric", func() {
	It("ejects no electrons below the threshold frequency", func() {
		st, r, _ := launch("photoelectric", scene.Variables{"frequency": 4.0})
		// hf ≈ 1.65 eV against a 2 eV work function.
		advance(st, 150)
		Expect(sampleOf(r)).To(BeZero())
	})

	It("ejects electrons above the threshold frequency", func() {
		st, r, _ := launch("photoelectric", scene.Variables{"frequency": 8.0})
		advance(st, 150)
		Expect(sampleOf(r)).To(BeNumerically(">", 0))
	})

	It("survives a viewport too small for the photon lanes", func() {
		entry, err := scenes.Get("photoelectric")
		Expect(err).NotTo(HaveOccurred())

		// 4 cells is 16 dots, exactly the lane margin; 2 cells is below it.
		for _, cells := range []int{4, 2} {
			st := stage.New(40, cells)
			scene.New(st, entry.New(), scene.NewIDGen(1), entry.Options(nil)...)
			Expect(func() { advance(st, 30) }).NotTo(Panic())
		}
	})
})
