package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nbodyanim/internal/physics"
)

var _ = Describe("NBody", func() {
	Describe("construction", func() {
		It("rejects invalid parameters", func() {
			p := physics.DefaultParams()
			p.Bodies = 0
			_, err := physics.NewNBody(p)
			Expect(err).To(HaveOccurred())

			p = physics.DefaultParams()
			p.Dims = 4
			_, err = physics.NewNBody(p)
			Expect(err).To(HaveOccurred())

			p = physics.DefaultParams()
			p.Dt = 0
			_, err = physics.NewNBody(p)
			Expect(err).To(HaveOccurred())

			p = physics.DefaultParams()
			p.Init = "spiral"
			_, err = physics.NewNBody(p)
			Expect(err).To(HaveOccurred())
		})

		It("deposits all mass of an in-domain cloud onto the grid", func() {
			p := physics.DefaultParams()
			p.Bodies = 200
			nb, err := physics.NewNBody(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(nb.Density().Total()).To(BeNumerically("==", 200))
		})

		It("builds a rank-3 density grid for a 3D model", func() {
			p := physics.DefaultParams()
			p.Dims = 3
			p.Grid = 16
			p.Bodies = 50
			nb, err := physics.NewNBody(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(nb.Density().Rank()).To(Equal(3))
			Expect(nb.Density().Shape()).To(Equal([]int{16, 16, 16}))
		})
	})

	Describe("evolution", func() {
		It("conserves total momentum", func() {
			p := physics.DefaultParams()
			p.Bodies = 16
			p.Init = physics.InitRing
			p.Dt = 0.01
			nb, err := physics.NewNBody(p)
			Expect(err).NotTo(HaveOccurred())

			p0 := nb.Momentum()
			_, err = nb.Evolve(500)
			Expect(err).NotTo(HaveOccurred())

			p1 := nb.Momentum()
			for k := range p1 {
				Expect(p1[k] - p0[k]).To(BeNumerically("~", 0, 1e-8))
			}
		})

		It("keeps energy drift small over many leapfrog steps", func() {
			p := physics.DefaultParams()
			p.Bodies = 8
			p.Init = physics.InitRing
			p.Dt = 0.005
			p.Softening = 2.0
			nb, err := physics.NewNBody(p)
			Expect(err).NotTo(HaveOccurred())

			e0 := nb.TotalEnergy()
			e1, err := nb.Evolve(2000)
			Expect(err).NotTo(HaveOccurred())

			drift := math.Abs(e1-e0) / math.Abs(e0)
			Expect(drift).To(BeNumerically("<", 0.05))
		})

		It("refreshes the density grid on every call", func() {
			p := physics.DefaultParams()
			p.Bodies = 64
			p.Init = physics.InitCollapse
			nb, err := physics.NewNBody(p)
			Expect(err).NotTo(HaveOccurred())

			before := append([]float64(nil), nb.Density().Data()...)
			_, err = nb.Evolve(20)
			Expect(err).NotTo(HaveOccurred())
			Expect(nb.Density().Data()).NotTo(Equal(before))
		})

		It("exposes position columns matching particle count", func() {
			p := physics.DefaultParams()
			p.Bodies = 32
			p.Dims = 3
			nb, err := physics.NewNBody(p)
			Expect(err).NotTo(HaveOccurred())

			xs, ys := nb.Positions()
			Expect(xs).To(HaveLen(32))
			Expect(ys).To(HaveLen(32))
		})
	})
})
