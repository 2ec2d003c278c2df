package ee

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mat4", func() {
	It("should keep a matrix under identity", func() {
		m := RotateX(0.3)

		Expect(Mul(Identity(), m)).To(Equal(m))
		Expect(Mul(m, Identity())).To(Equal(m))
	})

	It("should translate points but not directions", func() {
		m := TranslateZ(-3)

		Expect(m.Apply([4]float32{1, 2, 3, 1})).To(Equal([4]float32{1, 2, 0, 1}))
		Expect(m.Apply([4]float32{1, 2, 3, 0})).To(Equal([4]float32{1, 2, 3, 0}))
	})

	It("should rotate a quarter turn around Y", func() {
		v := RotateY(math.Pi / 2).Apply([4]float32{1, 0, 0, 1})

		Expect(v[0]).To(BeNumerically("~", 0, 1e-6))
		Expect(v[2]).To(BeNumerically("~", 1, 1e-6))
	})

	It("should rotate a quarter turn around X", func() {
		v := RotateX(math.Pi / 2).Apply([4]float32{0, 1, 0, 1})

		Expect(v[1]).To(BeNumerically("~", 0, 1e-6))
		Expect(v[2]).To(BeNumerically("~", -1, 1e-6))
	})

	It("should apply the right matrix first", func() {
		a := TranslateZ(-3)
		b := RotateY(math.Pi / 2)
		p := [4]float32{1, 0, 0, 1}

		got := Mul(a, b).Apply(p)
		want := a.Apply(b.Apply(p))

		for i := range got {
			Expect(got[i]).To(BeNumerically("~", want[i], 1e-6))
		}
	})

	It("should map the near and far planes to -1 and 1", func() {
		m := Perspective(math.Pi/3, 1, 0.1, 100)

		near := m.Apply([4]float32{0, 0, -0.1, 1})
		far := m.Apply([4]float32{0, 0, -100, 1})

		Expect(near[2] / near[3]).To(BeNumerically("~", -1, 1e-4))
		Expect(far[2] / far[3]).To(BeNumerically("~", 1, 1e-4))
		Expect(m[1][1]).To(BeNumerically("~", math.Sqrt(3), 1e-5))
	})
})
