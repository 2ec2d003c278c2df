package gs

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/vupipe/sim"
)

func solid(r, g, b uint8, xy ...int32) Triangle {
	var t Triangle
	for i := range t {
		t[i] = Vertex{R: r, G: g, B: b, A: 0x80, X: xy[2*i], Y: xy[2*i+1]}
	}

	return t
}

var _ = Describe("Rasterizer", func() {
	var (
		mockCtrl *gomock.Controller
		fb       *Framebuffer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		fb = MakeBuilder().Build("GS")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	countNot := func(color uint32) int {
		n := 0
		for _, p := range fb.Pixels() {
			if p != color {
				n++
			}
		}

		return n
	}

	It("should start cleared", func() {
		Expect(fb.Width()).To(Equal(640))
		Expect(fb.Height()).To(Equal(448))
		Expect(countNot(ClearColor)).To(Equal(0))
	})

	It("should fill a front-facing triangle opaque", func() {
		n := fb.DrawTriangle(solid(255, 0, 0, 0, 0, 0, 10, 10, 0))

		Expect(n).To(Equal(66))
		for y := 1; y < 10; y++ {
			for x := 1; x+y < 10; x++ {
				Expect(fb.Pixel(x, y)).To(Equal(uint32(0xFF0000FF)),
					"pixel (%d, %d)", x, y)
			}
		}
		Expect(fb.Pixel(20, 20)).To(Equal(ClearColor))
		Expect(countNot(ClearColor)).To(Equal(66))
	})

	DescribeTable("culling",
		func(t Triangle) {
			Expect(fb.DrawTriangle(t)).To(Equal(0))
			Expect(countNot(ClearColor)).To(Equal(0))
			Expect(fb.TrianglesCulled()).To(Equal(uint64(1)))
		},
		Entry("back-facing", solid(255, 0, 0, 0, 0, 10, 0, 0, 10)),
		Entry("collinear", solid(255, 0, 0, 0, 0, 5, 5, 10, 10)),
		Entry("single point", solid(255, 0, 0, 3, 3, 3, 3, 3, 3)),
	)

	It("should interpolate colours", func() {
		t := Triangle{
			{R: 255, X: 0, Y: 0},
			{G: 255, X: 0, Y: 10},
			{B: 255, X: 10, Y: 0},
		}

		fb.DrawTriangle(t)

		Expect(fb.Pixel(0, 0)).To(Equal(uint32(0xFF0000FF)))
		Expect(fb.Pixel(0, 10)).To(Equal(uint32(0xFF00FF00)))
		Expect(fb.Pixel(10, 0)).To(Equal(uint32(0xFFFF0000)))
		Expect(fb.Pixel(0, 5)).To(Equal(uint32(0xFF007F7F)))
	})

	It("should clip to the framebuffer", func() {
		n := fb.DrawTriangle(solid(0, 255, 0, -5, -5, -5, 20, 20, -5))

		Expect(n).To(Equal(136))
		Expect(fb.Pixel(0, 0)).To(Equal(uint32(0xFF00FF00)))
	})

	It("should clip at the far edges", func() {
		n := fb.DrawTriangle(solid(0, 0, 255, 630, 440, 630, 460, 650, 440))

		Expect(n).To(BeNumerically(">", 0))
		Expect(fb.Pixel(639, 447)).To(Equal(uint32(0xFFFF0000)))
	})

	It("should draw nothing for a triangle fully off screen", func() {
		Expect(fb.DrawTriangle(solid(0, 0, 255, -30, -30, -30, -10, -10, -30))).
			To(Equal(0))
		Expect(fb.TrianglesDrawn()).To(Equal(uint64(1)))
	})

	It("should overwrite earlier triangles", func() {
		fb.DrawTriangle(solid(255, 0, 0, 0, 0, 0, 10, 10, 0))
		fb.DrawTriangle(solid(0, 0, 255, 0, 0, 0, 10, 10, 0))

		Expect(fb.Pixel(1, 1)).To(Equal(uint32(0xFFFF0000)))
	})

	It("should report drawn and culled triangles", func() {
		hook := NewMockHook(mockCtrl)
		fb.AcceptHook(hook)

		front := solid(255, 0, 0, 0, 0, 0, 10, 10, 0)
		back := solid(255, 0, 0, 0, 0, 10, 0, 0, 10)

		hook.EXPECT().Func(sim.HookCtx{
			Domain: fb,
			Pos:    HookPosTriangleDrawn,
			Item:   front,
			Detail: 66,
		})
		hook.EXPECT().Func(sim.HookCtx{
			Domain: fb,
			Pos:    HookPosTriangleCulled,
			Item:   back,
		})

		fb.DrawTriangle(front)
		fb.DrawTriangle(back)
	})

	It("should clear to a colour", func() {
		fb.DrawTriangle(solid(255, 0, 0, 0, 0, 0, 10, 10, 0))
		fb.Clear(0xFF000000)

		Expect(countNot(0xFF000000)).To(Equal(0))
	})
})
