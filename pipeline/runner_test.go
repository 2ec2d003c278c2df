package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/vupipe/ee"
	"github.com/sarchlab/vupipe/gs"
)

var _ = Describe("Runner", func() {
	var (
		core *Core
	)

	BeforeEach(func() {
		core = MakeBuilder().Build("Core")
	})

	It("should stop after the frame budget", func() {
		r := NewRunner(core, 3, 0)

		Expect(r.Run(context.Background())).To(Succeed())
		Expect(r.Telemetry().FrameCount).To(Equal(uint64(3)))
	})

	It("should tell the time of the last finished frame", func() {
		r := NewRunner(core, 2, 0)
		Expect(r.CurrentTime()).To(BeZero())

		Expect(r.Run(context.Background())).To(Succeed())

		Expect(r.CurrentTime()).To(Equal(core.CurrentTime()))
		Expect(r.CurrentTime()).To(BeNumerically(">", 0))
	})

	It("should let callers inspect the core between frames", func() {
		r := NewRunner(core, 1, 0)
		Expect(r.Run(context.Background())).To(Succeed())

		var frames uint64
		r.Inspect(func() {
			frames = core.Telemetry().FrameCount
		})

		Expect(frames).To(Equal(uint64(1)))
	})

	It("should stop when the context is cancelled", func() {
		r := NewRunner(core, 0, time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := r.Run(ctx)

		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(r.Telemetry().FrameCount).To(BeZero())
	})

	It("should stop on a failing frame", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		producer := NewMockProducer(mockCtrl)
		failure := errors.New("no room")
		producer.EXPECT().BuildPacket(gomock.Any()).Return(ee.Packet{}, failure)

		r := NewRunner(MakeBuilder().WithProducer(producer).Build("Core"), 0, 0)

		Expect(errors.Is(r.Run(context.Background()), failure)).To(BeTrue())
		Expect(errors.Is(r.LastError(), failure)).To(BeTrue())
	})

	It("should step one frame at a time while paused", func() {
		r := NewRunner(core, 2, 0)
		r.Pause()
		Expect(r.Paused()).To(BeTrue())

		done := make(chan error)
		go func() { done <- r.Run(context.Background()) }()

		Consistently(func() uint64 { return r.Telemetry().FrameCount },
			"50ms").Should(BeZero())

		r.StepOnce()
		Eventually(func() uint64 { return r.Telemetry().FrameCount }).
			Should(Equal(uint64(1)))
		Consistently(func() uint64 { return r.Telemetry().FrameCount },
			"50ms").Should(Equal(uint64(1)))

		r.Continue()
		Eventually(done).Should(Receive(BeNil()))
		Expect(r.Telemetry().FrameCount).To(Equal(uint64(2)))
	})

	It("should snapshot the framebuffer", func() {
		r := NewRunner(core, 1, 0)
		Expect(r.Run(context.Background())).To(Succeed())

		img := r.Snapshot(1)
		Expect(img.Bounds().Dx()).To(Equal(gs.Width))

		buf := new(bytes.Buffer)
		Expect(r.WritePNG(buf, 2)).To(Succeed())

		decoded, err := png.Decode(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Bounds().Dy()).To(Equal(2 * gs.Height))
	})
})
