package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("BufferImpl", func() {
	var (
		mockCtrl *gomock.Controller
		buf      Buffer[int]
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		buf = NewBuffer[int]("Buf", 2)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should allow push and pop", func() {
		Expect(buf.Capacity()).To(Equal(2))
		Expect(buf.CanPush()).To(BeTrue())

		buf.Push(1)
		Expect(buf.CanPush()).To(BeTrue())
		Expect(buf.Size()).To(Equal(1))

		buf.Push(2)
		Expect(buf.CanPush()).To(BeFalse())
		Expect(buf.Size()).To(Equal(2))
		Expect(func() { buf.Push(3) }).To(Panic())

		e, ok := buf.Peek()
		Expect(ok).To(BeTrue())
		Expect(e).To(Equal(1))

		e, ok = buf.Pop()
		Expect(ok).To(BeTrue())
		Expect(e).To(Equal(1))

		e, _ = buf.Pop()
		Expect(e).To(Equal(2))

		_, ok = buf.Pop()
		Expect(ok).To(BeFalse())
		_, ok = buf.Peek()
		Expect(ok).To(BeFalse())
	})

	It("should clear", func() {
		buf.Push(2)
		buf.Clear()

		Expect(buf.Size()).To(Equal(0))
		_, ok := buf.Peek()
		Expect(ok).To(BeFalse())
	})

	It("should invoke push and pop hooks", func() {
		hook := NewMockHook(mockCtrl)
		buf.AcceptHook(hook)

		hook.EXPECT().Func(gomock.Cond(func(x any) bool {
			ctx := x.(HookCtx)
			return ctx.Pos == HookPosBufPush && ctx.Item == 7
		}))
		hook.EXPECT().Func(gomock.Cond(func(x any) bool {
			ctx := x.(HookCtx)
			return ctx.Pos == HookPosBufPop && ctx.Item == 7
		}))

		buf.Push(7)
		buf.Pop()
	})

	It("should reject a duplicated hook", func() {
		hook := NewMockHook(mockCtrl)
		buf.AcceptHook(hook)

		Expect(func() { buf.AcceptHook(hook) }).To(Panic())
		Expect(buf.NumHooks()).To(Equal(1))
	})

	It("should panic on invalid capacity", func() {
		Expect(func() { NewBuffer[int]("Buf", 0) }).To(Panic())
	})
})
