package vif

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Code", func() {
	It("should split the fields", func() {
		c := Code(0x6C24016C)

		Expect(c.Cmd()).To(Equal(CmdUNPACKV4_32))
		Expect(c.Num()).To(Equal(uint8(0x24)))
		Expect(c.Imm()).To(Equal(uint16(0x016C)))
		Expect(c.Addr()).To(Equal(uint16(0x16C)))
	})

	It("should mask the data field", func() {
		Expect(MakeCode(CmdMSCAL, 0xFF000010)).To(Equal(Code(0x14000010)))
	})

	It("should encode STCYCL", func() {
		c := STCYCL(2, 3)

		Expect(uint32(c)).To(Equal(uint32(0x01000203)))
		Expect(c.WL()).To(Equal(uint8(2)))
		Expect(c.CL()).To(Equal(uint8(3)))
	})

	It("should keep UNPACK addresses within data memory", func() {
		Expect(UNPACK(1, 0x7FF).Addr()).To(Equal(uint16(0x3FF)))
	})

	DescribeTable("String",
		func(c Code, expected string) {
			Expect(c.String()).To(Equal(expected))
		},
		Entry("STCYCL", STCYCL(1, 1), "STCYCL wl=1 cl=1"),
		Entry("UNPACK", UNPACK(36, 72), "UNPACK.V4-32 num=36 addr=72"),
		Entry("MSCAL", MSCAL(0), "MSCAL 0"),
		Entry("FLUSH", FLUSH(), "FLUSH"),
		Entry("NOP", Code(0), "NOP"),
		Entry("unknown", Code(0x4A010002), "VIFcode{cmd:0x4a num:0x01 imm:0x0002}"),
	)
})
