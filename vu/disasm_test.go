package vu

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Disassembler", func() {
	DescribeTable("upper slot",
		func(u Upper, expected string) {
			Expect(DisassembleUpper(u)).To(Equal(expected))
		},
		Entry("NOP", UpperNOP(), "NOP"),
		Entry("WAITQ", UpperWAITQ(), "WAITQ"),
		Entry("DIV", UpperDIV(0, LaneW, 15, LaneW), "DIV Q, vf00w, vf15w"),
		Entry("MULq", UpperMULq(DestXYZ, 15, 15), "MULq.xyz vf15, vf15, Q"),
		Entry("FTOI4", UpperFTOI4(DestXY, 15, 15), "FTOI4.xy vf15, vf15"),
		Entry("MADDz", UpperBC(BCMadd, DestXYZW, 15, 3, 10, LaneZ),
			"MADDz.xyzw vf15, vf03, vf10z"),
		Entry("MULAw", UpperBC(BCMula, DestXYZW, 0, 4, 10, LaneW),
			"MULAw.xyzw ACC, vf04, vf10w"),
		Entry("unknown", Upper(0x0FF), "UPPER(0xff)"),
	)

	DescribeTable("lower slot",
		func(l Lower, expected string) {
			Expect(DisassembleLower(l)).To(Equal(expected))
		},
		Entry("NOP", LowerNOP(), "NOP"),
		Entry("LQI", LowerLQI(10, 1), "LQI vf10, (vi01++)"),
		Entry("SQI", LowerSQI(17, 2), "SQI vf17, (vi02++)"),
		Entry("IADDIU", LowerIADDIU(3, 3, -1), "IADDIU vi03, vi03, -1"),
		Entry("IBNE", LowerIBNE(3, 0, -27), "IBNE vi03, vi00, -27"),
		Entry("XGKICK", LowerXGKICK(5), "XGKICK vi05"),
	)

	It("should join both slots", func() {
		inst := MakeInstruction(UpperWAITQ(), LowerXGKICK(5))

		Expect(Disassemble(inst)).To(Equal("WAITQ | XGKICK vi05"))
	})

	It("should name the ops it traces", func() {
		Expect(OpName(UpperBC(BCMini, DestXYZW, 16, 16, 0, LaneW))).
			To(Equal("MINIw"))
		Expect(LowerOpName(LowerIBNE(3, 0, -27))).To(Equal("IBNE"))
	})
})
