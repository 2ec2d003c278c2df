package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Naming", func() {
	It("should accept hierarchical names", func() {
		Expect(func() { NameMustBeValid("Core.VU1") }).NotTo(Panic())
		Expect(func() { NameMustBeValid("Core.Lane[3]") }).NotTo(Panic())
		Expect(func() { NameMustBeValid("Core.Lane[3][1].FIFO") }).NotTo(Panic())
	})

	It("should panic if the name is empty", func() {
		Expect(func() { NameMustBeValid("") }).To(Panic())
	})

	It("should panic if name include underscore", func() {
		Expect(func() { NameMustBeValid("VU_1") }).To(Panic())
	})

	It("should panic if name include dash", func() {
		Expect(func() { NameMustBeValid("VU-1") }).To(Panic())
	})

	It("should panic if name is not capitalized", func() {
		Expect(func() { NameMustBeValid("vu1") }).To(Panic())
	})

	It("should have paired square brackets", func() {
		Expect(func() { NameMustBeValid("Lane[0") }).To(Panic())
		Expect(func() { NameMustBeValid("Lane0]") }).To(Panic())
	})

	It("should panic on non-integer index", func() {
		Expect(func() { NameMustBeValid("Lane[x]") }).To(Panic())
	})

	It("should panic if element name is empty", func() {
		Expect(func() { NameMustBeValid("Core..VU") }).To(Panic())
		Expect(func() { NameMustBeValid("Core.") }).To(Panic())
	})

	It("should build name", func() {
		Expect(BuildName("", "Core")).To(Equal("Core"))
		Expect(BuildName("Core", "VU1")).To(Equal("Core.VU1"))
		Expect(BuildNameWithIndex("Core", "Lane", 2)).To(Equal("Core.Lane[2]"))
	})
})
