// Package ee builds the per-frame DMA packet that feeds the pipeline: the
// cube geometry, the model-view-projection matrix, the light and the viewport,
// wrapped in VIFcodes that unpack them into vector-unit data memory and start
// the micro-program.
package ee

import (
	"fmt"
	"math"

	"github.com/sarchlab/vupipe/gif"
	"github.com/sarchlab/vupipe/qword"
	"github.com/sarchlab/vupipe/vif"
	"github.com/sarchlab/vupipe/vu"
)

// Packet geometry.
const (
	DefaultPacketBase = 0x00100000
	PacketQWC         = 125
	RAMSize           = 2 << 20
	MatOpsPerPacket   = 5
)

// Memory receives the packet bytes.
type Memory interface {
	Write(address uint64, data []byte) error
}

// A Packet locates a packet in memory for the DMA channel.
type Packet struct {
	MADR   uint32
	QWC    uint32
	MatOps uint64
}

// Producer writes one packet per frame, rotating the cube a little further
// each time.
type Producer struct {
	base     uint32
	frame    uint64
	distance float32
	fovY     float32
	aspect   float32
	near     float32
	far      float32
	light    [4]float32
	viewport [4]float32
}

// Frame returns the index of the next packet.
func (p *Producer) Frame() uint64 {
	return p.frame
}

// MVP returns the model-view-projection matrix of a frame.
func (p *Producer) MVP(frame uint64) Mat4 {
	angleY := float32(frame) * (math.Pi / 180)
	angleX := float32(frame) * (math.Pi / 360)

	model := Mul(RotateX(angleX), RotateY(angleY))
	view := TranslateZ(-p.distance)
	proj := Perspective(p.fovY, p.aspect, p.near, p.far)

	return Mul(proj, Mul(view, model))
}

// Encode returns the quadwords of the packet for a frame.
func (p *Producer) Encode(frame uint64) []qword.QW {
	cube := Cube()
	w := packetWriter{qws: make([]qword.QW, 0, PacketQWC)}

	w.code(vif.STCYCL(1, 1))

	w.code(vif.UNPACK(1, vu.CubeGIFTagAddr))
	w.qw(qword.QW(CubeTag()))

	w.code(vif.UNPACK(uint8(len(cube)), vu.CubePositionBase))
	for _, v := range cube {
		w.floats(v.Pos[0], v.Pos[1], v.Pos[2], 1)
	}

	w.code(vif.UNPACK(uint8(len(cube)), vu.CubeNormalBase))
	for _, v := range cube {
		w.floats(v.Normal[0], v.Normal[1], v.Normal[2], 0)
	}

	w.code(vif.UNPACK(uint8(len(cube)), vu.CubeColorBase))
	for _, v := range cube {
		w.floats(v.Color[0], v.Color[1], v.Color[2], 1)
	}

	mvp := p.MVP(frame)
	w.code(vif.UNPACK(4, vu.CubeMVPBase))
	for _, col := range mvp {
		w.floats(col[0], col[1], col[2], col[3])
	}

	w.code(vif.UNPACK(1, vu.CubeLightAddr))
	w.floats(p.light[0], p.light[1], p.light[2], p.light[3])

	w.code(vif.UNPACK(1, vu.CubeViewportAddr))
	w.floats(p.viewport[0], p.viewport[1], p.viewport[2], p.viewport[3])

	w.code(vif.MSCAL(0))
	w.code(vif.FLUSH())

	return w.qws
}

// BuildPacket writes the next frame's packet into ram and advances the frame
// counter.
func (p *Producer) BuildPacket(ram Memory) (Packet, error) {
	frame := p.frame
	p.frame++

	qws := p.Encode(frame)

	buf := make([]byte, 0, len(qws)*qword.Size)
	for _, q := range qws {
		b := q.Bytes()
		buf = append(buf, b[:]...)
	}

	if err := ram.Write(uint64(p.base), buf); err != nil {
		return Packet{}, fmt.Errorf("writing packet of frame %d: %w", frame, err)
	}

	return Packet{
		MADR:   p.base,
		QWC:    uint32(len(qws)),
		MatOps: MatOpsPerPacket,
	}, nil
}

// CubeTag is the GIF tag the micro-program kicks: a Gouraud triangle list of
// one vertex per loop, position then colour.
func CubeTag() gif.Tag {
	return gif.MakeTagBuilder().
		WithNLoop(vu.CubeVertexCount).
		WithEOP().
		WithPrim(gif.PrimTriangle|gif.PrimIIP).
		WithRegs(gif.RegXYZ2, gif.RegRGBAQ).
		Build()
}

type packetWriter struct {
	qws []qword.QW
}

func (w *packetWriter) code(c vif.Code) {
	w.qws = append(w.qws, qword.FromWords(uint32(c), 0, 0, 0))
}

func (w *packetWriter) qw(q qword.QW) {
	w.qws = append(w.qws, q)
}

func (w *packetWriter) floats(x, y, z, v float32) {
	w.qws = append(w.qws, qword.FromFloats([4]float32{x, y, z, v}))
}
