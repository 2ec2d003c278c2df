package vu

// Data-memory layout used by CubeProgram.
const (
	CubePositionBase = 0
	CubeNormalBase   = 36
	CubeColorBase    = 72
	CubeGIFTagAddr   = 108
	CubeOutputBase   = 109
	CubeMVPBase      = 182
	CubeLightAddr    = 186
	CubeViewportAddr = 187
	CubeVertexCount  = 36
)

// CubeLoopStart is the address of the per-vertex loop in CubeProgram.
const CubeLoopStart = 13

func nopLower(u Upper) Instruction { return MakeInstruction(u, LowerNOP()) }
func nopUpper(l Lower) Instruction { return MakeInstruction(UpperNOP(), l) }

// CubeProgram returns the transform-and-light micro-program.
//
// Register use: VF1-4 MVP columns, VF5 light direction with ambient in w, VF9
// viewport half-extents, VF10-12 vertex position, normal and colour, VF15 the
// transformed position, VF16 the light intensity, VF17 the lit colour. VI1,
// VI6 and VI7 walk the input arrays, VI2 the output, VI3 counts vertices, VI4
// walks the constants and VI5 holds the GIF tag address.
//
// For each vertex the program stores the 12.4 screen position followed by the
// lit colour from CubeOutputBase on, then kicks the GIF tag at CubeGIFTagAddr.
func CubeProgram() []Instruction {
	prog := []Instruction{
		nopUpper(LowerIADDIU(1, 0, CubePositionBase)),
		nopUpper(LowerIADDIU(6, 0, CubeNormalBase)),
		nopUpper(LowerIADDIU(7, 0, CubeColorBase)),
		nopUpper(LowerIADDIU(2, 0, CubeOutputBase)),
		nopUpper(LowerIADDIU(5, 0, CubeGIFTagAddr)),
		nopUpper(LowerIADDIU(3, 0, CubeVertexCount)),
		nopUpper(LowerIADDIU(4, 0, CubeMVPBase)),

		nopUpper(LowerLQI(1, 4)),
		nopUpper(LowerLQI(2, 4)),
		nopUpper(LowerLQI(3, 4)),
		nopUpper(LowerLQI(4, 4)),
		nopUpper(LowerLQI(5, 4)),
		nopUpper(LowerLQI(9, 4)),

		// loop
		nopUpper(LowerLQI(10, 1)),
		nopUpper(LowerLQI(11, 6)),
		nopUpper(LowerLQI(12, 7)),

		// clip = MVP * pos
		nopLower(UpperBC(BCMula, DestXYZW, 0, 4, 10, LaneW)),
		nopLower(UpperBC(BCMadda, DestXYZW, 0, 1, 10, LaneX)),
		nopLower(UpperBC(BCMadda, DestXYZW, 0, 2, 10, LaneY)),
		nopLower(UpperBC(BCMadd, DestXYZW, 15, 3, 10, LaneZ)),

		// Q = 1 / clip.w
		nopLower(UpperDIV(0, LaneW, 15, LaneW)),

		// intensity = min(max(dot(n, l), 0), 1) + ambient, clamped to 1
		nopLower(UpperBC(BCMula, DestXYZW, 0, 11, 5, LaneX)),
		nopLower(UpperBC(BCMadda, DestXYZW, 0, 11, 5, LaneY)),
		nopLower(UpperBC(BCMadd, DestXYZW, 16, 11, 5, LaneZ)),
		nopLower(UpperBC(BCMax, DestXYZW, 16, 16, 0, LaneX)),
		nopLower(UpperBC(BCMini, DestXYZW, 16, 16, 0, LaneW)),
		nopLower(UpperBC(BCAdd, DestXYZW, 16, 16, 5, LaneW)),
		nopLower(UpperBC(BCMini, DestXYZW, 16, 16, 0, LaneW)),

		nopLower(UpperBC(BCMul, DestXYZW, 17, 12, 16, LaneX)),

		nopLower(UpperWAITQ()),
		nopLower(UpperMULq(DestXYZ, 15, 15)),

		// x = ndc.x*vp.x + vp.x, y = vp.y - ndc.y*vp.y
		nopLower(UpperBC(BCMula, DestX, 0, 15, 9, LaneX)),
		nopLower(UpperBC(BCMadd, DestX, 15, 9, 0, LaneW)),
		nopLower(UpperBC(BCMul, DestY, 15, 15, 9, LaneY)),
		nopLower(UpperBC(BCSub, DestY, 15, 9, 15, LaneY)),

		nopLower(UpperFTOI4(DestXY, 15, 15)),

		nopUpper(LowerSQI(15, 2)),
		nopUpper(LowerSQI(17, 2)),
		nopUpper(LowerIADDIU(3, 3, -1)),
		nopUpper(LowerIBNE(3, 0, CubeLoopStart-40)),

		nopUpper(LowerXGKICK(5)),
	}

	return prog
}
