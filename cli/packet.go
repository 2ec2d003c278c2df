package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vupipe/ee"
	"github.com/sarchlab/vupipe/qword"
	"github.com/sarchlab/vupipe/sim"
	"github.com/sarchlab/vupipe/vif"
	"github.com/sarchlab/vupipe/vu"
)

var packetCmd = &cobra.Command{
	Use:   "packet",
	Short: "Dump the packet of a frame as the packet parser reads it.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		frame, _ := cmd.Flags().GetUint64("frame")
		dumpPacket(cmd.OutOrStdout(), frame)
	},
}

func init() {
	rootCmd.AddCommand(packetCmd)
	packetCmd.Flags().Uint64("frame", 0, "frame whose packet to dump")
}

// dumpPacket feeds the packet of a frame through a packet parser and prints
// every code it decodes and every quadword it unpacks.
func dumpPacket(w io.Writer, frame uint64) {
	qws := ee.MakeBuilder().Build().Encode(frame)

	parser := vif.MakeBuilder().
		WithFIFOCapacity(len(qws)).
		Build("VIF1")

	index := 0
	parser.AcceptHook(sim.HookFunc(func(ctx sim.HookCtx) {
		switch ctx.Pos {
		case vif.HookPosCodeDecoded:
			fmt.Fprintf(w, "%03d  %s\n", index, ctx.Item.(vif.Code))
		case vif.HookPosUnpacked:
			f := ctx.Item.(qword.QW).Floats()
			fmt.Fprintf(w, "%03d    [%03d] %g %g %g %g\n",
				index, ctx.Detail.(int), f[0], f[1], f[2], f[3])
		}
		index++
	}))

	for _, q := range qws {
		parser.FIFO().Push(q)
	}

	parser.Process(new(vu.DataMemory))

	if addr, ok := parser.TakeMicroCall(); ok {
		fmt.Fprintf(w, "micro-program call at %d\n", addr)
	}
}
