package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vupipe/vu"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm",
	Short: "Print the cube micro-program.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()

		for i, inst := range vu.CubeProgram() {
			marker := "  "
			if i == vu.CubeLoopStart {
				marker = "L:"
			}

			fmt.Fprintf(w, "%s%03d  %08x %08x  %s\n",
				marker, i, uint32(inst.Upper()), uint32(inst.Lower()),
				vu.Disassemble(inst))
		}
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
