package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vupipe/datarecording"
	"github.com/sarchlab/vupipe/pipeline"
)

var reportCmd = &cobra.Command{
	Use:   "report <recording.sqlite3>",
	Short: "Print the frame telemetry of a recording.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printReport(cmd, args[0], limit)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Int("limit", 0, "print at most this many frames")
}

func printReport(cmd *cobra.Command, path string, limit int) error {
	ctx := context.Background()

	reader, err := datarecording.OpenTable[pipeline.Telemetry](
		path, pipeline.TelemetryTable)
	if err != nil {
		return err
	}
	defer reader.Close()

	total, err := reader.Count(ctx)
	if err != nil {
		return err
	}

	frames, err := reader.Read(ctx, datarecording.Page{
		OrderBy: "FrameCount",
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%8s %14s %10s %10s %9s %5s\n",
		"frame", "emulated", "matops", "vucycles", "triangles", "kick")

	for _, t := range frames {
		fmt.Fprintf(w, "%8d %14d %10d %10d %9d %5d\n",
			t.FrameCount, t.EmulatedCycles, t.VU1MatOps, t.VUCycles,
			t.Triangles, t.KickBase)
	}

	fmt.Fprintf(w, "%d of %d frames\n", len(frames), total)

	return nil
}
