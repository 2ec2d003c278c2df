package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vupipe/datarecording"
	"github.com/sarchlab/vupipe/monitoring"
	"github.com/sarchlab/vupipe/pipeline"
	"github.com/sarchlab/vupipe/tracing"
)

type runOptions struct {
	frames      uint64
	fps         float64
	maxCycles   uint64
	monitor     bool
	port        int
	open        bool
	startPaused bool
	record      string
	trace       bool
	snapshot    string
	scale       int
	stats       bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the rotating cube through the pipeline.",
	Long: "`run` steps frames through the pipeline and prints the final " +
		"telemetry as JSON. Every flag can also be set through a VUPIPE_* " +
		"environment variable or a .env file, e.g. VUPIPE_MAX_CYCLES.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPipeline(cmd, runOpts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.Uint64Var(&runOpts.frames, "frames", 60,
		"number of frames to run, 0 runs until interrupted")
	f.Float64Var(&runOpts.fps, "fps", 0,
		"pace the frames at this rate, 0 runs unpaced")
	f.Uint64Var(&runOpts.maxCycles, "max-cycles", 100000,
		"cycle cap of one micro-program run")
	f.BoolVar(&runOpts.monitor, "monitor", false,
		"serve the HTTP monitor while running")
	f.IntVar(&runOpts.port, "port", 0,
		"port of the monitor, 0 picks a free port")
	f.BoolVar(&runOpts.open, "open", false,
		"open the monitor in a browser")
	f.BoolVar(&runOpts.startPaused, "start-paused", false,
		"wait for the monitor before the first frame")
	f.StringVar(&runOpts.record, "record", "",
		"record frame telemetry into <path>.sqlite3")
	f.BoolVar(&runOpts.trace, "trace", false,
		"also record frame and micro-program tasks")
	f.StringVar(&runOpts.snapshot, "snapshot", "",
		"write the last frame as PNG to this file")
	f.IntVar(&runOpts.scale, "scale", 1, "snapshot scale factor")
	f.BoolVar(&runOpts.stats, "stats", false,
		"print the micro-program opcode histogram")
}

func (o runOptions) validate() error {
	if o.scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", o.scale)
	}

	if o.fps < 0 {
		return fmt.Errorf("fps must not be negative, got %g", o.fps)
	}

	if o.startPaused && !o.monitor {
		return errors.New("start-paused needs the monitor")
	}

	if o.maxCycles == 0 {
		return errors.New("max-cycles must be positive")
	}

	return nil
}

func (o runOptions) interval() time.Duration {
	if o.fps == 0 {
		return 0
	}

	return time.Duration(float64(time.Second) / o.fps)
}

func runPipeline(cmd *cobra.Command, o runOptions) error {
	if err := o.validate(); err != nil {
		return err
	}

	builder := pipeline.MakeBuilder().WithMaxVUCycles(o.maxCycles)

	var recorder datarecording.DataRecorder
	if o.record != "" || o.trace {
		recorder = datarecording.New(o.record)
		defer recorder.Close()

		builder = builder.WithDataRecorder(recorder)
	}

	core := builder.Build("Core")

	if o.trace {
		tracer := tracing.NewDBTracer(core, recorder)
		tracing.CollectTrace(core, tracer)
		tracing.CollectTrace(core.VU(), tracer)
	}

	ops := tracing.NewStepCountTracer(tracing.KindIs("vu_program"))
	if o.stats {
		tracing.CollectTrace(core.VU(), ops)
	}

	runner := pipeline.NewRunner(core, o.frames, o.interval())

	if o.monitor {
		bar := startMonitor(core, runner, o)
		defer bar.complete()
	}

	if o.startPaused {
		runner.Pause()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if o.snapshot != "" {
		if err := writeSnapshot(runner, o.snapshot, o.scale); err != nil {
			return err
		}
	}

	if o.stats {
		printStats(cmd, ops)
	}

	out, err := json.Marshal(runner.Telemetry())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

type monitoredBar struct {
	m   *monitoring.Monitor
	bar *monitoring.ProgressBar
}

func (b monitoredBar) complete() {
	b.m.CompleteProgressBar(b.bar)
}

func startMonitor(
	core *pipeline.Core,
	runner *pipeline.Runner,
	o runOptions,
) monitoredBar {
	m := monitoring.NewMonitor()
	if o.port != 0 {
		m.WithPortNumber(o.port)
	}

	if o.open {
		m.WithBrowser()
	}

	m.RegisterSession(runner)

	for _, c := range core.Components() {
		m.RegisterComponent(c)
	}

	bar := m.CreateProgressBar("Frames", o.frames)
	core.AcceptHook(bar)

	m.StartServer()

	return monitoredBar{m: m, bar: bar}
}

func writeSnapshot(runner *pipeline.Runner, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	err = runner.WritePNG(f, scale)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func printStats(cmd *cobra.Command, ops *tracing.StepCountTracer) {
	w := cmd.ErrOrStderr()

	fmt.Fprintf(w, "%-10s %10s\n", "op", "count")
	for _, name := range ops.GetStepNames() {
		fmt.Fprintf(w, "%-10s %10d\n", name, ops.GetStepCount(name))
	}
}
