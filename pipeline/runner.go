package pipeline

import (
	"context"
	"image"
	"io"
	"sync"
	"time"

	"github.com/sarchlab/vupipe/sim"
)

// A Runner steps a core in a loop. Another goroutine can pause it, resume it
// or let it advance one frame at a time.
type Runner struct {
	core     *Core
	frames   uint64
	interval time.Duration

	mu      sync.Mutex
	paused  bool
	steps   int
	lastErr error
	wake    chan struct{}
}

// NewRunner creates a runner that stops after frames frames, or never if
// frames is 0. A positive interval paces the frames.
func NewRunner(core *Core, frames uint64, interval time.Duration) *Runner {
	return &Runner{
		core:     core,
		frames:   frames,
		interval: interval,
		wake:     make(chan struct{}, 1),
	}
}

// Core returns the stepped core.
func (r *Runner) Core() *Core {
	return r.core
}

// Run steps frames until the frame budget is spent, a frame fails or ctx is
// done.
func (r *Runner) Run(ctx context.Context) error {
	for r.frames == 0 || r.Telemetry().FrameCount < r.frames {
		if err := r.waitTurn(ctx); err != nil {
			return err
		}

		if err := r.step(); err != nil {
			return err
		}

		if err := r.pace(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) step() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.core.StepFrame()
	r.lastErr = err

	return err
}

func (r *Runner) waitTurn(ctx context.Context) error {
	for {
		r.mu.Lock()
		if !r.paused {
			r.mu.Unlock()
			return ctx.Err()
		}

		if r.steps > 0 {
			r.steps--
			r.mu.Unlock()

			return ctx.Err()
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.wake:
		}
	}
}

func (r *Runner) pace(ctx context.Context) error {
	if r.interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Runner) signal() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Pause stops the loop before the next frame.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paused = true
	r.steps = 0
}

// Continue resumes a paused loop.
func (r *Runner) Continue() {
	r.mu.Lock()
	r.paused = false
	r.mu.Unlock()

	r.signal()
}

// StepOnce lets a paused loop run one more frame.
func (r *Runner) StepOnce() {
	r.mu.Lock()
	r.steps++
	r.mu.Unlock()

	r.signal()
}

// Paused reports whether the loop is paused.
func (r *Runner) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.paused
}

// Telemetry returns the counters after the last finished frame.
func (r *Runner) Telemetry() Telemetry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.core.Telemetry()
}

// LastError returns the error of the last frame, if any.
func (r *Runner) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lastErr
}

// CurrentTime returns the emulated time after the last finished frame.
func (r *Runner) CurrentTime() sim.VTimeInSec {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.core.CurrentTime()
}

// Inspect calls f between frames. f may read the state of the core but must
// not call back into the runner.
func (r *Runner) Inspect(f func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f()
}

// Snapshot copies the framebuffer, scaled by an integer factor.
func (r *Runner) Snapshot(scale int) *image.NRGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.core.Framebuffer().Snapshot(scale)
}

// WritePNG encodes the framebuffer, scaled by an integer factor.
func (r *Runner) WritePNG(w io.Writer, scale int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.core.Framebuffer().WritePNG(w, scale)
}
