package tracing

import (
	"sync"

	"github.com/sarchlab/vupipe/sim"
)

// TimeTracer accumulates the time spent on the tasks a filter accepts. If two
// tasks overlap, both durations are added.
type TimeTracer struct {
	timeTeller    sim.TimeTeller
	filter        TaskFilter
	lock          sync.Mutex
	inflightTasks map[string]Task

	totalTime   sim.VTimeInSec
	longestTime sim.VTimeInSec
	taskCount   uint64
}

// NewTimeTracer creates a new TimeTracer
func NewTimeTracer(
	timeTeller sim.TimeTeller,
	filter TaskFilter,
) *TimeTracer {
	return &TimeTracer{
		timeTeller:    timeTeller,
		filter:        filter,
		inflightTasks: make(map[string]Task),
	}
}

// TotalTime returns the sum of the durations of all finished tasks.
func (t *TimeTracer) TotalTime() sim.VTimeInSec {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.totalTime
}

// AverageTime returns the mean duration of the finished tasks.
func (t *TimeTracer) AverageTime() sim.VTimeInSec {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.taskCount == 0 {
		return 0
	}

	return t.totalTime / sim.VTimeInSec(t.taskCount)
}

// LongestTime returns the duration of the slowest finished task.
func (t *TimeTracer) LongestTime() sim.VTimeInSec {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.longestTime
}

// TaskCount returns the number of finished tasks.
func (t *TimeTracer) TaskCount() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.taskCount
}

// StartTask records the task start time
func (t *TimeTracer) StartTask(task Task) {
	if !t.filter(task) {
		return
	}

	task.StartTime = t.timeTeller.CurrentTime()

	t.lock.Lock()
	t.inflightTasks[task.ID] = task
	t.lock.Unlock()
}

// StepTask does nothing
func (t *TimeTracer) StepTask(_ Task) {
	// Do nothing
}

// EndTask records the end of the task
func (t *TimeTracer) EndTask(task Task) {
	t.lock.Lock()
	defer t.lock.Unlock()

	originalTask, ok := t.inflightTasks[task.ID]
	if !ok {
		return
	}

	d := t.timeTeller.CurrentTime() - originalTask.StartTime
	t.totalTime += d
	t.longestTime = max(t.longestTime, d)
	t.taskCount++

	delete(t.inflightTasks, task.ID)
}
