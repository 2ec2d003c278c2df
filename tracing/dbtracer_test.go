package tracing

import (
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/vupipe/datarecording"
	"github.com/sarchlab/vupipe/sim"
)

var _ = Describe("DBTracer", func() {
	var (
		mockCtrl   *gomock.Controller
		timeTeller *MockTimeTeller
		path       string
		recorder   datarecording.DataRecorder
		t          *DBTracer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		timeTeller = NewMockTimeTeller(mockCtrl)
		path = filepath.Join(GinkgoT().TempDir(), "trace")
		recorder = datarecording.New(path)
		t = NewDBTracer(timeTeller, recorder)
	})

	AfterEach(func() {
		Expect(recorder.Close()).To(Succeed())
		mockCtrl.Finish()
	})

	readBack := func() []taskTableEntry {
		reader, err := datarecording.OpenTable[taskTableEntry](
			path+".sqlite3", TraceTable)
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		entries, err := reader.Read(
			context.Background(),
			datarecording.Page{OrderBy: "StartTime"})
		Expect(err).NotTo(HaveOccurred())

		return entries
	}

	It("should write finished tasks", func() {
		gomock.InOrder(
			timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(1)),
			timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(2)),
		)

		t.StartTask(Task{
			ID: "1", ParentID: "0", Kind: "frame", What: "frame 0",
			Location: "Core",
		})
		t.StepTask(Task{ID: "1", Steps: []TaskStep{{What: "dma"}}})
		t.StepTask(Task{ID: "1", Steps: []TaskStep{{What: "vif"}}})
		t.EndTask(Task{ID: "1"})
		t.Terminate()

		entries := readBack()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ID).To(Equal("1"))
		Expect(entries[0].Kind).To(Equal("frame"))
		Expect(entries[0].Location).To(Equal("Core"))
		Expect(entries[0].StartTime).To(Equal(1.0))
		Expect(entries[0].EndTime).To(Equal(2.0))
		Expect(entries[0].NumSteps).To(Equal(2))
	})

	It("should drop tasks outside the time range", func() {
		t.SetTimeRange(5, 10)

		gomock.InOrder(
			timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(1)),
			timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(2)),
			timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(6)),
			timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(7)),
			timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(11)),
		)

		t.StartTask(Task{ID: "early", Kind: "frame", What: "a", Location: "Core"})
		t.EndTask(Task{ID: "early"})
		t.StartTask(Task{ID: "inside", Kind: "frame", What: "b", Location: "Core"})
		t.EndTask(Task{ID: "inside"})
		t.StartTask(Task{ID: "late", Kind: "frame", What: "c", Location: "Core"})
		t.EndTask(Task{ID: "late"})
		t.Terminate()

		entries := readBack()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ID).To(Equal("inside"))
	})
})
