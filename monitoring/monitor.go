// Package monitoring serves a running session over HTTP so that it can be
// paused, stepped and inspected from outside the process.
package monitoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"reflect"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unsafe"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/vupipe/pipeline"
	"github.com/sarchlab/vupipe/sim"
)

// A Session is a frame loop the monitor controls.
type Session interface {
	sim.TimeTeller

	Pause()
	Continue()
	StepOnce()
	Paused() bool
	Telemetry() pipeline.Telemetry
	WritePNG(w io.Writer, scale int) error

	// Inspect calls f while no frame is in progress.
	Inspect(f func())
}

type bufferStatus interface {
	Name() string
	Size() int
	Capacity() int
}

// Monitor can turn a session into a server and allows external monitoring
// and controlling of the session.
type Monitor struct {
	session     Session
	components  []sim.Component
	buffers     []bufferStatus
	portNumber  int
	openBrowser bool
	router      *mux.Router

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser opens the framebuffer page in a browser once the server is up.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterSession registers the frame loop to control.
func (m *Monitor) RegisterSession(s Session) {
	m.session = s
}

// RegisterComponent register a component to be monitored.
func (m *Monitor) RegisterComponent(c sim.Component) {
	m.components = append(m.components, c)

	m.registerBuffers(c)
}

var bufferStatusType = reflect.TypeOf((*bufferStatus)(nil)).Elem()

func (m *Monitor) registerBuffers(c any) {
	v := reflect.ValueOf(c).Elem()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		if field.Kind() != reflect.Interface ||
			!field.Type().Implements(bufferStatusType) {
			continue
		}

		fieldRef := reflect.NewAt(
			field.Type(),
			unsafe.Pointer(field.UnsafeAddr()),
		).Elem().Interface()

		if b, ok := fieldRef.(bufferStatus); ok {
			m.buffers = append(m.buffers, b)
		}
	}
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        sim.GetIDGenerator().Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Handler returns the router of the monitor API.
func (m *Monitor) Handler() http.Handler {
	if m.router != nil {
		return m.router
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/pause", m.pause)
	r.HandleFunc("/api/continue", m.continueSession)
	r.HandleFunc("/api/step", m.step)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/telemetry", m.telemetry)
	r.HandleFunc("/api/framebuffer.png", m.framebuffer)
	r.HandleFunc("/api/list_components", m.listComponents)
	r.HandleFunc("/api/component/{name}", m.listComponentDetails)
	r.HandleFunc("/api/field/{json}", m.listFieldValue)
	r.HandleFunc("/api/buffers", m.listBuffers)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	m.router = r

	return r
}

// StartServer starts the monitor as a web server and returns its address.
func (m *Monitor) StartServer() string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring session with %s\n", url)

	handler := m.Handler()

	go func() {
		err := http.Serve(listener, handler)
		dieOnErr(err)
	}()

	if m.openBrowser {
		err = browser.OpenURL(url + "/api/framebuffer.png")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
		}
	}

	return url
}

func (m *Monitor) pause(w http.ResponseWriter, _ *http.Request) {
	m.session.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueSession(w http.ResponseWriter, _ *http.Request) {
	m.session.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) step(w http.ResponseWriter, _ *http.Request) {
	if !m.session.Paused() {
		w.WriteHeader(http.StatusConflict)
		_, err := w.Write([]byte("Session is not paused"))
		dieOnErr(err)

		return
	}

	m.session.StepOnce()
	_, err := w.Write(nil)
	dieOnErr(err)
}

// inspect runs f between frames of the session.
func (m *Monitor) inspect(f func()) {
	if m.session == nil {
		f()
		return
	}

	m.session.Inspect(f)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	var now sim.VTimeInSec
	if m.session != nil {
		now = m.session.CurrentTime()
	}

	fmt.Fprintf(w, "{\"now\":%.10f}", now)
}

type telemetryRsp struct {
	pipeline.Telemetry
	Paused bool `json:"paused"`
}

func (m *Monitor) telemetry(w http.ResponseWriter, _ *http.Request) {
	rsp := telemetryRsp{
		Telemetry: m.session.Telemetry(),
		Paused:    m.session.Paused(),
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) framebuffer(w http.ResponseWriter, r *http.Request) {
	scale := 1

	if s := r.URL.Query().Get("scale"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 8 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Error: invalid scale %q", s)

			return
		}

		scale = n
	}

	buf := new(bytes.Buffer)
	err := m.session.WritePNG(buf, scale)
	dieOnErr(err)

	w.Header().Set("Content-Type", "image/png")
	_, err = w.Write(buf.Bytes())
	dieOnErr(err)
}

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, c := range m.components {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "\"%s\"", c.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listComponentDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	component := m.findComponentOr404(w, name)
	if component == nil {
		return
	}

	buf := new(bytes.Buffer)
	m.inspect(func() {
		serializer := goseth.NewSerializer()
		serializer.SetRoot(component)
		serializer.SetMaxDepth(1)
		dieOnErr(serializer.Serialize(buf))
	})

	_, err := w.Write(buf.Bytes())
	dieOnErr(err)
}

type fieldReq struct {
	CompName  string `json:"comp_name,omitempty"`
	FieldName string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	jsonString := mux.Vars(r)["json"]
	req := fieldReq{}

	err := json.Unmarshal([]byte(jsonString), &req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	fields := strings.Split(req.FieldName, ".")

	component := m.findComponentOr404(w, req.CompName)
	if component == nil {
		return
	}

	buf := new(bytes.Buffer)
	m.inspect(func() {
		serializer := goseth.NewSerializer()
		serializer.SetRoot(component)
		serializer.SetMaxDepth(1)

		err = serializer.SetEntryPoint(fields)
		if err != nil {
			return
		}

		dieOnErr(serializer.Serialize(buf))
	})

	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	_, err = w.Write(buf.Bytes())
	dieOnErr(err)
}

func (m *Monitor) listBuffers(w http.ResponseWriter, r *http.Request) {
	sortMethod, limit, offset, err := m.buffersParseParams(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	buf := new(bytes.Buffer)
	m.inspect(func() {
		sortedBuffers := m.sortAndSelectBuffers(sortMethod, limit, offset)

		fmt.Fprintf(buf, "[")
		for i, b := range sortedBuffers {
			if i > 0 {
				fmt.Fprint(buf, ",")
			}

			fmt.Fprintf(buf, "{\"buffer\":\"%s\",\"level\":%d,\"cap\":%d}",
				b.Name(), b.Size(), b.Capacity())
		}
		fmt.Fprint(buf, "]")
	})

	_, err = w.Write(buf.Bytes())
	dieOnErr(err)
}

func (*Monitor) buffersParseParams(
	r *http.Request,
) (sort string, limit, offset int, err error) {
	sortMethod := r.URL.Query().Get("sort")
	if sortMethod == "" {
		sortMethod = "percent"
	}

	if sortMethod != "level" && sortMethod != "percent" {
		errStr := fmt.Sprintf(
			"Invalid sort method: %s. Allowed values are `level` and `percent`",
			sortMethod)
		return "", 0, 0, errors.New(errStr)
	}

	limit, err = intParam(r, "limit")
	if err != nil {
		return sortMethod, 0, 0, err
	}

	offset, err = intParam(r, "offset")
	if err != nil {
		return sortMethod, limit, 0, err
	}

	return sortMethod, limit, offset, nil
}

func intParam(r *http.Request, name string) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}

	return n, nil
}

func bufferPercent(b bufferStatus) float64 {
	return float64(b.Size()) / float64(b.Capacity())
}

// sortAndSelectBuffers returns the buffers in [offset, offset+limit) of the
// sorted list. A zero limit selects every buffer after offset.
func (m *Monitor) sortAndSelectBuffers(
	sortMethod string,
	limit, offset int,
) []bufferStatus {
	sortedBuffers := make([]bufferStatus, len(m.buffers))
	copy(sortedBuffers, m.buffers)

	byLevel := func(i, j int) bool {
		sizeI := sortedBuffers[i].Size()
		sizeJ := sortedBuffers[j].Size()

		if sizeI != sizeJ {
			return sizeI > sizeJ
		}

		return bufferPercent(sortedBuffers[i]) > bufferPercent(sortedBuffers[j])
	}

	byPercent := func(i, j int) bool {
		percentI := bufferPercent(sortedBuffers[i])
		percentJ := bufferPercent(sortedBuffers[j])

		if percentI != percentJ {
			return percentI > percentJ
		}

		return sortedBuffers[i].Size() > sortedBuffers[j].Size()
	}

	switch sortMethod {
	case "level":
		sort.SliceStable(sortedBuffers, byLevel)
	case "percent":
		sort.SliceStable(sortedBuffers, byPercent)
	default:
		panic("Invalid sort method " + sortMethod)
	}

	offset = min(offset, len(sortedBuffers))
	end := len(sortedBuffers)

	if limit > 0 {
		end = min(offset+limit, end)
	}

	return sortedBuffers[offset:end]
}

func (m *Monitor) findComponentOr404(
	w http.ResponseWriter,
	name string,
) sim.Component {
	var component sim.Component
	for _, c := range m.components {
		if c.Name() == name {
			component = c
		}
	}

	if component == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Component not found"))
		dieOnErr(err)
	}

	return component
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bars := make([]json.RawMessage, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		b.Lock()
		data, err := json.Marshal(b)
		b.Unlock()
		dieOnErr(err)

		bars = append(bars, data)
	}
	m.progressBarsLock.Unlock()

	bytes, err := json.Marshal(bars)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
