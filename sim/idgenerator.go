package sim

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs
type IDGenerator interface {
	// Generate an ID
	Generate() string
}

var (
	idGeneratorMutex sync.Mutex
	idGenerator      IDGenerator
)

// UseSequentialIDGenerator configures the process-wide ID generator to
// generate deterministic, increasing IDs.
func UseSequentialIDGenerator() {
	setIDGenerator(NewSequentialIDGenerator())
}

// UseParallelIDGenerator configures the process-wide ID generator to generate
// globally unique xid IDs. The IDs are no longer deterministic.
func UseParallelIDGenerator() {
	setIDGenerator(NewParallelIDGenerator())
}

func setIDGenerator(g IDGenerator) {
	idGeneratorMutex.Lock()
	defer idGeneratorMutex.Unlock()

	if idGenerator != nil {
		log.Panic("cannot change id generator type after using it")
	}

	idGenerator = g
}

// GetIDGenerator returns the process-wide ID generator. A sequential
// generator is installed on first use if none was configured.
func GetIDGenerator() IDGenerator {
	idGeneratorMutex.Lock()
	defer idGeneratorMutex.Unlock()

	if idGenerator == nil {
		idGenerator = NewSequentialIDGenerator()
	}

	return idGenerator
}

// NewSequentialIDGenerator creates a generator that yields "1", "2", ...
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewParallelIDGenerator creates a generator backed by xid.
func NewParallelIDGenerator() IDGenerator {
	return parallelIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(idNumber, 10)
}

type parallelIDGenerator struct{}

func (parallelIDGenerator) Generate() string {
	return xid.New().String()
}
