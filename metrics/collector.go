package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// RunMetric summarizes one encoding, generation or validation pass.
type RunMetric struct {
	Transcripts int
	Encoded     int
	Failed      int
	Samples     int
	Skipped     int
	Valid       int
	Invalid     int
	Labels      map[string]int
	StartTime   time.Time
	Duration    time.Duration
}

type Collector interface {
	Start()
	AddTranscript()
	AddEncoded()
	AddFailure()
	AddSample()
	AddSkipped()
	AddValid()
	AddInvalid()
	AddLabel(class string)
	Complete() RunMetric
}

type collector struct {
	startTime   time.Time
	transcripts atomic.Int32
	encoded     atomic.Int32
	failed      atomic.Int32
	samples     atomic.Int32
	skipped     atomic.Int32
	valid       atomic.Int32
	invalid     atomic.Int32

	mu     sync.Mutex
	labels map[string]int
}

func NewCollector() Collector {
	return &collector{startTime: time.Now(), labels: map[string]int{}}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddTranscript() { m.transcripts.Add(1) }
func (m *collector) AddEncoded()    { m.encoded.Add(1) }
func (m *collector) AddFailure()    { m.failed.Add(1) }
func (m *collector) AddSample()     { m.samples.Add(1) }
func (m *collector) AddSkipped()    { m.skipped.Add(1) }
func (m *collector) AddValid()      { m.valid.Add(1) }
func (m *collector) AddInvalid()    { m.invalid.Add(1) }

func (m *collector) AddLabel(class string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels[class]++
}

func (m *collector) Complete() RunMetric {
	m.mu.Lock()
	labels := make(map[string]int, len(m.labels))
	for k, v := range m.labels {
		labels[k] = v
	}
	m.mu.Unlock()

	return RunMetric{
		Transcripts: int(m.transcripts.Load()),
		Encoded:     int(m.encoded.Load()),
		Failed:      int(m.failed.Load()),
		Samples:     int(m.samples.Load()),
		Skipped:     int(m.skipped.Load()),
		Valid:       int(m.valid.Load()),
		Invalid:     int(m.invalid.Load()),
		Labels:      labels,
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                {}
func (m *dummyCollector) AddTranscript()        {}
func (m *dummyCollector) AddEncoded()           {}
func (m *dummyCollector) AddFailure()           {}
func (m *dummyCollector) AddSample()            {}
func (m *dummyCollector) AddSkipped()           {}
func (m *dummyCollector) AddValid()             {}
func (m *dummyCollector) AddInvalid()           {}
func (m *dummyCollector) AddLabel(class string) {}
func (m *dummyCollector) Complete() RunMetric   { return RunMetric{Labels: map[string]int{}} }
