// Package profiler tracks per-operation timings and runtime memory while a
// blur workload runs, and reports them periodically through slog.
package profiler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"
)

// MetricsCollector defines the interface for collecting custom metrics.
type MetricsCollector interface {
	CollectMetrics() map[string]float64
}

// Options configures the profiler.
type Options struct {
	// ReportInterval specifies how often to emit status reports (default: 2s)
	ReportInterval time.Duration
	// SampleInterval specifies how often to collect samples (default: 100ms)
	SampleInterval time.Duration
	// MaxSamples bounds the window each tracker keeps (default: 600)
	MaxSamples int
	// Logger receives the reports. Nil uses slog.Default().
	Logger *slog.Logger
}

// Profiler collects operation timings, custom metrics and memory samples.
// It is safe for concurrent use.
type Profiler struct {
	reportInterval time.Duration
	sampleInterval time.Duration
	maxSamples     int
	log            *slog.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	startTime time.Time
	running   bool

	memStats   runtime.MemStats
	lastGC     uint32
	metrics    map[string]*window[float64]
	operations map[string]*window[time.Duration]
	collectors []MetricsCollector
}

// window keeps the most recent samples of one series plus lifetime extremes.
type window[T float64 | time.Duration] struct {
	values []T
	sum    T
	min    T
	max    T
	count  int64
}

func (w *window[T]) add(v T, limit int) {
	if w.count == 0 || v < w.min {
		w.min = v
	}
	if w.count == 0 || v > w.max {
		w.max = v
	}
	w.values = append(w.values, v)
	w.sum += v
	if len(w.values) > limit {
		w.sum -= w.values[0]
		w.values = w.values[1:]
	}
	w.count++
}

func (w *window[T]) mean() T {
	if len(w.values) == 0 {
		return 0
	}
	return w.sum / T(len(w.values))
}

// New creates a profiler with the specified options.
//
// Arguments:
// - opts: Configuration options for the profiler
//
// Returns:
// - A configured Profiler instance
func New(opts Options) *Profiler {
	if opts.ReportInterval == 0 {
		opts.ReportInterval = 2 * time.Second
	}
	if opts.SampleInterval == 0 {
		opts.SampleInterval = 100 * time.Millisecond
	}
	if opts.MaxSamples == 0 {
		opts.MaxSamples = 600
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Profiler{
		reportInterval: opts.ReportInterval,
		sampleInterval: opts.SampleInterval,
		maxSamples:     opts.MaxSamples,
		log:            opts.Logger,
		startTime:      time.Now(),
		metrics:        make(map[string]*window[float64]),
		operations:     make(map[string]*window[time.Duration]),
	}
}

// Start begins sampling and periodic reporting until ctx is done or Stop is
// called. Calling Start on a running profiler does nothing.
func (p *Profiler) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.startTime = time.Now()

	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(2)
	go p.loop(ctx, p.sampleInterval, p.sample)
	go p.loop(ctx, p.reportInterval, p.Report)
}

func (p *Profiler) loop(ctx context.Context, every time.Duration, fn func()) {
	defer p.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

// Stop halts the background goroutines and waits for them to exit.
func (p *Profiler) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	p.mu.Unlock()

	cancel()
	p.wg.Wait()
}

// AddMetricsCollector registers a collector polled on every sample.
func (p *Profiler) AddMetricsCollector(collector MetricsCollector) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.collectors = append(p.collectors, collector)
}

// RecordMetric records a custom metric value, e.g. megapixels per frame.
func (p *Profiler) RecordMetric(name string, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recordMetricLocked(name, value)
}

func (p *Profiler) recordMetricLocked(name string, value float64) {
	w, ok := p.metrics[name]
	if !ok {
		w = &window[float64]{}
		p.metrics[name] = w
	}
	w.add(value, p.maxSamples)
}

// StartOperation begins timing an operation and returns the function that
// ends it.
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.RecordDuration(name, time.Since(start))
	}
}

// RecordDuration records one completed operation.
func (p *Profiler) RecordDuration(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.operations[name]
	if !ok {
		w = &window[time.Duration]{}
		p.operations[name] = w
	}
	w.add(d, p.maxSamples)
}

func (p *Profiler) sample() {
	p.mu.Lock()
	defer p.mu.Unlock()

	runtime.ReadMemStats(&p.memStats)
	for _, c := range p.collectors {
		for name, value := range c.CollectMetrics() {
			p.recordMetricLocked(name, value)
		}
	}
}

// Summary describes one metric or operation series.
type Summary struct {
	Name  string
	Mean  float64
	Min   float64
	Max   float64
	Count int64
}

// TimingSummary describes one operation series.
type TimingSummary struct {
	Name  string
	Mean  time.Duration
	Min   time.Duration
	Max   time.Duration
	Count int64
}

// Stats is a point-in-time snapshot.
type Stats struct {
	Uptime     time.Duration
	Goroutines int
	HeapAlloc  uint64
	TotalAlloc uint64
	NumGC      uint32
	Metrics    []Summary
	Operations []TimingSummary
}

// Snapshot returns the current statistics, sorted by name.
func (p *Profiler) Snapshot() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		Uptime:     time.Since(p.startTime),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  p.memStats.HeapAlloc,
		TotalAlloc: p.memStats.TotalAlloc,
		NumGC:      p.memStats.NumGC,
	}
	for name, w := range p.metrics {
		s.Metrics = append(s.Metrics, Summary{Name: name, Mean: w.mean(), Min: w.min, Max: w.max, Count: w.count})
	}
	for name, w := range p.operations {
		s.Operations = append(s.Operations, TimingSummary{Name: name, Mean: w.mean(), Min: w.min, Max: w.max, Count: w.count})
	}
	sort.Slice(s.Metrics, func(i, j int) bool { return s.Metrics[i].Name < s.Metrics[j].Name })
	sort.Slice(s.Operations, func(i, j int) bool { return s.Operations[i].Name < s.Operations[j].Name })
	return s
}

// Report logs the current snapshot at info level.
func (p *Profiler) Report() {
	s := p.Snapshot()

	p.mu.Lock()
	newGC := s.NumGC - p.lastGC
	p.lastGC = s.NumGC
	p.mu.Unlock()

	p.log.Info("profiler: status",
		slog.Duration("uptime", s.Uptime.Truncate(time.Millisecond)),
		slog.Int("goroutines", s.Goroutines),
		slog.String("heap_alloc", formatBytes(s.HeapAlloc)),
		slog.String("total_alloc", formatBytes(s.TotalAlloc)),
		slog.Uint64("gc_new", uint64(newGC)),
	)
	for _, m := range s.Metrics {
		p.log.Info("profiler: metric",
			slog.String("name", m.Name),
			slog.Float64("avg", m.Mean),
			slog.Float64("min", m.Min),
			slog.Float64("max", m.Max),
			slog.Int64("count", m.Count),
		)
	}
	for _, o := range s.Operations {
		p.log.Info("profiler: operation",
			slog.String("name", o.Name),
			slog.Duration("avg", o.Mean.Truncate(time.Microsecond)),
			slog.Duration("min", o.Min.Truncate(time.Microsecond)),
			slog.Duration("max", o.Max.Truncate(time.Microsecond)),
			slog.Int64("count", o.Count),
		)
	}
}

// formatBytes formats byte counts in human-readable format.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
