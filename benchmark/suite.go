package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/nvr-ai/go-blur/images"
	"github.com/nvr-ai/go-blur/images/kernels"
	"github.com/nvr-ai/go-blur/util"
)

// Suite manages and executes benchmark scenarios
type Suite struct {
	scenarios []Scenario
	engines   map[EngineType]Engine
	outputDir string
	corpus    []image.Image
	out       io.Writer
	mu        sync.RWMutex
	results   []PerformanceMetrics
}

// NewSuiteArgs represents the arguments for creating a new benchmark suite.
type NewSuiteArgs struct {
	// Engines run the scenarios whose Engine field matches their Type.
	// When empty a BoxEngine is used.
	Engines    []Engine  `json:"-"`
	OutputPath string    `json:"outputPath" yaml:"outputPath"`
	Out        io.Writer `json:"-"`
}

// NewSuite creates a new benchmark suite.
//
// Arguments:
//   - args: The arguments for creating a new benchmark suite.
//
// Returns:
//   - *Suite: The benchmark suite.
func NewSuite(args NewSuiteArgs) *Suite {
	engines := make(map[EngineType]Engine)
	for _, e := range args.Engines {
		engines[e.Type()] = e
	}
	if len(engines) == 0 {
		engines[EngineBox] = NewBoxEngine()
	}
	out := args.Out
	if out == nil {
		out = os.Stdout
	}

	return &Suite{
		engines:   engines,
		outputDir: args.OutputPath,
		out:       out,
		scenarios: make([]Scenario, 0),
		results:   make([]PerformanceMetrics, 0),
	}
}

// AddScenario adds a test scenario to the benchmark suite
func (bs *Suite) AddScenario(scenario Scenario) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.scenarios = append(bs.scenarios, scenario)
}

// AddScenarioSet adds every scenario of set.
func (bs *Suite) AddScenarioSet(set *ScenarioSet) {
	for _, s := range set.Scenarios {
		bs.AddScenario(s)
	}
}

// LoadCorpus loads source images from a file or a directory. Scenarios
// resize corpus images to their resolution; without a corpus they run on
// synthetic frames.
func (bs *Suite) LoadCorpus(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat image path: %w", err)
	}

	var files []util.ImageFile
	if info.IsDir() {
		if files, err = util.LoadDirectoryImageFiles(path); err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read image file: %w", err)
		}
		files = []util.ImageFile{{Path: path, Data: data}}
	}

	corpus := make([]image.Image, 0, len(files))
	for _, f := range files {
		img, _, err := images.Decode(f.Data)
		if err != nil {
			continue
		}
		corpus = append(corpus, img)
	}
	if len(corpus) == 0 {
		return fmt.Errorf("no valid images found in %s", path)
	}

	bs.mu.Lock()
	bs.corpus = corpus
	bs.mu.Unlock()
	return nil
}

// frames prepares the source frames for a scenario.
func (bs *Suite) frames(res Resolution) ([]*kernels.PixelBuffer, error) {
	bs.mu.RLock()
	corpus := bs.corpus
	bs.mu.RUnlock()

	if len(corpus) == 0 {
		return []*kernels.PixelBuffer{SyntheticFrame(res.Width, res.Height, 1)}, nil
	}
	out := make([]*kernels.PixelBuffer, 0, len(corpus))
	for _, img := range corpus {
		resized, err := images.Resize(img, res.Width, res.Height)
		if err != nil {
			return nil, err
		}
		out = append(out, images.ToPixelBuffer(resized))
	}
	return out, nil
}

// SyntheticFrame builds a deterministic camera-like frame: a horizontal
// gradient with per-pixel noise, a few hard edges and opaque alpha.
func SyntheticFrame(width, height int, seed int64) *kernels.PixelBuffer {
	rng := rand.New(rand.NewSource(seed))
	buf := &kernels.PixelBuffer{Width: width, Height: height, Pix: make([]byte, kernels.Channels*width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := 60 + (x*140)/max(width, 1)
			if width >= 8 && x%(width/4+1) == 0 {
				base = 250
			}
			n := rng.Intn(21) - 10
			buf.Set(x, y, [4]uint8{
				uint8(min(max(base+n, 0), 255)),
				uint8(min(max(base+n/2, 0), 255)),
				uint8(min(max(base-n, 0), 255)),
				255,
			})
		}
	}
	return buf
}

// RunScenario executes a single benchmark scenario. Cancellation is
// checked between iterations.
func (bs *Suite) RunScenario(ctx context.Context, scenario Scenario) (*PerformanceMetrics, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	opt, err := scenario.Options()
	if err != nil {
		return nil, err
	}
	engineType := scenario.Engine
	if engineType == "" {
		engineType = EngineBox
	}
	engine, ok := bs.engines[engineType]
	if !ok {
		return nil, fmt.Errorf("scenario %s: no %q engine configured", scenario.Name, engineType)
	}

	sources, err := bs.frames(scenario.Resolution)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: failed to prepare frames: %w", scenario.Name, err)
	}
	frame := sources[0].Clone()
	recycler, _ := engine.(interface {
		Recycle(frame, out *kernels.PixelBuffer)
	})

	run := func(i int) (*kernels.PixelBuffer, time.Duration, error) {
		copy(frame.Pix, sources[i%len(sources)].Pix)
		start := time.Now()
		out, err := engine.Blur(ctx, frame, opt)
		return out, time.Since(start), err
	}

	metrics := &PerformanceMetrics{
		Scenario:  scenario,
		Timestamp: time.Now(),
	}

	// Warmup runs
	for i := 0; i < scenario.WarmupRuns; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if out, _, err := run(i); err == nil && recycler != nil {
			recycler.Recycle(frame, out)
		}
	}

	// Capture initial memory stats
	var startMem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&startMem)

	var stats durationStats
	errors := 0
	for i := 0; i < scenario.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, took, err := run(i)
		if err != nil {
			errors++
			continue
		}
		stats.add(took)
		if i == scenario.Iterations-1 {
			metrics.Checksum = images.Checksum(out)
		}
		if recycler != nil {
			recycler.Recycle(frame, out)
		}
	}

	// Capture final memory stats
	var endMem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&endMem)

	metrics.TotalDuration = stats.total
	metrics.MeanDuration = stats.mean()
	metrics.MinDuration = stats.min
	metrics.MaxDuration = stats.max
	if secs := stats.total.Seconds(); secs > 0 {
		metrics.FramesPerSecond = float64(stats.count) / secs
		metrics.MegapixelsPerSecond = metrics.FramesPerSecond * scenario.Resolution.Megapixels()
	}
	metrics.ErrorRate = float64(errors) / float64(scenario.Iterations)

	metrics.MemoryStats = MemoryMetrics{
		AllocBytes:      endMem.Alloc,
		TotalAllocBytes: endMem.TotalAlloc - startMem.TotalAlloc,
		SysBytes:        endMem.Sys,
		NumGC:           endMem.NumGC - startMem.NumGC,
		HeapAllocBytes:  endMem.HeapAlloc,
		HeapSysBytes:    endMem.HeapSys,
	}
	metrics.MemoryStats.AllocBytesPerFrame = float64(metrics.MemoryStats.TotalAllocBytes) / float64(scenario.Iterations)

	metrics.CPUStats = CPUMetrics{
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}

	return metrics, nil
}

// RunAllScenarios executes all configured benchmark scenarios and saves
// the results. It stops at the first cancellation.
func (bs *Suite) RunAllScenarios(ctx context.Context) error {
	bs.mu.Lock()
	scenarios := make([]Scenario, len(bs.scenarios))
	copy(scenarios, bs.scenarios)
	bs.mu.Unlock()

	for _, scenario := range scenarios {
		metrics, err := bs.RunScenario(ctx, scenario)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(bs.out, "Scenario %s failed: %v\n", scenario.Name, err)
			continue
		}

		bs.mu.Lock()
		bs.results = append(bs.results, *metrics)
		bs.mu.Unlock()

		fmt.Fprintf(bs.out, "Scenario %s completed: %.2f FPS, %.1f MP/s\n",
			scenario.Name, metrics.FramesPerSecond, metrics.MegapixelsPerSecond)
	}

	return bs.SaveResults()
}

// SaveResults persists benchmark results to filesystem
func (bs *Suite) SaveResults() error {
	results := bs.GetResults()

	// Ensure output directory exists
	if err := os.MkdirAll(bs.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Save detailed results as JSON
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	resultsFile := filepath.Join(bs.outputDir, fmt.Sprintf("benchmark_results_%s.json", timestamp))

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(resultsFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	// Save summary CSV
	summaryFile := filepath.Join(bs.outputDir, fmt.Sprintf("benchmark_summary_%s.csv", timestamp))
	if err := bs.saveSummaryCSV(summaryFile, results); err != nil {
		return fmt.Errorf("failed to save summary CSV: %w", err)
	}

	fmt.Fprintf(bs.out, "Results saved to: %s\n", resultsFile)
	fmt.Fprintf(bs.out, "Summary saved to: %s\n", summaryFile)

	return nil
}

func (bs *Suite) saveSummaryCSV(filename string, results []PerformanceMetrics) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write CSV header
	header := "Scenario,Engine,Resolution,Radius,Edge,Method,Channels,Parallel,FPS,MP_per_s,Mean_ms,Min_ms,Max_ms,Alloc_KB_per_frame,Error_Rate,Checksum\n"
	if _, err := file.WriteString(header); err != nil {
		return err
	}

	ms := func(d time.Duration) float64 { return float64(d.Nanoseconds()) / 1e6 }
	for _, result := range results {
		s := result.Scenario
		line := fmt.Sprintf("%s,%s,%s,%g,%s,%s,%s,%t,%.2f,%.2f,%.3f,%.3f,%.3f,%.1f,%.4f,%s\n",
			s.Name,
			s.Engine,
			s.Resolution.Name,
			s.Blur.Radius,
			s.Blur.Edge,
			s.Blur.Method,
			s.Blur.Channels,
			s.Blur.Parallel,
			result.FramesPerSecond,
			result.MegapixelsPerSecond,
			ms(result.MeanDuration),
			ms(result.MinDuration),
			ms(result.MaxDuration),
			result.MemoryStats.AllocBytesPerFrame/1024,
			result.ErrorRate,
			result.Checksum,
		)
		if _, err := file.WriteString(line); err != nil {
			return err
		}
	}

	return nil
}

// GetResults returns all benchmark results
func (bs *Suite) GetResults() []PerformanceMetrics {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	results := make([]PerformanceMetrics, len(bs.results))
	copy(results, bs.results)
	return results
}

// Close releases every engine.
func (bs *Suite) Close() error {
	var first error
	for _, e := range bs.engines {
		if err := e.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
