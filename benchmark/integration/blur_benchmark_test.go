package integration

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-blur/benchmark"
	"github.com/nvr-ai/go-blur/benchmark/engines"
)

// corpusEnv points at a directory of frames; synthetic frames are used when unset.
const corpusEnv = "BLUR_BENCH_CORPUS"

func newSuite(tb testing.TB) *benchmark.Suite {
	suite := benchmark.NewSuite(benchmark.NewSuiteArgs{
		Engines: []benchmark.Engine{
			benchmark.NewBoxEngine(),
			engines.NewOpenCVEngine(),
			engines.NewBildEngine(),
			engines.NewImagingEngine(),
		},
		OutputPath: tb.TempDir(),
		Out:        io.Discard,
	})
	if dir := os.Getenv(corpusEnv); dir != "" {
		if err := suite.LoadCorpus(dir); err != nil {
			tb.Logf("Warning: could not load corpus, using synthetic frames: %v", err)
		}
	}
	return suite
}

// TestEngineComparison runs the same blur on every engine end to end.
func TestEngineComparison(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping engine comparison in short mode")
	}
	suite := newSuite(t)
	defer suite.Close()

	set := (&benchmark.PredefinedScenarios{}).GetEngineComparisonScenarios(
		benchmark.CommonResolutions[1], 4,
		benchmark.EngineBox, benchmark.EngineOpenCV, benchmark.EngineBild, benchmark.EngineImaging)
	for _, scenario := range set.Scenarios {
		scenario.Iterations = 5
		scenario.WarmupRuns = 1
		suite.AddScenario(scenario)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(t, suite.RunAllScenarios(ctx))

	results := suite.GetResults()
	require.Len(t, results, 4)
	for _, result := range results {
		assert.Zero(t, result.ErrorRate, result.Scenario.Name)
		assert.Greater(t, result.MegapixelsPerSecond, 0.0, result.Scenario.Name)
		t.Logf("Scenario: %s, FPS: %.2f, MP/s: %.1f, Alloc/frame: %.1f KB",
			result.Scenario.Name,
			result.FramesPerSecond,
			result.MegapixelsPerSecond,
			result.MemoryStats.AllocBytesPerFrame/1024)
	}
}

// BenchmarkQuickScenarios runs the quick scenario set on the box engine.
func BenchmarkQuickScenarios(b *testing.B) {
	suite := newSuite(b)
	defer suite.Close()

	for _, scenario := range (&benchmark.PredefinedScenarios{}).GetQuickScenarios().Scenarios {
		scenario.Iterations = 10
		scenario.WarmupRuns = 2
		suite.AddScenario(scenario)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	b.ResetTimer()
	if err := suite.RunAllScenarios(ctx); err != nil {
		b.Fatalf("Benchmark failed: %v", err)
	}

	for _, result := range suite.GetResults() {
		b.Logf("Scenario: %s, FPS: %.2f, Memory: %.2f MB",
			result.Scenario.Name,
			result.FramesPerSecond,
			float64(result.MemoryStats.AllocBytes)/(1024*1024))
	}
}

// BenchmarkRadiusSweep shows throughput across radii at 720p.
func BenchmarkRadiusSweep(b *testing.B) {
	suite := newSuite(b)
	defer suite.Close()

	set := (&benchmark.PredefinedScenarios{}).GetRadiusSweepScenarios(benchmark.CommonResolutions[3])
	for _, scenario := range set.Scenarios {
		scenario.Iterations = 5
		scenario.WarmupRuns = 1
		suite.AddScenario(scenario)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	b.ResetTimer()
	if err := suite.RunAllScenarios(ctx); err != nil {
		b.Fatalf("Radius sweep failed: %v", err)
	}
}
