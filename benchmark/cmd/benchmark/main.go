package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/nvr-ai/go-blur/benchmark"
	"github.com/nvr-ai/go-blur/benchmark/engines"
)

func main() {
	var (
		configFile   = flag.String("config", "", "Path to benchmark configuration file")
		scenarioFile = flag.String("scenarios", "", "Path to scenario configuration file")
		outputDir    = flag.String("output", "", "Output directory for results")
		corpus       = flag.String("images", "", "Path to test images directory or file")
		engineList   = flag.String("engines", "", "Comma separated engines to run (box, opencv, bild, imaging)")
		radius       = flag.Float64("radius", 5, "Blur radius for comparison sets")
		quick        = flag.Bool("quick", false, "Run quick benchmark scenarios")
		radii        = flag.Bool("radii", false, "Sweep blur radii at 1280x720")
		edges        = flag.Bool("edges", false, "Compare edge modes at 1280x720")
		methods      = flag.Bool("methods", false, "Compare radius methods at 1280x720")
		resolutions  = flag.Bool("resolutions", false, "Compare frame resolutions")
		compare      = flag.Bool("compare", false, "Compare engines at 1280x720")
		timeout      = flag.Duration("timeout", 0, "Benchmark timeout duration")
	)
	flag.Parse()

	// Load configuration if provided
	config := benchmark.DefaultBenchmarkConfig()
	if *configFile != "" {
		var err error
		config, err = benchmark.LoadBenchmarkConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *outputDir != "" {
		config.OutputDir = *outputDir
	}
	if *corpus != "" {
		config.CorpusPath = *corpus
	}
	if *engineList != "" {
		config.Engines = nil
		for _, name := range strings.Split(*engineList, ",") {
			config.Engines = append(config.Engines, benchmark.EngineType(strings.TrimSpace(name)))
		}
	}
	if *timeout > 0 {
		config.TimeoutSeconds = int(timeout.Seconds())
	}

	available := make([]benchmark.Engine, 0, len(config.Engines))
	for _, engineType := range config.Engines {
		engine, err := engines.New(engineType)
		if err != nil {
			log.Fatalf("Failed to create engine: %v", err)
		}
		available = append(available, engine)
	}

	// Create benchmark suite
	suite := benchmark.NewSuite(benchmark.NewSuiteArgs{
		Engines:    available,
		OutputPath: config.OutputDir,
	})
	defer suite.Close()

	if config.CorpusPath != "" {
		if err := suite.LoadCorpus(config.CorpusPath); err != nil {
			log.Fatalf("Failed to load test images: %v", err)
		}
	}

	files := config.ScenarioFiles
	if *scenarioFile != "" {
		files = append(files, *scenarioFile)
	}
	for _, file := range files {
		scenarioSet, err := benchmark.LoadScenarioSet(file)
		if err != nil {
			log.Fatalf("Failed to load scenario file: %v", err)
		}
		suite.AddScenarioSet(scenarioSet)
		fmt.Printf("Loaded %d scenarios from %s\n", len(scenarioSet.Scenarios), file)
	}

	// Add scenarios based on flags
	predefined := &benchmark.PredefinedScenarios{}
	hd := benchmark.CommonResolutions[3]
	var sets []*benchmark.ScenarioSet
	if *quick {
		sets = append(sets, predefined.GetQuickScenarios())
	}
	if *radii {
		sets = append(sets, predefined.GetRadiusSweepScenarios(hd))
	}
	if *edges {
		sets = append(sets, predefined.GetEdgeComparisonScenarios(hd, *radius))
	}
	if *methods {
		sets = append(sets, predefined.GetMethodComparisonScenarios(hd, *radius))
	}
	if *resolutions {
		sets = append(sets, predefined.GetResolutionComparisonScenarios(*radius))
	}
	if *compare {
		sets = append(sets, predefined.GetEngineComparisonScenarios(hd, *radius, config.Engines...))
	}
	// If nothing was requested, use quick by default
	if len(sets) == 0 && len(files) == 0 {
		sets = append(sets, predefined.GetQuickScenarios())
	}
	for _, set := range sets {
		suite.AddScenarioSet(set)
		fmt.Printf("Added %d %s scenarios\n", len(set.Scenarios), set.Name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if config.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(config.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	// Run benchmarks
	fmt.Println("Starting benchmark execution...")
	start := time.Now()

	if err := suite.RunAllScenarios(ctx); err != nil {
		log.Fatalf("Benchmark execution failed: %v", err)
	}

	fmt.Printf("Benchmark completed in %v\n", time.Since(start))

	// Print summary
	results := suite.GetResults()
	fmt.Printf("\n=== BENCHMARK RESULTS SUMMARY ===\n")
	fmt.Printf("Total scenarios: %d\n", len(results))
	fmt.Printf("Results saved to: %s\n", config.OutputDir)

	var bestFPS float64
	var bestScenario string
	for _, result := range results {
		if result.FramesPerSecond > bestFPS {
			bestFPS = result.FramesPerSecond
			bestScenario = result.Scenario.Name
		}
		fmt.Printf("  %s: %.2f FPS, %.1f MP/s (%.2f MB/frame)\n",
			result.Scenario.Name,
			result.FramesPerSecond,
			result.MegapixelsPerSecond,
			result.MemoryStats.AllocBytesPerFrame/(1024*1024))
	}

	fmt.Printf("\nBest performing scenario: %s (%.2f FPS)\n", bestScenario, bestFPS)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Benchmark tool for blur throughput testing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -images ./test_images -quick\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -config ./benchmark_config.json -scenarios ./scenarios.json\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -engines box,opencv -compare -radius 8\n", filepath.Base(os.Args[0]))
	}
}
