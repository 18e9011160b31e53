package main

import (
	"fmt"
	"log"

	"github.com/nvr-ai/go-blur/benchmark"
	"github.com/nvr-ai/go-blur/images/kernels"
)

// Example program to create and save benchmark scenarios
func main() {
	predefined := &benchmark.PredefinedScenarios{}
	hd := benchmark.CommonResolutions[3]

	sets := map[string]*benchmark.ScenarioSet{
		"quick_scenarios.json":      predefined.GetQuickScenarios(),
		"radius_scenarios.json":     predefined.GetRadiusSweepScenarios(hd),
		"edge_scenarios.json":       predefined.GetEdgeComparisonScenarios(hd, 5),
		"method_scenarios.json":     predefined.GetMethodComparisonScenarios(hd, 5),
		"resolution_scenarios.json": predefined.GetResolutionComparisonScenarios(5),
		"engine_scenarios.json":     predefined.GetEngineComparisonScenarios(hd, 5, benchmark.EngineBox, benchmark.EngineOpenCV, benchmark.EngineBild, benchmark.EngineImaging),
	}
	for file, set := range sets {
		if err := benchmark.SaveScenarioSet(set, file); err != nil {
			log.Fatalf("Failed to save %s: %v", file, err)
		}
		fmt.Printf("Saved %d scenarios to %s\n", len(set.Scenarios), file)
	}

	// Create custom scenario using builder
	customScenario := benchmark.NewScenarioBuilder("custom_4k_motion_streak").
		WithResolution(3840, 2160).
		WithAxisRadius(-12, 0).
		WithDirectional(true, false).
		WithChannels(kernels.ChannelR | kernels.ChannelG | kernels.ChannelB).
		WithParallel(true).
		WithIterations(20).
		WithWarmupRuns(2).
		Build()

	customSet := &benchmark.ScenarioSet{
		Name:        "Custom 4K Motion Streak",
		Description: "Leftward directional streak on the color channels of a 4K frame",
		Scenarios:   []benchmark.Scenario{customScenario},
	}

	if err := benchmark.SaveScenarioSet(customSet, "custom_scenarios.json"); err != nil {
		log.Fatalf("Failed to save custom scenarios: %v", err)
	}
	fmt.Printf("Saved %d custom scenarios\n", len(customSet.Scenarios))

	fmt.Println("All scenario files created successfully!")
}
