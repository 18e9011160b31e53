package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nvr-ai/go-blur/config"
	"github.com/nvr-ai/go-blur/images"
	"github.com/nvr-ai/go-blur/images/kernels"
)

// ScenarioBuilder helps build test scenarios with fluent API
type ScenarioBuilder struct {
	scenario Scenario
}

// NewScenarioBuilder creates a new scenario builder
func NewScenarioBuilder(name string) *ScenarioBuilder {
	return &ScenarioBuilder{
		scenario: Scenario{
			Name:       name,
			Engine:     EngineBox,
			Resolution: CommonResolutions[1],
			Blur:       config.Default().Blur,
			Iterations: 100,
			WarmupRuns: 10,
		},
	}
}

// WithEngine sets the engine type
func (sb *ScenarioBuilder) WithEngine(engine EngineType) *ScenarioBuilder {
	sb.scenario.Engine = engine
	return sb
}

// WithResolution sets the frame resolution
func (sb *ScenarioBuilder) WithResolution(width, height int) *ScenarioBuilder {
	sb.scenario.Resolution = Resolution{
		Width:  width,
		Height: height,
		Name:   fmt.Sprintf("%dx%d", width, height),
	}
	return sb
}

// WithRadius sets the same radius on both axes
func (sb *ScenarioBuilder) WithRadius(radius float64) *ScenarioBuilder {
	sb.scenario.Blur.Radius = radius
	sb.scenario.Blur.XRadius = nil
	sb.scenario.Blur.YRadius = nil
	return sb
}

// WithAxisRadius sets separate horizontal and vertical radii
func (sb *ScenarioBuilder) WithAxisRadius(x, y float64) *ScenarioBuilder {
	sb.scenario.Blur.XRadius = &x
	sb.scenario.Blur.YRadius = &y
	return sb
}

// WithEdge sets the edge mode
func (sb *ScenarioBuilder) WithEdge(edge kernels.EdgeMode) *ScenarioBuilder {
	sb.scenario.Blur.Edge = edge.String()
	return sb
}

// WithMethod sets the radius method
func (sb *ScenarioBuilder) WithMethod(method kernels.RadiusMethod) *ScenarioBuilder {
	sb.scenario.Blur.Method = method.String()
	return sb
}

// WithChannels sets the blurred channels
func (sb *ScenarioBuilder) WithChannels(mask kernels.ChannelMask) *ScenarioBuilder {
	sb.scenario.Blur.Channels = mask.String()
	return sb
}

// WithDirectional enables directional blur per axis
func (sb *ScenarioBuilder) WithDirectional(x, y bool) *ScenarioBuilder {
	sb.scenario.Blur.DirectionalX = x
	sb.scenario.Blur.DirectionalY = y
	return sb
}

// WithParallel enables scanline parallelism
func (sb *ScenarioBuilder) WithParallel(parallel bool) *ScenarioBuilder {
	sb.scenario.Blur.Parallel = parallel
	return sb
}

// WithIterations sets the number of test iterations
func (sb *ScenarioBuilder) WithIterations(iterations int) *ScenarioBuilder {
	sb.scenario.Iterations = iterations
	return sb
}

// WithWarmupRuns sets the number of warmup runs
func (sb *ScenarioBuilder) WithWarmupRuns(warmups int) *ScenarioBuilder {
	sb.scenario.WarmupRuns = warmups
	return sb
}

// Build returns the configured test scenario
func (sb *ScenarioBuilder) Build() Scenario {
	return sb.scenario
}

// ScenarioSet represents a collection of related test scenarios
type ScenarioSet struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Scenarios   []Scenario `json:"scenarios"`
}

// PredefinedScenarios contains common benchmark scenario sets
type PredefinedScenarios struct{}

func resolutionName(res images.Resolution) string {
	return strings.ReplaceAll(string(res.Name), " ", "")
}

// GetQuickScenarios returns a small set for quick testing
func (ps *PredefinedScenarios) GetQuickScenarios() *ScenarioSet {
	scenarios := make([]Scenario, 0)

	for _, resolution := range CommonResolutions[:3] {
		for _, parallel := range []bool{false, true} {
			scenario := NewScenarioBuilder(fmt.Sprintf("quick_%s_r3_parallel=%t", resolution.Name, parallel)).
				WithResolution(resolution.Width, resolution.Height).
				WithRadius(3).
				WithParallel(parallel).
				WithIterations(20).
				WithWarmupRuns(2).
				Build()

			scenarios = append(scenarios, scenario)
		}
	}

	return &ScenarioSet{
		Name:        "Quick Performance Test",
		Description: "Radius 3 at small frame sizes, sequential and parallel",
		Scenarios:   scenarios,
	}
}

// GetRadiusSweepScenarios shows that cost does not grow with the radius
func (ps *PredefinedScenarios) GetRadiusSweepScenarios(resolution Resolution) *ScenarioSet {
	scenarios := make([]Scenario, 0)

	for _, radius := range []float64{1, 2, 5, 10, 25, 50} {
		scenario := NewScenarioBuilder(fmt.Sprintf("radius_%s_r%g", resolution.Name, radius)).
			WithResolution(resolution.Width, resolution.Height).
			WithRadius(radius).
			WithIterations(50).
			WithWarmupRuns(5).
			Build()

		scenarios = append(scenarios, scenario)
	}

	return &ScenarioSet{
		Name:        fmt.Sprintf("Radius Sweep @ %s", resolution.Name),
		Description: fmt.Sprintf("Compares blur radii at %s", resolution.Name),
		Scenarios:   scenarios,
	}
}

// GetEdgeComparisonScenarios tests every edge mode at one size and radius
func (ps *PredefinedScenarios) GetEdgeComparisonScenarios(resolution Resolution, radius float64) *ScenarioSet {
	scenarios := make([]Scenario, 0)

	for _, edge := range []kernels.EdgeMode{kernels.EdgeNone, kernels.EdgeDuplicate, kernels.EdgeTile, kernels.EdgeMirror} {
		scenario := NewScenarioBuilder(fmt.Sprintf("edge_%s_%s", resolution.Name, edge)).
			WithResolution(resolution.Width, resolution.Height).
			WithRadius(radius).
			WithEdge(edge).
			WithIterations(50).
			WithWarmupRuns(5).
			Build()

		scenarios = append(scenarios, scenario)
	}

	return &ScenarioSet{
		Name:        fmt.Sprintf("Edge Comparison @ %s", resolution.Name),
		Description: fmt.Sprintf("Compares edge modes at %s with radius %g", resolution.Name, radius),
		Scenarios:   scenarios,
	}
}

// GetMethodComparisonScenarios compares radius methods and directional blur
func (ps *PredefinedScenarios) GetMethodComparisonScenarios(resolution Resolution, radius float64) *ScenarioSet {
	scenarios := []Scenario{
		NewScenarioBuilder(fmt.Sprintf("method_%s_%s", resolution.Name, kernels.MethodSVG)).
			WithResolution(resolution.Width, resolution.Height).
			WithRadius(radius).
			WithMethod(kernels.MethodSVG).
			WithIterations(50).
			Build(),
		NewScenarioBuilder(fmt.Sprintf("method_%s_%s", resolution.Name, kernels.MethodVarianceMatching)).
			WithResolution(resolution.Width, resolution.Height).
			WithRadius(radius).
			WithMethod(kernels.MethodVarianceMatching).
			WithIterations(50).
			Build(),
		NewScenarioBuilder(fmt.Sprintf("method_%s_directional", resolution.Name)).
			WithResolution(resolution.Width, resolution.Height).
			WithAxisRadius(-radius, 0).
			WithDirectional(true, false).
			WithIterations(50).
			Build(),
		NewScenarioBuilder(fmt.Sprintf("method_%s_alpha_only", resolution.Name)).
			WithResolution(resolution.Width, resolution.Height).
			WithRadius(radius).
			WithChannels(kernels.ChannelA).
			WithIterations(50).
			Build(),
	}

	return &ScenarioSet{
		Name:        fmt.Sprintf("Method Comparison @ %s", resolution.Name),
		Description: fmt.Sprintf("Compares radius methods, directional and alpha-only blur at %s", resolution.Name),
		Scenarios:   scenarios,
	}
}

// GetResolutionComparisonScenarios tests every supported preset size
func (ps *PredefinedScenarios) GetResolutionComparisonScenarios(radius float64) *ScenarioSet {
	scenarios := make([]Scenario, 0)

	for _, res := range images.GetSupportedResolutions() {
		scenario := NewScenarioBuilder(fmt.Sprintf("resolution_%s_r%g", resolutionName(res), radius)).
			WithResolution(res.Pixels.Width, res.Pixels.Height).
			WithRadius(radius).
			WithParallel(true).
			WithIterations(20).
			WithWarmupRuns(2).
			Build()

		scenarios = append(scenarios, scenario)
	}

	return &ScenarioSet{
		Name:        "Resolution Comparison",
		Description: fmt.Sprintf("Compares frame sizes with radius %g", radius),
		Scenarios:   scenarios,
	}
}

// GetEngineComparisonScenarios runs the same blur on each engine
func (ps *PredefinedScenarios) GetEngineComparisonScenarios(resolution Resolution, radius float64, engines ...EngineType) *ScenarioSet {
	scenarios := make([]Scenario, 0)

	for _, engine := range engines {
		scenario := NewScenarioBuilder(fmt.Sprintf("engine_%s_%s_r%g", engine, resolution.Name, radius)).
			WithEngine(engine).
			WithResolution(resolution.Width, resolution.Height).
			WithRadius(radius).
			WithIterations(50).
			WithWarmupRuns(5).
			Build()

		scenarios = append(scenarios, scenario)
	}

	return &ScenarioSet{
		Name:        fmt.Sprintf("Engine Comparison @ %s", resolution.Name),
		Description: fmt.Sprintf("Compares blur engines at %s with radius %g", resolution.Name, radius),
		Scenarios:   scenarios,
	}
}

// SaveScenarioSet saves a scenario set to a JSON file
func SaveScenarioSet(scenarioSet *ScenarioSet, filename string) error {
	data, err := json.MarshalIndent(scenarioSet, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario set: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}

	return nil
}

// LoadScenarioSet loads a scenario set from a JSON file
func LoadScenarioSet(filename string) (*ScenarioSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenarioSet ScenarioSet
	if err := json.Unmarshal(data, &scenarioSet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario set: %w", err)
	}

	return &scenarioSet, nil
}

// BenchmarkConfig represents the overall benchmark configuration
type BenchmarkConfig struct {
	OutputDir      string       `json:"output_dir"`
	CorpusPath     string       `json:"corpus_path"`
	Engines        []EngineType `json:"engines"`
	ScenarioFiles  []string     `json:"scenario_files"`
	TimeoutSeconds int          `json:"timeout_seconds"`
}

// DefaultBenchmarkConfig returns a default benchmark configuration
func DefaultBenchmarkConfig() *BenchmarkConfig {
	return &BenchmarkConfig{
		OutputDir:      "./benchmark_results",
		Engines:        []EngineType{EngineBox},
		TimeoutSeconds: 3600, // 1 hour
	}
}

// SaveConfig saves the benchmark configuration to a JSON file
func (bc *BenchmarkConfig) SaveConfig(filename string) error {
	data, err := json.MarshalIndent(bc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadBenchmarkConfig loads benchmark configuration from a JSON file
func LoadBenchmarkConfig(filename string) (*BenchmarkConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultBenchmarkConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
