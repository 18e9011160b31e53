package benchmark

import (
	"time"
)

// PerformanceMetrics captures detailed performance data
type PerformanceMetrics struct {
	Scenario            Scenario      `json:"scenario"`
	Timestamp           time.Time     `json:"timestamp"`
	TotalDuration       time.Duration `json:"total_duration"`
	MeanDuration        time.Duration `json:"mean_duration"`
	MinDuration         time.Duration `json:"min_duration"`
	MaxDuration         time.Duration `json:"max_duration"`
	FramesPerSecond     float64       `json:"frames_per_second"`
	MegapixelsPerSecond float64       `json:"megapixels_per_second"`
	MemoryStats         MemoryMetrics `json:"memory_stats"`
	CPUStats            CPUMetrics    `json:"cpu_stats"`
	// Checksum of the last blurred frame, for comparing runs.
	Checksum  string  `json:"checksum"`
	ErrorRate float64 `json:"error_rate"`
}

// MemoryMetrics captures memory usage statistics
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
	HeapAllocBytes  uint64 `json:"heap_alloc_bytes"`
	HeapSysBytes    uint64 `json:"heap_sys_bytes"`
	// AllocBytesPerFrame is TotalAllocBytes spread over the measured iterations.
	AllocBytesPerFrame float64 `json:"alloc_bytes_per_frame"`
}

// CPUMetrics captures CPU usage statistics
type CPUMetrics struct {
	NumCPU     int `json:"num_cpu"`
	GOMAXPROCS int `json:"gomaxprocs"`
}

// durationStats accumulates per-iteration timings.
type durationStats struct {
	count int
	total time.Duration
	min   time.Duration
	max   time.Duration
}

func (d *durationStats) add(v time.Duration) {
	if d.count == 0 || v < d.min {
		d.min = v
	}
	if v > d.max {
		d.max = v
	}
	d.total += v
	d.count++
}

func (d *durationStats) mean() time.Duration {
	if d.count == 0 {
		return 0
	}
	return d.total / time.Duration(d.count)
}
