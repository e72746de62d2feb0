package collector

import (
	"math"
	"time"

	"srvstat/models"

	"github.com/shirou/gopsutil/v3/cpu"
)

// idleTicks is idle plus iowait, what the kernel counts as not-busy.
func idleTicks(t cpu.TimesStat) float64 {
	return t.Idle + t.Iowait
}

// activeTicks sums the busy counters. Guest time is already folded into
// user by the kernel, so it is not added again.
func activeTicks(t cpu.TimesStat) float64 {
	return t.User + t.Nice + t.System + t.Irq + t.Softirq + t.Steal
}

// BusyPercent derives busy CPU percentage from two aggregate snapshots,
// rounded to one decimal. A zero total delta yields 0.0 instead of
// dividing by zero.
func BusyPercent(prev, curr cpu.TimesStat) float64 {
	prevIdle, currIdle := idleTicks(prev), idleTicks(curr)
	prevTotal := prevIdle + activeTicks(prev)
	currTotal := currIdle + activeTicks(curr)

	totalDelta := currTotal - prevTotal
	if totalDelta == 0 {
		return 0.0
	}

	idleDelta := currIdle - prevIdle
	busy := (totalDelta - idleDelta) / totalDelta * 100
	return math.Round(busy*10) / 10
}

// collectCPU samples the aggregate counters twice, window apart.
// The sleep is the measurement window, the only place the run pauses.
func collectCPU(window time.Duration) models.CPUStat {
	prev, err := cpu.Times(false)
	if err != nil || len(prev) == 0 {
		return models.CPUStat{}
	}

	time.Sleep(window)

	curr, err := cpu.Times(false)
	if err != nil || len(curr) == 0 {
		return models.CPUStat{}
	}

	return models.CPUStat{Percent: BusyPercent(prev[0], curr[0])}
}
