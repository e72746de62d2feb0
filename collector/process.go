package collector

import (
	"sort"

	"srvstat/models"

	"github.com/shirou/gopsutil/v3/process"
)

// collectProcesses snapshots every running process once; ranking happens
// afterwards on the same snapshot.
func collectProcesses() []models.ProcessInfo {
	procs, err := process.Processes()
	if err != nil {
		// Gak ada listing ya udah, report tetep jalan tanpa proses
		return nil
	}

	var list []models.ProcessInfo

	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}

		user, err := p.Username()
		if err != nil {
			user = "?"
		}

		cpuPct, err := p.CPUPercent()
		if err != nil {
			cpuPct = 0
		}

		memPct, err := p.MemoryPercent()
		if err != nil {
			memPct = 0
		}

		list = append(list, models.ProcessInfo{
			PID:     int(p.Pid),
			User:    user,
			Command: name,
			CPU:     cpuPct,
			Memory:  float64(memPct),
		})
	}

	return list
}

// TopByCPU returns the n highest CPU consumers, descending. Order among
// equal percentages is not defined.
func TopByCPU(list []models.ProcessInfo, n int) []models.ProcessInfo {
	ranked := make([]models.ProcessInfo, len(list))
	copy(ranked, list)

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].CPU > ranked[j].CPU
	})

	return clampTop(ranked, n)
}

// TopByMemory returns the n highest memory consumers, descending.
func TopByMemory(list []models.ProcessInfo, n int) []models.ProcessInfo {
	ranked := make([]models.ProcessInfo, len(list))
	copy(ranked, list)

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Memory > ranked[j].Memory
	})

	return clampTop(ranked, n)
}

func clampTop(ranked []models.ProcessInfo, n int) []models.ProcessInfo {
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}
