package collector

import (
	"math"

	"srvstat/models"

	"github.com/shirou/gopsutil/v3/disk"
)

// collectDisk aggregates usage across all mounted filesystems. When the
// mount enumeration is unavailable or yields nothing, it falls back to
// the root filesystem only.
func collectDisk(root string) models.DiskStat {
	if parts, err := disk.Partitions(false); err == nil {
		seen := make(map[string]bool)
		var used, total uint64

		for _, p := range parts {
			if seen[p.Mountpoint] {
				continue
			}
			seen[p.Mountpoint] = true

			usage, err := disk.Usage(p.Mountpoint)
			if err != nil {
				continue
			}
			used += usage.Used
			total += usage.Total
		}

		if total > 0 {
			return diskStat(used, total)
		}
	}

	// Fallback: root filesystem aja
	usage, err := disk.Usage(root)
	if err != nil {
		return models.DiskStat{}
	}
	return diskStat(usage.Used, usage.Total)
}

func diskStat(usedBytes, totalBytes uint64) models.DiskStat {
	percent := 0.0
	if totalBytes > 0 {
		percent = math.Round(float64(usedBytes)/float64(totalBytes)*1000) / 10
	}
	return models.DiskStat{
		UsedKB:  usedBytes / 1024,
		TotalKB: totalBytes / 1024,
		Percent: percent,
	}
}
