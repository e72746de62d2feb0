package collector

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"srvstat/models"
)

// openMeminfo is swappable so tests can feed mock meminfo content.
var openMeminfo = func() (io.ReadCloser, error) {
	return os.Open("/proc/meminfo")
}

// collectMemory reads RAM stats from the kernel meminfo interface.
func collectMemory() models.MemoryStat {
	f, err := openMeminfo()
	if err != nil {
		return models.MemoryStat{}
	}
	defer f.Close()

	return parseMeminfo(f)
}

// parseMeminfo reads "Label: value kB" lines and derives used memory.
// Prefers MemAvailable when the kernel exposes it; older kernels get the
// free+buffers+cached estimate instead.
func parseMeminfo(r io.Reader) models.MemoryStat {
	var total, available, free, buffers, cached int64
	hasAvailable := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		value, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			total = value
		case "MemAvailable":
			available = value
			hasAvailable = true
		case "MemFree":
			free = value
		case "Buffers":
			buffers = value
		case "Cached":
			cached = value
		}
	}

	// Kernel lama belum punya MemAvailable, estimasi dari free+buffers+cached
	if !hasAvailable {
		available = free + buffers + cached
	}

	used := total - available

	percent := 0.0
	if total > 0 {
		percent = math.Round(float64(used)/float64(total)*1000) / 10
	}

	return models.MemoryStat{
		TotalKB:     total,
		AvailableKB: available,
		UsedKB:      used,
		Percent:     percent,
	}
}
