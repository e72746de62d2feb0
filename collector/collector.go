package collector

import (
	"time"

	"srvstat/config"
	"srvstat/models"
)

// CollectReport kumpulin semua statistik buat satu report
func CollectReport(cfg *config.Config) *models.Report {
	report := &models.Report{
		Timestamp: time.Now(),
		TopN:      cfg.TopProcesses,
	}

	report.Host = collectHost()

	// CPU duluan karena ini yang nunggu sampling window
	report.CPU = collectCPU(cfg.SampleWindow)
	report.Memory = collectMemory()
	report.Disk = collectDisk(cfg.DiskRoot)

	// Satu snapshot proses buat dua ranking
	procs := collectProcesses()
	report.TopCPU = TopByCPU(procs, cfg.TopProcesses)
	report.TopMemory = TopByMemory(procs, cfg.TopProcesses)

	report.Containers = collectContainers()

	return report
}
