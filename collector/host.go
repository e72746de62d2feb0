package collector

import (
	"os"

	"srvstat/models"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
)

// collectHost gathers hostname, uptime and load averages for the report
// header. Anything unavailable stays at its zero value.
func collectHost() models.HostStat {
	stat := models.HostStat{}

	if hostname, err := os.Hostname(); err == nil {
		stat.Hostname = hostname
	}

	if info, err := host.Info(); err == nil {
		stat.Uptime = info.Uptime
	}

	if avg, err := load.Avg(); err == nil && avg != nil {
		stat.Load1 = avg.Load1
		stat.Load5 = avg.Load5
		stat.Load15 = avg.Load15
	}

	return stat
}
