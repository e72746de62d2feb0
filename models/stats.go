package models

// HostStat holds header context for the report
type HostStat struct {
	Hostname string
	Uptime   uint64
	Load1    float64
	Load5    float64
	Load15   float64
}

// CPUStat holds aggregate CPU busy percentage
type CPUStat struct {
	Percent float64
}

// MemoryStat holds RAM stats in kB.
// UsedKB is signed: some sources report available > total and the
// resulting negative value is printed as-is.
type MemoryStat struct {
	TotalKB     int64
	AvailableKB int64
	UsedKB      int64
	Percent     float64
}

// DiskStat holds filesystem usage in kB, aggregated or root-only
type DiskStat struct {
	UsedKB  uint64
	TotalKB uint64
	Percent float64
}
