package models

import "time"

// Report is the full result of one collection pass.
type Report struct {
	Timestamp  time.Time
	TopN       int
	Host       HostStat
	CPU        CPUStat
	Memory     MemoryStat
	Disk       DiskStat
	TopCPU     []ProcessInfo
	TopMemory  []ProcessInfo
	Containers []ContainerInfo
}
