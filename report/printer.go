package report

import (
	"fmt"
	"io"

	"srvstat/models"
)

// Print writes the full report in fixed section order: header, CPU,
// memory, disk, blank line, top-CPU list, blank line, top-memory list.
// The container section only appears when something is running.
func Print(w io.Writer, rep *models.Report) {
	fmt.Fprintf(w, "Server stats for %s at %s (up %s, load %.2f %.2f %.2f)\n",
		rep.Host.Hostname,
		rep.Timestamp.Format("2006-01-02 15:04:05"),
		formatUptime(rep.Host.Uptime),
		rep.Host.Load1, rep.Host.Load5, rep.Host.Load15)

	fmt.Fprintf(w, "Total CPU Usage: %.1f%%\n", rep.CPU.Percent)

	fmt.Fprintf(w, "Total Memory Usage: %s used / %s total (%.1f%%)\n",
		HumanSizeKB(rep.Memory.UsedKB),
		HumanSizeKB(rep.Memory.TotalKB),
		rep.Memory.Percent)

	fmt.Fprintf(w, "Total Disk Usage: %s used / %s total (%.1f%%)\n",
		HumanSizeKB(int64(rep.Disk.UsedKB)),
		HumanSizeKB(int64(rep.Disk.TotalKB)),
		rep.Disk.Percent)

	fmt.Fprintln(w)

	fmt.Fprintf(w, "TOP %d PROCESSES BY CPU:\n", rep.TopN)
	printProcesses(w, rep.TopCPU)

	fmt.Fprintln(w)

	fmt.Fprintf(w, "TOP %d PROCESSES BY MEM:\n", rep.TopN)
	printProcesses(w, rep.TopMemory)

	if len(rep.Containers) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "CONTAINERS:")
		for _, c := range rep.Containers {
			fmt.Fprintf(w, "%s %-24s %-32s %s\n", c.ID, c.Name, c.Image, c.Status)
		}
	}
}

// printProcesses writes one fixed-width line per process. An empty list
// prints nothing under the header; a missing listing is not an error.
func printProcesses(w io.Writer, procs []models.ProcessInfo) {
	for _, p := range procs {
		fmt.Fprintf(w, "PID:%d %16.16s %.1f%% CPU %.1f%% MEM %s\n",
			p.PID, p.Command, p.CPU, p.Memory, p.User)
	}
}
