package models

// ProcessInfo is one row of the process snapshot
type ProcessInfo struct {
	PID     int
	User    string
	Command string
	CPU     float64
	Memory  float64
}
