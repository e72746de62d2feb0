package collector

import (
	"math"
	"testing"

	"github.com/shirou/gopsutil/v3/cpu"
)

// TestBusyPercent verifies the busy percentage derived from two
// aggregate counter snapshots.
func TestBusyPercent(t *testing.T) {
	tests := []struct {
		name string
		prev cpu.TimesStat
		curr cpu.TimesStat
		want float64
	}{
		{
			name: "zero total delta yields zero",
			prev: cpu.TimesStat{User: 100, System: 50, Idle: 800, Iowait: 10},
			curr: cpu.TimesStat{User: 100, System: 50, Idle: 800, Iowait: 10},
			want: 0.0,
		},
		{
			name: "half busy",
			prev: cpu.TimesStat{},
			curr: cpu.TimesStat{User: 50, Idle: 50},
			want: 50.0,
		},
		{
			name: "fully idle",
			prev: cpu.TimesStat{},
			curr: cpu.TimesStat{Idle: 100},
			want: 0.0,
		},
		{
			name: "fully busy",
			prev: cpu.TimesStat{},
			curr: cpu.TimesStat{User: 60, System: 30, Irq: 10},
			want: 100.0,
		},
		{
			name: "iowait counts as idle",
			prev: cpu.TimesStat{},
			curr: cpu.TimesStat{User: 70, Iowait: 30},
			want: 70.0,
		},
		{
			name: "steal and softirq count as busy",
			prev: cpu.TimesStat{User: 10, Idle: 10},
			curr: cpu.TimesStat{User: 10, Idle: 30, Steal: 15, Softirq: 5},
			want: 50.0,
		},
		{
			name: "rounds to one decimal",
			prev: cpu.TimesStat{},
			curr: cpu.TimesStat{User: 1, Idle: 2},
			want: 33.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusyPercent(tt.prev, tt.curr)
			if got != tt.want {
				t.Errorf("BusyPercent = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBusyPercentRange checks the result stays in [0, 100] with one
// fractional digit for monotonically increasing counters.
func TestBusyPercentRange(t *testing.T) {
	pairs := []struct {
		prev, curr cpu.TimesStat
	}{
		{cpu.TimesStat{User: 968}, cpu.TimesStat{User: 1111, Idle: 50}},
		{cpu.TimesStat{Idle: 800, User: 100}, cpu.TimesStat{Idle: 850, User: 193}},
		{cpu.TimesStat{Nice: 3, Iowait: 7}, cpu.TimesStat{Nice: 9, Iowait: 7, Steal: 1}},
	}

	for _, pair := range pairs {
		got := BusyPercent(pair.prev, pair.curr)
		if got < 0 || got > 100 {
			t.Errorf("BusyPercent(%+v, %+v) = %v, out of range", pair.prev, pair.curr, got)
		}
		if math.Abs(got*10-math.Round(got*10)) > 1e-9 {
			t.Errorf("BusyPercent(%+v, %+v) = %v, more than one fractional digit", pair.prev, pair.curr, got)
		}
	}
}
