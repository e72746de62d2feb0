package report

import "testing"

// TestHumanSizeKB pins the unit ladder, including the TB cap.
func TestHumanSizeKB(t *testing.T) {
	tests := []struct {
		kb   int64
		want string
	}{
		{0, "0.0 KB"},
		{512, "512.0 KB"},
		{1023, "1023.0 KB"},
		{1024, "1.0 MB"},
		{1536, "1.5 MB"},
		{1048576, "1.0 GB"},
		{1073741824, "1.0 TB"},
		{1099511627776, "1024.0 TB"}, // never scales past TB
		{-250, "-250.0 KB"},          // negative used memory passes through
	}

	for _, tt := range tests {
		if got := HumanSizeKB(tt.kb); got != tt.want {
			t.Errorf("HumanSizeKB(%d) = %q, want %q", tt.kb, got, tt.want)
		}
	}
}

// TestFormatUptime covers the day threshold.
func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "0h0m"},
		{3661, "1h1m"},
		{90061, "1d1h1m"},
	}

	for _, tt := range tests {
		if got := formatUptime(tt.seconds); got != tt.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
