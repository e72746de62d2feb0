package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config menyimpan konfigurasi reporter
type Config struct {
	SampleWindow time.Duration
	TopProcesses int
	DiskRoot     string
}

// Load baca config dari env. Semua optional, defaultnya udah bener.
func Load() *Config {
	// Coba load .env, kalo gak ada ya pake env biasa
	_ = godotenv.Load()

	// Parse sampling window, default 1 detik
	windowStr := os.Getenv("SAMPLE_WINDOW_SECONDS")
	window, err := strconv.Atoi(windowStr)
	if err != nil || window < 1 {
		window = 1
	}

	// Parse jumlah proses per list, default 5
	topStr := os.Getenv("TOP_PROCESSES")
	top, err := strconv.Atoi(topStr)
	if err != nil || top < 1 {
		top = 5
	}

	return &Config{
		SampleWindow: time.Duration(window) * time.Second,
		TopProcesses: top,
		DiskRoot:     getEnv("DISK_ROOT", "/"),
	}
}

// getEnv ambil env dengan fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
