package main

import (
	"log"
	"os"

	"srvstat/collector"
	"srvstat/config"
	"srvstat/report"
)

func main() {
	// Load config
	cfg := config.Load()

	// Pastiin dulu interface kernel-nya kebaca sebelum mulai sampling
	if err := collector.CheckPlatform(); err != nil {
		log.Fatalf("unsupported platform: %v", err)
	}

	rep := collector.CollectReport(cfg)
	report.Print(os.Stdout, rep)
}
