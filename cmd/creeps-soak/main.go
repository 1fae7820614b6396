package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/creeps/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Minute, "Simulated time to play for.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 1, "Seed for the spawn RNG and the bot.")
	hold := flag.Int("hold", 20, "Frames the bot keeps a direction before picking another.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	log.Printf("Running soak for %s of game time...\n", *duration)
	report, err := run(cfg, Options{
		Duration:   *duration,
		HoldFrames: *hold,
		Seed:       *seed,
	}, logger)
	if err != nil {
		log.Fatalf("Soak failed: %v", err)
	}
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Soak complete.")
}
