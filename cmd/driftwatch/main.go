package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	lib "github.com/driftlab/driftwatch"
	"github.com/driftlab/driftwatch/config"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	configPath := flag.String("config", "", "path to config.yml (default: ./config.yml)")
	snapshots := flag.String("snapshots", "", "snapshot URL template override; must contain %02d (URL or local path)")
	eventsFeed := flag.String("events", "", "detection feed URL override (URL or local path)")
	threshold := flag.Float64("threshold", 0, "proximity threshold in km (0 = config default)")
	cutoff := flag.Int("cutoff", -1, "render cutoff in hours (-1 = config default)")
	hours := flag.Int("hours", 0, "snapshot window size in hours (0 = config default)")
	flag.Parse()

	_ = godotenv.Load()
	lib.InitLogging()
	if err := config.Load(*configPath); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if *snapshots != "" {
		cfg.Telemetry.SnapshotURLTemplate = *snapshots
	}
	if *eventsFeed != "" {
		cfg.Events.FeedURL = *eventsFeed
	}
	if *threshold > 0 {
		cfg.Analysis.ThresholdKM = *threshold
	}
	if *cutoff >= 0 {
		cfg.Analysis.CutoffHours = *cutoff
	}
	if *hours > 0 {
		cfg.Telemetry.WindowHours = *hours
	}

	engine := lib.NewEngine(cfg)

	switch *mode {
	case "serve":
		srv := lib.NewServer(cfg, engine)
		srv.Start()
		srv.HandleGracefulShutdown()
	case "oneshot":
		buf, err := lib.Oneshot(context.Background(), cfg, engine)
		if err != nil {
			log.Fatalf("oneshot: %v", err)
		}
		fmt.Println(string(buf))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
