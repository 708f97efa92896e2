package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Load reads and validates configuration from the first readable path,
// falling back to config.yml in the working directory, then applies
// environment overrides and defaults.
func Load(paths ...string) error {
	paths = append(paths, "config.yml")
	var data []byte
	var err error
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	if !strings.Contains(cfg.Telemetry.SnapshotURLTemplate, "%02d") {
		return fmt.Errorf("telemetry.snapshotURLTemplate must contain a %%02d hour slot: %q", cfg.Telemetry.SnapshotURLTemplate)
	}
	Config = cfg
	return nil
}

// applyEnv lets deployment environments override the file without editing
// it. Only the knobs that differ per environment are exposed this way.
func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("SNAPSHOT_URL_TEMPLATE"); v != "" {
		cfg.Telemetry.SnapshotURLTemplate = v
	}
	if v := os.Getenv("EVENTS_FEED_URL"); v != "" {
		cfg.Events.FeedURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	if cfg.Telemetry.WindowHours == 0 {
		cfg.Telemetry.WindowHours = 24
	}
	if cfg.Telemetry.TimeoutMS == 0 {
		cfg.Telemetry.TimeoutMS = 8000
	}
	if cfg.Events.TimeoutMS == 0 {
		cfg.Events.TimeoutMS = 15000
	}
	if cfg.Analysis.ThresholdKM == 0 {
		cfg.Analysis.ThresholdKM = 100
	}
	if cfg.Analysis.MaxHopKM == 0 {
		cfg.Analysis.MaxHopKM = 800
	}
	if cfg.Analysis.CutoffHours == 0 {
		cfg.Analysis.CutoffHours = 24
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
}
