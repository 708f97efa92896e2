package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// TelemetryConfig describes the hourly snapshot feed. The URL template must
// contain a %02d slot for the hour index (0 = most recent hour).
type TelemetryConfig struct {
	SnapshotURLTemplate string `yaml:"snapshotURLTemplate" validate:"required"`
	WindowHours         int    `yaml:"windowHours" validate:"gte=0,lte=168"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// EventsConfig describes the detection feed tracks are scored against.
type EventsConfig struct {
	FeedURL   string `yaml:"feedURL" validate:"omitempty"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AnalysisConfig contains the geospatial gates applied at query time.
type AnalysisConfig struct {
	ThresholdKM float64 `yaml:"thresholdKM" validate:"gte=0"`
	MaxHopKM    float64 `yaml:"maxHopKM" validate:"gte=0"`
	CutoffHours int     `yaml:"cutoffHours" validate:"gte=0"`
}

// CacheConfig controls snapshot and response caching. An empty RedisAddr
// selects the in-process cache.
type CacheConfig struct {
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB" validate:"gte=0"`
	TTLSeconds    int    `yaml:"ttlSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Telemetry TelemetryConfig `yaml:"telemetry" validate:"required"`
	Events    EventsConfig    `yaml:"events"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Cache     CacheConfig     `yaml:"cache"`
}
