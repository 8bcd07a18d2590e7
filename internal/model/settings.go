package model

import (
	"strings"

	"github.com/acala-trade/acala/internal/config"
)

// Venue is the externally visible view of one venue's settings. The API key
// is masked and the secret is never echoed.
type Venue struct {
	Name           string `json:"name"`
	Enabled        bool   `json:"enabled"`
	HasCredentials bool   `json:"has_credentials"`
	APIKey         string `json:"api_key,omitempty"`
	RateLimit      int    `json:"rate_limit"`
	RateInterval   string `json:"rate_interval"`
	Timeout        string `json:"timeout"`
}

func VenueFromConfig(name config.VenueName, cfg config.VenueConfig) Venue {
	return Venue{
		Name:           string(name),
		Enabled:        cfg.Enabled,
		HasCredentials: cfg.HasCredentials(),
		APIKey:         maskKey(cfg.APIKey),
		RateLimit:      cfg.RateLimit,
		RateInterval:   cfg.RateInterval.String(),
		Timeout:        cfg.Timeout.String(),
	}
}

type Learning struct {
	LearningRate    float64 `json:"learning_rate"`
	DiscountFactor  float64 `json:"discount_factor"`
	ExplorationRate float64 `json:"exploration_rate"`
	BatchSize       int     `json:"batch_size"`
	MemoryCapacity  int     `json:"memory_capacity"`
	UpdateFrequency int     `json:"update_frequency"`
}

type Ops struct {
	DataRefresh string `json:"data_refresh"`
	Heartbeat   string `json:"heartbeat"`
	RetryCount  int    `json:"retry_count"`
	RetryDelay  string `json:"retry_delay"`
}

type Firebase struct {
	ProjectID       string `json:"project_id"`
	DatabaseURL     string `json:"database_url,omitempty"`
	CredentialsPath string `json:"credentials_path"`
}

// Settings is the redacted view of the full aggregate served by the ops API.
type Settings struct {
	Venues       []Venue           `json:"venues"`
	Learning     Learning          `json:"learning"`
	Risk         RiskLimits        `json:"risk"`
	Ops          Ops               `json:"ops"`
	Firebase     Firebase          `json:"firebase"`
	TradingPairs []string          `json:"trading_pairs"`
	PerfWindows  map[string]string `json:"perf_windows"`
}

func SettingsFromConfig(cfg *config.Config) Settings {
	venues := make([]Venue, 0, len(cfg.Venues))
	for _, name := range config.VenueNames() {
		venues = append(venues, VenueFromConfig(name, cfg.Venues[name]))
	}

	windows := make(map[string]string, len(cfg.PerfWindows))
	for name, d := range cfg.PerfWindows {
		windows[name] = d.String()
	}

	return Settings{
		Venues: venues,
		Learning: Learning{
			LearningRate:    cfg.Learning.LearningRate,
			DiscountFactor:  cfg.Learning.DiscountFactor,
			ExplorationRate: cfg.Learning.ExplorationRate,
			BatchSize:       cfg.Learning.BatchSize,
			MemoryCapacity:  cfg.Learning.MemoryCapacity,
			UpdateFrequency: cfg.Learning.UpdateFrequency,
		},
		Risk: RiskLimitsFromConfig(cfg.Risk),
		Ops: Ops{
			DataRefresh: cfg.Ops.DataRefresh.String(),
			Heartbeat:   cfg.Ops.Heartbeat.String(),
			RetryCount:  cfg.Ops.RetryCount,
			RetryDelay:  cfg.Ops.RetryDelay.String(),
		},
		Firebase: Firebase{
			ProjectID:       cfg.Firebase.ProjectID,
			DatabaseURL:     cfg.Firebase.DatabaseURL,
			CredentialsPath: cfg.Firebase.CredentialsPath,
		},
		TradingPairs: append([]string(nil), cfg.TradingPairs...),
		PerfWindows:  windows,
	}
}

// maskKey keeps a short recognizable prefix so operators can tell keys apart.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
