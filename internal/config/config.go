package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/acala-trade/acala/internal/pkg/apperrors"
	"github.com/spf13/viper"
)

// Config is the aggregate settings root for the trading system. It is built
// once at process start by Load and treated as immutable afterwards.
type Config struct {
	Server       ServerConfig              `mapstructure:"server"`
	Log          LogConfig                 `mapstructure:"log"`
	Firebase     FirebaseConfig            `mapstructure:"firebase"`
	Venues       map[VenueName]VenueConfig `mapstructure:"venues"`
	Learning     LearningConfig            `mapstructure:"learning"`
	Risk         RiskConfig                `mapstructure:"risk"`
	Ops          OpsConfig                 `mapstructure:"ops"`
	TradingPairs []string                  `mapstructure:"trading_pairs"`
	PerfWindows  map[string]time.Duration  `mapstructure:"perf_windows"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// FirebaseConfig carries connection values only; nothing in this service
// opens a Firebase connection.
type FirebaseConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	DatabaseURL     string `mapstructure:"database_url"`
	CredentialsPath string `mapstructure:"credentials"`
}

type RiskConfig struct {
	MinTradeSize      float64 `mapstructure:"min_trade_size"`     // quote currency
	MaxPositionSize   float64 `mapstructure:"max_position_size"`  // quote currency
	RiskPerTrade      float64 `mapstructure:"risk_per_trade"`     // fraction of equity, e.g. 0.02
	SlippageTolerance float64 `mapstructure:"slippage_tolerance"` // e.g. 0.005 (0.5%)
}

// OpsConfig holds operational intervals consumed by collaborating services.
type OpsConfig struct {
	DataRefresh time.Duration `mapstructure:"data_refresh"`
	Heartbeat   time.Duration `mapstructure:"heartbeat"`
	RetryCount  int           `mapstructure:"retry_count"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
}

// LookupEnv resolves one environment variable. The second return mirrors
// os.LookupEnv so a plain map can stand in during tests.
type LookupEnv func(key string) (string, bool)

type options struct {
	lookup     LookupEnv
	configFile string
}

type Option func(*options)

// WithEnv injects the environment accessor used by Load.
func WithEnv(lookup LookupEnv) Option {
	return func(o *options) { o.lookup = lookup }
}

// WithConfigFile pins Load to a specific config file instead of the default
// search path.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// envOverrides maps the documented environment variables onto settings keys.
// Environment values win over file values for exactly these keys.
var envOverrides = map[string]string{
	"FIREBASE_PROJECT_ID":   "firebase.project_id",
	"FIREBASE_DATABASE_URL": "firebase.database_url",
	"FIREBASE_CREDENTIALS":  "firebase.credentials",
	"BINANCE_API_KEY":       "venues.binance.api_key",
	"BINANCE_API_SECRET":    "venues.binance.api_secret",
	"COINBASE_API_KEY":      "venues.coinbase.api_key",
	"COINBASE_API_SECRET":   "venues.coinbase.api_secret",
	"ACALA_LOG_LEVEL":       "log.level",
	"ACALA_SERVER_PORT":     "server.port",
}

// Load builds the settings aggregate from defaults, an optional config file
// and the documented environment variables. Every invariant is checked here;
// on any violation no partial aggregate is returned. Load performs no
// logging, the entry point initializes the logger explicitly.
func Load(opts ...Option) (*Config, error) {
	o := options{lookup: os.LookupEnv}
	for _, apply := range opts {
		apply(&o)
	}

	v := viper.New()
	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
	} else {
		v.SetConfigName("acala")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.configFile != "" || !errors.As(err, &notFound) {
			return nil, apperrors.New(apperrors.ErrConfig, "failed to read config file", err)
		}
		// No config file found, defaults and env vars apply.
	}

	for envKey, cfgKey := range envOverrides {
		if val, ok := o.lookup(envKey); ok {
			v.Set(cfgKey, val)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.New(apperrors.ErrConfig, "failed to decode settings", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate runs every construction-time invariant: the venue set is the
// known fixed set, each venue's credential pair is consistent, and the
// learning hyperparameters are in range.
func (c *Config) validate() error {
	for name := range c.Venues {
		if !name.Valid() {
			return apperrors.NewValidation("venues", fmt.Sprintf("unknown venue %q", name))
		}
	}
	for _, name := range venueOrder {
		venue, ok := c.Venues[name]
		if !ok {
			return apperrors.NewValidation("venues", fmt.Sprintf("missing settings for venue %s", name))
		}
		if err := venue.validate(name); err != nil {
			return err
		}
	}
	return c.Learning.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")

	v.SetDefault("firebase.project_id", "acala-trading")
	v.SetDefault("firebase.database_url", "")
	v.SetDefault("firebase.credentials", "./serviceAccountKey.json")

	v.SetDefault("venues.binance.enabled", true)
	v.SetDefault("venues.binance.rate_limit", 1200)
	v.SetDefault("venues.binance.rate_interval", "1m")
	v.SetDefault("venues.binance.timeout", "10s")

	v.SetDefault("venues.coinbase.enabled", true)
	v.SetDefault("venues.coinbase.rate_limit", 10)
	v.SetDefault("venues.coinbase.rate_interval", "1s")
	v.SetDefault("venues.coinbase.timeout", "10s")

	v.SetDefault("learning.learning_rate", 0.001)
	v.SetDefault("learning.discount_factor", 0.95)
	v.SetDefault("learning.exploration_rate", 0.1)
	v.SetDefault("learning.batch_size", 64)
	v.SetDefault("learning.memory_capacity", 10000)
	v.SetDefault("learning.update_frequency", 100)

	v.SetDefault("risk.min_trade_size", 10.0)
	v.SetDefault("risk.max_position_size", 1000.0)
	v.SetDefault("risk.risk_per_trade", 0.02)
	v.SetDefault("risk.slippage_tolerance", 0.005)

	v.SetDefault("ops.data_refresh", "5s")
	v.SetDefault("ops.heartbeat", "30s")
	v.SetDefault("ops.retry_count", 3)
	v.SetDefault("ops.retry_delay", "5s")

	v.SetDefault("trading_pairs", []string{"BTC/USDT", "ETH/USDT", "BNB/USDT", "SOL/USDT", "ADA/USDT"})

	v.SetDefault("perf_windows.daily", "24h")
	v.SetDefault("perf_windows.weekly", "168h")
	v.SetDefault("perf_windows.monthly", "720h")
}
