package config

import (
	"fmt"
	"time"

	"github.com/acala-trade/acala/internal/pkg/apperrors"
)

// VenueName identifies a supported external trading venue.
type VenueName string

const (
	VenueBinance  VenueName = "binance"
	VenueCoinbase VenueName = "coinbase"
)

// venueOrder fixes the iteration order for validation and listings.
var venueOrder = []VenueName{VenueBinance, VenueCoinbase}

// VenueNames returns the fixed venue set in listing order.
func VenueNames() []VenueName {
	names := make([]VenueName, len(venueOrder))
	copy(names, venueOrder)
	return names
}

func (n VenueName) Valid() bool {
	switch n {
	case VenueBinance, VenueCoinbase:
		return true
	}
	return false
}

// VenueConfig holds connection settings for one venue.
type VenueConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	APISecret    string        `mapstructure:"api_secret"`
	Enabled      bool          `mapstructure:"enabled"`
	RateLimit    int           `mapstructure:"rate_limit"` // requests per RateInterval
	RateInterval time.Duration `mapstructure:"rate_interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// HasCredentials reports whether a full key/secret pair is present.
func (c VenueConfig) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// A key without its paired secret can never authenticate, so it fails
// construction of the aggregate. Both present or both absent are valid.
func (c VenueConfig) validate(name VenueName) error {
	if c.APIKey != "" && c.APISecret == "" {
		return apperrors.NewValidation(
			fmt.Sprintf("venues.%s.api_secret", name),
			fmt.Sprintf("venue %s: api key set without a matching secret", name),
		)
	}
	return nil
}
