package service

import (
	"testing"
	"time"

	"github.com/acala-trade/acala/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestVenueManagerLimiters(t *testing.T) {
	cfg := &config.Config{
		Venues: map[config.VenueName]config.VenueConfig{
			config.VenueBinance:  {Enabled: true, RateLimit: 2, RateInterval: time.Hour},
			config.VenueCoinbase: {Enabled: false, RateLimit: 10, RateInterval: time.Second},
		},
	}
	m := NewVenueManager(cfg)

	assert.Equal(t, []config.VenueName{config.VenueBinance}, m.EnabledVenues())

	// burst of two, then the hour-long refill window rejects
	assert.True(t, m.Allow(config.VenueBinance))
	assert.True(t, m.Allow(config.VenueBinance))
	assert.False(t, m.Allow(config.VenueBinance))

	// unknown venues have no limiter and are never allowed
	assert.False(t, m.Allow("kraken"))

	venue, ok := m.Venue(config.VenueCoinbase)
	assert.True(t, ok)
	assert.False(t, venue.Enabled)
}

func TestVenueManagerUnlimitedWhenUnconfigured(t *testing.T) {
	cfg := &config.Config{
		Venues: map[config.VenueName]config.VenueConfig{
			config.VenueBinance: {Enabled: true},
		},
	}
	m := NewVenueManager(cfg)

	for i := 0; i < 100; i++ {
		assert.True(t, m.Allow(config.VenueBinance))
	}
}
