package service

import (
	"sync"

	"github.com/acala-trade/acala/internal/config"
	"github.com/acala-trade/acala/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

// VenueManager holds per-venue settings and outbound rate limiters built
// from each venue's configured requests-per-interval budget.
type VenueManager struct {
	mu       sync.RWMutex
	venues   map[config.VenueName]config.VenueConfig
	limiters map[config.VenueName]*rate.Limiter
}

func NewVenueManager(cfg *config.Config) *VenueManager {
	m := &VenueManager{
		venues:   make(map[config.VenueName]config.VenueConfig, len(cfg.Venues)),
		limiters: make(map[config.VenueName]*rate.Limiter, len(cfg.Venues)),
	}
	for name, venue := range cfg.Venues {
		m.venues[name] = venue
		m.limiters[name] = newLimiter(venue)
	}
	return m
}

func newLimiter(venue config.VenueConfig) *rate.Limiter {
	if venue.RateLimit <= 0 || venue.RateInterval <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	perSecond := float64(venue.RateLimit) / venue.RateInterval.Seconds()
	return rate.NewLimiter(rate.Limit(perSecond), venue.RateLimit)
}

// Venue returns the settings for one venue.
func (m *VenueManager) Venue(name config.VenueName) (config.VenueConfig, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	venue, ok := m.venues[name]
	return venue, ok
}

// EnabledVenues lists enabled venues in the fixed listing order.
func (m *VenueManager) EnabledVenues() []config.VenueName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var names []config.VenueName
	for _, name := range config.VenueNames() {
		if venue, ok := m.venues[name]; ok && venue.Enabled {
			names = append(names, name)
		}
	}
	return names
}

// Allow consumes one request token for the venue. A false return means the
// caller must back off; the rejection is counted.
func (m *VenueManager) Allow(name config.VenueName) bool {
	m.mu.RLock()
	limiter := m.limiters[name]
	m.mu.RUnlock()
	if limiter == nil {
		return false
	}
	if !limiter.Allow() {
		metrics.LimiterRejects.WithLabelValues(string(name)).Inc()
		return false
	}
	return true
}
