package handler

import (
	"net/http"

	"github.com/acala-trade/acala/internal/config"
	"github.com/acala-trade/acala/internal/model"
	"github.com/acala-trade/acala/internal/pkg/apperrors"
	"github.com/acala-trade/acala/internal/pkg/metrics"
	"github.com/acala-trade/acala/internal/service"
	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the read-only ops view of the loaded configuration.
type SettingsHandler struct {
	cfg    *config.Config
	venues *service.VenueManager
}

func NewSettingsHandler(cfg *config.Config, venues *service.VenueManager) *SettingsHandler {
	return &SettingsHandler{cfg: cfg, venues: venues}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, model.SettingsFromConfig(h.cfg))
}

// CheckSettings re-runs a full load against the current environment and
// reports whether it still validates. The served aggregate is never swapped;
// this only surfaces env drift ahead of the next restart.
func (h *SettingsHandler) CheckSettings(c *gin.Context) {
	if _, err := config.Load(); err != nil {
		metrics.SettingsLoads.WithLabelValues("error").Inc()
		appErr := apperrors.Wrap(err)
		if appErr.Field != "" {
			metrics.ValidationFailures.WithLabelValues(appErr.Field).Inc()
		}
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": appErr})
		return
	}
	metrics.SettingsLoads.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *SettingsHandler) ListVenues(c *gin.Context) {
	out := make([]model.Venue, 0, len(h.cfg.Venues))
	for _, name := range config.VenueNames() {
		if venue, ok := h.venues.Venue(name); ok {
			out = append(out, model.VenueFromConfig(name, venue))
		}
	}
	c.JSON(http.StatusOK, gin.H{"venues": out})
}

func (h *SettingsHandler) GetVenue(c *gin.Context) {
	name := config.VenueName(c.Param("name"))
	venue, ok := h.venues.Venue(name)
	if !ok {
		_ = c.Error(apperrors.NewNotFound("unknown venue " + c.Param("name")))
		return
	}
	c.JSON(http.StatusOK, model.VenueFromConfig(name, venue))
}

func (h *SettingsHandler) GetLimits(c *gin.Context) {
	pairs := make([]model.Pair, 0, len(h.cfg.TradingPairs))
	for _, symbol := range h.cfg.TradingPairs {
		pair, err := model.ParsePair(symbol)
		if err != nil {
			_ = c.Error(err)
			return
		}
		pairs = append(pairs, pair)
	}
	c.JSON(http.StatusOK, gin.H{
		"risk":  model.RiskLimitsFromConfig(h.cfg.Risk),
		"pairs": pairs,
	})
}
