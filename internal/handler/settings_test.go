package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/acala-trade/acala/internal/config"
	"github.com/acala-trade/acala/internal/middleware"
	"github.com/acala-trade/acala/internal/service"
	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	return &config.Config{
		Venues: map[config.VenueName]config.VenueConfig{
			config.VenueBinance: {
				APIKey:       "binance-key-123",
				APISecret:    "binance-secret",
				Enabled:      true,
				RateLimit:    1200,
				RateInterval: time.Minute,
				Timeout:      10 * time.Second,
			},
			config.VenueCoinbase: {
				Enabled:      true,
				RateLimit:    10,
				RateInterval: time.Second,
				Timeout:      10 * time.Second,
			},
		},
		Learning: config.LearningConfig{
			LearningRate:    0.001,
			DiscountFactor:  0.95,
			ExplorationRate: 0.1,
			BatchSize:       64,
			MemoryCapacity:  10000,
			UpdateFrequency: 100,
		},
		Risk: config.RiskConfig{
			MinTradeSize:      10,
			MaxPositionSize:   1000,
			RiskPerTrade:      0.02,
			SlippageTolerance: 0.005,
		},
		TradingPairs: []string{"BTC/USDT", "ETH/USDT"},
		PerfWindows:  map[string]time.Duration{"daily": 24 * time.Hour},
	}
}

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewSettingsHandler(cfg, service.NewVenueManager(cfg))
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	v1 := router.Group("/v1")
	v1.GET("/settings", h.GetSettings)
	v1.GET("/venues", h.ListVenues)
	v1.GET("/venues/:name", h.GetVenue)
	v1.GET("/limits", h.GetLimits)
	return router
}

func TestGetSettingsRedactsCredentials(t *testing.T) {
	router := testRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "binance-secret") {
		t.Fatalf("expected api secret to be redacted")
	}
	if strings.Contains(body, "binance-key-123") {
		t.Fatalf("expected api key to be masked")
	}

	var resp struct {
		Venues []struct {
			Name           string `json:"name"`
			HasCredentials bool   `json:"has_credentials"`
		} `json:"venues"`
		TradingPairs []string `json:"trading_pairs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(resp.Venues) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(resp.Venues))
	}
	if resp.Venues[0].Name != "binance" || !resp.Venues[0].HasCredentials {
		t.Fatalf("unexpected venue view: %+v", resp.Venues[0])
	}
	if len(resp.TradingPairs) != 2 {
		t.Fatalf("expected 2 trading pairs, got %d", len(resp.TradingPairs))
	}
}

func TestGetVenueUnknownReturns404(t *testing.T) {
	// The error middleware logs the 404; keep the lazy logger out of the
	// source tree.
	t.Setenv("ACALA_LOG_FILE", filepath.Join(t.TempDir(), "acala.log"))

	router := testRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/kraken", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown venue, got %d", rec.Code)
	}
}

func TestGetLimits(t *testing.T) {
	router := testRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/limits", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Risk struct {
			MinTradeSize string `json:"min_trade_size"`
		} `json:"risk"`
		Pairs []struct {
			Base  string `json:"base"`
			Quote string `json:"quote"`
		} `json:"pairs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp.Risk.MinTradeSize != "10" {
		t.Fatalf("expected min trade size 10, got %q", resp.Risk.MinTradeSize)
	}
	if len(resp.Pairs) != 2 || resp.Pairs[0].Base != "BTC" || resp.Pairs[0].Quote != "USDT" {
		t.Fatalf("unexpected pairs: %+v", resp.Pairs)
	}
}
