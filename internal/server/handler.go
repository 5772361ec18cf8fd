package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/model"
	"github.com/nao1215/walletscan/internal/pipeline"
)

// handleScan analyzes a wallet address and returns the exposure report.
// GET /api/scan/:address?network=mainnet
func (s *Server) handleScan(c *gin.Context) {
	address, err := model.NewAddress(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
		return
	}

	network := s.cfg.Network
	if raw := c.Query("network"); raw != "" {
		network = config.Network(raw)
		if !network.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid network, expected mainnet or devnet"})
			return
		}
	}

	report, err := s.scan(c.Request.Context(), address, network)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no on-chain data found for address"})
			return
		}
		s.logger.Error("scan failed",
			slog.String("address", address.Short()),
			slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleHealth returns service status and provider configuration for
// deployment checks. API keys themselves are never echoed.
// GET /api/health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"network":           string(s.cfg.Network),
		"heliusConfigured":  s.cfg.HeliusAPIKey != "",
		"birdeyeConfigured": s.cfg.BirdeyeAPIKey != "",
	})
}
