// Package gateway exposes the REST surface the dashboard talks to. It
// validates routing codes, forwards requests upstream with credentials
// attached, and relays upstream payloads without reshaping them.
package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"riot-stats-hub/internal/config"
	"riot-stats-hub/internal/riot"
)

const apiKeyPlaceholder = "RGAPI-xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"

// Forwarder performs an authenticated upstream GET. *riot.Client
// satisfies it.
type Forwarder interface {
	Forward(ctx context.Context, host, path string) ([]byte, error)
}

// MatchStore caches immutable match payloads. Get returns (nil, nil)
// on a miss.
type MatchStore interface {
	Get(ctx context.Context, matchID string) ([]byte, error)
	Put(ctx context.Context, matchID, region string, payload []byte) error
}

type Server struct {
	forwarder Forwarder
	matches   MatchStore
	logger    zerolog.Logger
	apiKeySet bool
}

func NewServer(cfg *config.Config, forwarder Forwarder, matches MatchStore, logger zerolog.Logger) *Server {
	return &Server{
		forwarder: forwarder,
		matches:   matches,
		logger:    logger,
		apiKeySet: cfg.RiotAPIKey != "" && cfg.RiotAPIKey != apiKeyPlaceholder,
	}
}

// RegisterRoutes mounts every route family under /api.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", s.health)

	s.registerLoLRoutes(api)
	s.registerTFTRoutes(api.Group("/tft"))
	s.registerValRoutes(api.Group("/val"))
	s.registerLorRoutes(api.Group("/lor"))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "online",
		"apiKeyConfigured": s.apiKeySet,
	})
}

// forward relays an upstream payload verbatim, translating failures
// into the {"error": ...} envelope.
func (s *Server) forward(c *gin.Context, host, path string) {
	body, err := s.forwarder.Forward(c.Request.Context(), host, path)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (s *Server) respondError(c *gin.Context, err error) {
	var apiErr *riot.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Upstream request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// forwardMatch serves finished-match payloads through the persistent
// cache. Cache read failures fall through to the upstream fetch, and
// cache write failures only log.
func (s *Server) forwardMatch(c *gin.Context, host, region, matchID, path string) {
	ctx := c.Request.Context()

	if s.matches != nil {
		payload, err := s.matches.Get(ctx, matchID)
		if err != nil {
			s.logger.Warn().Err(err).Str("match_id", matchID).Msg("Match cache read failed")
		}
		if payload != nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}

	body, err := s.forwarder.Forward(ctx, host, path)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if s.matches != nil {
		if err := s.matches.Put(ctx, matchID, region, body); err != nil {
			s.logger.Warn().Err(err).Str("match_id", matchID).Msg("Match cache write failed")
		}
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func invalidCode(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
