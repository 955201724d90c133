package gateway

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"riot-stats-hub/internal/routing"
)

func (s *Server) registerLorRoutes(lor *gin.RouterGroup) {
	lor.GET("/ranked/:region", s.lorRegionRoute(func(*gin.Context) string {
		return "/lor/ranked/v1/leaderboards"
	}))
	lor.GET("/matches/:region/:puuid", s.lorRegionRoute(func(c *gin.Context) string {
		return "/lor/match/v1/matches/by-puuid/" + c.Param("puuid") + "/ids"
	}))
	lor.GET("/match/:region/:matchId", s.lorRegionRoute(func(c *gin.Context) string {
		return "/lor/match/v1/matches/" + url.PathEscape(c.Param("matchId"))
	}))
	// Deck and inventory endpoints need an OAuth2 access token upstream,
	// so they only succeed for keys with RSO entitlements.
	lor.GET("/decks/:region", s.lorRegionRoute(func(*gin.Context) string {
		return "/lor/deck/v1/decks/me"
	}))
	lor.GET("/inventory/:region", s.lorRegionRoute(func(*gin.Context) string {
		return "/lor/inventory/v1/cards/me"
	}))
	lor.GET("/status/:region", s.lorRegionRoute(func(*gin.Context) string {
		return "/lor/status/v1/platform-data"
	}))
}

func (s *Server) lorRegionRoute(path func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host, ok := routing.LorRegionHost(c.Param("region"))
		if !ok {
			invalidCode(c, "Invalid region")
			return
		}
		s.forward(c, host, path(c))
	}
}
