package gateway

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"riot-stats-hub/internal/constants"
	"riot-stats-hub/internal/routing"
)

func (s *Server) registerTFTRoutes(tft *gin.RouterGroup) {
	tft.GET("/summoner/:platform/:puuid", s.tftPlatformRoute(func(c *gin.Context) string {
		return "/tft/summoner/v1/summoners/by-puuid/" + c.Param("puuid")
	}))
	tft.GET("/league/:platform/:puuid", s.tftPlatformRoute(func(c *gin.Context) string {
		return "/tft/league/v1/entries/by-puuid/" + c.Param("puuid")
	}))
	tft.GET("/league-entries/:platform/:tier/:division", s.tftPlatformRoute(func(c *gin.Context) string {
		page := c.DefaultQuery("page", strconv.Itoa(constants.DefaultLadderPage))
		return "/tft/league/v1/entries/" + url.PathEscape(c.Param("tier")) + "/" +
			url.PathEscape(c.Param("division")) + "?page=" + url.QueryEscape(page)
	}))
	tft.GET("/league-by-id/:platform/:leagueId", s.tftPlatformRoute(func(c *gin.Context) string {
		return "/tft/league/v1/leagues/" + url.PathEscape(c.Param("leagueId"))
	}))
	tft.GET("/league-tier/:platform/challenger", s.tftPlatformRoute(func(*gin.Context) string {
		return "/tft/league/v1/challenger"
	}))
	tft.GET("/league-tier/:platform/grandmaster", s.tftPlatformRoute(func(*gin.Context) string {
		return "/tft/league/v1/grandmaster"
	}))
	tft.GET("/league-tier/:platform/master", s.tftPlatformRoute(func(*gin.Context) string {
		return "/tft/league/v1/master"
	}))
	tft.GET("/rated/:platform/:queue", s.tftPlatformRoute(func(c *gin.Context) string {
		return "/tft/league/v1/rated-ladders/" + url.PathEscape(c.Param("queue")) + "/top"
	}))
	tft.GET("/status/:platform", s.tftPlatformRoute(func(*gin.Context) string {
		return "/tft/status/v1/platform-data"
	}))

	tft.GET("/matches/:region/:puuid", s.tftMatchIDs)
	tft.GET("/match/:region/:matchId", s.tftMatchDetail)
}

// tftPlatformRoute wraps the shared platform validation around a path
// builder.
func (s *Server) tftPlatformRoute(path func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host, ok := routing.PlatformHost(c.Param("platform"))
		if !ok {
			invalidCode(c, "Invalid platform")
			return
		}
		s.forward(c, host, path(c))
	}
}

func (s *Server) tftMatchIDs(c *gin.Context) {
	host, ok := routing.RegionHost(c.Param("region"))
	if !ok {
		invalidCode(c, "Invalid region")
		return
	}

	query := url.Values{}
	query.Set("start", c.DefaultQuery("start", strconv.Itoa(constants.DefaultMatchStart)))
	query.Set("count", c.DefaultQuery("count", strconv.Itoa(constants.DefaultMatchCount)))

	path := "/tft/match/v1/matches/by-puuid/" + c.Param("puuid") + "/ids?" + query.Encode()
	s.forward(c, host, path)
}

func (s *Server) tftMatchDetail(c *gin.Context) {
	region := c.Param("region")
	host, ok := routing.RegionHost(region)
	if !ok {
		invalidCode(c, "Invalid region")
		return
	}
	matchID := c.Param("matchId")
	s.forwardMatch(c, host, region, matchID, "/tft/match/v1/matches/"+matchID)
}
