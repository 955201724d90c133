package gateway

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"riot-stats-hub/internal/constants"
	"riot-stats-hub/internal/routing"
)

func (s *Server) registerValRoutes(val *gin.RouterGroup) {
	val.GET("/content/:shard", s.valShardRoute(func(c *gin.Context) string {
		locale := c.DefaultQuery("locale", constants.DefaultValLocale)
		return "/val/content/v1/contents?locale=" + url.QueryEscape(locale)
	}))
	val.GET("/ranked/:shard/:actId", s.valShardRoute(func(c *gin.Context) string {
		query := url.Values{}
		query.Set("size", c.DefaultQuery("size", strconv.Itoa(constants.DefaultValSize)))
		query.Set("startIndex", c.DefaultQuery("startIndex", "0"))
		return "/val/ranked/v1/leaderboards/by-act/" + url.PathEscape(c.Param("actId")) + "?" + query.Encode()
	}))
	val.GET("/match/:shard/:matchId", s.valShardRoute(func(c *gin.Context) string {
		return "/val/match/v1/matches/" + url.PathEscape(c.Param("matchId"))
	}))
	val.GET("/matchlist/:shard/:puuid", s.valShardRoute(func(c *gin.Context) string {
		return "/val/match/v1/matchlists/by-puuid/" + c.Param("puuid")
	}))
	val.GET("/recent/:shard/:queue", s.valShardRoute(func(c *gin.Context) string {
		return "/val/match/v1/recent-matches/by-queue/" + url.PathEscape(c.Param("queue"))
	}))
	val.GET("/status/:shard", s.valShardRoute(func(*gin.Context) string {
		return "/val/status/v1/platform-data"
	}))
}

func (s *Server) valShardRoute(path func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host, ok := routing.ValShardHost(c.Param("shard"))
		if !ok {
			invalidCode(c, "Invalid shard")
			return
		}
		s.forward(c, host, path(c))
	}
}
