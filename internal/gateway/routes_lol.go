package gateway

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"riot-stats-hub/internal/constants"
	"riot-stats-hub/internal/riot"
	"riot-stats-hub/internal/routing"
)

func (s *Server) registerLoLRoutes(api *gin.RouterGroup) {
	api.GET("/account/:region/by-puuid/:puuid", s.accountByPUUID)
	api.GET("/account/:region/:gameName/:tagLine", s.accountByRiotID)
	api.GET("/summoner/:platform/:puuid", s.summonerByPUUID)
	api.GET("/league/:platform/:puuid", s.leagueEntries)
	api.GET("/mastery/:platform/:puuid", s.topMastery)
	api.GET("/spectator/:platform/:puuid", s.activeGame)
	api.GET("/matches/:region/:puuid", s.matchIDs)
	api.GET("/match/:region/:matchId", s.matchDetail)
	api.GET("/league-tier/:platform/challenger", s.apexLeague("challengerleagues"))
	api.GET("/league-tier/:platform/grandmaster", s.apexLeague("grandmasterleagues"))
	api.GET("/league-tier/:platform/master", s.apexLeague("masterleagues"))
	api.GET("/lol-status/:platform", s.platformStatus)
	api.GET("/champion-rotations/:platform", s.championRotations)
}

func (s *Server) accountByPUUID(c *gin.Context) {
	host, ok := routing.RegionHost(c.Param("region"))
	if !ok {
		invalidCode(c, "Invalid region")
		return
	}
	s.forward(c, host, "/riot/account/v1/accounts/by-puuid/"+c.Param("puuid"))
}

func (s *Server) accountByRiotID(c *gin.Context) {
	host, ok := routing.RegionHost(c.Param("region"))
	if !ok {
		invalidCode(c, "Invalid region")
		return
	}
	// Riot IDs can carry spaces and non-ASCII characters.
	path := "/riot/account/v1/accounts/by-riot-id/" +
		url.PathEscape(c.Param("gameName")) + "/" + url.PathEscape(c.Param("tagLine"))
	s.forward(c, host, path)
}

func (s *Server) summonerByPUUID(c *gin.Context) {
	host, ok := routing.PlatformHost(c.Param("platform"))
	if !ok {
		invalidCode(c, "Invalid platform")
		return
	}
	s.forward(c, host, "/lol/summoner/v4/summoners/by-puuid/"+c.Param("puuid"))
}

func (s *Server) leagueEntries(c *gin.Context) {
	host, ok := routing.PlatformHost(c.Param("platform"))
	if !ok {
		invalidCode(c, "Invalid platform")
		return
	}
	s.forward(c, host, "/lol/league/v4/entries/by-puuid/"+c.Param("puuid"))
}

func (s *Server) topMastery(c *gin.Context) {
	host, ok := routing.PlatformHost(c.Param("platform"))
	if !ok {
		invalidCode(c, "Invalid platform")
		return
	}
	count := c.DefaultQuery("count", strconv.Itoa(constants.DefaultMasteryCount))
	path := "/lol/champion-mastery/v4/champion-masteries/by-puuid/" +
		c.Param("puuid") + "/top?count=" + url.QueryEscape(count)
	s.forward(c, host, path)
}

// activeGame maps an upstream 404 to a 200 null body, so "not in a
// game" is an answer rather than an error.
func (s *Server) activeGame(c *gin.Context) {
	host, ok := routing.PlatformHost(c.Param("platform"))
	if !ok {
		invalidCode(c, "Invalid platform")
		return
	}

	body, err := s.forwarder.Forward(c.Request.Context(),
		host, "/lol/spectator/v5/active-games/by-summoner/"+c.Param("puuid"))
	if err != nil {
		if riot.IsNotFound(err) {
			c.JSON(200, nil)
			return
		}
		s.respondError(c, err)
		return
	}
	c.Data(200, "application/json; charset=utf-8", body)
}

func (s *Server) matchIDs(c *gin.Context) {
	host, ok := routing.RegionHost(c.Param("region"))
	if !ok {
		invalidCode(c, "Invalid region")
		return
	}

	query := url.Values{}
	query.Set("start", c.DefaultQuery("start", strconv.Itoa(constants.DefaultMatchStart)))
	query.Set("count", c.DefaultQuery("count", strconv.Itoa(constants.DefaultMatchCount)))
	if queue := c.Query("queue"); queue != "" {
		query.Set("queue", queue)
	}
	if matchType := c.Query("type"); matchType != "" {
		query.Set("type", matchType)
	}

	path := "/lol/match/v5/matches/by-puuid/" + c.Param("puuid") + "/ids?" + query.Encode()
	s.forward(c, host, path)
}

func (s *Server) matchDetail(c *gin.Context) {
	region := c.Param("region")
	host, ok := routing.RegionHost(region)
	if !ok {
		invalidCode(c, "Invalid region")
		return
	}
	matchID := c.Param("matchId")
	s.forwardMatch(c, host, region, matchID, "/lol/match/v5/matches/"+matchID)
}

func (s *Server) apexLeague(segment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host, ok := routing.PlatformHost(c.Param("platform"))
		if !ok {
			invalidCode(c, "Invalid platform")
			return
		}
		queue := c.DefaultQuery("queue", constants.DefaultQueue)
		s.forward(c, host, "/lol/league/v4/"+segment+"/by-queue/"+url.PathEscape(queue))
	}
}

func (s *Server) platformStatus(c *gin.Context) {
	host, ok := routing.PlatformHost(c.Param("platform"))
	if !ok {
		invalidCode(c, "Invalid platform")
		return
	}
	s.forward(c, host, "/lol/status/v4/platform-data")
}

func (s *Server) championRotations(c *gin.Context) {
	host, ok := routing.PlatformHost(c.Param("platform"))
	if !ok {
		invalidCode(c, "Invalid platform")
		return
	}
	s.forward(c, host, "/lol/platform/v3/champion-rotations")
}
