// Command statshub is a terminal consumer of the gateway. It resolves
// a Riot ID, aggregates the player's profile and recent matches, and
// prints the derived summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"riot-stats-hub/internal/cache"
	"riot-stats-hub/internal/client"
	"riot-stats-hub/internal/constants"
	"riot-stats-hub/internal/ddragon"
	"riot-stats-hub/internal/domain"
	"riot-stats-hub/internal/service"
	"riot-stats-hub/internal/stats"
)

func main() {
	gatewayURL := flag.String("gateway", "http://localhost:3001", "base URL of the stats gateway")
	platform := flag.String("platform", "na1", "platform code (na1, euw1, kr, ...)")
	pages := flag.Int("pages", 0, "extra match history pages to load")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if flag.NArg() != 1 || !strings.Contains(flag.Arg(0), "#") {
		fmt.Fprintln(os.Stderr, "usage: statshub [flags] <gameName>#<tagLine>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	riotID := strings.SplitN(flag.Arg(0), "#", 2)
	ctx := context.Background()

	gw := client.New(*gatewayURL, logger)
	svc := service.NewPlayerService(gw, logger)
	dd := ddragon.NewClient(
		cache.NewTTLCache[string, string](constants.StaticCacheMax, constants.StaticCacheTTL),
		cache.NewTTLCache[string, map[int]ddragon.Champion](constants.StaticCacheMax, constants.StaticCacheTTL),
		logger,
	)

	session, err := svc.FetchPlayer(ctx, *platform, riotID[0], riotID[1])
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load player")
	}
	for i := 0; i < *pages; i++ {
		if err := svc.LoadMore(ctx, session); err != nil {
			logger.Fatal().Err(err).Msg("failed to load more matches")
		}
	}

	printSession(ctx, session, dd)
}

func printSession(ctx context.Context, session *domain.PlayerSession, dd *ddragon.Client) {
	account := session.Account
	fmt.Printf("%s#%s (%s / %s)\n", account.GameName, account.TagLine, session.Platform, session.Region)
	if session.Summoner != nil {
		fmt.Printf("  Level %d\n", session.Summoner.SummonerLevel)
	}

	for _, entry := range session.LeagueEntries {
		fmt.Printf("  %s: %s %s, %d LP (%dW/%dL)\n",
			entry.QueueType, entry.Tier, entry.Rank, entry.LeaguePoints, entry.Wins, entry.Losses)
	}

	if session.ActiveGame != nil {
		fmt.Printf("  In game: %s (game %d)\n", session.ActiveGame.GameMode, session.ActiveGame.GameID)
	} else {
		fmt.Println("  Not in game")
	}

	if len(session.Mastery) > 0 {
		fmt.Println("\nTop mastery:")
		for _, m := range session.Mastery {
			fmt.Printf("  %-16s level %d, %d pts\n",
				dd.ChampionName(ctx, m.ChampionID), m.ChampionLevel, m.ChampionPoints)
		}
	}

	if session.Stats == nil || len(session.Matches) == 0 {
		fmt.Println("\nNo recent matches.")
		return
	}

	st := session.Stats
	fmt.Printf("\nLast %d matches:\n", len(session.Matches))
	fmt.Printf("  Win rate: %d%% (%dW/%dL)\n", st.WinRate, st.Wins, st.Losses)
	fmt.Printf("  KDA:      %.1f / %.1f / %.1f (%.2f)\n", st.AvgKills, st.AvgDeaths, st.AvgAssists, st.KDARatio)
	fmt.Printf("  CS/min:   %.1f\n", st.CSPerMin)
	fmt.Printf("  Kill participation: %d%%\n", st.KillParticipation)

	if played := stats.MostPlayed(session.Matches, account.PUUID, 3); len(played) > 0 {
		fmt.Println("\nMost played:")
		for _, p := range played {
			fmt.Printf("  %-16s %d games, %d%% win rate\n",
				dd.ChampionName(ctx, p.ChampionID), p.Games, p.WinRate)
		}
	}
}
