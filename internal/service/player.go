package service

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"riot-stats-hub/internal/constants"
	"riot-stats-hub/internal/domain"
	"riot-stats-hub/internal/routing"
	"riot-stats-hub/internal/stats"
)

// GatewayClient is the slice of the gateway surface the aggregator
// needs. *client.Client satisfies it.
type GatewayClient interface {
	ResolveAccount(ctx context.Context, region, gameName, tagLine string) (*domain.Account, error)
	Summoner(ctx context.Context, platform, puuid string) (*domain.Summoner, error)
	LeagueEntries(ctx context.Context, platform, puuid string) ([]domain.LeagueEntry, error)
	Mastery(ctx context.Context, platform, puuid string, count int) ([]domain.MasteryEntry, error)
	ActiveGame(ctx context.Context, platform, puuid string) (*domain.ActiveGame, error)
	MatchIDs(ctx context.Context, region, puuid string, start, count int) ([]string, error)
	Match(ctx context.Context, region, matchID string) (*domain.MatchRecord, error)
}

// PlayerService assembles a full player view out of the per-endpoint
// gateway lookups.
type PlayerService struct {
	gateway GatewayClient
	logger  zerolog.Logger
}

func NewPlayerService(gateway GatewayClient, logger zerolog.Logger) *PlayerService {
	return &PlayerService{gateway: gateway, logger: logger}
}

// FetchPlayer resolves a Riot ID and loads profile, ranked standing,
// mastery, live-game state, and the first page of match history. The
// identity lookup and the profile block are required; the live-game
// probe and individual match details are best effort.
func (s *PlayerService) FetchPlayer(ctx context.Context, platform, gameName, tagLine string) (*domain.PlayerSession, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	region := routing.RegionForPlatform(platform)

	account, err := s.gateway.ResolveAccount(ctx, region, gameName, tagLine)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s#%s: %w", gameName, tagLine, err)
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	session := &domain.PlayerSession{
		ID:       sessionID,
		Region:   region,
		Platform: platform,
		Account:  account,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summoner, err := s.gateway.Summoner(gctx, platform, account.PUUID)
		if err != nil {
			return fmt.Errorf("failed to fetch summoner: %w", err)
		}
		session.Summoner = summoner
		return nil
	})
	g.Go(func() error {
		entries, err := s.gateway.LeagueEntries(gctx, platform, account.PUUID)
		if err != nil {
			return fmt.Errorf("failed to fetch league entries: %w", err)
		}
		session.LeagueEntries = entries
		return nil
	})
	g.Go(func() error {
		mastery, err := s.gateway.Mastery(gctx, platform, account.PUUID, constants.DefaultMasteryCount)
		if err != nil {
			return fmt.Errorf("failed to fetch mastery: %w", err)
		}
		session.Mastery = mastery
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Not being able to probe the live game never fails the load.
	game, err := s.gateway.ActiveGame(ctx, platform, account.PUUID)
	if err != nil {
		s.logger.Debug().Err(err).Str("puuid", account.PUUID).Msg("Active game probe failed")
	} else {
		session.ActiveGame = game
	}

	ids, err := s.gateway.MatchIDs(ctx, region, account.PUUID, constants.DefaultMatchStart, constants.DefaultMatchCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}
	session.MatchIDs = ids

	session.Matches = s.fetchMatches(ctx, region, ids)
	session.Stats = stats.Derive(session.Matches, account.PUUID)
	return session, nil
}

// LoadMore appends the next page of match history to the session and
// recomputes the derived stats over the full set. An empty page leaves
// the session untouched.
func (s *PlayerService) LoadMore(ctx context.Context, session *domain.PlayerSession) error {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	ids, err := s.gateway.MatchIDs(ctx, session.Region, session.Account.PUUID,
		len(session.MatchIDs), constants.LoadMoreMatchCount)
	if err != nil {
		return fmt.Errorf("failed to fetch match ids: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	session.MatchIDs = append(session.MatchIDs, ids...)
	session.Matches = append(session.Matches, s.fetchMatches(ctx, session.Region, ids)...)
	session.Stats = stats.Derive(session.Matches, session.Account.PUUID)
	return nil
}

// fetchMatches loads match details with bounded concurrency. Failed
// lookups are dropped, and the survivors keep the order of ids.
func (s *PlayerService) fetchMatches(ctx context.Context, region string, ids []string) []domain.MatchRecord {
	results := make([]*domain.MatchRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MatchFetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			record, err := s.gateway.Match(gctx, region, id)
			if err != nil {
				s.logger.Warn().Err(err).Str("match_id", id).Msg("Failed to fetch match")
				return nil
			}
			results[i] = record
			return nil
		})
	}
	// Item failures are swallowed above, so Wait cannot fail.
	_ = g.Wait()

	matches := make([]domain.MatchRecord, 0, len(ids))
	for _, record := range results {
		if record != nil {
			matches = append(matches, *record)
		}
	}
	return matches
}
