package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"riot-stats-hub/internal/domain"
)

type fakeGateway struct {
	mu sync.Mutex

	account     *domain.Account
	summoner    *domain.Summoner
	entries     []domain.LeagueEntry
	mastery     []domain.MasteryEntry
	activeGame  *domain.ActiveGame
	matchPages  map[int][]string
	matches     map[string]*domain.MatchRecord
	failMatches map[string]bool

	resolveErr error
	activeErr  error

	matchIDCalls [][2]int
}

func (f *fakeGateway) ResolveAccount(_ context.Context, _, gameName, tagLine string) (*domain.Account, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.account, nil
}

func (f *fakeGateway) Summoner(_ context.Context, _, _ string) (*domain.Summoner, error) {
	return f.summoner, nil
}

func (f *fakeGateway) LeagueEntries(_ context.Context, _, _ string) ([]domain.LeagueEntry, error) {
	return f.entries, nil
}

func (f *fakeGateway) Mastery(_ context.Context, _, _ string, _ int) ([]domain.MasteryEntry, error) {
	return f.mastery, nil
}

func (f *fakeGateway) ActiveGame(_ context.Context, _, _ string) (*domain.ActiveGame, error) {
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	return f.activeGame, nil
}

func (f *fakeGateway) MatchIDs(_ context.Context, _, _ string, start, count int) ([]string, error) {
	f.mu.Lock()
	f.matchIDCalls = append(f.matchIDCalls, [2]int{start, count})
	f.mu.Unlock()
	return f.matchPages[start], nil
}

func (f *fakeGateway) Match(_ context.Context, _, matchID string) (*domain.MatchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMatches[matchID] {
		return nil, errors.New("upstream unavailable")
	}
	record, ok := f.matches[matchID]
	if !ok {
		return nil, errors.New("unknown match")
	}
	return record, nil
}

func testMatch(matchID string, win bool) *domain.MatchRecord {
	return &domain.MatchRecord{
		Metadata: domain.MatchMetadata{MatchID: matchID},
		Info: domain.MatchInfo{
			GameDuration: 1800,
			Participants: []domain.Participant{
				{PUUID: "puuid-1", TeamID: 100, Win: win, Kills: 5, Deaths: 2, Assists: 5,
					TotalMinionsKilled: 150, NeutralMinionsKilled: 30},
				{PUUID: "teammate", TeamID: 100, Win: win, Kills: 5},
				{PUUID: "enemy", TeamID: 200, Win: !win},
			},
		},
	}
}

func newFakeGateway() *fakeGateway {
	ids := []string{"NA1_1", "NA1_2", "NA1_3", "NA1_4", "NA1_5"}
	matches := make(map[string]*domain.MatchRecord, len(ids))
	for i, id := range ids {
		matches[id] = testMatch(id, i%2 == 0)
	}
	return &fakeGateway{
		account:  &domain.Account{PUUID: "puuid-1", GameName: "Player", TagLine: "NA1"},
		summoner: &domain.Summoner{PUUID: "puuid-1", SummonerLevel: 250},
		entries: []domain.LeagueEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II"},
		},
		mastery:    []domain.MasteryEntry{{ChampionID: 103, ChampionPoints: 120000}},
		matchPages: map[int][]string{0: ids},
		matches:    matches,
	}
}

func TestFetchPlayer(t *testing.T) {
	gw := newFakeGateway()
	svc := NewPlayerService(gw, zerolog.Nop())

	session, err := svc.FetchPlayer(context.Background(), "na1", "Player", "NA1")
	if err != nil {
		t.Fatalf("FetchPlayer() error = %v", err)
	}

	if session.ID == "" {
		t.Error("session ID is empty")
	}
	if session.Region != "americas" || session.Platform != "na1" {
		t.Errorf("routing = %s/%s", session.Region, session.Platform)
	}
	if session.Summoner == nil || session.Summoner.SummonerLevel != 250 {
		t.Errorf("summoner = %+v", session.Summoner)
	}
	if len(session.LeagueEntries) != 1 || len(session.Mastery) != 1 {
		t.Errorf("entries = %d mastery = %d", len(session.LeagueEntries), len(session.Mastery))
	}
	if len(session.Matches) != 5 {
		t.Fatalf("matches = %d, want 5", len(session.Matches))
	}
	if session.Stats == nil || session.Stats.Wins != 3 || session.Stats.Losses != 2 {
		t.Errorf("stats = %+v", session.Stats)
	}
}

func TestFetchPlayerResolveFails(t *testing.T) {
	gw := newFakeGateway()
	gw.resolveErr = errors.New("gateway error 404: not found")
	svc := NewPlayerService(gw, zerolog.Nop())

	if _, err := svc.FetchPlayer(context.Background(), "na1", "Missing", "NA1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestFetchPlayerActiveGameBestEffort(t *testing.T) {
	gw := newFakeGateway()
	gw.activeErr = errors.New("spectator unavailable")
	svc := NewPlayerService(gw, zerolog.Nop())

	session, err := svc.FetchPlayer(context.Background(), "na1", "Player", "NA1")
	if err != nil {
		t.Fatalf("FetchPlayer() error = %v", err)
	}
	if session.ActiveGame != nil {
		t.Errorf("activeGame = %+v, want nil", session.ActiveGame)
	}
}

func TestFetchPlayerPartialMatchFailures(t *testing.T) {
	gw := newFakeGateway()
	gw.failMatches = map[string]bool{"NA1_3": true}
	svc := NewPlayerService(gw, zerolog.Nop())

	session, err := svc.FetchPlayer(context.Background(), "na1", "Player", "NA1")
	if err != nil {
		t.Fatalf("FetchPlayer() error = %v", err)
	}

	if len(session.Matches) != 4 {
		t.Fatalf("matches = %d, want 4", len(session.Matches))
	}
	// Survivors keep the match ID order.
	want := []string{"NA1_1", "NA1_2", "NA1_4", "NA1_5"}
	for i, id := range want {
		if session.Matches[i].Metadata.MatchID != id {
			t.Errorf("matches[%d] = %s, want %s", i, session.Matches[i].Metadata.MatchID, id)
		}
	}
	// Stats are computed over the four located matches.
	if session.Stats.Wins+session.Stats.Losses != 4 {
		t.Errorf("wins+losses = %d, want 4", session.Stats.Wins+session.Stats.Losses)
	}
}

func TestLoadMore(t *testing.T) {
	gw := newFakeGateway()
	more := []string{"NA1_6", "NA1_7"}
	for i, id := range more {
		gw.matches[id] = testMatch(id, i == 0)
	}
	gw.matchPages[5] = more
	svc := NewPlayerService(gw, zerolog.Nop())

	session, err := svc.FetchPlayer(context.Background(), "na1", "Player", "NA1")
	if err != nil {
		t.Fatalf("FetchPlayer() error = %v", err)
	}
	if err := svc.LoadMore(context.Background(), session); err != nil {
		t.Fatalf("LoadMore() error = %v", err)
	}

	if len(session.MatchIDs) != 7 || len(session.Matches) != 7 {
		t.Fatalf("ids = %d matches = %d", len(session.MatchIDs), len(session.Matches))
	}
	if session.Stats.Wins != 4 || session.Stats.Losses != 3 {
		t.Errorf("stats = %+v", session.Stats)
	}

	// The page request starts where the loaded IDs end.
	last := gw.matchIDCalls[len(gw.matchIDCalls)-1]
	if last != [2]int{5, 10} {
		t.Errorf("page request = %v, want [5 10]", last)
	}
}

func TestLoadMoreEmptyPage(t *testing.T) {
	gw := newFakeGateway()
	svc := NewPlayerService(gw, zerolog.Nop())

	session, err := svc.FetchPlayer(context.Background(), "na1", "Player", "NA1")
	if err != nil {
		t.Fatalf("FetchPlayer() error = %v", err)
	}

	before := fmt.Sprintf("%+v", session.Stats)
	if err := svc.LoadMore(context.Background(), session); err != nil {
		t.Fatalf("LoadMore() error = %v", err)
	}
	if len(session.MatchIDs) != 5 {
		t.Errorf("ids = %d, want 5", len(session.MatchIDs))
	}
	if after := fmt.Sprintf("%+v", session.Stats); after != before {
		t.Errorf("stats changed on empty page: %s -> %s", before, after)
	}
}
