// Package stats reduces raw match records into the derived numbers shown on
// a player overview. Every function is pure: matches where the subject
// cannot be located in the participant list are skipped and never count
// toward a denominator, and empty input yields zeros rather than NaN.
package stats

import (
	"math"
	"sort"

	"riot-stats-hub/internal/domain"
)

type WinRate struct {
	Wins    int
	Losses  int
	WinRate int
}

type KDA struct {
	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64
	KDARatio   float64
}

func findParticipant(match *domain.MatchRecord, puuid string) *domain.Participant {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].PUUID == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

func CalcWinRate(matches []domain.MatchRecord, puuid string) WinRate {
	var wins, losses int
	for i := range matches {
		player := findParticipant(&matches[i], puuid)
		if player == nil {
			continue
		}
		if player.Win {
			wins++
		} else {
			losses++
		}
	}

	total := wins + losses
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(wins) / float64(total) * 100))
	}
	return WinRate{Wins: wins, Losses: losses, WinRate: rate}
}

// CalcAvgKDA averages kills, deaths, and assists per match, then computes
// the ratio from the averages. Zero average deaths is the perfect-KDA case:
// the ratio is kills+assists.
func CalcAvgKDA(matches []domain.MatchRecord, puuid string) KDA {
	var kills, deaths, assists, count int
	for i := range matches {
		player := findParticipant(&matches[i], puuid)
		if player == nil {
			continue
		}
		kills += player.Kills
		deaths += player.Deaths
		assists += player.Assists
		count++
	}

	if count == 0 {
		return KDA{}
	}

	avgKills := float64(kills) / float64(count)
	avgDeaths := float64(deaths) / float64(count)
	avgAssists := float64(assists) / float64(count)

	ratio := avgKills + avgAssists
	if avgDeaths != 0 {
		ratio = (avgKills + avgAssists) / avgDeaths
	}

	return KDA{
		AvgKills:   round1(avgKills),
		AvgDeaths:  round1(avgDeaths),
		AvgAssists: round1(avgAssists),
		KDARatio:   round2(ratio),
	}
}

// CalcAvgCSPerMin averages creep score per minute across matches. Matches
// with a zero duration are skipped.
func CalcAvgCSPerMin(matches []domain.MatchRecord, puuid string) float64 {
	var total float64
	var count int
	for i := range matches {
		player := findParticipant(&matches[i], puuid)
		if player == nil {
			continue
		}
		minutes := float64(matches[i].Info.GameDuration) / 60
		if minutes <= 0 {
			continue
		}
		total += float64(player.TotalMinionsKilled+player.NeutralMinionsKilled) / minutes
		count++
	}

	if count == 0 {
		return 0
	}
	return round1(total / float64(count))
}

// CalcAvgKillParticipation averages the share of team kills the subject was
// credited with, as a percentage. Matches where the subject's team recorded
// zero kills are excluded from the average.
func CalcAvgKillParticipation(matches []domain.MatchRecord, puuid string) int {
	var total float64
	var count int
	for i := range matches {
		player := findParticipant(&matches[i], puuid)
		if player == nil {
			continue
		}

		teamKills := 0
		for _, p := range matches[i].Info.Participants {
			if p.TeamID == player.TeamID {
				teamKills += p.Kills
			}
		}
		if teamKills == 0 {
			continue
		}

		total += float64(player.Kills+player.Assists) / float64(teamKills)
		count++
	}

	if count == 0 {
		return 0
	}
	return int(math.Round(total / float64(count) * 100))
}

// Derive bundles the four headline reductions into one DerivedStats value.
func Derive(matches []domain.MatchRecord, puuid string) *domain.DerivedStats {
	winRate := CalcWinRate(matches, puuid)
	kda := CalcAvgKDA(matches, puuid)

	return &domain.DerivedStats{
		Wins:              winRate.Wins,
		Losses:            winRate.Losses,
		WinRate:           winRate.WinRate,
		AvgKills:          kda.AvgKills,
		AvgDeaths:         kda.AvgDeaths,
		AvgAssists:        kda.AvgAssists,
		KDARatio:          kda.KDARatio,
		CSPerMin:          CalcAvgCSPerMin(matches, puuid),
		KillParticipation: CalcAvgKillParticipation(matches, puuid),
	}
}

type ChampionSummary struct {
	ChampionID   int
	ChampionName string
	Games        int
	Wins         int
	WinRate      int
}

// MostPlayed returns champion play counts ordered by games played,
// capped at limit.
func MostPlayed(matches []domain.MatchRecord, puuid string, limit int) []ChampionSummary {
	byChampion := make(map[int]*ChampionSummary)
	for i := range matches {
		player := findParticipant(&matches[i], puuid)
		if player == nil {
			continue
		}

		summary, ok := byChampion[player.ChampionID]
		if !ok {
			summary = &ChampionSummary{ChampionID: player.ChampionID, ChampionName: player.ChampionName}
			byChampion[player.ChampionID] = summary
		}
		summary.Games++
		if player.Win {
			summary.Wins++
		}
	}

	summaries := make([]ChampionSummary, 0, len(byChampion))
	for _, s := range byChampion {
		if s.Games > 0 {
			s.WinRate = int(math.Round(float64(s.Wins) / float64(s.Games) * 100))
		}
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Games != summaries[j].Games {
			return summaries[i].Games > summaries[j].Games
		}
		return summaries[i].ChampionID < summaries[j].ChampionID
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries
}

// CalcAvgDamage averages damage dealt to champions per match, rounded to
// the nearest integer.
func CalcAvgDamage(matches []domain.MatchRecord, puuid string) int {
	var total, count int
	for i := range matches {
		player := findParticipant(&matches[i], puuid)
		if player == nil {
			continue
		}
		total += player.TotalDamageDealtToChampions
		count++
	}

	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// CalcAvgVision averages vision score per match to one decimal.
func CalcAvgVision(matches []domain.MatchRecord, puuid string) float64 {
	var total, count int
	for i := range matches {
		player := findParticipant(&matches[i], puuid)
		if player == nil {
			continue
		}
		total += player.VisionScore
		count++
	}

	if count == 0 {
		return 0
	}
	return round1(float64(total) / float64(count))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
