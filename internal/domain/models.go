package domain

// Account is the globally unique player identity resolved from a Riot ID.
// The PUUID is the stable join key for everything downstream.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
}

type MasteryEntry struct {
	PUUID         string `json:"puuid"`
	ChampionID    int    `json:"championId"`
	ChampionLevel int    `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime  int64  `json:"lastPlayTime"`
}

// ActiveGame is the spectator view of a game in progress. A player who is
// not in game has no ActiveGame at all (nil), never a zero value.
type ActiveGame struct {
	GameID        int64                   `json:"gameId"`
	GameMode      string                  `json:"gameMode"`
	GameType      string                  `json:"gameType"`
	MapID         int                     `json:"mapId"`
	GameStartTime int64                   `json:"gameStartTime"`
	GameLength    int64                   `json:"gameLength"`
	Participants  []ActiveGameParticipant `json:"participants"`
}

type ActiveGameParticipant struct {
	PUUID      string `json:"puuid"`
	TeamID     int    `json:"teamId"`
	ChampionID int    `json:"championId"`
	RiotID     string `json:"riotId"`
}

// MatchRecord is an immutable historical fact once fetched; it is only
// ever aggregated over, never mutated.
type MatchRecord struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	DataVersion  string   `json:"dataVersion"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation int64         `json:"gameCreation"`
	GameDuration int64         `json:"gameDuration"`
	GameMode     string        `json:"gameMode"`
	QueueID      int           `json:"queueId"`
	Participants []Participant `json:"participants"`
}

type Participant struct {
	PUUID                       string `json:"puuid"`
	TeamID                      int    `json:"teamId"`
	ChampionID                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	TeamPosition                string `json:"teamPosition"`
	Win                         bool   `json:"win"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	GoldEarned                  int    `json:"goldEarned"`
	VisionScore                 int    `json:"visionScore"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	ChampLevel                  int    `json:"champLevel"`
}

// DerivedStats is recomputed from scratch over the full match set on every
// batch; there is no incremental update path.
type DerivedStats struct {
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinRate           int     `json:"winRate"`
	AvgKills          float64 `json:"avgKills"`
	AvgDeaths         float64 `json:"avgDeaths"`
	AvgAssists        float64 `json:"avgAssists"`
	KDARatio          float64 `json:"kdaRatio"`
	CSPerMin          float64 `json:"csPerMin"`
	KillParticipation int     `json:"killParticipation"`
}

// PlayerSession is the aggregate root for one player view. It is created
// empty, populated by a single orchestration run, and replaced wholesale;
// the ID lets callers discard completions that belong to a stale session.
type PlayerSession struct {
	ID            string
	Region        string
	Platform      string
	Account       *Account
	Summoner      *Summoner
	LeagueEntries []LeagueEntry
	Mastery       []MasteryEntry
	ActiveGame    *ActiveGame
	MatchIDs      []string
	Matches       []MatchRecord
	Stats         *DerivedStats
}
