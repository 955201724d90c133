package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	ClientTimeout      = 15 * time.Second
)

const (
	MaxRetries        = 3
	DefaultRetryAfter = 2 * time.Second
)

const (
	DefaultMatchStart     = 0
	DefaultMatchCount     = 20
	LoadMoreMatchCount    = 10
	MatchFetchConcurrency = 10
	DefaultMasteryCount   = 5
)

const (
	DefaultQueue      = "RANKED_SOLO_5x5"
	DefaultValLocale  = "en-US"
	DefaultValSize    = 200
	DefaultLadderPage = 1
)

const (
	MatchCacheTTL  = 7 * 24 * time.Hour
	StaticCacheTTL = 24 * time.Hour
	StaticCacheMax = 64
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
