// Package ddragon resolves static game data (patch versions, champion
// names, asset URLs) from the Data Dragon CDN.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"riot-stats-hub/internal/cache"
	"riot-stats-hub/internal/constants"
)

const (
	baseURL = "https://ddragon.leagueoflegends.com"

	// Served when versions.json cannot be fetched.
	fallbackVersion = "14.10.1"

	versionKey  = "version"
	championKey = "champions"
)

// Champion is one entry of the championId lookup table.
type Champion struct {
	ID   string
	Name string
	Key  int
}

// Doer abstracts the fasthttp transport so tests can swap it out.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

// Client caches CDN lookups in injected TTL caches so static data is
// refetched at most once per TTL window.
type Client struct {
	doer      Doer
	versions  *cache.TTLCache[string, string]
	champions *cache.TTLCache[string, map[int]Champion]
	logger    zerolog.Logger
}

func NewClient(
	versions *cache.TTLCache[string, string],
	champions *cache.TTLCache[string, map[int]Champion],
	logger zerolog.Logger,
) *Client {
	return &Client{
		doer: &fasthttp.Client{
			ReadTimeout:  constants.ExternalAPITimeout,
			WriteTimeout: constants.ExternalAPITimeout,
		},
		versions:  versions,
		champions: champions,
		logger:    logger,
	}
}

// NewClientWithDoer is used by tests to inject a fake transport.
func NewClientWithDoer(doer Doer, logger zerolog.Logger) *Client {
	c := NewClient(
		cache.NewTTLCache[string, string](constants.StaticCacheMax, constants.StaticCacheTTL),
		cache.NewTTLCache[string, map[int]Champion](constants.StaticCacheMax, constants.StaticCacheTTL),
		logger,
	)
	c.doer = doer
	return c
}

// LatestVersion returns the newest Data Dragon patch version, falling
// back to a pinned version when the CDN is unreachable.
func (c *Client) LatestVersion(ctx context.Context) string {
	if v, ok := c.versions.Get(versionKey); ok {
		return v
	}

	var versions []string
	if err := c.fetchJSON(ctx, baseURL+"/api/versions.json", &versions); err != nil || len(versions) == 0 {
		c.logger.Warn().Err(err).Msg("Failed to fetch Data Dragon versions, using fallback")
		c.versions.Put(versionKey, fallbackVersion, 0)
		return fallbackVersion
	}

	c.versions.Put(versionKey, versions[0], 0)
	return versions[0]
}

// ChampionMap returns the championId lookup table for the latest
// version. Failures yield an empty map, so callers degrade to numeric
// champion labels instead of erroring.
func (c *Client) ChampionMap(ctx context.Context) map[int]Champion {
	if m, ok := c.champions.Get(championKey); ok {
		return m
	}

	version := c.LatestVersion(ctx)

	var payload struct {
		Data map[string]struct {
			ID   string `json:"id"`
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", baseURL, version)
	if err := c.fetchJSON(ctx, url, &payload); err != nil {
		c.logger.Warn().Err(err).Str("version", version).Msg("Failed to fetch champion data")
		empty := map[int]Champion{}
		c.champions.Put(championKey, empty, 0)
		return empty
	}

	m := make(map[int]Champion, len(payload.Data))
	for _, champ := range payload.Data {
		key, err := strconv.Atoi(champ.Key)
		if err != nil {
			continue
		}
		m[key] = Champion{ID: champ.ID, Name: champ.Name, Key: key}
	}

	c.champions.Put(championKey, m, 0)
	return m
}

// ChampionName resolves a numeric championId to its display name.
func (c *Client) ChampionName(ctx context.Context, championID int) string {
	if champ, ok := c.ChampionMap(ctx)[championID]; ok {
		return champ.Name
	}
	return fmt.Sprintf("Champion %d", championID)
}

func (c *Client) fetchJSON(ctx context.Context, url string, v any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline := time.Now().Add(constants.ExternalAPITimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.doer.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("cdn request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("cdn returned status %d", resp.StatusCode())
	}
	return json.Unmarshal(resp.Body(), v)
}

// ChampionIconURL builds the square champion icon URL.
func ChampionIconURL(version, championKey string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", baseURL, version, championKey)
}

func ProfileIconURL(version string, iconID int) string {
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", baseURL, version, iconID)
}

// ItemIconURL returns "" for the empty item slot.
func ItemIconURL(version string, itemID int) string {
	if itemID == 0 {
		return ""
	}
	return fmt.Sprintf("%s/cdn/%s/img/item/%d.png", baseURL, version, itemID)
}

func SpellIconURL(version, spellKey string) string {
	return fmt.Sprintf("%s/cdn/%s/img/spell/%s.png", baseURL, version, spellKey)
}
