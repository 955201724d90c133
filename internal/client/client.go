// Package client is the typed consumer of the gateway REST surface.
// The aggregation service talks to the gateway through it instead of
// hitting Riot hosts directly.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"riot-stats-hub/internal/constants"
	"riot-stats-hub/internal/domain"
)

// APIError is a gateway error envelope decoded from {"error": ...}.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error %d: %s", e.Status, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == fasthttp.StatusNotFound
}

func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == fasthttp.StatusTooManyRequests
}

// Doer abstracts the fasthttp transport so tests can swap it out.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

type Client struct {
	baseURL string
	doer    Doer
	logger  zerolog.Logger
}

func New(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer: &fasthttp.Client{
			ReadTimeout:  constants.ClientTimeout,
			WriteTimeout: constants.ClientTimeout,
		},
		logger: logger,
	}
}

// NewWithDoer is used by tests to inject a fake transport.
func NewWithDoer(baseURL string, doer Doer, logger zerolog.Logger) *Client {
	c := New(baseURL, logger)
	c.doer = doer
	return c
}

// ResolveAccount looks up an account by Riot ID.
func (c *Client) ResolveAccount(ctx context.Context, region, gameName, tagLine string) (*domain.Account, error) {
	var account domain.Account
	path := "/api/account/" + url.PathEscape(region) + "/" +
		url.PathEscape(gameName) + "/" + url.PathEscape(tagLine)
	if err := c.get(ctx, path, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) AccountByPUUID(ctx context.Context, region, puuid string) (*domain.Account, error) {
	var account domain.Account
	path := "/api/account/" + url.PathEscape(region) + "/by-puuid/" + url.PathEscape(puuid)
	if err := c.get(ctx, path, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) Summoner(ctx context.Context, platform, puuid string) (*domain.Summoner, error) {
	var summoner domain.Summoner
	path := "/api/summoner/" + url.PathEscape(platform) + "/" + url.PathEscape(puuid)
	if err := c.get(ctx, path, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

func (c *Client) LeagueEntries(ctx context.Context, platform, puuid string) ([]domain.LeagueEntry, error) {
	var entries []domain.LeagueEntry
	path := "/api/league/" + url.PathEscape(platform) + "/" + url.PathEscape(puuid)
	if err := c.get(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) Mastery(ctx context.Context, platform, puuid string, count int) ([]domain.MasteryEntry, error) {
	var entries []domain.MasteryEntry
	path := "/api/mastery/" + url.PathEscape(platform) + "/" + url.PathEscape(puuid) +
		"?count=" + strconv.Itoa(count)
	if err := c.get(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ActiveGame returns (nil, nil) when the player is not in a live game.
// The gateway encodes that case as a 200 null body.
func (c *Client) ActiveGame(ctx context.Context, platform, puuid string) (*domain.ActiveGame, error) {
	var game *domain.ActiveGame
	path := "/api/spectator/" + url.PathEscape(platform) + "/" + url.PathEscape(puuid)
	if err := c.get(ctx, path, &game); err != nil {
		return nil, err
	}
	return game, nil
}

func (c *Client) MatchIDs(ctx context.Context, region, puuid string, start, count int) ([]string, error) {
	var ids []string
	path := "/api/matches/" + url.PathEscape(region) + "/" + url.PathEscape(puuid) +
		"?start=" + strconv.Itoa(start) + "&count=" + strconv.Itoa(count)
	if err := c.get(ctx, path, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) Match(ctx context.Context, region, matchID string) (*domain.MatchRecord, error) {
	var record domain.MatchRecord
	path := "/api/match/" + url.PathEscape(region) + "/" + url.PathEscape(matchID)
	if err := c.get(ctx, path, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(constants.ClientTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.doer.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		message := fmt.Sprintf("unexpected status %d", status)
		if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != "" {
			message = envelope.Error
		}
		return &APIError{Status: status, Message: message}
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
