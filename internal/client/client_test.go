package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type fakeDoer struct {
	status  int
	body    string
	lastURI string
}

func (f *fakeDoer) DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, _ time.Time) error {
	f.lastURI = req.URI().String()
	resp.SetStatusCode(f.status)
	resp.SetBodyString(f.body)
	return nil
}

func TestResolveAccount(t *testing.T) {
	doer := &fakeDoer{status: 200, body: `{"puuid":"abc","gameName":"Hide on bush","tagLine":"KR1"}`}
	c := NewWithDoer("http://localhost:3001", doer, zerolog.Nop())

	account, err := c.ResolveAccount(context.Background(), "asia", "Hide on bush", "KR1")
	if err != nil {
		t.Fatalf("ResolveAccount() error = %v", err)
	}
	if account.PUUID != "abc" || account.GameName != "Hide on bush" {
		t.Errorf("account = %+v", account)
	}
	want := "http://localhost:3001/api/account/asia/Hide%20on%20bush/KR1"
	if doer.lastURI != want {
		t.Errorf("uri = %q, want %q", doer.lastURI, want)
	}
}

func TestActiveGameNullMeansIdle(t *testing.T) {
	doer := &fakeDoer{status: 200, body: `null`}
	c := NewWithDoer("http://localhost:3001", doer, zerolog.Nop())

	game, err := c.ActiveGame(context.Background(), "na1", "abc")
	if err != nil {
		t.Fatalf("ActiveGame() error = %v", err)
	}
	if game != nil {
		t.Errorf("game = %+v, want nil", game)
	}
}

func TestActiveGamePresent(t *testing.T) {
	doer := &fakeDoer{status: 200, body: `{"gameId":123,"gameMode":"CLASSIC","participants":[]}`}
	c := NewWithDoer("http://localhost:3001", doer, zerolog.Nop())

	game, err := c.ActiveGame(context.Background(), "na1", "abc")
	if err != nil {
		t.Fatalf("ActiveGame() error = %v", err)
	}
	if game == nil || game.GameID != 123 {
		t.Errorf("game = %+v", game)
	}
}

func TestMatchIDsQuery(t *testing.T) {
	doer := &fakeDoer{status: 200, body: `["NA1_1","NA1_2"]`}
	c := NewWithDoer("http://localhost:3001", doer, zerolog.Nop())

	ids, err := c.MatchIDs(context.Background(), "americas", "abc", 20, 10)
	if err != nil {
		t.Fatalf("MatchIDs() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "NA1_1" {
		t.Errorf("ids = %v", ids)
	}
	want := "http://localhost:3001/api/matches/americas/abc?start=20&count=10"
	if doer.lastURI != want {
		t.Errorf("uri = %q, want %q", doer.lastURI, want)
	}
}

func TestErrorEnvelope(t *testing.T) {
	doer := &fakeDoer{status: 404, body: `{"error":"Data not found - summoner not found"}`}
	c := NewWithDoer("http://localhost:3001", doer, zerolog.Nop())

	_, err := c.Summoner(context.Background(), "na1", "missing")
	if !IsNotFound(err) {
		t.Fatalf("error = %v, want not found", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T", err)
	}
	if apiErr.Message != "Data not found - summoner not found" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestErrorWithoutEnvelope(t *testing.T) {
	doer := &fakeDoer{status: 502, body: `bad gateway`}
	c := NewWithDoer("http://localhost:3001", doer, zerolog.Nop())

	_, err := c.Summoner(context.Background(), "na1", "abc")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T", err)
	}
	if apiErr.Status != 502 || apiErr.Message != "unexpected status 502" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}
