package ddragon

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type fakeDoer struct {
	responses map[string]string
	calls     int
	err       error
}

func (f *fakeDoer) DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, _ time.Time) error {
	f.calls++
	if f.err != nil {
		return f.err
	}

	uri := req.URI().String()
	for suffix, body := range f.responses {
		if strings.HasSuffix(uri, suffix) {
			resp.SetStatusCode(fasthttp.StatusOK)
			resp.SetBodyString(body)
			return nil
		}
	}
	resp.SetStatusCode(fasthttp.StatusNotFound)
	return nil
}

func TestLatestVersion(t *testing.T) {
	doer := &fakeDoer{responses: map[string]string{
		"/api/versions.json": `["15.4.1","15.3.1"]`,
	}}
	c := NewClientWithDoer(doer, zerolog.Nop())

	if got := c.LatestVersion(context.Background()); got != "15.4.1" {
		t.Errorf("LatestVersion() = %q", got)
	}

	// Second call is served from the cache.
	c.LatestVersion(context.Background())
	if doer.calls != 1 {
		t.Errorf("calls = %d, want 1", doer.calls)
	}
}

func TestLatestVersionFallback(t *testing.T) {
	doer := &fakeDoer{err: errors.New("connection refused")}
	c := NewClientWithDoer(doer, zerolog.Nop())

	if got := c.LatestVersion(context.Background()); got != fallbackVersion {
		t.Errorf("LatestVersion() = %q, want %q", got, fallbackVersion)
	}
}

func TestChampionMap(t *testing.T) {
	doer := &fakeDoer{responses: map[string]string{
		"/api/versions.json": `["15.4.1"]`,
		"/data/en_US/champion.json": `{"data":{
			"Aatrox":{"id":"Aatrox","key":"266","name":"Aatrox"},
			"Ahri":{"id":"Ahri","key":"103","name":"Ahri"}
		}}`,
	}}
	c := NewClientWithDoer(doer, zerolog.Nop())

	m := c.ChampionMap(context.Background())
	if len(m) != 2 {
		t.Fatalf("len = %d", len(m))
	}
	if m[266].Name != "Aatrox" || m[103].ID != "Ahri" {
		t.Errorf("map = %+v", m)
	}

	if got := c.ChampionName(context.Background(), 103); got != "Ahri" {
		t.Errorf("ChampionName(103) = %q", got)
	}
	if got := c.ChampionName(context.Background(), 9999); got != "Champion 9999" {
		t.Errorf("ChampionName(9999) = %q", got)
	}
}

func TestIconURLs(t *testing.T) {
	if got := ChampionIconURL("15.4.1", "Ahri"); got != "https://ddragon.leagueoflegends.com/cdn/15.4.1/img/champion/Ahri.png" {
		t.Errorf("ChampionIconURL = %q", got)
	}
	if got := ItemIconURL("15.4.1", 0); got != "" {
		t.Errorf("ItemIconURL(0) = %q, want empty", got)
	}
	if got := ItemIconURL("15.4.1", 3089); got != "https://ddragon.leagueoflegends.com/cdn/15.4.1/img/item/3089.png" {
		t.Errorf("ItemIconURL = %q", got)
	}
}
