package routing

import "testing"

func TestRegionHostKnown(t *testing.T) {
	host, ok := RegionHost("americas")
	if !ok {
		t.Fatalf("expected americas to resolve")
	}
	if host != "americas.api.riotgames.com" {
		t.Fatalf("unexpected host %q", host)
	}
}

func TestRegionHostCaseInsensitive(t *testing.T) {
	host, ok := RegionHost("EUROPE")
	if !ok || host != "europe.api.riotgames.com" {
		t.Fatalf("expected uppercase region to resolve, got %q ok=%v", host, ok)
	}
}

func TestRegionHostUnknown(t *testing.T) {
	if _, ok := RegionHost("moon"); ok {
		t.Fatalf("expected unknown region to fail resolution")
	}
}

func TestPlatformHostUnknownNeverDefaults(t *testing.T) {
	if _, ok := PlatformHost("xx9"); ok {
		t.Fatalf("expected unknown platform to fail resolution, not default")
	}
}

func TestValShardHost(t *testing.T) {
	host, ok := ValShardHost("latam")
	if !ok || host != "latam.api.riotgames.com" {
		t.Fatalf("unexpected shard host %q ok=%v", host, ok)
	}
	if _, ok := ValShardHost("na1"); ok {
		t.Fatalf("lol platform codes are not valorant shards")
	}
}

func TestLorRegionHostIncludesSea(t *testing.T) {
	host, ok := LorRegionHost("sea")
	if !ok || host != "sea.api.riotgames.com" {
		t.Fatalf("unexpected lor host %q ok=%v", host, ok)
	}
}

func TestRegionForPlatformTotal(t *testing.T) {
	regions := map[string]bool{"americas": true, "europe": true, "asia": true}
	for platform := range platformHosts {
		region := RegionForPlatform(platform)
		if !regions[region] {
			t.Fatalf("platform %q mapped to unexpected region %q", platform, region)
		}
	}
}

func TestRegionForPlatformDefault(t *testing.T) {
	if region := RegionForPlatform("unknown-shard"); region != "americas" {
		t.Fatalf("expected default region americas, got %q", region)
	}
}

func TestEveryPlatformHasRegion(t *testing.T) {
	for platform := range platformHosts {
		if _, ok := platformToRegion[platform]; !ok {
			t.Fatalf("platform %q missing from region mapping", platform)
		}
	}
}
