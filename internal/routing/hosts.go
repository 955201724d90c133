// Package routing holds the static tables that translate logical
// region, platform, and shard codes into upstream API hostnames.
// Every table is read-only after init and safe to share across requests.
package routing

import "strings"

// Regional clusters used by account-v1, match-v5, and tft-match-v1.
var regionHosts = map[string]string{
	"americas": "americas.api.riotgames.com",
	"europe":   "europe.api.riotgames.com",
	"asia":     "asia.api.riotgames.com",
}

// Per-platform hosts used by summoner, league, mastery, and spectator routes.
var platformHosts = map[string]string{
	"na1":   "na1.api.riotgames.com",
	"euw1":  "euw1.api.riotgames.com",
	"eune1": "eun1.api.riotgames.com",
	"kr":    "kr.api.riotgames.com",
	"jp1":   "jp1.api.riotgames.com",
	"br1":   "br1.api.riotgames.com",
	"la1":   "la1.api.riotgames.com",
	"la2":   "la2.api.riotgames.com",
	"oc1":   "oc1.api.riotgames.com",
	"tr1":   "tr1.api.riotgames.com",
	"ru":    "ru.api.riotgames.com",
	"ph2":   "ph2.api.riotgames.com",
	"sg2":   "sg2.api.riotgames.com",
	"th2":   "th2.api.riotgames.com",
	"tw2":   "tw2.api.riotgames.com",
	"vn2":   "vn2.api.riotgames.com",
}

// Valorant routes on its own shard set.
var valShardHosts = map[string]string{
	"na":    "na.api.riotgames.com",
	"eu":    "eu.api.riotgames.com",
	"ap":    "ap.api.riotgames.com",
	"kr":    "kr.api.riotgames.com",
	"br":    "br.api.riotgames.com",
	"latam": "latam.api.riotgames.com",
}

// Legends of Runeterra adds a sea cluster on top of the regional set.
var lorRegionHosts = map[string]string{
	"americas": "americas.api.riotgames.com",
	"europe":   "europe.api.riotgames.com",
	"asia":     "asia.api.riotgames.com",
	"sea":      "sea.api.riotgames.com",
}

func RegionHost(region string) (string, bool) {
	host, ok := regionHosts[strings.ToLower(region)]
	return host, ok
}

func PlatformHost(platform string) (string, bool) {
	host, ok := platformHosts[strings.ToLower(platform)]
	return host, ok
}

func ValShardHost(shard string) (string, bool) {
	host, ok := valShardHosts[strings.ToLower(shard)]
	return host, ok
}

func LorRegionHost(region string) (string, bool) {
	host, ok := lorRegionHosts[strings.ToLower(region)]
	return host, ok
}

var platformToRegion = map[string]string{
	"na1":   "americas",
	"br1":   "americas",
	"la1":   "americas",
	"la2":   "americas",
	"oc1":   "americas",
	"euw1":  "europe",
	"eune1": "europe",
	"tr1":   "europe",
	"ru":    "europe",
	"kr":    "asia",
	"jp1":   "asia",
	"ph2":   "asia",
	"sg2":   "asia",
	"th2":   "asia",
	"tw2":   "asia",
	"vn2":   "asia",
}

// RegionForPlatform maps a platform code to its regional cluster.
// Unknown platforms fall back to americas; this default exists only for
// derived region selection and never picks an upstream host directly.
func RegionForPlatform(platform string) string {
	if region, ok := platformToRegion[strings.ToLower(platform)]; ok {
		return region
	}
	return "americas"
}
