package riot

import "strings"

const (
	RegionAmericas = "americas"
	RegionEurope   = "europe"
	RegionAsia     = "asia"
	RegionSEA      = "sea"
)

var DefaultRegions = []string{RegionAmericas, RegionEurope, RegionAsia, RegionSEA}

var platformRouting = map[string]string{
	"na1":  RegionAmericas,
	"br1":  RegionAmericas,
	"la1":  RegionAmericas,
	"la2":  RegionAmericas,
	"euw1": RegionEurope,
	"eun1": RegionEurope,
	"tr1":  RegionEurope,
	"ru":   RegionEurope,
	"me1":  RegionEurope,
	"kr":   RegionAsia,
	"jp1":  RegionAsia,
	"oc1":  RegionSEA,
	"ph2":  RegionSEA,
	"sg2":  RegionSEA,
	"th2":  RegionSEA,
	"tw2":  RegionSEA,
	"vn2":  RegionSEA,
}

var platformDisplay = map[string]string{
	"na1":  "NA",
	"br1":  "BR",
	"la1":  "LAN",
	"la2":  "LAS",
	"euw1": "EUW",
	"eun1": "EUNE",
	"tr1":  "TR",
	"ru":   "RU",
	"jp1":  "JP",
	"kr":   "KR",
	"oc1":  "OCE",
	"ph2":  "PH",
	"sg2":  "SG",
	"th2":  "TH",
	"tw2":  "TW",
	"vn2":  "VN",
	"me1":  "ME",
}

var regionPlatform = map[string]string{
	RegionAmericas: "na1",
	RegionEurope:   "euw1",
	RegionAsia:     "kr",
	RegionSEA:      "oc1",
}

var regionDisplay = map[string]string{
	RegionAmericas: "Americas",
	RegionEurope:   "Europe",
	RegionAsia:     "Asia",
	RegionSEA:      "Southeast Asia",
}

// PlatformFromMatchID reads the platform from a match id such as EUW1_123456.
// Unknown or missing prefixes return fallback.
func PlatformFromMatchID(matchID string, fallback string) string {
	i := strings.IndexByte(matchID, '_')
	if i <= 0 {
		return fallback
	}
	platform := strings.ToLower(matchID[:i])
	if _, ok := platformRouting[platform]; !ok {
		return fallback
	}
	return platform
}

// RoutingForPlatform maps a platform host to its routing region, americas when unknown.
func RoutingForPlatform(platform string) string {
	if region, ok := platformRouting[strings.ToLower(platform)]; ok {
		return region
	}
	return RegionAmericas
}

func PlatformForRegion(region string, fallback string) string {
	if platform, ok := regionPlatform[region]; ok {
		return platform
	}
	return fallback
}

func PlatformDisplayName(platform string) string {
	if name, ok := platformDisplay[strings.ToLower(platform)]; ok {
		return name
	}
	return strings.ToUpper(platform)
}

func RegionDisplayName(region string) string {
	if name, ok := regionDisplay[region]; ok {
		return name
	}
	return region
}

func IsPlatform(platform string) bool {
	_, ok := platformRouting[strings.ToLower(platform)]
	return ok
}
